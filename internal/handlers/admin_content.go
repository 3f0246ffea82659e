// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coverpress/internal/models"
	"coverpress/internal/slug"
)

// pageRequest is the admin payload for a standalone company/legal page.
type pageRequest struct {
	Title           string          `json:"title" validate:"required,max=300"`
	Slug            string          `json:"slug" validate:"omitempty,max=300"`
	PageType        models.PageType `json:"page_type" validate:"required,oneof=company legal"`
	ShowInFooter    bool            `json:"show_in_footer"`
	FooterOrder     int             `json:"footer_order"`
	MetaTitle       string          `json:"meta_title" validate:"max=300"`
	MetaDescription string          `json:"meta_description" validate:"max=500"`
	MetaKeywords    string          `json:"meta_keywords" validate:"max=500"`
	HeroImage       *string         `json:"hero_image"`
	Content         *string         `json:"content"`
	Published       bool            `json:"published"`
}

func (req *pageRequest) apply(p *models.Page) {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	p.Title = req.Title
	p.Slug = req.Slug
	p.PageType = req.PageType
	p.ShowInFooter = req.ShowInFooter
	p.FooterOrder = req.FooterOrder
	p.MetaTitle = req.MetaTitle
	p.MetaDescription = req.MetaDescription
	p.MetaKeywords = req.MetaKeywords
	p.HeroImage = req.HeroImage
	p.Content = req.Content
	p.Published = req.Published
}

// PageCreate adds a standalone page. A blank slug is derived from the title.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	page := &models.Page{}
	req.apply(page)
	created, err := a.pages.Create(page)
	if err != nil {
		respondInternalError(w, "admin page create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// PageUpdate rewrites a standalone page.
func (a *Admin) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}

	var req pageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	page := &models.Page{ID: id}
	req.apply(page)
	if err := a.pages.Update(page); err != nil {
		respondInternalError(w, "admin page update failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, page)
}

// PageDelete removes a standalone page and its sections.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	if err := a.pages.Delete(id); err != nil {
		respondInternalError(w, "admin page delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// sectionRequest is the admin payload for one content section. A nil
// page_id files the section under the homepage.
type sectionRequest struct {
	PageID          *uuid.UUID           `json:"page_id"`
	Title           string               `json:"title" validate:"required,max=300"`
	Subtitle        string               `json:"subtitle" validate:"max=300"`
	AnchorID        string               `json:"anchor_id" validate:"max=200"`
	Order           int                  `json:"order"`
	Collapsible     bool                 `json:"collapsible"`
	BackgroundColor string               `json:"background_color" validate:"max=50"`
	TextColor       string               `json:"text_color" validate:"max=50"`
	Type            models.SectionType   `json:"type" validate:"required,oneof=rich_text rich_columns media video graph code gallery stats editor_blocks cta"`
	Layout          models.SectionLayout `json:"layout" validate:"omitempty,oneof=full split grid2 grid3 grid4 grid5"`

	Body         *string                `json:"body"`
	Columns      []models.SectionColumn `json:"columns" validate:"max=5"`
	Image        *string                `json:"image"`
	VideoURL     string                 `json:"video_url"`
	ChartConfig  json.RawMessage        `json:"chart_config"`
	Code         string                 `json:"code"`
	Gallery      json.RawMessage        `json:"gallery"`
	Stats        json.RawMessage        `json:"stats"`
	EditorBlocks json.RawMessage        `json:"editor_blocks"`
	CTAText      string                 `json:"cta_text"`
	CTAURL       string                 `json:"cta_url"`
}

func (req *sectionRequest) apply(s *models.Section) {
	if req.Layout == "" {
		req.Layout = models.LayoutFull
	}
	s.PageID = req.PageID
	s.Title = req.Title
	s.Subtitle = req.Subtitle
	s.AnchorID = req.AnchorID
	s.Order = req.Order
	s.Collapsible = req.Collapsible
	s.BackgroundColor = req.BackgroundColor
	s.TextColor = req.TextColor
	s.Type = req.Type
	s.Layout = req.Layout
	s.Body = req.Body
	s.Columns = req.Columns
	s.Image = req.Image
	s.VideoURL = req.VideoURL
	s.ChartConfig = req.ChartConfig
	s.Code = req.Code
	s.Gallery = req.Gallery
	s.Stats = req.Stats
	s.EditorBlocks = req.EditorBlocks
	s.CTAText = req.CTAText
	s.CTAURL = req.CTAURL
}

// SectionCreate adds a section to the homepage or to a page. The store
// derives a blank anchor from the title.
func (a *Admin) SectionCreate(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	section := &models.Section{}
	req.apply(section)
	created, err := a.sections.Create(section)
	if err != nil {
		respondInternalError(w, "admin section create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// SectionUpdate rewrites a section. The anchor is taken as sent here; only
// creation derives it.
func (a *Admin) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req sectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	section := &models.Section{ID: id}
	req.apply(section)
	if err := a.sections.Update(section); err != nil {
		respondInternalError(w, "admin section update failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, section)
}

// SectionDelete removes a section.
func (a *Admin) SectionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section id")
		return
	}
	if err := a.sections.Delete(id); err != nil {
		respondInternalError(w, "admin section delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// categoryRequest is the admin payload for a category, inline article
// fields included.
type categoryRequest struct {
	ParentPageID uuid.UUID `json:"parent_page_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=200"`
	Slug         string    `json:"slug" validate:"omitempty,max=200"`

	ArticlePublished bool    `json:"article_published"`
	ArticleTitle     *string `json:"article_title"`
	ArticleSummary   *string `json:"article_summary"`
	ArticleContent   *string `json:"article_content"`

	AuthorName          *string `json:"author_name"`
	AuthorImage         *string `json:"author_image"`
	AuthorDescription   *string `json:"author_description"`
	ReviewerName        *string `json:"reviewer_name"`
	ReviewerImage       *string `json:"reviewer_image"`
	ReviewerDescription *string `json:"reviewer_description"`
}

func (req *categoryRequest) apply(c *models.Category) {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	c.ParentPageID = req.ParentPageID
	c.Name = req.Name
	c.Slug = req.Slug
	c.ArticlePublished = req.ArticlePublished
	c.ArticleTitle = req.ArticleTitle
	c.ArticleSummary = req.ArticleSummary
	c.ArticleContent = req.ArticleContent
	c.AuthorName = req.AuthorName
	c.AuthorImage = req.AuthorImage
	c.AuthorDescription = req.AuthorDescription
	c.ReviewerName = req.ReviewerName
	c.ReviewerImage = req.ReviewerImage
	c.ReviewerDescription = req.ReviewerDescription
}

// CategoryCreate adds a category under a main page. A blank slug is derived
// from the name.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	category := &models.Category{}
	req.apply(category)
	created, err := a.categories.Create(category)
	if err != nil {
		respondInternalError(w, "admin category create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// CategoryUpdate rewrites a category.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	existing, err := a.categories.FindByID(id)
	if err != nil {
		respondInternalError(w, "admin category load failed", err)
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	req.apply(existing)
	if err := a.categories.Update(existing); err != nil {
		respondInternalError(w, "admin category update failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, existing)
}

// CategoryDelete removes a category; its articles are detached, not
// deleted.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := a.categories.Delete(id); err != nil {
		respondInternalError(w, "admin category delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// mainPageRequest is the admin payload for a navigation section.
type mainPageRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Slug         string `json:"slug" validate:"omitempty,max=200"`
	Order        int    `json:"order"`
	ShowInHeader bool   `json:"show_in_header"`
	HasDropdown  bool   `json:"has_dropdown"`
}

func (req *mainPageRequest) apply(p *models.MainPage) {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	p.Name = req.Name
	p.Slug = req.Slug
	p.Order = req.Order
	p.ShowInHeader = req.ShowInHeader
	p.HasDropdown = req.HasDropdown
}

// MainPageCreate adds a navigation section.
func (a *Admin) MainPageCreate(w http.ResponseWriter, r *http.Request) {
	var req mainPageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	page := &models.MainPage{}
	req.apply(page)
	created, err := a.mainPages.Create(page)
	if err != nil {
		respondInternalError(w, "admin main page create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// MainPageUpdate rewrites a navigation section. Main pages are never
// deleted through the API; categories and articles hang off them.
func (a *Admin) MainPageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid main page id")
		return
	}

	existing, err := a.mainPages.FindByID(id)
	if err != nil {
		respondInternalError(w, "admin main page load failed", err)
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "main page not found")
		return
	}

	var req mainPageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	req.apply(existing)
	if err := a.mainPages.Update(existing); err != nil {
		respondInternalError(w, "admin main page update failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, existing)
}

// homepageRequest is the admin payload for the homepage singleton.
type homepageRequest struct {
	MetaTitle       string  `json:"meta_title" validate:"max=300"`
	MetaDescription string  `json:"meta_description" validate:"max=500"`
	MetaKeywords    string  `json:"meta_keywords" validate:"max=500"`
	HeroImage       *string `json:"hero_image"`
	Content         *string `json:"content"`
	CTAText         string  `json:"cta_text" validate:"max=200"`
	CTAURL          string  `json:"cta_url" validate:"max=500"`
	AnchorID        string  `json:"anchor_id" validate:"max=200"`
}

// HomepageUpdate upserts the homepage singleton, keeping the existing row's
// identity when one is already seeded.
func (a *Admin) HomepageUpdate(w http.ResponseWriter, r *http.Request) {
	var req homepageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	existing, err := a.site.Homepage()
	if err != nil {
		respondInternalError(w, "admin homepage load failed", err)
		return
	}
	home := &models.Homepage{ID: uuid.New()}
	if existing != nil {
		home.ID = existing.ID
	}
	home.MetaTitle = req.MetaTitle
	home.MetaDescription = req.MetaDescription
	home.MetaKeywords = req.MetaKeywords
	home.HeroImage = req.HeroImage
	home.Content = req.Content
	home.CTAText = req.CTAText
	home.CTAURL = req.CTAURL
	home.AnchorID = req.AnchorID

	if err := a.site.SaveHomepage(home); err != nil {
		respondInternalError(w, "admin homepage save failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, home)
}

// siteConfigRequest is the admin payload for the site configuration
// singleton.
type siteConfigRequest struct {
	BrandName   string `json:"brand_name" validate:"required,max=200"`
	Email       string `json:"email" validate:"omitempty,email,max=320"`
	PhoneNumber string `json:"phone_number" validate:"max=50"`
	Disclaimer  string `json:"disclaimer" validate:"max=5000"`
	HeroTitle   string `json:"hero_title" validate:"max=300"`
	Tagline     string `json:"tagline" validate:"max=300"`

	Logo     *string `json:"logo"`
	LogoIcon *string `json:"logo_icon"`
	Favicon  *string `json:"favicon"`

	FacebookURL  string `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	YoutubeURL   string `json:"youtube_url" validate:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" validate:"omitempty,url"`

	CopyrightText  string `json:"copyright_text" validate:"max=300"`
	FooterAbout    string `json:"footer_about_text" validate:"max=2000"`
	CompanyAddress string `json:"company_address" validate:"max=500"`
	LogoHeightPx   *int   `json:"logo_height" validate:"omitempty,gte=8,lte=512"`

	AccentOrangeHex       string `json:"accent_orange_hex" validate:"max=9"`
	AccentOrangeHoverHex  string `json:"accent_orange_hover_hex" validate:"max=9"`
	AccentGradientFromHex string `json:"accent_gradient_from_hex" validate:"max=9"`
	AccentGradientToHex   string `json:"accent_gradient_to_hex" validate:"max=9"`
}

// SiteConfigUpdate upserts the site configuration singleton.
func (a *Admin) SiteConfigUpdate(w http.ResponseWriter, r *http.Request) {
	var req siteConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	existing, err := a.site.SiteConfig()
	if err != nil {
		respondInternalError(w, "admin site config load failed", err)
		return
	}
	cfg := &models.SiteConfig{ID: uuid.New()}
	if existing != nil {
		cfg.ID = existing.ID
	}
	cfg.BrandName = req.BrandName
	cfg.Email = req.Email
	cfg.PhoneNumber = req.PhoneNumber
	cfg.Disclaimer = req.Disclaimer
	cfg.HeroTitle = req.HeroTitle
	cfg.Tagline = req.Tagline
	cfg.Logo = req.Logo
	cfg.LogoIcon = req.LogoIcon
	cfg.Favicon = req.Favicon
	cfg.FacebookURL = req.FacebookURL
	cfg.TwitterURL = req.TwitterURL
	cfg.InstagramURL = req.InstagramURL
	cfg.YoutubeURL = req.YoutubeURL
	cfg.LinkedinURL = req.LinkedinURL
	cfg.CopyrightText = req.CopyrightText
	cfg.FooterAbout = req.FooterAbout
	cfg.CompanyAddress = req.CompanyAddress
	cfg.LogoHeightPx = req.LogoHeightPx
	cfg.AccentOrangeHex = req.AccentOrangeHex
	cfg.AccentOrangeHoverHex = req.AccentOrangeHoverHex
	cfg.AccentGradientFromHex = req.AccentGradientFromHex
	cfg.AccentGradientToHex = req.AccentGradientToHex

	if err := a.site.SaveSiteConfig(cfg); err != nil {
		respondInternalError(w, "admin site config save failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, cfg)
}

// videoRequest is the admin payload for a homepage video placement.
// Exactly one of video_url or video_file should carry the source; the
// original data model tolerates both, so neither is required here.
type videoRequest struct {
	Position  string  `json:"position" validate:"required,max=50"`
	Title     string  `json:"title" validate:"max=300"`
	VideoURL  string  `json:"video_url" validate:"omitempty,url,max=500"`
	VideoFile *string `json:"video_file"`
	Published bool    `json:"published"`
}

// VideoCreate adds a homepage video placement.
func (a *Admin) VideoCreate(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	created, err := a.site.CreateVideoPlacement(&models.VideoPlacement{
		Position:  req.Position,
		Title:     req.Title,
		VideoURL:  req.VideoURL,
		VideoFile: req.VideoFile,
		Published: req.Published,
	})
	if err != nil {
		respondInternalError(w, "admin video create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}
