// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coverpress/internal/articles"
	"coverpress/internal/cache"
	"coverpress/internal/media"
	"coverpress/internal/models"
	"coverpress/internal/slug"
	"coverpress/internal/store"
)

// Admin groups the write-side handlers. Every successful write clears the
// public response cache, since one edit can change lists, details, and the
// navigation at once.
type Admin struct {
	articles     *articles.Service
	articleStore *store.ArticleStore
	mainPages    *store.MainPageStore
	categories   *store.CategoryStore
	pages        *store.PageStore
	sections     *store.SectionStore
	companies    *store.CompanyStore
	site         *store.SiteStore
	contacts     *store.ContactStore
	media        *media.Client
	cache        *cache.ResponseCache
}

// NewAdmin creates the admin handler group. mediaClient may be nil when
// object storage is not configured; uploads then return 503.
func NewAdmin(
	articleService *articles.Service,
	articleStore *store.ArticleStore,
	mainPages *store.MainPageStore,
	categories *store.CategoryStore,
	pages *store.PageStore,
	sections *store.SectionStore,
	companies *store.CompanyStore,
	site *store.SiteStore,
	contacts *store.ContactStore,
	mediaClient *media.Client,
	responseCache *cache.ResponseCache,
) *Admin {
	return &Admin{
		articles:     articleService,
		articleStore: articleStore,
		mainPages:    mainPages,
		categories:   categories,
		pages:        pages,
		sections:     sections,
		companies:    companies,
		site:         site,
		contacts:     contacts,
		media:        mediaClient,
		cache:        responseCache,
	}
}

// articleRequest is the admin payload for creating or updating an article.
// The slug is never part of the payload; it is assigned server-side.
type articleRequest struct {
	Title         string  `json:"title" validate:"required,max=300"`
	Summary       *string `json:"summary" validate:"omitempty,max=1000"`
	Content       *string `json:"content"`
	HeroImage     *string `json:"hero_image"`
	FooterAddress string  `json:"footer_address" validate:"max=500"`

	AuthorName          *string `json:"author_name"`
	AuthorImage         *string `json:"author_image"`
	AuthorDescription   *string `json:"author_description"`
	ReviewerName        *string `json:"reviewer_name"`
	ReviewerImage       *string `json:"reviewer_image"`
	ReviewerDescription *string `json:"reviewer_description"`

	ParentPageID *uuid.UUID `json:"parent_page_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Published    bool       `json:"published"`
}

func (req *articleRequest) apply(a *models.Article) {
	a.Title = req.Title
	a.Summary = req.Summary
	a.Content = req.Content
	a.HeroImage = req.HeroImage
	a.FooterAddress = req.FooterAddress
	a.AuthorName = req.AuthorName
	a.AuthorImage = req.AuthorImage
	a.AuthorDescription = req.AuthorDescription
	a.ReviewerName = req.ReviewerName
	a.ReviewerImage = req.ReviewerImage
	a.ReviewerDescription = req.ReviewerDescription
	a.ParentPageID = req.ParentPageID
	a.CategoryID = req.CategoryID
	a.Published = req.Published
}

// ArticlesList returns all articles including drafts.
func (a *Admin) ArticlesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.articleStore.List()
	if err != nil {
		respondInternalError(w, "admin articles list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": items})
}

// ArticleCreate validates and creates an article, assigning its slug.
func (a *Admin) ArticleCreate(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	article := &models.Article{}
	req.apply(article)

	created, err := a.articles.Create(article)
	if err != nil {
		a.respondArticleError(w, err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// ArticleUpdate validates and updates an article, recomputing its slug.
func (a *Admin) ArticleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	existing, err := a.articleStore.FindByID(id)
	if err != nil {
		respondInternalError(w, "admin article load failed", err)
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	req.apply(existing)
	if err := a.articles.Update(existing); err != nil {
		a.respondArticleError(w, err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, existing)
}

// ArticleDelete removes an article.
func (a *Admin) ArticleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	if err := a.articleStore.Delete(id); err != nil {
		respondInternalError(w, "admin article delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// respondArticleError maps the article service's sentinel errors to status
// codes. The two validation failures stay distinguishable by message.
func (a *Admin) respondArticleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, articles.ErrNoPlacement), errors.Is(err, articles.ErrPageMismatch):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, articles.ErrSlugExhausted):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondInternalError(w, "admin article write failed", err)
	}
}

// companyRequest is the admin payload for an insurer.
type companyRequest struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Slug             string   `json:"slug" validate:"omitempty,max=200"`
	Logo             *string  `json:"logo"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ShortDescription string   `json:"short_description" validate:"max=1000"`
	ShortURL         string   `json:"short_url" validate:"omitempty,url"`
	DomainURL        string   `json:"domain_url" validate:"omitempty,url"`
	LandingURL       string   `json:"landing_url" validate:"omitempty,url"`
	ContactURL       string   `json:"contact_url" validate:"omitempty,url"`
	Published        bool     `json:"published"`
}

// apply copies the payload onto a company, deriving a blank slug from the
// name.
func (req *companyRequest) apply(c *models.InsuranceCompany) {
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	c.Name = req.Name
	c.Slug = req.Slug
	c.Logo = req.Logo
	c.Rating = req.Rating
	c.ShortDescription = req.ShortDescription
	c.ShortURL = req.ShortURL
	c.DomainURL = req.DomainURL
	c.LandingURL = req.LandingURL
	c.ContactURL = req.ContactURL
	c.Published = req.Published
}

// CompanyCreate adds an insurer. A blank slug is derived from the name.
func (a *Admin) CompanyCreate(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	company := &models.InsuranceCompany{}
	req.apply(company)
	created, err := a.companies.Create(company)
	if err != nil {
		respondInternalError(w, "admin company create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// CompanyUpdate rewrites an insurer's card fields. Coverage rules are
// managed through the coverage endpoints.
func (a *Admin) CompanyUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	company := &models.InsuranceCompany{ID: id}
	req.apply(company)
	if err := a.companies.Update(company); err != nil {
		respondInternalError(w, "admin company update failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, company)
}

// CompanyDelete removes an insurer and its coverage rules.
func (a *Admin) CompanyDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid company id")
		return
	}
	if err := a.companies.Delete(id); err != nil {
		respondInternalError(w, "admin company delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// coverageRequest is the admin payload for one coverage rule.
type coverageRequest struct {
	StateCode         string `json:"state_code" validate:"required,len=2,alpha"`
	CoversEntireState bool   `json:"covers_entire_state"`
	ZipRangeStart     *int   `json:"zip_range_start" validate:"omitempty,gte=0,lte=99999"`
	ZipRangeEnd       *int   `json:"zip_range_end" validate:"omitempty,gte=0,lte=99999"`
	ZipCodesText      string `json:"zip_codes_text" validate:"max=10000"`
	Notes             string `json:"notes" validate:"max=1000"`
}

// CoverageCreate adds a coverage rule to an insurer.
func (a *Admin) CoverageCreate(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req coverageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	created, err := a.companies.CreateCoverage(&models.InsuranceCoverage{
		CompanyID:         companyID,
		StateCode:         strings.ToUpper(req.StateCode),
		CoversEntireState: req.CoversEntireState,
		ZipRangeStart:     req.ZipRangeStart,
		ZipRangeEnd:       req.ZipRangeEnd,
		ZipCodesText:      req.ZipCodesText,
		Notes:             req.Notes,
	})
	if err != nil {
		respondInternalError(w, "admin coverage create failed", err)
		return
	}

	a.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusCreated, created)
}

// CoverageDelete removes a coverage rule.
func (a *Admin) CoverageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "coverageID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid coverage id")
		return
	}
	if err := a.companies.DeleteCoverage(id); err != nil {
		respondInternalError(w, "admin coverage delete failed", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ContactMessages lists contact form submissions for triage.
func (a *Admin) ContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := a.contacts.List()
	if err != nil {
		respondInternalError(w, "admin contact list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": items})
}

// contactStatusRequest updates a message's triage state.
type contactStatusRequest struct {
	Status models.ContactStatus `json:"status" validate:"required,oneof=new in_review resolved"`
}

// ContactStatusUpdate moves a contact message through triage.
func (a *Admin) ContactStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req contactStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	if err := a.contacts.UpdateStatus(id, req.Status); err != nil {
		respondInternalError(w, "admin contact status failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}
