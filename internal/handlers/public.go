// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coverpress/internal/coverage"
	"coverpress/internal/feed"
	"coverpress/internal/media"
	"coverpress/internal/models"
	"coverpress/internal/store"
	"coverpress/internal/video"
)

// Public groups the read-side handlers consumed by the marketing frontend
// plus the contact form endpoint.
type Public struct {
	mainPages  *store.MainPageStore
	categories *store.CategoryStore
	articles   *store.ArticleStore
	pages      *store.PageStore
	sections   *store.SectionStore
	companies  *store.CompanyStore
	site       *store.SiteStore
	contacts   *store.ContactStore
	feed       *feed.Service
	media      *media.Resolver
}

// NewPublic creates the public handler group.
func NewPublic(
	mainPages *store.MainPageStore,
	categories *store.CategoryStore,
	articleStore *store.ArticleStore,
	pages *store.PageStore,
	sections *store.SectionStore,
	companies *store.CompanyStore,
	site *store.SiteStore,
	contacts *store.ContactStore,
	feedService *feed.Service,
	mediaResolver *media.Resolver,
) *Public {
	return &Public{
		mainPages:  mainPages,
		categories: categories,
		articles:   articleStore,
		pages:      pages,
		sections:   sections,
		companies:  companies,
		site:       site,
		contacts:   contacts,
		feed:       feedService,
		media:      mediaResolver,
	}
}

// companyView is the quotes projection of an insurer. Coverage rules stay
// internal; the frontend only needs the card fields.
type companyView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Logo             *string   `json:"logo"`
	Rating           *float64  `json:"rating"`
	ShortDescription string    `json:"short_description,omitempty"`
	ShortURL         string    `json:"short_url,omitempty"`
	DomainURL        string    `json:"domain_url,omitempty"`
	LandingURL       string    `json:"landing_url,omitempty"`
	ContactURL       string    `json:"contact_url,omitempty"`
}

// Quotes returns the insurers covering the requested ZIP. An invalid or
// missing ZIP degrades to the full published list rather than an error, so
// the quotes page always has something to show.
func (p *Public) Quotes(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")

	companies, err := p.companies.ListPublished()
	if err != nil {
		respondInternalError(w, "quotes list companies failed", err)
		return
	}

	matched := coverage.Resolve(companies, zip)
	views := make([]companyView, 0, len(matched))
	for _, c := range matched {
		views = append(views, companyView{
			ID:               c.ID,
			Name:             c.Name,
			Slug:             c.Slug,
			Logo:             p.media.URL(c.Logo),
			Rating:           c.Rating,
			ShortDescription: c.ShortDescription,
			ShortURL:         c.ShortURL,
			DomainURL:        c.DomainURL,
			LandingURL:       c.LandingURL,
			ContactURL:       c.ContactURL,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"companies": views,
		"zip":       zip,
		"count":     len(views),
	})
}

// CompanyDetail returns one published insurer by slug, same projection as
// the quotes list.
func (p *Public) CompanyDetail(w http.ResponseWriter, r *http.Request) {
	c, err := p.companies.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondInternalError(w, "company detail failed", err)
		return
	}
	if c == nil || !c.Published {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, companyView{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		Logo:             p.media.URL(c.Logo),
		Rating:           c.Rating,
		ShortDescription: c.ShortDescription,
		ShortURL:         c.ShortURL,
		DomainURL:        c.DomainURL,
		LandingURL:       c.LandingURL,
		ContactURL:       c.ContactURL,
	})
}

// BlogsList returns one page of the merged content feed.
func (p *Public) BlogsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	pageSize := intParam(q.Get("page_size"), feed.DefaultPageSize)

	result, err := p.feed.List(feed.Filters{
		Search:       q.Get("search"),
		CategorySlug: q.Get("category"),
		PageSlug:     q.Get("page_slug"),
	}, page, pageSize)
	if err != nil {
		respondInternalError(w, "blogs list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// BlogDetail returns a single feed item with its related items. The footer
// address falls back to the site-wide company address when the article
// carries none of its own.
func (p *Public) BlogDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := p.feed.GetBySlug(slug)
	if errors.Is(err, feed.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		respondInternalError(w, "blog detail failed", err)
		return
	}

	if detail.FooterAddress == "" {
		if cfg, err := p.site.SiteConfig(); err == nil && cfg != nil {
			detail.FooterAddress = cfg.CompanyAddress
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"item": detail})
}

// Homepage returns the homepage singleton with its sections and videos.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	home, err := p.site.Homepage()
	if err != nil {
		respondInternalError(w, "homepage load failed", err)
		return
	}
	if home == nil {
		respondError(w, http.StatusNotFound, "homepage not configured")
		return
	}

	sections, err := p.sections.ListForHomepage()
	if err != nil {
		respondInternalError(w, "homepage sections failed", err)
		return
	}
	videos, err := p.site.ListVideoPlacements()
	if err != nil {
		respondInternalError(w, "homepage videos failed", err)
		return
	}

	sectionViews := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		sectionViews = append(sectionViews, p.sectionView(s))
	}
	videoViews := make([]map[string]any, 0, len(videos))
	for _, v := range videos {
		videoViews = append(videoViews, map[string]any{
			"id":         v.ID,
			"position":   v.Position,
			"title":      v.Title,
			"video_url":  video.EmbedURL(v.VideoURL),
			"video_file": p.media.URL(v.VideoFile),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"meta_title":       home.MetaTitle,
		"meta_description": home.MetaDescription,
		"meta_keywords":    home.MetaKeywords,
		"hero_image":       p.media.URL(home.HeroImage),
		"content":          home.Content,
		"cta_text":         home.CTAText,
		"cta_url":          home.CTAURL,
		"anchor_id":        home.AnchorID,
		"sections":         sectionViews,
		"videos":           videoViews,
	})
}

// SiteConfig returns the site configuration singleton with media fields
// resolved to absolute URLs.
func (p *Public) SiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := p.site.SiteConfig()
	if err != nil {
		respondInternalError(w, "site config load failed", err)
		return
	}
	if cfg == nil {
		respondError(w, http.StatusNotFound, "site config not configured")
		return
	}

	out := *cfg
	out.Logo = p.media.URL(cfg.Logo)
	out.LogoIcon = p.media.URL(cfg.LogoIcon)
	out.Favicon = p.media.URL(cfg.Favicon)
	respondJSON(w, http.StatusOK, out)
}

// MainPages returns the header navigation sections.
func (p *Public) MainPages(w http.ResponseWriter, r *http.Request) {
	pages, err := p.mainPages.List()
	if err != nil {
		respondInternalError(w, "main pages list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": pages})
}

// Categories returns categories, optionally filtered to one main page via
// the page query parameter (a main page slug).
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	pageSlug := r.URL.Query().Get("page")

	var (
		categories []models.Category
		err        error
	)
	if pageSlug == "" {
		categories, err = p.categories.List()
	} else {
		page, ferr := p.mainPages.FindBySlug(pageSlug)
		if ferr != nil {
			respondInternalError(w, "categories page lookup failed", ferr)
			return
		}
		if page == nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		categories, err = p.categories.ListByParentPage(page.ID)
	}
	if err != nil {
		respondInternalError(w, "categories list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": categories})
}

// blogPreview is the compact article projection attached to the navigation
// tree when include_blogs is requested.
type blogPreview struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   *string   `json:"summary"`
	HeroImage *string   `json:"hero_image"`
}

// maxNavBlogs caps the article previews per category in the navigation tree.
const maxNavBlogs = 5

// PagesWithCategories returns the navigation tree: every main page with the
// categories filed under it. With include_blogs=true each category also
// carries up to five recent published articles. Used to build the header
// dropdowns in one request.
func (p *Public) PagesWithCategories(w http.ResponseWriter, r *http.Request) {
	pages, err := p.mainPages.List()
	if err != nil {
		respondInternalError(w, "pages-with-categories list failed", err)
		return
	}
	includeBlogs := r.URL.Query().Get("include_blogs") == "true"

	type categoryNode struct {
		models.Category
		Blogs []blogPreview `json:"blogs,omitempty"`
	}
	type pageNode struct {
		models.MainPage
		Categories []categoryNode `json:"categories"`
	}

	nodes := make([]pageNode, 0, len(pages))
	for _, page := range pages {
		categories, err := p.categories.ListByParentPage(page.ID)
		if err != nil {
			respondInternalError(w, "pages-with-categories categories failed", err)
			return
		}
		catNodes := make([]categoryNode, 0, len(categories))
		for _, c := range categories {
			node := categoryNode{Category: c}
			if includeBlogs {
				blogs, err := p.articles.ListPublishedByCategory(c.ID, maxNavBlogs)
				if err != nil {
					respondInternalError(w, "pages-with-categories blogs failed", err)
					return
				}
				node.Blogs = make([]blogPreview, 0, len(blogs))
				for _, a := range blogs {
					node.Blogs = append(node.Blogs, blogPreview{
						ID:        a.ID,
						Title:     a.Title,
						Slug:      a.Slug,
						Summary:   a.Summary,
						HeroImage: p.media.URL(a.HeroImage),
					})
				}
			}
			catNodes = append(catNodes, node)
		}
		nodes = append(nodes, pageNode{MainPage: page, Categories: catNodes})
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": nodes})
}

// PagesList returns every published standalone page, footer-ordered.
func (p *Public) PagesList(w http.ResponseWriter, r *http.Request) {
	pages, err := p.pages.ListPublished()
	if err != nil {
		respondInternalError(w, "pages list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": pages})
}

// PageDetail returns a published company/legal page with its sections.
func (p *Public) PageDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := p.pages.FindPublishedBySlug(slug)
	if err != nil {
		respondInternalError(w, "page detail failed", err)
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	sections, err := p.sections.ListForPage(page.ID)
	if err != nil {
		respondInternalError(w, "page sections failed", err)
		return
	}
	sectionViews := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		sectionViews = append(sectionViews, p.sectionView(s))
	}

	out := *page
	out.HeroImage = p.media.URL(page.HeroImage)
	respondJSON(w, http.StatusOK, map[string]any{
		"page":     out,
		"sections": sectionViews,
	})
}

// footerLink is the compact page projection for the footer menu.
type footerLink struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// FooterMenu returns the published footer pages grouped into the company
// and legal columns.
func (p *Public) FooterMenu(w http.ResponseWriter, r *http.Request) {
	pages, err := p.pages.ListFooter()
	if err != nil {
		respondInternalError(w, "footer menu failed", err)
		return
	}
	respondJSON(w, http.StatusOK, groupFooterPages(pages))
}

// groupFooterPages splits footer pages into their menu columns, keeping
// the store's footer_order.
func groupFooterPages(pages []models.Page) map[string][]footerLink {
	groups := map[string][]footerLink{
		string(models.PageTypeCompany): {},
		string(models.PageTypeLegal):   {},
	}
	for _, page := range pages {
		link := footerLink{Title: page.Title, Slug: page.Slug}
		groups[string(page.PageType)] = append(groups[string(page.PageType)], link)
	}
	return groups
}

// FooterAddress returns the address line shown under the footer: the most
// recently published article's footer address, falling back to the site
// configuration's company address.
func (p *Public) FooterAddress(w http.ResponseWriter, r *http.Request) {
	address, err := p.articles.LatestFooterAddress()
	if err != nil {
		respondInternalError(w, "footer address failed", err)
		return
	}
	if address == "" {
		cfg, err := p.site.SiteConfig()
		if err != nil {
			respondInternalError(w, "footer address failed", err)
			return
		}
		if cfg != nil {
			address = cfg.CompanyAddress
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"footer_address": address})
}

// contactRequest is the contact form payload.
type contactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"required,max=10000"`
}

// ContactSubmit stores a contact form submission.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	created, err := p.contacts.Create(&models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondInternalError(w, "contact create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"id":     created.ID,
		"status": created.Status,
	})
}

// intParam parses a positive integer query parameter, falling back on any
// garbage. Range clamping is the pagination layer's job.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
