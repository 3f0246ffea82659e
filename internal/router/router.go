// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// CoverPress API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"coverpress/internal/cache"
	"coverpress/internal/handlers"
	"coverpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. frontendOrigin is the browser origin allowed
// to call the API cross-site.
func New(public *handlers.Public, admin *handlers.Admin, responseCache *cache.ResponseCache, frontendOrigin string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check — never cached.
	r.Get("/health", healthHandler)

	// Contact submissions are the only unauthenticated write; keep the
	// window tight.
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Public read API — responses are cached in Valkey until an admin
	// write clears them.
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.ResponseCache(responseCache))

			r.Get("/quotes", public.Quotes)
			r.Get("/companies/{slug}", public.CompanyDetail)
			r.Get("/blogs", public.BlogsList)
			r.Get("/blogs/{slug}", public.BlogDetail)
			r.Get("/homepage", public.Homepage)
			r.Get("/site-config", public.SiteConfig)
			r.Get("/main-pages", public.MainPages)
			r.Get("/categories", public.Categories)
			r.Get("/pages-with-categories", public.PagesWithCategories)
			r.Get("/pages", public.PagesList)
			r.Get("/pages/{slug}", public.PageDetail)
			r.Get("/menu/footer", public.FooterMenu)
			r.Get("/footer-address", public.FooterAddress)
		})

		r.With(contactLimiter.Middleware).Post("/contact", public.ContactSubmit)
	})

	// Admin write API. Deployed behind the reverse proxy's auth layer, so
	// the handlers themselves carry no session logic.
	r.Route("/admin/api", func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", admin.ArticlesList)
			r.Post("/", admin.ArticleCreate)
			r.Put("/{id}", admin.ArticleUpdate)
			r.Delete("/{id}", admin.ArticleDelete)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Post("/", admin.CompanyCreate)
			r.Put("/{id}", admin.CompanyUpdate)
			r.Delete("/{id}", admin.CompanyDelete)
			r.Post("/{id}/coverages", admin.CoverageCreate)
			r.Delete("/{id}/coverages/{coverageID}", admin.CoverageDelete)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Post("/", admin.PageCreate)
			r.Put("/{id}", admin.PageUpdate)
			r.Delete("/{id}", admin.PageDelete)
		})

		r.Route("/sections", func(r chi.Router) {
			r.Post("/", admin.SectionCreate)
			r.Put("/{id}", admin.SectionUpdate)
			r.Delete("/{id}", admin.SectionDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", admin.CategoryCreate)
			r.Put("/{id}", admin.CategoryUpdate)
			r.Delete("/{id}", admin.CategoryDelete)
		})

		r.Route("/main-pages", func(r chi.Router) {
			r.Post("/", admin.MainPageCreate)
			r.Put("/{id}", admin.MainPageUpdate)
		})

		r.Put("/homepage", admin.HomepageUpdate)
		r.Put("/site-config", admin.SiteConfigUpdate)
		r.Post("/videos", admin.VideoCreate)

		r.Route("/contact-messages", func(r chi.Router) {
			r.Get("/", admin.ContactMessages)
			r.Put("/{id}/status", admin.ContactStatusUpdate)
		})

		r.Post("/media", admin.MediaUpload)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
