// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package articles owns the article persistence path: placement validation,
// parent-page alignment, and collision-free slug assignment.
package articles

import (
	"errors"

	"coverpress/internal/models"
	"coverpress/internal/slug"
)

var (
	// ErrNoPlacement rejects an article referencing neither a category
	// nor a parent page.
	ErrNoPlacement = errors.New("articles: select either a parent page or a category (at least one)")

	// ErrPageMismatch rejects an article whose category belongs to a
	// different parent page than the one selected.
	ErrPageMismatch = errors.New("articles: selected category belongs to a different parent page")

	// ErrSlugExhausted is returned when repeated unique-constraint
	// conflicts prevent the write from landing.
	ErrSlugExhausted = errors.New("articles: could not assign a unique slug")
)

// Validate enforces the placement invariants before any save. category is
// the loaded category row for article.CategoryID, nil when none is set.
// Validation rejects; it never auto-corrects.
func Validate(article *models.Article, category *models.Category) error {
	if article.CategoryID == nil && article.ParentPageID == nil {
		return ErrNoPlacement
	}
	if article.CategoryID != nil && article.ParentPageID != nil && category != nil {
		if category.ParentPageID != *article.ParentPageID {
			return ErrPageMismatch
		}
	}
	return nil
}

// alignParentPage applies the derived invariant: a category-only article
// inherits its category's parent page.
func alignParentPage(article *models.Article, category *models.Category) {
	if category != nil && article.ParentPageID == nil {
		pageID := category.ParentPageID
		article.ParentPageID = &pageID
	}
}

// baseSlug picks the slug base: the category slug when one is set,
// otherwise the slugified title.
func baseSlug(article *models.Article, category *models.Category) string {
	if category != nil && category.Slug != "" {
		return category.Slug
	}
	return slug.Generate(article.Title)
}
