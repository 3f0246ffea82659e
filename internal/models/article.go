// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is a standalone blog-style entity. Every article must reference a
// category, a parent page, or both; when both are set the category must
// belong to the same parent page. Those rules are enforced by the articles
// package before persistence.
type Article struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	Summary *string   `json:"summary,omitempty"`
	Content *string   `json:"content,omitempty"`

	HeroImage     *string `json:"hero_image,omitempty"`
	FooterAddress string  `json:"footer_address,omitempty"`

	AuthorName          *string `json:"author_name,omitempty"`
	AuthorImage         *string `json:"author_image,omitempty"`
	AuthorDescription   *string `json:"author_description,omitempty"`
	ReviewerName        *string `json:"reviewer_name,omitempty"`
	ReviewerImage       *string `json:"reviewer_image,omitempty"`
	ReviewerDescription *string `json:"reviewer_description,omitempty"`

	ParentPageID *uuid.UUID `json:"parent_page_id,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`

	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Virtual fields populated by store methods that join the category
	// and parent page.
	CategoryName   string `json:"category_name,omitempty"`
	CategorySlug   string `json:"category_slug,omitempty"`
	ParentPageSlug string `json:"parent_page_slug,omitempty"`
}
