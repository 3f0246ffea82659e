// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageType classifies a footer page for the footer menu groups.
type PageType string

const (
	PageTypeCompany PageType = "company"
	PageTypeLegal   PageType = "legal"
)

// Page is a standalone company/legal page (about, privacy, terms, ...)
// reachable from the footer. Not to be confused with MainPage, which is a
// navigation section.
type Page struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	PageType PageType  `json:"page_type"`

	ShowInFooter bool `json:"show_in_footer"`
	FooterOrder  int  `json:"footer_order"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`

	HeroImage *string `json:"hero_image,omitempty"`
	Content   *string `json:"content,omitempty"`

	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
