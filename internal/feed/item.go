// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"time"

	"coverpress/internal/media"
	"coverpress/internal/models"
)

// Source tags which entity a feed item was projected from.
const (
	SourceArticle  = "article"
	SourceCategory = "category"
)

// Item is the unified read-model projection of either a standalone article
// or a category acting as an article. The two shapes are mapped through
// FromArticle/FromCategory instead of sharing a model hierarchy.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
	Content string `json:"content"`

	HeroImage    *string `json:"hero_image"`
	Category     string  `json:"category,omitempty"`
	CategorySlug string  `json:"category_slug,omitempty"`
	ParentPage   string  `json:"parent_page,omitempty"`

	Author              *string `json:"author,omitempty"`
	AuthorImage         *string `json:"author_image,omitempty"`
	AuthorDescription   *string `json:"author_description,omitempty"`
	Reviewer            *string `json:"reviewer,omitempty"`
	ReviewerImage       *string `json:"reviewer_image,omitempty"`
	ReviewerDescription *string `json:"reviewer_description,omitempty"`

	// CreatedAt is nil for category items: categories carry no creation
	// timestamp, which is why the feed is ordered positionally rather
	// than chronologically.
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Source string `json:"source"`
}

// Related is the compact projection used for the related-items list on the
// detail endpoint.
type Related struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Summary   string     `json:"summary"`
	HeroImage *string    `json:"hero_image"`
	Category  string     `json:"category,omitempty"`
	CreatedAt *time.Time `json:"created_at"`
}

// Detail is a feed item plus the fields only the detail endpoint exposes.
// ContentHTML is the Markdown body rendered server-side; list responses
// carry only the source to keep them small.
type Detail struct {
	Item
	ContentHTML   string    `json:"content_html"`
	FooterAddress string    `json:"footer_address"`
	RelatedItems  []Related `json:"related_items"`
}

// FromArticle projects a standalone article into the unified feed shape.
func FromArticle(a models.Article, m *media.Resolver) Item {
	createdAt := a.CreatedAt
	updatedAt := a.UpdatedAt
	return Item{
		ID:                  "article-" + a.ID.String(),
		Title:               a.Title,
		Slug:                a.Slug,
		Summary:             deref(a.Summary),
		Content:             deref(a.Content),
		HeroImage:           m.URL(a.HeroImage),
		Category:            a.CategoryName,
		CategorySlug:        a.CategorySlug,
		ParentPage:          a.ParentPageSlug,
		Author:              a.AuthorName,
		AuthorImage:         m.URL(a.AuthorImage),
		AuthorDescription:   a.AuthorDescription,
		Reviewer:            a.ReviewerName,
		ReviewerImage:       m.URL(a.ReviewerImage),
		ReviewerDescription: a.ReviewerDescription,
		CreatedAt:           &createdAt,
		UpdatedAt:           &updatedAt,
		Source:              SourceArticle,
	}
}

// FromCategory projects a category's inline article into the unified feed
// shape. The category itself is the item's category label, and timestamps
// stay nil.
func FromCategory(c models.Category, m *media.Resolver) Item {
	return Item{
		ID:                  "category-" + c.ID.String(),
		Title:               c.InlineTitle(),
		Slug:                c.Slug,
		Summary:             deref(c.ArticleSummary),
		Content:             deref(c.ArticleContent),
		HeroImage:           nil,
		Category:            c.Name,
		CategorySlug:        c.Slug,
		ParentPage:          c.ParentPageSlug,
		Author:              c.AuthorName,
		AuthorImage:         m.URL(c.AuthorImage),
		AuthorDescription:   c.AuthorDescription,
		Reviewer:            c.ReviewerName,
		ReviewerImage:       m.URL(c.ReviewerImage),
		ReviewerDescription: c.ReviewerDescription,
		CreatedAt:           nil,
		UpdatedAt:           nil,
		Source:              SourceCategory,
	}
}

// toRelated trims a feed item down to the related-items projection.
func toRelated(it Item) Related {
	return Related{
		ID:        it.ID,
		Title:     it.Title,
		Slug:      it.Slug,
		Summary:   it.Summary,
		HeroImage: it.HeroImage,
		Category:  it.Category,
		CreatedAt: it.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
