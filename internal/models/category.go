// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// Category groups articles under a main page. A category can also carry an
// inline article of its own (the article_* fields), which the content feed
// surfaces alongside standalone articles.
//
// Slugs are unique per parent page, not globally.
type Category struct {
	ID           uuid.UUID `json:"id"`
	ParentPageID uuid.UUID `json:"parent_page_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`

	// Inline article fields. The category acts as an article when
	// ArticlePublished is true and ArticleTitle is set.
	ArticlePublished bool    `json:"article_published"`
	ArticleTitle     *string `json:"article_title,omitempty"`
	ArticleSummary   *string `json:"article_summary,omitempty"`
	ArticleContent   *string `json:"article_content,omitempty"`

	AuthorName          *string `json:"author_name,omitempty"`
	AuthorImage         *string `json:"author_image,omitempty"`
	AuthorDescription   *string `json:"author_description,omitempty"`
	ReviewerName        *string `json:"reviewer_name,omitempty"`
	ReviewerImage       *string `json:"reviewer_image,omitempty"`
	ReviewerDescription *string `json:"reviewer_description,omitempty"`

	// Virtual field populated by store methods that join the parent page.
	ParentPageSlug string `json:"parent_page_slug,omitempty"`
}

// HasInlineArticle reports whether the category contributes an item to the
// content feed.
func (c *Category) HasInlineArticle() bool {
	return c.ArticlePublished && c.ArticleTitle != nil && *c.ArticleTitle != ""
}

// InlineTitle returns the inline article title, falling back to the
// category name when the title is blank.
func (c *Category) InlineTitle() string {
	if c.ArticleTitle != nil && *c.ArticleTitle != "" {
		return *c.ArticleTitle
	}
	return c.Name
}
