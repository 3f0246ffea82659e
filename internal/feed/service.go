// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"coverpress/internal/markdown"
	"coverpress/internal/media"
	"coverpress/internal/models"
)

// ErrNotFound is returned by GetBySlug when neither content source has a
// published item under the slug. It is an expected outcome, not a fault.
var ErrNotFound = errors.New("feed: item not found")

// ArticleSource is the article half of the storage boundary the feed reads
// from.
type ArticleSource interface {
	ListPublished() ([]models.Article, error)
	FindPublishedBySlug(slug string) (*models.Article, error)
	ListPublishedByParentPage(pageID uuid.UUID) ([]models.Article, error)
}

// CategorySource is the category half of the storage boundary: only
// categories whose inline article is published are visible here.
type CategorySource interface {
	ListWithInlineArticle() ([]models.Category, error)
	FindInlineBySlug(slug string) (*models.Category, error)
	ListInlineByParentPage(pageID uuid.UUID) ([]models.Category, error)
}

// Service resolves the merged content feed against the stores.
type Service struct {
	articles   ArticleSource
	categories CategorySource
	media      *media.Resolver
}

// NewService creates a feed service. media may wrap a nil storage client.
func NewService(articles ArticleSource, categories CategorySource, m *media.Resolver) *Service {
	return &Service{articles: articles, categories: categories, media: m}
}

// List returns one page of the merged feed. Both sources are fetched in
// full and merged in memory — the candidate list is the union of two small,
// admin-curated sets, and positional pagination over the merged list is the
// contract, so pushing the split pagination into SQL would change behavior.
func (s *Service) List(f Filters, page, pageSize int) (Page, error) {
	categories, err := s.categories.ListWithInlineArticle()
	if err != nil {
		return Page{}, fmt.Errorf("feed list categories: %w", err)
	}
	articles, err := s.articles.ListPublished()
	if err != nil {
		return Page{}, fmt.Errorf("feed list articles: %w", err)
	}

	categoryItems := make([]Item, 0, len(categories))
	for _, c := range categories {
		categoryItems = append(categoryItems, FromCategory(c, s.media))
	}
	articleItems := make([]Item, 0, len(articles))
	for _, a := range articles {
		articleItems = append(articleItems, FromArticle(a, s.media))
	}

	return Paginate(Merge(categoryItems, articleItems, f), page, pageSize), nil
}

// GetBySlug resolves a single item: standalone articles first, then
// category inline articles. When an article and a category share a slug the
// article wins — the collision is not prevented at write time, so lookup
// order is the tie-break.
func (s *Service) GetBySlug(slug string) (Detail, error) {
	article, err := s.articles.FindPublishedBySlug(slug)
	if err != nil {
		return Detail{}, fmt.Errorf("feed find article %q: %w", slug, err)
	}
	if article != nil {
		item := FromArticle(*article, s.media)
		related, err := s.related(item, article.ParentPageID)
		if err != nil {
			return Detail{}, err
		}
		return Detail{
			Item:          item,
			ContentHTML:   renderContent(item.Content),
			FooterAddress: article.FooterAddress,
			RelatedItems:  related,
		}, nil
	}

	category, err := s.categories.FindInlineBySlug(slug)
	if err != nil {
		return Detail{}, fmt.Errorf("feed find category %q: %w", slug, err)
	}
	if category == nil {
		return Detail{}, ErrNotFound
	}

	item := FromCategory(*category, s.media)
	related, err := s.related(item, &category.ParentPageID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		Item:         item,
		ContentHTML:  renderContent(item.Content),
		RelatedItems: related,
	}, nil
}

// renderContent converts a Markdown body to HTML. A render failure logs and
// falls back to the empty string rather than failing the whole detail read;
// the client still has the source body.
func renderContent(source string) string {
	if source == "" {
		return ""
	}
	out, err := markdown.ToHTML(source)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return ""
	}
	return out
}

// related loads up to three other published items from the same parent
// page. Items without a parent page have no related content.
func (s *Service) related(self Item, pageID *uuid.UUID) ([]Related, error) {
	if pageID == nil {
		return []Related{}, nil
	}

	articles, err := s.articles.ListPublishedByParentPage(*pageID)
	if err != nil {
		return nil, fmt.Errorf("feed related articles: %w", err)
	}
	categories, err := s.categories.ListInlineByParentPage(*pageID)
	if err != nil {
		return nil, fmt.Errorf("feed related categories: %w", err)
	}

	articleItems := make([]Item, 0, len(articles))
	for _, a := range articles {
		articleItems = append(articleItems, FromArticle(a, s.media))
	}
	categoryItems := make([]Item, 0, len(categories))
	for _, c := range categories {
		categoryItems = append(categoryItems, FromCategory(c, s.media))
	}

	return relatedTo(self, articleItems, categoryItems), nil
}
