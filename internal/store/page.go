// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"coverpress/internal/models"
)

// PageStore manages standalone company/legal pages.
type PageStore struct {
	db *sql.DB
}

// NewPageStore returns a new PageStore.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, title, slug, page_type, show_in_footer, footer_order,
	meta_title, meta_description, meta_keywords, hero_image, content,
	published, created_at, updated_at`

func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	var p models.Page
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.PageType, &p.ShowInFooter, &p.FooterOrder,
		&p.MetaTitle, &p.MetaDescription, &p.MetaKeywords, &p.HeroImage, &p.Content,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PageStore) queryPages(query string, args ...any) ([]models.Page, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListPublished returns all published pages ordered for the footer menu.
func (s *PageStore) ListPublished() ([]models.Page, error) {
	items, err := s.queryPages(`SELECT ` + pageColumns + ` FROM pages
		WHERE published = TRUE
		ORDER BY footer_order, title`)
	if err != nil {
		return nil, fmt.Errorf("list published pages: %w", err)
	}
	return items, nil
}

// ListFooter returns the published pages flagged for the footer menu.
func (s *PageStore) ListFooter() ([]models.Page, error) {
	items, err := s.queryPages(`SELECT ` + pageColumns + ` FROM pages
		WHERE published = TRUE AND show_in_footer = TRUE
		ORDER BY footer_order, title`)
	if err != nil {
		return nil, fmt.Errorf("list footer pages: %w", err)
	}
	return items, nil
}

// FindPublishedBySlug retrieves a published page by slug. Returns nil if not
// found.
func (s *PageStore) FindPublishedBySlug(slug string) (*models.Page, error) {
	row := s.db.QueryRow(`SELECT `+pageColumns+` FROM pages
		WHERE slug = $1 AND published = TRUE`, slug)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new page and returns it.
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	row := s.db.QueryRow(`
		INSERT INTO pages (title, slug, page_type, show_in_footer, footer_order,
		                   meta_title, meta_description, meta_keywords,
		                   hero_image, content, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+pageColumns,
		p.Title, p.Slug, p.PageType, p.ShowInFooter, p.FooterOrder,
		p.MetaTitle, p.MetaDescription, p.MetaKeywords,
		p.HeroImage, p.Content, p.Published,
	)
	result, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return result, nil
}

// Update modifies an existing page.
func (s *PageStore) Update(p *models.Page) error {
	_, err := s.db.Exec(`
		UPDATE pages SET
			title = $1, slug = $2, page_type = $3,
			show_in_footer = $4, footer_order = $5,
			meta_title = $6, meta_description = $7, meta_keywords = $8,
			hero_image = $9, content = $10, published = $11,
			updated_at = NOW()
		WHERE id = $12
	`, p.Title, p.Slug, p.PageType, p.ShowInFooter, p.FooterOrder,
		p.MetaTitle, p.MetaDescription, p.MetaKeywords,
		p.HeroImage, p.Content, p.Published, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by ID.
func (s *PageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}
