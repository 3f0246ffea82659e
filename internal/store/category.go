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

// CategoryStore manages categories in the database. Slugs are unique per
// parent page, enforced by a composite constraint.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryJoinedColumns = `
	c.id, c.parent_page_id, c.name, c.slug,
	c.article_published, c.article_title, c.article_summary, c.article_content,
	c.author_name, c.author_image, c.author_description,
	c.reviewer_name, c.reviewer_image, c.reviewer_description,
	mp.slug`

const categoryJoins = `
	FROM categories c
	JOIN main_pages mp ON mp.id = c.parent_page_id`

// inlineArticleFilter selects categories that contribute an item to the
// content feed.
const inlineArticleFilter = `c.article_published = TRUE
		AND c.article_title IS NOT NULL AND c.article_title <> ''`

// scanCategory scans a joined row into a Category.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.ParentPageID, &c.Name, &c.Slug,
		&c.ArticlePublished, &c.ArticleTitle, &c.ArticleSummary, &c.ArticleContent,
		&c.AuthorName, &c.AuthorImage, &c.AuthorDescription,
		&c.ReviewerName, &c.ReviewerImage, &c.ReviewerDescription,
		&c.ParentPageSlug,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryStore) queryCategories(query string, args ...any) ([]models.Category, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	items, err := s.queryCategories(`SELECT` + categoryJoinedColumns + categoryJoins + `
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// ListByParentPage returns the categories filed under a main page, ordered
// by name.
func (s *CategoryStore) ListByParentPage(pageID uuid.UUID) ([]models.Category, error) {
	items, err := s.queryCategories(`SELECT`+categoryJoinedColumns+categoryJoins+`
		WHERE c.parent_page_id = $1
		ORDER BY c.name`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list categories by parent page: %w", err)
	}
	return items, nil
}

// ListWithInlineArticle returns categories carrying a published inline
// article, ordered by name.
func (s *CategoryStore) ListWithInlineArticle() ([]models.Category, error) {
	items, err := s.queryCategories(`SELECT` + categoryJoinedColumns + categoryJoins + `
		WHERE ` + inlineArticleFilter + `
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("list categories with inline article: %w", err)
	}
	return items, nil
}

// ListInlineByParentPage returns inline-article categories under a main
// page, ordered by name.
func (s *CategoryStore) ListInlineByParentPage(pageID uuid.UUID) ([]models.Category, error) {
	items, err := s.queryCategories(`SELECT`+categoryJoinedColumns+categoryJoins+`
		WHERE c.parent_page_id = $1 AND `+inlineArticleFilter+`
		ORDER BY c.name`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list inline categories by parent page: %w", err)
	}
	return items, nil
}

// FindInlineBySlug retrieves a category by slug only when it carries a
// published inline article. Returns nil if not found. Category slugs are
// unique per parent page, so a globally ambiguous slug resolves to the
// first match by name.
func (s *CategoryStore) FindInlineBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT`+categoryJoinedColumns+categoryJoins+`
		WHERE c.slug = $1 AND `+inlineArticleFilter+`
		ORDER BY c.name
		LIMIT 1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inline category by slug: %w", err)
	}
	return c, nil
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT`+categoryJoinedColumns+categoryJoins+`
		WHERE c.id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO categories (parent_page_id, name, slug,
		                        article_published, article_title, article_summary, article_content,
		                        author_name, author_image, author_description,
		                        reviewer_name, reviewer_image, reviewer_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, c.ParentPageID, c.Name, c.Slug,
		c.ArticlePublished, c.ArticleTitle, c.ArticleSummary, c.ArticleContent,
		c.AuthorName, c.AuthorImage, c.AuthorDescription,
		c.ReviewerName, c.ReviewerImage, c.ReviewerDescription,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return s.FindByID(id)
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			parent_page_id = $1, name = $2, slug = $3,
			article_published = $4, article_title = $5,
			article_summary = $6, article_content = $7,
			author_name = $8, author_image = $9, author_description = $10,
			reviewer_name = $11, reviewer_image = $12, reviewer_description = $13
		WHERE id = $14
	`, c.ParentPageID, c.Name, c.Slug,
		c.ArticlePublished, c.ArticleTitle, c.ArticleSummary, c.ArticleContent,
		c.AuthorName, c.AuthorImage, c.AuthorDescription,
		c.ReviewerName, c.ReviewerImage, c.ReviewerDescription, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Articles referencing it are detached
// (ON DELETE SET NULL).
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
