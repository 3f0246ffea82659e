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

// ArticleStore manages standalone articles in the database. Public read
// methods join the category and parent page so the virtual slug fields are
// populated; admin methods work on the bare row.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleJoinedColumns = `
	a.id, a.title, a.slug, a.summary, a.content,
	a.hero_image, a.footer_address,
	a.author_name, a.author_image, a.author_description,
	a.reviewer_name, a.reviewer_image, a.reviewer_description,
	a.parent_page_id, a.category_id,
	a.published, a.created_at, a.updated_at,
	COALESCE(c.name, ''), COALESCE(c.slug, ''), COALESCE(mp.slug, '')`

const articleJoins = `
	FROM articles a
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN main_pages mp ON mp.id = a.parent_page_id`

// scanArticle scans a joined row into an Article.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content,
		&a.HeroImage, &a.FooterAddress,
		&a.AuthorName, &a.AuthorImage, &a.AuthorDescription,
		&a.ReviewerName, &a.ReviewerImage, &a.ReviewerDescription,
		&a.ParentPageID, &a.CategoryID,
		&a.Published, &a.CreatedAt, &a.UpdatedAt,
		&a.CategoryName, &a.CategorySlug, &a.ParentPageSlug,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ArticleStore) queryArticles(query string, args ...any) ([]models.Article, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// List returns all articles, newest first. Used by the admin API.
func (s *ArticleStore) List() ([]models.Article, error) {
	items, err := s.queryArticles(`SELECT` + articleJoinedColumns + articleJoins + `
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return items, nil
}

// ListPublished returns all published articles, newest first.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	items, err := s.queryArticles(`SELECT`+articleJoinedColumns+articleJoins+`
		WHERE a.published = $1
		ORDER BY a.created_at DESC`, true)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return items, nil
}

// ListPublishedByParentPage returns published articles filed under the given
// main page, newest first.
func (s *ArticleStore) ListPublishedByParentPage(pageID uuid.UUID) ([]models.Article, error) {
	items, err := s.queryArticles(`SELECT`+articleJoinedColumns+articleJoins+`
		WHERE a.published = TRUE AND a.parent_page_id = $1
		ORDER BY a.created_at DESC`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list articles by parent page: %w", err)
	}
	return items, nil
}

// ListPublishedByCategory returns up to limit published articles filed under
// the given category, newest first. Used for the navigation tree's article
// previews.
func (s *ArticleStore) ListPublishedByCategory(categoryID uuid.UUID, limit int) ([]models.Article, error) {
	items, err := s.queryArticles(`SELECT`+articleJoinedColumns+articleJoins+`
		WHERE a.published = TRUE AND a.category_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2`, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return items, nil
}

// LatestFooterAddress returns the footer address of the most recently
// published article that carries one. Empty string when no article does.
func (s *ArticleStore) LatestFooterAddress() (string, error) {
	var address string
	err := s.db.QueryRow(`
		SELECT footer_address FROM articles
		WHERE published = TRUE AND footer_address <> ''
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&address)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest footer address: %w", err)
	}
	return address, nil
}

// FindPublishedBySlug retrieves a published article by slug. Returns nil if
// not found.
func (s *ArticleStore) FindPublishedBySlug(slug string) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT`+articleJoinedColumns+articleJoins+`
		WHERE a.slug = $1 AND a.published = TRUE`, slug)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// FindByID retrieves an article by ID regardless of publish state. Returns
// nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT`+articleJoinedColumns+articleJoins+`
		WHERE a.id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// SlugExists reports whether another article already uses the slug.
// excludeID lets an update ignore the article's own row.
func (s *ArticleStore) SlugExists(slugValue string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)
	`, slugValue, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("article slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new article and returns it with generated fields.
// The slug column carries a unique constraint; callers are expected to
// handle the violation and retry with a different slug.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO articles (title, slug, summary, content,
		                      hero_image, footer_address,
		                      author_name, author_image, author_description,
		                      reviewer_name, reviewer_image, reviewer_description,
		                      parent_page_id, category_id, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`, a.Title, a.Slug, a.Summary, a.Content,
		a.HeroImage, a.FooterAddress,
		a.AuthorName, a.AuthorImage, a.AuthorDescription,
		a.ReviewerName, a.ReviewerImage, a.ReviewerDescription,
		a.ParentPageID, a.CategoryID, a.Published,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return s.FindByID(id)
}

// Update modifies an existing article. Like Create, a slug conflict
// surfaces as a unique constraint violation for the caller to retry.
func (s *ArticleStore) Update(a *models.Article) error {
	_, err := s.db.Exec(`
		UPDATE articles SET
			title = $1, slug = $2, summary = $3, content = $4,
			hero_image = $5, footer_address = $6,
			author_name = $7, author_image = $8, author_description = $9,
			reviewer_name = $10, reviewer_image = $11, reviewer_description = $12,
			parent_page_id = $13, category_id = $14, published = $15,
			updated_at = NOW()
		WHERE id = $16
	`, a.Title, a.Slug, a.Summary, a.Content,
		a.HeroImage, a.FooterAddress,
		a.AuthorName, a.AuthorImage, a.AuthorDescription,
		a.ReviewerName, a.ReviewerImage, a.ReviewerDescription,
		a.ParentPageID, a.CategoryID, a.Published, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
