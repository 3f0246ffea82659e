// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package articles

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"coverpress/internal/models"
	"coverpress/internal/slug"
)

// maxSlugAttempts bounds the insert retry loop when concurrent writers race
// to the same slug candidate. The pre-check already walks past existing
// suffixes, so hitting this cap means the database is persistently
// conflicting and the write should fail instead of spinning.
const maxSlugAttempts = 5

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// Store is the article half of the persistence boundary. Create and Update
// must be backed by a unique constraint on the slug column — the race
// between the existence check and the write is resolved by catching the
// constraint violation and retrying, not by locking.
type Store interface {
	SlugExists(slugValue string, excludeID uuid.UUID) (bool, error)
	Create(a *models.Article) (*models.Article, error)
	Update(a *models.Article) error
}

// CategoryFinder loads the category referenced by an article.
type CategoryFinder interface {
	FindByID(id uuid.UUID) (*models.Category, error)
}

// Service runs the full persistence path for articles: validation,
// parent-page alignment, slug assignment, and the conflict-retried write.
type Service struct {
	store      Store
	categories CategoryFinder
}

// NewService creates the article persistence service.
func NewService(store Store, categories CategoryFinder) *Service {
	return &Service{store: store, categories: categories}
}

// Create validates and persists a new article, assigning its slug.
func (s *Service) Create(article *models.Article) (*models.Article, error) {
	category, err := s.prepare(article)
	if err != nil {
		return nil, err
	}

	var created *models.Article
	err = s.writeWithSlugRetry(article, category, func() error {
		var werr error
		created, werr = s.store.Create(article)
		return werr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update validates and persists changes to an existing article. The slug is
// recomputed the same way as on create, excluding the article itself from
// the collision check.
func (s *Service) Update(article *models.Article) error {
	category, err := s.prepare(article)
	if err != nil {
		return err
	}
	return s.writeWithSlugRetry(article, category, func() error {
		return s.store.Update(article)
	})
}

// prepare loads the referenced category, validates placement, and aligns
// the parent page. Returns the category for slug derivation.
func (s *Service) prepare(article *models.Article) (*models.Category, error) {
	var category *models.Category
	if article.CategoryID != nil {
		var err error
		category, err = s.categories.FindByID(*article.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("articles load category: %w", err)
		}
		if category == nil {
			return nil, fmt.Errorf("articles: category %s not found", article.CategoryID)
		}
	}

	if err := Validate(article, category); err != nil {
		return nil, err
	}
	alignParentPage(article, category)
	return category, nil
}

// writeWithSlugRetry assigns the next free slug candidate and runs the
// write, stepping to the next candidate whenever the unique constraint
// fires under a concurrent race.
func (s *Service) writeWithSlugRetry(article *models.Article, category *models.Category, write func() error) error {
	base := baseSlug(article, category)
	if base == "" {
		base = slug.Generate(article.Title)
	}

	next, err := s.firstFreeSuffix(base, article.ID)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		article.Slug = slug.Candidate(base, next)

		err := write()
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}

		// Another writer landed the same candidate between our check
		// and the insert. Step to the next suffix and try again.
		slog.Warn("article slug conflict, retrying",
			"slug", article.Slug,
			"attempt", attempt+1,
		)
		next++
	}

	return fmt.Errorf("%w after %d attempts (base %q)", ErrSlugExhausted, maxSlugAttempts, base)
}

// firstFreeSuffix walks suffix candidates (base, base-1, base-2, ...) until
// one is unused by any other article.
func (s *Service) firstFreeSuffix(base string, selfID uuid.UUID) (int, error) {
	for n := 0; ; n++ {
		exists, err := s.store.SlugExists(slug.Candidate(base, n), selfID)
		if err != nil {
			return 0, fmt.Errorf("articles slug check: %w", err)
		}
		if !exists {
			return n, nil
		}
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
