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

// MainPageStore manages the top-level navigation sections.
type MainPageStore struct {
	db *sql.DB
}

// NewMainPageStore returns a new MainPageStore.
func NewMainPageStore(db *sql.DB) *MainPageStore {
	return &MainPageStore{db: db}
}

const mainPageColumns = `id, name, slug, sort_order, show_in_header, has_dropdown`

func scanMainPage(scanner interface{ Scan(...any) error }) (*models.MainPage, error) {
	var p models.MainPage
	err := scanner.Scan(&p.ID, &p.Name, &p.Slug, &p.Order, &p.ShowInHeader, &p.HasDropdown)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all main pages in navigation order.
func (s *MainPageStore) List() ([]models.MainPage, error) {
	rows, err := s.db.Query(`SELECT ` + mainPageColumns + ` FROM main_pages ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list main pages: %w", err)
	}
	defer rows.Close()

	var items []models.MainPage
	for rows.Next() {
		p, err := scanMainPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan main page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a main page by slug. Returns nil if not found.
func (s *MainPageStore) FindBySlug(slug string) (*models.MainPage, error) {
	row := s.db.QueryRow(`SELECT `+mainPageColumns+` FROM main_pages WHERE slug = $1`, slug)
	p, err := scanMainPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find main page by slug: %w", err)
	}
	return p, nil
}

// FindByID retrieves a main page by ID. Returns nil if not found.
func (s *MainPageStore) FindByID(id uuid.UUID) (*models.MainPage, error) {
	row := s.db.QueryRow(`SELECT `+mainPageColumns+` FROM main_pages WHERE id = $1`, id)
	p, err := scanMainPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find main page by id: %w", err)
	}
	return p, nil
}

// Create inserts a new main page and returns it.
func (s *MainPageStore) Create(p *models.MainPage) (*models.MainPage, error) {
	row := s.db.QueryRow(`
		INSERT INTO main_pages (name, slug, sort_order, show_in_header, has_dropdown)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+mainPageColumns,
		p.Name, p.Slug, p.Order, p.ShowInHeader, p.HasDropdown,
	)
	result, err := scanMainPage(row)
	if err != nil {
		return nil, fmt.Errorf("create main page: %w", err)
	}
	return result, nil
}

// Update modifies an existing main page.
func (s *MainPageStore) Update(p *models.MainPage) error {
	_, err := s.db.Exec(`
		UPDATE main_pages SET name = $1, slug = $2, sort_order = $3,
			show_in_header = $4, has_dropdown = $5
		WHERE id = $6
	`, p.Name, p.Slug, p.Order, p.ShowInHeader, p.HasDropdown, p.ID)
	if err != nil {
		return fmt.Errorf("update main page: %w", err)
	}
	return nil
}
