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

// ContactStore manages contact form submissions.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore returns a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a new contact message with status "new".
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	result := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, subject, message, status, created_at
	`, m.Name, m.Email, m.Subject, m.Message, models.ContactStatusNew).Scan(
		&result.ID, &result.Name, &result.Email, &result.Subject,
		&result.Message, &result.Status, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return result, nil
}

// List returns all contact messages, newest first.
func (s *ContactStore) List() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.Status, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// UpdateStatus moves a message through the triage states.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.ContactStatus) error {
	_, err := s.db.Exec(`UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return nil
}
