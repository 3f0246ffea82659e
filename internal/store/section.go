// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"coverpress/internal/models"
	"coverpress/internal/slug"
)

// SectionStore manages content sections. A section with a NULL page_id
// belongs to the homepage; otherwise it belongs to the referenced page.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore returns a new SectionStore.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `id, page_id, title, subtitle, anchor_id, sort_order,
	collapsible, background_color, text_color, section_type, layout,
	body, columns, image, video_url, chart_config, code,
	gallery, stats, editor_blocks, cta_text, cta_url`

func scanSection(scanner interface{ Scan(...any) error }) (*models.Section, error) {
	var s models.Section
	var columns []byte
	err := scanner.Scan(
		&s.ID, &s.PageID, &s.Title, &s.Subtitle, &s.AnchorID, &s.Order,
		&s.Collapsible, &s.BackgroundColor, &s.TextColor, &s.Type, &s.Layout,
		&s.Body, &columns, &s.Image, &s.VideoURL, &s.ChartConfig, &s.Code,
		&s.Gallery, &s.Stats, &s.EditorBlocks, &s.CTAText, &s.CTAURL,
	)
	if err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := json.Unmarshal(columns, &s.Columns); err != nil {
			return nil, fmt.Errorf("decode section columns: %w", err)
		}
	}
	return &s, nil
}

func (s *SectionStore) querySections(query string, args ...any) ([]models.Section, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Section
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, *sec)
	}
	return items, rows.Err()
}

// ListForHomepage returns the homepage sections in display order. Order
// values need not be unique; id breaks ties deterministically.
func (s *SectionStore) ListForHomepage() ([]models.Section, error) {
	items, err := s.querySections(`SELECT ` + sectionColumns + ` FROM sections
		WHERE page_id IS NULL
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list homepage sections: %w", err)
	}
	return items, nil
}

// ListForPage returns a page's sections in display order.
func (s *SectionStore) ListForPage(pageID uuid.UUID) ([]models.Section, error) {
	items, err := s.querySections(`SELECT `+sectionColumns+` FROM sections
		WHERE page_id = $1
		ORDER BY sort_order, id`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list page sections: %w", err)
	}
	return items, nil
}

// Create inserts a new section and returns it. A blank anchor is derived
// from the title so in-page links stay stable across title edits.
func (s *SectionStore) Create(sec *models.Section) (*models.Section, error) {
	if sec.AnchorID == "" {
		sec.AnchorID = slug.Generate(sec.Title)
	}

	columns, err := encodeColumns(sec.Columns)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO sections (page_id, title, subtitle, anchor_id, sort_order,
		                      collapsible, background_color, text_color,
		                      section_type, layout, body, columns, image,
		                      video_url, chart_config, code, gallery, stats,
		                      editor_blocks, cta_text, cta_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING `+sectionColumns,
		sec.PageID, sec.Title, sec.Subtitle, sec.AnchorID, sec.Order,
		sec.Collapsible, sec.BackgroundColor, sec.TextColor,
		sec.Type, sec.Layout, sec.Body, columns, sec.Image,
		sec.VideoURL, nullableJSON(sec.ChartConfig), sec.Code,
		nullableJSON(sec.Gallery), nullableJSON(sec.Stats),
		nullableJSON(sec.EditorBlocks), sec.CTAText, sec.CTAURL,
	)
	result, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return result, nil
}

// Update modifies an existing section.
func (s *SectionStore) Update(sec *models.Section) error {
	columns, err := encodeColumns(sec.Columns)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE sections SET
			page_id = $1, title = $2, subtitle = $3, anchor_id = $4,
			sort_order = $5, collapsible = $6,
			background_color = $7, text_color = $8,
			section_type = $9, layout = $10, body = $11, columns = $12,
			image = $13, video_url = $14, chart_config = $15, code = $16,
			gallery = $17, stats = $18, editor_blocks = $19,
			cta_text = $20, cta_url = $21
		WHERE id = $22
	`, sec.PageID, sec.Title, sec.Subtitle, sec.AnchorID,
		sec.Order, sec.Collapsible,
		sec.BackgroundColor, sec.TextColor,
		sec.Type, sec.Layout, sec.Body, columns,
		sec.Image, sec.VideoURL, nullableJSON(sec.ChartConfig), sec.Code,
		nullableJSON(sec.Gallery), nullableJSON(sec.Stats),
		nullableJSON(sec.EditorBlocks), sec.CTAText, sec.CTAURL, sec.ID,
	)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// Delete removes a section by ID.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

// encodeColumns serializes the column list for the JSONB column, keeping
// NULL for sections without columns.
func encodeColumns(columns []models.SectionColumn) (any, error) {
	if len(columns) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("encode section columns: %w", err)
	}
	return data, nil
}

// nullableJSON maps an empty raw payload to SQL NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
