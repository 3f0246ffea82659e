// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SectionType selects which payload fields of a Section are meaningful.
type SectionType string

const (
	SectionRichText     SectionType = "rich_text"
	SectionRichColumns  SectionType = "rich_columns"
	SectionMedia        SectionType = "media"
	SectionVideo        SectionType = "video"
	SectionGraph        SectionType = "graph"
	SectionCode         SectionType = "code"
	SectionGallery      SectionType = "gallery"
	SectionStats        SectionType = "stats"
	SectionEditorBlocks SectionType = "editor_blocks"
	SectionCTA          SectionType = "cta"
)

// SectionLayout controls how a section's columns are arranged.
type SectionLayout string

const (
	LayoutFull  SectionLayout = "full"
	LayoutSplit SectionLayout = "split"
	LayoutGrid2 SectionLayout = "grid2"
	LayoutGrid3 SectionLayout = "grid3"
	LayoutGrid4 SectionLayout = "grid4"
	LayoutGrid5 SectionLayout = "grid5"
)

// SectionColumn is one column of a rich_columns section. At most five
// columns per section.
type SectionColumn struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Rich     string `json:"rich,omitempty"`
}

// Section is one content block of the homepage or of a named page.
// A nil PageID means the section belongs to the homepage singleton.
// Sections are ordered by (order, id); order values need not be unique.
type Section struct {
	ID     uuid.UUID  `json:"id"`
	PageID *uuid.UUID `json:"page_id,omitempty"`

	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	AnchorID    string `json:"anchor_id,omitempty"`
	Order       int    `json:"order"`
	Collapsible bool   `json:"collapsible"`

	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`

	Type   SectionType   `json:"type"`
	Layout SectionLayout `json:"layout"`

	// Payload fields. Which of these carry data depends on Type; the
	// public handlers project only the fields relevant to the type.
	Body         *string         `json:"body,omitempty"`
	Columns      []SectionColumn `json:"columns,omitempty"`
	Image        *string         `json:"image,omitempty"`
	VideoURL     string          `json:"video_url,omitempty"`
	ChartConfig  json.RawMessage `json:"chart_config,omitempty"`
	Code         string          `json:"code,omitempty"`
	Gallery      json.RawMessage `json:"gallery,omitempty"`
	Stats        json.RawMessage `json:"stats,omitempty"`
	EditorBlocks json.RawMessage `json:"editor_blocks,omitempty"`
	CTAText      string          `json:"cta_text,omitempty"`
	CTAURL       string          `json:"cta_url,omitempty"`
}
