// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"

	"github.com/google/uuid"

	"coverpress/internal/models"
	"coverpress/internal/video"
)

// sectionView is the public projection of a content section. Only the
// payload fields relevant to the section's type are populated, so a
// rich_text section never leaks an empty chart config and the frontend can
// switch on "type" without null checks.
type sectionView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	AnchorID    string    `json:"anchor_id,omitempty"`
	Order       int       `json:"order"`
	Collapsible bool      `json:"collapsible"`

	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`

	Type   models.SectionType   `json:"type"`
	Layout models.SectionLayout `json:"layout"`

	Body         *string                `json:"body,omitempty"`
	Columns      []models.SectionColumn `json:"columns,omitempty"`
	Image        *string                `json:"image,omitempty"`
	VideoURL     string                 `json:"video_url,omitempty"`
	ChartConfig  json.RawMessage        `json:"chart_config,omitempty"`
	Code         string                 `json:"code,omitempty"`
	Gallery      json.RawMessage        `json:"gallery,omitempty"`
	Stats        json.RawMessage        `json:"stats,omitempty"`
	EditorBlocks json.RawMessage        `json:"editor_blocks,omitempty"`
	CTAText      string                 `json:"cta_text,omitempty"`
	CTAURL       string                 `json:"cta_url,omitempty"`
}

// sectionView projects a stored section for the public API, resolving media
// references and normalizing video URLs to their embed form.
func (p *Public) sectionView(s models.Section) sectionView {
	v := sectionView{
		ID:              s.ID,
		Title:           s.Title,
		Subtitle:        s.Subtitle,
		AnchorID:        s.AnchorID,
		Order:           s.Order,
		Collapsible:     s.Collapsible,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		Type:            s.Type,
		Layout:          s.Layout,
	}

	switch s.Type {
	case models.SectionRichText:
		v.Body = s.Body
	case models.SectionRichColumns:
		v.Columns = s.Columns
	case models.SectionMedia:
		v.Image = p.media.URL(s.Image)
		v.Body = s.Body
	case models.SectionVideo:
		v.VideoURL = video.EmbedURL(s.VideoURL)
	case models.SectionGraph:
		v.ChartConfig = s.ChartConfig
	case models.SectionCode:
		v.Code = s.Code
	case models.SectionGallery:
		v.Gallery = s.Gallery
	case models.SectionStats:
		v.Stats = s.Stats
	case models.SectionEditorBlocks:
		v.EditorBlocks = s.EditorBlocks
	case models.SectionCTA:
		v.CTAText = s.CTAText
		v.CTAURL = s.CTAURL
	}
	return v
}
