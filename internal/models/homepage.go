// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Homepage is the homepage configuration singleton. The store keeps exactly
// one row and fetches it by that well-known identity, never through process
// globals.
type Homepage struct {
	ID              uuid.UUID `json:"id"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	MetaKeywords    string    `json:"meta_keywords,omitempty"`
	HeroImage       *string   `json:"hero_image,omitempty"`
	Content         *string   `json:"content,omitempty"`
	CTAText         string    `json:"home_cta_text,omitempty"`
	CTAURL          string    `json:"home_cta_url,omitempty"`
	AnchorID        string    `json:"home_anchor_id,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// VideoPlacement is a video shown on the homepage below the hero. Exactly
// one of VideoURL (external, embed-normalized on output) or VideoFile
// (stored upload) is set.
type VideoPlacement struct {
	ID        uuid.UUID `json:"id"`
	Position  string    `json:"position"`
	Title     string    `json:"title,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
	VideoFile *string   `json:"video_file,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}
