// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// MainPage is a top-level navigation section. Categories and articles are
// filed under exactly one main page.
type MainPage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Order        int       `json:"order"`
	ShowInHeader bool      `json:"show_in_header"`
	HasDropdown  bool      `json:"has_dropdown"`
}
