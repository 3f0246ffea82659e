// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// InsuranceCompany is an insurer listed in the quotes results. Slug is the
// canonical identity: unique, stable, and used for deduplication even if two
// rows share a display name.
type InsuranceCompany struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Logo             *string   `json:"logo,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	ShortURL         string    `json:"short_url,omitempty"`
	DomainURL        string    `json:"domain_url,omitempty"`
	LandingURL       string    `json:"landing_url,omitempty"`
	ContactURL       string    `json:"contact_url,omitempty"`
	Published        bool      `json:"published"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Coverages is populated by store methods that load the company's
	// coverage rules alongside the company row.
	Coverages []InsuranceCoverage `json:"coverages,omitempty"`
}

// InsuranceCoverage is one coverage rule for a company in one state.
// Any combination of the three matching strategies may be populated:
// full-state coverage, a numeric ZIP range, or a free-text ZIP list.
// A rule matches a ZIP when any populated strategy matches.
type InsuranceCoverage struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`

	StateCode         string `json:"state_code"`
	CoversEntireState bool   `json:"covers_entire_state"`

	// Either bound may be set alone (exact match) or both (inclusive
	// range; swapped bounds are tolerated).
	ZipRangeStart *int `json:"zip_range_start,omitempty"`
	ZipRangeEnd   *int `json:"zip_range_end,omitempty"`

	// Comma/space separated ZIPs and NNNNN-NNNNN ranges, tolerant of
	// dash variants and stray punctuation.
	ZipCodesText string `json:"zip_codes_text,omitempty"`

	Notes string `json:"notes,omitempty"`
}
