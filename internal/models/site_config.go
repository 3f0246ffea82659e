// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteConfig is the site-wide configuration singleton: branding, contact
// details, footer text, social links, and theme accents consumed by the
// frontend.
type SiteConfig struct {
	ID          uuid.UUID `json:"id"`
	BrandName   string    `json:"brand_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Disclaimer  string    `json:"disclaimer,omitempty"`
	HeroTitle   string    `json:"hero_title,omitempty"`
	Tagline     string    `json:"tagline,omitempty"`

	Logo     *string `json:"logo,omitempty"`
	LogoIcon *string `json:"logo_icon,omitempty"`
	Favicon  *string `json:"favicon,omitempty"`

	FacebookURL  string `json:"facebook_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	YoutubeURL   string `json:"youtube_url,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`

	CopyrightText  string `json:"copyright_text,omitempty"`
	FooterAbout    string `json:"footer_about_text,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	LogoHeightPx   *int   `json:"logo_height,omitempty"`

	AccentOrangeHex       string `json:"accent_orange_hex,omitempty"`
	AccentOrangeHoverHex  string `json:"accent_orange_hover_hex,omitempty"`
	AccentGradientFromHex string `json:"accent_gradient_from_hex,omitempty"`
	AccentGradientToHex   string `json:"accent_gradient_to_hex,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
