// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"coverpress/internal/models"
)

// SiteStore manages the two configuration singletons (site config and
// homepage) plus homepage video placements. Each singleton table holds
// exactly one row, inserted by the seed; reads fetch that row directly
// rather than going through process globals.
type SiteStore struct {
	db *sql.DB
}

// NewSiteStore returns a new SiteStore.
func NewSiteStore(db *sql.DB) *SiteStore {
	return &SiteStore{db: db}
}

const siteConfigColumns = `id, brand_name, email, phone_number, disclaimer,
	hero_title, tagline, logo, logo_icon, favicon,
	facebook_url, twitter_url, instagram_url, youtube_url, linkedin_url,
	copyright_text, footer_about, company_address, logo_height_px,
	accent_orange_hex, accent_orange_hover_hex,
	accent_gradient_from_hex, accent_gradient_to_hex, updated_at`

// SiteConfig returns the site configuration singleton. Returns nil when the
// row has not been seeded yet.
func (s *SiteStore) SiteConfig() (*models.SiteConfig, error) {
	c := &models.SiteConfig{}
	err := s.db.QueryRow(`SELECT `+siteConfigColumns+` FROM site_config LIMIT 1`).Scan(
		&c.ID, &c.BrandName, &c.Email, &c.PhoneNumber, &c.Disclaimer,
		&c.HeroTitle, &c.Tagline, &c.Logo, &c.LogoIcon, &c.Favicon,
		&c.FacebookURL, &c.TwitterURL, &c.InstagramURL, &c.YoutubeURL, &c.LinkedinURL,
		&c.CopyrightText, &c.FooterAbout, &c.CompanyAddress, &c.LogoHeightPx,
		&c.AccentOrangeHex, &c.AccentOrangeHoverHex,
		&c.AccentGradientFromHex, &c.AccentGradientToHex, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	return c, nil
}

// SaveSiteConfig upserts the site configuration singleton.
func (s *SiteStore) SaveSiteConfig(c *models.SiteConfig) error {
	_, err := s.db.Exec(`
		INSERT INTO site_config (id, brand_name, email, phone_number, disclaimer,
		                         hero_title, tagline, logo, logo_icon, favicon,
		                         facebook_url, twitter_url, instagram_url,
		                         youtube_url, linkedin_url, copyright_text,
		                         footer_about, company_address, logo_height_px,
		                         accent_orange_hex, accent_orange_hover_hex,
		                         accent_gradient_from_hex, accent_gradient_to_hex)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			brand_name = EXCLUDED.brand_name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			disclaimer = EXCLUDED.disclaimer,
			hero_title = EXCLUDED.hero_title,
			tagline = EXCLUDED.tagline,
			logo = EXCLUDED.logo,
			logo_icon = EXCLUDED.logo_icon,
			favicon = EXCLUDED.favicon,
			facebook_url = EXCLUDED.facebook_url,
			twitter_url = EXCLUDED.twitter_url,
			instagram_url = EXCLUDED.instagram_url,
			youtube_url = EXCLUDED.youtube_url,
			linkedin_url = EXCLUDED.linkedin_url,
			copyright_text = EXCLUDED.copyright_text,
			footer_about = EXCLUDED.footer_about,
			company_address = EXCLUDED.company_address,
			logo_height_px = EXCLUDED.logo_height_px,
			accent_orange_hex = EXCLUDED.accent_orange_hex,
			accent_orange_hover_hex = EXCLUDED.accent_orange_hover_hex,
			accent_gradient_from_hex = EXCLUDED.accent_gradient_from_hex,
			accent_gradient_to_hex = EXCLUDED.accent_gradient_to_hex,
			updated_at = NOW()
	`, c.ID, c.BrandName, c.Email, c.PhoneNumber, c.Disclaimer,
		c.HeroTitle, c.Tagline, c.Logo, c.LogoIcon, c.Favicon,
		c.FacebookURL, c.TwitterURL, c.InstagramURL, c.YoutubeURL, c.LinkedinURL,
		c.CopyrightText, c.FooterAbout, c.CompanyAddress, c.LogoHeightPx,
		c.AccentOrangeHex, c.AccentOrangeHoverHex,
		c.AccentGradientFromHex, c.AccentGradientToHex)
	if err != nil {
		return fmt.Errorf("save site config: %w", err)
	}
	return nil
}

const homepageColumns = `id, meta_title, meta_description, meta_keywords,
	hero_image, content, cta_text, cta_url, anchor_id, updated_at`

// Homepage returns the homepage singleton. Returns nil when the row has not
// been seeded yet.
func (s *SiteStore) Homepage() (*models.Homepage, error) {
	h := &models.Homepage{}
	err := s.db.QueryRow(`SELECT `+homepageColumns+` FROM homepage LIMIT 1`).Scan(
		&h.ID, &h.MetaTitle, &h.MetaDescription, &h.MetaKeywords,
		&h.HeroImage, &h.Content, &h.CTAText, &h.CTAURL, &h.AnchorID, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load homepage: %w", err)
	}
	return h, nil
}

// SaveHomepage upserts the homepage singleton.
func (s *SiteStore) SaveHomepage(h *models.Homepage) error {
	_, err := s.db.Exec(`
		INSERT INTO homepage (id, meta_title, meta_description, meta_keywords,
		                      hero_image, content, cta_text, cta_url, anchor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			meta_keywords = EXCLUDED.meta_keywords,
			hero_image = EXCLUDED.hero_image,
			content = EXCLUDED.content,
			cta_text = EXCLUDED.cta_text,
			cta_url = EXCLUDED.cta_url,
			anchor_id = EXCLUDED.anchor_id,
			updated_at = NOW()
	`, h.ID, h.MetaTitle, h.MetaDescription, h.MetaKeywords,
		h.HeroImage, h.Content, h.CTAText, h.CTAURL, h.AnchorID)
	if err != nil {
		return fmt.Errorf("save homepage: %w", err)
	}
	return nil
}

// ListVideoPlacements returns the published homepage videos, newest first.
func (s *SiteStore) ListVideoPlacements() ([]models.VideoPlacement, error) {
	rows, err := s.db.Query(`
		SELECT id, position, title, video_url, video_file, published, created_at
		FROM video_placements
		WHERE published = TRUE
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list video placements: %w", err)
	}
	defer rows.Close()

	var items []models.VideoPlacement
	for rows.Next() {
		var v models.VideoPlacement
		if err := rows.Scan(
			&v.ID, &v.Position, &v.Title, &v.VideoURL, &v.VideoFile,
			&v.Published, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan video placement: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// CreateVideoPlacement adds a homepage video.
func (s *SiteStore) CreateVideoPlacement(v *models.VideoPlacement) (*models.VideoPlacement, error) {
	result := &models.VideoPlacement{}
	err := s.db.QueryRow(`
		INSERT INTO video_placements (position, title, video_url, video_file, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, position, title, video_url, video_file, published, created_at
	`, v.Position, v.Title, v.VideoURL, v.VideoFile, v.Published).Scan(
		&result.ID, &result.Position, &result.Title, &result.VideoURL,
		&result.VideoFile, &result.Published, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create video placement: %w", err)
	}
	return result, nil
}
