package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: the two
// configuration singletons, the header navigation, a footer page, and a
// pair of insurers with coverage rules so the quotes endpoint returns
// something out of the box. It is a no-op when main pages already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM main_pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check main pages: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	if err := seedSingletons(db); err != nil {
		return err
	}
	if err := seedNavigation(db); err != nil {
		return err
	}
	if err := seedCompanies(db); err != nil {
		return err
	}

	slog.Info("database seeded with development content")
	return nil
}

func seedSingletons(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO site_config (brand_name, email, hero_title, tagline, copyright_text)
		VALUES ($1, $2, $3, $4, $5)
	`, "CoverPress", "hello@coverpress.local",
		"Compare coverage where you live",
		"Real quotes from insurers that actually cover your ZIP",
		"CoverPress")
	if err != nil {
		return fmt.Errorf("seed site config: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO homepage (meta_title, meta_description, cta_text, cta_url)
		VALUES ($1, $2, $3, $4)
	`, "CoverPress — Compare Insurance Coverage",
		"Find insurers serving your ZIP code and compare their coverage.",
		"Get quotes", "/quotes")
	if err != nil {
		return fmt.Errorf("seed homepage: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO sections (title, subtitle, anchor_id, sort_order, section_type, layout, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, "How it works", "Three steps to a quote", "how-it-works", 0,
		"rich_text", "full",
		"<p>Enter your ZIP, pick the insurers that cover it, request quotes.</p>")
	if err != nil {
		return fmt.Errorf("seed homepage section: %w", err)
	}
	return nil
}

func seedNavigation(db *sql.DB) error {
	var autoPageID string
	err := db.QueryRow(`
		INSERT INTO main_pages (name, slug, sort_order, show_in_header, has_dropdown)
		VALUES ($1, $2, $3, TRUE, TRUE)
		RETURNING id
	`, "Auto Insurance", "auto-insurance", 0).Scan(&autoPageID)
	if err != nil {
		return fmt.Errorf("seed main page: %w", err)
	}

	var categoryID string
	err = db.QueryRow(`
		INSERT INTO categories (parent_page_id, name, slug, article_published,
		                        article_title, article_summary)
		VALUES ($1, $2, $3, TRUE, $4, $5)
		RETURNING id
	`, autoPageID, "Liability Coverage", "liability-coverage",
		"Liability Coverage Explained",
		"What liability coverage pays for and how much you need.").Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO articles (title, slug, summary, content,
		                      parent_page_id, category_id, published)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`, "Minimum Coverage by State", "minimum-coverage-by-state",
		"State-by-state minimum liability requirements.",
		"<p>Every state sets its own floor for liability coverage.</p>",
		autoPageID, categoryID)
	if err != nil {
		return fmt.Errorf("seed article: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO pages (title, slug, page_type, footer_order, content, published)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`, "About Us", "about-us", "company", 0,
		"<p>CoverPress helps drivers compare insurers by ZIP code.</p>")
	if err != nil {
		return fmt.Errorf("seed page: %w", err)
	}
	return nil
}

func seedCompanies(db *sql.DB) error {
	type coverage struct {
		state     string
		statewide bool
		zipStart  any
		zipEnd    any
		zipText   string
	}
	companies := []struct {
		name, slug string
		rating     float64
		coverages  []coverage
	}{
		{
			name: "Granite State Mutual", slug: "granite-state-mutual", rating: 4.6,
			coverages: []coverage{{state: "NH", statewide: true}},
		},
		{
			name: "Lone Star Assurance", slug: "lone-star-assurance", rating: 4.2,
			coverages: []coverage{
				{state: "TX", zipStart: 75000, zipEnd: 75999},
				{state: "TX", zipText: "73301, 73344"},
			},
		},
	}

	for _, c := range companies {
		var id string
		err := db.QueryRow(`
			INSERT INTO insurance_companies (name, slug, rating, published)
			VALUES ($1, $2, $3, TRUE)
			RETURNING id
		`, c.name, c.slug, c.rating).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed company %s: %w", c.slug, err)
		}
		for _, cov := range c.coverages {
			_, err := db.Exec(`
				INSERT INTO insurance_coverages (company_id, state_code,
				                                 covers_entire_state,
				                                 zip_range_start, zip_range_end,
				                                 zip_codes_text)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, id, cov.state, cov.statewide, cov.zipStart, cov.zipEnd, cov.zipText)
			if err != nil {
				return fmt.Errorf("seed coverage for %s: %w", c.slug, err)
			}
		}
	}
	return nil
}
