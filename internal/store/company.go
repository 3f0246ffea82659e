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

// CompanyStore manages insurance companies and their coverage rules.
type CompanyStore struct {
	db *sql.DB
}

// NewCompanyStore returns a new CompanyStore.
func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

const companyColumns = `id, name, slug, logo, rating, short_description,
	short_url, domain_url, landing_url, contact_url, published, updated_at`

const coverageColumns = `id, company_id, state_code, covers_entire_state,
	zip_range_start, zip_range_end, zip_codes_text, notes`

func scanCompany(scanner interface{ Scan(...any) error }) (*models.InsuranceCompany, error) {
	var c models.InsuranceCompany
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Logo, &c.Rating, &c.ShortDescription,
		&c.ShortURL, &c.DomainURL, &c.LandingURL, &c.ContactURL,
		&c.Published, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPublished returns all published companies with their coverage rules
// loaded, ordered best-rated first. Companies without a rating sort last.
func (s *CompanyStore) ListPublished() ([]models.InsuranceCompany, error) {
	rows, err := s.db.Query(`SELECT ` + companyColumns + ` FROM insurance_companies
		WHERE published = TRUE
		ORDER BY rating DESC NULLS LAST, name`)
	if err != nil {
		return nil, fmt.Errorf("list published companies: %w", err)
	}
	defer rows.Close()

	var companies []models.InsuranceCompany
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		byID[c.ID] = len(companies)
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachCoverages(companies, byID); err != nil {
		return nil, err
	}
	return companies, nil
}

// attachCoverages loads coverage rules for the given companies in one query
// and distributes them by company ID.
func (s *CompanyStore) attachCoverages(companies []models.InsuranceCompany, byID map[uuid.UUID]int) error {
	if len(companies) == 0 {
		return nil
	}

	rows, err := s.db.Query(`SELECT ` + coverageColumns + ` FROM insurance_coverages
		WHERE company_id IN (SELECT id FROM insurance_companies WHERE published = TRUE)
		ORDER BY state_code`)
	if err != nil {
		return fmt.Errorf("list coverages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cov models.InsuranceCoverage
		if err := rows.Scan(
			&cov.ID, &cov.CompanyID, &cov.StateCode, &cov.CoversEntireState,
			&cov.ZipRangeStart, &cov.ZipRangeEnd, &cov.ZipCodesText, &cov.Notes,
		); err != nil {
			return fmt.Errorf("scan coverage: %w", err)
		}
		if i, ok := byID[cov.CompanyID]; ok {
			companies[i].Coverages = append(companies[i].Coverages, cov)
		}
	}
	return rows.Err()
}

// FindBySlug retrieves a company by slug, coverages included. Returns nil
// if not found.
func (s *CompanyStore) FindBySlug(slug string) (*models.InsuranceCompany, error) {
	row := s.db.QueryRow(`SELECT `+companyColumns+` FROM insurance_companies
		WHERE slug = $1`, slug)
	c, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company by slug: %w", err)
	}

	rows, err := s.db.Query(`SELECT `+coverageColumns+` FROM insurance_coverages
		WHERE company_id = $1
		ORDER BY state_code`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list company coverages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cov models.InsuranceCoverage
		if err := rows.Scan(
			&cov.ID, &cov.CompanyID, &cov.StateCode, &cov.CoversEntireState,
			&cov.ZipRangeStart, &cov.ZipRangeEnd, &cov.ZipCodesText, &cov.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan coverage: %w", err)
		}
		c.Coverages = append(c.Coverages, cov)
	}
	return c, rows.Err()
}

// Create inserts a new company and returns it.
func (s *CompanyStore) Create(c *models.InsuranceCompany) (*models.InsuranceCompany, error) {
	row := s.db.QueryRow(`
		INSERT INTO insurance_companies (name, slug, logo, rating, short_description,
		                                 short_url, domain_url, landing_url,
		                                 contact_url, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+companyColumns,
		c.Name, c.Slug, c.Logo, c.Rating, c.ShortDescription,
		c.ShortURL, c.DomainURL, c.LandingURL, c.ContactURL, c.Published,
	)
	result, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return result, nil
}

// Update modifies an existing company row. Coverage rules are managed
// separately.
func (s *CompanyStore) Update(c *models.InsuranceCompany) error {
	_, err := s.db.Exec(`
		UPDATE insurance_companies SET
			name = $1, slug = $2, logo = $3, rating = $4,
			short_description = $5, short_url = $6, domain_url = $7,
			landing_url = $8, contact_url = $9, published = $10,
			updated_at = NOW()
		WHERE id = $11
	`, c.Name, c.Slug, c.Logo, c.Rating, c.ShortDescription,
		c.ShortURL, c.DomainURL, c.LandingURL, c.ContactURL, c.Published, c.ID)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete removes a company and its coverage rules (ON DELETE CASCADE).
func (s *CompanyStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM insurance_companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// CreateCoverage adds a coverage rule to a company.
func (s *CompanyStore) CreateCoverage(cov *models.InsuranceCoverage) (*models.InsuranceCoverage, error) {
	result := &models.InsuranceCoverage{}
	err := s.db.QueryRow(`
		INSERT INTO insurance_coverages (company_id, state_code, covers_entire_state,
		                                 zip_range_start, zip_range_end,
		                                 zip_codes_text, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+coverageColumns,
		cov.CompanyID, cov.StateCode, cov.CoversEntireState,
		cov.ZipRangeStart, cov.ZipRangeEnd, cov.ZipCodesText, cov.Notes,
	).Scan(
		&result.ID, &result.CompanyID, &result.StateCode, &result.CoversEntireState,
		&result.ZipRangeStart, &result.ZipRangeEnd, &result.ZipCodesText, &result.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("create coverage: %w", err)
	}
	return result, nil
}

// DeleteCoverage removes a single coverage rule.
func (s *CompanyStore) DeleteCoverage(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM insurance_coverages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coverage: %w", err)
	}
	return nil
}
