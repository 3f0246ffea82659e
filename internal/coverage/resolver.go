// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package coverage

import "coverpress/internal/models"

// Resolve returns the published companies serving the given ZIP, preserving
// the order of the input slice (the stores hand companies over sorted by
// rating descending, then name).
//
// A ZIP that doesn't sanitize to five digits returns every published company:
// incomplete input means "show everything", not "show nothing". Each company
// appears at most once no matter how many of its coverage rules match, keyed
// by slug — the canonical company identity.
func Resolve(companies []models.InsuranceCompany, zip string) []models.InsuranceCompany {
	_, zipValid := SanitizeZip(zip)

	matched := make([]models.InsuranceCompany, 0, len(companies))
	seen := make(map[string]bool, len(companies))

	for _, company := range companies {
		if !company.Published || seen[company.Slug] {
			continue
		}
		if zipValid && !anyMatches(company.Coverages, zip) {
			continue
		}
		seen[company.Slug] = true
		matched = append(matched, company)
	}
	return matched
}

// anyMatches reports whether at least one coverage rule serves the ZIP.
// Companies with no coverage rows simply never match.
func anyMatches(coverages []models.InsuranceCoverage, zip string) bool {
	for _, cov := range coverages {
		if Matches(cov, zip) {
			return true
		}
	}
	return false
}
