// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package coverage decides which insurance companies serve a given ZIP code.
// A coverage rule can match by full-state flag, by numeric ZIP range, or by a
// free-text ZIP list; a rule matches when any populated strategy matches.
//
// Matching is deliberately fail-soft: a malformed range or list token never
// aborts evaluation, it just doesn't match. Bad data entry degrades results
// instead of breaking the quotes endpoint.
package coverage

import (
	"regexp"
	"strconv"
	"strings"

	"coverpress/internal/models"
)

var (
	nonDigit       = regexp.MustCompile(`[^0-9]`)
	nonDigitHyphen = regexp.MustCompile(`[^0-9-]`)
	zipRange       = regexp.MustCompile(`^(\d{5})-(\d{5})$`)
	listSeparator  = regexp.MustCompile(`[\s,]+`)
)

// SanitizeZip reduces arbitrary user input to a 5-digit ZIP: non-digits are
// stripped and the first five remaining digits are kept. The second return
// is false when fewer than five digits remain — partial ZIPs never match.
func SanitizeZip(raw string) (int, bool) {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) < 5 {
		return 0, false
	}
	z, err := strconv.Atoi(digits[:5])
	if err != nil {
		return 0, false
	}
	return z, true
}

// Matches reports whether the coverage rule serves the given ZIP code.
// The strategies are evaluated in order (statewide, numeric range, ZIP list);
// the first hit wins, which is equivalent to OR-ing them.
func Matches(cov models.InsuranceCoverage, zip string) bool {
	z, ok := SanitizeZip(zip)
	if !ok {
		return false
	}

	if cov.CoversEntireState {
		return true
	}
	if matchRange(cov.ZipRangeStart, cov.ZipRangeEnd, z) {
		return true
	}
	return matchList(cov.ZipCodesText, z)
}

// matchRange evaluates the numeric range strategy. A single populated bound
// means exact match; both bounds mean an inclusive range, with swapped
// bounds normalized.
func matchRange(start, end *int, z int) bool {
	switch {
	case start != nil && end != nil:
		lo, hi := *start, *end
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo <= z && z <= hi
	case start != nil:
		return *start == z
	case end != nil:
		return *end == z
	default:
		return false
	}
}

// matchList evaluates the free-text strategy: whitespace/comma separated
// tokens that are either bare 5-digit ZIPs or NNNNN-NNNNN ranges. Dash
// variants are folded to ASCII hyphens and stray punctuation is dropped
// before a token is interpreted; tokens that still don't parse are skipped.
func matchList(text string, z int) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	for _, token := range listSeparator.Split(text, -1) {
		if token == "" {
			continue
		}
		token = strings.NewReplacer("–", "-", "—", "-").Replace(token)
		token = nonDigitHyphen.ReplaceAllString(token, "")

		if m := zipRange.FindStringSubmatch(token); m != nil {
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				continue
			}
			if start <= z && z <= end {
				return true
			}
			continue
		}

		if len(token) == 5 {
			if v, err := strconv.Atoi(token); err == nil && v == z {
				return true
			}
		}
	}
	return false
}
