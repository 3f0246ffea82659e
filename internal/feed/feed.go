// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed merges the two content sources — standalone articles and
// categories carrying inline articles — into one paginated list and resolves
// single items by slug. Category items are listed before article items and
// the merged list is paginated positionally; categories have no creation
// timestamp, so chronological interleaving is not well-defined and is not
// attempted.
package feed

import "strings"

// DefaultPageSize is the feed page size when the caller doesn't specify one.
const DefaultPageSize = 10

// maxRelated caps the related-items list on the detail endpoint.
const maxRelated = 3

// Filters narrows the feed. Zero values mean "no filter".
type Filters struct {
	// Search matches case-insensitively against title and summary, and
	// additionally against the category name for category items.
	Search string
	// CategorySlug restricts items to one category. Since a category
	// cannot belong to itself, this leaves at most the matching category
	// itself from the category source.
	CategorySlug string
	// PageSlug restricts items to one parent page.
	PageSlug string
}

// Pagination is the counter block served alongside the items of a feed
// page.
type Pagination struct {
	TotalCount  int  `json:"total_count"`
	PageSize    int  `json:"page_size"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Page is one page of the merged feed. The counters are nested under their
// own key so the list body stays `{items, pagination}` on the wire.
type Page struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Merge builds the unpaginated candidate list: matching category items
// first, then matching article items, each source keeping its own order
// (categories by name, articles newest first, as the stores return them).
func Merge(categoryItems, articleItems []Item, f Filters) []Item {
	merged := make([]Item, 0, len(categoryItems)+len(articleItems))
	for _, it := range categoryItems {
		if matchesFilters(it, f) {
			merged = append(merged, it)
		}
	}
	for _, it := range articleItems {
		if matchesFilters(it, f) {
			merged = append(merged, it)
		}
	}
	return merged
}

// matchesFilters applies Filters to a single feed item.
func matchesFilters(it Item, f Filters) bool {
	if f.CategorySlug != "" && it.CategorySlug != f.CategorySlug {
		return false
	}
	if f.PageSlug != "" && it.ParentPage != f.PageSlug {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Summary), q) &&
			!(it.Source == SourceCategory && strings.Contains(strings.ToLower(it.Category), q)) {
			return false
		}
	}
	return true
}

// Paginate slices the merged list positionally. Pages are 1-indexed and
// out-of-range page numbers clamp to the nearest valid page instead of
// erroring; a non-positive pageSize falls back to DefaultPageSize.
func Paginate(items []Item, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items: items[start:end],
		Pagination: Pagination{
			TotalCount:  total,
			PageSize:    pageSize,
			CurrentPage: page,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}
}

// relatedTo picks up to maxRelated items sharing the given parent page,
// excluding the item itself: same-parent articles first, then same-parent
// categories, truncated — the same positional policy as the feed.
func relatedTo(self Item, articleItems, categoryItems []Item) []Related {
	related := make([]Related, 0, maxRelated)
	for _, pool := range [][]Item{articleItems, categoryItems} {
		for _, it := range pool {
			if len(related) == maxRelated {
				return related
			}
			if it.ID == self.ID {
				continue
			}
			related = append(related, toRelated(it))
		}
	}
	return related
}
