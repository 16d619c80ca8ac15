// Package analytics implements the aggregation engine over an in-memory
// collection of classified video records: filtering, pagination, sorting,
// UTC calendar bucketing, descriptive statistics, and the best-effort
// game-name heuristic. Every function here is a pure, synchronous transform
// that never fails on malformed or empty input.
package analytics

import (
	"strings"

	"github.com/nigeshu/YoutubeSangam/model"
)

// FilterAll bypasses the content-type check in Filter.
const FilterAll = "all"

// PageSize is the fixed number of records per page.
const PageSize = 10

// Filter keeps records whose type matches the filter value ("all" bypasses)
// and whose title contains the query as a case-insensitive substring (empty
// query bypasses). Input order is preserved.
func Filter(videos []model.Video, filter string, query string) []model.Video {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if filter != FilterAll && filter != "" && string(v.Type) != filter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(v.Title), query) {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Page is one page of a filtered-and-sorted collection.
type Page struct {
	Items      []model.Video `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// Paginate returns page n (1-based) of the collection in slices of PageSize.
// TotalPages is never below 1, so an empty collection reads as "page 1 of 1"
// with no items. Page numbers below 1 are treated as 1; numbers past the end
// yield an empty page.
func Paginate(videos []model.Video, page int) Page {
	if page < 1 {
		page = 1
	}

	totalPages := (len(videos) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(videos) {
		start = len(videos)
	}
	if end > len(videos) {
		end = len(videos)
	}

	return Page{
		Items:      videos[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(videos),
	}
}
