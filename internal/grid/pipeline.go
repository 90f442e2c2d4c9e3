package grid

import (
	"slices"

	"github.com/five82/gridlab/internal/catalog"
)

// "No filter" sentinels for the two facets.
const (
	AnyCategory catalog.Category = ""
	AnyStatus   catalog.Status   = ""
)

// Filter returns the records matching both facets, preserving input order.
// A sentinel facet matches everything.
func Filter(records []catalog.Record, category catalog.Category, status catalog.Status) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if category != AnyCategory && r.Category != category {
			continue
		}
		if status != AnyStatus && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a stably sorted copy of records.
func Sort(records []catalog.Record, field Field, dir Direction) []catalog.Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b catalog.Record) int {
		c := compareBy(field, a, b)
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// TotalPages returns ceil(n/size), never less than 1.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n-1)/size + 1
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}

// Paginate returns the window for page (clamped) along with the total page count.
// The returned slice shares storage with sorted.
func Paginate(sorted []catalog.Record, page, size int) ([]catalog.Record, int) {
	total := TotalPages(len(sorted), size)
	if size <= 0 {
		return sorted, total
	}
	page = ClampPage(page, total)
	start := (page - 1) * size
	end := min(start+size, len(sorted))
	if start >= end {
		return nil, total
	}
	return sorted[start:end], total
}
