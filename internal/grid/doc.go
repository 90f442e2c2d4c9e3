// Package grid implements the tabular data view: filtering, sorting and
// pagination over a fixed record set.
//
// # Pipeline
//
// Derive runs three stages, each memoized on the state it reads:
//
//	records ─→ Filter(category, status) ─→ Sort(field, direction) ─→ Paginate(page, size)
//
// Filter is an AND of at most two equality checks. AnyCategory and AnyStatus
// always pass. Sort is stable, so ties keep their relative order, and
// descending only flips the comparator. Paginate returns
// sorted[(page-1)*size : min(page*size, len)].
//
// A stage recomputes only when its own key changes. Moving between pages
// reuses the filtered and sorted sets, and changing the sort reuses the
// filtered set.
//
// # State rules
//
//   - Changing the category or status filter returns to page 1.
//   - ToggleSort flips the direction on the active field. On any other field
//     it switches to that field, ascending. The page is left alone.
//   - GoToPage clamps to [1, TotalPages]. TotalPages is never below 1, even
//     when nothing matches.
//
// Derive hands out copies of its slices, so callers may modify a Result
// freely.
package grid
