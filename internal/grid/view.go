package grid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/five82/gridlab/internal/catalog"
	"github.com/five82/gridlab/internal/memo"
)

// DefaultPageSize is used when a View is built with a non-positive page size.
const DefaultPageSize = 10

// State is the interactive state of a View. Only View methods mutate it.
type State struct {
	Page          int
	PageSize      int
	SortField     Field
	SortDirection Direction
	Category      catalog.Category
	Status        catalog.Status
}

// Result holds everything derived from the record set and the current State.
type Result struct {
	Matched    int              // records passing both filters
	Sorted     []catalog.Record // filtered records in display order
	Rows       []catalog.Record // current page window
	Page       int
	TotalPages int
	From, To   int // 1-based inclusive range of Rows within Sorted; zero when empty
}

type filterKey struct {
	category catalog.Category
	status   catalog.Status
}

type sortKey struct {
	filter    filterKey
	field     Field
	direction Direction
}

type pageKey struct {
	sort sortKey
	page int
	size int
}

type pageWindow struct {
	rows  []catalog.Record
	total int
}

// View presents a fixed record set with filtering, sorting and pagination.
// Filtering and sorting are memoized on the state they read, so calls that
// leave those inputs alone reuse the previous result.
type View struct {
	records []catalog.Record
	state   State
	cursor  int

	filtered memo.Value[filterKey, []catalog.Record]
	sorted   memo.Value[sortKey, []catalog.Record]
	paged    memo.Value[pageKey, pageWindow]
}

// NewView builds a View sorted by id ascending with no filters on page 1.
func NewView(records []catalog.Record, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		records: records,
		state: State{
			Page:          1,
			PageSize:      pageSize,
			SortField:     FieldID,
			SortDirection: Ascending,
			Category:      AnyCategory,
			Status:        AnyStatus,
		},
	}
}

// State returns a copy of the current state.
func (v *View) State() State {
	return v.state
}

// Records returns the full record set.
func (v *View) Records() []catalog.Record {
	return v.records
}

// SetCategoryFilter filters on category, or clears it with AnyCategory.
// Changing the filter returns to page 1.
func (v *View) SetCategoryFilter(category catalog.Category) {
	if v.state.Category == category {
		return
	}
	v.state.Category = category
	v.resetPage()
}

// SetStatusFilter filters on status, or clears it with AnyStatus.
// Changing the filter returns to page 1.
func (v *View) SetStatusFilter(status catalog.Status) {
	if v.state.Status == status {
		return
	}
	v.state.Status = status
	v.resetPage()
}

// ToggleSort flips the direction when field is already the sort field and
// otherwise sorts ascending by field. The page is left alone.
func (v *View) ToggleSort(field Field) {
	if v.state.SortField == field {
		v.state.SortDirection = v.state.SortDirection.Flip()
		return
	}
	v.state.SortField = field
	v.state.SortDirection = Ascending
}

// GoToPage moves to page, clamped to [1, TotalPages].
func (v *View) GoToPage(page int) {
	page = ClampPage(page, v.TotalPages())
	if page != v.state.Page {
		v.cursor = 0
	}
	v.state.Page = page
}

// FirstPage moves to page 1.
func (v *View) FirstPage() { v.GoToPage(1) }

// PrevPage moves back one page when possible.
func (v *View) PrevPage() { v.GoToPage(v.state.Page - 1) }

// NextPage moves forward one page when possible.
func (v *View) NextPage() { v.GoToPage(v.state.Page + 1) }

// LastPage moves to the final page.
func (v *View) LastPage() { v.GoToPage(v.TotalPages()) }

// CanPrev reports whether first/previous are enabled.
func (v *View) CanPrev() bool { return v.state.Page > 1 }

// CanNext reports whether next/last are enabled.
func (v *View) CanNext() bool { return v.state.Page < v.TotalPages() }

// TotalPages returns the page count for the current filters (at least 1).
func (v *View) TotalPages() int {
	return TotalPages(len(v.filter()), v.state.PageSize)
}

// Derive computes the filtered, sorted and paged output for the current state.
// The returned slices are copies; changing them leaves the View untouched.
func (v *View) Derive() Result {
	sorted := v.sort()
	window := v.page(sorted)
	rows := slices.Clone(window.rows)
	res := Result{
		Matched:    len(sorted),
		Sorted:     slices.Clone(sorted),
		Rows:       rows,
		Page:       v.state.Page,
		TotalPages: window.total,
	}
	if len(rows) > 0 {
		res.From = (v.state.Page-1)*v.state.PageSize + 1
		res.To = res.From + len(rows) - 1
	}
	return res
}

// MemoStats reports hit and miss counts for the filter and sort stages.
func (v *View) MemoStats() (filter, sort memo.Stats) {
	return v.filtered.Stats(), v.sorted.Stats()
}

// PageStats reports hit and miss counts for the page window stage.
func (v *View) PageStats() memo.Stats {
	return v.paged.Stats()
}

// Cursor returns the selected row index within the current page.
func (v *View) Cursor() int {
	return v.cursor
}

// MoveCursor shifts the row selection by delta, staying within the page.
func (v *View) MoveCursor(delta int) {
	rows := v.Derive().Rows
	if len(rows) == 0 {
		v.cursor = 0
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), len(rows)-1)
}

// Selected returns the record under the cursor.
func (v *View) Selected() (catalog.Record, bool) {
	rows := v.Derive().Rows
	if v.cursor < 0 || v.cursor >= len(rows) {
		return catalog.Record{}, false
	}
	return rows[v.cursor], true
}

// RowText formats a record as a tab-separated line in column order.
func RowText(r catalog.Record) string {
	return strings.Join([]string{
		fmt.Sprintf("%d", r.ID),
		r.Name,
		string(r.Category),
		fmt.Sprintf("%.2f", r.Price),
		fmt.Sprintf("%d", r.Stock),
		string(r.Status),
	}, "\t")
}

func (v *View) resetPage() {
	v.state.Page = 1
	v.cursor = 0
}

func (v *View) filter() []catalog.Record {
	key := filterKey{category: v.state.Category, status: v.state.Status}
	return v.filtered.Get(key, func(k filterKey) []catalog.Record {
		return Filter(v.records, k.category, k.status)
	})
}

func (v *View) sortKey() sortKey {
	return sortKey{
		filter:    filterKey{category: v.state.Category, status: v.state.Status},
		field:     v.state.SortField,
		direction: v.state.SortDirection,
	}
}

func (v *View) sort() []catalog.Record {
	filtered := v.filter()
	return v.sorted.Get(v.sortKey(), func(k sortKey) []catalog.Record {
		return Sort(filtered, k.field, k.direction)
	})
}

func (v *View) page(sorted []catalog.Record) pageWindow {
	key := pageKey{sort: v.sortKey(), page: v.state.Page, size: v.state.PageSize}
	return v.paged.Get(key, func(k pageKey) pageWindow {
		rows, total := Paginate(sorted, k.page, k.size)
		return pageWindow{rows: rows, total: total}
	})
}
