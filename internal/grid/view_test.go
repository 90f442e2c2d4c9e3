package grid

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/gridlab/internal/catalog"
)

func testRecords() []catalog.Record {
	return catalog.Generate(100, catalog.NewRand(1))
}

func ids(records []catalog.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(testRecords(), 0)
	st := v.State()
	if st.Page != 1 || st.PageSize != DefaultPageSize {
		t.Fatalf("state = %+v, want page 1 size %d", st, DefaultPageSize)
	}
	if st.SortField != FieldID || st.SortDirection != Ascending {
		t.Fatalf("sort = %s %s, want id asc", st.SortField, st.SortDirection)
	}
	res := v.Derive()
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(res.Rows)); diff != "" {
		t.Fatalf("page 1 rows mismatch (-want +got):\n%s", diff)
	}
	if res.TotalPages != 10 || res.From != 1 || res.To != 10 || res.Matched != 100 {
		t.Fatalf("result = pages %d from %d to %d matched %d", res.TotalPages, res.From, res.To, res.Matched)
	}
}

func TestFilter_ElectronicsActiveScenario(t *testing.T) {
	records := testRecords()
	v := NewView(records, 10)
	v.SetCategoryFilter(catalog.Electronics)
	v.SetStatusFilter(catalog.Active)

	var want []int
	for i := range records {
		if i%4 == 0 && i%3 != 0 {
			want = append(want, i+1)
		}
	}

	res := v.Derive()
	if diff := cmp.Diff(want, ids(res.Sorted)); diff != "" {
		t.Fatalf("sorted ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[:min(10, len(want))], ids(res.Rows)); diff != "" {
		t.Fatalf("page 1 ids mismatch (-want +got):\n%s", diff)
	}
	if res.Matched != len(want) {
		t.Fatalf("Matched = %d, want %d", res.Matched, len(want))
	}
}

func TestFilter_SubsetForEveryFacetCombination(t *testing.T) {
	records := testRecords()
	categories := append([]catalog.Category{AnyCategory}, catalog.Categories...)
	statuses := append([]catalog.Status{AnyStatus}, catalog.Statuses...)

	for _, c := range categories {
		for _, s := range statuses {
			got := Filter(records, c, s)
			var want []catalog.Record
			for _, r := range records {
				if (c == AnyCategory || r.Category == c) && (s == AnyStatus || r.Status == s) {
					want = append(want, r)
				}
			}
			if diff := cmp.Diff(ids(want), ids(got)); diff != "" {
				t.Fatalf("Filter(%q, %q) mismatch (-want +got):\n%s", c, s, diff)
			}
		}
	}
}

func TestSort_IsPermutationAndStable(t *testing.T) {
	records := testRecords()
	for _, field := range Fields {
		for _, dir := range []Direction{Ascending, Descending} {
			sorted := Sort(records, field, dir)

			gotIDs := ids(sorted)
			slices.Sort(gotIDs)
			if diff := cmp.Diff(ids(records), gotIDs); diff != "" {
				t.Fatalf("Sort(%s, %s) is not a permutation:\n%s", field, dir, diff)
			}

			// Equal keys must keep their input (id ascending) order.
			for i := 1; i < len(sorted); i++ {
				if compareBy(field, sorted[i-1], sorted[i]) == 0 && sorted[i-1].ID > sorted[i].ID {
					t.Fatalf("Sort(%s, %s) unstable at %d: id %d before %d", field, dir, i, sorted[i-1].ID, sorted[i].ID)
				}
			}
		}
	}
}

func TestSort_FlippedDirectionReversesUniqueKeys(t *testing.T) {
	records := testRecords()
	asc := ids(Sort(records, FieldID, Ascending))
	desc := ids(Sort(records, FieldID, Descending))
	slices.Reverse(desc)
	if diff := cmp.Diff(asc, desc); diff != "" {
		t.Fatalf("descending is not the reverse of ascending:\n%s", diff)
	}
}

func TestSort_NameIsLexicographic(t *testing.T) {
	sorted := Sort(testRecords(), FieldName, Ascending)
	if diff := cmp.Diff([]int{1, 10, 100, 11}, ids(sorted[:4])); diff != "" {
		t.Fatalf("name order mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleSort_PriceTwice(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.GoToPage(3)

	v.ToggleSort(FieldPrice)
	if st := v.State(); st.SortField != FieldPrice || st.SortDirection != Ascending {
		t.Fatalf("after first toggle = %s %s, want price asc", st.SortField, st.SortDirection)
	}
	asc := v.Derive().Sorted

	v.ToggleSort(FieldPrice)
	if st := v.State(); st.SortDirection != Descending {
		t.Fatalf("after second toggle direction = %s, want desc", st.SortDirection)
	}
	desc := v.Derive().Sorted
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Price < desc[i].Price {
			t.Fatalf("descending price order broken at %d", i)
		}
	}

	v.ToggleSort(FieldPrice)
	if diff := cmp.Diff(ids(asc), ids(v.Derive().Sorted)); diff != "" {
		t.Fatalf("third toggle did not restore ascending order:\n%s", diff)
	}

	seen := map[int]bool{}
	for _, r := range desc {
		if seen[r.ID] {
			t.Fatalf("record %d duplicated", r.ID)
		}
		seen[r.ID] = true
	}
	if len(seen) != 100 {
		t.Fatalf("sorted set has %d records, want 100", len(seen))
	}
	if v.State().Page != 3 {
		t.Fatalf("ToggleSort changed page to %d, want 3", v.State().Page)
	}
}

func TestToggleSort_NewFieldResetsToAscending(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.ToggleSort(FieldID) // id desc
	v.ToggleSort(FieldStock)
	if st := v.State(); st.SortField != FieldStock || st.SortDirection != Ascending {
		t.Fatalf("state = %s %s, want stock asc", st.SortField, st.SortDirection)
	}
}

func TestGoToPage_Clamps(t *testing.T) {
	v := NewView(testRecords(), 10)

	v.GoToPage(99)
	if got := v.State().Page; got != 10 {
		t.Fatalf("GoToPage(99) page = %d, want 10", got)
	}
	v.GoToPage(-4)
	if got := v.State().Page; got != 1 {
		t.Fatalf("GoToPage(-4) page = %d, want 1", got)
	}
	v.GoToPage(0)
	if got := v.State().Page; got != 1 {
		t.Fatalf("GoToPage(0) page = %d, want 1", got)
	}
}

func TestPageNavigation(t *testing.T) {
	v := NewView(testRecords(), 10)
	if v.CanPrev() || !v.CanNext() {
		t.Fatalf("page 1: CanPrev=%v CanNext=%v, want false/true", v.CanPrev(), v.CanNext())
	}
	v.PrevPage()
	if v.State().Page != 1 {
		t.Fatalf("PrevPage on first page moved to %d", v.State().Page)
	}
	v.NextPage()
	v.NextPage()
	if v.State().Page != 3 {
		t.Fatalf("page = %d, want 3", v.State().Page)
	}
	v.LastPage()
	if v.State().Page != 10 || v.CanNext() {
		t.Fatalf("LastPage: page %d CanNext %v", v.State().Page, v.CanNext())
	}
	v.NextPage()
	if v.State().Page != 10 {
		t.Fatalf("NextPage on last page moved to %d", v.State().Page)
	}
	v.FirstPage()
	if v.State().Page != 1 {
		t.Fatalf("FirstPage page = %d", v.State().Page)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.GoToPage(5)
	v.SetCategoryFilter(catalog.Books)
	if got := v.State().Page; got != 1 {
		t.Fatalf("page after category change = %d, want 1", got)
	}
	v.GoToPage(2)
	v.SetCategoryFilter(catalog.Books)
	if got := v.State().Page; got != 2 {
		t.Fatalf("re-selecting same category moved page to %d, want 2", got)
	}
	v.SetStatusFilter(catalog.Inactive)
	if got := v.State().Page; got != 1 {
		t.Fatalf("page after status change = %d, want 1", got)
	}
}

func TestPaginate_LastPageAndEmpty(t *testing.T) {
	records := testRecords()[:23]

	rows, total := Paginate(records, 3, 10)
	if total != 3 || len(rows) != 3 {
		t.Fatalf("Paginate last page: total %d len %d, want 3/3", total, len(rows))
	}
	rows, total = Paginate(records[:20], 2, 10)
	if total != 2 || len(rows) != 10 {
		t.Fatalf("Paginate exact multiple: total %d len %d, want 2/10", total, len(rows))
	}
	rows, total = Paginate(nil, 1, 10)
	if total != 1 || len(rows) != 0 {
		t.Fatalf("Paginate empty: total %d len %d, want 1/0", total, len(rows))
	}
	rows, total = Paginate(records, 1, math.MaxInt)
	if total != 1 || len(rows) != len(records) {
		t.Fatalf("Paginate huge page size: total %d len %d, want 1/%d", total, len(rows), len(records))
	}
}

func TestNewView_HugePageSizeKeepsOnePage(t *testing.T) {
	v := NewView(testRecords(), math.MaxInt)
	res := v.Derive()
	if res.TotalPages != 1 || res.Page != 1 || len(res.Rows) != 100 {
		t.Fatalf("huge page size: total %d page %d rows %d, want 1/1/100", res.TotalPages, res.Page, len(res.Rows))
	}
	if res.From != 1 || res.To != 100 {
		t.Fatalf("huge page size range = %d-%d, want 1-100", res.From, res.To)
	}
	v.LastPage()
	if got := v.State().Page; got != 1 {
		t.Fatalf("LastPage with one page = %d, want 1", got)
	}
}

func TestDerive_ResultDoesNotAliasCache(t *testing.T) {
	v := NewView(testRecords(), 10)
	res := v.Derive()
	res.Sorted[0].Name = "changed"
	res.Rows[1].Name = "changed"

	again := v.Derive()
	if again.Rows[0].Name != "Product 1" || again.Rows[1].Name != "Product 2" {
		t.Fatalf("rows after caller edit = %q, %q, want Product 1, Product 2", again.Rows[0].Name, again.Rows[1].Name)
	}
	if got := v.PageStats().Misses; got != 1 {
		t.Fatalf("page misses = %d, want 1", got)
	}
}

func TestPageSliceLengths(t *testing.T) {
	for _, size := range []int{1, 3, 7, 10, 33, 100, 150} {
		v := NewView(testRecords(), size)
		total := v.TotalPages()
		for p := 1; p <= total; p++ {
			v.GoToPage(p)
			res := v.Derive()
			want := size
			if p == total && 100%size != 0 {
				want = 100 % size
			}
			if p == total && size > 100 {
				want = 100
			}
			if len(res.Rows) != want {
				t.Fatalf("size %d page %d: len %d, want %d", size, p, len(res.Rows), want)
			}
		}
	}
}

func TestDerive_EmptyFilterResult(t *testing.T) {
	records := []catalog.Record{{ID: 1, Category: catalog.Food, Status: catalog.Active}}
	v := NewView(records, 10)
	v.SetCategoryFilter(catalog.Books)
	res := v.Derive()
	if res.TotalPages != 1 || res.Page != 1 || len(res.Rows) != 0 || res.From != 0 || res.To != 0 {
		t.Fatalf("empty result = %+v", res)
	}
	v.GoToPage(4)
	if v.State().Page != 1 {
		t.Fatalf("page on empty result = %d, want 1", v.State().Page)
	}
}

func TestDerive_MemoizesUntilInputsChange(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.Derive()
	v.Derive()
	v.NextPage()
	v.Derive()

	filterStats, sortStats := v.MemoStats()
	if filterStats.Misses != 1 {
		t.Fatalf("filter misses = %d, want 1", filterStats.Misses)
	}
	if sortStats.Misses != 1 {
		t.Fatalf("sort misses = %d, want 1", sortStats.Misses)
	}

	v.ToggleSort(FieldName)
	v.Derive()
	filterStats, sortStats = v.MemoStats()
	if filterStats.Misses != 1 || sortStats.Misses != 2 {
		t.Fatalf("after sort change misses = %d/%d, want 1/2", filterStats.Misses, sortStats.Misses)
	}

	v.SetStatusFilter(catalog.Active)
	v.Derive()
	filterStats, sortStats = v.MemoStats()
	if filterStats.Misses != 2 || sortStats.Misses != 3 {
		t.Fatalf("after filter change misses = %d/%d, want 2/3", filterStats.Misses, sortStats.Misses)
	}
}

func TestDerive_PageWindowMemo(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.Derive()
	v.Derive()
	if got := v.PageStats(); got.Misses != 1 || got.Hits != 1 {
		t.Fatalf("page stats = %+v, want 1 miss 1 hit", got)
	}

	v.NextPage()
	v.Derive()
	if got := v.PageStats().Misses; got != 2 {
		t.Fatalf("page misses after NextPage = %d, want 2", got)
	}

	v.ToggleSort(FieldPrice)
	v.Derive()
	if got := v.PageStats().Misses; got != 3 {
		t.Fatalf("page misses after sort change = %d, want 3", got)
	}
}

func TestCursorAndRowText(t *testing.T) {
	v := NewView(testRecords(), 10)
	v.MoveCursor(3)
	r, ok := v.Selected()
	if !ok || r.ID != 4 {
		t.Fatalf("Selected = %d, %v; want 4", r.ID, ok)
	}
	v.MoveCursor(100)
	if v.Cursor() != 9 {
		t.Fatalf("Cursor = %d, want 9", v.Cursor())
	}
	v.NextPage()
	if v.Cursor() != 0 {
		t.Fatalf("Cursor after page change = %d, want 0", v.Cursor())
	}

	line := RowText(catalog.Record{ID: 7, Name: "Product 7", Category: catalog.Food, Price: 12.5, Stock: 3, Status: catalog.Active})
	if line != "7\tProduct 7\tFood\t12.50\t3\tactive" {
		t.Fatalf("RowText = %q", line)
	}
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Price ")
	if err != nil || f != FieldPrice {
		t.Fatalf("ParseField = %q, %v", f, err)
	}
	if _, err := ParseField("color"); err == nil {
		t.Fatalf("ParseField(color) returned nil error")
	}
	if !FieldStock.Numeric() || FieldName.Numeric() {
		t.Fatalf("Numeric classification wrong")
	}
}
