package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/grid"
	"github.com/five82/gridlab/internal/memo"
)

type gridPanelProps struct {
	frame
	state     grid.State
	cursor    int
	pageInput string
	editing   bool
}

// gridPanel is the data grid broken into filter, header, row and pagination
// components. Rows are keyed by their slot on the page.
type gridPanel struct {
	panel      *component[gridPanelProps]
	filters    *component[gridFiltersProps]
	header     *component[gridHeaderProps]
	rows       []*component[gridRowProps]
	pagination *component[gridPaginationProps]
}

const gridRowComponent = "GridRow"

func newGridPanel() *gridPanel {
	return &gridPanel{
		panel:      newComponent("DataGrid", equalComparable[gridPanelProps]),
		filters:    newComponent("GridFilters", equalComparable[gridFiltersProps]),
		header:     newComponent("GridHeader", equalComparable[gridHeaderProps]),
		pagination: newComponent("GridPagination", equalComparable[gridPaginationProps]),
	}
}

func (p *gridPanel) components() []string {
	return []string{p.panel.name, p.filters.name, p.header.name, gridRowComponent, p.pagination.name}
}

func (p *gridPanel) row(slot int) *component[gridRowProps] {
	for len(p.rows) <= slot {
		p.rows = append(p.rows, newComponent(gridRowComponent, equalComparable[gridRowProps]))
	}
	return p.rows[slot]
}

func (p *gridPanel) view(m Model, f frame) string {
	v := m.grid
	res := v.Derive()
	props := gridPanelProps{
		frame:     f,
		state:     v.State(),
		cursor:    v.Cursor(),
		pageInput: m.pageInput.View(),
		editing:   m.pageInput.Focused(),
	}
	body := p.panel.render(m.tracker, true, props, func(props gridPanelProps) string {
		t := props.theme()
		st := props.state

		filters := p.filters.render(m.tracker, props.memoize,
			gridFiltersProps{frame: props.frame, category: st.Category, status: st.Status}, drawGridFilters)
		header := p.header.render(m.tracker, props.memoize,
			gridHeaderProps{frame: props.frame, sortField: st.SortField, sortDir: st.SortDirection}, drawGridHeader)

		rows := make([]string, 0, len(res.Rows))
		for i, r := range res.Rows {
			rows = append(rows, p.row(i).render(m.tracker, props.memoize,
				gridRowProps{frame: props.frame, record: r, selected: i == props.cursor}, drawGridRow))
		}
		if len(rows) == 0 {
			rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)).
				Render("No records match the current filters."))
		}

		pagination := p.pagination.render(m.tracker, props.memoize, gridPaginationProps{
			frame:      props.frame,
			page:       res.Page,
			totalPages: res.TotalPages,
			from:       res.From,
			to:         res.To,
			total:      res.Matched,
			canPrev:    v.CanPrev(),
			canNext:    v.CanNext(),
		}, drawGridPagination)

		if props.editing {
			pagination += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Render("Go to page ") + props.pageInput
		}

		table := header + "\n" + strings.Join(rows, "\n")
		return joinBlocks(filters, table, pagination)
	})

	filterStats, sortStats := v.MemoStats()
	return body + "\n\n" + memoLine(m.theme, filterStats, sortStats, v.PageStats())
}

// memoLine shows hit and miss counts of the derivation stages.
func memoLine(t Theme, filter, sort, page memo.Stats) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	stage := func(name string, s memo.Stats) string {
		return label.Render(name+" ") + value.Render(fmt.Sprintf("%d hit / %d miss", s.Hits, s.Misses))
	}
	return label.Render("derive  ") + strings.Join([]string{
		stage("filter", filter),
		stage("sort", sort),
		stage("page", page),
	}, label.Render("  ·  "))
}
