package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/grid"
)

// Fixed column widths; the name column takes what is left.
const (
	colIDWidth       = 5
	colCategoryWidth = 12
	colPriceWidth    = 10
	colStockWidth    = 6
	colStatusWidth   = 9
	colMinNameWidth  = 10
	colGap           = 2
)

// columnWidths returns widths in grid.Fields order for a table width.
func columnWidths(width int) []int {
	fixed := colIDWidth + colCategoryWidth + colPriceWidth + colStockWidth + colStatusWidth
	gaps := colGap * (len(grid.Fields) - 1)
	name := max(width-fixed-gaps, colMinNameWidth)
	return []int{colIDWidth, name, colCategoryWidth, colPriceWidth, colStockWidth, colStatusWidth}
}

type gridHeaderProps struct {
	frame
	sortField grid.Field
	sortDir   grid.Direction
}

func drawGridHeader(props gridHeaderProps) string {
	t := props.theme()
	widths := columnWidths(props.width)
	base := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Muted)).
		Background(lipgloss.Color(t.HeaderBg))
	active := base.Foreground(lipgloss.Color(t.Accent))
	gap := base.Render(strings.Repeat(" ", colGap))

	cells := make([]string, len(grid.Fields))
	for i, f := range grid.Fields {
		label := strconv.Itoa(i+1) + " " + f.Label()
		style := base
		if f == props.sortField {
			label += " " + props.sortDir.Arrow()
			style = active
		}
		cells[i] = style.Render(fitCell(label, widths[i], f.Numeric()))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.HeaderBg)).
		Width(props.width).
		Render(strings.Join(cells, gap))
}
