package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/catalog"
	"github.com/five82/gridlab/internal/grid"
)

type gridRowProps struct {
	frame
	record   catalog.Record
	selected bool
}

func drawGridRow(props gridRowProps) string {
	t := props.theme()
	bgColor := t.SurfaceAlt
	if props.selected {
		bgColor = t.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	widths := columnWidths(props.width)

	cells := make([]string, len(grid.Fields))
	for i, f := range grid.Fields {
		cells[i] = drawCell(t, f, props.record, widths[i], props.selected, bg)
	}
	return bg.FillLine(strings.Join(cells, bg.Spaces(colGap)), props.width)
}

// cellText formats one field of a record for display.
func cellText(f grid.Field, r catalog.Record) string {
	switch f {
	case grid.FieldID:
		return strconv.Itoa(r.ID)
	case grid.FieldName:
		return r.Name
	case grid.FieldCategory:
		return string(r.Category)
	case grid.FieldPrice:
		return fmt.Sprintf("$%.2f", r.Price)
	case grid.FieldStock:
		return strconv.Itoa(r.Stock)
	case grid.FieldStatus:
		return string(r.Status)
	default:
		return ""
	}
}

func drawCell(t Theme, f grid.Field, r catalog.Record, width int, selected bool, bg BgStyle) string {
	text := fitCell(cellText(f, r), width, f.Numeric())
	if selected {
		return bg.Render(text, lipgloss.NewStyle().Foreground(lipgloss.Color(t.SelectionText)))
	}
	color := t.Text
	switch f {
	case grid.FieldID:
		color = t.Muted
	case grid.FieldCategory:
		color = t.CategoryColor(string(r.Category))
	case grid.FieldStatus:
		color = t.StatusColor(string(r.Status))
	case grid.FieldStock:
		if r.Stock == 0 {
			color = t.Warning
		}
	}
	return bg.Render(text, lipgloss.NewStyle().Foreground(lipgloss.Color(color)))
}
