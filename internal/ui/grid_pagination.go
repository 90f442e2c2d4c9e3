package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// maxPaginatorDots hides the dot strip when there are too many pages.
const maxPaginatorDots = 20

type gridPaginationProps struct {
	frame
	page, totalPages int
	from, to, total  int
	canPrev, canNext bool
}

func drawGridPagination(props gridPaginationProps) string {
	t := props.theme()
	enabled := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true)
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))

	control := func(label string, on bool) string {
		if on {
			return enabled.Render(label)
		}
		return disabled.Render(label)
	}

	controls := control("«", props.canPrev) + " " + control("‹", props.canPrev) + "  " +
		text.Render(fmt.Sprintf("Page %d of %d", props.page, props.totalPages)) + "  " +
		control("›", props.canNext) + " " + control("»", props.canNext)

	if props.totalPages > 1 && props.totalPages <= maxPaginatorDots {
		pg := paginator.New()
		pg.Type = paginator.Dots
		pg.TotalPages = props.totalPages
		pg.Page = props.page - 1
		pg.ActiveDot = enabled.Render("•")
		pg.InactiveDot = disabled.Render("•")
		controls += "   " + pg.View()
	}

	summary := muted.Render("No results")
	if props.total > 0 {
		summary = muted.Render(fmt.Sprintf("Showing %d to %d of %d results", props.from, props.to, props.total))
	}
	return summary + "\n" + controls
}
