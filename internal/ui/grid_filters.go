package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/catalog"
	"github.com/five82/gridlab/internal/grid"
)

type gridFiltersProps struct {
	frame
	category catalog.Category
	status   catalog.Status
}

// nextCategory cycles All → Electronics → … → Books → All.
func nextCategory(c catalog.Category) catalog.Category {
	options := append([]catalog.Category{grid.AnyCategory}, catalog.Categories...)
	return options[(slices.Index(options, c)+1)%len(options)]
}

// nextStatus cycles All → active → inactive → All.
func nextStatus(s catalog.Status) catalog.Status {
	options := append([]catalog.Status{grid.AnyStatus}, catalog.Statuses...)
	return options[(slices.Index(options, s)+1)%len(options)]
}

func drawGridFilters(props gridFiltersProps) string {
	t := props.theme()
	categories := []string{"All"}
	for _, c := range catalog.Categories {
		categories = append(categories, string(c))
	}
	statuses := []string{"All"}
	for _, s := range catalog.Statuses {
		statuses = append(statuses, string(s))
	}

	selectedCategory := string(props.category)
	if props.category == grid.AnyCategory {
		selectedCategory = "All"
	}
	selectedStatus := string(props.status)
	if props.status == grid.AnyStatus {
		selectedStatus = "All"
	}

	return filterLine(t, "c", "Category", categories, selectedCategory, t.CategoryColor) + "\n" +
		filterLine(t, "s", "Status", statuses, selectedStatus, t.StatusColor)
}

func filterLine(t Theme, keyHint, label string, options []string, selected string, color func(string) string) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Width(10)
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		if opt == selected {
			fg := t.Background
			bg := color(opt)
			if opt == "All" {
				bg = t.Accent
			}
			parts = append(parts, lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(fg)).
				Background(lipgloss.Color(bg)).
				Padding(0, 1).
				Render(opt))
			continue
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1).
			Render(opt))
	}
	return keyStyle.Render(keyHint) + " " + labelStyle.Render(label) + strings.Join(parts, " ")
}
