package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab/shift+tab", "Next/previous tab"},
				{"L", "Render log"},
				{"esc", "Close log / leave input"},
			},
		},
		{
			title: "Exercises",
			items: []helpItem{
				{"=", "Bump global counter"},
				{"n", "Bump local counter"},
				{"m", "Toggle memoization"},
				{"i", "Edit calculator input"},
				{"/", "Search fruits"},
				{"r", "Refetch resources"},
				{"u/U", "Next/previous user"},
				{"j/k enter", "Select/click user"},
			},
		},
		{
			title: "Data Grid",
			items: []helpItem{
				{"c/s", "Cycle category/status"},
				{"1-6", "Sort by column"},
				{"[/] ←/→", "Previous/next page"},
				{"{/} home/end", "First/last page"},
				{"p", "Go to page"},
				{"j/k", "Move row"},
				{"y", "Copy row"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"e/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
