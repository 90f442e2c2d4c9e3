package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panels holds the memoized component tree of every tab. It lives behind a
// pointer so caches survive Model copies.
type panels struct {
	memo   *memoPanel
	calc   *calcPanel
	search *searchPanel
	cards  *cardsPanel
	grid   *gridPanel
	hooks  *hooksPanel
}

func newPanels() *panels {
	return &panels{
		memo:   newMemoPanel(),
		calc:   newCalcPanel(),
		search: newSearchPanel(),
		cards:  newCardsPanel(),
		grid:   newGridPanel(),
		hooks:  newHooksPanel(),
	}
}

// frame is the shared render context handed to panel views. It is part of
// every props key, so a theme or width change redraws everything.
type frame struct {
	themeName string
	width     int
	memoize   bool
}

func (f frame) theme() Theme {
	return GetTheme(f.themeName)
}

func (m Model) frame(width int) frame {
	return frame{themeName: m.theme.Name, width: width, memoize: m.memoize}
}

// renderPanel draws the active tab body.
func (m Model) renderPanel(width int) (body string, components []string) {
	f := m.frame(width)
	switch m.tab {
	case TabUseMemo:
		return m.panels.calc.view(m, f), m.panels.calc.components()
	case TabCallback:
		return m.panels.search.view(m, f), m.panels.search.components()
	case TabCustom:
		return m.panels.cards.view(m, f), m.panels.cards.components(m.snapshot.Users)
	case TabRefactor:
		return m.panels.grid.view(m, f), m.panels.grid.components()
	case TabHooks:
		return m.panels.hooks.view(m, f), m.panels.hooks.components()
	default:
		return m.panels.memo.view(m, f), m.panels.memo.components()
	}
}

// renderStats lists render counts for the given components.
func (m Model) renderStats(components []string, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	parts := make([]string, 0, len(components)+1)
	parts = append(parts, bg.Render("renders", styles.FaintText))
	for _, name := range components {
		parts = append(parts,
			bg.Render(name, styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.tracker.Count(name)), styles.AccentText))
	}
	return bg.FillLine(bg.Join(parts, "  "), width)
}

// description renders a muted paragraph wrapped to width.
func description(t Theme, text string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Muted)).
		Width(max(width, 1)).
		Render(text)
}

// heading renders a bold section title.
func heading(t Theme, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text)).Render(text)
}

// joinBlocks stacks blocks with one blank line between them.
func joinBlocks(blocks ...string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
