package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full UI: header, tab bar, content and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the active tab or the console inside a titled box.
func (m Model) renderContent() string {
	height := max(m.height-chromeHeight, 3)
	inner := max(m.width-4, 1)

	if m.showConsole {
		return m.renderTitledBox(m.consoleTitle(), m.console.View(), m.width, height, true)
	}

	body, components := m.renderPanel(inner)
	bodyLines := strings.Split(body, "\n")
	// keep the stats line on the last row of the box
	room := max(height-3, 0)
	if len(bodyLines) > room {
		bodyLines = bodyLines[:room]
	}
	for len(bodyLines) < room {
		bodyLines = append(bodyLines, "")
	}
	padded := make([]string, 0, len(bodyLines)+1)
	for _, line := range bodyLines {
		padded = append(padded, " "+line)
	}
	padded = append(padded, " "+m.renderStats(components, inner))
	return m.renderTitledBox(m.tab.Title(), strings.Join(padded, "\n"), m.width, height, m.inputFocused())
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("gridlab", styles.Logo),
		bg.Render("Counter:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", m.snapshot.Counter), styles.Text),
	}

	memoLabel, memoStyle := "memo on", styles.SuccessText
	if !m.memoize {
		memoLabel, memoStyle = "memo off", styles.DangerText
	}
	parts = append(parts, bg.Render("● "+memoLabel, memoStyle))

	if !compact {
		parts = append(parts,
			bg.Render("Records:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.grid.Records())), styles.Text),
			bg.Render("Updated:", styles.MutedText)+bg.Space()+
				bg.Render(m.formatUsersUpdated(), styles.Text),
			bg.Render(m.theme.Name, styles.FaintText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatUsersUpdated shows when the shared state last changed.
func (m Model) formatUsersUpdated() string {
	if m.snapshot.LastUpdated.IsZero() {
		return "never"
	}
	return m.snapshot.LastUpdated.Format(time.TimeOnly)
}

// renderTabBar renders the tab strip with the active tab highlighted.
func (m Model) renderTabBar() string {
	bg := NewBgStyle(m.theme.Surface)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.Text)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1)

	segments := make([]string, 0, len(tabOrder))
	for _, tab := range tabOrder {
		if tab == m.tab && !m.showConsole {
			segments = append(segments, active.Render(tab.Title()))
			continue
		}
		segments = append(segments, inactive.Render(tab.Title()))
	}
	if m.showConsole {
		segments = append(segments, active.Render("Render Log"))
	}
	return bg.FillLine(bg.Join(segments, " "), m.width)
}

// renderFooter renders key hints, or the flash notice while one is active.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	if m.flash != "" {
		return styles.Footer.Width(m.width).Render(styles.SuccessText.Render(m.flash))
	}
	return styles.Footer.Width(m.width).Render(m.help.View(tabKeyMap{keys: m.keys, tab: m.tab}))
}
