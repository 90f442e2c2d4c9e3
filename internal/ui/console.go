package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/logtail"
)

// resizeConsole fits the console viewport inside the content box.
func (m *Model) resizeConsole() {
	m.console.Width = max(m.width-2, 1)
	m.console.Height = max(m.height-chromeHeight-2, 1)
}

// setConsoleContent replaces the console lines and follows the tail.
func (m *Model) setConsoleContent(entries []logtail.Entry) {
	if m.consoleErr != nil {
		m.console.SetContent(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Danger)).
			Render("render log unavailable: " + m.consoleErr.Error()))
		return
	}
	if len(entries) == 0 {
		m.console.SetContent(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Faint)).
			Render("No render events yet: " + m.config.LogFile))
		return
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = m.formatEntry(e)
	}
	m.console.SetContent(strings.Join(lines, "\n"))
	m.console.GotoBottom()
}

func (m Model) consoleTitle() string {
	return fmt.Sprintf("Render Log · %s", truncate(m.config.LogFile, 60))
}

// formatEntry renders one log entry as a console line.
func (m Model) formatEntry(e logtail.Entry) string {
	if e.Level == "" && e.Time == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Render(e.Message)
	}
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	component := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

	parts := []string{
		faint.Render(e.Time),
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.levelColor(e.Level))).Width(5).Render(e.Level),
	}
	if e.Component != "" {
		parts = append(parts, component.Render(e.Component))
	}
	parts = append(parts, text.Render(e.Message))
	if len(e.Fields) > 0 {
		parts = append(parts, faint.Render(strings.Join(e.Fields, " ")))
	}
	return strings.Join(parts, " ")
}

func (m Model) levelColor(level string) string {
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return m.theme.Danger
	case "WARN":
		return m.theme.Warning
	case "INFO":
		return m.theme.Info
	default:
		return m.theme.Muted
	}
}
