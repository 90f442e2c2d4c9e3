package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/grid"
	"github.com/five82/gridlab/internal/prefs"
	"github.com/five82/gridlab/internal/state"
)

// defaultCalcInput is the calculator's starting number.
const defaultCalcInput = 20

// newInput builds a single-line text input with a static cursor.
func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = "› "
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.inputFocused()) {
		return m, tea.Quit
	}

	if m.inputFocused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchTab(m.tab.Next())

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab(m.tab.Prev())

	case key.Matches(msg, m.keys.Escape):
		m.showConsole = false
		return m, nil

	case key.Matches(msg, m.keys.Console):
		m.showConsole = !m.showConsole
		if m.showConsole {
			m.resizeConsole()
			return m, readConsoleCmd(m.config.LogFile)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleMemo):
		m.memoize = !m.memoize
		m.logger.Info("memoization toggled", zap.Bool("enabled", m.memoize))
		return m, nil

	case key.Matches(msg, m.keys.GlobalIncrement):
		m.store.Increment()
		m.snapshot = m.store.Snapshot()
		return m, nil
	}

	if m.showConsole {
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	switch m.tab {
	case TabMemo, TabCustom:
		return m.handleUsersKey(msg)
	case TabUseMemo:
		return m.handleCalcKey(msg)
	case TabCallback:
		return m.handleSearchKey(msg)
	case TabRefactor:
		return m.handleGridKey(msg)
	case TabHooks:
		return m.handleHooksKey(msg)
	}
	return m, nil
}

// inputFocused reports whether a text input owns the keyboard.
func (m Model) inputFocused() bool {
	return m.pageInput.Focused() || m.calcInput.Focused() || m.searchInput.Focused()
}

// handleInputKey routes keys to the focused text input.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.blurInputs()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.pageInput.Focused() {
			return m.confirmPageInput()
		}
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.pageInput.Focused():
		m.pageInput, cmd = m.pageInput.Update(msg)
	case m.calcInput.Focused():
		m.calcInput, cmd = m.calcInput.Update(msg)
		m.calcValue = parseCalcInput(m.calcInput.Value(), m.calcValue)
	case m.searchInput.Focused():
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) blurInputs() {
	m.pageInput.Blur()
	m.calcInput.Blur()
	m.searchInput.Blur()
}

// parseCalcInput returns the number typed so far, or prev when the text is
// not a non-negative integer. Empty text counts as zero.
func parseCalcInput(text string, prev int) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return prev
	}
	return n
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.showConsole = false
	m.savePrefs()
	m.logger.Debug("tab selected", zap.String("tab", tab.Key()))
	if tab == TabHooks {
		cmds := m.loadResources(false)
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Tab: m.tab.Key()}); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// tabUsers returns the users listed on the active tab.
func (m Model) tabUsers() []state.User {
	if m.tab == TabCustom {
		return m.snapshot.Users
	}
	return m.panels.memo.users
}

// selectedUser returns the user under the cursor, clamped to the list.
func (m Model) selectedUser() (state.User, bool) {
	users := m.tabUsers()
	if len(users) == 0 {
		return state.User{}, false
	}
	return users[min(max(m.userCursor, 0), len(users)-1)], true
}

func (m Model) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := max(len(m.tabUsers())-1, 0)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.userCursor = max(min(m.userCursor, last)-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.userCursor = min(m.userCursor+1, last)
	case key.Matches(msg, m.keys.ClickUser):
		u, ok := m.selectedUser()
		if !ok {
			return m, nil
		}
		cmd := m.clickUser(u)
		return m, cmd
	}
	return m, nil
}

// clickUser is the click handler shared by the user list and every card.
// It is not part of any props.
func (m *Model) clickUser(u state.User) tea.Cmd {
	m.logger.Info("user clicked",
		zap.Int("user_id", u.ID),
		zap.String("tab", m.tab.Key()))
	return m.setFlash(fmt.Sprintf("User clicked: %d", u.ID))
}

func (m Model) handleCalcKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.EditInput):
		cmd := m.calcInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.LocalIncrement):
		m.calcCount++
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.searchInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.LocalIncrement):
		m.searchCount++
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.grid
	switch {
	case key.Matches(msg, m.keys.CycleCategory):
		v.SetCategoryFilter(nextCategory(v.State().Category))
	case key.Matches(msg, m.keys.CycleStatus):
		v.SetStatusFilter(nextStatus(v.State().Status))
	case key.Matches(msg, m.keys.SortColumn):
		idx, _ := strconv.Atoi(msg.String())
		if idx >= 1 && idx <= len(grid.Fields) {
			v.ToggleSort(grid.Fields[idx-1])
		}
	case key.Matches(msg, m.keys.PrevPage):
		v.PrevPage()
	case key.Matches(msg, m.keys.NextPage):
		v.NextPage()
	case key.Matches(msg, m.keys.FirstPage):
		v.FirstPage()
	case key.Matches(msg, m.keys.LastPage):
		v.LastPage()
	case key.Matches(msg, m.keys.Up):
		v.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		v.MoveCursor(1)
	case key.Matches(msg, m.keys.GoToPage):
		m.pageInput.SetValue("")
		cmd := m.pageInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.CopyRow):
		r, ok := v.Selected()
		if !ok {
			return m, nil
		}
		return m, copyRowCmd(m.copyText, r.ID, grid.RowText(r))
	}
	return m, nil
}

func (m Model) confirmPageInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.pageInput.Value())
	m.pageInput.Blur()
	m.pageInput.SetValue("")
	if text == "" {
		return m, nil
	}
	page, err := strconv.Atoi(text)
	if err != nil {
		cmd := m.setFlash("not a page number: " + text)
		return m, cmd
	}
	m.grid.GoToPage(page)
	return m, nil
}

func (m Model) handleHooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refetch):
		cmds := m.loadResources(true)
		return m, tea.Batch(cmds...)
	case key.Matches(msg, m.keys.NextUser):
		m.userID++
	case key.Matches(msg, m.keys.PrevUser):
		if m.userID == 0 {
			return m, nil
		}
		m.userID--
	default:
		return m, nil
	}
	cmds := m.loadResources(false)
	return m, tea.Batch(cmds...)
}
