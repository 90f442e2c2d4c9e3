package ui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gridlab/internal/logtail"
	"github.com/five82/gridlab/internal/resource"
	"github.com/five82/gridlab/internal/state"
)

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type resourceMsg struct {
	cache  string
	userID int
	status resource.Status
	took   time.Duration
}

type consoleMsg struct {
	lines []logtail.Entry
	err   error
}

type clipboardMsg struct {
	label string
	err   error
}

type flashClearMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// fetchCmd runs one resource fetch off the update loop.
func fetchCmd[T any](ctx context.Context, cache *resource.Cache[int, T], userID int, fetcher resource.Fetcher[int, T]) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		st := cache.Fetch(ctx, userID, fetcher)
		return resourceMsg{
			cache:  cache.Name(),
			userID: userID,
			status: st.Status,
			took:   time.Since(start),
		}
	}
}

func readConsoleCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, ConsoleLineLimit)
		return consoleMsg{lines: logtail.ParseAll(lines), err: err}
	}
}

func copyRowCmd(copyText func(string) error, id int, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{label: strconv.Itoa(id), err: copyText(text)}
	}
}

// loadResources starts profile and todo fetches for the selected user.
// Without force, keys that already hold data or are in flight are skipped.
func (m *Model) loadResources(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	if force || m.profiles.Get(m.userID).Status == resource.StatusIdle {
		m.profiles.Begin(m.userID)
		cmds = append(cmds, fetchCmd(m.ctx, m.profiles, m.userID, m.client.FetchUserProfile))
	}
	if force || m.todos.Get(m.userID).Status == resource.StatusIdle {
		m.todos.Begin(m.userID)
		cmds = append(cmds, fetchCmd(m.ctx, m.todos, m.userID, m.client.FetchTodos))
	}
	if len(cmds) > 0 && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return cmds
}

// anyLoading reports whether the selected user has a fetch in flight.
func (m Model) anyLoading() bool {
	return m.profiles.Get(m.userID).Loading() || m.todos.Get(m.userID).Loading()
}
