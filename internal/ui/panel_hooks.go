package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/demoapi"
	"github.com/five82/gridlab/internal/resource"
)

type hooksPanelProps struct {
	frame
	userID    int
	profile   resource.Status
	profileAt time.Time
	todos     resource.Status
	todosAt   time.Time
	spin      string
}

type resourceProps[T any] struct {
	frame
	state resource.State[T]
	spin  string
}

type hooksPanel struct {
	panel   *component[hooksPanelProps]
	profile *component[resourceProps[demoapi.UserProfile]]
	todos   *component[resourceProps[[]demoapi.Todo]]
}

func newHooksPanel() *hooksPanel {
	return &hooksPanel{
		panel: newComponent("HooksPanel", equalComparable[hooksPanelProps]),
		profile: newComponent("UserProfile", sameResource(func(a, b demoapi.UserProfile) bool {
			return a == b
		})),
		todos: newComponent("TodoList", sameResource(func(a, b []demoapi.Todo) bool {
			return slices.Equal(a, b)
		})),
	}
}

// sameResource compares resource props by status, error text and value.
// The spinner frame only matters while loading.
func sameResource[T any](equal func(a, b T) bool) func(a, b resourceProps[T]) bool {
	return func(a, b resourceProps[T]) bool {
		if a.frame != b.frame || a.state.Status != b.state.Status {
			return false
		}
		if a.state.Loading() && a.spin != b.spin {
			return false
		}
		if errorText(a.state.Err) != errorText(b.state.Err) {
			return false
		}
		return equal(a.state.Value, b.state.Value)
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (p *hooksPanel) components() []string {
	return []string{p.panel.name, p.profile.name, p.todos.name}
}

func (p *hooksPanel) view(m Model, f frame) string {
	profile := m.profiles.Get(m.userID)
	todos := m.todos.Get(m.userID)
	spin := ""
	if profile.Loading() || todos.Loading() {
		spin = m.spinner.View()
	}
	props := hooksPanelProps{
		frame:     f,
		userID:    m.userID,
		profile:   profile.Status,
		profileAt: profile.UpdatedAt,
		todos:     todos.Status,
		todosAt:   todos.UpdatedAt,
		spin:      spin,
	}
	return p.panel.render(m.tracker, true, props, func(props hooksPanelProps) string {
		t := props.theme()
		side := props.width >= LayoutSplitWidth
		cardWidth := props.width
		if side {
			cardWidth = props.width/2 - 1
		}
		child := frame{themeName: props.themeName, width: cardWidth, memoize: props.memoize}

		left := p.profile.render(m.tracker, props.memoize,
			resourceProps[demoapi.UserProfile]{frame: child, state: profile, spin: props.spin},
			func(rp resourceProps[demoapi.UserProfile]) string {
				return drawResource(rp, "Loading user profile...", drawProfile)
			})
		right := p.todos.render(m.tracker, props.memoize,
			resourceProps[[]demoapi.Todo]{frame: child, state: todos, spin: props.spin},
			func(rp resourceProps[[]demoapi.Todo]) string {
				return drawResource(rp, "Loading todos...", drawTodos)
			})

		var cards string
		if side {
			cards = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
		} else {
			cards = lipgloss.JoinVertical(lipgloss.Left, left, right)
		}
		intro := description(t,
			fmt.Sprintf("Both cards read user %d through one keyed resource cache. "+
				"Each fetch takes about %s.", props.userID, m.client.Latency()),
			props.width)
		return joinBlocks(heading(t, "Resources"), intro, cards)
	})
}

// drawResource renders the loading, error and empty states shared by every
// resource card and hands successful values to draw.
func drawResource[T any](rp resourceProps[T], loading string, draw func(Theme, int, T) string) string {
	t := rp.theme()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.StatusColor(rp.state.Status.String()))).
		Padding(0, 1).
		Width(max(rp.width-2, 1))
	inner := max(rp.width-4, 1)

	switch rp.state.Status {
	case resource.StatusLoading:
		return box.Render(rp.spin + " " + lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)).Render(loading))
	case resource.StatusError:
		return box.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Width(inner).
			Render(errorText(rp.state.Err)))
	case resource.StatusSuccess:
		return box.Render(draw(t, inner, rp.state.Value))
	default:
		return box.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)).Render("No data found"))
	}
}

func drawProfile(t Theme, width int, p demoapi.UserProfile) string {
	return strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text)).Render(truncate(p.Name, width)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Render(truncate(p.Email, width)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Render(truncate(p.Bio, width)),
	}, "\n")
}

func drawTodos(t Theme, width int, todos []demoapi.Todo) string {
	done := lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(t.Muted))
	open := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text)).Render("Todo List")}
	for _, todo := range todos {
		box, style := "[ ]", open
		if todo.Completed {
			box, style = "[x]", done
		}
		lines = append(lines, box+" "+style.Render(truncate(todo.Title, width-4)))
	}
	return strings.Join(lines, "\n")
}
