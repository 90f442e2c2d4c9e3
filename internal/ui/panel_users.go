package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/memo"
	"github.com/five82/gridlab/internal/state"
)

// Memo list tab: a parent that owns the global counter and a child list whose
// props never change.

type memoPanelProps struct {
	frame
	counter  int
	selected string
}

type userListProps struct {
	frame
	users []state.User
}

type memoPanel struct {
	panel *component[memoPanelProps]
	list  *component[userListProps]
	users []state.User
}

func newMemoPanel() *memoPanel {
	sameUsers := memo.SliceOf(state.UserDisplayEqual)
	return &memoPanel{
		panel: newComponent("MemoPanel", equalComparable[memoPanelProps]),
		list: newComponent("UserList", func(a, b userListProps) bool {
			return a.frame == b.frame && sameUsers(a.users, b.users)
		}),
		users: state.SeedUsers(),
	}
}

func (p *memoPanel) components() []string {
	return []string{p.panel.name, p.list.name}
}

func (p *memoPanel) view(m Model, f frame) string {
	props := memoPanelProps{frame: f, counter: m.snapshot.Counter, selected: selectedName(m)}
	return p.panel.render(m.tracker, true, props, func(props memoPanelProps) string {
		t := props.theme()
		intro := description(t,
			fmt.Sprintf("The parent redraws whenever the global counter moves (now %d). "+
				"The user list below receives the same users every time, so with "+
				"memoization on it is drawn once.", props.counter),
			props.width)
		list := p.list.render(m.tracker, props.memoize, userListProps{frame: props.frame, users: p.users}, drawUserList)
		return joinBlocks(heading(t, "Users"), intro, list, selectionLine(t, props.selected))
	})
}

// selectedName is the user under the cursor. The selection lives in the
// parent, so moving it leaves the list and card props untouched.
func selectedName(m Model) string {
	u, ok := m.selectedUser()
	if !ok {
		return ""
	}
	return u.Name
}

func selectionLine(t Theme, name string) string {
	if name == "" {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent))
	return label.Render("Selected: ") + value.Render(name) +
		label.Render("  (j/k to move, enter to click)")
}

func drawUserList(props userListProps) string {
	t := props.theme()
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text))
	email := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	bullet := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Render("●")

	lines := make([]string, 0, len(props.users)*2)
	for _, u := range props.users {
		lines = append(lines,
			bullet+" "+name.Render(truncate(u.Name, props.width-2)),
			"  "+email.Render(truncate(u.Email, props.width-2)))
	}
	return strings.Join(lines, "\n")
}

// Custom equality tab: cards fed from the store, where the refresher keeps
// changing LastUpdated but nothing a card shows.

type cardsPanelProps struct {
	frame
	usersVersion uint64
	selected     string
}

type userCardProps struct {
	frame
	user state.User
}

type cardsPanel struct {
	panel *component[cardsPanelProps]
	cards map[int]*component[userCardProps]
}

func newCardsPanel() *cardsPanel {
	return &cardsPanel{
		panel: newComponent("CardsPanel", equalComparable[cardsPanelProps]),
		cards: make(map[int]*component[userCardProps]),
	}
}

func cardName(u state.User) string {
	return "UserCard: " + u.Name
}

func (p *cardsPanel) card(u state.User) *component[userCardProps] {
	c, ok := p.cards[u.ID]
	if !ok {
		c = newComponent(cardName(u), func(a, b userCardProps) bool {
			return a.frame == b.frame && state.UserDisplayEqual(a.user, b.user)
		})
		p.cards[u.ID] = c
	}
	return c
}

func (p *cardsPanel) components(users []state.User) []string {
	names := []string{p.panel.name}
	for _, u := range users {
		names = append(names, cardName(u))
	}
	return names
}

func (p *cardsPanel) view(m Model, f frame) string {
	users := m.snapshot.Users
	props := cardsPanelProps{frame: f, usersVersion: m.snapshot.UsersVersion, selected: selectedName(m)}
	return p.panel.render(m.tracker, true, props, func(props cardsPanelProps) string {
		t := props.theme()
		intro := description(t,
			"Users are re-stamped every few seconds. The stamp is not displayed, so "+
				"cards compare only id, name, email and role before redrawing.",
			props.width)

		side := props.width >= LayoutSplitWidth && len(users) > 0
		cardWidth := props.width
		if side {
			cardWidth = props.width/len(users) - 1
		}
		rendered := make([]string, 0, len(users))
		for _, u := range users {
			c := p.card(u)
			rendered = append(rendered, c.render(m.tracker, props.memoize,
				userCardProps{frame: frame{themeName: props.themeName, width: cardWidth, memoize: props.memoize}, user: u},
				drawUserCard))
		}
		var cards string
		if side {
			cards = lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, " ")...)
		} else {
			cards = lipgloss.JoinVertical(lipgloss.Left, rendered...)
		}
		return joinBlocks(heading(t, "User cards"), intro, cards, selectionLine(t, props.selected))
	})
}

func drawUserCard(props userCardProps) string {
	t := props.theme()
	u := props.user
	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Background)).
		Background(lipgloss.Color(t.Accent)).
		Padding(0, 1).
		Render(initial(u.Name))

	inner := max(props.width-10, 4)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text)).Render(truncate(u.Name, inner)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Render(truncate(u.Email, inner)),
	}
	if u.Role != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SelectionBg)).
			Padding(0, 1).
			Render(u.Role))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1).
		Width(max(props.width-2, 1)).
		Render(body)
}

// interleave places sep between blocks for horizontal joins.
func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
