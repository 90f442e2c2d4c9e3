package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit            key.Binding
	Help            key.Binding
	CycleTheme      key.Binding
	Tab             key.Binding
	ShiftTab        key.Binding
	Escape          key.Binding
	Console         key.Binding
	ToggleMemo      key.Binding
	GlobalIncrement key.Binding

	// Panel actions
	LocalIncrement key.Binding
	Search         key.Binding
	EditInput      key.Binding

	// Data grid
	CycleCategory key.Binding
	CycleStatus   key.Binding
	SortColumn    key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	FirstPage     key.Binding
	LastPage      key.Binding
	GoToPage      key.Binding
	CopyRow       key.Binding

	// Navigation
	Up        key.Binding
	Down      key.Binding
	ClickUser key.Binding

	// Resources
	Refetch  key.Binding
	NextUser key.Binding
	PrevUser key.Binding

	// Input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / leave input"),
		),
		Console: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Render log"),
		),
		ToggleMemo: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle memoization"),
		),
		GlobalIncrement: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("=", "Global counter"),
		),

		// Panel actions
		LocalIncrement: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Local counter"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		EditInput: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Edit input"),
		),

		// Data grid
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Category filter"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Status filter"),
		),
		SortColumn: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "Sort column"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("[", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("]", "Next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "{"),
			key.WithHelp("{", "First page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "}"),
			key.WithHelp("}", "Last page"),
		),
		GoToPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Go to page"),
		),
		CopyRow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy row"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),

		ClickUser: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Click user"),
		),

		// Resources
		Refetch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refetch"),
		),
		NextUser: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Next user"),
		),
		PrevUser: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "Previous user"),
		),

		// Input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Console, k.Escape},
		{k.GlobalIncrement, k.LocalIncrement, k.ToggleMemo},
		{k.Search, k.EditInput, k.Confirm},
		{k.CycleCategory, k.CycleStatus, k.SortColumn, k.GoToPage, k.CopyRow},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.Up, k.Down, k.ClickUser},
		{k.Refetch, k.NextUser, k.PrevUser},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// tabKeyMap narrows the footer hints to the bindings of one tab.
type tabKeyMap struct {
	keys keyMap
	tab  Tab
}

// ShortHelp implements help.KeyMap.
func (t tabKeyMap) ShortHelp() []key.Binding {
	k := t.keys
	var bindings []key.Binding
	switch t.tab {
	case TabMemo, TabCustom:
		bindings = []key.Binding{k.Up, k.Down, k.ClickUser}
	case TabUseMemo:
		bindings = []key.Binding{k.EditInput, k.LocalIncrement}
	case TabCallback:
		bindings = []key.Binding{k.Search, k.LocalIncrement}
	case TabRefactor:
		bindings = []key.Binding{k.CycleCategory, k.CycleStatus, k.SortColumn, k.PrevPage, k.NextPage, k.GoToPage, k.CopyRow}
	case TabHooks:
		bindings = []key.Binding{k.Refetch, k.NextUser, k.PrevUser}
	}
	return append(bindings, k.GlobalIncrement, k.ToggleMemo, k.Tab, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (t tabKeyMap) FullHelp() [][]key.Binding {
	return t.keys.FullHelp()
}
