package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/calc"
	"github.com/five82/gridlab/internal/catalog"
	"github.com/five82/gridlab/internal/config"
	"github.com/five82/gridlab/internal/demoapi"
	"github.com/five82/gridlab/internal/grid"
	"github.com/five82/gridlab/internal/prefs"
	"github.com/five82/gridlab/internal/resource"
	"github.com/five82/gridlab/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Client    *demoapi.Client
	Records   []catalog.Record
	Config    *config.Config
	Logger    *zap.Logger
	PollTick  time.Duration
	ThemeName string
	Tab       string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	client    *demoapi.Client
	config    *config.Config
	logger    *zap.Logger
	prefsPath string
	pollTick  time.Duration
	copyText  func(string) error

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	tab         Tab
	width       int
	height      int
	ready       bool
	showHelp    bool
	showConsole bool
	memoize     bool

	// Shared state
	snapshot   state.Snapshot
	userCursor int

	// Data grid
	grid      *grid.View
	pageInput textinput.Model

	// Calculator
	calc      *calc.Calculator
	calcInput textinput.Model
	calcValue int
	calcCount int

	// Search
	searchInput textinput.Model
	searchCount int

	// Resources
	userID   int
	profiles *resource.Cache[int, demoapi.UserProfile]
	todos    *resource.Cache[int, []demoapi.Todo]
	spinner  spinner.Model
	spinning bool

	// Render log console
	console    viewport.Model
	consoleErr error

	// Footer notice
	flash      string
	flashUntil time.Time

	// Render accounting
	tracker *renderTracker
	panels  *panels
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	tab, err := ParseTab(opts.Tab)
	if err != nil {
		logger.Warn("ignoring saved tab", zap.Error(err))
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore(state.SeedUsers())
	}
	client := opts.Client
	if client == nil {
		client = demoapi.NewClient(cfg.FetchDelay, catalog.NewRand(cfg.Seed))
	}

	m := Model{
		ctx:       ctx,
		store:     store,
		client:    client,
		config:    cfg,
		logger:    logger,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		copyText:  clipboard.WriteAll,

		theme:   GetTheme(themeName),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		tab:     tab,
		memoize: true,

		snapshot: store.Snapshot(),

		grid:      grid.NewView(opts.Records, cfg.PageSize),
		pageInput: newInput("page #", 4),

		calc:      &calc.Calculator{},
		calcInput: newInput("number", 6),
		calcValue: defaultCalcInput,

		searchInput: newInput("Search fruits...", 32),

		userID:   1,
		profiles: resource.NewCache[int, demoapi.UserProfile]("user-profile"),
		todos:    resource.NewCache[int, []demoapi.Todo]("todos"),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),

		console: viewport.New(0, 0),

		tracker: newRenderTracker(logger),
		panels:  newPanels(),
	}
	m.calcInput.SetValue("20")
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.tab == TabHooks {
		cmds = append(cmds, m.loadResources(false)...)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizeConsole()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case resourceMsg:
		m.logger.Info("fetch finished",
			zap.String("component", msg.cache),
			zap.Int("user_id", msg.userID),
			zap.Stringer("status", msg.status),
			zap.Duration("duration", msg.took))
		if m.anyLoading() {
			return m, nil
		}
		m.spinning = false
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case consoleMsg:
		m.consoleErr = msg.err
		m.setConsoleContent(msg.lines)
		return m, nil

	case clipboardMsg:
		text := "Copied row #" + msg.label
		if msg.err != nil {
			text = "clipboard error: " + msg.err.Error()
		}
		cmd := m.setFlash(text)
		return m, cmd

	case flashClearMsg:
		if !m.flashUntil.IsZero() && !time.Now().Before(m.flashUntil) {
			m.flash = ""
			m.flashUntil = time.Time{}
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleTick pulls a fresh snapshot and refreshes the console when open.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{fetchSnapshotCmd(m.store), tickCmd(m.pollTick)}
	if m.showConsole {
		cmds = append(cmds, readConsoleCmd(m.config.LogFile))
	}
	return m, tea.Batch(cmds...)
}

// setFlash shows a footer notice that clears itself.
func (m *Model) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashUntil = time.Now().Add(FlashDuration)
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}

// applyTheme pushes theme colors into the bubbles widgets.
func (m *Model) applyTheme() {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText

	plain := m.theme.Styles()
	m.spinner.Style = plain.InfoText
	for _, in := range []*textinput.Model{&m.pageInput, &m.calcInput, &m.searchInput} {
		in.PromptStyle = plain.AccentText
		in.TextStyle = plain.Text
		in.PlaceholderStyle = plain.FaintText
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
