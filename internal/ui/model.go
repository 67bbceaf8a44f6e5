package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/awshell/internal/prefs"
	"github.com/five82/awshell/internal/state"
)

const defaultRefresh = time.Second

// Options configures the UI.
type Options struct {
	Store        *state.Store
	RefreshEvery time.Duration
	ThemeName    string
	PrefsPath    string
	Logger       *slog.Logger
}

// Model is the root Bubble Tea model for the shell.
type Model struct {
	store     *state.Store
	prefsPath string
	refresh   time.Duration
	logger    *slog.Logger

	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles

	logViewport viewport.Model
	snapshot    state.Snapshot
	follow      bool

	width  int
	height int
	ready  bool
}

// New creates a new shell model.
func New(opts Options) Model {
	refresh := opts.RefreshEvery
	if refresh <= 0 || refresh > defaultRefresh {
		refresh = defaultRefresh
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := GetTheme(opts.ThemeName)

	m := Model{
		store:     opts.Store,
		prefsPath: opts.PrefsPath,
		refresh:   refresh,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		styles:    theme.Styles(),
		follow:    true,
	}
	if opts.Store != nil {
		m.snapshot = opts.Store.Snapshot()
	}
	return m
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

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

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
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
		if !m.ready {
			m.logViewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		}
		m.layout()
		m.setLogContent()
		return m, nil

	case tickMsg:
		if m.store == nil {
			return m, tickCmd(m.refresh)
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.refresh))

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.layout()
		m.setLogContent()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", "error", err)
		}
		m.setLogContent()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.logViewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.logViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.follow = true
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.PageUp):
		m.follow = false
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	if m.logViewport.AtBottom() && key.Matches(msg, m.keys.Down, m.keys.PageDown) {
		m.follow = true
	}
	return m, cmd
}

// layout sizes the log pane to whatever the header and footer leave free.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	m.help.Width = m.width
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	frameW, frameH := m.styles.Pane.GetFrameSize()

	m.logViewport.Width = max(m.width-frameW, 0)
	m.logViewport.Height = max(m.height-chrome-frameH, 1)
}

func (m *Model) setLogContent() {
	if !m.ready {
		return
	}
	m.logViewport.SetContent(m.renderLogLines())
	if m.follow {
		m.logViewport.GotoBottom()
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
