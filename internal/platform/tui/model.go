package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// SessionConfig describes who is playing and where results go.
type SessionConfig struct {
	Player   string        // Name stored with solves
	Recorder SolveRecorder // May be nil to disable records
	Logger   *log.Logger   // Defaults to log.Default()
	Now      func() time.Time
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one play session.
// Moves are applied as keys arrive; there is no tick loop.
type Model struct {
	game     Game
	screen   *core.Screen
	session  SessionConfig
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	state    core.GameState
	started  time.Time
	solved   bool // Solve already recorded for this session
	quitting bool
}

// NewModel creates a model and resets the game to its starting position.
func NewModel(game Game, cfg core.RuntimeConfig, session SessionConfig) Model {
	if session.Logger == nil {
		session.Logger = log.Default()
	}
	if session.Now == nil {
		session.Now = time.Now
	}

	game.Reset(cfg)

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session: session,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		state:   game.State(),
		started: session.Now(),
	}
}

// Init sets the terminal window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey maps a key to an action and steps the game once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	prev := m.state.Phase
	result := m.game.Step(core.FrameOf(action))
	m.state = result.State

	if prev != core.PhaseWin && m.state.Phase == core.PhaseWin {
		m.recordSolve()
	}

	if m.state.Phase == core.PhaseQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// recordSolve stores the solve once per session. Failures are logged and
// do not interrupt play.
func (m *Model) recordSolve() {
	if m.solved {
		return
	}
	m.solved = true

	elapsed := m.session.Now().Sub(m.started)
	logger := m.session.Logger.With("level", m.game.LevelID(), "player", m.session.Player)
	if m.session.Recorder == nil {
		logger.Info("level solved", "elapsed", elapsed)
		return
	}

	if _, err := m.session.Recorder.SaveSolve(m.game.LevelID(), m.session.Player, elapsed); err != nil {
		logger.Warn("could not save solve", "error", err)
		return
	}
	logger.Info("level solved", "elapsed", elapsed)
}

// View renders the game with the help bar underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(helpView), 0))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpView
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.state
}

// Solved reports whether a solve was recorded in this session.
func (m Model) Solved() bool {
	return m.solved
}

// Run starts the Bubble Tea program for a local session.
func Run(game Game, cfg core.RuntimeConfig, session SessionConfig) error {
	model := NewModel(game, cfg, session)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
