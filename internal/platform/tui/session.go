package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// view is the screen a session is showing.
type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: menu -> game or scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	game       config.BreakoutConfig
	config     core.RuntimeConfig
	deps       Deps
	allowReset bool
	startGame  bool

	current   view
	menu      MenuModel
	gameModel *GameModel
	scores    *ScoreboardModel
	quitting  bool
}

// SessionOption configures a SessionModel.
type SessionOption func(*SessionModel)

// WithStartInGame skips the menu and opens straight into a game.
func WithStartInGame() SessionOption {
	return func(m *SessionModel) { m.startGame = true }
}

// WithScoreReset lets the player clear the high-score board.
func WithScoreReset() SessionOption {
	return func(m *SessionModel) { m.allowReset = true }
}

// NewSessionModel creates a new session model.
func NewSessionModel(game config.BreakoutConfig, cfg core.RuntimeConfig, deps Deps, opts ...SessionOption) SessionModel {
	m := SessionModel{
		game:   game,
		config: cfg,
		deps:   deps,
		menu:   NewMenuModel(deps, cfg),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.startGame {
		return func() tea.Msg { return startGameMsg{} }
	}
	return m.menu.Init()
}

// startGameMsg opens a game without going through the menu.
type startGameMsg struct{}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}
	if _, ok := msg.(startGameMsg); ok {
		return m.openGame()
	}

	switch m.current {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuStart:
		return m.openGame()
	case MenuHighScores:
		scores := NewScoreboardModel(m.deps, m.config.ScreenW, m.config.ScreenH, m.allowReset)
		m.scores = &scores
		m.current = viewScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// openGame starts a fresh game with a new seed unless one was fixed.
func (m SessionModel) openGame() (tea.Model, tea.Cmd) {
	gameModel := NewGameModel(m.game, m.config, m.deps)
	m.gameModel = &gameModel
	m.current = viewGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Quitting to the menu abandons the game.
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = viewMenu
	m.gameModel = nil
	m.scores = nil
	m.menu = NewMenuModel(m.deps, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// ProgramOptions are the Bubble Tea options every session runs with.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// RunSession runs a local session until the player quits.
func RunSession(game config.BreakoutConfig, cfg core.RuntimeConfig, deps Deps, opts ...SessionOption) error {
	model := NewSessionModel(game, cfg, deps, opts...)
	_, err := tea.NewProgram(model, ProgramOptions()...).Run()
	return err
}
