package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/breakout"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
	"github.com/vovakirdan/neon-breaker/internal/highscore"
	"github.com/vovakirdan/neon-breaker/internal/logging"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

// SoundControl is the audio surface the game view drives.
type SoundControl interface {
	audio.Player
	ToggleMute() bool
	Muted() bool
	Volume() float64
	SetVolume(v float64)
}

// GameRecorder keeps a history of finished games.
type GameRecorder interface {
	RecordGame(player string, score, level int) (int64, error)
	Stats() (storage.Stats, error)
}

// Deps are the services shared by the menu, game and scoreboard views.
// Any of them may be nil.
type Deps struct {
	Sound   SoundControl
	Board   *highscore.Board
	Records GameRecorder
	Toast   *Toast
	Logger  *log.Logger
	Player  string
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

// volumeStep is the change applied by one volume key press.
const volumeStep = 0.1

// GameModel runs one Neon Breaker game inside a Bubble Tea program.
type GameModel struct {
	id         uint64
	game       *breakout.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel creates a game view for the given tuning and screen.
func NewGameModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, deps Deps) GameModel {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	var opts []breakout.Option
	if deps.Sound != nil {
		opts = append(opts, breakout.WithSounds(deps.Sound))
	}

	return GameModel{
		id:         nextGameID(),
		game:       breakout.New(cfg, opts...),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		deps:       deps,
		config:     rt,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate, m.id))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.screen.Width(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Game != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Sound keys act at once; everything
// else is queued for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionMute:
		if m.deps.Sound != nil {
			m.deps.Sound.ToggleMute()
		}
	case core.ActionVolumeUp, core.ActionVolumeDown:
		m.adjustVolume(action)
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m GameModel) adjustVolume(action core.Action) {
	if m.deps.Sound == nil {
		return
	}
	v := m.deps.Sound.Volume()
	if action == core.ActionVolumeUp {
		v += volumeStep
	} else {
		v -= volumeStep
	}
	m.deps.Sound.SetVolume(v)
	if m.deps.Toast != nil {
		m.deps.Toast.Notify(fmt.Sprintf("VOLUME %d%%", int(m.deps.Sound.Volume()*100+0.5)), 700*time.Millisecond, 300*time.Millisecond)
	}
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.id)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.id)
}

// saveScore records a finished game. Storage problems are logged and the
// game carries on.
func (m GameModel) saveScore() {
	logger := m.deps.logger()
	score, level := m.gameState.Score, m.gameState.Level
	logger.Info("game over", "game", m.game.ID(), "player", m.deps.Player, "score", score, "level", level)

	if b := m.deps.Board; b != nil && b.Qualifies(score) {
		if err := b.Save(score); err != nil {
			logger.Warn("could not save high score", "error", err)
		}
	}
	if r := m.deps.Records; r != nil {
		if _, err := r.RecordGame(m.deps.Player, score, level); err != nil {
			logger.Warn("could not record game", "error", err)
		}
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawStatus()
	return RenderScreen(m.screen)
}

// drawStatus overlays the mute marker and any toast on the game screen.
func (m GameModel) drawStatus() {
	w, h := m.screen.Width(), m.screen.Height()

	if m.deps.Sound != nil && m.deps.Sound.Muted() && w > 8 && h > 1 {
		m.screen.DrawTextColored(w-len("MUTED")-1, 1, "MUTED", breakout.NeonColors[0])
	}

	if m.deps.Toast == nil {
		return
	}
	msg, phase := m.deps.Toast.current()
	if phase == toastHidden || h < 1 {
		return
	}
	x := (w - len([]rune(msg))) / 2
	for _, r := range msg {
		m.screen.SetCell(x, h-1, core.Cell{
			Rune:  r,
			Color: breakout.NeonColors[1],
			Bold:  phase == toastShown,
			Faint: phase == toastFading,
		})
		x++
	}
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
