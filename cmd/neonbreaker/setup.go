package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
	"github.com/vovakirdan/neon-breaker/internal/highscore"
	"github.com/vovakirdan/neon-breaker/internal/logging"
	"github.com/vovakirdan/neon-breaker/internal/platform/tui"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

const logPath = "~/.neonbreaker/neonbreaker.log"

var (
	flagAssets string
	flagMute   bool
	flagVolume float64
)

// addSoundFlags registers the flags for local play.
func addSoundFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sound clips (default from config)")
	cmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	cmd.PersistentFlags().Float64Var(&flagVolume, "volume", -1, "Starting volume 0..1 (default from config)")
}

// loadGameConfig reads the tuning file and applies the difficulty preset.
func loadGameConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	return cfg, nil
}

// localSession holds everything a local game needs, and closes it again.
type localSession struct {
	game    config.BreakoutConfig
	runtime core.RuntimeConfig
	deps    tui.Deps

	store   *storage.Store
	speaker *audio.Speaker
	logFile *os.File
}

// openLocalSession wires config, logging, storage, audio and the score
// board for a player at this terminal. Storage and audio problems are
// logged and play continues without them.
func openLocalSession() (*localSession, error) {
	game, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	s := &localSession{game: game}

	logger, logFile, err := logging.OpenFile(logPath, "neonbreaker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = logging.Discard()
	}
	s.logFile = logFile
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		s.close()
		return nil, err
	}
	logger.SetLevel(level)

	toast := tui.NewToast()
	s.deps = tui.Deps{
		Toast:  toast,
		Logger: logger,
		Player: currentPlayer(),
	}

	s.runtime = terminalRuntime()

	s.deps.Sound = s.openSound(logger, toast)

	boardOpts := []highscore.Option{
		highscore.WithNotifier(toast),
		highscore.WithSounds(s.deps.Sound),
		highscore.WithLogger(logger),
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		s.deps.Board = highscore.NewBoard(nil, boardOpts...)
	} else {
		s.store = store
		s.deps.Records = store
		s.deps.Board = highscore.NewBoard(store, boardOpts...)
	}
	s.deps.Board.Load()

	logger.Info("session opened", "player", s.deps.Player, "fps", s.runtime.TickRate, "difficulty", flagDifficulty)
	return s, nil
}

// openSound starts the audio manager. Without a sound device the game
// still runs, silently.
func (s *localSession) openSound(logger *log.Logger, toast *tui.Toast) *audio.Manager {
	opts := []audio.Option{
		audio.WithLogger(logger),
		audio.WithVolume(s.game.Audio.Volume),
		audio.WithMuted(s.game.Audio.Muted || flagMute),
		audio.WithMuteIndicator(toast),
		audio.WithAssetDir(s.game.Audio.AssetDir),
	}
	if flagAssets != "" {
		opts = append(opts, audio.WithAssetDir(flagAssets))
	}
	if flagVolume >= 0 {
		opts = append(opts, audio.WithVolume(flagVolume))
	}

	spk, err := audio.OpenSpeaker(beep.SampleRate(s.game.Audio.SampleRate))
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	} else {
		s.speaker = spk
		opts = append(opts, audio.WithOutput(spk))
	}

	return audio.New(opts...)
}

func (s *localSession) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not close scores database: %v\n", err)
		}
	}
	if s.speaker != nil {
		s.speaker.Close()
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// run plays until the player quits.
func (s *localSession) run(opts ...tui.SessionOption) error {
	opts = append(opts, tui.WithScoreReset())
	return tui.RunSession(s.game, s.runtime, s.deps, opts...)
}

// terminalRuntime sizes the game to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func currentPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// runLocal opens a session, plays it and exits on failure.
func runLocal(opts ...tui.SessionOption) {
	session, err := openLocalSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := session.run(opts...)

	// Close before potential exit
	session.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	runLocal()
}
