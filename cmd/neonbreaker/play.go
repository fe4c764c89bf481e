package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-breaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game straight away, skipping the main menu.

Controls:
  A/D, Left/Right  - Move the paddle
  Mouse            - Move the paddle to the pointer
  P                - Pause
  R                - Restart (after game over)
  M                - Mute
  +/-              - Volume
  Esc/B            - Back to menu (while paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, a wider paddle and a slower ball
  normal - The standard tuning
  hard   - Two lives, a narrow paddle and a faster ball

Examples:
  neonbreaker play
  neonbreaker play --difficulty easy
  neonbreaker play --seed 42 --fps 30
  neonbreaker play --config ./my-breaker.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	runLocal(tui.WithStartInGame())
}
