// neonbreaker is a neon-styled brick breaker for the terminal.
//
// Usage:
//
//	neonbreaker              - Open the main menu
//	neonbreaker play         - Start a game straight away
//	neonbreaker scores       - Show the high-score board
//	neonbreaker serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.neonbreaker/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonbreaker",
	Short: "Neon Breaker - break glowing bricks in your terminal",
	Long: `Neon Breaker is a brick breaker with neon colors, power-ups and
particle effects, played right in your terminal.

Run without a command to open the main menu.

Available commands:
  play     - Start a game directly
  scores   - View the high-score board
  serve    - Start SSH server for remote play

Examples:
  neonbreaker
  neonbreaker play --difficulty hard
  neonbreaker scores
  neonbreaker serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonbreaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addSoundFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
