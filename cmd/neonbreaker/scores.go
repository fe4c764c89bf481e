package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-breaker/internal/highscore"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

var (
	flagReset        bool
	flagClearHistory bool
	flagRecent       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score board",
	Long: `Display the top scores and a summary of every game played.

Examples:
  neonbreaker scores
  neonbreaker scores --recent 10
  neonbreaker scores --reset
  neonbreaker scores --clear-history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high-score board")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the history of played games")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to list (0 = none)")
}

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff00ff"))
	scoresHeadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))
	scoresDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board := highscore.NewBoard(store)
	board.Load()

	if flagReset || flagClearHistory {
		if flagReset {
			if err := board.Reset(); err != nil {
				store.Close()
				fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(highscore.ResetMessage)
		}
		if flagClearHistory {
			if err := store.ClearHistory(); err != nil {
				store.Close()
				fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Game history cleared.")
		}
		return
	}

	fmt.Println(scoresTitleStyle.Render("High Scores - Neon Breaker"))
	fmt.Println()

	entries := board.Entries()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonbreaker play' to set the first high score!")
		return
	}

	// Print header
	fmt.Println(scoresHeadStyle.Render(fmt.Sprintf("  %-4s  %-10s  %s", "Rank", "Score", "Date")))
	fmt.Println(scoresDimStyle.Render(fmt.Sprintf("  %-4s  %-10s  %s", "----", "-----", "----")))

	for i, e := range entries {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.Date)
	}

	printHistory(store)
}

// printHistory shows totals and the latest games from the history table.
func printHistory(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  |  Best: %d  |  Average: %.0f  |  Top level: %d\n",
		stats.GamesCount, stats.BestScore, stats.AvgScore, stats.MaxLevel)

	if flagRecent <= 0 {
		return
	}
	games, err := store.RecentGames(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent games: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println(scoresHeadStyle.Render("Recent games"))
	for _, g := range games {
		fmt.Printf("  %-16s  %-12s  %-8d  level %d\n",
			g.FinishedAt.Format("2006-01-02 15:04"), g.Player, g.Score, g.Level)
	}
}
