// Package tui provides the Bubble Tea front end for Neon Breaker: the main
// menu, the game view, the high-score screen and the SSH session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Game identifies the
// game view that scheduled it, so a stale tick loop from an abandoned game
// cannot drive a new one.
type TickMsg struct {
	Game uint64
	At   time.Time
}

var lastGameID atomic.Uint64

func nextGameID() uint64 {
	return lastGameID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, game uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Game: game, At: t}
	})
}
