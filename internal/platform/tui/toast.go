package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastRefresh is how often views redraw while a toast is fading.
const toastRefresh = 100 * time.Millisecond

// toastTickMsg redraws a view while its toast is visible.
type toastTickMsg time.Time

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastRefresh, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// Toast is a transient message that stays for a hold period, then fades
// out and disappears. It satisfies highscore.Notifier and
// audio.MuteIndicator. Safe for concurrent use.
type Toast struct {
	mu      sync.Mutex
	message string
	shownAt time.Time
	hold    time.Duration
	fade    time.Duration
	now     func() time.Time
}

// NewToast creates an empty toast.
func NewToast() *Toast {
	return &Toast{now: time.Now}
}

// Notify shows message for hold, then fades it out over fade.
func (t *Toast) Notify(message string, hold, fade time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = message
	t.shownAt = t.now()
	t.hold = hold
	t.fade = fade
}

// ShowMuted flashes the new mute state.
func (t *Toast) ShowMuted(muted bool) {
	msg := "SOUND ON"
	if muted {
		msg = "MUTED"
	}
	t.Notify(msg, time.Second, 300*time.Millisecond)
}

// toastPhase is where a toast is in its lifetime.
type toastPhase int

const (
	toastHidden toastPhase = iota
	toastShown
	toastFading
)

// current returns the message and its phase.
func (t *Toast) current() (string, toastPhase) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.message == "" {
		return "", toastHidden
	}
	elapsed := t.now().Sub(t.shownAt)
	switch {
	case elapsed < t.hold:
		return t.message, toastShown
	case elapsed < t.hold+t.fade:
		return t.message, toastFading
	default:
		t.message = ""
		return "", toastHidden
	}
}

// Active reports whether the toast is still on screen.
func (t *Toast) Active() bool {
	_, phase := t.current()
	return phase != toastHidden
}

// Text returns the plain message, or "" when hidden.
func (t *Toast) Text() string {
	msg, _ := t.current()
	return msg
}

var (
	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff00ff")).
			Padding(0, 2)
	toastFadeStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("241")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2)
)

// View renders the toast, dimmed while fading.
func (t *Toast) View() string {
	msg, phase := t.current()
	switch phase {
	case toastShown:
		return toastStyle.Render(msg)
	case toastFading:
		return toastFadeStyle.Render(msg)
	default:
		return ""
	}
}
