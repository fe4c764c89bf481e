// Package highscore keeps the top-score board and persists it as a JSON
// document in a key-value store.
package highscore

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/logging"
)

const (
	// StorageKey is the key the board is stored under.
	StorageKey = "neonBreakerHighScores"

	// DefaultMax is the number of entries kept.
	DefaultMax = 5

	// DateLayout formats entry dates.
	DateLayout = "2006-01-02"

	ResetMessage   = "High scores reset!"
	ResetHold      = 2 * time.Second
	ResetFadeDelay = 500 * time.Millisecond
)

// Entry is one row on the board.
type Entry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Store is the key-value persistence the board writes through.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Notifier shows a transient confirmation that stays for hold, then fades
// out over fade before disappearing.
type Notifier interface {
	Notify(message string, hold, fade time.Duration)
}

// Board is the high-score list. It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	store    Store
	entries  []Entry
	max      int
	notifier Notifier
	sounds   audio.Player
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Board.
type Option func(*Board)

// WithMax sets the number of entries kept.
func WithMax(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.max = n
		}
	}
}

// WithNotifier sets where reset confirmations are shown.
func WithNotifier(n Notifier) Option {
	return func(b *Board) { b.notifier = n }
}

// WithSounds sets the player used for the reset confirmation sound.
func WithSounds(p audio.Player) Option {
	return func(b *Board) { b.sounds = p }
}

// WithLogger sets the logger for storage warnings.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) { b.logger = l }
}

// WithClock overrides the time source used to date entries.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// NewBoard creates a board over store and loads the persisted entries.
// A nil store keeps the board in memory only.
func NewBoard(store Store, opts ...Option) *Board {
	b := &Board{
		store:  store,
		max:    DefaultMax,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Load()
	return b
}

// Load replaces the in-memory list with the persisted one.
// Missing, unreadable or malformed data yields an empty list.
func (b *Board) Load() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	if b.store == nil {
		return nil
	}

	raw, ok, err := b.store.Get(StorageKey)
	if err != nil {
		b.logger.Warn("cannot read high scores", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		b.logger.Warn("ignoring malformed high scores", "error", err)
		return nil
	}

	sortEntries(entries)
	if len(entries) > b.max {
		entries = entries[:b.max]
	}
	b.entries = entries
	return b.copyEntries()
}

// Entries returns a copy of the current list, highest first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copyEntries()
}

// Qualifies reports whether score would make it onto the board.
func (b *Board) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) < b.max {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Save adds score dated today, keeps the list sorted and truncated, and
// persists it. Storage failures are returned after the in-memory list has
// been updated.
func (b *Board) Save(score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{
		Score: score,
		Date:  b.now().Format(DateLayout),
	})
	sortEntries(b.entries)
	if len(b.entries) > b.max {
		b.entries = b.entries[:b.max]
	}

	if b.store == nil {
		return nil
	}

	data, err := json.Marshal(b.entries)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode: %w", err)
	}
	if err := b.store.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("highscore: cannot persist: %w", err)
	}
	return nil
}

// Reset clears the board and its persisted copy, then confirms through the
// notifier and sound player when they are set.
func (b *Board) Reset() error {
	b.mu.Lock()
	b.entries = nil
	notifier, sounds := b.notifier, b.sounds
	if b.store != nil {
		if err := b.store.Delete(StorageKey); err != nil {
			b.mu.Unlock()
			return fmt.Errorf("highscore: cannot delete: %w", err)
		}
	}
	b.mu.Unlock()

	if notifier != nil {
		notifier.Notify(ResetMessage, ResetHold, ResetFadeDelay)
	}
	if sounds != nil {
		sounds.Play(audio.PowerupCollect)
	}
	return nil
}

// Best returns the top score, or zero for an empty board.
func (b *Board) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

func (b *Board) copyEntries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// sortEntries orders by score descending; ties keep insertion order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
