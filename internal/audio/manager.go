package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"

	"github.com/vovakirdan/neon-breaker/internal/logging"
)

// DefaultVolume is the starting volume.
const DefaultVolume = 0.5

// MuteIndicator reflects the mute state somewhere visible.
type MuteIndicator interface {
	ShowMuted(muted bool)
}

// Manager owns the loaded clips and playback settings.
// It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	out       Output
	assetDir  string
	clips     map[Sound]*beep.Buffer
	synth     *synth
	volume    float64
	muted     bool
	indicator MuteIndicator
	logger    *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput sets the audio sink. Without one, sound is disabled.
func WithOutput(out Output) Option {
	return func(m *Manager) { m.out = out }
}

// WithAssetDir sets the directory searched for clips.
func WithAssetDir(dir string) Option {
	return func(m *Manager) { m.assetDir = dir }
}

// WithLogger sets the logger for load and playback warnings.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithVolume sets the starting volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(m *Manager) { m.volume = clampVolume(v) }
}

// WithMuted sets the starting mute state.
func WithMuted(muted bool) Option {
	return func(m *Manager) { m.muted = muted }
}

// WithMuteIndicator registers a display for the mute state.
func WithMuteIndicator(ind MuteIndicator) Option {
	return func(m *Manager) { m.indicator = ind }
}

// synth renders fallback tones. It exists only after a clip failed to load.
type synth struct {
	sr beep.SampleRate
}

// New creates a manager and loads every clip it can find.
// Missing clips are logged and fall back to synthesized tones.
func New(opts ...Option) *Manager {
	m := &Manager{
		assetDir: filepath.Join("assets", "audio"),
		clips:    make(map[Sound]*beep.Buffer),
		volume:   DefaultVolume,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.out == nil {
		m.logger.Warn("no audio output, sound effects disabled")
		return m
	}

	for _, s := range Sounds {
		buf, err := m.loadClip(s)
		if err != nil {
			m.logger.Warn("audio clip not found", "sound", string(s), "error", err)
			if m.synth == nil {
				m.synth = &synth{sr: m.out.SampleRate()}
				m.logger.Info("using synthesized sound effects")
			}
			continue
		}
		m.clips[s] = buf
	}

	return m
}

// loadClip decodes <asset>.mp3 or <asset>.wav into a buffer at the
// output sample rate.
func (m *Manager) loadClip(s Sound) (*beep.Buffer, error) {
	base := filepath.Join(m.assetDir, s.AssetName())

	var errs []error
	for _, ext := range []string{".mp3", ".wav"} {
		path := base + ext
		f, err := os.Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var (
			stream beep.StreamSeekCloser
			format beep.Format
		)
		if ext == ".mp3" {
			stream, format, err = mp3.Decode(f)
		} else {
			stream, format, err = wav.Decode(f)
		}
		if err != nil {
			f.Close()
			errs = append(errs, fmt.Errorf("audio: cannot decode %s: %w", path, err))
			continue
		}

		buf := m.bufferStream(stream, format)
		stream.Close()
		return buf, nil
	}

	return nil, errors.Join(errs...)
}

func (m *Manager) bufferStream(stream beep.Streamer, format beep.Format) *beep.Buffer {
	sr := m.out.SampleRate()
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	if format.SampleRate != sr {
		buf.Append(beep.Resample(4, format.SampleRate, sr, stream))
	} else {
		buf.Append(stream)
	}
	return buf
}

// Play starts the named sound. It is a no-op when muted or when no
// output is available. Playback problems are logged, never returned.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muted || m.out == nil {
		return
	}

	if buf, ok := m.clips[s]; ok {
		m.out.Play(&effects.Volume{
			Streamer: buf.Streamer(0, buf.Len()),
			Base:     2,
			Volume:   math.Log2(math.Max(m.volume, 1e-9)),
			Silent:   m.volume == 0,
		})
		return
	}

	if m.synth == nil {
		return
	}
	tone, ok := s.Tone()
	if !ok {
		m.logger.Warn("unknown sound", "sound", string(s))
		return
	}
	m.out.Play(tone.Streamer(m.synth.sr, ToneGain*m.volume))
}

// SetVolume sets the volume for every sound, clamped to [0, 1].
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	m.volume = clampVolume(v)
	m.mu.Unlock()
}

// Volume returns the current volume.
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	m.muted = !m.muted
	muted := m.muted
	ind := m.indicator
	m.mu.Unlock()

	if ind != nil {
		ind.ShowMuted(muted)
	}
	return muted
}

// Muted reports whether sound is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Enabled reports whether an output device is attached.
func (m *Manager) Enabled() bool {
	return m.out != nil
}

// HasClip reports whether a recorded clip was loaded for s.
func (m *Manager) HasClip(s Sound) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.clips[s]
	return ok
}

// Synthesizing reports whether the tone fallback has been created.
func (m *Manager) Synthesizing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synth != nil
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
