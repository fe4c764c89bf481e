package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// ToneGain scales synthesized tones before the volume is applied.
const ToneGain = 0.1

// Wave selects the oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
)

// String returns the waveform name.
func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Sample returns the waveform value in [-1, 1] at the given phase,
// measured in cycles.
func (w Wave) Sample(phase float64) float64 {
	frac := phase - math.Floor(phase)
	switch w {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		// Starts at zero and rises, wrapping at half a cycle
		return 2 * (phase - math.Floor(phase+0.5))
	default:
		return math.Sin(2 * math.Pi * frac)
	}
}

// Ramp moves the frequency linearly to Freq, arriving at time At.
type Ramp struct {
	At   time.Duration
	Freq float64
}

// ToneSpec describes a synthesized sound: a waveform starting at Freq,
// following linear ramps in order and stopping after Duration.
type ToneSpec struct {
	Wave     Wave
	Freq     float64
	Ramps    []Ramp
	Duration time.Duration
}

// FrequencyAt returns the oscillator frequency at time t.
// Each ramp starts where the previous one ended. After the last ramp
// the frequency holds.
func (t ToneSpec) FrequencyAt(at time.Duration) float64 {
	prevAt, prevFreq := time.Duration(0), t.Freq
	for _, r := range t.Ramps {
		if at < r.At {
			span := r.At - prevAt
			if span <= 0 {
				return r.Freq
			}
			frac := float64(at-prevAt) / float64(span)
			return prevFreq + (r.Freq-prevFreq)*frac
		}
		prevAt, prevFreq = r.At, r.Freq
	}
	return prevFreq
}

// Streamer renders the tone at the given sample rate and gain.
func (t ToneSpec) Streamer(sr beep.SampleRate, gain float64) beep.Streamer {
	total := sr.N(t.Duration)
	pos := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			at := time.Duration(float64(pos) / float64(sr) * float64(time.Second))
			val := t.Wave.Sample(phase) * gain
			samples[i][0] = val
			samples[i][1] = val
			phase += t.FrequencyAt(at) / float64(sr)
			pos++
		}
		return len(samples), true
	})
}
