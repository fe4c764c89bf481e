package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the output rate used when none is configured.
const DefaultSampleRate = beep.SampleRate(44100)

// Output is an audio sink. Streamers passed to Play are mixed with
// whatever is already playing.
type Output interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
}

// Speaker plays through the system audio device.
// Only one Speaker may be open per process.
type Speaker struct {
	sr beep.SampleRate
}

// OpenSpeaker initializes the system audio device.
func OpenSpeaker(sr beep.SampleRate) (*Speaker, error) {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return &Speaker{sr: sr}, nil
}

// SampleRate returns the device sample rate.
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.sr
}

// Play starts a streamer on the device.
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Play(st)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Close()
}
