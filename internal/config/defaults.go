package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BricksConfig{
			Rows:      5,
			Cols:      10,
			Height:    20,
			Gap:       2,
			TopOffset: 40,
			Points:    10,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       15,
			BottomOffset: 30,
			Friction:     0.9,
			KeyPush:      6,
		},
		Ball: BallConfig{
			Radius:      8,
			Speed:       5,
			TrailLength: 5,
		},
		Powerups: PowerupsConfig{
			Chance:         0.2,
			FallSpeed:      2,
			Size:           15,
			Spin:           0.05,
			ExpandFactor:   1.5,
			ExpandDuration: 10 * time.Second,
			SlowDuration:   8 * time.Second,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			LevelTransition: 2 * time.Second,
			ParticleLife:    30,
		},
		Audio: AudioConfig{
			Volume:     0.5,
			AssetDir:   "assets/audio",
			SampleRate: 44100,
		},
	}
}
