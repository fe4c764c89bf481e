// Package config provides YAML-based configuration loading and difficulty
// presets for Neon Breaker.
package config

import "time"

// BreakoutConfig contains all tuning for the game, in world units.
// The play field is a fixed world the renderer scales to the terminal.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Powerups PowerupsConfig `yaml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// FieldConfig defines the play field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopOffset float64 `yaml:"top_offset"` // Space above the first row
	Points    int     `yaml:"points"`     // Score per broken brick
}

// PaddleConfig defines paddle dimensions and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from field bottom to paddle top
	Friction     float64 `yaml:"friction"`      // Velocity multiplier per frame
	KeyPush      float64 `yaml:"key_push"`      // Velocity set by one key press
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"` // Units per frame on each axis
	TrailLength int     `yaml:"trail_length"`
}

// PowerupsConfig defines drop rates and effect timing.
type PowerupsConfig struct {
	Chance         float64       `yaml:"chance"`
	FallSpeed      float64       `yaml:"fall_speed"`
	Size           float64       `yaml:"size"`
	Spin           float64       `yaml:"spin"` // Radians per frame
	ExpandFactor   float64       `yaml:"expand_factor"`
	ExpandDuration time.Duration `yaml:"expand_duration"`
	SlowDuration   time.Duration `yaml:"slow_duration"`
}

// GameplayConfig defines lives, transitions and effects.
type GameplayConfig struct {
	Lives           int           `yaml:"lives"`
	LevelTransition time.Duration `yaml:"level_transition"`
	ParticleLife    int           `yaml:"particle_life"` // Frames
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Volume     float64 `yaml:"volume"`
	Muted      bool    `yaml:"muted"`
	AssetDir   string  `yaml:"asset_dir"`
	SampleRate int     `yaml:"sample_rate"`
}
