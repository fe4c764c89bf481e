package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".neonbreaker"

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.neonbreaker/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Keys missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are optional.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values that would make the simulation degenerate.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, errors.New("brick grid must have at least one row and column"))
	}
	if c.Bricks.Gap*float64(c.Bricks.Cols+1) >= c.Field.Width {
		errs = append(errs, errors.New("brick gaps leave no room for bricks"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Field.Width {
		errs = append(errs, errors.New("paddle width must be within the field"))
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball radius and speed must be positive"))
	}
	if c.Ball.TrailLength < 0 {
		errs = append(errs, errors.New("trail length must not be negative"))
	}
	if c.Powerups.Chance < 0 || c.Powerups.Chance > 1 {
		errs = append(errs, errors.New("powerup chance must be within [0, 1]"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, errors.New("volume must be within [0, 1]"))
	}
	return errors.Join(errs...)
}

// UserPath returns a path under ~/.neonbreaker, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}
