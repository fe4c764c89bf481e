package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML and DefaultBreakoutConfig disagree:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 7\npowerups:\n  slow_duration: 3s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error: %v", err)
	}
	if cfg.Ball.Speed != 7 {
		t.Errorf("Ball.Speed = %v, expected 7", cfg.Ball.Speed)
	}
	if cfg.Powerups.SlowDuration != 3*time.Second {
		t.Errorf("SlowDuration = %v, expected 3s", cfg.Powerups.SlowDuration)
	}
	// Untouched keys keep defaults
	if cfg.Ball.Radius != 8 || cfg.Bricks.Cols != 10 {
		t.Errorf("missing keys should keep defaults, got radius=%v cols=%d", cfg.Ball.Radius, cfg.Bricks.Cols)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(invalid); err == nil {
		t.Error("expected validation error for zero lives")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BreakoutConfig)
		wantErr bool
	}{
		{"defaults", func(*BreakoutConfig) {}, false},
		{"zero field", func(c *BreakoutConfig) { c.Field.Width = 0 }, true},
		{"no columns", func(c *BreakoutConfig) { c.Bricks.Cols = 0 }, true},
		{"huge gap", func(c *BreakoutConfig) { c.Bricks.Gap = 100 }, true},
		{"paddle wider than field", func(c *BreakoutConfig) { c.Paddle.Width = 900 }, true},
		{"chance above one", func(c *BreakoutConfig) { c.Powerups.Chance = 1.5 }, true},
		{"volume negative", func(c *BreakoutConfig) { c.Audio.Volume = -0.1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= 3 || easy.Paddle.Width <= 100 {
		t.Errorf("easy should be more forgiving: %+v %+v", easy.Gameplay, easy.Paddle)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= 5 || hard.Gameplay.Lives >= 3 {
		t.Errorf("hard should be harsher: %+v %+v", hard.Ball, hard.Gameplay)
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakoutConfig() {
		t.Error("normal preset should not change the config")
	}

	for _, cfg := range []BreakoutConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
