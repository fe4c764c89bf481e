package breakout

import (
	"testing"

	"github.com/vovakirdan/neon-breaker/internal/config"
)

func TestDefaultConfigMatchesConstants(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	ints := []struct {
		name string
		got  int
		want int
	}{
		{"bricks.rows", cfg.Bricks.Rows, BrickRows},
		{"bricks.cols", cfg.Bricks.Cols, BrickCols},
		{"bricks.points", cfg.Bricks.Points, BrickPoints},
		{"ball.trail_length", cfg.Ball.TrailLength, TrailLength},
		{"gameplay.particle_life", cfg.Gameplay.ParticleLife, ParticleLife},
	}
	for _, tt := range ints {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	floats := []struct {
		name string
		got  float64
		want float64
	}{
		{"bricks.height", cfg.Bricks.Height, BrickHeight},
		{"bricks.gap", cfg.Bricks.Gap, BrickGap},
		{"bricks.top_offset", cfg.Bricks.TopOffset, BrickTopOffset},
		{"paddle.width", cfg.Paddle.Width, PaddleWidth},
		{"paddle.height", cfg.Paddle.Height, PaddleHeight},
		{"paddle.bottom_offset", cfg.Paddle.BottomOffset, PaddleBottomOffset},
		{"ball.radius", cfg.Ball.Radius, BallRadius},
		{"ball.speed", cfg.Ball.Speed, BallSpeed},
		{"powerups.chance", cfg.Powerups.Chance, PowerupChance},
		{"powerups.fall_speed", cfg.Powerups.FallSpeed, PowerupSpeed},
		{"powerups.size", cfg.Powerups.Size, PowerupSize},
	}
	for _, tt := range floats {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if cfg.Gameplay.LevelTransition != LevelTransitionTime {
		t.Errorf("level_transition = %v, want %v", cfg.Gameplay.LevelTransition, LevelTransitionTime)
	}
	if cfg.Powerups.ExpandDuration != ExpandPaddleDuration {
		t.Errorf("expand_duration = %v, want %v", cfg.Powerups.ExpandDuration, ExpandPaddleDuration)
	}
	if cfg.Powerups.SlowDuration != SlowBallDuration {
		t.Errorf("slow_duration = %v, want %v", cfg.Powerups.SlowDuration, SlowBallDuration)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewSimpleRNG(0)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", f)
		}
		if n := r.Intn(4); n < 0 || n >= 4 {
			t.Fatalf("Intn(4) = %d", n)
		}
		if s := r.Sign(); s != 1 && s != -1 {
			t.Fatalf("Sign() = %v", s)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
