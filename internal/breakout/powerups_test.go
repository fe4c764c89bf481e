package breakout

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

func TestEffects(t *testing.T) {
	var es Effects

	if !es.Add(EffectSlowBall, 8*time.Second) {
		t.Error("first Add should start the effect")
	}
	if es.Add(EffectSlowBall, 10*time.Second) {
		t.Error("second Add should only move the deadline")
	}
	if len(es.List()) != 1 {
		t.Fatalf("got %d effects, want 1", len(es.List()))
	}
	if got := es.Remaining(EffectSlowBall, 4*time.Second); got != 6*time.Second {
		t.Errorf("Remaining() = %v, want 6s", got)
	}
	if es.Remaining(EffectExpandPaddle, 0) != 0 {
		t.Error("inactive effect should have no time left")
	}

	es.Add(EffectExpandPaddle, 5*time.Second)
	expired := es.Expire(5 * time.Second)
	if len(expired) != 1 || expired[0] != EffectExpandPaddle {
		t.Errorf("Expire() = %v, want [WIDE]", expired)
	}
	if !es.Has(EffectSlowBall) || es.Has(EffectExpandPaddle) {
		t.Error("only the slow effect should remain")
	}

	es.Clear()
	if es.Has(EffectSlowBall) {
		t.Error("Clear() should drop every effect")
	}
}

func TestExtraLife(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))

	g.applyPowerup(PowerupExtraLife)

	if g.lives != 4 {
		t.Errorf("lives = %d, want 4", g.lives)
	}
	if sounds.count(audio.PowerupCollect) != 1 {
		t.Error("collecting a powerup should play its sound")
	}
	if len(g.particles) != powerupParticles {
		t.Errorf("got %d particles, want %d", len(g.particles), powerupParticles)
	}
}

func TestExpandPaddle(t *testing.T) {
	g := newTestGame(t)

	g.applyPowerup(PowerupExpandPaddle)
	if g.paddle.W != 150 {
		t.Fatalf("paddle width = %v, want 150", g.paddle.W)
	}

	// Repeated pickups compound up to half the field.
	for i := 0; i < 5; i++ {
		g.applyPowerup(PowerupExpandPaddle)
	}
	if g.paddle.W != 400 {
		t.Errorf("paddle width = %v, want capped at 400", g.paddle.W)
	}
	if len(g.effects.List()) != 1 {
		t.Errorf("got %d effects, want one expand effect", len(g.effects.List()))
	}

	g.advance(ExpandPaddleDuration - time.Millisecond)
	if !g.effects.Has(EffectExpandPaddle) {
		t.Fatal("expand effect ended early")
	}

	g.advance(time.Millisecond)
	if g.effects.Has(EffectExpandPaddle) {
		t.Error("expand effect should end after its duration")
	}
	if g.paddle.W != PaddleWidth {
		t.Errorf("paddle width = %v, want %v after expiry", g.paddle.W, PaddleWidth)
	}
}

func TestExpandPaddleStaysOnField(t *testing.T) {
	g := newTestGame(t)
	g.paddle.X = g.cfg.Field.Width - g.paddle.W

	g.applyPowerup(PowerupExpandPaddle)
	if g.paddle.X < 0 || g.paddle.Right() > g.cfg.Field.Width {
		t.Errorf("paddle spans [%v, %v], want inside [0, %v]", g.paddle.X, g.paddle.Right(), g.cfg.Field.Width)
	}
}

func TestExpandPaddleRefreshesDeadline(t *testing.T) {
	g := newTestGame(t)

	g.applyPowerup(PowerupExpandPaddle)
	g.advance(6 * time.Second)
	g.applyPowerup(PowerupExpandPaddle)
	g.advance(6 * time.Second)

	if !g.effects.Has(EffectExpandPaddle) {
		t.Error("second pickup should extend the effect")
	}
	if got := g.effects.Remaining(EffectExpandPaddle, g.clock); got != 4*time.Second {
		t.Errorf("Remaining() = %v, want 4s", got)
	}
}

func TestSlowBall(t *testing.T) {
	g := newTestGame(t)
	before := g.balls[0].Vel

	g.applyPowerup(PowerupSlowBall)
	want := core.Vec{X: before.X / 2, Y: before.Y / 2}
	if g.balls[0].Vel != want {
		t.Fatalf("Vel = %+v, want %+v", g.balls[0].Vel, want)
	}

	// A second pickup does not slow the ball further.
	g.applyPowerup(PowerupSlowBall)
	if g.balls[0].Vel != want {
		t.Errorf("Vel = %+v after second pickup, want %+v", g.balls[0].Vel, want)
	}
	if g.ballSpeed() != BallSpeed/2.0 {
		t.Errorf("ballSpeed() = %v, want %v", g.ballSpeed(), BallSpeed/2.0)
	}

	g.advance(SlowBallDuration)
	if g.balls[0].Vel != before {
		t.Errorf("Vel = %+v after expiry, want %+v", g.balls[0].Vel, before)
	}
	if g.ballSpeed() != BallSpeed {
		t.Errorf("ballSpeed() = %v after expiry, want %v", g.ballSpeed(), BallSpeed)
	}
}

func TestMultiball(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))
	origin := g.balls[0].Pos

	g.applyPowerup(PowerupMultiball)

	if len(g.balls) != 3 {
		t.Fatalf("got %d balls, want 3", len(g.balls))
	}
	for i, angle := range []float64{math.Pi / 4, 3 * math.Pi / 4} {
		b := g.balls[i+1]
		if b.Pos != origin {
			t.Errorf("ball %d at %+v, want %+v", i+1, b.Pos, origin)
		}
		wantX := BallSpeed * math.Cos(angle)
		wantY := -BallSpeed * math.Sin(angle)
		if math.Abs(b.Vel.X-wantX) > 1e-9 || math.Abs(b.Vel.Y-wantY) > 1e-9 {
			t.Errorf("ball %d Vel = %+v, want (%v,%v)", i+1, b.Vel, wantX, wantY)
		}
	}
	if sounds.count(audio.Multiball) != 1 {
		t.Error("multiball should play its sound")
	}
}

func TestMultiballWhileSlowed(t *testing.T) {
	g := newTestGame(t)
	g.applyPowerup(PowerupSlowBall)
	g.applyPowerup(PowerupMultiball)

	for i, b := range g.balls {
		if got := math.Hypot(b.Vel.X, b.Vel.Y); got > BallSpeed*math.Sqrt2/2+1e-9 {
			t.Errorf("ball %d speed = %v, want slowed", i, got)
		}
	}
}

func TestUpdatePowerups(t *testing.T) {
	g := newTestGame(t)
	g.powerups = []*Powerup{
		{Pos: core.Vec{X: g.paddle.CenterX(), Y: 560}, Size: 15, Speed: 2, Type: PowerupExtraLife},
		{Pos: core.Vec{X: 100, Y: 599}, Size: 15, Speed: 2, Type: PowerupExtraLife},
		{Pos: core.Vec{X: 100, Y: 100}, Size: 15, Speed: 2, Type: PowerupExtraLife},
	}

	g.updatePowerups()

	if g.lives != 4 {
		t.Errorf("lives = %d, want 4 after catching one powerup", g.lives)
	}
	if len(g.powerups) != 1 {
		t.Fatalf("got %d powerups, want 1 still falling", len(g.powerups))
	}
	if g.powerups[0].Pos.Y != 102 {
		t.Errorf("powerup y = %v, want 102", g.powerups[0].Pos.Y)
	}
	if g.powerups[0].Rotation == 0 {
		t.Error("falling powerup should spin")
	}
}

func TestSpawnPowerup(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 50; i++ {
		g.spawnPowerup(100, 100)
	}

	seen := map[PowerupType]bool{}
	for _, pu := range g.powerups {
		if pu.Type < 0 || pu.Type >= PowerupCount {
			t.Fatalf("invalid powerup type %d", pu.Type)
		}
		if pu.Color != pu.Type.Color() {
			t.Errorf("powerup %v color = %q, want %q", pu.Type, pu.Color, pu.Type.Color())
		}
		seen[pu.Type] = true
	}
	if len(seen) != int(PowerupCount) {
		t.Errorf("saw %d powerup types in 50 drops, want all %d", len(seen), PowerupCount)
	}
}
