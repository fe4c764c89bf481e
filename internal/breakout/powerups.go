package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// PowerupType represents the kinds of falling power-ups.
type PowerupType int

const (
	PowerupExtraLife    PowerupType = iota // One more life
	PowerupExpandPaddle                    // Wider paddle for a while
	PowerupMultiball                       // Two extra balls
	PowerupSlowBall                        // Half-speed balls for a while
	PowerupCount                           // Sentinel for counting types
)

// String returns the name of the power-up type.
func (p PowerupType) String() string {
	switch p {
	case PowerupExtraLife:
		return "extraLife"
	case PowerupExpandPaddle:
		return "expandPaddle"
	case PowerupMultiball:
		return "multiball"
	case PowerupSlowBall:
		return "slowBall"
	default:
		return "unknown"
	}
}

// Color returns the power-up's display color.
func (p PowerupType) Color() core.Color {
	switch p {
	case PowerupExtraLife:
		return "#ff00ff"
	case PowerupExpandPaddle:
		return "#00ffff"
	case PowerupMultiball:
		return "#00ff00"
	case PowerupSlowBall:
		return "#ffff00"
	default:
		return White
	}
}

// Glyph returns the display character for a power-up type.
func (p PowerupType) Glyph() rune {
	switch p {
	case PowerupExtraLife:
		return '♥'
	case PowerupExpandPaddle:
		return '↔'
	case PowerupMultiball:
		return 'M'
	case PowerupSlowBall:
		return 'S'
	default:
		return '?'
	}
}

// Powerup is a falling power-up item. Pos is its center.
type Powerup struct {
	Pos      core.Vec
	Size     float64
	Speed    float64
	Type     PowerupType
	Color    core.Color
	Rotation float64
}

// EffectType represents timed effects.
type EffectType int

const (
	EffectExpandPaddle EffectType = iota
	EffectSlowBall
)

// String returns the short name for effect display.
func (e EffectType) String() string {
	switch e {
	case EffectExpandPaddle:
		return "WIDE"
	case EffectSlowBall:
		return "SLOW"
	default:
		return "?"
	}
}

// Effect is an active timed effect that ends when the game clock reaches Until.
type Effect struct {
	Type  EffectType
	Until time.Duration
}

// Effects tracks active timed effects against the game clock.
// Each type is present at most once.
type Effects struct {
	active []Effect
}

// Add starts an effect or moves its deadline. It reports whether the
// effect was newly started.
func (es *Effects) Add(t EffectType, until time.Duration) bool {
	for i := range es.active {
		if es.active[i].Type == t {
			es.active[i].Until = until
			return false
		}
	}
	es.active = append(es.active, Effect{Type: t, Until: until})
	return true
}

// Has returns true if the given effect is active.
func (es *Effects) Has(t EffectType) bool {
	for _, e := range es.active {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Remaining returns the time left on an effect, or zero if not active.
func (es *Effects) Remaining(t EffectType, now time.Duration) time.Duration {
	for _, e := range es.active {
		if e.Type == t && e.Until > now {
			return e.Until - now
		}
	}
	return 0
}

// Expire removes effects whose deadline has passed and returns their types.
func (es *Effects) Expire(now time.Duration) []EffectType {
	var expired []EffectType
	active := es.active[:0]
	for _, e := range es.active {
		if e.Until <= now {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}
	es.active = active
	return expired
}

// List returns the active effects.
func (es *Effects) List() []Effect {
	return es.active
}

// Clear drops every effect without running expiry.
func (es *Effects) Clear() {
	es.active = es.active[:0]
}

// spawnPowerup drops a random power-up at (x, y).
func (g *Game) spawnPowerup(x, y float64) {
	t := PowerupType(g.rng.Intn(int(PowerupCount)))
	g.powerups = append(g.powerups, &Powerup{
		Pos:   core.Vec{X: x, Y: y},
		Size:  g.cfg.Powerups.Size,
		Speed: g.cfg.Powerups.FallSpeed,
		Type:  t,
		Color: t.Color(),
	})
}

// updatePowerups moves power-ups, applies any the paddle catches and
// drops those that left the field.
func (g *Game) updatePowerups() {
	kept := g.powerups[:0]
	for _, pu := range g.powerups {
		pu.Pos.Y += pu.Speed
		pu.Rotation += g.cfg.Powerups.Spin

		if powerupTouchesPaddle(pu, &g.paddle) {
			g.applyPowerup(pu.Type)
			continue
		}
		if pu.Pos.Y > g.cfg.Field.Height {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerups = kept
}

// applyPowerup runs a power-up's effect.
func (g *Game) applyPowerup(t PowerupType) {
	g.play(audio.PowerupCollect)

	switch t {
	case PowerupExtraLife:
		g.lives++

	case PowerupExpandPaddle:
		g.paddle.W = math.Min(g.paddle.W*g.cfg.Powerups.ExpandFactor, g.cfg.Field.Width/2)
		g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.Field.Width-g.paddle.W)
		g.effects.Add(EffectExpandPaddle, g.clock+g.cfg.Powerups.ExpandDuration)

	case PowerupMultiball:
		if len(g.balls) > 0 {
			first := g.balls[0]
			speed := g.ballSpeed()
			for _, angle := range []float64{math.Pi / 4, 3 * math.Pi / 4} {
				b := g.createBall(first.Pos.X, first.Pos.Y)
				b.Vel = core.Vec{X: speed * math.Cos(angle), Y: -speed * math.Sin(angle)}
			}
			g.play(audio.Multiball)
		}

	case PowerupSlowBall:
		if g.effects.Add(EffectSlowBall, g.clock+g.cfg.Powerups.SlowDuration) {
			for _, b := range g.balls {
				b.scale(0.5)
			}
		}
	}

	g.createParticles(g.paddle.CenterX(), g.paddle.Y, powerupParticles, White)
}

// expireEffects reverts effects whose deadline has passed.
func (g *Game) expireEffects() {
	for _, t := range g.effects.Expire(g.clock) {
		switch t {
		case EffectExpandPaddle:
			g.paddle.W = g.cfg.Paddle.Width
		case EffectSlowBall:
			for _, b := range g.balls {
				b.scale(2)
			}
		}
	}
}
