package breakout

import (
	"math"
	"time"
)

// Snapshot is a flat copy of the simulation state used to compare runs.
type Snapshot struct {
	Tick          uint64
	Clock         time.Duration
	State         string
	Score         int
	Lives         int
	Level         int
	Transitioning bool

	PaddleX     float64
	PaddleWidth float64

	// Each ball is 4 floats: X, Y, VX, VY
	BallData []float64

	// Each brick is 3 ints: Row, Col, Health
	BrickData []int

	// Each powerup is Type followed by X, Y
	PowerupTypes []int
	PowerupData  []float64

	// Each effect is Type, Until in nanoseconds
	EffectData []int64

	ParticleCount int
	RNGState      uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*4)
	for _, b := range g.balls {
		ballData = append(ballData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	brickData := make([]int, 0, len(g.bricks)*3)
	for _, b := range g.bricks {
		brickData = append(brickData, b.Row, b.Col, b.Health)
	}

	types := make([]int, 0, len(g.powerups))
	puData := make([]float64, 0, len(g.powerups)*2)
	for _, pu := range g.powerups {
		types = append(types, int(pu.Type))
		puData = append(puData, pu.Pos.X, pu.Pos.Y)
	}

	effectData := make([]int64, 0, len(g.effects.List())*2)
	for _, e := range g.effects.List() {
		effectData = append(effectData, int64(e.Type), int64(e.Until))
	}

	var rngState uint64
	if g.rng != nil {
		rngState = g.rng.state
	}

	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Clock:         g.clock,
		State:         g.state,
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.level,
		Transitioning: g.transitioning,
		PaddleX:       g.paddle.X,
		PaddleWidth:   g.paddle.W,
		BallData:      ballData,
		BrickData:     brickData,
		PowerupTypes:  types,
		PowerupData:   puData,
		EffectData:    effectData,
		ParticleCount: len(g.particles),
		RNGState:      rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Clock)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	if snap.Transitioning {
		h = h*31 + 1
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerupTypes {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerupData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
