package breakout

import "github.com/vovakirdan/neon-breaker/internal/core"

// Ball is a moving ball. Velocity is in world units per frame.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Color  core.Color
	Trail  []core.Vec // Oldest first
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Box {
	return core.CircleBounds(b.Pos, b.Radius)
}

// pushTrail records the current position, keeping at most n points.
func (b *Ball) pushTrail(n int) {
	if n <= 0 {
		b.Trail = b.Trail[:0]
		return
	}
	b.Trail = append(b.Trail, b.Pos)
	if len(b.Trail) > n {
		b.Trail = append(b.Trail[:0], b.Trail[len(b.Trail)-n:]...)
	}
}

// scale multiplies the velocity by f.
func (b *Ball) scale(f float64) {
	b.Vel.X *= f
	b.Vel.Y *= f
}

// Brick is a destructible block. Row and Col locate it in the grid.
type Brick struct {
	core.Box
	Color  core.Color
	Health int
	Broken bool
	Row    int
	Col    int
}

// Paddle is the player's paddle.
type Paddle struct {
	core.Box
	DX    float64 // Horizontal velocity, decays by friction
	Color core.Color
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Particle is a short-lived decorative dot.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Size    float64
	Color   core.Color
	Life    int // Frames left
	MaxLife int
}

// Fade returns the remaining life as a fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
