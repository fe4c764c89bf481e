package breakout

import (
	"math"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// createParticles emits count particles from (x, y) in random directions.
func (g *Game) createParticles(x, y float64, count int, color core.Color) {
	life := g.cfg.Gameplay.ParticleLife
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * math.Pi * 2
		speed := g.rng.Float64()*3 + 1
		g.particles = append(g.particles, &Particle{
			Pos:     core.Vec{X: x, Y: y},
			Vel:     core.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:    g.rng.Float64()*3 + 1,
			Color:   color,
			Life:    life,
			MaxLife: life,
		})
	}
}

// updateParticles moves particles and drops the ones that burned out.
func (g *Game) updateParticles() {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

// celebrate scatters bursts of palette-colored particles over the field.
func (g *Game) celebrate() {
	for i := 0; i < celebrationBursts; i++ {
		x := g.rng.Float64() * g.cfg.Field.Width
		y := g.rng.Float64() * g.cfg.Field.Height
		g.createParticles(x, y, celebrationPerBurst, g.rng.Neon())
	}
}
