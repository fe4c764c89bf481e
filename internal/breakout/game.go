// Package breakout implements the Neon Breaker simulation: balls, paddle,
// bricks, power-ups and particles in an 800x600 world, advanced one frame
// per Step and drawn onto a core.Screen.
package breakout

import (
	"time"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Game implements the Neon Breaker game logic.
type Game struct {
	// Game objects
	paddle    Paddle
	balls     []*Ball
	bricks    []*Brick
	powerups  []*Powerup
	particles []*Particle
	effects   Effects

	// Game state
	state           string
	score           int
	lives           int
	level           int
	tickCount       int
	clock           time.Duration // Simulated time since Reset
	transitioning   bool          // Level banner showing, bricks not yet rebuilt
	transitionUntil time.Duration

	// Configuration
	runtime config.BreakoutConfig
	cfg     config.BreakoutConfig
	rt      core.RuntimeConfig
	layout  BrickLayout
	rng     *SimpleRNG
	sounds  audio.Player

	// Layout (computed from screen size)
	view           viewport
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithSounds routes sound effects to p.
func WithSounds(p audio.Player) Option {
	return func(g *Game) { g.sounds = p }
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.BreakoutConfig, opts ...Option) *Game {
	g := &Game{runtime: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used when recording games.
func (g *Game) ID() string {
	return "neonbreaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Breaker"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.cfg = g.runtime
	g.layout = NewBrickLayout(g.cfg)
	g.rng = NewSimpleRNG(rt.Seed)

	g.calculateLayout()

	g.state = StatePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.tickCount = 0
	g.clock = 0
	g.transitioning = false
	g.transitionUntil = 0
	g.effects.Clear()
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]

	g.paddle = Paddle{
		Box: core.Box{
			X: g.cfg.Field.Width/2 - g.cfg.Paddle.Width/2,
			Y: g.cfg.Field.Height - g.cfg.Paddle.BottomOffset,
			W: g.cfg.Paddle.Width,
			H: g.cfg.Paddle.Height,
		},
		Color: NeonColors[1],
	}

	g.balls = g.balls[:0]
	g.createBall(0, 0)
	g.createBricks()
}

// calculateLayout maps the world onto the current screen size.
func (g *Game) calculateLayout() {
	g.view = newViewport(g.cfg, g.layout, g.rt.ScreenW, g.rt.ScreenH)
	g.minScreenW = minScreenWidth
	g.minScreenH = g.view.minHeight()
	g.screenTooSmall = g.rt.ScreenW < g.minScreenW || g.rt.ScreenH < g.minScreenH
}

// Resize adapts rendering to a new screen size without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.calculateLayout()
}

// ballSpeed is the per-axis launch speed, halved while slow-ball is active.
func (g *Game) ballSpeed() float64 {
	if g.effects.Has(EffectSlowBall) {
		return g.cfg.Ball.Speed / 2
	}
	return g.cfg.Ball.Speed
}

// createBall adds a ball heading up at a random horizontal direction.
// Zero coordinates fall back to the spawn point above the paddle.
func (g *Game) createBall(x, y float64) *Ball {
	if x == 0 {
		x = g.cfg.Field.Width / 2
	}
	if y == 0 {
		y = g.cfg.Field.Height - ballSpawnOffset
	}
	speed := g.ballSpeed()
	b := &Ball{
		Pos:    core.Vec{X: x, Y: y},
		Vel:    core.Vec{X: speed * g.rng.Sign(), Y: -speed},
		Radius: g.cfg.Ball.Radius,
		Color:  g.rng.Neon(),
	}
	g.balls = append(g.balls, b)
	return b
}

// resetBalls replaces every ball with a single fresh one.
func (g *Game) resetBalls() {
	g.balls = g.balls[:0]
	g.createBall(0, 0)
}

// createBricks lays out the current level's pattern.
func (g *Game) createBricks() {
	g.bricks = PatternForLevel(g.level)(g.bricks[:0], g.layout, g.rng)
	if g.level > 1 {
		g.play(audio.LevelComplete)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.advance(g.rt.FrameDuration())

	g.handleInput(in)
	g.updateBalls()
	if g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}
	g.updatePaddle()
	g.updatePowerups()
	g.updateParticles()

	if len(g.bricks) == 0 && !g.transitioning {
		g.startTransition()
	}
	if g.transitioning && g.clock >= g.transitionUntil {
		g.finishTransition()
	}

	return core.StepResult{State: g.State()}
}

// advance moves the game clock forward and reverts expired effects.
func (g *Game) advance(d time.Duration) {
	g.clock += d
	g.expireEffects()
}

// handleInput turns the frame's input into paddle motion.
func (g *Game) handleInput(in core.InputFrame) {
	if in.HasPointer {
		g.paddle.X = in.Pointer*g.cfg.Field.Width - g.paddle.W/2
		g.paddle.DX = 0
	}
	if in.Has(core.ActionLeft) {
		g.paddle.DX = -g.cfg.Paddle.KeyPush
	}
	if in.Has(core.ActionRight) {
		g.paddle.DX = g.cfg.Paddle.KeyPush
	}
}

// updateBalls moves every ball and resolves its collisions.
func (g *Game) updateBalls() {
	if len(g.balls) == 0 {
		g.lives--
		if g.lives <= 0 {
			g.endGame()
			return
		}
		g.resetBalls()
		g.play(audio.GameOver)
		return
	}

	kept := g.balls[:0]
	for _, b := range g.balls {
		b.pushTrail(g.cfg.Ball.TrailLength)
		b.Pos.X += b.Vel.X
		b.Pos.Y += b.Vel.Y

		hit := reflectWalls(b, g.cfg.Field.Width)
		if hit.Side {
			g.createParticles(b.Pos.X, b.Pos.Y, wallParticles, b.Color)
			g.play(audio.WallHit)
		}
		if hit.Top {
			g.createParticles(b.Pos.X, b.Pos.Y, wallParticles, b.Color)
			g.play(audio.WallHit)
		}

		if belowField(b, g.cfg.Field.Height) {
			continue
		}

		if touchesPaddle(b, &g.paddle) {
			bounceOffPaddle(b, &g.paddle, g.ballSpeed())
			g.createParticles(b.Pos.X, b.Pos.Y, paddleParticles, g.paddle.Color)
			g.play(audio.PaddleHit)
		}

		g.hitBricks(b)
		kept = append(kept, b)
	}
	g.balls = kept
}

// hitBricks resolves at most one brick collision for the ball.
func (g *Game) hitBricks(b *Ball) {
	i := firstHit(b, g.bricks)
	if i < 0 {
		return
	}
	brick := g.bricks[i]

	bounceOffBrick(b, brick)
	brick.Health--

	if brick.Health > 0 {
		g.play(audio.BrickHit)
		return
	}

	brick.Health = 0
	brick.Broken = true
	g.score += g.cfg.Bricks.Points
	g.createParticles(b.Pos.X, b.Pos.Y, brickParticles, brick.Color)
	g.play(audio.BrickBreak)

	if g.rng.Float64() < g.cfg.Powerups.Chance {
		c := brick.Center()
		g.spawnPowerup(c.X, c.Y)
	}

	g.bricks = append(g.bricks[:i], g.bricks[i+1:]...)
}

// updatePaddle applies velocity, keeps the paddle on the field and
// applies friction.
func (g *Game) updatePaddle() {
	g.paddle.X += g.paddle.DX
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.Field.Width-g.paddle.W)
	g.paddle.DX *= g.cfg.Paddle.Friction
}

// startTransition begins the level banner for the next level.
func (g *Game) startTransition() {
	g.level++
	g.transitioning = true
	g.transitionUntil = g.clock + g.cfg.Gameplay.LevelTransition
	g.play(audio.LevelComplete)
	g.celebrate()
}

// finishTransition builds the new level and serves a fresh ball.
func (g *Game) finishTransition() {
	g.transitioning = false
	g.createBricks()
	g.resetBalls()
}

// endGame stops the simulation.
func (g *Game) endGame() {
	g.state = StateGameOver
	g.play(audio.GameOver)
}

func (g *Game) play(s audio.Sound) {
	if g.sounds != nil {
		g.sounds.Play(s)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.level,
		GameOver:      g.state == StateGameOver,
		Paused:        g.state == StatePaused,
		Transitioning: g.transitioning,
	}
}
