package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-breaker/internal/audio"
	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

type soundRecorder struct {
	played []audio.Sound
}

func (r *soundRecorder) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func (r *soundRecorder) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultBreakoutConfig(), opts...)
	g.Reset(testRuntime())
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 900)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%40 < 10:
			inputSequence[i].Set(core.ActionRight)
		case i%40 < 20:
			inputSequence[i].Set(core.ActionLeft)
		case i%97 == 0:
			inputSequence[i].SetPointer(float64(i%10) / 10)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t)
	rt := testRuntime()
	rt.Seed = 999
	g2 := New(config.DefaultBreakoutConfig())
	g2.Reset(rt)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds should give different starting states")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	if state.Score != 0 || state.Lives != 3 || state.Level != 1 {
		t.Errorf("State() = %+v, want score 0, lives 3, level 1", state)
	}
	if state.GameOver || state.Paused || state.Transitioning {
		t.Errorf("State() = %+v, want a running game", state)
	}
	if len(g.bricks) != BrickRows*BrickCols {
		t.Errorf("got %d bricks, want %d", len(g.bricks), BrickRows*BrickCols)
	}

	if len(g.balls) != 1 {
		t.Fatalf("got %d balls, want 1", len(g.balls))
	}
	ball := g.balls[0]
	if ball.Pos != (core.Vec{X: 400, Y: 550}) {
		t.Errorf("ball at %+v, want (400,550)", ball.Pos)
	}
	if math.Abs(ball.Vel.X) != BallSpeed || ball.Vel.Y != -BallSpeed {
		t.Errorf("ball velocity = %+v, want (±5,-5)", ball.Vel)
	}

	if g.paddle.X != 350 || g.paddle.Y != 570 || g.paddle.W != PaddleWidth {
		t.Errorf("paddle = %+v, want x=350 y=570 w=100", g.paddle.Box)
	}

	// Reset after play starts over.
	for i := 0; i < 30; i++ {
		step(g, core.ActionRight)
	}
	g.score = 120
	g.Reset(testRuntime())
	if g.score != 0 || g.tickCount != 0 || g.clock != 0 || g.paddle.X != 350 {
		t.Error("Reset() should restore the starting state")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)

	if !step(g, core.ActionPause).State.Paused {
		t.Fatal("game should be paused")
	}

	tick := g.tickCount
	ballPos := g.balls[0].Pos
	for i := 0; i < 10; i++ {
		step(g, core.ActionRight)
	}
	if g.tickCount != tick || g.balls[0].Pos != ballPos {
		t.Error("paused game should not advance")
	}

	if step(g, core.ActionPause).State.Paused {
		t.Error("second pause should resume")
	}
	if g.tickCount != tick+1 {
		t.Errorf("tickCount = %d, want %d after resuming", g.tickCount, tick+1)
	}
}

func TestKeyboardMovesPaddle(t *testing.T) {
	g := newTestGame(t)
	start := g.paddle.X

	step(g, core.ActionRight)
	if g.paddle.X != start+6 {
		t.Errorf("paddle x = %v, want %v", g.paddle.X, start+6)
	}

	// Momentum carries the paddle on with friction.
	step(g)
	if g.paddle.X <= start+6 {
		t.Error("paddle should keep sliding after the key is released")
	}

	for i := 0; i < 20; i++ {
		step(g, core.ActionLeft)
	}
	if g.paddle.X >= start {
		t.Errorf("paddle x = %v, want left of %v", g.paddle.X, start)
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{"center", 0.5, 350},
		{"quarter", 0.25, 150},
		{"left edge clamps", 0, 0},
		{"right edge clamps", 1, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			in := core.NewInputFrame()
			in.SetPointer(tt.fraction)
			g.Step(in)
			if g.paddle.X != tt.want {
				t.Errorf("paddle x = %v, want %v", g.paddle.X, tt.want)
			}
		})
	}
}

func TestLoseLife(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))

	ball := g.balls[0]
	ball.Pos = core.Vec{X: 10, Y: 590}
	ball.Vel = core.Vec{X: 0, Y: 5}

	step(g)
	if len(g.balls) != 0 {
		t.Fatalf("got %d balls, want the ball lost", len(g.balls))
	}
	if g.lives != 3 {
		t.Errorf("lives = %d, want 3 until the next frame", g.lives)
	}

	res := step(g)
	if res.State.Lives != 2 {
		t.Errorf("lives = %d, want 2", res.State.Lives)
	}
	if len(g.balls) != 1 {
		t.Errorf("got %d balls, want a new ball", len(g.balls))
	}
	if res.State.GameOver {
		t.Error("game should continue with lives left")
	}
	if sounds.count(audio.GameOver) != 1 {
		t.Error("losing a life should play the game over sound")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))
	g.lives = 1
	g.balls = nil

	res := step(g)
	if !res.State.GameOver {
		t.Fatal("game should be over")
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, want 0", res.State.Lives)
	}
	if sounds.count(audio.GameOver) != 1 {
		t.Error("game over should play its sound once")
	}

	tick := g.tickCount
	step(g, core.ActionRight)
	if g.tickCount != tick {
		t.Error("finished game should not advance")
	}

	res = step(g, core.ActionRestart)
	if res.State.GameOver || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("State() = %+v after restart, want a fresh game", res.State)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.score = 50
	step(g, core.ActionRestart)
	if g.score != 50 {
		t.Error("restart should only apply after game over")
	}
}

func TestBrickBreakScores(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))

	ball := g.balls[0]
	ball.Vel = core.Vec{X: 5, Y: -5}
	g.bricks = []*Brick{
		{Box: core.Box{X: 380, Y: 530, W: 40, H: 20}, Health: 1, Color: NeonColors[0]},
		{Box: core.Box{X: 10, Y: 40, W: 40, H: 20}, Health: 1, Color: NeonColors[0]},
	}

	step(g)

	if g.score != BrickPoints {
		t.Errorf("score = %d, want %d", g.score, BrickPoints)
	}
	if len(g.bricks) != 1 {
		t.Errorf("got %d bricks, want the broken one removed", len(g.bricks))
	}
	if ball.Vel.Y != 5 {
		t.Errorf("ball Vel.Y = %v, want bounced downward", ball.Vel.Y)
	}
	if sounds.count(audio.BrickBreak) != 1 {
		t.Error("breaking a brick should play its sound")
	}
	if len(g.particles) < brickParticles {
		t.Errorf("got %d particles, want at least %d", len(g.particles), brickParticles)
	}
}

func TestToughBrickTakesTwoHits(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))

	ball := g.balls[0]
	ball.Vel = core.Vec{X: 5, Y: -5}
	brick := &Brick{Box: core.Box{X: 380, Y: 530, W: 40, H: 20}, Health: 2}
	g.bricks = []*Brick{brick, {Box: core.Box{X: 10, Y: 40, W: 40, H: 20}, Health: 1}}

	step(g)

	if brick.Health != 1 || brick.Broken {
		t.Errorf("brick health = %d broken = %v, want 1 and intact", brick.Health, brick.Broken)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if sounds.count(audio.BrickHit) != 1 {
		t.Error("damaging a brick should play the hit sound")
	}
}

func TestLevelTransition(t *testing.T) {
	sounds := &soundRecorder{}
	g := newTestGame(t, WithSounds(sounds))
	g.bricks = g.bricks[:0]

	res := step(g)
	if !res.State.Transitioning {
		t.Fatal("clearing the bricks should start the level transition")
	}
	if res.State.Level != 2 {
		t.Errorf("level = %d, want 2", res.State.Level)
	}
	if len(g.particles) < celebrationBursts*celebrationPerBurst {
		t.Errorf("got %d particles, want the celebration", len(g.particles))
	}
	if sounds.count(audio.LevelComplete) != 1 {
		t.Error("completing a level should play its sound")
	}

	frames := 0
	for g.transitioning && frames < 300 {
		step(g)
		frames++
	}
	if g.transitioning {
		t.Fatal("transition never finished")
	}

	// 2s at 60 ticks per second, give or take one frame of rounding.
	if frames < 119 || frames > 121 {
		t.Errorf("transition took %d frames, want about 120", frames)
	}
	if len(g.bricks) != 25 {
		t.Errorf("got %d bricks, want the checkerboard level", len(g.bricks))
	}
	if len(g.balls) != 1 {
		t.Errorf("got %d balls, want a single fresh ball", len(g.balls))
	}
	if g.level != 2 {
		t.Errorf("level = %d, want 2", g.level)
	}
}

func TestParticlesBurnOut(t *testing.T) {
	g := newTestGame(t)
	g.createParticles(400, 300, 10, NeonColors[0])

	for i := 0; i < ParticleLife-1; i++ {
		g.updateParticles()
	}
	if len(g.particles) != 10 {
		t.Fatalf("got %d particles, want 10 still alive", len(g.particles))
	}
	g.updateParticles()
	if len(g.particles) != 0 {
		t.Errorf("got %d particles, want all burned out", len(g.particles))
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New(config.DefaultBreakoutConfig())
	rt := testRuntime()
	rt.ScreenW = 20
	rt.ScreenH = 10
	g.Reset(rt)

	step(g)
	if g.tickCount != 0 {
		t.Error("game should wait while the screen is too small")
	}

	g.Resize(80, 24)
	step(g)
	if g.tickCount != 1 {
		t.Error("game should run once the screen is large enough")
	}
}

func TestPushTrail(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		pushes int
		want   int
	}{
		{"disabled", 0, 4, 0},
		{"single point", 1, 4, 1},
		{"fills up", TrailLength, 3, 3},
		{"capped", TrailLength, 20, TrailLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{}
			for i := 0; i < tt.pushes; i++ {
				b.Pos = core.Vec{X: float64(i), Y: float64(i)}
				b.pushTrail(tt.limit)
			}
			if len(b.Trail) != tt.want {
				t.Fatalf("len(Trail) = %d, want %d", len(b.Trail), tt.want)
			}
			if tt.want > 0 {
				last := b.Trail[len(b.Trail)-1]
				if last != b.Pos {
					t.Errorf("newest trail point = %+v, want %+v", last, b.Pos)
				}
			}
		})
	}
}

func TestTrailStaysBoundedWithMultiball(t *testing.T) {
	g := newTestGame(t)
	g.applyPowerup(PowerupMultiball)

	for i := 0; i < 3000; i++ {
		if g.state == StateGameOver {
			step(g, core.ActionRestart)
			g.applyPowerup(PowerupMultiball)
			continue
		}
		in := core.NewInputFrame()
		if len(g.balls) > 0 {
			in.SetPointer(g.balls[0].Pos.X / g.cfg.Field.Width)
		}
		g.Step(in)

		for j, b := range g.balls {
			if len(b.Trail) > TrailLength {
				t.Fatalf("frame %d: ball %d trail has %d points, want at most %d", i, j, len(b.Trail), TrailLength)
			}
		}
	}
}
