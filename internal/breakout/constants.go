package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Default tuning in world units. The loaded config starts from these values.
const (
	BrickRows          = 5
	BrickCols          = 10
	BrickHeight        = 20
	BrickGap           = 2
	BrickTopOffset     = 40
	BrickPoints        = 10
	PaddleHeight       = 15
	PaddleWidth        = 100
	PaddleBottomOffset = 30
	BallRadius         = 8
	BallSpeed          = 5
	TrailLength        = 5
	PowerupChance      = 0.2
	PowerupSpeed       = 2
	PowerupSize        = 15
	ParticleLife       = 30
	MaxHighScores      = 5

	LevelTransitionTime  = 2 * time.Second
	ExpandPaddleDuration = 10 * time.Second
	SlowBallDuration     = 8 * time.Second
)

// Particle counts for each event.
const (
	wallParticles       = 10
	paddleParticles     = 5
	brickParticles      = 20
	powerupParticles    = 30
	celebrationBursts   = 100
	celebrationPerBurst = 3
)

// Spawn position offset above the field bottom for new balls.
const ballSpawnOffset = 50

// Maximum paddle bounce angle from vertical.
const maxBounceAngle = 75 * math.Pi / 180

// NeonColors is the palette bricks, balls and celebrations draw from.
var NeonColors = []core.Color{
	"#ff00ff", // pink
	"#00ffff", // cyan
	"#00ff00", // green
	"#ffff00", // yellow
	"#9900ff", // purple
}

// White is used for powerup collection bursts.
const White core.Color = "#ffffff"

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	TrailChar    = '•'
	TrailFaint   = '·'
	ParticleChar = '∙'
	BorderHoriz  = '─'
)

// BrickGlyphs are indexed by remaining health, capped at the last entry.
var BrickGlyphs = []rune{'░', '▒', '▓', '█'}
