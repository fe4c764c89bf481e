package breakout

import (
	"math"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// CheckCollision reports whether the ball's bounding circle overlaps an
// unbroken brick.
func CheckCollision(ball *Ball, brick *Brick) bool {
	if brick.Broken {
		return false
	}
	return ball.Bounds().Overlaps(brick.Box)
}

// WallHit describes which walls a ball touched this frame.
type WallHit struct {
	Side bool
	Top  bool
}

// reflectWalls bounces the ball off the side and top walls, keeping it
// inside the field.
func reflectWalls(ball *Ball, fieldW float64) WallHit {
	var hit WallHit
	r := ball.Radius

	if ball.Pos.X-r < 0 {
		ball.Pos.X = r
		ball.Vel.X = math.Abs(ball.Vel.X)
		hit.Side = true
	} else if ball.Pos.X+r > fieldW {
		ball.Pos.X = fieldW - r
		ball.Vel.X = -math.Abs(ball.Vel.X)
		hit.Side = true
	}

	if ball.Pos.Y-r < 0 {
		ball.Pos.Y = r
		ball.Vel.Y = math.Abs(ball.Vel.Y)
		hit.Top = true
	}

	return hit
}

// belowField reports whether the ball has crossed the bottom edge.
func belowField(ball *Ball, fieldH float64) bool {
	return ball.Pos.Y+ball.Radius > fieldH
}

// touchesPaddle reports whether a descending ball is over the paddle face.
func touchesPaddle(ball *Ball, p *Paddle) bool {
	if ball.Vel.Y <= 0 {
		return false
	}
	return ball.Pos.Y+ball.Radius > p.Y &&
		ball.Pos.X > p.X &&
		ball.Pos.X < p.Right() &&
		ball.Pos.Y < p.Bottom()
}

// bounceOffPaddle sends the ball upward at an angle set by where it hit.
// The hit fraction maps to angle = fraction*pi - pi/2 from vertical, so
// the center sends it straight up and the edges send it outward. Measured
// from horizontal, a center hit would leave the ball skimming sideways.
func bounceOffPaddle(ball *Ball, p *Paddle, speed float64) {
	hit := core.ClampF((ball.Pos.X-p.X)/p.W, 0, 1)
	angle := core.ClampF(hit*math.Pi-math.Pi/2, -maxBounceAngle, maxBounceAngle)

	ball.Vel.X = speed * math.Sin(angle)
	ball.Vel.Y = -speed * math.Abs(math.Cos(angle))
	ball.Pos.Y = p.Y - ball.Radius
}

// bounceOffBrick reverses the velocity on the axis of least penetration.
// A narrow horizontal overlap means the ball came in from the side.
func bounceOffBrick(ball *Ball, brick *Brick) {
	w, h := ball.Bounds().Overlap(brick.Box)
	if w < h {
		ball.Vel.X = -ball.Vel.X
	} else {
		ball.Vel.Y = -ball.Vel.Y
	}
}

// firstHit returns the index of the first brick the ball overlaps, or -1.
func firstHit(ball *Ball, bricks []*Brick) int {
	for i, b := range bricks {
		if CheckCollision(ball, b) {
			return i
		}
	}
	return -1
}

// powerupTouchesPaddle reports whether a falling powerup reached the paddle.
func powerupTouchesPaddle(pu *Powerup, p *Paddle) bool {
	return pu.Pos.Y+pu.Size > p.Y &&
		pu.Pos.X > p.X &&
		pu.Pos.X < p.Right() &&
		pu.Pos.Y < p.Bottom()
}
