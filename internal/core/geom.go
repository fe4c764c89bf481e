// Package core provides the small shared types used by the game and the
// terminal platform: geometry, input frames, runtime config and the screen
// buffer. It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or velocity in world units.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned box in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports whether two boxes overlap with a strictly positive area.
// Touching edges do not count.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Overlap returns the width and height of the intersection of two boxes.
// Both are zero or negative when the boxes do not overlap.
func (b Box) Overlap(other Box) (w, h float64) {
	w = min(b.Right(), other.Right()) - max(b.X, other.X)
	h = min(b.Bottom(), other.Bottom()) - max(b.Y, other.Y)
	return w, h
}

// CircleBounds returns the bounding box of a circle.
func CircleBounds(center Vec, radius float64) Box {
	return Box{
		X: center.X - radius,
		Y: center.Y - radius,
		W: radius * 2,
		H: radius * 2,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
