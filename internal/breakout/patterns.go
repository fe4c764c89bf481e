package breakout

import "github.com/vovakirdan/neon-breaker/internal/config"

// BrickLayout holds the grid geometry shared by every pattern.
type BrickLayout struct {
	Rows      int
	Cols      int
	Width     float64 // Per-brick width, derived from the field width
	Height    float64
	Gap       float64
	TopOffset float64
}

// NewBrickLayout computes the layout for the configured field.
func NewBrickLayout(cfg config.BreakoutConfig) BrickLayout {
	cols := cfg.Bricks.Cols
	return BrickLayout{
		Rows:      cfg.Bricks.Rows,
		Cols:      cols,
		Width:     (cfg.Field.Width - cfg.Bricks.Gap*float64(cols+1)) / float64(cols),
		Height:    cfg.Bricks.Height,
		Gap:       cfg.Bricks.Gap,
		TopOffset: cfg.Bricks.TopOffset,
	}
}

// Top returns the y coordinate of the first brick row.
func (l BrickLayout) Top() float64 {
	return l.Gap + l.TopOffset
}

// Bottom returns the y coordinate just below the last brick row.
func (l BrickLayout) Bottom() float64 {
	return l.Top() + float64(l.Rows)*(l.Height+l.Gap)
}

// brick builds the brick at grid cell (row, col).
func (l BrickLayout) brick(row, col, health int, rng *SimpleRNG) *Brick {
	b := &Brick{
		Color:  rng.Neon(),
		Health: health,
		Row:    row,
		Col:    col,
	}
	b.X = l.Gap + float64(col)*(l.Width+l.Gap)
	b.Y = l.Gap + float64(row)*(l.Height+l.Gap) + l.TopOffset
	b.W = l.Width
	b.H = l.Height
	return b
}

// Pattern appends one level's bricks to dst.
type Pattern func(dst []*Brick, l BrickLayout, rng *SimpleRNG) []*Brick

// StandardPattern fills every cell. The top two rows take two hits.
func StandardPattern(dst []*Brick, l BrickLayout, rng *SimpleRNG) []*Brick {
	for row := 0; row < l.Rows; row++ {
		health := 1
		if row < 2 {
			health = 2
		}
		for col := 0; col < l.Cols; col++ {
			dst = append(dst, l.brick(row, col, health, rng))
		}
	}
	return dst
}

// CheckerboardPattern fills cells where row+col is even, all with two hits.
func CheckerboardPattern(dst []*Brick, l BrickLayout, rng *SimpleRNG) []*Brick {
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if (row+col)%2 == 0 {
				dst = append(dst, l.brick(row, col, 2, rng))
			}
		}
	}
	return dst
}

// PyramidPattern narrows toward the top, where bricks are toughest.
func PyramidPattern(dst []*Brick, l BrickLayout, rng *SimpleRNG) []*Brick {
	for row := 0; row < l.Rows; row++ {
		skip := (l.Rows - row - 1) / 2
		for col := skip; col < l.Cols-skip; col++ {
			dst = append(dst, l.brick(row, col, l.Rows-row, rng))
		}
	}
	return dst
}

// PatternForLevel cycles standard, checkerboard, pyramid starting at level 1.
func PatternForLevel(level int) Pattern {
	switch ((level % 3) + 3) % 3 {
	case 1:
		return StandardPattern
	case 2:
		return CheckerboardPattern
	default:
		return PyramidPattern
	}
}
