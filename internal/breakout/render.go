package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
)

// Screen rows above the field: the score line and the effects line.
const hudRows = 2

// Minimum terminal size for a playable field.
const (
	minScreenWidth = 30
	minTopRows     = 1
	minLowerRows   = 6
)

// viewport maps world coordinates to screen cells.
//
// Columns scale uniformly. Rows use a piecewise-linear map with knots at the
// field top, the first brick row, the last brick row and the field bottom,
// so every brick row lands on exactly one text row whatever the height.
type viewport struct {
	cols    int
	rows    int // Field rows, excluding the HUD
	sx      float64
	knotsW  [4]float64
	knotsR  [4]float64
	bricksH int
}

func newViewport(cfg config.BreakoutConfig, l BrickLayout, screenW, screenH int) viewport {
	rows := max(screenH-hudRows, 0)
	topRows := max(minTopRows, int(math.Round(l.Top()/cfg.Field.Height*float64(rows))))

	v := viewport{
		cols:    screenW,
		rows:    rows,
		bricksH: l.Rows,
	}
	if cfg.Field.Width > 0 {
		v.sx = float64(screenW) / cfg.Field.Width
	}
	v.knotsW = [4]float64{0, l.Top(), l.Bottom(), cfg.Field.Height}
	v.knotsR = [4]float64{0, float64(topRows), float64(topRows + l.Rows), float64(rows)}
	return v
}

// minHeight returns the smallest screen height that fits the brick rows
// and a play area beneath them.
func (v viewport) minHeight() int {
	return hudRows + minTopRows + v.bricksH + minLowerRows
}

// col converts a world x to a screen column.
func (v viewport) col(x float64) int {
	return core.Clamp(int(math.Floor(x*v.sx)), 0, max(v.cols-1, 0))
}

// row converts a world y to a screen row.
func (v viewport) row(y float64) int {
	seg := 0
	for seg < 2 && y >= v.knotsW[seg+1] {
		seg++
	}
	w0, w1 := v.knotsW[seg], v.knotsW[seg+1]
	r0, r1 := v.knotsR[seg], v.knotsR[seg+1]

	r := r0
	if w1 > w0 {
		r += (y - w0) / (w1 - w0) * (r1 - r0)
	}
	return hudRows + core.Clamp(int(math.Floor(r+1e-9)), 0, max(v.rows-1, 0))
}

// span converts a world [x, right) range to screen columns, at least one wide.
func (v viewport) span(x, right float64) (int, int) {
	x0 := v.col(x)
	x1 := core.Clamp(int(math.Floor(right*v.sx)), 0, v.cols)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderParticles(dst)
	g.renderBricks(dst)
	g.renderPowerups(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level, with active effects below.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), NeonColors[1])
	dst.DrawTextCenteredColored(0, fmt.Sprintf("Lives: %d", g.lives), NeonColors[0])

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, NeonColors[2])

	if effects := g.effectsString(); effects != "" {
		dst.DrawTextColored(1, 1, effects, NeonColors[3])
	} else {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, NeonColors[4])
	}
}

// effectsString lists active effects with whole seconds left.
func (g *Game) effectsString() string {
	parts := make([]string, 0, len(g.effects.List()))
	for _, e := range g.effects.List() {
		secs := int(math.Ceil(g.effects.Remaining(e.Type, g.clock).Seconds()))
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Type, secs))
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		dst.SetCell(g.view.col(p.Pos.X), g.view.row(p.Pos.Y), core.Cell{
			Rune:  ParticleChar,
			Color: p.Color,
			Faint: p.Fade() < 0.5,
		})
	}
}

// renderBricks draws bricks with a glyph that thins as health drops.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.bricks {
		if b.Broken {
			continue
		}
		glyph := BrickGlyphs[core.Clamp(b.Health, 1, len(BrickGlyphs))-1]
		x0, x1 := g.view.span(b.X, b.Right())
		if x1-x0 > 2 {
			x1-- // Keep a gap between neighbours
		}
		y := g.view.row(b.Y)
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, b.Color)
		}
	}
}

// renderPowerups draws falling power-ups, pulsing bold as they spin.
func (g *Game) renderPowerups(dst *core.Screen) {
	for _, pu := range g.powerups {
		dst.SetCell(g.view.col(pu.Pos.X), g.view.row(pu.Pos.Y), core.Cell{
			Rune:  pu.Type.Glyph(),
			Color: pu.Color,
			Bold:  math.Sin(pu.Rotation*8) > 0,
		})
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	x0, x1 := g.view.span(g.paddle.X, g.paddle.Right())
	y := g.view.row(g.paddle.Y)
	for x := x0; x < x1; x++ {
		dst.SetCell(x, y, core.Cell{Rune: PaddleChar, Color: g.paddle.Color, Bold: true})
	}
}

// renderBalls draws each ball over its fading trail.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.balls {
		for i, p := range b.Trail {
			glyph := TrailChar
			if i < len(b.Trail)/2 {
				glyph = TrailFaint
			}
			dst.SetCell(g.view.col(p.X), g.view.row(p.Y), core.Cell{Rune: glyph, Color: b.Color, Faint: true})
		}
	}
	for _, b := range g.balls {
		dst.SetCell(g.view.col(b.Pos.X), g.view.row(b.Pos.Y), core.Cell{Rune: BallChar, Color: b.Color, Bold: true})
	}
}

// renderOverlay draws the level banner and state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.transitioning && g.state == StatePlaying {
		banner := fmt.Sprintf("LEVEL %d", g.level)
		dst.DrawTextCenteredColored(dst.Height()/2, banner, NeonColors[0])
	}

	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := min(max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, NeonColors[1])

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, NeonColors[0])
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
