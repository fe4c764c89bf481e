package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-breaker/internal/core"
)

// styleKey identifies a cell's visual style.
type styleKey struct {
	color core.Color
	bold  bool
	faint bool
}

// styleCache holds one lipgloss style per cell style. It is shared by SSH
// sessions, so access is locked.
var styleCache = struct {
	sync.Mutex
	m map[styleKey]lipgloss.Style
}{m: make(map[styleKey]lipgloss.Style)}

func cellStyle(k styleKey) lipgloss.Style {
	styleCache.Lock()
	defer styleCache.Unlock()

	if s, ok := styleCache.m[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Bold(k.bold).Faint(k.faint)
	if k.color != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(k.color)))
	}
	styleCache.m[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := styleKey{color: cell.Color, bold: cell.Bold, faint: cell.Faint}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{color: cell.Color, bold: cell.Bold, faint: cell.Faint}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(key).Render(run.String()))
		}
	}
	return sb.String()
}
