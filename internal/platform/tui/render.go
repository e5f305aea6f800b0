package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// cellStyle is the color pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

func (cs cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if cs.fg.A() != 0 {
		s = s.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if cs.bg.A() != 0 {
		s = s.Background(lipgloss.Color(cs.bg.Hex()))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	var run strings.Builder

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[key]
			if !ok {
				style = key.style()
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
