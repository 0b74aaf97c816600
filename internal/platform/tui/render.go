package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// palette maps core colors to lipgloss styles for one renderer. SSH sessions
// get their own renderer so color support follows the client terminal.
type palette map[core.Color]lipgloss.Style

var paletteColors = []core.Color{
	core.ColorPlayer,
	core.ColorPlatform,
	core.ColorHUD,
	core.ColorOverlay,
	core.ColorButton,
	core.ColorDim,
}

func newPalette(r *lipgloss.Renderer) palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := palette{core.ColorDefault: r.NewStyle()}
	for _, c := range paletteColors {
		style := r.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		if c == core.ColorPlayer || c == core.ColorButton || c == core.ColorOverlay {
			style = style.Bold(true)
		}
		p[c] = style
	}
	return p
}

func (p palette) style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
