package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-rain/internal/core"
	"github.com/vovakirdan/neon-rain/internal/rain"
)

// Grid layout on the screen: every cell is two columns wide inside a
// rounded frame with one column of padding on each side.
const (
	cellWidth = 2
	padX      = 2 // frame + padding
	padY      = 1 // frame
)

// GridScreenSize returns the screen size needed to draw a rows x cols grid.
func GridScreenSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2*padX, rows + 2*padY
}

// CellColor maps a lit cell to a terminal colour: its HSL colour dimmed
// toward black by its opacity.
func CellColor(c rain.Cell) core.Color {
	lit := colorful.Hsl(c.Color.H, c.Color.S, c.Color.L)
	dimmed := colorful.Color{}.BlendRgb(lit, c.Opacity)
	return core.Color(dimmed.Clamped().Hex())
}

// DrawGrid draws g into s, resizing s to fit. Lit cells are solid blocks,
// unlit cells a faint dot.
func DrawGrid(s *core.Screen, g rain.Grid) {
	w, h := GridScreenSize(g.Rows(), g.Cols())
	s.Resize(w, h)
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorFrame)

	for i, row := range g {
		y := padY + i
		for j, cell := range row {
			x := padX + j*cellWidth
			if cell.Active {
				color := CellColor(cell)
				s.SetColored(x, y, '█', color)
				s.SetColored(x+1, y, '█', color)
				continue
			}
			s.SetColored(x, y, '·', core.ColorFaint)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			style := r.NewStyle().Foreground(lipgloss.Color(string(startColor)))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
