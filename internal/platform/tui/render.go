package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/render"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default renderer.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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

			if !startColor.Valid() {
				sb.WriteString(run.String())
				continue
			}
			style := r.NewStyle().Background(lipgloss.Color(strconv.Itoa(int(startColor))))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardView renders grid as text, styled only when colour is enabled.
func boardView(r *lipgloss.Renderer, grid engine.Grid, opts render.Options) string {
	s := render.Board(grid, opts)
	if !opts.Color {
		return s.String()
	}
	return RenderScreen(r, s)
}
