// Package render draws a 2048 grid as a bordered text table into a
// core.Screen.
package render

import (
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// MaxNumLength is the widest tile value a cell can show.
const MaxNumLength = 6

const (
	cellWidth  = MaxNumLength + 2 // Interior width of a cell
	cellHeight = 3                // Blank line, value line, underscore line
)

// Options control how the board is drawn.
type Options struct {
	Color   bool
	Palette Palette
}

// Width returns the width of a rendered board in characters.
func Width() int {
	return 1 + engine.BoardSize*(cellWidth+1)
}

// Height returns the height of a rendered board in lines.
func Height() int {
	return 1 + engine.BoardSize*cellHeight
}

// Board draws grid into a new screen sized to fit it exactly.
//
//	_____________________________________
//	|        |        |        |        |
//	| 2      |        | 16     |        |
//	|________|________|________|________|
func Board(grid engine.Grid, opts Options) *core.Screen {
	s := core.NewScreen(Width(), Height())

	s.DrawHLine(0, 0, Width(), '_')

	for row := range engine.BoardSize {
		top := 1 + row*cellHeight
		for line := range cellHeight {
			y := top + line
			for col := 0; col <= engine.BoardSize; col++ {
				s.Set(col*(cellWidth+1), y, '|')
			}
		}

		for col := range engine.BoardSize {
			x := 1 + col*(cellWidth+1)
			value := grid[row][col]

			s.DrawHLine(x, top+2, cellWidth, '_')
			if value != 0 {
				text := strconv.Itoa(value)
				if len(text) > MaxNumLength {
					text = text[:MaxNumLength]
				}
				s.DrawText(x+1, top+1, text)
			}

			if opts.Color {
				s.Paint(core.NewRect(x, top, cellWidth, cellHeight), opts.Palette.TileColor(value))
			}
		}
	}

	return s
}
