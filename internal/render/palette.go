package render

import (
	"math/bits"

	"github.com/vovakirdan/term2048/internal/core"
)

// Palette maps log2(tile value) to a background colour.
// Exponents without an entry fall back to the exponent itself,
// so 2 gets colour 1, 4 gets colour 2 and so on.
type Palette map[int]core.Color

// Exponent returns log2 of a power-of-two tile value.
func Exponent(value int) int {
	if value <= 0 {
		return 0
	}
	return bits.Len(uint(value)) - 1
}

// TileColor returns the background colour for a tile. Empty cells are
// uncoloured.
func (p Palette) TileColor(value int) core.Color {
	if value == 0 {
		return core.ColorNone
	}
	exp := Exponent(value)
	if c, ok := p[exp]; ok {
		return c
	}
	c := core.Color(exp)
	if !c.Valid() {
		return core.ColorNone
	}
	return c
}
