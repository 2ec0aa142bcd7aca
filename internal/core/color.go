package core

// Color is an ANSI 256-colour code used as a cell background.
type Color int

// ColorNone leaves the terminal's default background in place.
const ColorNone Color = -1

// Valid reports whether c is a drawable 256-colour code.
func (c Color) Valid() bool {
	return c >= 0 && c <= 255
}
