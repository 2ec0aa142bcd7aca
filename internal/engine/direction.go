package engine

// Axis selects whether lines are read along rows or columns.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// Sense selects the traversal order of a line.
// Forward reads left-to-right (rows) or top-to-bottom (columns).
type Sense int

const (
	SenseForward Sense = iota
	SenseReversed
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all four directions in the order legality is evaluated.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// Axis returns the axis lines are read along for this direction.
func (d Direction) Axis() Axis {
	if d == DirUp || d == DirDown {
		return AxisColumn
	}
	return AxisRow
}

// Sense returns the traversal order for this direction.
// Index 0 of a line always sits on the side tiles slide toward.
func (d Direction) Sense() Sense {
	if d == DirRight || d == DirDown {
		return SenseReversed
	}
	return SenseForward
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns the full word for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Key returns the single-letter shorthand for the direction.
func (d Direction) Key() string {
	switch d {
	case DirLeft:
		return "a"
	case DirRight:
		return "d"
	case DirUp:
		return "w"
	case DirDown:
		return "s"
	default:
		return ""
	}
}
