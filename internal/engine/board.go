// Package engine implements the 2048 board: grid storage, line extraction,
// the slide-and-merge rule, move legality and random tile placement.
// It has no I/O and no dependency on any terminal library.
package engine

import (
	"errors"
	"fmt"
)

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that counts as a win.
const WinTile = 2048

// Spawn weights: a new tile is a 2 nine times out of ten.
const (
	spawnLow        = 2
	spawnHigh       = 4
	spawnLowWeight  = 9
	spawnHighWeight = 1
)

var (
	// ErrIllegalMove is returned by ApplyMove when no line would change.
	ErrIllegalMove = errors.New("engine: illegal move")
	// ErrBoardFull is the panic value of PlaceRandomTile on a full grid.
	ErrBoardFull = errors.New("engine: no empty cell to place a tile")
)

// Grid is the 4x4 matrix of tiles, indexed [row][column]. Zero is empty.
type Grid [BoardSize][BoardSize]int

// Board owns a grid and keeps a running count of its empty cells.
type Board struct {
	grid  Grid
	empty int
	rng   Rand
}

// New creates a board with an empty grid and two random tiles.
func New(rng Rand) *Board {
	b := &Board{
		empty: BoardSize * BoardSize,
		rng:   rng,
	}
	b.PlaceRandomTile()
	b.PlaceRandomTile()
	return b
}

// FromGrid creates a board holding a copy of grid. No tiles are placed.
func FromGrid(grid Grid, rng Rand) *Board {
	b := &Board{grid: grid, rng: rng}
	for row := range BoardSize {
		for col := range BoardSize {
			if grid[row][col] == 0 {
				b.empty++
			}
		}
	}
	return b
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Value returns the tile at (row, col).
func (b *Board) Value(row, col int) int {
	return b.grid[row][col]
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return b.empty
}

// PlaceRandomTile writes a 2 or a 4 into a uniformly chosen empty cell.
// It panics with ErrBoardFull if the grid has no empty cell; callers
// only reach it through a legal move or a fresh board.
func (b *Board) PlaceRandomTile() {
	if b.empty <= 0 {
		panic(ErrBoardFull)
	}

	pos := b.rng.Intn(b.empty)
	value := b.rng.Choose(spawnLow, spawnHigh, spawnLowWeight, spawnHighWeight)

	for row := range BoardSize {
		for col := range BoardSize {
			if b.grid[row][col] != 0 {
				continue
			}
			if pos == 0 {
				b.grid[row][col] = value
				b.empty--
				return
			}
			pos--
		}
	}

	// The cached count disagrees with the grid.
	panic(fmt.Errorf("engine: empty count %d exceeds empty cells", b.empty))
}

// Line returns the cells of row or column index, reversed for SenseReversed.
func (b *Board) Line(index int, axis Axis, sense Sense) Line {
	var line Line
	for i := range LineLen {
		if axis == AxisColumn {
			line[i] = b.grid[i][index]
		} else {
			line[i] = b.grid[index][i]
		}
	}
	if sense == SenseReversed {
		line = line.reversed()
	}
	return line
}

// SetLine writes line back along the same axis and sense Line reads it.
func (b *Board) SetLine(index int, axis Axis, sense Sense, line Line) {
	if sense == SenseReversed {
		line = line.reversed()
	}
	for i := range LineLen {
		if axis == AxisColumn {
			b.grid[i][index] = line[i]
		} else {
			b.grid[index][i] = line[i]
		}
	}
}

// IsMoveLegal reports whether moving in dir would change any line.
func (b *Board) IsMoveLegal(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	for i := range BoardSize {
		if IsLineMergeable(b.Line(i, dir.Axis(), dir.Sense())) {
			return true
		}
	}
	return false
}

// LegalMoves returns every direction that would change the board,
// in the order Left, Right, Up, Down. An empty result means game over.
func (b *Board) LegalMoves() []Direction {
	var moves []Direction
	for _, dir := range Directions {
		if b.IsMoveLegal(dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// ApplyMove slides and merges every line toward dir, then places one
// random tile. An illegal direction returns ErrIllegalMove and leaves
// the board untouched.
func (b *Board) ApplyMove(dir Direction) error {
	if !b.IsMoveLegal(dir) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, dir)
	}

	axis, sense := dir.Axis(), dir.Sense()
	for i := range BoardSize {
		line := b.Line(i, axis, sense)
		merged := MergeLine(line)
		b.empty += merged.Zeros() - line.Zeros()
		b.SetLine(i, axis, sense, merged)
	}

	b.PlaceRandomTile()
	return nil
}

// MaxTile returns the largest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for row := range BoardSize {
		for col := range BoardSize {
			maxVal = max(maxVal, b.grid[row][col])
		}
	}
	return maxVal
}

// HasTile reports whether value appears anywhere on the board.
func (b *Board) HasTile(value int) bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if b.grid[row][col] == value {
				return true
			}
		}
	}
	return false
}
