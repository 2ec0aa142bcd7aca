package engine

// LineLen is the number of cells in a line.
const LineLen = BoardSize

// Line is the run of cells along one row or column, ordered so that
// index 0 is the side a move slides toward.
type Line [LineLen]int

// MergeLine slides all tiles toward index 0 and merges equal neighbours.
// A tile produced by a merge cannot merge again in the same move, so
// [2 2 2 2] becomes [4 4 0 0].
func MergeLine(line Line) Line {
	var merged Line
	i := 0
	minIndex := 0

	for _, value := range line {
		if value == 0 {
			continue
		}
		if i > minIndex && merged[i-1] == value {
			merged[i-1] *= 2
			minIndex = i
		} else {
			merged[i] = value
			i++
		}
	}

	return merged
}

// IsLineMergeable reports whether MergeLine would change the line: either
// two equal tiles meet across nothing but empty cells, or a tile has an
// empty cell in front of it.
func IsLineMergeable(line Line) bool {
	backIndex := -1
	for foreIndex, value := range line {
		if value == 0 {
			continue
		}
		if backIndex >= 0 && line[backIndex] == value {
			return true
		}
		if foreIndex-backIndex > 1 {
			return true
		}
		backIndex = foreIndex
	}
	return false
}

// Zeros counts the empty cells in the line.
func (l Line) Zeros() int {
	n := 0
	for _, v := range l {
		if v == 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values in the line.
func (l Line) Sum() int {
	total := 0
	for _, v := range l {
		total += v
	}
	return total
}

// reversed returns the line in the opposite order.
func (l Line) reversed() Line {
	var result Line
	for i := range LineLen {
		result[i] = l[LineLen-1-i]
	}
	return result
}
