package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	gridSize  = 3
	CellCount = gridSize * gridSize

	middleCell = CellCount / 2
	lastCell   = CellCount - 1
)

// Grid is the 3x3 board stored row-major, indexed from 0 (top left) to 8 (bottom right).
// The zero value is an empty board.
type Grid struct {
	cells [CellCount]Marker
}

func NewGrid() *Grid {
	return &Grid{}
}

func (that *Grid) Set(pos int, marker Marker) error {
	if err := checkCell(pos); err != nil {
		return err
	}

	that.cells[pos] = marker

	return nil
}

func (that *Grid) Get(pos int) (Marker, error) {
	if err := checkCell(pos); err != nil {
		return Empty, err
	}

	return that.cells[pos], nil
}

// Copy returns an independent snapshot of the grid.
func (that *Grid) Copy() Grid {
	return Grid{cells: that.cells}
}

func (that *Grid) HasEmpty() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}

	return false
}

// SameInLine returns the marker covering a whole row, column or diagonal.
// Empty is never reported. When several lines are complete only the first one found counts.
func (that *Grid) SameInLine() (Marker, bool) {
	if marker, ok := that.sameFromMiddle(); ok {
		return marker, true
	}

	return that.sameFromCorners()
}

// sameFromMiddle checks every line through the middle cell: both diagonals, the middle row and column.
func (that *Grid) sameFromMiddle() (Marker, bool) {
	middle := that.cells[middleCell]
	if middle == Empty {
		return Empty, false
	}

	for i := 0; i < middleCell; i++ {
		if that.cells[i] == middle && that.cells[lastCell-i] == middle {
			return middle, true
		}
	}

	return Empty, false
}

// sameFromCorners walks the column and the row anchored at the top left and the bottom right corners.
func (that *Grid) sameFromCorners() (Marker, bool) {
	topLeft, bottomRight := that.cells[0], that.cells[lastCell]
	if topLeft == Empty && bottomRight == Empty {
		return Empty, false
	}

	topVertical, topHorizontal := topLeft != Empty, topLeft != Empty
	bottomVertical, bottomHorizontal := bottomRight != Empty, bottomRight != Empty

	for i := 1; i < gridSize; i++ {
		topVertical = topVertical && that.cells[i*gridSize] == topLeft
		topHorizontal = topHorizontal && that.cells[i] == topLeft
		bottomVertical = bottomVertical && that.cells[lastCell-i*gridSize] == bottomRight
		bottomHorizontal = bottomHorizontal && that.cells[lastCell-i] == bottomRight
	}

	switch {
	case topVertical, topHorizontal:
		return topLeft, true
	case bottomVertical, bottomHorizontal:
		return bottomRight, true
	default:
		return Empty, false
	}
}

// WinningIndex returns the lowest empty cell at which marker would complete a line.
// The grid is left exactly as it was found.
func (that *Grid) WinningIndex(marker Marker) (int, bool) {
	for pos := range that.cells {
		if that.cells[pos] != Empty {
			continue
		}

		if that.winsAt(pos, marker) {
			return pos, true
		}
	}

	return -1, false
}

func (that *Grid) winsAt(pos int, marker Marker) bool {
	that.cells[pos] = marker
	defer func() {
		that.cells[pos] = Empty
	}()

	winner, ok := that.SameInLine()

	return ok && winner == marker
}

// Filled returns the number of occupied cells.
func (that *Grid) Filled() int {
	filled := 0
	for _, cell := range that.cells {
		if cell != Empty {
			filled++
		}
	}

	return filled
}

// String uses a value receiver so the copies returned by Board print with fmt.
func (that Grid) String() string {
	rows := make([]string, 0, gridSize)
	for row := 0; row < gridSize; row++ {
		var builder strings.Builder
		for column := 0; column < gridSize; column++ {
			builder.WriteRune(that.cells[row*gridSize+column].Token())
		}
		rows = append(rows, builder.String())
	}

	return strings.Join(rows, "\n")
}

func checkCell(pos int) error {
	if pos < 0 || pos >= CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, pos)
	}

	return nil
}
