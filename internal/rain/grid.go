package rain

import (
	"errors"
	"fmt"
)

// Dimension bounds shared by rows and columns.
const (
	MinDim = 1
	MaxDim = 40
)

// ErrInvalidDimensions is returned when a row or column count is out of
// [MinDim, MaxDim] or does not match the grid it describes.
var ErrInvalidDimensions = errors.New("rain: invalid grid dimensions")

// Grid is a rectangular block of cells indexed [row][col], row 0 at the top.
// Grids handed out by the simulator are never modified afterwards.
type Grid [][]Cell

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns an independent deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// ActiveInColumn counts active cells in column col over rows [from, to].
func (g Grid) ActiveInColumn(col, from, to int) int {
	n := 0
	for i := from; i <= to && i < len(g); i++ {
		if i >= 0 && g[i][col].Active {
			n++
		}
	}
	return n
}

// ActiveCount counts all active cells.
func (g Grid) ActiveCount() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c.Active {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two grids have the same shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// checkDims validates a rows x cols request against the bounds.
func checkDims(rows, cols int) error {
	if rows < MinDim || rows > MaxDim || cols < MinDim || cols > MaxDim {
		return fmt.Errorf("%w: %dx%d outside [%d, %d]", ErrInvalidDimensions, rows, cols, MinDim, MaxDim)
	}
	return nil
}

// checkShape validates that g is exactly rows x cols.
func checkShape(g Grid, rows, cols int) error {
	if err := checkDims(rows, cols); err != nil {
		return err
	}
	if len(g) != rows {
		return fmt.Errorf("%w: grid has %d rows, expected %d", ErrInvalidDimensions, len(g), rows)
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidDimensions, i, len(row), cols)
		}
	}
	return nil
}
