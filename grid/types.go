package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns was requested.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidValue indicates a cell value other than 0 or 1.
	ErrInvalidValue = errors.New("grid: cell value must be 0 or 1")
	// ErrOutOfBounds indicates a write outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// State is the occupancy of a single seat.
type State uint8

const (
	// Vacant marks a seat nobody should take.
	Vacant State = iota
	// Occupied marks a seat assigned to a guest.
	Occupied
)

// String returns "0" or "1", the rendering used for plans.
func (s State) String() string {
	if s == Occupied {
		return "1"
	}
	return "0"
}

// Cell identifies a seat by row and column, both zero-based.
type Cell struct {
	Row int
	Col int
}

// Add returns the cell shifted by (dr, dc). The result may lie outside any grid.
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rows×columns occupancy matrix backed by a row-major buffer.
// A Grid is owned by a single search; it is not safe for concurrent mutation.
type Grid struct {
	rows, cols int
	seats      []State
}
