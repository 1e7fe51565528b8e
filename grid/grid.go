package grid

// New allocates an all-vacant rows×cols grid.
// Returns ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		seats: make([]State, rows*cols),
	}, nil
}

// FromRows builds a grid from a rectangular 0/1 matrix.
// It deep-copies the input so later edits to values do not leak in.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				g.seats[g.index(r, c)] = Occupied
			default:
				return nil, ErrInvalidValue
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of seats per row.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols, the number of seats.
func (g *Grid) Len() int { return len(g.seats) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the state of (row, col); out-of-range seats read as Vacant.
func (g *Grid) At(row, col int) State {
	if !g.InBounds(row, col) {
		return Vacant
	}
	return g.seats[g.index(row, col)]
}

// Occupied reports whether (row, col) is in bounds and taken.
func (g *Grid) Occupied(row, col int) bool {
	return g.At(row, col) == Occupied
}

// Occupy marks (row, col) as taken.
func (g *Grid) Occupy(row, col int) error {
	return g.set(row, col, Occupied)
}

// Vacate marks (row, col) as free.
func (g *Grid) Vacate(row, col int) error {
	return g.set(row, col, Vacant)
}

func (g *Grid) set(row, col int, s State) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.seats[g.index(row, col)] = s
	return nil
}

// OccupiedCount returns how many seats are taken.
// Complexity: O(R×C).
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, s := range g.seats {
		if s == Occupied {
			n++
		}
	}
	return n
}

// Cells lists the occupied seats in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.OccupiedCount())
	for i, s := range g.seats {
		if s == Occupied {
			r, c := g.Coordinate(i)
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// Values exports the grid as a fresh rows×cols matrix of 0 and 1.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.seats[g.index(r, c)])
		}
		out[r] = row
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	seats := make([]State, len(g.seats))
	copy(seats, g.seats)
	return &Grid{rows: g.rows, cols: g.cols, seats: seats}
}

// Reset marks every seat vacant.
func (g *Grid) Reset() {
	for i := range g.seats {
		g.seats[i] = Vacant
	}
}

// Index maps (row, col) to a row-major index: row*Cols + col.
// The caller must ensure the cell is in bounds.
func (g *Grid) Index(row, col int) int {
	return g.index(row, col)
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
