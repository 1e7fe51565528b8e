package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatgrid/grid"
)

//----------------------------------------------------------------------------//
// New and FromRows
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 2},
		{"NegativeCols", 2, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			if !errors.Is(err, grid.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
			if g != nil {
				t.Errorf("New(%d,%d) returned a grid on error", tc.rows, tc.cols)
			}
		})
	}
}

// TestNew_ZeroInitialized checks a fresh grid is all vacant and correctly sized.
func TestNew_ZeroInitialized(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Len())
	assert.Zero(t, g.OccupiedCount())
	assert.Empty(t, g.Cells())
}

// TestFromRows_Errors ensures FromRows rejects bad inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"Nil", nil, grid.ErrInvalidDimensions},
		{"EmptyCols", [][]int{{}}, grid.ErrInvalidDimensions},
		{"Jagged", [][]int{{1, 0}, {1}}, grid.ErrNonRectangular},
		{"BadValue", [][]int{{0, 2}}, grid.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.values)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromRows_RoundTrip checks that Values returns the matrix FromRows was given
// and that the grid does not alias the input.
func TestFromRows_RoundTrip(t *testing.T) {
	in := [][]int{
		{1, 0, 0},
		{0, 0, 1},
	}
	g, err := grid.FromRows(in)
	require.NoError(t, err)
	in[0][1] = 1

	assert.Equal(t, [][]int{{1, 0, 0}, {0, 0, 1}}, g.Values())
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, g.Cells())
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 2}, {1, 0}} {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestOccupyVacate exercises writes, including out-of-range ones.
func TestOccupyVacate(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Occupy(1, 1))
	assert.True(t, g.Occupied(1, 1))
	assert.Equal(t, grid.Occupied, g.At(1, 1))
	assert.Equal(t, 1, g.OccupiedCount())

	require.NoError(t, g.Vacate(1, 1))
	assert.False(t, g.Occupied(1, 1))

	assert.ErrorIs(t, g.Occupy(2, 0), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.Vacate(0, -1), grid.ErrOutOfBounds)
	assert.False(t, g.Occupied(-1, -1), "out-of-range reads are vacant")
}

// TestCloneIndependent ensures Clone does not share storage.
func TestCloneIndependent(t *testing.T) {
	g, _ := grid.New(2, 2)
	_ = g.Occupy(0, 0)
	cp := g.Clone()
	_ = cp.Occupy(1, 1)

	assert.Equal(t, 1, g.OccupiedCount())
	assert.Equal(t, 2, cp.OccupiedCount())

	cp.Reset()
	assert.Zero(t, cp.OccupiedCount())
	assert.Equal(t, 1, g.OccupiedCount())
}

// TestIndexCoordinate checks the row-major mapping both ways.
func TestIndexCoordinate(t *testing.T) {
	g, _ := grid.New(3, 5)
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			i := g.Index(r, c)
			assert.Equal(t, r*5+c, i)
			gr, gc := g.Coordinate(i)
			assert.Equal(t, r, gr)
			assert.Equal(t, c, gc)
		}
	}
}

// TestCellHelpers covers Cell.Add and the String forms.
func TestCellHelpers(t *testing.T) {
	c := grid.Cell{Row: 1, Col: 2}.Add(2, -1)
	assert.Equal(t, grid.Cell{Row: 3, Col: 1}, c)
	assert.Equal(t, "(3,1)", c.String())
	assert.Equal(t, "1", grid.Occupied.String())
	assert.Equal(t, "0", grid.Vacant.String())
}
