// Package seating - step validator.
//
// Checks run in a fixed order and stop at the first failure. Adjacency checks
// are gated by the distance configuration and read only in-bounds seats, so
// edge and corner seats need no special cases.
//
// Concurrency:
//   - a Validator counts probes and must not be shared across goroutines.
package seating

import (
	"github.com/katalvlaran/seatgrid/distance"
	"github.com/katalvlaran/seatgrid/grid"
)

var (
	verticalNeighbors   = [...]Offset{{-1, 0}, {1, 0}}
	horizontalNeighbors = [...]Offset{{0, -1}, {0, 1}}
	diagonalNeighbors   = [...]Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Validator decides whether a seat may be occupied next.
// The gates are fixed at construction from the distance configuration.
// A Validator is not safe for concurrent use because it counts probes.
type Validator struct {
	cfg      distance.Config
	rowGate  bool
	colGate  bool
	diagGate bool
	probes   int
}

// NewValidator binds a Validator to cfg.
func NewValidator(cfg distance.Config) *Validator {
	return &Validator{
		cfg:      cfg,
		rowGate:  cfg.RowGated(),
		colGate:  cfg.ColumnGated(),
		diagGate: cfg.DiagonalGated(),
	}
}

// Config returns the distance configuration the validator enforces.
func (v *Validator) Config() distance.Config { return v.cfg }

// Probes returns how many neighbour seats the adjacency checks have read.
func (v *Validator) Probes() int { return v.probes }

// IsValid reports whether cand may be occupied after from.
func (v *Validator) IsValid(g *grid.Grid, cand, from grid.Cell) bool {
	return v.Check(g, cand, from) == Accepted
}

// Check runs the checks in order and returns the first failing one:
//  1. bounds, 2. vacancy, 3. step distance from the previous seat,
//  4. row adjacency, 5. column adjacency, 6. diagonal adjacency.
//
// Checks 4–6 only run when the matching spacing is below the minimum;
// they read only neighbours that lie inside the grid.
//
// Complexity: O(1), at most eight neighbour probes.
func (v *Validator) Check(g *grid.Grid, cand, from grid.Cell) Verdict {
	if !g.InBounds(cand.Row, cand.Col) {
		return RejectBounds
	}
	if g.Occupied(cand.Row, cand.Col) {
		return RejectOccupied
	}
	if v.cfg.Step(cand.Row-from.Row, cand.Col-from.Col) < v.cfg.MinSafe {
		return RejectStepDistance
	}
	if v.rowGate && v.anyOccupied(g, cand, verticalNeighbors[:]) {
		return RejectRowAdjacent
	}
	if v.colGate && v.anyOccupied(g, cand, horizontalNeighbors[:]) {
		return RejectColumnAdjacent
	}
	if v.diagGate && v.anyOccupied(g, cand, diagonalNeighbors[:]) {
		return RejectDiagonal
	}
	return Accepted
}

// anyOccupied reports whether any in-bounds neighbour of c at the given
// offsets is taken. Edge and corner seats simply have fewer neighbours.
//
// Complexity: O(len(around)).
func (v *Validator) anyOccupied(g *grid.Grid, c grid.Cell, around []Offset) bool {
	for _, d := range around {
		r, col := c.Row+d.DRow, c.Col+d.DCol
		if !g.InBounds(r, col) {
			continue
		}
		v.probes++
		if g.Occupied(r, col) {
			return true
		}
	}
	return false
}
