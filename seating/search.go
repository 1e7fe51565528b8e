// Package seating - traversal driver.
//
// This file holds the recursive knight-step search and the walker state it
// shares with the explicit-stack variant in stack.go.
//
// Complexity:
//
//   - Time:   O(8·R·C) candidate checks under LeaveOccupied, since every seat is
//     committed at most once; exponential in R·C under UndoOnBacktrack.
//   - Memory: O(R·C) for the route, the trace and the recursion stack.
//
// Errors:
//
//   - ErrNilGrid, ErrGridNotEmpty, ErrStartColumn on bad input.
//   - distance.ErrInvalidDistance from cfg.Validate.
//   - the context error, wrapped, when Options.Ctx ends the search.
package seating

import (
	"fmt"

	"github.com/katalvlaran/seatgrid/distance"
	"github.com/katalvlaran/seatgrid/grid"
)

// walker carries the state of one traversal.
type walker struct {
	g     *grid.Grid
	v     *Validator
	opts  Options
	total int

	route []grid.Cell
	plan  *Plan
	err   error
}

// Search runs the knight-step traversal on g under cfg.
// g must be entirely vacant; it is mutated in place and returned in Plan.Grid.
// Failing to cover every seat is reported through Plan.Complete, not err.
// A non-nil err with a non-nil Plan means the context ended the search early.
//
// Complexity: see the file header; each candidate costs O(1) (at most eight
// neighbour probes).
func Search(g *grid.Grid, cfg distance.Config, opts ...Option) (*Plan, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g.OccupiedCount() != 0 {
		return nil, ErrGridNotEmpty
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Pick and occupy the start seat
	col, err := startColumn(&o, g.Cols())
	if err != nil {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", err, o.StartColumn, g.Cols())
	}
	w := &walker{
		g:     g,
		v:     NewValidator(cfg),
		opts:  o,
		total: g.Len(),
		route: make([]grid.Cell, 0, g.Len()),
		plan:  &Plan{Grid: g, Start: grid.Cell{Row: 0, Col: col}},
	}
	start := w.plan.Start
	w.commit(start, start, 1)

	// 4. Traverse
	if o.Iterative {
		w.plan.Complete = w.searchStack(start)
	} else {
		w.plan.Complete = w.search(start, 1)
	}

	w.plan.Route = append([]grid.Cell(nil), w.route...)
	w.plan.Stats.Probes = w.v.Probes()
	if w.err != nil {
		return w.plan, fmt.Errorf("seating: search aborted: %w", w.err)
	}
	return w.plan, nil
}

// search extends the path from cur, which is seat number pathLength.
func (w *walker) search(cur grid.Cell, pathLength int) bool {
	if w.canceled() {
		return false
	}
	if pathLength == w.total {
		return true
	}

	for _, d := range offsets {
		cand := cur.Add(d.DRow, d.DCol)
		if !w.try(cand, cur) {
			continue
		}
		w.commit(cand, cur, pathLength+1)
		if w.search(cand, pathLength+1) {
			return true
		}
		if w.err != nil {
			return false
		}
		w.backtrack(cand)
	}
	return false
}

// try validates one candidate and records the verdict.
func (w *walker) try(cand, from grid.Cell) bool {
	w.plan.Stats.Candidates++
	verdict := w.v.Check(w.g, cand, from)
	if verdict != Accepted {
		w.plan.Stats.Rejections[verdict]++
		return false
	}
	return true
}

// commit occupies c and extends the live route.
func (w *walker) commit(c, from grid.Cell, depth int) {
	_ = w.g.Occupy(c.Row, c.Col) // c was validated in bounds
	w.route = append(w.route, c)
	w.plan.Trace = append(w.plan.Trace, Step{Cell: c, From: from, Depth: depth})
	if depth > w.plan.Stats.MaxDepth {
		w.plan.Stats.MaxDepth = depth
	}
	if w.opts.OnCommit != nil {
		w.opts.OnCommit(c, depth)
	}
}

// backtrack drops c from the live route after its branch failed.
// Under LeaveOccupied the seat stays taken.
func (w *walker) backtrack(c grid.Cell) {
	w.route = w.route[:len(w.route)-1]
	w.plan.Stats.Backtracks++
	if w.opts.Backtrack == UndoOnBacktrack {
		_ = w.g.Vacate(c.Row, c.Col)
	}
}

func (w *walker) canceled() bool {
	if w.err != nil {
		return true
	}
	if err := w.opts.Ctx.Err(); err != nil {
		w.err = err
		return true
	}
	return false
}
