package seating

import "github.com/katalvlaran/seatgrid/grid"

// frame is one level of the explicit traversal stack.
type frame struct {
	cell  grid.Cell
	depth int // path length including cell
	next  int // index of the next offset to try
}

// searchStack is search without recursion. It visits candidates, commits
// and backtracks in exactly the same order, so both produce identical Plans.
func (w *walker) searchStack(start grid.Cell) bool {
	if w.canceled() {
		return false
	}
	if w.total == 1 {
		return true
	}

	stack := make([]frame, 1, w.total)
	stack[0] = frame{cell: start, depth: 1}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(offsets) {
			done := *top
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				w.backtrack(done.cell)
			}
			continue
		}

		d := offsets[top.next]
		top.next++
		cand := top.cell.Add(d.DRow, d.DCol)
		if !w.try(cand, top.cell) {
			continue
		}
		depth := top.depth + 1
		w.commit(cand, top.cell, depth)
		if w.canceled() {
			return false
		}
		if depth == w.total {
			return true
		}
		stack = append(stack, frame{cell: cand, depth: depth})
	}
	return false
}
