// Package seating computes a socially distanced seating plan on a grid.Grid
// using a knight-step depth-first traversal.
//
// What:
//
//   - Search picks a start seat in the first row (seeded RNG or a fixed
//     column), occupies it, and extends the path one knight step at a time
//     (8 fixed offsets, tried in a fixed order) until every seat is covered
//     or every branch is exhausted.
//   - Validator decides whether a candidate seat may be occupied: bounds,
//     vacancy, step distance to the previous seat, then row, column and
//     diagonal adjacency checks, each gated on the spacing being tighter
//     than the minimum safe distance.
//   - A failed branch leaves its seat occupied (LeaveOccupied, the default)
//     or reverts it (UndoOnBacktrack); see WithBacktrack.
//
// Why:
//
//   - Adjacency occupancy checks stand in for a full pairwise distance scan:
//     seats closer than the minimum can only be grid neighbours once the
//     knight step itself is far enough.
//
// Complexity:
//
//   - LeaveOccupied: every seat is committed at most once, so Search is
//     O(R×C×8) time; recursion depth is at most R×C.
//   - UndoOnBacktrack: exhaustive, exponential in R×C in the worst case.
//     Use WithContext to bound it and WithIterative to avoid deep recursion.
//
// Options:
//
//   - WithSeed(seed), WithRand(r)  start-column randomness (seed 0 ⇒ fixed default).
//   - WithStartColumn(c)           skip the RNG and start at (0, c).
//   - WithBacktrack(policy)        LeaveOccupied or UndoOnBacktrack.
//   - WithIterative()              explicit-stack traversal, same results.
//   - WithOnCommit(fn)             observe each committed seat.
//   - WithContext(ctx)             abort a long search.
//
// Errors:
//
//   - ErrNilGrid            grid pointer is nil.
//   - ErrGridNotEmpty       the grid already has occupied seats.
//   - ErrStartColumn        WithStartColumn outside [0, cols).
//   - distance.ErrInvalidDistance from an invalid Config.
//   - context errors        when the search was canceled.
//
// A search that cannot cover the whole grid is not an error: the Plan is
// returned with Complete == false and the grid as the traversal left it.
package seating
