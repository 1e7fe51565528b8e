package seating

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seatgrid/grid"
)

var (
	// ErrNilGrid is returned when Search receives a nil grid.
	ErrNilGrid = errors.New("seating: grid is nil")

	// ErrGridNotEmpty indicates the grid already holds occupied seats.
	ErrGridNotEmpty = errors.New("seating: grid must start vacant")

	// ErrStartColumn indicates a fixed start column outside the grid.
	ErrStartColumn = errors.New("seating: start column out of range")
)

// Verdict is the outcome of validating one candidate seat.
type Verdict int

const (
	// Accepted means the candidate may be occupied.
	Accepted Verdict = iota
	// RejectBounds means the candidate lies outside the grid.
	RejectBounds
	// RejectOccupied means the candidate is already taken.
	RejectOccupied
	// RejectStepDistance means the step from the previous seat is too short.
	RejectStepDistance
	// RejectRowAdjacent means a seat directly in front or behind is taken.
	RejectRowAdjacent
	// RejectColumnAdjacent means a seat directly left or right is taken.
	RejectColumnAdjacent
	// RejectDiagonal means a diagonally adjacent seat is taken.
	RejectDiagonal

	verdictCount
)

var verdictNames = [verdictCount]string{
	"accepted", "bounds", "occupied", "step-distance",
	"row-adjacent", "column-adjacent", "diagonal",
}

// String returns a short lowercase name for v.
func (v Verdict) String() string {
	if v < 0 || v >= verdictCount {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// BacktrackPolicy controls what happens to a seat whose branch failed.
type BacktrackPolicy int

const (
	// LeaveOccupied keeps the seat of a failed branch occupied.
	// Later candidates are validated against it as if it were still seated.
	LeaveOccupied BacktrackPolicy = iota
	// UndoOnBacktrack reverts the seat of a failed branch to vacant.
	UndoOnBacktrack
)

// String returns "leave" or "undo".
func (p BacktrackPolicy) String() string {
	switch p {
	case LeaveOccupied:
		return "leave"
	case UndoOnBacktrack:
		return "undo"
	default:
		return fmt.Sprintf("BacktrackPolicy(%d)", int(p))
	}
}

// Option configures a Search.
type Option func(*Options)

// Options holds the parameters of one Search.
type Options struct {
	// Ctx aborts the traversal when done; defaults to context.Background().
	Ctx context.Context

	// Rand picks the start column. Nil means a stream seeded from Seed.
	Rand *rand.Rand

	// Seed feeds the default RNG; 0 selects a fixed default seed.
	Seed int64

	// StartColumn, if non-negative, fixes the start seat at (0, StartColumn).
	// Default is -1 (random).
	StartColumn int

	// Backtrack selects the failed-branch policy; default LeaveOccupied.
	Backtrack BacktrackPolicy

	// Iterative selects the explicit-stack traversal.
	Iterative bool

	// OnCommit, if non-nil, is called after each seat is occupied, with the
	// path length including that seat.
	OnCommit func(c grid.Cell, depth int)
}

// DefaultOptions returns Options with a background context, seed 0,
// random start column, LeaveOccupied and recursive traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StartColumn: -1,
		Backtrack:   LeaveOccupied,
	}
}

// WithContext sets the context checked before every step.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed makes the start column reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the RNG used for the start column. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seating: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithStartColumn fixes the start seat at (0, col). Panics on col < 0.
func WithStartColumn(col int) Option {
	if col < 0 {
		panic("seating: WithStartColumn(negative)")
	}
	return func(o *Options) {
		o.StartColumn = col
	}
}

// WithBacktrack selects the failed-branch policy. Panics on unknown values.
func WithBacktrack(p BacktrackPolicy) Option {
	if p != LeaveOccupied && p != UndoOnBacktrack {
		panic("seating: WithBacktrack(unknown policy)")
	}
	return func(o *Options) {
		o.Backtrack = p
	}
}

// WithIterative runs the traversal on an explicit stack instead of recursion.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithOnCommit installs a hook called after each seat is occupied.
func WithOnCommit(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		o.OnCommit = fn
	}
}

// Step records one committed seat.
type Step struct {
	Cell  grid.Cell // seat that was occupied
	From  grid.Cell // seat the knight step started from; equals Cell for the start seat
	Depth int       // path length including Cell
}

// Stats are traversal diagnostics.
type Stats struct {
	// Candidates counts every offset tried.
	Candidates int
	// Rejections counts rejected candidates by verdict; index Accepted is unused.
	Rejections [verdictCount]int
	// Backtracks counts failed branches below the start seat.
	Backtracks int
	// MaxDepth is the longest path length reached.
	MaxDepth int
	// Probes counts neighbour occupancy reads made by adjacency checks.
	Probes int
}

// Rejected returns how many candidates were rejected with v.
func (s Stats) Rejected(v Verdict) int {
	if v <= Accepted || v >= verdictCount {
		return 0
	}
	return s.Rejections[v]
}

// Plan is the outcome of a Search.
type Plan struct {
	// Grid is the searched grid, mutated in place.
	Grid *grid.Grid
	// Complete reports whether the traversal covered every seat.
	Complete bool
	// Start is the seat the traversal began at, always in row 0.
	Start grid.Cell
	// Route is the path from Start to the last seat on the live branch.
	// On success it visits every seat; on exhaustion it is just Start.
	Route []grid.Cell
	// Trace lists every commit in order, including seats of failed branches.
	Trace []Step
	// Stats holds traversal diagnostics.
	Stats Stats
}
