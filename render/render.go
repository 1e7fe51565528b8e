// Package render prints seating plans as text.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/seating"
)

// ErrNilGrid is returned when there is nothing to render.
var ErrNilGrid = errors.New("render: grid is nil")

const (
	legend = "The value 1 indicate the seats where people should seat, 0 otherwise."
	title  = "Good seats to avoid Coronavirus: "
)

// Option configures Text.
type Option func(*options)

type options struct {
	header bool
}

// WithoutHeader prints only the seat rows.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// WithHeader toggles the legend and title lines.
func WithHeader(on bool) Option {
	return func(o *options) { o.header = on }
}

// Text writes g as rows of space-separated 0/1 tokens, each followed by a
// space, one row per line, preceded by a two-line legend.
func Text(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o := options{header: true}
	for _, fn := range opts {
		fn(&o)
	}

	bw := bufio.NewWriter(w)
	if o.header {
		fmt.Fprintln(bw, legend)
		fmt.Fprintln(bw, title)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			bw.WriteString(g.At(r, c).String())
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write plan: %w", err)
	}
	return nil
}

// Summary writes a one-line coverage report for plan, e.g.
// "seated 8/9 (partial, start (0,0))".
func Summary(w io.Writer, plan *seating.Plan) error {
	if plan == nil || plan.Grid == nil {
		return ErrNilGrid
	}
	outcome := "partial"
	if plan.Complete {
		outcome = "complete"
	}
	_, err := fmt.Fprintf(w, "seated %d/%d (%s, start %v)\n",
		plan.Grid.OccupiedCount(), plan.Grid.Len(), outcome, plan.Start)
	if err != nil {
		return fmt.Errorf("render: write summary: %w", err)
	}
	return nil
}
