package seating_test

import (
	"testing"

	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/seating"
)

// BenchmarkSearch_Leave measures the default traversal on a 60×60 grid.
// Complexity: O(R×C×8)
func BenchmarkSearch_Leave(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := grid.New(60, 60)
		_, _ = seating.Search(g, cramped, seating.WithSeed(42))
	}
}

// BenchmarkSearch_LeaveIterative is BenchmarkSearch_Leave on the explicit stack.
func BenchmarkSearch_LeaveIterative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := grid.New(60, 60)
		_, _ = seating.Search(g, cramped, seating.WithSeed(42), seating.WithIterative())
	}
}
