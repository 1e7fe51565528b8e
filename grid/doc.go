// Package grid holds the occupancy grid of a seating plan: a rectangular
// rows×columns matrix of seats, each either Vacant or Occupied.
//
// What:
//
//   - Grid stores seats in a flat row-major buffer with (row, col) accessors.
//   - Every accessor is bounds-checked; out-of-range reads report Vacant and
//     out-of-range writes return ErrOutOfBounds instead of panicking.
//   - Values exports the plan as a 0/1 [][]int for renderers and tests.
//
// Why:
//
//   - The seating search mutates one grid in place for the whole run; a flat
//     owned buffer removes manual per-row allocation and stray indexing.
//
// Complexity:
//
//   - New, FromRows, Values, Clone, Cells: O(R×C) time and memory.
//   - InBounds, Occupied, Occupy, Vacate:  O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns ≤ 0.
//   - ErrNonRectangular:    FromRows input rows have differing lengths.
//   - ErrInvalidValue:      FromRows input cell not 0 or 1.
//   - ErrOutOfBounds:       write outside [0,rows)×[0,cols).
package grid
