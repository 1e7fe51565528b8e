// Package seatgrid plans socially distanced seating for a rectangular venue.
//
// What is seatgrid?
//
//	A small, dependency-light toolkit that marks which seats of a rows×seats
//	room may be taken so that every guest keeps a minimum physical distance:
//		• Occupancy grid: owned, bounds-checked rows×seats matrix
//		• Distances: metric/imperial input, converted once to meters
//		• Traversal: knight-step depth-first search from a first-row seat
//		• Validation: step distance plus gated row/column/diagonal adjacency
//		• Output: plain-text plan and coverage summary
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/     — occupancy grid (Vacant/Occupied seats, row-major buffer)
//	distance/ — units, conversion, minimum safe distance and gates
//	seating/  — step offsets, Validator, Search (recursive and explicit stack)
//	render/   — text rendering of plans
//	prompt/   — interactive operator dialogue
//	config/   — SEATGRID_* environment and .env settings
//
// Quick ASCII example (3×3 room, 2 m spacing, start at the top-left seat):
//
//	1 1 1
//	1 0 1
//	1 1 1
//
// The centre is never a knight step away from the outer ring.
//
//	go install github.com/katalvlaran/seatgrid/cmd/seatgrid@latest
package seatgrid
