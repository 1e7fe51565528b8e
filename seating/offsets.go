package seating

// Offset is a knight step: one axis moves by 2, the other by 1.
type Offset struct {
	DRow, DCol int
}

// offsets is the fixed try order of the traversal.
var offsets = [8]Offset{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// StepOffsets returns a copy of the eight knight offsets in try order.
func StepOffsets() []Offset {
	out := make([]Offset, len(offsets))
	copy(out, offsets[:])
	return out
}
