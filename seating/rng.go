package seating

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// startColumn resolves the first-row seat the traversal begins at.
func startColumn(o *Options, cols int) (int, error) {
	if o.StartColumn >= 0 {
		if o.StartColumn >= cols {
			return 0, ErrStartColumn
		}
		return o.StartColumn, nil
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}
	return r.Intn(cols), nil
}
