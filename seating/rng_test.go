package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRngFromSeed_ZeroPolicy: seed 0 maps to the fixed default stream.
func TestRngFromSeed_ZeroPolicy(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 16; i++ {
		assert.Equal(t, b.Int63(), a.Int63())
	}
}

// TestStartColumn covers the fixed, seeded and out-of-range paths.
func TestStartColumn(t *testing.T) {
	o := DefaultOptions()
	o.StartColumn = 2
	col, err := startColumn(&o, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, col)

	_, err = startColumn(&o, 2)
	assert.ErrorIs(t, err, ErrStartColumn)

	o = DefaultOptions()
	o.Seed = 77
	for i := 0; i < 10; i++ {
		col, err = startColumn(&o, 5)
		require.NoError(t, err)
		assert.Equal(t, rngFromSeed(77).Intn(5), col)
	}
}
