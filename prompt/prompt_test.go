package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatgrid/distance"
	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/prompt"
)

func TestAsk_Metric(t *testing.T) {
	var out bytes.Buffer
	req, err := prompt.NewSession(strings.NewReader("4\n6\n0\n1.2\n0.9\n"), &out).Ask()
	require.NoError(t, err)
	assert.Equal(t, prompt.Request{Rows: 4, Cols: 6, Unit: distance.Metric, SeatDist: 1.2, RowDist: 0.9}, req)
	assert.Contains(t, out.String(), "Enter number of rows: ")
	assert.Contains(t, out.String(), "Enter the distance between rows: ")
}

func TestAsk_RepromptsUnit(t *testing.T) {
	var out bytes.Buffer
	req, err := prompt.NewSession(strings.NewReader("2 3 5 -1 yards 1 6 6"), &out).Ask()
	require.NoError(t, err)
	assert.Equal(t, distance.Imperial, req.Unit)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input. Please enter an unit of measurement"))

	cfg, err := req.Config()
	require.NoError(t, err)
	assert.InDelta(t, 6/3.281, cfg.SeatDist, 1e-12)
	assert.Equal(t, 6/3.281, cfg.MinSafe)
}

func TestAsk_RepromptsNumbers(t *testing.T) {
	var out bytes.Buffer
	req, err := prompt.NewSession(strings.NewReader("three 3 x 2.5 2 0 abc 2 2"), &out).Ask()
	require.NoError(t, err)
	assert.Equal(t, 3, req.Rows)
	assert.Equal(t, 2, req.Cols)
	assert.Equal(t, 2.0, req.SeatDist)
	assert.Contains(t, out.String(), "Invalid input. Enter number of rows: ")
	assert.Contains(t, out.String(), "Invalid input. Enter number of seats: ")
	assert.Contains(t, out.String(), "Invalid input. Enter the distance between seats: ")
}

func TestAsk_InputClosed(t *testing.T) {
	_, err := prompt.NewSession(strings.NewReader("3 3 7"), &bytes.Buffer{}).Ask()
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestRequest_Validate(t *testing.T) {
	for _, req := range []prompt.Request{{Rows: 0, Cols: 3}, {Rows: 3, Cols: -2}, {}} {
		assert.ErrorIs(t, req.Validate(), grid.ErrInvalidDimensions, "%+v", req)
	}
	assert.NoError(t, prompt.Request{Rows: 1, Cols: 1}.Validate())

	_, err := prompt.Request{Rows: 1, Cols: 1, SeatDist: 0, RowDist: 1}.Config()
	assert.ErrorIs(t, err, distance.ErrInvalidDistance)
}
