// Package distance converts operator-supplied seat and row spacing into the
// canonical unit (meters) and answers the gating questions the seating
// validator asks: are rows, seats, or diagonals packed closer than the
// minimum safe distance?
//
// Conversion happens once, in FromUnit; a Config is immutable afterwards.
package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// FeetPerMeter is the conversion factor used for imperial input.
	FeetPerMeter = 3.281
	// MinSafeMeters is the minimum safe distance for metric input.
	MinSafeMeters = 1.5
	// MinSafeFeet is the minimum safe distance for imperial input, pre-conversion.
	MinSafeFeet = 6.0
)

var (
	// ErrInvalidUnit indicates an unknown unit selector.
	ErrInvalidUnit = errors.New("distance: unit must be 0 (meters) or 1 (feet)")
	// ErrInvalidDistance indicates a non-positive, NaN or infinite distance.
	ErrInvalidDistance = errors.New("distance: distances must be positive finite numbers")
)

// Unit selects how the operator entered distances.
type Unit int

const (
	// Metric input is in meters.
	Metric Unit = iota
	// Imperial input is in feet.
	Imperial
)

// String returns "meters" or "feet".
func (u Unit) String() string {
	switch u {
	case Metric:
		return "meters"
	case Imperial:
		return "feet"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Valid reports whether u is Metric or Imperial.
func (u Unit) Valid() bool {
	return u == Metric || u == Imperial
}

// ParseUnit accepts the selector digits of the interactive prompt ("0", "1")
// and the spelled-out forms (m, meters, metric, ft, feet, imperial).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "m", "meter", "meters", "metric":
		return Metric, nil
	case "1", "ft", "foot", "feet", "imperial":
		return Imperial, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Config holds the canonical-unit distances for one run.
type Config struct {
	// MinSafe is the minimum distance two occupied seats may be apart.
	MinSafe float64
	// RowDist is the physical distance between adjacent rows.
	RowDist float64
	// SeatDist is the physical distance between adjacent seats in a row.
	SeatDist float64
}

// FromUnit builds a Config from operator input expressed in u.
// Imperial distances are divided by FeetPerMeter and the minimum safe
// distance becomes MinSafeFeet/FeetPerMeter; metric keeps MinSafeMeters.
func FromUnit(u Unit, seatDist, rowDist float64) (Config, error) {
	if !u.Valid() {
		return Config{}, ErrInvalidUnit
	}
	if !positive(seatDist) || !positive(rowDist) {
		return Config{}, fmt.Errorf("%w: seat=%v row=%v", ErrInvalidDistance, seatDist, rowDist)
	}
	if u == Imperial {
		return Config{
			MinSafe:  MinSafeFeet / FeetPerMeter,
			RowDist:  rowDist / FeetPerMeter,
			SeatDist: seatDist / FeetPerMeter,
		}, nil
	}
	return Config{
		MinSafe:  MinSafeMeters,
		RowDist:  rowDist,
		SeatDist: seatDist,
	}, nil
}

// Validate reports ErrInvalidDistance if any field is not a finite number
// or is negative. Zero spacing is allowed for hand-built configs.
func (c Config) Validate() error {
	for _, v := range [...]float64{c.MinSafe, c.RowDist, c.SeatDist} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %+v", ErrInvalidDistance, c)
		}
	}
	return nil
}

// Step returns the physical distance of a move by dr rows and dc seats,
// sqrt((dr*RowDist)² + (dc*SeatDist)²).
func (c Config) Step(dr, dc int) float64 {
	return euclid(float64(dr)*c.RowDist, float64(dc)*c.SeatDist)
}

// Diagonal returns the distance between diagonally adjacent seats.
func (c Config) Diagonal() float64 {
	return euclid(c.RowDist, c.SeatDist)
}

// euclid must round like sqrt(x*x + y*y) so that boundary steps compare
// equal to the minimum; math.Hypot does not, and the conversions block FMA.
func euclid(x, y float64) float64 {
	return math.Sqrt(float64(x*x) + float64(y*y))
}

// RowGated reports whether vertically adjacent seats are too close.
func (c Config) RowGated() bool { return c.RowDist < c.MinSafe }

// ColumnGated reports whether horizontally adjacent seats are too close.
func (c Config) ColumnGated() bool { return c.SeatDist < c.MinSafe }

// DiagonalGated reports whether diagonally adjacent seats are too close.
func (c Config) DiagonalGated() bool { return c.Diagonal() < c.MinSafe }

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
