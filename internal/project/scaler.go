package project

import (
	"fmt"
	"math"
)

// The SEG-Y coordinate scalar (trace header bytes 71-72) packs real-world
// coordinates into integer header fields. A positive scalar is a multiplier,
// a negative scalar a divisor, and 0 (files that never set it) as well as 1
// mean the stored value is already the real coordinate.

// scalarMultiplier converts a stored scalar into the coefficient that turns a
// raw header integer into a real coordinate.
func scalarMultiplier(scalar int16) float64 {
	switch {
	case scalar == 0 || scalar == 1:
		return 1
	case scalar < 0:
		return 1 / float64(-scalar)
	default:
		return float64(scalar)
	}
}

// DecodeCoord converts a raw header integer into a real coordinate.
func DecodeCoord(raw int32, scalar int16) float64 {
	return float64(raw) * scalarMultiplier(scalar)
}

// EncodeCoord converts a real coordinate back into a raw header integer using
// the same scalar, rounding half away from zero. It is the inverse of
// DecodeCoord up to that rounding. A coordinate whose scaled form does not
// fit the 32-bit header field yields ErrCoordOverflow.
func EncodeCoord(coord float64, scalar int16) (int32, error) {
	raw := math.Round(coord / scalarMultiplier(scalar))
	if math.IsNaN(raw) || raw < math.MinInt32 || raw > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %g with scaler %d", ErrCoordOverflow, coord, scalar)
	}
	return int32(raw), nil
}
