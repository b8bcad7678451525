package project

import (
	"errors"
	"math"
	"testing"
)

func TestDecodeCoord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    int32
		scalar int16
		want   float64
	}{
		{1000000, -100, 10000},
		{2000000, -100, 20000},
		{1234, -10, 123.4},
		{7, 100, 700},
		{7, 2, 14},
		{42, 0, 42},  // missing scalar means no scaling
		{42, 1, 42},
		{-500000, -100, -5000},
	}
	for _, c := range cases {
		if got := DecodeCoord(c.raw, c.scalar); got != c.want {
			t.Fatalf("DecodeCoord(%d, %d) = %g, want %g", c.raw, c.scalar, got, c.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	scalars := []int16{-1000, -100, -10, -1, 0, 1, 2, 10, 100}
	raws := []int32{0, 1, -1, 999, -999, 1000000, -1000000, 2147483, -2147483}
	for _, s := range scalars {
		for _, raw := range raws {
			got, err := EncodeCoord(DecodeCoord(raw, s), s)
			if err != nil {
				t.Fatalf("round trip failed: raw=%d scalar=%d: %v", raw, s, err)
			}
			if got != raw {
				t.Fatalf("round trip failed: raw=%d scalar=%d got=%d", raw, s, got)
			}
		}
	}
}

func TestEncodeCoordRounding(t *testing.T) {
	t.Parallel()

	// scalar -100 stores centimetre precision; values between stored steps
	// round to the nearest integer, half away from zero.
	cases := []struct {
		coord  float64
		scalar int16
		want   int32
	}{
		{10000.004, -100, 1000000},
		{10000.006, -100, 1000001},
		{-10000.006, -100, -1000001},
	}
	for _, c := range cases {
		got, err := EncodeCoord(c.coord, c.scalar)
		if err != nil {
			t.Fatalf("EncodeCoord(%g, %d): %v", c.coord, c.scalar, err)
		}
		if got != c.want {
			t.Fatalf("EncodeCoord(%g, %d) = %d, want %d", c.coord, c.scalar, got, c.want)
		}
	}
}

func TestEncodeCoordOverflow(t *testing.T) {
	t.Parallel()

	// scalar -100 multiplies by 100 on encode, pushing an otherwise ordinary
	// coordinate past the 32-bit header field.
	if _, err := EncodeCoord(3e7, -100); !errors.Is(err, ErrCoordOverflow) {
		t.Fatalf("EncodeCoord(3e7, -100): got %v, want ErrCoordOverflow", err)
	}
	if _, err := EncodeCoord(-3e7, -100); !errors.Is(err, ErrCoordOverflow) {
		t.Fatalf("EncodeCoord(-3e7, -100): got %v, want ErrCoordOverflow", err)
	}

	// The extremes of the field itself still encode.
	if got, err := EncodeCoord(math.MaxInt32, 1); err != nil || got != math.MaxInt32 {
		t.Fatalf("EncodeCoord(MaxInt32, 1) = %d, %v", got, err)
	}
	if got, err := EncodeCoord(math.MinInt32, 1); err != nil || got != math.MinInt32 {
		t.Fatalf("EncodeCoord(MinInt32, 1) = %d, %v", got, err)
	}
}
