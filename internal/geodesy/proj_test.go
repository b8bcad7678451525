package geodesy

import (
	"math"
	"testing"
)

// newTestTransform builds a PROJ-backed transform, skipping the test when the
// local PROJ installation cannot resolve its EPSG init files.
func newTestTransform(t *testing.T, source, target int) *EPSGTransform {
	t.Helper()
	tr, err := NewEPSGTransform(source, target)
	if err != nil {
		t.Skipf("PROJ EPSG resources unavailable: %v", err)
	}
	t.Cleanup(tr.Close)
	return tr
}

func TestTransformSameSystem(t *testing.T) {
	t.Parallel()

	tr := newTestTransform(t, 23029, 23029)
	x, y, err := tr.Transform(443000.25, 4100000.5)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	// Equal codes short-circuit, so the values come back bit-identical.
	if x != 443000.25 || y != 4100000.5 {
		t.Fatalf("same-system transform changed coordinates: (%g, %g)", x, y)
	}
}

func TestTransformBetweenUTMZones(t *testing.T) {
	t.Parallel()

	// ED50 / UTM zone 29N to zone 30N. The fixture point sits in southwest
	// Spain, east of zone 29's central meridian, so in zone 30 it must land
	// well west of the 500000 false easting with a nearly unchanged northing.
	tr := newTestTransform(t, 23029, 23030)
	x, y, err := tr.Transform(700000, 4100000)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if x <= 100000 || x >= 500000 {
		t.Fatalf("easting not rebased to zone 30: %g", x)
	}
	if math.Abs(y-4100000) > 50000 {
		t.Fatalf("northing moved too far: %g", y)
	}

	// The inverse pair must return the point to within a centimetre.
	back := newTestTransform(t, 23030, 23029)
	bx, by, err := back.Transform(x, y)
	if err != nil {
		t.Fatalf("inverse transform: %v", err)
	}
	if math.Abs(bx-700000) > 0.01 || math.Abs(by-4100000) > 0.01 {
		t.Fatalf("round trip drifted: (%g, %g)", bx, by)
	}
}

func TestTransformOutsideDomain(t *testing.T) {
	t.Parallel()

	tr := newTestTransform(t, 23029, 23030)
	// An easting of 1e12 has no inverse on the zone 29 projection; PROJ
	// reports it either through its errno or as HUGE_VAL coordinates, and
	// both surface as an error here.
	x, y, err := tr.Transform(1e12, 4100000)
	if err == nil {
		t.Fatalf("expected error for point far outside the domain, got (%g, %g)", x, y)
	}
	if x != 0 || y != 0 {
		t.Fatalf("failed transform returned coordinates: (%g, %g)", x, y)
	}
}

func TestNewEPSGTransformUnknownCode(t *testing.T) {
	t.Parallel()

	// Gate on a resolvable pair first so a missing PROJ data directory skips
	// rather than passing vacuously.
	newTestTransform(t, 23029, 23030)

	tr, err := NewEPSGTransform(23029, 99999999)
	if err == nil {
		tr.Close()
		t.Fatal("expected error for an unknown EPSG code")
	}
}
