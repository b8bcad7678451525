package geodesy

import "testing"

func TestIdentity(t *testing.T) {
	t.Parallel()

	x, y, err := Identity{}.Transform(443000.5, 6123456.25)
	if err != nil {
		t.Fatalf("identity transform: %v", err)
	}
	if x != 443000.5 || y != 6123456.25 {
		t.Fatalf("identity changed coordinates: got (%g, %g)", x, y)
	}
}

func TestNewEPSGTransformRejectsBadCodes(t *testing.T) {
	t.Parallel()

	if _, err := NewEPSGTransform(0, 23030); err == nil {
		t.Fatal("expected error for source code 0")
	}
	if _, err := NewEPSGTransform(23029, -5); err == nil {
		t.Fatal("expected error for negative target code")
	}
}
