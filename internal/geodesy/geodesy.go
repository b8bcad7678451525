// Package geodesy reprojects coordinates between spatial reference systems.
// The actual transformation mathematics is delegated to the PROJ library;
// this package only narrows it to the single operation the tool needs, behind
// an interface small enough to fake in tests.
package geodesy

import "errors"

// Transformer converts a coordinate pair from one reference system to
// another. Implementations must be safe for repeated sequential use.
type Transformer interface {
	Transform(x, y float64) (float64, float64, error)
}

// ErrOutsideDomain is returned when a point has no defined image in the
// target projection (for example a UTM easting fed into a projection whose
// valid area it falls far outside of).
var ErrOutsideDomain = errors.New("geodesy: coordinate outside projection domain")

// Identity is a Transformer that returns its input unchanged.
type Identity struct{}

func (Identity) Transform(x, y float64) (float64, float64, error) {
	return x, y, nil
}
