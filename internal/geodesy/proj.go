package geodesy

import (
	"fmt"
	"math"

	proj "github.com/pebbe/proj/v5"
)

// EPSGTransform reprojects coordinates between two EPSG-coded reference
// systems using a PROJ pipeline. Construction validates both codes, so an
// unresolvable code fails before any file is touched.
type EPSGTransform struct {
	ctx    *proj.Context
	pj     *proj.PJ
	source int
	target int
}

var _ Transformer = (*EPSGTransform)(nil)

// NewEPSGTransform resolves the source and target EPSG codes and prepares the
// transformation pipeline. The caller must Close the returned transform.
func NewEPSGTransform(source, target int) (*EPSGTransform, error) {
	if source <= 0 {
		return nil, fmt.Errorf("geodesy: invalid source EPSG code %d", source)
	}
	if target <= 0 {
		return nil, fmt.Errorf("geodesy: invalid target EPSG code %d", target)
	}

	ctx := proj.NewContext()
	definition := fmt.Sprintf(
		"+proj=pipeline +step +inv +init=epsg:%d +step +init=epsg:%d",
		source, target,
	)
	pj, err := ctx.Create(definition)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("geodesy: epsg:%d -> epsg:%d: %w", source, target, err)
	}

	return &EPSGTransform{
		ctx:    ctx,
		pj:     pj,
		source: source,
		target: target,
	}, nil
}

// Transform reprojects one coordinate pair. When source and target systems
// are the same the input is returned unchanged.
func (t *EPSGTransform) Transform(x, y float64) (float64, float64, error) {
	if t.source == t.target {
		return x, y, nil
	}
	u, v, _, _, err := t.pj.Trans(proj.Fwd, x, y, 0, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("geodesy: transform (%g, %g): %w", x, y, err)
	}
	// PROJ signals out-of-domain points with HUGE_VAL rather than an error.
	if math.IsInf(u, 0) || math.IsInf(v, 0) || math.IsNaN(u) || math.IsNaN(v) {
		return 0, 0, fmt.Errorf("%w: (%g, %g)", ErrOutsideDomain, x, y)
	}
	return u, v, nil
}

// Close releases the PROJ objects. The transform must not be used afterwards.
func (t *EPSGTransform) Close() {
	if t.pj != nil {
		t.pj.Close()
		t.pj = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
}
