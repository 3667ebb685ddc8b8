package geom

import (
	"fmt"
	"math"
)

// Pyramid is the solid spanned by a convex base face and an apex.
type Pyramid struct {
	base   ConvexPolygon
	apex   Point
	height float64
}

type pyramidOptions struct {
	skipValidation bool
}

// PyramidOption configures NewPyramid.
type PyramidOption func(*pyramidOptions)

// SkipValidation disables the apex-off-plane check. Use it when the caller
// has already established that the base and apex form a proper pyramid.
func SkipValidation() PyramidOption {
	return func(o *pyramidOptions) { o.skipValidation = true }
}

// NewPyramid creates the pyramid over base with the given apex.
func NewPyramid(base ConvexPolygon, apex Point, t Tolerance, opts ...PyramidOption) (Pyramid, error) {
	var o pyramidOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := base.plane.SignedDistance(apex)
	if !o.skipValidation {
		if base.Len() < 3 {
			return Pyramid{}, ErrTooFewPoints
		}
		if t.Zero(d) {
			return Pyramid{}, fmt.Errorf("%w: apex %s", ErrDegeneratePyramid, apex)
		}
	}
	return Pyramid{base: base.Clone(), apex: apex, height: math.Abs(d)}, nil
}

// Base returns the base face.
func (py Pyramid) Base() ConvexPolygon { return py.base.Clone() }

// Apex returns the apex point.
func (py Pyramid) Apex() Point { return py.apex }

// Height returns the distance from the apex to the base plane.
func (py Pyramid) Height() float64 { return py.height }

// Volume returns base area × height / 3.
func (py Pyramid) Volume() float64 {
	return py.base.Area() * py.height / 3
}
