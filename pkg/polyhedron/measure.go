package polyhedron

import (
	"github.com/chazu/facet/pkg/geom"
	"github.com/samber/lo"
)

// Length returns the total length of the unique edges. An edge shared by
// two faces is counted once.
func (ph *ConvexPolyhedron) Length() float64 {
	return lo.SumBy(ph.edges, func(s geom.Segment) float64 { return s.Length() })
}

// Area returns the total face area.
func (ph *ConvexPolyhedron) Area() float64 {
	return lo.SumBy(ph.faces, func(f geom.ConvexPolygon) float64 { return f.Area() })
}

// Volume returns the sum of the face pyramids' volumes.
func (ph *ConvexPolyhedron) Volume() float64 {
	return lo.SumBy(ph.pyramids, func(py geom.Pyramid) float64 { return py.Volume() })
}
