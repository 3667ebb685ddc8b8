package polyhedron

import (
	"fmt"

	"github.com/chazu/facet/pkg/geom"
	"github.com/samber/lo"
)

// Contains reports whether other lies inside the solid or on its boundary.
// Supported types are geom.Point, geom.Segment, geom.ConvexPolygon and
// *ConvexPolyhedron; anything else yields ErrUnsupported.
func (ph *ConvexPolyhedron) Contains(other any) (bool, error) {
	switch o := other.(type) {
	case geom.Point:
		return ph.ContainsPoint(o), nil
	case geom.Segment:
		return ph.ContainsSegment(o), nil
	case geom.ConvexPolygon:
		return ph.ContainsPolygon(o), nil
	case *ConvexPolyhedron:
		if o == nil {
			return false, fmt.Errorf("%w: nil *ConvexPolyhedron", ErrUnsupported)
		}
		return ph.ContainsPolyhedron(o), nil
	default:
		return false, fmt.Errorf("%w: %T", ErrUnsupported, other)
	}
}

// ContainsPoint reports whether p is on the inner side of every face plane,
// allowing eps outside.
func (ph *ConvexPolyhedron) ContainsPoint(p geom.Point) bool {
	return lo.EveryBy(ph.faces, func(f geom.ConvexPolygon) bool {
		return geom.VectorBetween(f.Centroid(), p).Dot(f.Normal()) <= ph.tol.Eps
	})
}

// ContainsSegment reports whether both endpoints are contained, which for a
// convex solid means the whole segment is.
func (ph *ConvexPolyhedron) ContainsSegment(s geom.Segment) bool {
	return ph.ContainsPoint(s.Start()) && ph.ContainsPoint(s.End())
}

// ContainsPolygon reports whether every vertex of cp is contained.
func (ph *ConvexPolyhedron) ContainsPolygon(cp geom.ConvexPolygon) bool {
	return lo.EveryBy(cp.Points(), ph.ContainsPoint)
}

// ContainsPolyhedron reports whether every vertex of o is contained.
func (ph *ConvexPolyhedron) ContainsPolyhedron(o *ConvexPolyhedron) bool {
	return lo.EveryBy(o.vertices, ph.ContainsPoint)
}
