package geom

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ConvexPolygon is a planar, strictly convex face. Its vertices are kept in
// counter-clockwise order around the plane normal, which is fixed by the
// first three non-collinear input points.
type ConvexPolygon struct {
	points   []Point
	plane    Plane
	centroid Point
}

// NewConvexPolygon builds a polygon from points given in any order.
// Duplicate points are merged. The points must span a plane, lie on it and
// be the corners of a strictly convex polygon.
func NewConvexPolygon(points []Point, t Tolerance) (ConvexPolygon, error) {
	if err := t.Validate(); err != nil {
		return ConvexPolygon{}, err
	}

	var pts []Point
	for _, p := range points {
		if !slices.ContainsFunc(pts, func(q Point) bool { return q.Equal(p, t) }) {
			pts = append(pts, p)
		}
	}
	if len(pts) < 3 {
		return ConvexPolygon{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}

	plane, err := spanningPlane(pts, t)
	if err != nil {
		return ConvexPolygon{}, err
	}
	for i, p := range pts {
		if !plane.Contains(p, t) {
			return ConvexPolygon{}, fmt.Errorf("%w: point %d is %g off the plane",
				ErrNotPlanar, i, plane.SignedDistance(p))
		}
	}

	centroid, err := Mean(pts)
	if err != nil {
		return ConvexPolygon{}, err
	}
	sortAround(pts, centroid, plane.Normal(), t)

	n := len(pts)
	for i := range pts {
		prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		in, out := VectorBetween(prev, cur), VectorBetween(cur, next)
		turn := in.Cross(out).Dot(plane.Normal()) / (in.Length() * out.Length())
		if turn <= t.Eps {
			return ConvexPolygon{}, fmt.Errorf("%w: vertex %s", ErrNotConvex, cur)
		}
	}

	return ConvexPolygon{points: pts, plane: plane, centroid: centroid}, nil
}

// Parallelogram builds the face with corners base, base+v1, base+v1+v2 and
// base+v2. Its normal points along v1 × v2.
func Parallelogram(base Point, v1, v2 Vector, t Tolerance) (ConvexPolygon, error) {
	if v1.IsZero(t) || v2.IsZero(t) {
		return ConvexPolygon{}, ErrZeroVector
	}
	if v1.Parallel(v2, t) {
		return ConvexPolygon{}, ErrParallel
	}
	return NewConvexPolygon([]Point{
		base,
		base.Move(v1),
		base.Move(v1).Move(v2),
		base.Move(v2),
	}, t)
}

// spanningPlane returns the plane of the first non-collinear triple that
// starts at pts[0].
func spanningPlane(pts []Point, t Tolerance) (Plane, error) {
	for i := 1; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pl, err := PlaneThrough(pts[0], pts[i], pts[j], t); err == nil {
				return pl, nil
			}
		}
	}
	return Plane{}, ErrCollinear
}

// sortAround orders pts counter-clockwise around c as seen from the tip of n.
func sortAround(pts []Point, c Point, n Vector, t Tolerance) {
	u, err := VectorBetween(c, pts[0]).Unit(t)
	if err != nil {
		// pts[0] sits on the centroid; pick any other reference direction.
		u, _ = VectorBetween(c, pts[1]).Unit(t)
	}
	w := n.Cross(u)
	angle := func(p Point) float64 {
		d := VectorBetween(c, p)
		return math.Atan2(d.Dot(w), d.Dot(u))
	}
	slices.SortStableFunc(pts, func(a, b Point) int {
		aa, ab := angle(a), angle(b)
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		}
		return 0
	})
}

// Points returns a copy of the vertices in counter-clockwise order.
func (cp ConvexPolygon) Points() []Point {
	return slices.Clone(cp.points)
}

// Len returns the number of vertices.
func (cp ConvexPolygon) Len() int {
	return len(cp.points)
}

// Plane returns the polygon's plane. Its normal is the face normal.
func (cp ConvexPolygon) Plane() Plane { return cp.plane }

// Normal is shorthand for Plane().Normal().
func (cp ConvexPolygon) Normal() Vector { return cp.plane.n }

// Centroid returns the mean of the vertices.
func (cp ConvexPolygon) Centroid() Point { return cp.centroid }

// Segments returns the boundary edges in vertex order.
func (cp ConvexPolygon) Segments() []Segment {
	n := len(cp.points)
	segs := make([]Segment, 0, n)
	for i := range cp.points {
		segs = append(segs, Segment{a: cp.points[i], b: cp.points[(i+1)%n]})
	}
	return segs
}

// Area returns the enclosed area.
func (cp ConvexPolygon) Area() float64 {
	if len(cp.points) < 3 {
		return 0
	}
	var twice float64
	p0 := cp.points[0]
	for i := 1; i+1 < len(cp.points); i++ {
		e1 := VectorBetween(p0, cp.points[i])
		e2 := VectorBetween(p0, cp.points[i+1])
		twice += e1.Cross(e2).Dot(cp.plane.n)
	}
	return math.Abs(twice) / 2
}

// Perimeter returns the total edge length.
func (cp ConvexPolygon) Perimeter() float64 {
	return lo.SumBy(cp.Segments(), func(s Segment) float64 { return s.Length() })
}

// Neg returns the same face with reversed winding and normal.
func (cp ConvexPolygon) Neg() ConvexPolygon {
	pts := slices.Clone(cp.points)
	slices.Reverse(pts)
	return ConvexPolygon{points: pts, plane: cp.plane.Neg(), centroid: cp.centroid}
}

// Move returns the polygon displaced by v.
func (cp ConvexPolygon) Move(v Vector) ConvexPolygon {
	return ConvexPolygon{
		points:   lo.Map(cp.points, func(p Point, _ int) Point { return p.Move(v) }),
		plane:    cp.plane.Move(v),
		centroid: cp.centroid.Move(v),
	}
}

// Clone returns a copy that shares no memory with cp.
func (cp ConvexPolygon) Clone() ConvexPolygon {
	cp.points = slices.Clone(cp.points)
	return cp
}

// Equal reports whether cp and o have the same vertices within eps and
// normals pointing the same way. Vertex order is not compared.
func (cp ConvexPolygon) Equal(o ConvexPolygon, t Tolerance) bool {
	if len(cp.points) != len(o.points) || !cp.plane.n.Equal(o.plane.n, t) {
		return false
	}
	for _, p := range cp.points {
		if !slices.ContainsFunc(o.points, func(q Point) bool { return p.Equal(q, t) }) {
			return false
		}
	}
	return true
}

// Hash combines the vertex hashes with the rounded normal. Vertex order
// does not affect the result.
func (cp ConvexPolygon) Hash(t Tolerance) uint64 {
	var sum uint64
	for _, p := range cp.points {
		sum += p.Hash(t)
	}
	return Combine("polygon", sum, cp.plane.n.Hash(t))
}

func (cp ConvexPolygon) String() string {
	return fmt.Sprintf("ConvexPolygon(%v)", cp.points)
}
