package polyhedron

import (
	"fmt"
	"math"

	"github.com/chazu/facet/pkg/geom"
)

// Parallelepiped builds the solid spanned by v1, v2 and v3 from base. The
// vectors must be non-zero, pairwise non-parallel and not coplanar;
// otherwise ErrInvalidArgument is returned before any face is built.
func Parallelepiped(base geom.Point, v1, v2, v3 geom.Vector, opts ...Option) (*ConvexPolyhedron, error) {
	o := gatherOptions(opts)
	if err := o.tol.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	vs := [3]geom.Vector{v1, v2, v3}
	for i, v := range vs {
		if v.IsZero(o.tol) {
			return nil, fmt.Errorf("%w: edge vector v%d has zero length", ErrInvalidArgument, i+1)
		}
	}
	for _, p := range [...][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if vs[p[0]].Parallel(vs[p[1]], o.tol) {
			return nil, fmt.Errorf("%w: edge vectors v%d and v%d are parallel", ErrInvalidArgument, p[0]+1, p[1]+1)
		}
	}
	scale := v1.Length() * v2.Length() * v3.Length()
	if triple := v1.Dot(v2.Cross(v3)); math.Abs(triple) <= o.tol.Eps*scale {
		return nil, fmt.Errorf("%w: edge vectors are coplanar", ErrInvalidArgument)
	}

	diag := base.Move(v1).Move(v2).Move(v3)
	sides := []struct {
		at   geom.Point
		a, b geom.Vector
	}{
		{base, v1, v2},
		{base, v2, v3},
		{base, v1, v3},
		{diag, v1.Neg(), v2.Neg()},
		{diag, v2.Neg(), v3.Neg()},
		{diag, v1.Neg(), v3.Neg()},
	}

	faces := make([]geom.ConvexPolygon, 0, len(sides))
	for i, s := range sides {
		f, err := geom.Parallelogram(s.at, s.a, s.b, o.tol)
		if err != nil {
			return nil, fmt.Errorf("polyhedron: parallelepiped face %d: %w", i, err)
		}
		faces = append(faces, f)
	}
	return New(faces, WithTolerance(o.tol))
}
