package polyhedron

import (
	"github.com/chazu/facet/pkg/geom"
	"github.com/samber/lo"
)

// Translate returns a new solid with every face moved by v. All derived
// state is rebuilt from the moved faces and both invariants are checked
// again. The receiver is never modified, whether or not Translate succeeds.
func (ph *ConvexPolyhedron) Translate(v geom.Vector) (*ConvexPolyhedron, error) {
	moved := lo.Map(ph.faces, func(f geom.ConvexPolygon, _ int) geom.ConvexPolygon {
		return f.Move(v)
	})
	return build(moved, ph.tol)
}
