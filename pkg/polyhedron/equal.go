package polyhedron

import (
	"github.com/chazu/facet/pkg/geom"
)

// Hash combines the sum of the face hashes with the sum of the vertex
// hashes. Both sums are over hashes of rounded coordinates, so solids built
// along different arithmetic paths usually agree. Equal solids can still
// hash differently when a coordinate sits on a rounding boundary, and
// different solids can collide; use Equal to decide equality.
func (ph *ConvexPolyhedron) Hash() uint64 {
	var faceSum, vertexSum uint64
	for _, f := range ph.faces {
		faceSum += f.Hash(ph.tol)
	}
	for _, p := range ph.vertices {
		vertexSum += p.Hash(ph.tol)
	}
	return geom.Combine("polyhedron", faceSum, vertexSum)
}

// Equal reports whether o has the same number of vertices and faces as ph
// and every face of ph matches a distinct face of o within ph's tolerance.
func (ph *ConvexPolyhedron) Equal(o *ConvexPolyhedron) bool {
	if ph == o {
		return true
	}
	if ph == nil || o == nil {
		return false
	}
	if len(ph.faces) != len(o.faces) || len(ph.vertices) != len(o.vertices) {
		return false
	}

	used := make([]bool, len(o.faces))
	for _, f := range ph.faces {
		matched := false
		for j, g := range o.faces {
			if !used[j] && f.Equal(g, ph.tol) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
