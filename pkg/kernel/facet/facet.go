// Package facet implements kernel.Kernel by triangulating the faces of a
// kernel.Faceted solid directly. The result is exact: no sampling, one flat
// normal per face.
package facet

import (
	"fmt"

	"github.com/chazu/facet/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*FacetKernel)(nil)

// FacetKernel implements kernel.Kernel by fan triangulation.
type FacetKernel struct{}

// New returns a new FacetKernel.
func New() *FacetKernel {
	return &FacetKernel{}
}

// ToMesh fans each face from its first vertex. Faces are convex and wound
// counter-clockwise about their outward normal, so every triangle is too.
// Vertices are not shared between faces so each keeps its face normal.
func (k *FacetKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	f, ok := s.(kernel.Faceted)
	if !ok {
		return nil, fmt.Errorf("%w: facet kernel needs faces, got %T", kernel.ErrUnsupportedSolid, s)
	}

	faces := f.Faces()
	m := &kernel.Mesh{}
	for _, face := range faces {
		n := face.Normal()
		pts := face.Points()

		first := uint32(m.VertexCount())
		for _, p := range pts {
			m.AddVertex(p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
		}
		for i := 1; i+1 < len(pts); i++ {
			m.AddTriangle(first, first+uint32(i), first+uint32(i+1))
		}
	}
	return m, nil
}
