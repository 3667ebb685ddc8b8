// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
//
// A faceted solid becomes the signed distance field max_i(n_i·(p - q_i))
// over its face planes, which is exact inside and a lower bound outside.
// Union, Intersection and Difference combine fields, so the results are
// previews and no longer faceted.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// halfSpace is the set n·(p - q) <= 0.
type halfSpace struct {
	q, n v3.Vec
}

// facetedSDF is the intersection of the half spaces bounding a convex
// solid.
type facetedSDF struct {
	planes []halfSpace
	bb     sdf.Box3
}

func (f *facetedSDF) Evaluate(p v3.Vec) float64 {
	d := math.Inf(-1)
	for _, h := range f.planes {
		d = math.Max(d, h.n.Dot(p.Sub(h.q)))
	}
	return d
}

func (f *facetedSDF) BoundingBox() sdf.Box3 {
	return f.bb
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel meshing at DefaultMeshCells.
func New() *SdfxKernel {
	return NewWithCells(DefaultMeshCells)
}

// NewWithCells returns a kernel that meshes with the given number of
// marching cubes cells along the longest axis. Values below 1 select
// DefaultMeshCells.
func NewWithCells(cells int) *SdfxKernel {
	if cells < 1 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Cells returns the meshing resolution.
func (k *SdfxKernel) Cells() int { return k.cells }

// SDF returns the signed distance field of s.
func (k *SdfxKernel) SDF(s kernel.Solid) (sdf.SDF3, error) {
	switch v := s.(type) {
	case *sdfxSolid:
		return v.s, nil
	case kernel.Faceted:
		return fromFaces(v)
	default:
		return nil, fmt.Errorf("%w: sdfx kernel cannot represent %T", kernel.ErrUnsupportedSolid, s)
	}
}

func fromFaces(f kernel.Faceted) (sdf.SDF3, error) {
	faces := f.Faces()
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: solid has no faces", kernel.ErrUnsupportedSolid)
	}
	planes := make([]halfSpace, 0, len(faces))
	for _, face := range faces {
		pl := face.Plane()
		planes = append(planes, halfSpace{q: pl.Point().Vec(), n: pl.Normal().Vec()})
	}
	min, max := f.BoundingBox()
	return &facetedSDF{
		planes: planes,
		bb: sdf.Box3{
			Min: v3.Vec{X: min[0], Y: min[1], Z: min[2]},
			Max: v3.Vec{X: max[0], Y: max[1], Z: max[2]},
		},
	}, nil
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func (k *SdfxKernel) pair(a, b kernel.Solid) (sdf.SDF3, sdf.SDF3, error) {
	sa, err := k.SDF(a)
	if err != nil {
		return nil, nil, err
	}
	sb, err := k.SDF(b)
	if err != nil {
		return nil, nil, err
	}
	return sa, sb, nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb, err := k.pair(a, b)
	if err != nil {
		return nil, err
	}
	return wrap(sdf.Union3D(sa, sb)), nil
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb, err := k.pair(a, b)
	if err != nil {
		return nil, err
	}
	return wrap(sdf.Intersect3D(sa, sb)), nil
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb, err := k.pair(a, b)
	if err != nil {
		return nil, err
	}
	return wrap(sdf.Difference3D(sa, sb)), nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3, err := k.SDF(s)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	m := &kernel.Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for _, tri := range triangles {
		n := tri.Normal()
		var idx [3]uint32
		for j := 0; j < 3; j++ {
			v := tri[j]
			idx[j] = m.AddVertex(v.X, v.Y, v.Z, n.X, n.Y, n.Z)
		}
		m.AddTriangle(idx[0], idx[1], idx[2])
	}
	return m, nil
}
