// Package kernel defines the meshing interface shared by the backends.
// A backend turns a Solid into a triangle mesh; facet does so exactly from
// the faces, sdfx approximately through a signed distance field. Callers
// pick a backend without changing the rest of the system.
package kernel

import (
	"errors"

	"github.com/chazu/facet/pkg/geom"
)

// ErrUnsupportedSolid is returned when a backend is handed a Solid it
// cannot mesh.
var ErrUnsupportedSolid = errors.New("kernel: unsupported solid")

// Solid is anything a backend can mesh.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Faceted is a Solid bounded by convex planar faces with outward normals.
// *polyhedron.ConvexPolyhedron implements it.
type Faceted interface {
	Solid
	Faces() []geom.ConvexPolygon
}

// Kernel converts solids to meshes.
type Kernel interface {
	ToMesh(s Solid) (*Mesh, error)
}
