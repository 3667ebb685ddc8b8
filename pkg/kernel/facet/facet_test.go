package facet

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/polyhedron"
)

func box(t *testing.T, x, y, z float64) *polyhedron.ConvexPolyhedron {
	t.Helper()
	ph, err := polyhedron.Parallelepiped(geom.Origin(),
		geom.NewVector(x, 0, 0), geom.NewVector(0, y, 0), geom.NewVector(0, 0, z))
	if err != nil {
		t.Fatalf("Parallelepiped() error = %v", err)
	}
	return ph
}

func TestBox(t *testing.T) {
	k := New()
	ph := box(t, 100, 50, 25)
	mesh, err := k.ToMesh(ph)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	// 2 triangles per face, 6 faces.
	if got := mesh.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
	if got := mesh.VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if math.Abs(mesh.SurfaceArea()-ph.Area()) > 1e-3 {
		t.Errorf("SurfaceArea() = %f, want %f", mesh.SurfaceArea(), ph.Area())
	}

	min, max := mesh.Bounds()
	if min != [3]float64{0, 0, 0} || max != [3]float64{100, 50, 25} {
		t.Errorf("Bounds() = %v %v, want [0 0 0] [100 50 25]", min, max)
	}
}

func TestNormalsPointOutward(t *testing.T) {
	ph := box(t, 2, 2, 2)
	mesh, err := New().ToMesh(ph)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	c := ph.Centroid()
	for i := 0; i < mesh.VertexCount(); i++ {
		d := (float64(mesh.Vertices[3*i])-c.X())*float64(mesh.Normals[3*i]) +
			(float64(mesh.Vertices[3*i+1])-c.Y())*float64(mesh.Normals[3*i+1]) +
			(float64(mesh.Vertices[3*i+2])-c.Z())*float64(mesh.Normals[3*i+2])
		if d <= 0 {
			t.Fatalf("vertex %d normal points inwards (dot %f)", i, d)
		}
	}
}

func TestWindingMatchesNormal(t *testing.T) {
	mesh, err := New().ToMesh(box(t, 1, 1, 1))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	v := func(i uint32) [3]float64 {
		return [3]float64{float64(mesh.Vertices[3*i]), float64(mesh.Vertices[3*i+1]), float64(mesh.Vertices[3*i+2])}
	}
	for tri := 0; tri < mesh.TriangleCount(); tri++ {
		a, b, c := v(mesh.Indices[3*tri]), v(mesh.Indices[3*tri+1]), v(mesh.Indices[3*tri+2])
		u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		w := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		cross := [3]float64{u[1]*w[2] - u[2]*w[1], u[2]*w[0] - u[0]*w[2], u[0]*w[1] - u[1]*w[0]}
		ni := mesh.Indices[3*tri]
		dot := cross[0]*float64(mesh.Normals[3*ni]) + cross[1]*float64(mesh.Normals[3*ni+1]) + cross[2]*float64(mesh.Normals[3*ni+2])
		if dot <= 0 {
			t.Fatalf("triangle %d is wound against its normal", tri)
		}
	}
}

func TestTetrahedron(t *testing.T) {
	o := geom.Origin()
	x, y, z := geom.NewPoint(1, 0, 0), geom.NewPoint(0, 1, 0), geom.NewPoint(0, 0, 1)
	tol := geom.DefaultTolerance()
	var faces []geom.ConvexPolygon
	for _, tri := range [][]geom.Point{{o, x, y}, {o, y, z}, {o, x, z}, {x, y, z}} {
		f, err := geom.NewConvexPolygon(tri, tol)
		if err != nil {
			t.Fatalf("NewConvexPolygon() error = %v", err)
		}
		faces = append(faces, f)
	}
	ph, err := polyhedron.New(faces)
	if err != nil {
		t.Fatalf("polyhedron.New() error = %v", err)
	}

	mesh, err := New().ToMesh(ph)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if got := mesh.TriangleCount(); got != 4 {
		t.Errorf("TriangleCount() = %d, want 4", got)
	}
}

type boundsOnly struct{}

func (boundsOnly) BoundingBox() (min, max [3]float64) { return }

func TestUnsupportedSolid(t *testing.T) {
	_, err := New().ToMesh(boundsOnly{})
	if !errors.Is(err, kernel.ErrUnsupportedSolid) {
		t.Fatalf("ToMesh() error = %v, want ErrUnsupportedSolid", err)
	}
}
