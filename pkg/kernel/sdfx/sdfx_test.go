package sdfx

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/polyhedron"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// testCells keeps marching cubes fast in tests.
const testCells = 40

func box(t *testing.T, at geom.Point, x, y, z float64) *polyhedron.ConvexPolyhedron {
	t.Helper()
	ph, err := polyhedron.Parallelepiped(at,
		geom.NewVector(x, 0, 0), geom.NewVector(0, y, 0), geom.NewVector(0, 0, z))
	if err != nil {
		t.Fatalf("Parallelepiped() error = %v", err)
	}
	return ph
}

func TestDefaults(t *testing.T) {
	if got := New().Cells(); got != DefaultMeshCells {
		t.Errorf("New().Cells() = %d, want %d", got, DefaultMeshCells)
	}
	if got := NewWithCells(0).Cells(); got != DefaultMeshCells {
		t.Errorf("NewWithCells(0).Cells() = %d, want %d", got, DefaultMeshCells)
	}
	if got := NewWithCells(16).Cells(); got != 16 {
		t.Errorf("NewWithCells(16).Cells() = %d, want 16", got)
	}
}

func TestSDFSign(t *testing.T) {
	k := NewWithCells(testCells)
	s, err := k.SDF(box(t, geom.Origin(), 10, 10, 10))
	if err != nil {
		t.Fatalf("SDF() error = %v", err)
	}

	tests := []struct {
		name string
		p    v3.Vec
		want float64
	}{
		{"center", v3.Vec{X: 5, Y: 5, Z: 5}, -5},
		{"on face", v3.Vec{X: 10, Y: 5, Z: 5}, 0},
		{"outside", v3.Vec{X: 13, Y: 5, Z: 5}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Evaluate(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v) = %f, want %f", tt.p, got, tt.want)
			}
		})
	}
}

func TestBox(t *testing.T) {
	k := NewWithCells(testCells)
	mesh, err := k.ToMesh(box(t, geom.Origin(), 100, 50, 25))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
	t.Logf("box triangle count: %d", triCount)
}

func TestBoundingBox(t *testing.T) {
	k := NewWithCells(testCells)
	s, err := k.Union(box(t, geom.Origin(), 10, 10, 10), box(t, geom.NewPoint(5, 0, 0), 10, 10, 10))
	if err != nil {
		t.Fatalf("Union() error = %v", err)
	}
	min, max := s.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{15, 10, 10}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestUnion(t *testing.T) {
	k := NewWithCells(testCells)
	u, err := k.Union(box(t, geom.Origin(), 50, 50, 50), box(t, geom.NewPoint(30, 0, 0), 50, 50, 50))
	if err != nil {
		t.Fatalf("Union() error = %v", err)
	}
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
	t.Logf("union triangle count: %d", mesh.TriangleCount())
}

func TestIntersection(t *testing.T) {
	k := NewWithCells(testCells)
	inter, err := k.Intersection(box(t, geom.Origin(), 100, 100, 100), box(t, geom.NewPoint(50, 0, 0), 100, 100, 100))
	if err != nil {
		t.Fatalf("Intersection() error = %v", err)
	}
	s, err := k.SDF(inter)
	if err != nil {
		t.Fatalf("SDF() error = %v", err)
	}
	if d := s.Evaluate(v3.Vec{X: 75, Y: 50, Z: 50}); d >= 0 {
		t.Errorf("shared point evaluates to %f, want negative", d)
	}
	if d := s.Evaluate(v3.Vec{X: 25, Y: 50, Z: 50}); d <= 0 {
		t.Errorf("point only in first box evaluates to %f, want positive", d)
	}
	mesh, err := k.ToMesh(inter)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
}

func TestDifference(t *testing.T) {
	k := NewWithCells(testCells)
	diff, err := k.Difference(box(t, geom.Origin(), 100, 100, 100), box(t, geom.NewPoint(50, -10, -10), 100, 120, 120))
	if err != nil {
		t.Fatalf("Difference() error = %v", err)
	}
	s, err := k.SDF(diff)
	if err != nil {
		t.Fatalf("SDF() error = %v", err)
	}
	if d := s.Evaluate(v3.Vec{X: 25, Y: 50, Z: 50}); d >= 0 {
		t.Errorf("kept point evaluates to %f, want negative", d)
	}
	if d := s.Evaluate(v3.Vec{X: 75, Y: 50, Z: 50}); d <= 0 {
		t.Errorf("removed point evaluates to %f, want positive", d)
	}
}

type boundsOnly struct{}

func (boundsOnly) BoundingBox() (min, max [3]float64) { return }

func TestUnsupportedSolid(t *testing.T) {
	k := NewWithCells(testCells)
	if _, err := k.ToMesh(boundsOnly{}); !errors.Is(err, kernel.ErrUnsupportedSolid) {
		t.Errorf("ToMesh() error = %v, want ErrUnsupportedSolid", err)
	}
	if _, err := k.Union(boundsOnly{}, box(t, geom.Origin(), 1, 1, 1)); !errors.Is(err, kernel.ErrUnsupportedSolid) {
		t.Errorf("Union() error = %v, want ErrUnsupportedSolid", err)
	}
}
