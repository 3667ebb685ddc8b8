package scene

import (
	"strings"
	"testing"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func cube(t *testing.T) *polyhedron.ConvexPolyhedron {
	t.Helper()
	ph, err := polyhedron.Parallelepiped(geom.Origin(),
		geom.NewVector(1, 0, 0), geom.NewVector(0, 1, 0), geom.NewVector(0, 0, 1))
	if err != nil {
		t.Fatalf("Parallelepiped() error = %v", err)
	}
	return ph
}

func tetrahedron(t *testing.T) *polyhedron.ConvexPolyhedron {
	t.Helper()
	tol := geom.DefaultTolerance()
	o := geom.Origin()
	x, y, z := geom.NewPoint(1, 0, 0), geom.NewPoint(0, 1, 0), geom.NewPoint(0, 0, 1)
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
	return ph
}

var (
	cubeID  = NewNodeID("defsolid/cube")
	tetID   = NewNodeID("defsolid/tet")
	placeID = NewNodeID("place/cube/0")
	groupID = NewNodeID("assembly/scene")
)

// buildValidScene places the unit cube at x=3 next to a tetrahedron at the
// origin, both under one group root.
func buildValidScene(t *testing.T) *Scene {
	t.Helper()
	s := New()
	s.AddNode(&Node{ID: cubeID, Kind: NodeSolid, Name: "cube", Data: SolidData{Solid: cube(t)}})
	s.AddNode(&Node{ID: tetID, Kind: NodeSolid, Name: "tet", Data: SolidData{Solid: tetrahedron(t)}})
	s.AddNode(&Node{
		ID: placeID, Kind: NodeTransform,
		Children: []NodeID{cubeID},
		Data:     TransformData{Translation: geom.NewVector(3, 0, 0)},
	})
	s.AddNode(&Node{
		ID: groupID, Kind: NodeGroup, Name: "scene",
		Children: []NodeID{placeID, tetID},
		Data:     GroupData{Description: "cube beside tetrahedron"},
	})
	s.AddRoot(groupID)
	return s
}

func hasError(errs []ValidationError, substr string) bool {
	for _, e := range errs {
		if e.Severity == SeverityError && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func hasWarning(warnings []ValidationWarning, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// IDs and scene API
// ---------------------------------------------------------------------------

func TestNodeID(t *testing.T) {
	a := NewNodeID("defsolid/cube")
	if a != NewNodeID("defsolid/cube") {
		t.Error("NewNodeID is not deterministic")
	}
	if a == NewNodeID("defsolid/tet") {
		t.Error("different paths gave the same ID")
	}
	if len(a) != 64 {
		t.Errorf("len(NodeID) = %d, want 64", len(a))
	}
	if got := a.Short(); len(got) != 8 || !strings.HasPrefix(string(a), got) {
		t.Errorf("Short() = %q, want 8-char prefix of %q", got, a)
	}
	if a.IsZero() || !NodeID("").IsZero() {
		t.Error("IsZero() wrong")
	}
}

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{NodeSolid, "solid"},
		{NodeTransform, "transform"},
		{NodeGroup, "group"},
		{NodeKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestSceneAPI(t *testing.T) {
	s := buildValidScene(t)

	if s.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", s.NodeCount())
	}
	if n := s.Lookup("cube"); n == nil || n.ID != cubeID {
		t.Errorf("Lookup(cube) = %v", n)
	}
	if s.Lookup("missing") != nil {
		t.Error("Lookup(missing) should be nil")
	}
	if s.Get(placeID) == nil {
		t.Error("Get(placeID) = nil")
	}

	solids := s.Solids()
	if len(solids) != 2 || solids[0].Name != "cube" || solids[1].Name != "tet" {
		t.Errorf("Solids() = %v, want [cube tet]", solids)
	}

	children := s.Children(s.Get(groupID))
	if len(children) != 2 || children[0].ID != placeID || children[1].ID != tetID {
		t.Errorf("Children(group) = %v", children)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup(missing) did not panic")
		}
	}()
	New().MustLookup("missing")
}

// ---------------------------------------------------------------------------
// Placement
// ---------------------------------------------------------------------------

func TestPlace(t *testing.T) {
	s := buildValidScene(t)
	placed, errs := Place(s)
	if len(errs) != 0 {
		t.Fatalf("Place() errors = %v", errs)
	}
	if len(placed) != 2 {
		t.Fatalf("Place() returned %d solids, want 2", len(placed))
	}

	tol := geom.DefaultTolerance()
	byName := map[string]PlacedSolid{}
	for _, p := range placed {
		byName[p.Name] = p
	}
	if c := byName["cube"].Solid.Centroid(); !c.Equal(geom.NewPoint(3.5, 0.5, 0.5), tol) {
		t.Errorf("placed cube centroid = %v, want (3.5, 0.5, 0.5)", c)
	}
	if !byName["tet"].Offset.IsZero(tol) {
		t.Errorf("tet offset = %v, want zero", byName["tet"].Offset)
	}

	// The scene's own solid stays in local coordinates.
	local := s.Lookup("cube").Data.(SolidData).Solid
	if c := local.Centroid(); !c.Equal(geom.NewPoint(0.5, 0.5, 0.5), tol) {
		t.Errorf("local cube centroid = %v, want (0.5, 0.5, 0.5)", c)
	}
}

func TestPlaceNested(t *testing.T) {
	s := buildValidScene(t)
	outer := NewNodeID("place/scene/0")
	s.AddNode(&Node{
		ID: outer, Kind: NodeTransform,
		Children: []NodeID{groupID},
		Data:     TransformData{Translation: geom.NewVector(0, 0, 10)},
	})
	s.Roots = []NodeID{outer}

	placed, errs := Place(s)
	if len(errs) != 0 {
		t.Fatalf("Place() errors = %v", errs)
	}
	tol := geom.DefaultTolerance()
	for _, p := range placed {
		if p.Name == "cube" && !p.Offset.Equal(geom.NewVector(3, 0, 10), tol) {
			t.Errorf("cube offset = %v, want (3, 0, 10)", p.Offset)
		}
	}
}
