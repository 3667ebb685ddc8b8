package scene

import (
	"testing"

	"github.com/chazu/facet/pkg/geom"
)

func TestValidSceneHasNoFindings(t *testing.T) {
	s := buildValidScene(t)
	if errs := Validate(s); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want none", errs)
	}
	result := ValidateAll(s)
	if !result.OK() {
		t.Errorf("ValidateAll() errors = %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("ValidateAll() warnings = %v", result.Warnings)
	}
}

func TestValidateEmptyScene(t *testing.T) {
	if errs := Validate(New()); len(errs) != 0 {
		t.Errorf("Validate(empty) = %v, want none", errs)
	}
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scene)
		want   string
	}{
		{
			name: "cycle",
			mutate: func(s *Scene) {
				g := s.Get(groupID)
				g.Children = append(g.Children, groupID)
			},
			want: "cycle detected",
		},
		{
			name: "dangling child",
			mutate: func(s *Scene) {
				g := s.Get(groupID)
				g.Children = append(g.Children, NewNodeID("nowhere"))
			},
			want: "does not exist",
		},
		{
			name:   "missing root",
			mutate: func(s *Scene) { s.AddRoot(NewNodeID("nowhere")) },
			want:   "root reference",
		},
		{
			name: "duplicate name",
			mutate: func(s *Scene) {
				s.Get(tetID).Name = "cube"
			},
			want: "duplicate name",
		},
		{
			name:   "stale name index",
			mutate: func(s *Scene) { s.NameIndex["ghost"] = NewNodeID("ghost") },
			want:   "non-existent node",
		},
		{
			name:   "kind mismatch",
			mutate: func(s *Scene) { s.Get(cubeID).Data = GroupData{} },
			want:   "carries scene.GroupData",
		},
		{
			name:   "no data",
			mutate: func(s *Scene) { s.Get(tetID).Data = nil },
			want:   "has no data",
		},
		{
			name: "transform with two children",
			mutate: func(s *Scene) {
				p := s.Get(placeID)
				p.Children = append(p.Children, tetID)
			},
			want: "want 1",
		},
		{
			name: "solid with children",
			mutate: func(s *Scene) {
				c := s.Get(tetID)
				c.Children = []NodeID{cubeID}
			},
			want: "want 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildValidScene(t)
			tt.mutate(s)
			errs := Validate(s)
			if !hasError(errs, tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", errs, tt.want)
			}
			if ValidateAll(s).OK() {
				t.Error("ValidateAll().OK() = true, want false")
			}
		})
	}
}

func TestOrphanIsWarning(t *testing.T) {
	s := buildValidScene(t)
	s.AddNode(&Node{ID: NewNodeID("defsolid/spare"), Kind: NodeSolid, Name: "spare", Data: SolidData{Solid: cube(t)}})

	result := ValidateAll(s)
	if !result.OK() {
		t.Fatalf("ValidateAll() errors = %v", result.Errors)
	}
	if !hasWarning(result.Warnings, "orphan") {
		t.Errorf("warnings = %v, want orphan", result.Warnings)
	}
}

func TestNilSolid(t *testing.T) {
	s := buildValidScene(t)
	s.Get(tetID).Data = SolidData{}

	result := ValidateAll(s)
	if !hasError(result.Errors, "no solid") {
		t.Errorf("errors = %v, want nil solid error", result.Errors)
	}
}

func TestZeroPlacementWarning(t *testing.T) {
	s := buildValidScene(t)
	s.Get(placeID).Data = TransformData{Translation: geom.NewVector(0, 0, 0)}

	result := ValidateAll(s)
	if !hasWarning(result.Warnings, "zero translation") {
		t.Errorf("warnings = %v, want zero translation", result.Warnings)
	}
	// The cube now sits on the tetrahedron.
	if !hasWarning(result.Warnings, "overlaps") {
		t.Errorf("warnings = %v, want overlap", result.Warnings)
	}
}

func TestZeroPlacementUsesSceneTolerance(t *testing.T) {
	tiny := TransformData{Translation: geom.NewVector(1e-8, 0, 0)}

	strict := buildValidScene(t)
	strict.Get(placeID).Data = tiny
	if got := strict.Tolerance(); got != geom.DefaultTolerance() {
		t.Fatalf("Tolerance() = %v, want default", got)
	}
	if result := ValidateAll(strict); hasWarning(result.Warnings, "zero translation") {
		t.Errorf("default tolerance: warnings = %v, want no zero translation", result.Warnings)
	}

	loose := geom.Tolerance{Eps: 1e-6, Digits: 6}
	s := NewWithTolerance(loose)
	for _, n := range strict.Nodes {
		s.AddNode(n)
	}
	for _, r := range strict.Roots {
		s.AddRoot(r)
	}
	if got := s.Tolerance(); got != loose {
		t.Fatalf("Tolerance() = %v, want %v", got, loose)
	}
	if result := ValidateAll(s); !hasWarning(result.Warnings, "zero translation") {
		t.Errorf("loose tolerance: warnings = %v, want zero translation", result.Warnings)
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Message: "bad", Severity: SeverityError}
	if got := e.Error(); got != "[error] bad" {
		t.Errorf("Error() = %q", got)
	}
	e.NodeID = cubeID
	e.Severity = SeverityWarning
	want := "[warning] node " + cubeID.Short() + ": bad"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
