package polyhedron

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates caller input rejected before any
	// construction: an empty face set or degenerate parallelepiped edges.
	ErrInvalidArgument = errors.New("polyhedron: invalid argument")
	// ErrUnsupported indicates a containment query on a type the solid cannot test.
	ErrUnsupported = errors.New("polyhedron: unsupported containment query")
	// ErrOrientation indicates a face normal pointing into the solid after correction.
	ErrOrientation = errors.New("polyhedron: face normal points into the solid")
	// ErrNotClosed indicates the face set fails Euler's formula.
	ErrNotClosed = errors.New("polyhedron: faces do not form a closed surface")
)

// OrientationError reports the first face whose normal points inwards.
type OrientationError struct {
	Face int     // index into Faces()
	Dot  float64 // (face point - centroid) · normal
}

func (e *OrientationError) Error() string {
	return fmt.Sprintf("%v: face %d has dot %g", ErrOrientation, e.Face, e.Dot)
}

func (e *OrientationError) Unwrap() error { return ErrOrientation }

// ClosureError reports the counts that failed V - E + F == 2.
type ClosureError struct {
	Vertices int
	Edges    int
	Faces    int
}

func (e *ClosureError) Error() string {
	return fmt.Sprintf("%v: V:%d E:%d F:%d gives %d, want 2",
		ErrNotClosed, e.Vertices, e.Edges, e.Faces, e.Vertices-e.Edges+e.Faces)
}

func (e *ClosureError) Unwrap() error { return ErrNotClosed }
