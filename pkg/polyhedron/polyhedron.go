package polyhedron

import (
	"fmt"
	"math"
	"slices"

	"github.com/chazu/facet/pkg/geom"
	"github.com/samber/lo"
)

// ConvexPolyhedron is a closed convex solid bounded by convex faces whose
// normals point outwards. Values are immutable once New returns them.
type ConvexPolyhedron struct {
	faces    []geom.ConvexPolygon
	vertices []geom.Point
	edges    []geom.Segment
	centroid geom.Point
	pyramids []geom.Pyramid
	tol      geom.Tolerance
}

// New builds a solid from faces. The faces are copied; later changes to the
// caller's slice do not reach the solid. Faces may be given with either
// orientation. New fails with ErrInvalidArgument for an empty face set,
// *OrientationError if a normal still points inwards after correction, and
// *ClosureError if the faces do not satisfy Euler's formula.
func New(faces []geom.ConvexPolygon, opts ...Option) (*ConvexPolyhedron, error) {
	o := gatherOptions(opts)
	if err := o.tol.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrInvalidArgument)
	}
	for i, f := range faces {
		if f.Len() < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrInvalidArgument, i, f.Len())
		}
	}

	copied := lo.Map(faces, func(f geom.ConvexPolygon, _ int) geom.ConvexPolygon {
		return f.Clone()
	})
	return build(copied, o.tol)
}

// build derives every piece of state from faces, which it takes ownership
// of, and validates the result. Nothing is returned on failure.
func build(faces []geom.ConvexPolygon, tol geom.Tolerance) (*ConvexPolyhedron, error) {
	ph := &ConvexPolyhedron{faces: faces, tol: tol}
	ph.collect()

	centroid, err := geom.Mean(ph.vertices)
	if err != nil {
		return nil, fmt.Errorf("polyhedron: centroid: %w", err)
	}
	ph.centroid = centroid

	for i, f := range ph.faces {
		if ph.faceDot(f) < -tol.Eps {
			ph.faces[i] = f.Neg()
		}
	}

	ph.pyramids = make([]geom.Pyramid, 0, len(ph.faces))
	for i, f := range ph.faces {
		py, err := geom.NewPyramid(f, centroid, tol, geom.SkipValidation())
		if err != nil {
			return nil, fmt.Errorf("polyhedron: pyramid over face %d: %w", i, err)
		}
		ph.pyramids = append(ph.pyramids, py)
	}

	if err := ph.Validate(); err != nil {
		return nil, err
	}
	return ph, nil
}

// collect fills the deduplicated vertex and edge sets in first-seen order.
func (ph *ConvexPolyhedron) collect() {
	seenV := make(map[geom.PointKey]struct{})
	seenE := make(map[geom.SegmentKey]struct{})
	ph.vertices = nil
	ph.edges = nil

	for _, f := range ph.faces {
		for _, p := range f.Points() {
			k := p.Key(ph.tol)
			if _, ok := seenV[k]; !ok {
				seenV[k] = struct{}{}
				ph.vertices = append(ph.vertices, p)
			}
		}
		for _, s := range f.Segments() {
			k := s.Key(ph.tol)
			if _, ok := seenE[k]; !ok {
				seenE[k] = struct{}{}
				ph.edges = append(ph.edges, s)
			}
		}
	}
}

// faceDot returns (point on f's plane - centroid) · f's normal.
func (ph *ConvexPolyhedron) faceDot(f geom.ConvexPolygon) float64 {
	pl := f.Plane()
	return geom.VectorBetween(ph.centroid, pl.Point()).Dot(pl.Normal())
}

// Faces returns copies of the outward-oriented faces.
func (ph *ConvexPolyhedron) Faces() []geom.ConvexPolygon {
	return lo.Map(ph.faces, func(f geom.ConvexPolygon, _ int) geom.ConvexPolygon {
		return f.Clone()
	})
}

// Vertices returns the unique vertices.
func (ph *ConvexPolyhedron) Vertices() []geom.Point {
	return slices.Clone(ph.vertices)
}

// Edges returns the unique edges.
func (ph *ConvexPolyhedron) Edges() []geom.Segment {
	return slices.Clone(ph.edges)
}

// Pyramids returns the per-face pyramids used for the volume.
func (ph *ConvexPolyhedron) Pyramids() []geom.Pyramid {
	return slices.Clone(ph.pyramids)
}

// Centroid returns the mean of the unique vertices. It is not the center of
// mass.
func (ph *ConvexPolyhedron) Centroid() geom.Point { return ph.centroid }

// Tolerance returns the numeric policy the solid was built with.
func (ph *ConvexPolyhedron) Tolerance() geom.Tolerance { return ph.tol }

func (ph *ConvexPolyhedron) NumVertices() int { return len(ph.vertices) }
func (ph *ConvexPolyhedron) NumEdges() int    { return len(ph.edges) }
func (ph *ConvexPolyhedron) NumFaces() int    { return len(ph.faces) }

// BoundingBox returns the axis-aligned bounds of the vertices.
func (ph *ConvexPolyhedron) BoundingBox() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range ph.vertices {
		c := [3]float64{p.X(), p.Y(), p.Z()}
		for i := range c {
			min[i] = math.Min(min[i], c[i])
			max[i] = math.Max(max[i], c[i])
		}
	}
	return min, max
}

func (ph *ConvexPolyhedron) String() string {
	return fmt.Sprintf("ConvexPolyhedron(V=%d E=%d F=%d)", len(ph.vertices), len(ph.edges), len(ph.faces))
}
