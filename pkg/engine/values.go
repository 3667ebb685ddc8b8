package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
	"github.com/chazu/facet/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpPoint struct {
	p geom.Point
}

func (s *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(point %g %g %g)", s.p.X(), s.p.Y(), s.p.Z())
}
func (s *sexpPoint) Type() *zygo.RegisteredType { return nil }

type sexpVec3 struct {
	v geom.Vector
}

func (s *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", s.v.X(), s.v.Y(), s.v.Z())
}
func (s *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpSegment struct {
	s geom.Segment
}

func (s *sexpSegment) SexpString(ps *zygo.PrintState) string {
	return s.s.String()
}
func (s *sexpSegment) Type() *zygo.RegisteredType { return nil }

type sexpPolygon struct {
	poly geom.ConvexPolygon
}

func (s *sexpPolygon) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(polygon %d points)", s.poly.Len())
}
func (s *sexpPolygon) Type() *zygo.RegisteredType { return nil }

// sexpSolid is a solid value that has not been given a scene node yet.
type sexpSolid struct {
	ph *polyhedron.ConvexPolyhedron
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return s.ph.String()
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef wraps a scene.NodeID so it can be passed between builtins.
type sexpNodeRef struct {
	id   scene.NodeID
	name string // human-readable name for error messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(noderef %q)", n.name)
	}
	return fmt.Sprintf("(noderef %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		switch {
		case ok && i+1 < len(args):
			result.kw[name] = args[i+1]
			i++
		case ok:
			// Trailing keyword with no value is a flag.
			result.kw[name] = zygo.SexpNull
		default:
			result.positional = append(result.positional, args[i])
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

func toPoint(s zygo.Sexp) (geom.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	return geom.Point{}, fmt.Errorf("expected point, got %s", describe(s))
}

func toVector(s zygo.Sexp) (geom.Vector, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.v, nil
	}
	return geom.Vector{}, fmt.Errorf("expected vec3, got %s", describe(s))
}

func toPolygon(s zygo.Sexp) (geom.ConvexPolygon, error) {
	if p, ok := s.(*sexpPolygon); ok {
		return p.poly, nil
	}
	return geom.ConvexPolygon{}, fmt.Errorf("expected polygon, got %s", describe(s))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// spread accepts either the items themselves or a single list holding them.
func spread(args []zygo.Sexp) []zygo.Sexp {
	if len(args) != 1 {
		return args
	}
	if items, err := sexpListToSlice(args[0]); err == nil {
		return items
	}
	return args
}
