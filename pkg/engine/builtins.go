package engine

import (
	"fmt"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
	"github.com/chazu/facet/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// builder accumulates the scene for one evaluation.
type builder struct {
	s    *scene.Scene
	tol  geom.Tolerance
	anon int
}

func newBuilder(s *scene.Scene, tol geom.Tolerance) *builder {
	return &builder{s: s, tol: tol}
}

// nextSuffix numbers anonymous nodes. The counter is per evaluation, so
// the same program always yields the same node IDs.
func (b *builder) nextSuffix() string {
	b.anon++
	return fmt.Sprintf("_anon_%d", b.anon)
}

// solid resolves a solid value or a reference to a solid node.
func (b *builder) solid(s zygo.Sexp) (*polyhedron.ConvexPolyhedron, error) {
	switch v := s.(type) {
	case *sexpSolid:
		return v.ph, nil
	case *sexpNodeRef:
		n := b.s.Get(v.id)
		if n == nil {
			return nil, fmt.Errorf("reference %s does not exist", v.SexpString(nil))
		}
		sd, ok := n.Data.(scene.SolidData)
		if !ok {
			return nil, fmt.Errorf("%s is a %s, not a solid", v.SexpString(nil), n.Kind)
		}
		return sd.Solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %s", describe(s))
}

// ref returns the node for s, adding an anonymous solid node when s is a
// bare solid value.
func (b *builder) ref(s zygo.Sexp) (scene.NodeID, string, error) {
	switch v := s.(type) {
	case *sexpNodeRef:
		return v.id, v.name, nil
	case *sexpSolid:
		id := scene.NewNodeID("solid/" + b.nextSuffix())
		b.s.AddNode(&scene.Node{ID: id, Kind: scene.NodeSolid, Data: scene.SolidData{Solid: v.ph}})
		return id, "", nil
	}
	return "", "", fmt.Errorf("expected solid or node reference, got %s", describe(s))
}

// geometry converts s to the value polyhedron.Contains expects. Anything
// unrecognised is passed through so Contains reports it as unsupported.
func (b *builder) geometry(s zygo.Sexp) any {
	switch v := s.(type) {
	case *sexpPoint:
		return v.p
	case *sexpSegment:
		return v.s
	case *sexpPolygon:
		return v.poly
	case *sexpSolid, *sexpNodeRef:
		if ph, err := b.solid(s); err == nil {
			return ph
		}
	}
	return s
}

func sexpFloat(v float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: v}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the facet DSL builtins into a zygomys
// environment. They populate b's scene during evaluation.
//
// Source code must be preprocessed with preprocessSource() first so that
// :keyword tokens and kebab-case names are in the form registered here.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// (point 1 2 3)
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xyz, err := triple("point", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpPoint{p: geom.NewPoint(xyz[0], xyz[1], xyz[2])}, nil
	})

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xyz, err := triple("vec3", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec3{v: geom.NewVector(xyz[0], xyz[1], xyz[2])}, nil
	})

	// (segment (point ...) (point ...))
	env.AddFunction("segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("segment requires exactly 2 points, got %d", len(args))
		}
		pts, err := points("segment", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		s, err := geom.NewSegment(pts[0], pts[1], b.tol)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("segment: %w", err)
		}
		return &sexpSegment{s: s}, nil
	})

	// (polygon (point ...) (point ...) (point ...) ...)
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := points("polygon", spread(args))
		if err != nil {
			return zygo.SexpNull, err
		}
		poly, err := geom.NewConvexPolygon(pts, b.tol)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return &sexpPolygon{poly: poly}, nil
	})

	// (parallelogram (point ...) (vec3 ...) (vec3 ...))
	env.AddFunction("parallelogram", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("parallelogram requires a base point and 2 vectors, got %d arguments", len(args))
		}
		base, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parallelogram: base: %w", err)
		}
		vs, err := vectors("parallelogram", args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		poly, err := geom.Parallelogram(base, vs[0], vs[1], b.tol)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parallelogram: %w", err)
		}
		return &sexpPolygon{poly: poly}, nil
	})

	// (polyhedron face face face ...) or (polyhedron (list face ...))
	env.AddFunction("polyhedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		items := spread(args)
		faces := make([]geom.ConvexPolygon, 0, len(items))
		for i, item := range items {
			f, err := toPolygon(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polyhedron: face %d: %w", i, err)
			}
			faces = append(faces, f)
		}
		ph, err := polyhedron.New(faces, polyhedron.WithTolerance(b.tol))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polyhedron: %w", err)
		}
		return &sexpSolid{ph: ph}, nil
	})

	// (parallelepiped (point ...) (vec3 ...) (vec3 ...) (vec3 ...))
	env.AddFunction("parallelepiped", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("parallelepiped requires a base point and 3 vectors, got %d arguments", len(args))
		}
		base, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parallelepiped: base: %w", err)
		}
		vs, err := vectors("parallelepiped", args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		ph, err := polyhedron.Parallelepiped(base, vs[0], vs[1], vs[2], polyhedron.WithTolerance(b.tol))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parallelepiped: %w", err)
		}
		return &sexpSolid{ph: ph}, nil
	})

	// (translate solid (vec3 ...)) returns a new solid value.
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires a solid and a vector, got %d arguments", len(args))
		}
		ph, err := b.solid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		v, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		moved, err := ph.Translate(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		return &sexpSolid{ph: moved}, nil
	})

	// (volume solid)
	env.AddFunction("volume", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("volume requires exactly 1 argument, got %d", len(args))
		}
		ph, err := b.solid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("volume: %w", err)
		}
		return sexpFloat(ph.Volume()), nil
	})

	// (area solid-or-polygon)
	env.AddFunction("area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("area requires exactly 1 argument, got %d", len(args))
		}
		if p, ok := args[0].(*sexpPolygon); ok {
			return sexpFloat(p.poly.Area()), nil
		}
		ph, err := b.solid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("area: %w", err)
		}
		return sexpFloat(ph.Area()), nil
	})

	// (edge-length solid-or-polygon): total edge length, or the perimeter
	// of a polygon.
	env.AddFunction("edge_length", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("edge-length requires exactly 1 argument, got %d", len(args))
		}
		if p, ok := args[0].(*sexpPolygon); ok {
			return sexpFloat(p.poly.Perimeter()), nil
		}
		ph, err := b.solid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("edge-length: %w", err)
		}
		return sexpFloat(ph.Length()), nil
	})

	// (inside solid thing): thing is a point, segment, polygon or solid.
	env.AddFunction("inside", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("inside requires a solid and a geometry, got %d arguments", len(args))
		}
		ph, err := b.solid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("inside: %w", err)
		}
		ok, err := ph.Contains(b.geometry(args[1]))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("inside: %w", err)
		}
		return &zygo.SexpBool{Val: ok}, nil
	})

	// (defsolid "name" solid)
	env.AddFunction("defsolid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defsolid requires a name and a body expression")
		}
		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: name: %w", err)
		}
		if b.s.Lookup(solidName) != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: %q is already defined", solidName)
		}
		ph, err := b.solid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: %w", err)
		}

		id := scene.NewNodeID("defsolid/" + solidName)
		b.s.AddNode(&scene.Node{
			ID:   id,
			Kind: scene.NodeSolid,
			Name: solidName,
			Data: scene.SolidData{Solid: ph},
		})
		return &sexpNodeRef{id: id, name: solidName}, nil
	})

	// (solid "name")
	env.AddFunction("solid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("solid requires a name argument")
		}
		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid: name: %w", err)
		}
		n := b.s.Lookup(solidName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("solid: no solid named %q", solidName)
		}
		return &sexpNodeRef{id: n.ID, name: solidName}, nil
	})

	// (place (solid "cube") :by (vec3 0 0 1))
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("place requires a solid or node reference as first argument")
		}
		childID, childName, err := b.ref(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}

		td := scene.TransformData{Translation: geom.NewVector(0, 0, 0)}
		if v, ok := pa.kw["by"]; ok {
			vec, err := toVector(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place: by: %w", err)
			}
			td.Translation = vec
		}

		label := childName
		if label == "" {
			label = childID.Short()
		}
		id := scene.NewNodeID("place/" + label + "/" + b.nextSuffix())
		b.s.AddNode(&scene.Node{
			ID:       id,
			Kind:     scene.NodeTransform,
			Children: []scene.NodeID{childID},
			Data:     td,
		})
		return &sexpNodeRef{id: id}, nil
	})

	// (assembly "name" child child ...)
	env.AddFunction("assembly", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("assembly requires a name argument")
		}
		asmName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("assembly: name: %w", err)
		}

		var children []scene.NodeID
		for i, arg := range args[1:] {
			id, _, err := b.ref(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("assembly: child %d: %w", i+1, err)
			}
			children = append(children, id)
		}

		id := scene.NewNodeID("assembly/" + asmName)
		b.s.AddNode(&scene.Node{
			ID:       id,
			Kind:     scene.NodeGroup,
			Name:     asmName,
			Children: children,
			Data:     scene.GroupData{},
		})
		b.s.AddRoot(id)
		return &sexpNodeRef{id: id, name: asmName}, nil
	})
}

func triple(fn string, args []zygo.Sexp) ([3]float64, error) {
	var xyz [3]float64
	if len(args) != 3 {
		return xyz, fmt.Errorf("%s requires exactly 3 arguments, got %d", fn, len(args))
	}
	for i, axis := range []string{"x", "y", "z"} {
		f, err := toFloat64(args[i])
		if err != nil {
			return xyz, fmt.Errorf("%s: %s: %w", fn, axis, err)
		}
		xyz[i] = f
	}
	return xyz, nil
}

func points(fn string, args []zygo.Sexp) ([]geom.Point, error) {
	pts := make([]geom.Point, 0, len(args))
	for i, a := range args {
		p, err := toPoint(a)
		if err != nil {
			return nil, fmt.Errorf("%s: point %d: %w", fn, i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func vectors(fn string, args []zygo.Sexp) ([]geom.Vector, error) {
	vs := make([]geom.Vector, 0, len(args))
	for i, a := range args {
		v, err := toVector(a)
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w", fn, i+1, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
