package main

import (
	"fmt"
	"log"

	"github.com/chazu/facet/pkg/engine"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/facet"
	"github.com/chazu/facet/pkg/polyhedron"
	"github.com/chazu/facet/pkg/scene"
	"github.com/chazu/facet/pkg/tessellate"
)

// App runs the full pipeline: source → scene → validation → meshes.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format of one placed solid.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
}

// SolidSummary reports the measures of one named solid as defined, before
// any placement.
type SolidSummary struct {
	Name     string  `json:"name"`
	Vertices int     `json:"vertices"`
	Edges    int     `json:"edges"`
	Faces    int     `json:"faces"`
	Length   float64 `json:"length"`
	Area     float64 `json:"area"`
	Volume   float64 `json:"volume"`
	Hash     uint64  `json:"hash"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Solids   []SolidSummary  `json:"solids"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with a default engine and the exact facet kernel.
func NewApp() *App {
	return NewAppWithKernel(facet.New())
}

// NewAppWithKernel creates an App that meshes with k.
func NewAppWithKernel(k kernel.Kernel, opts ...engine.Option) *App {
	return &App{
		engine: engine.NewEngine(opts...),
		kernel: k,
	}
}

// Evaluate takes Lisp source and returns mesh data, solid summaries and
// diagnostics.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Solids:   []SolidSummary{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene and validate it.
	run, err := a.engine.Run(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	for _, w := range run.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    w.Line,
			Col:     w.Col,
			Message: w.Message,
		})
	}

	// Step 2: Eval and validation errors stop the pipeline.
	if len(run.Errors) > 0 {
		for _, e := range run.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	result.Solids = summarize(run.Scene)

	// Step 3: Tessellate the scene into triangle meshes.
	meshes, err := tessellate.Tessellate(run.Scene, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 4: Convert kernel meshes to the MeshData format.
	for _, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
		})
	}

	return result
}

// Solid evaluates source and returns the solid defined under name.
func (a *App) Solid(source, name string) (*polyhedron.ConvexPolyhedron, error) {
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		return nil, err
	}
	if len(evalErrs) > 0 {
		return nil, evalErrs[0]
	}
	n := s.Lookup(name)
	if n == nil {
		return nil, fmt.Errorf("no solid named %q", name)
	}
	sd, ok := n.Data.(scene.SolidData)
	if !ok || sd.Solid == nil {
		return nil, fmt.Errorf("%q is a %s, not a solid", name, n.Kind)
	}
	return sd.Solid, nil
}

func summarize(s *scene.Scene) []SolidSummary {
	out := []SolidSummary{}
	for _, n := range s.Solids() {
		ph := n.Data.(scene.SolidData).Solid
		name := n.Name
		if name == "" {
			name = n.ID.Short()
		}
		out = append(out, SolidSummary{
			Name:     name,
			Vertices: ph.NumVertices(),
			Edges:    ph.NumEdges(),
			Faces:    ph.NumFaces(),
			Length:   ph.Length(),
			Area:     ph.Area(),
			Volume:   ph.Volume(),
			Hash:     ph.Hash(),
		})
	}
	return out
}
