// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per placed solid.
package tessellate

import (
	"fmt"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/scene"
)

// transformStack accumulates placement offsets during scene traversal.
type transformStack struct {
	translations []geom.Vector
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(v geom.Vector) {
	ts.translations = append(ts.translations, v)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
	}
}

// accumulated returns the sum of all translations on the stack.
func (ts *transformStack) accumulated() geom.Vector {
	var sum geom.Vector
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// Tessellate walks the scene from its roots and produces one triangle mesh
// per solid reached, using the provided geometry kernel. A scene without
// roots has every solid node meshed in place. The tessellator is read-only
// and never mutates the scene.
func Tessellate(s *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	ts := newTransformStack()

	if len(s.Roots) == 0 {
		for _, n := range s.Solids() {
			collected, err := handleSolid(k, n, ts)
			if err != nil {
				return nil, err
			}
			meshes = append(meshes, collected...)
		}
		return meshes, nil
	}

	for _, rootID := range s.Roots {
		root := s.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := walkNode(s, k, root, ts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walkNode recursively traverses a node and its children, collecting meshes.
func walkNode(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case scene.NodeSolid:
		return handleSolid(k, n, ts)
	case scene.NodeTransform:
		return handleTransform(s, k, n, ts)
	case scene.NodeGroup:
		return handleGroup(s, k, n, ts)
	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// handleSolid meshes a solid node at the accumulated offset.
func handleSolid(k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	data, ok := n.Data.(scene.SolidData)
	if !ok || data.Solid == nil {
		return nil, fmt.Errorf("solid node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	solid := data.Solid
	if offset := ts.accumulated(); !offset.IsZero(solid.Tolerance()) {
		moved, err := solid.Translate(offset)
		if err != nil {
			return nil, fmt.Errorf("tessellate: placing node %s: %w", n.ID.Short(), err)
		}
		solid = moved
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}

	// Set the part name: prefer the node's Name, fall back to short ID.
	if n.Name != "" {
		mesh.PartName = n.Name
	} else {
		mesh.PartName = n.ID.Short()
	}

	return []*kernel.Mesh{mesh}, nil
}

// handleTransform pushes the placement, recurses into children, then pops.
func handleTransform(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	td, ok := n.Data.(scene.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	ts.push(td.Translation)
	defer ts.pop()

	var meshes []*kernel.Mesh
	for _, child := range s.Children(n) {
		collected, err := walkNode(s, k, child, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}

// handleGroup recurses into children transparently.
func handleGroup(s *scene.Scene, k kernel.Kernel, n *scene.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range s.Children(n) {
		collected, err := walkNode(s, k, child, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}
