package scene

import (
	"fmt"
	"sort"

	"github.com/chazu/facet/pkg/geom"
)

// Scene is the top-level immutable data structure produced by evaluation.
// It is never mutated in place; each evaluation produces a new scene.
type Scene struct {
	Nodes     map[NodeID]*Node  `json:"nodes"`
	Roots     []NodeID          `json:"roots"`
	NameIndex map[string]NodeID `json:"name_index"`

	tol geom.Tolerance
}

// New creates an empty Scene using geom.DefaultTolerance().
func New() *Scene {
	return NewWithTolerance(geom.DefaultTolerance())
}

// NewWithTolerance creates an empty Scene whose geometric validation
// compares with tol. It should match the tolerance the solids were built
// with.
func NewWithTolerance(tol geom.Tolerance) *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
		tol:       tol,
	}
}

// Tolerance returns the numeric policy used by ValidateAll.
func (s *Scene) Tolerance() geom.Tolerance { return s.tol }

// AddNode adds a node to the scene. It does not check for duplicates.
func (s *Scene) AddNode(n *Node) {
	s.Nodes[n.ID] = n
	if n.Name != "" {
		s.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers a node ID as a root of the scene.
func (s *Scene) AddRoot(id NodeID) {
	s.Roots = append(s.Roots, id)
}

// Lookup returns the node with the given user-assigned name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (s *Scene) MustLookup(name string) *Node {
	n := s.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("scene: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// Solids returns all solid nodes, ordered by name then ID so results are
// stable across runs.
func (s *Scene) Solids() []*Node {
	var out []*Node
	for _, n := range s.Nodes {
		if n.Kind == NodeSolid {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Children returns the child nodes of the given node.
func (s *Scene) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := s.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}
