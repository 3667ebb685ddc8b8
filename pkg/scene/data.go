package scene

import (
	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
)

// SolidData holds a validated convex solid in its local coordinates.
type SolidData struct {
	Solid *polyhedron.ConvexPolyhedron `json:"-"`
}

func (SolidData) nodeData() {}

// TransformData translates its single child. Created by the (place ...)
// form.
type TransformData struct {
	Translation geom.Vector `json:"-"`
}

func (TransformData) nodeData() {}

// GroupData represents a logical grouping. Created by the (assembly ...)
// form.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}

// kindOf returns the node kind a payload belongs to.
func kindOf(d NodeData) (NodeKind, bool) {
	switch d.(type) {
	case SolidData:
		return NodeSolid, true
	case TransformData:
		return NodeTransform, true
	case GroupData:
		return NodeGroup, true
	default:
		return 0, false
	}
}
