package scene

import (
	"fmt"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
)

// validateGeometry runs the geometric checks: solids must be present and
// still satisfy their invariants, placements should move something, and
// placed solids should not overlap.
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	errs = append(errs, validateSolids(s)...)
	warnings = append(warnings, validateZeroPlacements(s)...)

	placed, placeErrs := Place(s)
	errs = append(errs, placeErrs...)
	warnings = append(warnings, validateOverlaps(placed)...)

	return errs, warnings
}

// validateSolids re-runs the orientation and closure checks on every solid.
func validateSolids(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, node := range s.Nodes {
		sd, ok := node.Data.(SolidData)
		if !ok {
			continue
		}
		if sd.Solid == nil {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  "solid node has no solid",
				Severity: SeverityError,
			})
			continue
		}
		if err := sd.Solid.Validate(); err != nil {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  err.Error(),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func validateZeroPlacements(s *Scene) []ValidationWarning {
	var warnings []ValidationWarning
	tol := s.Tolerance()
	for _, node := range s.Nodes {
		td, ok := node.Data.(TransformData)
		if ok && td.Translation.IsZero(tol) {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: "placement has zero translation",
			})
		}
	}
	return warnings
}

// PlacedSolid is a solid node resolved to world coordinates.
type PlacedSolid struct {
	NodeID NodeID
	Name   string
	Offset geom.Vector
	Solid  *polyhedron.ConvexPolyhedron
}

// Place walks every root, accumulating translations, and returns each
// solid reached in world coordinates. A solid reached along two paths
// appears twice. Cycles and dangling references are skipped; Validate
// reports them.
func Place(s *Scene) ([]PlacedSolid, []ValidationError) {
	var placed []PlacedSolid
	var errs []ValidationError
	onPath := make(map[NodeID]bool)

	var walk func(id NodeID, offset geom.Vector)
	walk = func(id NodeID, offset geom.Vector) {
		node := s.Nodes[id]
		if node == nil || onPath[id] {
			return
		}
		onPath[id] = true
		defer delete(onPath, id)

		switch d := node.Data.(type) {
		case SolidData:
			if d.Solid == nil {
				return
			}
			moved, err := d.Solid.Translate(offset)
			if err != nil {
				errs = append(errs, ValidationError{
					NodeID:   id,
					Message:  fmt.Sprintf("placing solid by %v: %v", offset, err),
					Severity: SeverityError,
				})
				return
			}
			placed = append(placed, PlacedSolid{NodeID: id, Name: node.Name, Offset: offset, Solid: moved})
		case TransformData:
			offset = offset.Add(d.Translation)
		}
		for _, cid := range node.Children {
			walk(cid, offset)
		}
	}

	for _, rid := range s.Roots {
		walk(rid, geom.NewVector(0, 0, 0))
	}
	return placed, errs
}

// validateOverlaps warns when a placed solid contains another's centroid.
func validateOverlaps(placed []PlacedSolid) []ValidationWarning {
	var warnings []ValidationWarning
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if !a.Solid.ContainsPoint(b.Solid.Centroid()) && !b.Solid.ContainsPoint(a.Solid.Centroid()) {
				continue
			}
			warnings = append(warnings, ValidationWarning{
				NodeID:  b.NodeID,
				Message: fmt.Sprintf("solid %s overlaps solid %s", label(b), label(a)),
			})
		}
	}
	return warnings
}

func label(p PlacedSolid) string {
	if p.Name != "" {
		return fmt.Sprintf("%q", p.Name)
	}
	return p.NodeID.Short()
}
