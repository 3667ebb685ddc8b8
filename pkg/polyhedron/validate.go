package polyhedron

// Validate runs the orientation check and then the closure check.
func (ph *ConvexPolyhedron) Validate() error {
	if err := ph.CheckOrientation(); err != nil {
		return err
	}
	return ph.CheckClosure()
}

// CheckOrientation returns an *OrientationError for the first face whose
// normal points towards the centroid by more than eps. New corrects
// orientation before checking, so a failure here means the correction and
// the check disagree.
func (ph *ConvexPolyhedron) CheckOrientation() error {
	for i, f := range ph.faces {
		if d := ph.faceDot(f); d < -ph.tol.Eps {
			return &OrientationError{Face: i, Dot: d}
		}
	}
	return nil
}

// CheckClosure returns a *ClosureError unless V - E + F == 2.
func (ph *ConvexPolyhedron) CheckClosure() error {
	if ph.EulerCharacteristic() != 2 {
		return &ClosureError{
			Vertices: len(ph.vertices),
			Edges:    len(ph.edges),
			Faces:    len(ph.faces),
		}
	}
	return nil
}

// EulerCharacteristic returns V - E + F.
func (ph *ConvexPolyhedron) EulerCharacteristic() int {
	return len(ph.vertices) - len(ph.edges) + len(ph.faces)
}
