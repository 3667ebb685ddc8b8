package geom

import "fmt"

// Plane is an oriented plane given by a point on it and a unit normal.
type Plane struct {
	p Point
	n Vector
}

// NewPlane creates a plane through p with normal n. The normal is stored
// with unit length.
func NewPlane(p Point, n Vector, t Tolerance) (Plane, error) {
	u, err := n.Unit(t)
	if err != nil {
		return Plane{}, fmt.Errorf("plane normal: %w", err)
	}
	return Plane{p: p, n: u}, nil
}

// PlaneThrough creates the plane through a, b and c whose normal is
// (b-a) × (c-a).
func PlaneThrough(a, b, c Point, t Tolerance) (Plane, error) {
	ab, ac := VectorBetween(a, b), VectorBetween(a, c)
	if ab.IsZero(t) || ac.IsZero(t) || ab.Parallel(ac, t) {
		return Plane{}, ErrCollinear
	}
	// Normalised by the edge lengths so tiny triangles still yield a normal.
	return NewPlane(a, ab.Cross(ac).Scale(1/(ab.Length()*ac.Length())), t)
}

// Point returns the point the plane was defined through.
func (pl Plane) Point() Point { return pl.p }

// Normal returns the unit normal.
func (pl Plane) Normal() Vector { return pl.n }

// Neg returns the same plane with the normal reversed.
func (pl Plane) Neg() Plane {
	return Plane{p: pl.p, n: pl.n.Neg()}
}

// SignedDistance returns the distance from the plane to q, positive on the
// side the normal points to.
func (pl Plane) SignedDistance(q Point) float64 {
	return VectorBetween(pl.p, q).Dot(pl.n)
}

// Contains reports whether q lies on the plane within eps.
func (pl Plane) Contains(q Point, t Tolerance) bool {
	return t.Zero(pl.SignedDistance(q))
}

// Move returns the plane displaced by v.
func (pl Plane) Move(v Vector) Plane {
	return Plane{p: pl.p.Move(v), n: pl.n}
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane(%s, %s)", pl.p, pl.n)
}
