package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vector is a 3D displacement. It is a value type; every operation returns
// a new Vector.
type Vector struct {
	v v3.Vec
}

// NewVector creates a vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{v: v3.Vec{X: x, Y: y, Z: z}}
}

// VectorBetween returns the vector pointing from a to b.
func VectorBetween(a, b Point) Vector {
	return Vector{v: b.p.Sub(a.p)}
}

// VectorFrom wraps an sdfx vector.
func VectorFrom(v v3.Vec) Vector {
	return Vector{v: v}
}

func (v Vector) X() float64 { return v.v.X }
func (v Vector) Y() float64 { return v.v.Y }
func (v Vector) Z() float64 { return v.v.Z }

// Vec returns the underlying sdfx vector.
func (v Vector) Vec() v3.Vec { return v.v }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v: v.v.Add(w.v)} }

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector { return Vector{v: v.v.Sub(w.v)} }

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector { return Vector{v: v.v.MulScalar(k)} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{v: v.v.Neg()} }

// Dot returns the dot product v · w.
func (v Vector) Dot(w Vector) float64 { return v.v.Dot(w.v) }

// Cross returns the cross product v × w.
func (v Vector) Cross(w Vector) Vector { return Vector{v: v.v.Cross(w.v)} }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return v.v.Length() }

// Unit returns v scaled to length one, or ErrZeroVector.
func (v Vector) Unit(t Tolerance) (Vector, error) {
	l := v.Length()
	if t.Zero(l) {
		return Vector{}, ErrZeroVector
	}
	return v.Scale(1 / l), nil
}

// IsZero reports whether the length of v is within eps of zero.
func (v Vector) IsZero(t Tolerance) bool {
	return t.Zero(v.Length())
}

// Parallel reports whether v and w are parallel or anti-parallel: the sine
// of the angle between them is within eps of zero. A zero vector is parallel
// to everything.
func (v Vector) Parallel(w Vector, t Tolerance) bool {
	return v.Cross(w).Length() <= t.Eps*v.Length()*w.Length()
}

// Equal reports whether every component of v and w agrees within eps.
func (v Vector) Equal(w Vector, t Tolerance) bool {
	return t.Equal(v.v.X, w.v.X) && t.Equal(v.v.Y, w.v.Y) && t.Equal(v.v.Z, w.v.Z)
}

// Hash returns a hash of the rounded components.
func (v Vector) Hash(t Tolerance) uint64 {
	return t.hashRounded("vector", v.v.X, v.v.Y, v.v.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.v.X, v.v.Y, v.v.Z)
}
