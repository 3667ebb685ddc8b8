package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is a location in 3D space.
type Point struct {
	p v3.Vec
}

// PointKey is a point's coordinates rounded to the tolerance's digits. Two
// points with the same key are the same vertex for deduplication purposes.
type PointKey [3]float64

// NewPoint creates a point from its coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{p: v3.Vec{X: x, Y: y, Z: z}}
}

// Origin returns (0, 0, 0).
func Origin() Point {
	return Point{}
}

func (p Point) X() float64 { return p.p.X }
func (p Point) Y() float64 { return p.p.Y }
func (p Point) Z() float64 { return p.p.Z }

// Vec returns the underlying sdfx vector.
func (p Point) Vec() v3.Vec { return p.p }

// Move returns p displaced by v.
func (p Point) Move(v Vector) Point {
	return Point{p: p.p.Add(v.v)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return q.p.Sub(p.p).Length()
}

// Equal reports whether every coordinate of p and q agrees within eps.
func (p Point) Equal(q Point, t Tolerance) bool {
	return t.Equal(p.p.X, q.p.X) && t.Equal(p.p.Y, q.p.Y) && t.Equal(p.p.Z, q.p.Z)
}

// Key returns the rounded coordinates of p.
func (p Point) Key(t Tolerance) PointKey {
	return PointKey{t.Round(p.p.X), t.Round(p.p.Y), t.Round(p.p.Z)}
}

// Hash returns a hash of the rounded coordinates, consistent with Key.
func (p Point) Hash(t Tolerance) uint64 {
	return t.hashRounded("point", p.p.X, p.p.Y, p.p.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.p.X, p.p.Y, p.p.Z)
}

// Mean returns the coordinate-wise average of points.
func Mean(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNoPoints
	}
	var sum v3.Vec
	for _, p := range points {
		sum = sum.Add(p.p)
	}
	return Point{p: sum.MulScalar(1 / float64(len(points)))}, nil
}
