package geom

import "fmt"

// Segment is the straight line between two distinct points. Segments are
// undirected: (a, b) and (b, a) are equal and share a key.
type Segment struct {
	a, b Point
}

// SegmentKey identifies an undirected segment by its sorted endpoint keys.
type SegmentKey [2]PointKey

// NewSegment creates a segment, rejecting coincident endpoints.
func NewSegment(a, b Point, t Tolerance) (Segment, error) {
	if a.Equal(b, t) {
		return Segment{}, fmt.Errorf("%w: %s", ErrDegenerateSegment, a)
	}
	return Segment{a: a, b: b}, nil
}

func (s Segment) Start() Point { return s.a }
func (s Segment) End() Point   { return s.b }

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.a.Distance(s.b)
}

// Vector returns the vector from Start to End.
func (s Segment) Vector() Vector {
	return VectorBetween(s.a, s.b)
}

// Move returns s displaced by v.
func (s Segment) Move(v Vector) Segment {
	return Segment{a: s.a.Move(v), b: s.b.Move(v)}
}

// Equal reports whether s and o join the same endpoints in either direction.
func (s Segment) Equal(o Segment, t Tolerance) bool {
	return (s.a.Equal(o.a, t) && s.b.Equal(o.b, t)) ||
		(s.a.Equal(o.b, t) && s.b.Equal(o.a, t))
}

// Key returns the direction-independent key of s.
func (s Segment) Key(t Tolerance) SegmentKey {
	ka, kb := s.a.Key(t), s.b.Key(t)
	if lessKey(kb, ka) {
		ka, kb = kb, ka
	}
	return SegmentKey{ka, kb}
}

// Hash returns a direction-independent hash consistent with Key.
func (s Segment) Hash(t Tolerance) uint64 {
	return Combine("segment", s.a.Hash(t)+s.b.Hash(t))
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s, %s)", s.a, s.b)
}

func lessKey(a, b PointKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
