package geom

import "errors"

var (
	// ErrBadTolerance indicates a Tolerance with a non-positive eps or an
	// out-of-range digit count.
	ErrBadTolerance = errors.New("geom: tolerance needs a positive finite eps and 0..15 digits")
	// ErrNoPoints indicates an operation that needs at least one point got none.
	ErrNoPoints = errors.New("geom: no points given")
	// ErrTooFewPoints indicates fewer than three distinct polygon vertices.
	ErrTooFewPoints = errors.New("geom: a polygon needs at least three distinct points")
	// ErrCollinear indicates all polygon vertices lie on one line.
	ErrCollinear = errors.New("geom: points are collinear")
	// ErrNotPlanar indicates a polygon vertex lies off the polygon's plane.
	ErrNotPlanar = errors.New("geom: points are not coplanar")
	// ErrNotConvex indicates a reflex or redundant polygon vertex.
	ErrNotConvex = errors.New("geom: points do not form a strictly convex polygon")
	// ErrZeroVector indicates a vector whose length is within eps of zero.
	ErrZeroVector = errors.New("geom: zero-length vector")
	// ErrParallel indicates two vectors that were required to span a plane are parallel.
	ErrParallel = errors.New("geom: vectors are parallel")
	// ErrDegenerateSegment indicates a segment whose endpoints coincide.
	ErrDegenerateSegment = errors.New("geom: segment endpoints coincide")
	// ErrDegeneratePyramid indicates a pyramid apex lying on its base plane.
	ErrDegeneratePyramid = errors.New("geom: pyramid apex lies on the base plane")
)
