package polyhedron

import "github.com/chazu/facet/pkg/geom"

type options struct {
	tol geom.Tolerance
}

// Option configures New and Parallelepiped.
type Option func(*options)

// WithTolerance sets the numeric policy used for orientation, containment,
// deduplication and hashing. The default is geom.DefaultTolerance().
func WithTolerance(t geom.Tolerance) Option {
	return func(o *options) { o.tol = t }
}

func gatherOptions(opts []Option) options {
	o := options{tol: geom.DefaultTolerance()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
