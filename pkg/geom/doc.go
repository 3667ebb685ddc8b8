// Package geom provides the immutable 3D primitives that facet builds solids
// from: points, vectors, segments, planes, convex polygons and pyramids.
// Coordinates are stored as sdfx vectors. Every floating-point decision goes
// through an explicit Tolerance value rather than a package-level setting.
package geom
