// Package polyhedron builds closed convex solids from convex planar faces and
// keeps them consistent.
//
// Construction derives the vertex and edge sets, the vertex-averaged
// centroid and one pyramid per face (apex at the centroid). Faces whose
// normal points towards the centroid are flipped, then two invariants are
// checked:
//
//   - orientation: (face point - centroid) · face normal >= -eps for every face
//   - closure: V - E + F == 2 (Euler's formula for a genus-0 surface)
//
// A *ConvexPolyhedron is immutable. Translate returns a new, re-validated
// solid and never modifies its receiver, so every method is safe for
// concurrent use.
//
// Limitations:
//
//   - The checks are necessary, not sufficient. A face set describing a
//     non-convex or self-intersecting solid can satisfy both by coincidence
//     and is then accepted; callers must supply the faces of a convex solid.
//   - Vertices and edges are deduplicated by coordinates rounded to the
//     tolerance's digits. Two coordinates within eps of each other that round
//     to different values (a rounding boundary) count as distinct vertices,
//     which usually makes the closure check fail.
//   - Hash is approximate in the same way: Equal solids hash equal except at
//     rounding boundaries, and distinct solids may collide.
package polyhedron
