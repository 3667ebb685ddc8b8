// Package scene defines the scene graph produced by evaluating a facet
// program: named convex solids, translations that place them, and groups
// that collect them. The scene is an immutable DAG; each evaluation builds
// a new one.
package scene
