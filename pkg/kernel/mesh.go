package kernel

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which scene node this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddVertex appends a vertex with its normal and returns its index.
func (m *Mesh) AddVertex(x, y, z, nx, ny, nz float64) uint32 {
	i := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, float32(x), float32(y), float32(z))
	m.Normals = append(m.Normals, float32(nx), float32(ny), float32(nz))
	return i
}

// AddTriangle appends a triangle by vertex index.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// SurfaceArea sums the triangle areas.
func (m *Mesh) SurfaceArea() float64 {
	var total float64
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.vertex(m.Indices[t])
		b := m.vertex(m.Indices[t+1])
		c := m.vertex(m.Indices[t+2])
		u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		v := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		x := u[1]*v[2] - u[2]*v[1]
		y := u[2]*v[0] - u[0]*v[2]
		z := u[0]*v[1] - u[1]*v[0]
		total += math.Sqrt(x*x+y*y+z*z) / 2
	}
	return total
}

// Bounds returns the axis-aligned bounds of the vertices. Both are zero for
// an empty mesh.
func (m *Mesh) Bounds() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	min = m.vertex(0)
	max = min
	for i := 1; i < m.VertexCount(); i++ {
		v := m.vertex(uint32(i))
		for k := range v {
			min[k] = math.Min(min[k], v[k])
			max[k] = math.Max(max[k], v[k])
		}
	}
	return min, max
}

func (m *Mesh) vertex(i uint32) [3]float64 {
	return [3]float64{
		float64(m.Vertices[3*i]),
		float64(m.Vertices[3*i+1]),
		float64(m.Vertices[3*i+2]),
	}
}
