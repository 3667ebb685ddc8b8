package polyhedron

import (
	"testing"

	"github.com/chazu/facet/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelepipedSheared(t *testing.T) {
	v1 := geom.NewVector(2, 0, 0)
	v2 := geom.NewVector(1, 1, 0)
	v3 := geom.NewVector(0, 0.5, 3)

	ph, err := Parallelepiped(geom.NewPoint(-1, 4, 2), v1, v2, v3)
	require.NoError(t, err)

	assert.Equal(t, 8, ph.NumVertices())
	assert.Equal(t, 12, ph.NumEdges())
	assert.Equal(t, 6, ph.NumFaces())
	assert.InDelta(t, 6.0, ph.Volume(), 1e-9)
	assert.True(t, ph.ContainsPoint(ph.Centroid()))
	requireOutward(t, ph)
}

func TestParallelepipedVolumeMatchesTripleProduct(t *testing.T) {
	cases := [][3]geom.Vector{
		{geom.NewVector(1, 0, 0), geom.NewVector(0, 2, 0), geom.NewVector(0, 0, 3)},
		{geom.NewVector(0, 0, 1), geom.NewVector(1, 0, 0), geom.NewVector(0, 1, 0)},
		{geom.NewVector(1, 1, 0), geom.NewVector(-1, 1, 0), geom.NewVector(0.2, 0.3, 1)},
	}
	for _, vs := range cases {
		ph, err := Parallelepiped(geom.Origin(), vs[0], vs[1], vs[2])
		require.NoError(t, err)
		triple := vs[0].Dot(vs[1].Cross(vs[2]))
		if triple < 0 {
			triple = -triple
		}
		assert.InDelta(t, triple, ph.Volume(), 1e-9)
		assert.Greater(t, ph.Volume(), 0.0)
	}
}

func TestParallelepipedInvalid(t *testing.T) {
	x := geom.NewVector(1, 0, 0)
	y := geom.NewVector(0, 1, 0)
	z := geom.NewVector(0, 0, 1)
	zero := geom.NewVector(0, 0, 0)

	tests := []struct {
		name       string
		v1, v2, v3 geom.Vector
	}{
		{"zero v1", zero, y, z},
		{"zero v3", x, y, zero},
		{"v1 equals v2", x, x, z},
		{"v2 parallel v3", x, y, y.Scale(-2)},
		{"coplanar", x, y, x.Add(y)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph, err := Parallelepiped(geom.Origin(), tt.v1, tt.v2, tt.v3)
			assert.Nil(t, ph)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestParallelepipedScales(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
	}{
		{"tenth micro", 1e-5},
		{"small", 1e-4},
		{"unit", 1},
		{"large", 1e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.scale
			ph, err := Parallelepiped(geom.Origin(),
				geom.NewVector(s, 0, 0), geom.NewVector(0, s, 0), geom.NewVector(0, 0, s))
			require.NoError(t, err)

			assert.Equal(t, 8, ph.NumVertices())
			assert.Equal(t, 12, ph.NumEdges())
			assert.Equal(t, 6, ph.NumFaces())
			assert.InEpsilon(t, s*s*s, ph.Volume(), 1e-9)
			assert.InEpsilon(t, 6*s*s, ph.Area(), 1e-9)
			requireOutward(t, ph)

			// Coplanar vectors are still rejected at the same scale.
			_, err = Parallelepiped(geom.Origin(),
				geom.NewVector(s, 0, 0), geom.NewVector(0, s, 0), geom.NewVector(s, s, 0))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
