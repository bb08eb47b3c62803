package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/shade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTetrahedron(t *testing.T) {
	s := Tetrahedron()
	require.Equal(t, 4, s.TriangleCount())

	colors := []shade.RGB{shade.White, shade.Red, shade.Green, shade.Blue}
	for i, tri := range s.Triangles {
		assert.Equal(t, colors[i], tri.Color, "triangle %d color", i)
		assert.False(t, tri.Geometry().Degenerate(), "triangle %d is degenerate", i)
	}

	bbox := s.BoundingBox()
	assert.Equal(t, geometry.NewVector3(-100, -100, -100), bbox.Min)
	assert.Equal(t, geometry.NewVector3(100, 100, 100), bbox.Max)

	// Regular tetrahedron with edge 200·√2: four faces of √3/4·a² each
	edge := 200 * math.Sqrt2
	assert.InDelta(t, 4*math.Sqrt(3)/4*edge*edge, s.SurfaceArea(), 1e-6)
}

func TestTransformIsPure(t *testing.T) {
	s := Tetrahedron()
	before := append([]Triangle(nil), s.Triangles...)

	rotated := s.Transform(geometry.ViewRotation(0.7, -0.3))

	assert.Equal(t, before, s.Triangles, "source scene must not change")
	require.Len(t, rotated.Triangles, len(s.Triangles))
	for i := range rotated.Triangles {
		assert.Equal(t, s.Triangles[i].Color, rotated.Triangles[i].Color)
		assert.InDelta(t, s.Triangles[i].Geometry().Area(), rotated.Triangles[i].Geometry().Area(), 1e-9)
	}

	again := s.Transform(geometry.ViewRotation(0.7, -0.3))
	assert.Equal(t, rotated.Triangles, again.Triangles, "transform must be deterministic")
}

func TestTransformIdentity(t *testing.T) {
	s := Tetrahedron()
	assert.Equal(t, s.Triangles, s.Transform(geometry.Identity3()).Triangles)
}

func TestAddTriangle(t *testing.T) {
	s := New("custom")
	assert.Equal(t, 0, s.TriangleCount())
	assert.True(t, s.BoundingBox().Empty())

	s.AddTriangle(NewTriangle(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(0, 10, 0),
		shade.Red,
	))
	assert.Equal(t, 1, s.TriangleCount())
	assert.InDelta(t, 50.0, s.SurfaceArea(), 1e-10)
}
