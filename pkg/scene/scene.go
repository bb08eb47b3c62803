// Package scene holds the ordered list of colored triangles that gets
// rendered each frame.
package scene

import (
	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/shade"
)

// Triangle is a triangle with a flat base color
type Triangle struct {
	V1, V2, V3 geometry.Vector3
	Color      shade.RGB
}

// NewTriangle creates a new colored triangle
func NewTriangle(v1, v2, v3 geometry.Vector3, color shade.RGB) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3, Color: color}
}

// Geometry returns the triangle without its color
func (t Triangle) Geometry() geometry.Triangle {
	return geometry.NewTriangle(t.V1, t.V2, t.V3)
}

// Transform returns a copy with every vertex multiplied by m; the color is kept
func (t Triangle) Transform(m geometry.Matrix3) Triangle {
	return Triangle{
		V1:    m.Transform(t.V1),
		V2:    m.Transform(t.V2),
		V3:    m.Transform(t.V3),
		Color: t.Color,
	}
}

// Scene is an ordered list of triangles. Order carries no geometric meaning;
// the depth buffer resolves occlusion.
type Scene struct {
	Name      string
	Triangles []Triangle
}

// New creates a scene holding the given triangles in order
func New(name string, triangles ...Triangle) *Scene {
	s := &Scene{
		Name:      name,
		Triangles: make([]Triangle, 0, len(triangles)),
	}
	s.Triangles = append(s.Triangles, triangles...)
	return s
}

// AddTriangle appends a triangle to the scene
func (s *Scene) AddTriangle(triangle Triangle) {
	s.Triangles = append(s.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the scene
func (s *Scene) TriangleCount() int {
	return len(s.Triangles)
}

// Transform applies m to every vertex and returns a new scene with the same
// colors and order. The receiver is not modified.
func (s *Scene) Transform(m geometry.Matrix3) *Scene {
	out := &Scene{
		Name:      s.Name,
		Triangles: make([]Triangle, len(s.Triangles)),
	}
	for i, t := range s.Triangles {
		out.Triangles[i] = t.Transform(m)
	}
	return out
}

// BoundingBox calculates the bounding box of the entire scene
func (s *Scene) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range s.Triangles {
		bbox.ExtendTriangle(triangle.Geometry())
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the scene
func (s *Scene) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range s.Triangles {
		totalArea += triangle.Geometry().Area()
	}
	return totalArea
}
