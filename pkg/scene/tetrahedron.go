package scene

import (
	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/shade"
)

// Tetrahedron returns the canonical four-triangle scene with vertices at
// alternating corners of a 200-unit cube centered on the origin.
func Tetrahedron() *Scene {
	a := geometry.NewVector3(100, 100, 100)
	b := geometry.NewVector3(-100, -100, 100)
	c := geometry.NewVector3(-100, 100, -100)
	d := geometry.NewVector3(100, -100, -100)

	return New("tetrahedron",
		NewTriangle(a, b, c, shade.White),
		NewTriangle(a, b, d, shade.Red),
		NewTriangle(c, d, a, shade.Green),
		NewTriangle(c, d, b, shade.Blue),
	)
}
