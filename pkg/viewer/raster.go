package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/shade"
)

// FacingFactor is |n·z| for the unit normal n, or 0 when no normal exists.
// Both sides of a triangle are lit the same.
func FacingFactor(t geometry.Triangle) float64 {
	normal, ok := t.Normal()
	if !ok {
		return 0
	}
	return math.Abs(normal.Z)
}

// signedArea returns the doubled signed area of the triangle's x,y projection
func signedArea(v1, v2, v3 geometry.Vector3) float64 {
	return (v1.Y-v3.Y)*(v2.X-v3.X) + (v2.Y-v3.Y)*(v3.X-v1.X)
}

// barycentric returns the weights of (px, py) relative to the projected
// triangle, given its doubled signed area. area must be non-zero.
func barycentric(v1, v2, v3 geometry.Vector3, area, px, py float64) (b1, b2, b3 float64) {
	b1 = ((py-v3.Y)*(v2.X-v3.X) + (v2.Y-v3.Y)*(v3.X-px)) / area
	b2 = ((py-v1.Y)*(v3.X-v1.X) + (v3.Y-v1.Y)*(v1.X-px)) / area
	b3 = ((py-v2.Y)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v2.X-px)) / area
	return b1, b2, b3
}

func inUnit(b float64) bool {
	return b >= 0 && b <= 1
}

// pixelBounds returns the inclusive pixel range covering the projected
// triangle, clamped to the buffer. ok is false when nothing is on screen.
func pixelBounds(v1, v2, v3 geometry.Vector3, width, height int) (minX, minY, maxX, maxY int, ok bool) {
	loX := math.Max(0, math.Floor(math.Min(v1.X, math.Min(v2.X, v3.X))))
	hiX := math.Min(float64(width-1), math.Ceil(math.Max(v1.X, math.Max(v2.X, v3.X))))
	loY := math.Max(0, math.Floor(math.Min(v1.Y, math.Min(v2.Y, v3.Y))))
	hiY := math.Min(float64(height-1), math.Ceil(math.Max(v1.Y, math.Max(v2.Y, v3.Y))))

	if loX > hiX || loY > hiY {
		return 0, 0, 0, 0, false
	}
	return int(loX), int(loY), int(hiX), int(hiY), true
}

// fillTriangle rasterizes a screen-space triangle into fb with a flat color,
// keeping a pixel only where its interpolated depth beats the stored one.
// It returns the number of pixels written.
func fillTriangle(fb *FrameBuffer, v1, v2, v3 geometry.Vector3, col color.RGBA) int {
	if fb.Empty() {
		return 0
	}

	area := signedArea(v1, v2, v3)
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return 0
	}

	minX, minY, maxX, maxY, ok := pixelBounds(v1, v2, v3, fb.Width(), fb.Height())
	if !ok {
		return 0
	}

	written := 0
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			b1, b2, b3 := barycentric(v1, v2, v3, area, float64(x)+0.5, py)
			if !inUnit(b1) || !inUnit(b2) || !inUnit(b3) {
				continue
			}
			z := b1*v1.Z + b2*v2.Z + b3*v3.Z
			if fb.plot(x, y, z, col) {
				written++
			}
		}
	}
	return written
}

// rasterize draws one view-space triangle, centering it in the buffer and
// shading it by how directly it faces the viewer.
func rasterize(fb *FrameBuffer, t scene.Triangle) int {
	dx := float64(fb.Width()) / 2
	dy := float64(fb.Height()) / 2
	v1 := t.V1.Translate(dx, dy)
	v2 := t.V2.Translate(dx, dy)
	v3 := t.V3.Translate(dx, dy)

	col := shade.Shade(t.Color, FacingFactor(t.Geometry())).ToRGBA()
	return fillTriangle(fb, v1, v2, v3, col)
}

// outline draws the projected edges of a view-space triangle without depth testing
func outline(fb *FrameBuffer, t scene.Triangle, col color.RGBA) {
	dx := float64(fb.Width()) / 2
	dy := float64(fb.Height()) / 2
	pts := [3]geometry.Vector3{t.V1.Translate(dx, dy), t.V2.Translate(dx, dy), t.V3.Translate(dx, dy)}

	for i := 0; i < 3; i++ {
		a, b := pts[i], pts[(i+1)%3]
		if !finite(a) || !finite(b) {
			continue
		}
		drawLine(fb.img, int(math.Floor(a.X)), int(math.Floor(a.Y)), int(math.Floor(b.X)), int(math.Floor(b.Y)), col)
	}
}

func finite(v geometry.Vector3) bool {
	const limit = 1 << 24
	return math.Abs(v.X) < limit && math.Abs(v.Y) < limit
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
