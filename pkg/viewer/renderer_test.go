package viewer

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/shade"
)

var black = color.RGBA{0, 0, 0, 255}

func permutations(n int) [][]int {
	if n == 1 {
		return [][]int{{0}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			out = append(out, q)
		}
	}
	return out
}

func reorder(s *scene.Scene, order []int) *scene.Scene {
	out := scene.New(s.Name)
	for _, i := range order {
		out.AddTriangle(s.Triangles[i])
	}
	return out
}

func TestRenderFrameTetrahedron(t *testing.T) {
	fb := RenderFrame(400, 400, 0, 0, scene.Tetrahedron())

	if fb.Width() != 400 || fb.Height() != 400 {
		t.Fatalf("unexpected size %dx%d", fb.Width(), fb.Height())
	}
	if fb.At(200, 200) == black {
		t.Error("center pixel should be covered by the tetrahedron")
	}
	for _, p := range [][2]int{{0, 0}, {399, 0}, {0, 399}, {399, 399}} {
		if fb.At(p[0], p[1]) != black {
			t.Errorf("corner %v should be background, got %v", p, fb.At(p[0], p[1]))
		}
	}
}

func TestRenderFrameRotationIdentity(t *testing.T) {
	s := scene.Tetrahedron()
	got := RenderFrame(400, 400, 0, 0, s)

	want := NewFrameBuffer(400, 400)
	draw(want, s, DefaultOptions())

	if !bytes.Equal(got.Image().Pix, want.Image().Pix) {
		t.Error("heading=0, pitch=0 should match the untransformed projection")
	}
}

func TestRenderFrameOrderInvariance(t *testing.T) {
	s := scene.Tetrahedron()
	views := [][2]float64{{0.37, -0.52}, {2.1, 0.9}, {-1.3, 0.15}}

	for _, v := range views {
		reference := RenderFrame(160, 120, v[0], v[1], s)
		for _, order := range permutations(len(s.Triangles)) {
			fb := RenderFrame(160, 120, v[0], v[1], reorder(s, order))
			if !bytes.Equal(fb.Image().Pix, reference.Image().Pix) {
				t.Fatalf("view %v, order %v: frame differs from scene order", v, order)
			}
		}
	}
}

func TestRenderFrameNearerTriangleWins(t *testing.T) {
	near := scene.NewTriangle(
		geometry.NewVector3(-40, -40, 10), geometry.NewVector3(30, -40, 10), geometry.NewVector3(-40, 30, 10), shade.Red,
	)
	far := scene.NewTriangle(
		geometry.NewVector3(-30, -30, -10), geometry.NewVector3(40, -30, -10), geometry.NewVector3(-30, 40, -10), shade.Blue,
	)

	for _, s := range []*scene.Scene{scene.New("a", near, far), scene.New("b", far, near)} {
		fb := RenderFrame(100, 100, 0, 0, s)
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if fb.Depth(x, y) > 0 && fb.At(x, y) != shade.Red.ToRGBA() {
					t.Fatalf("%s: pixel (%d,%d) has depth %v but color %v", s.Name, x, y, fb.Depth(x, y), fb.At(x, y))
				}
			}
		}
		// (40,40) is inside both projections once centered
		if fb.At(40, 40) != shade.Red.ToRGBA() {
			t.Errorf("%s: expected red at overlap, got %v", s.Name, fb.At(40, 40))
		}
		if fb.At(70, 25) != shade.Blue.ToRGBA() {
			t.Errorf("%s: expected blue where only the far triangle lies, got %v", s.Name, fb.At(70, 25))
		}
	}
}

func TestRenderFrameDegenerateScene(t *testing.T) {
	p := geometry.NewVector3(1, 2, 3)
	s := scene.New("degenerate", scene.NewTriangle(p, p, p, shade.White))

	fb := RenderFrame(50, 50, 0.4, 0.2, s)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if fb.At(x, y) != black || !math.IsInf(fb.Depth(x, y), -1) {
				t.Fatalf("pixel (%d,%d) was written", x, y)
			}
		}
	}
}

func TestRenderFrameEmptySize(t *testing.T) {
	sizes := [][2]int{{0, 0}, {0, 10}, {10, 0}, {-5, 5}}
	for _, size := range sizes {
		fb := RenderFrame(size[0], size[1], 0, 0, scene.Tetrahedron())
		if !fb.Empty() || fb.Width() != 0 || fb.Height() != 0 {
			t.Errorf("size %v: expected empty buffer, got %dx%d", size, fb.Width(), fb.Height())
		}
	}
}

func TestRenderFrameOneByOne(t *testing.T) {
	big := scene.New("big", scene.NewTriangle(
		geometry.NewVector3(-10, -10, 0), geometry.NewVector3(10, -10, 0), geometry.NewVector3(-10, 10, 0), shade.Green,
	))
	fb := RenderFrame(1, 1, 0, 0, big)
	if fb.At(0, 0) != shade.Green.ToRGBA() {
		t.Errorf("expected single pixel to be covered, got %v", fb.At(0, 0))
	}
}

func TestRendererReusesBuffer(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	s := scene.Tetrahedron()

	first := r.Render(64, 64, 0.2, 0.1, s)
	second := r.Render(64, 64, 1.2, -0.4, s)
	if first != second {
		t.Error("expected the buffer to be reused for the same size")
	}

	fresh := RenderFrame(64, 64, 1.2, -0.4, s)
	if !bytes.Equal(second.Image().Pix, fresh.Image().Pix) {
		t.Error("reused buffer must be fully reset between frames")
	}

	resized := r.Render(32, 48, 1.2, -0.4, s)
	if resized == second || resized.Width() != 32 || resized.Height() != 48 {
		t.Errorf("expected a new %dx%d buffer", 32, 48)
	}
}

func TestRendererBackgroundAndWireframe(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	wire := color.RGBA{255, 255, 0, 255}
	r := NewRenderer(Options{Background: bg, Wireframe: true, WireColor: wire})

	fb := r.RenderView(400, 400, NewView(), scene.Tetrahedron())
	if fb.At(0, 0) != bg {
		t.Errorf("expected background %v, got %v", bg, fb.At(0, 0))
	}
	// Vertex (100, 100, 100) lands on (300, 300)
	if fb.At(300, 300) != wire {
		t.Errorf("expected outline color at a vertex, got %v", fb.At(300, 300))
	}

	opts := r.Options()
	opts.Wireframe = false
	r.SetOptions(opts)
	fb = r.RenderView(400, 400, NewView(), scene.Tetrahedron())
	if fb.At(300, 300) == wire {
		t.Error("outline should be gone after disabling the overlay")
	}
}
