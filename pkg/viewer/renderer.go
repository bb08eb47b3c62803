// Package viewer turns a scene and two view angles into pixels, using a
// software rasterizer with a depth buffer.
package viewer

import (
	"image/color"

	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/scene"
)

// Options control how a frame is drawn around the shaded triangles
type Options struct {
	Background color.RGBA
	Wireframe  bool
	WireColor  color.RGBA
}

// DefaultOptions returns a black background with the outline overlay off
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{A: 255},
		WireColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// RenderFrame renders s rotated by heading then pitch (radians) into a new
// width×height buffer with default options. A non-positive size returns an
// empty buffer.
func RenderFrame(width, height int, heading, pitch float64, s *scene.Scene) *FrameBuffer {
	fb := NewFrameBuffer(width, height)
	draw(fb, s.Transform(geometry.ViewRotation(heading, pitch)), DefaultOptions())
	return fb
}

// Renderer renders frames into one buffer that it reuses while the size
// stays the same. It is not safe for concurrent use.
type Renderer struct {
	opts Options
	fb   *FrameBuffer
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the current options
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions replaces the options used for subsequent frames
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// Render draws a frame. The returned buffer is owned by the renderer and is
// overwritten by the next call.
func (r *Renderer) Render(width, height int, heading, pitch float64, s *scene.Scene) *FrameBuffer {
	if r.fb == nil || !r.fb.sameSize(max(width, 0), max(height, 0)) {
		r.fb = NewFrameBuffer(width, height)
	}
	if r.fb.Empty() {
		return r.fb
	}
	r.fb.Reset(r.opts.Background)
	draw(r.fb, s.Transform(geometry.ViewRotation(heading, pitch)), r.opts)
	return r.fb
}

// RenderView draws a frame for the given view state
func (r *Renderer) RenderView(width, height int, v *View, s *scene.Scene) *FrameBuffer {
	return r.Render(width, height, v.Heading, v.Pitch, s)
}

// draw rasterizes every view-space triangle in order, then the outline overlay
func draw(fb *FrameBuffer, viewSpace *scene.Scene, opts Options) {
	if fb.Empty() {
		return
	}
	for _, t := range viewSpace.Triangles {
		rasterize(fb, t)
	}
	if opts.Wireframe {
		for _, t := range viewSpace.Triangles {
			outline(fb, t, opts.WireColor)
		}
	}
}
