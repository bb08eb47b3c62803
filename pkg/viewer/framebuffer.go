package viewer

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer is a color image plus a parallel depth array of the same size.
// Larger depth values are closer to the viewer.
type FrameBuffer struct {
	img   *image.RGBA
	depth []float64
}

// NewFrameBuffer allocates a cleared buffer. A non-positive size yields an
// empty buffer with no pixels.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 1 || height < 1 {
		width, height = 0, 0
	}
	fb := &FrameBuffer{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	fb.Reset(color.RGBA{A: 255})
	return fb
}

// Width returns the width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Empty reports whether the buffer has no pixels
func (fb *FrameBuffer) Empty() bool {
	return len(fb.depth) == 0
}

// Image returns the color plane. Callers must treat it as read-only.
func (fb *FrameBuffer) Image() *image.RGBA {
	return fb.img
}

// At returns the color at (x, y)
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	return fb.img.RGBAAt(x, y)
}

// Depth returns the stored depth at (x, y); -Inf means nothing was drawn there.
func (fb *FrameBuffer) Depth(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return math.Inf(-1)
	}
	return fb.depth[y*fb.Width()+x]
}

// Reset fills every pixel with bg and every depth entry with -Inf
func (fb *FrameBuffer) Reset(bg color.RGBA) {
	pix := fb.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
	negInf := math.Inf(-1)
	for i := range fb.depth {
		fb.depth[i] = negInf
	}
}

// sameSize reports whether the buffer can be reused for the given size
func (fb *FrameBuffer) sameSize(width, height int) bool {
	return fb.Width() == width && fb.Height() == height
}

// plot writes col at (x, y) if z is strictly closer than what is stored there
func (fb *FrameBuffer) plot(x, y int, z float64, col color.RGBA) bool {
	idx := y*fb.Width() + x
	if !(z > fb.depth[idx]) {
		return false
	}
	fb.depth[idx] = z
	offset := fb.img.PixOffset(x, y)
	fb.img.Pix[offset] = col.R
	fb.img.Pix[offset+1] = col.G
	fb.img.Pix[offset+2] = col.B
	fb.img.Pix[offset+3] = col.A
	return true
}
