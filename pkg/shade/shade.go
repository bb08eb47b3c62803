// Package shade holds the RGB value type and the flat, gamma-aware shading
// used by the rasterizer.
package shade

import (
	"fmt"
	"image/color"
	"math"
)

// Gamma is the exponent used to move between display and linear light.
const Gamma = 2.4

// RGB is a base color with 8-bit channels. It carries no alpha and is kept
// separate from the display color the framebuffer stores.
type RGB struct {
	R, G, B uint8
}

// Common base colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// FromColor converts any color.Color into an RGB, dropping alpha
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// FromArray converts an [r, g, b] triple, as stored in config files
func FromArray(c [3]uint8) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// ToRGBA converts to an opaque display color
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade darkens base by the facing factor in linear light: each channel is
// raised to Gamma, scaled by facing, and raised back to 1/Gamma.
// facing is clamped to [0, 1]; NaN counts as 0.
func Shade(base RGB, facing float64) RGB {
	if math.IsNaN(facing) || facing < 0 {
		facing = 0
	} else if facing > 1 {
		facing = 1
	}

	return RGB{
		R: shadeChannel(base.R, facing),
		G: shadeChannel(base.G, facing),
		B: shadeChannel(base.B, facing),
	}
}

func shadeChannel(v uint8, facing float64) uint8 {
	linear := math.Pow(float64(v), Gamma) * facing
	display := math.Round(math.Pow(linear, 1/Gamma))
	if display < 0 {
		return 0
	}
	if display > 255 {
		return 255
	}
	return uint8(display)
}
