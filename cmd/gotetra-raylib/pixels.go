package main

import (
	"image"
	"image/color"
)

// toColors copies the image's pixels row by row into dst, growing it as needed
func toColors(dst []color.RGBA, img *image.RGBA) []color.RGBA {
	width, height := img.Rect.Dx(), img.Rect.Dy()
	n := width * height
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			dst[y*width+x] = color.RGBA{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
		}
	}
	return dst
}
