package renderer

import (
	"image"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// Framebuffer holds the linear colors of a finished pass. Row 0 is the
// top of the image.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major, Width*Height entries
}

// NewFramebuffer allocates a transparent black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// Set stores the color at image coordinates (x, y)
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// At returns the color at image coordinates (x, y)
func (f *Framebuffer) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Apply replaces every pixel with fn(pixel)
func (f *Framebuffer) Apply(fn func(core.Color) core.Color) {
	for i, c := range f.Pixels {
		f.Pixels[i] = fn(c)
	}
}

// ToRGBA converts to 8 bits per channel without gamma correction
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).ToRGBA())
		}
	}
	return img
}
