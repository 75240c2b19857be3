package output

import (
	"fmt"
	"image"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// Framebuffer collects a whole image of linear colors in memory
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Color // Row-major, top row first
}

// NewFramebuffer creates an empty framebuffer; the size is set by Start
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Start allocates storage for a width x height image
func (fb *Framebuffer) Start(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]core.Color, width*height)
	return nil
}

// WriteRow stores row y
func (fb *Framebuffer) WriteRow(y int, row []core.Color) error {
	if y < 0 || y >= fb.Height || len(row) != fb.Width {
		return fmt.Errorf("row %d of width %d does not fit %dx%d framebuffer", y, len(row), fb.Width, fb.Height)
	}
	copy(fb.Pixels[y*fb.Width:], row)
	return nil
}

// At returns the linear color at (x, y)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Image returns the gamma-encoded 8-bit image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(fb.At(x, y)))
		}
	}
	return img
}
