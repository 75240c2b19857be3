package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// PPMWriter streams a plain-text (P3) PPM image as rows arrive
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM sink writing to w. Call Flush when the
// render is done.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Start writes the PPM header
func (p *PPMWriter) Start(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WriteRow writes one "r g b" line per pixel
func (p *PPMWriter) WriteRow(_ int, row []core.Color) error {
	for _, c := range row {
		r, g, b := ToBytes(c)
		if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}
