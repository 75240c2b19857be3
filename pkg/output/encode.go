package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for image formats without an encoder
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output image encoding
type Format string

// Supported output formats
const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat resolves a format name, ignoring case
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG, FormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes fb to w in the requested format
func Encode(w io.Writer, fb *Framebuffer, format Format) error {
	switch format {
	case FormatPPM:
		ppm := NewPPMWriter(w)
		if err := ppm.Start(fb.Width, fb.Height); err != nil {
			return err
		}
		for y := 0; y < fb.Height; y++ {
			if err := ppm.WriteRow(y, fb.Pixels[y*fb.Width:(y+1)*fb.Width]); err != nil {
				return err
			}
		}
		return ppm.Flush()
	case FormatPNG:
		return png.Encode(w, fb.Image())
	case FormatBMP:
		return bmp.Encode(w, fb.Image())
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
