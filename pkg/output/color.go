// Package output turns linear render results into image files.
package output

import (
	"image/color"
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// intensity keeps quantized channels below 256
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies a gamma 2 transfer curve
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToBytes converts a linear color into 8-bit gamma-encoded channels
func ToBytes(c core.Color) (r, g, b uint8) {
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// ToRGBA converts a linear color to an opaque RGBA pixel
func ToRGBA(c core.Color) color.RGBA {
	r, g, b := ToBytes(c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func quantize(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}
