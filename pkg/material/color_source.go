package material

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Point) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Point) core.Color {
	return s.Color
}

// Checker alternates two colors on a 3D lattice of cubes with edge Scale
type Checker struct {
	Scale     float64
	Even, Odd core.Color
	invScale  float64
}

// NewChecker creates a spatial checker pattern
func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd, invScale: 1.0 / scale}
}

// Evaluate picks Even or Odd from the parity of the lattice cell containing point
func (c *Checker) Evaluate(point core.Point) core.Color {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
