package integrator

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray from world.
	// The sampler must not be shared with other goroutines.
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color
}

// Background returns the radiance seen by a ray that escapes the scene
type Background func(ray core.Ray) core.Color

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// SkyGradient blends from white (looking straight down) to light blue
// (looking straight up) by the height of the unit ray direction
func SkyGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.UnitVector()
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, a)
}
