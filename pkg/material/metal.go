package material

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// maxFuzz is the largest fuzz factor a Metal accepts, just below 1
var maxFuzz = math.Nextafter(1, 0)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Color // Metal color
	Fuzz   float64    // 0.0 = perfect mirror, towards 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1).
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz >= 1.0 {
		fuzz = maxFuzz
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)

	// Perturbation scales with the reflected length, so the spread is the
	// same for any incoming ray length
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz * reflected.Length()))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// Fuzzed rays that end up below the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
