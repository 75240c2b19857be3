package scene

import (
	"math/rand"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	CameraConfig renderer.CameraConfig  // Recommended camera for this scene
}

// Options tweak how a scene is built
type Options struct {
	Seed       int64 // Seed for randomly laid out scenes
	Fresnel    bool  // Build glass with Schlick-weighted reflection
	MotionBlur bool  // Let scenes that support it add moving objects
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// ObjectCount returns the number of primitives in the scene, looking
// through nested lists
func (s *Scene) ObjectCount() int {
	return countObjects(s.World)
}

func countObjects(h geometry.Hittable) int {
	switch obj := h.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countObjects(child)
		}
		return count
	default:
		return 1
	}
}

// newGlass creates a dielectric honouring the Fresnel option
func newGlass(opts Options, refractiveIndex float64) *material.Dielectric {
	if opts.Fresnel {
		return material.NewFresnelDielectric(refractiveIndex)
	}
	return material.NewDielectric(refractiveIndex)
}

func randomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

func randomColor(random *rand.Rand) core.Color {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorRange(random *rand.Rand, min, max float64) core.Color {
	return core.NewVec3(
		randomRange(random, min, max),
		randomRange(random, min, max),
		randomRange(random, min, max),
	)
}
