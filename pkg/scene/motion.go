package scene

import (
	"math/rand"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
)

// NewMotionScene creates a smaller field of bouncing diffuse spheres
// rendered with motion blur. Motion blur is always on for this scene.
func NewMotionScene(opts Options) *Scene {
	random := rand.New(rand.NewSource(opts.Seed))

	checker := material.NewChecker(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), smallRadius, float64(b)+0.9*random.Float64())
			albedo := randomColor(random).MultiplyVec(randomColor(random))
			bounce := core.NewVec3(0, randomRange(random, 0, 0.5), 0)
			world.Add(geometry.NewMovingSphere(center, center.Add(bounce), smallRadius, material.NewLambertian(albedo)))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, newGlass(opts, 1.5)))

	return &Scene{
		Name:  "motion",
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10.0,
			MotionBlur:      true,
		},
	}
}
