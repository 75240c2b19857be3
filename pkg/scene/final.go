package scene

import (
	"math/rand"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
)

// Small objects are laid out on a 22x22 grid of unit cells
const (
	gridMin         = -11
	gridMax         = 11
	smallRadius     = 0.2
	clearanceRadius = 0.9
)

// tetraOffsets place a small tetrahedron's vertices around its grid point:
// apex first, then the three base vertices
var tetraOffsets = [4]core.Vec3{
	{X: 0, Y: 0.2, Z: 0},
	{X: -0.173, Y: -0.1, Z: 0.1},
	{X: 0.173, Y: -0.1, Z: 0.1},
	{X: 0, Y: -0.1, Z: -0.2},
}

// NewFinalScene creates the cover scene: a large ground sphere, a field of
// small random spheres and tetrahedra, and three large feature spheres
func NewFinalScene(opts Options) *Scene {
	random := rand.New(rand.NewSource(opts.Seed))
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the grid clear around the metal feature sphere
	clearance := core.NewVec3(4, 0.2, 0)

	for a := gridMin; a < gridMax; a++ {
		for b := gridMin; b < gridMax; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), smallRadius, float64(b)+0.9*random.Float64())

			if center.Subtract(clearance).Length() <= clearanceRadius {
				continue
			}

			world.Add(newSmallObject(random, opts, chooseMat, center))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, newGlass(opts, 1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Name:  "final",
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      1920,
			SamplesPerPixel: 500,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.8,
			FocusDist:       10.0,
			MotionBlur:      opts.MotionBlur,
		},
	}
}

// newSmallObject picks the material and shape of one grid object:
// 70% diffuse spheres, 15% metal, 10% glass and 5% diffuse tetrahedra
func newSmallObject(random *rand.Rand, opts Options, chooseMat float64, center core.Point) geometry.Hittable {
	switch {
	case chooseMat < 0.70:
		albedo := randomColor(random).MultiplyVec(randomColor(random))
		diffuse := material.NewLambertian(albedo)
		if opts.MotionBlur {
			bounce := core.NewVec3(0, randomRange(random, 0, 0.5), 0)
			return geometry.NewMovingSphere(center, center.Add(bounce), smallRadius, diffuse)
		}
		return geometry.NewSphere(center, smallRadius, diffuse)
	case chooseMat < 0.85:
		albedo := randomColorRange(random, 0.5, 1)
		fuzz := randomRange(random, 0, 0.5)
		return geometry.NewSphere(center, smallRadius, material.NewMetal(albedo, fuzz))
	case chooseMat < 0.95:
		return geometry.NewSphere(center, smallRadius, newGlass(opts, 1.5))
	default:
		albedo := randomColor(random).MultiplyVec(randomColor(random))
		return newTetrahedronAt(center, material.NewLambertian(albedo))
	}
}

func newTetrahedronAt(center core.Point, mat material.Material) *geometry.Tetrahedron {
	return geometry.NewTetrahedron(
		center.Add(tetraOffsets[0]),
		center.Add(tetraOffsets[1]),
		center.Add(tetraOffsets[2]),
		center.Add(tetraOffsets[3]),
		mat,
	)
}
