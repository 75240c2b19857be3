package scene

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
)

// NewSingleSphereScene creates one diffuse sphere under the sky
func NewSingleSphereScene(opts Options) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.ImageWidth = 400
	cameraConfig.SamplesPerPixel = 50
	cameraConfig.MotionBlur = opts.MotionBlur

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	return &Scene{Name: "single-sphere", World: world, CameraConfig: cameraConfig}
}

// NewMaterialsScene lines up a hollow glass sphere, a diffuse sphere and a
// brushed metal sphere on a large ground sphere
func NewMaterialsScene(opts Options) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := newGlass(opts, 1.5)
	bubble := newGlass(opts, 1.0/1.5) // Air inside the glass shell
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, metal),
	)

	return &Scene{
		Name:  "materials",
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(-2, 2, 1),
			LookAt:          core.NewVec3(0, 0, -1),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    10.0,
			FocusDist:       3.4,
			MotionBlur:      opts.MotionBlur,
		},
	}
}

// NewTetrahedraScene shows tetrahedra of each material on a checkered floor,
// including one with its vertices listed in reverse order
func NewTetrahedraScene(opts Options) *Scene {
	checker := material.NewChecker(0.5, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	floor := material.NewTexturedLambertian(checker)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, floor),
	)

	tetrahedron := func(center core.Point, size float64, mat material.Material) *geometry.Tetrahedron {
		return geometry.NewTetrahedron(
			center.Add(tetraOffsets[0].Multiply(size)),
			center.Add(tetraOffsets[1].Multiply(size)),
			center.Add(tetraOffsets[2].Multiply(size)),
			center.Add(tetraOffsets[3].Multiply(size)),
			mat,
		)
	}

	world.Add(tetrahedron(core.NewVec3(-2.2, 0.5, 0), 5, material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2))))
	world.Add(tetrahedron(core.NewVec3(0, 0.5, 0), 5, newGlass(opts, 1.5)))
	world.Add(tetrahedron(core.NewVec3(2.2, 0.5, 0), 5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)))

	// Same shape with reversed vertex order renders identically
	reversed := material.NewLambertian(core.NewVec3(0.2, 0.4, 0.7))
	c := core.NewVec3(0, 0.3, 2)
	world.Add(geometry.NewTetrahedron(
		c.Add(tetraOffsets[3].Multiply(3)),
		c.Add(tetraOffsets[2].Multiply(3)),
		c.Add(tetraOffsets[1].Multiply(3)),
		c.Add(tetraOffsets[0].Multiply(3)),
		reversed,
	))

	return &Scene{
		Name:  "tetrahedra",
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            30,
			LookFrom:        core.NewVec3(0, 3, 9),
			LookAt:          core.NewVec3(0, 0.5, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       9,
			MotionBlur:      opts.MotionBlur,
		},
	}
}
