package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
)

// Vec3Cfg is a point, direction or color written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg holds camera settings; zero or missing fields keep the defaults
type CameraCfg struct {
	AspectRatio     float64  `json:"aspectRatio,omitempty"`
	ImageWidth      int      `json:"imageWidth,omitempty"`
	SamplesPerPixel int      `json:"samplesPerPixel,omitempty"`
	MaxDepth        int      `json:"maxDepth,omitempty"`
	VFov            float64  `json:"vfov,omitempty"`
	LookFrom        *Vec3Cfg `json:"lookFrom,omitempty"`
	LookAt          *Vec3Cfg `json:"lookAt,omitempty"`
	VUp             *Vec3Cfg `json:"vup,omitempty"`
	DefocusAngle    float64  `json:"defocusAngle,omitempty"`
	FocusDist       float64  `json:"focusDist,omitempty"`
	MotionBlur      bool     `json:"motionBlur,omitempty"`
}

type MaterialCfg struct {
	Name string `json:"name"`
	Type string `json:"type"` // lambertian, checker, metal or dielectric

	Albedo  Vec3Cfg `json:"albedo"`
	Fuzz    float64 `json:"fuzz,omitempty"`
	IOR     float64 `json:"ior,omitempty"`
	Fresnel bool    `json:"fresnel,omitempty"`

	// Checker only
	Scale float64 `json:"scale,omitempty"`
	Even  Vec3Cfg `json:"even"`
	Odd   Vec3Cfg `json:"odd"`
}

type SphereCfg struct {
	Center   Vec3Cfg  `json:"center"`
	Center2  *Vec3Cfg `json:"center2,omitempty"` // Position at the end of the shutter interval
	Radius   float64  `json:"radius"`
	Material string   `json:"material"`
}

type TriangleCfg struct {
	Vertices [3]Vec3Cfg `json:"vertices"`
	Material string     `json:"material"`
}

type TetrahedronCfg struct {
	Vertices [4]Vec3Cfg `json:"vertices"`
	Material string     `json:"material"`
}

// Config is the top level of a JSON scene file
type Config struct {
	Name       string           `json:"name,omitempty"`
	Camera     CameraCfg        `json:"camera"`
	Materials  []MaterialCfg    `json:"materials"`
	Spheres    []SphereCfg      `json:"spheres,omitempty"`
	Triangles  []TriangleCfg    `json:"triangles,omitempty"`
	Tetrahedra []TetrahedronCfg `json:"tetrahedra,omitempty"`
}

// Build validates and constructs the material
func (mc MaterialCfg) Build(opts Options) (material.Material, error) {
	switch strings.ToLower(mc.Type) {
	case "lambertian":
		return material.NewLambertian(mc.Albedo.Vec3()), nil
	case "checker":
		scale := mc.Scale
		if scale <= 0 {
			scale = 1
		}
		return material.NewTexturedLambertian(material.NewChecker(scale, mc.Even.Vec3(), mc.Odd.Vec3())), nil
	case "metal":
		return material.NewMetal(mc.Albedo.Vec3(), mc.Fuzz), nil
	case "dielectric":
		if mc.IOR <= 0 {
			return nil, fmt.Errorf("material %q: ior must be > 0, got %g", mc.Name, mc.IOR)
		}
		if mc.Fresnel || opts.Fresnel {
			return material.NewFresnelDielectric(mc.IOR), nil
		}
		return material.NewDielectric(mc.IOR), nil
	}
	return nil, fmt.Errorf("%w: material %q has unsupported type %q", ErrUnknownMaterial, mc.Name, mc.Type)
}

// Build converts the camera settings, filling gaps from the defaults
func (cc CameraCfg) Build() renderer.CameraConfig {
	override := renderer.CameraConfig{
		AspectRatio:     cc.AspectRatio,
		ImageWidth:      cc.ImageWidth,
		SamplesPerPixel: cc.SamplesPerPixel,
		MaxDepth:        cc.MaxDepth,
		VFov:            cc.VFov,
		DefocusAngle:    cc.DefocusAngle,
		FocusDist:       cc.FocusDist,
		MotionBlur:      cc.MotionBlur,
	}

	config := renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), override)

	// Explicit vectors win even when zero, so a camera can sit at the origin
	if cc.LookFrom != nil {
		config.LookFrom = cc.LookFrom.Vec3()
	}
	if cc.LookAt != nil {
		config.LookAt = cc.LookAt.Vec3()
	}
	if cc.VUp != nil {
		config.VUp = cc.VUp.Vec3()
	}
	return config
}

// Build validates the config and assembles the scene
func (cfg *Config) Build(opts Options) (*Scene, error) {
	materials := make(map[string]material.Material, len(cfg.Materials))
	for _, mc := range cfg.Materials {
		if mc.Name == "" {
			return nil, fmt.Errorf("material of type %q has no name", mc.Type)
		}
		if _, exists := materials[mc.Name]; exists {
			return nil, fmt.Errorf("material %q defined twice", mc.Name)
		}
		mat, err := mc.Build(opts)
		if err != nil {
			return nil, err
		}
		materials[mc.Name] = mat
	}

	lookup := func(kind string, index int, name string) (material.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s %d references %q", ErrUnknownMaterial, kind, index, name)
		}
		return mat, nil
	}

	world := geometry.NewHittableList()

	for i, sc := range cfg.Spheres {
		mat, err := lookup("sphere", i, sc.Material)
		if err != nil {
			return nil, err
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0, got %g", i, sc.Radius)
		}
		if sc.Center2 != nil {
			world.Add(geometry.NewMovingSphere(sc.Center.Vec3(), sc.Center2.Vec3(), sc.Radius, mat))
		} else {
			world.Add(geometry.NewSphere(sc.Center.Vec3(), sc.Radius, mat))
		}
	}

	for i, tc := range cfg.Triangles {
		mat, err := lookup("triangle", i, tc.Material)
		if err != nil {
			return nil, err
		}
		world.Add(geometry.NewTriangle(tc.Vertices[0].Vec3(), tc.Vertices[1].Vec3(), tc.Vertices[2].Vec3(), mat))
	}

	for i, tc := range cfg.Tetrahedra {
		mat, err := lookup("tetrahedron", i, tc.Material)
		if err != nil {
			return nil, err
		}
		world.Add(geometry.NewTetrahedron(
			tc.Vertices[0].Vec3(), tc.Vertices[1].Vec3(), tc.Vertices[2].Vec3(), tc.Vertices[3].Vec3(), mat))
	}

	if world.Len() == 0 {
		return nil, fmt.Errorf("scene %q has no objects", cfg.Name)
	}

	cameraConfig := cfg.Camera.Build()
	cameraConfig.MotionBlur = cameraConfig.MotionBlur || opts.MotionBlur

	return &Scene{Name: cfg.Name, World: world, CameraConfig: cameraConfig}, nil
}

// ParseJSON decodes and builds a scene from JSON data
func ParseJSON(data []byte, opts Options) (*Scene, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return cfg.Build(opts)
}

// LoadJSON reads a scene file. The scene is named after the file when the
// file does not name it.
func LoadJSON(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sc, err := ParseJSON(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}
