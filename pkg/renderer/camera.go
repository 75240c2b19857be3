package renderer

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// CameraConfig contains all camera and image parameters
type CameraConfig struct {
	AspectRatio     float64    // Ratio of image width over height
	ImageWidth      int        // Rendered image width in pixel count
	SamplesPerPixel int        // Count of random samples for each pixel
	MaxDepth        int        // Maximum number of ray bounces into scene
	VFov            float64    // Vertical view angle (field of view) in degrees
	LookFrom        core.Point // Point camera is looking from
	LookAt          core.Point // Point camera is looking at
	VUp             core.Vec3  // Camera-relative "up" direction
	DefocusAngle    float64    // Variation angle of rays through each pixel, in degrees
	FocusDist       float64    // Distance from camera lookfrom point to plane of perfect focus
	MotionBlur      bool       // Sample ray times across the shutter interval [0, 1)
}

// DefaultCameraConfig returns the default camera configuration
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// ImageHeight returns the image height implied by the width and aspect ratio
func (c CameraConfig) ImageHeight() int {
	height := int(float64(c.ImageWidth) / c.AspectRatio)
	if height < 1 {
		return 1
	}
	return height
}

// MergeCameraConfig overlays the non-zero fields of override onto base.
// MotionBlur is enabled if either config enables it.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base

	if override.AspectRatio > 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth > 0 {
		merged.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel > 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.VFov > 0 {
		merged.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		merged.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.VUp != (core.Vec3{}) {
		merged.VUp = override.VUp
	}
	if override.DefocusAngle > 0 {
		merged.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDist > 0 {
		merged.FocusDist = override.FocusDist
	}
	merged.MotionBlur = base.MotionBlur || override.MotionBlur

	return merged
}

// Camera generates primary rays. It is immutable once created and can be
// shared by all render workers.
type Camera struct {
	config            CameraConfig
	imageHeight       int
	pixelSamplesScale float64    // Color scale factor for a sum of pixel samples
	center            core.Point // Camera center
	pixel00           core.Point // Location of pixel 0, 0
	pixelDeltaU       core.Vec3  // Offset to pixel to the right
	pixelDeltaV       core.Vec3  // Offset to pixel below
	u, v, w           core.Vec3  // Camera frame basis vectors
	defocusDiskU      core.Vec3  // Defocus disk horizontal radius
	defocusDiskV      core.Vec3  // Defocus disk vertical radius
}

// NewCamera derives the viewport geometry from config
func NewCamera(config CameraConfig) *Camera {
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}

	c := &Camera{
		config:            config,
		imageHeight:       config.ImageHeight(),
		pixelSamplesScale: 1.0 / float64(config.SamplesPerPixel),
		center:            config.LookFrom,
	}

	// Determine viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = config.LookFrom.Subtract(config.LookAt).UnitVector()
	c.u = config.VUp.Cross(c.w).UnitVector()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Camera defocus disk basis vectors
	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// PixelCenter returns the viewport point at the centre of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Point {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay constructs a camera ray originating from the defocus disk and
// directed at a randomly sampled point around pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	rayTime := 0.0
	if c.config.MotionBlur {
		rayTime = sampler.Get1D()
	}

	return core.NewRayAtTime(rayOrigin, pixelSample.Subtract(rayOrigin), rayTime)
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
