package material

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations are immutable after construction and safe to share
// between any number of shapes and goroutines.
type Material interface {
	// Scatter decides whether rayIn continues after striking the surface
	// described by hit. It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Surface normal at intersection, facing against the ray
	T         float64    // Parameter t along the ray
	FrontFace bool       // Whether ray hit the front face
	Material  Material   // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
