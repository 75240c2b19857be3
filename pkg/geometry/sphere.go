package geometry

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// Sphere represents a sphere shape whose centre may move linearly over the
// shutter interval [0, 1]
type Sphere struct {
	Center   core.Ray // Center.At(time) is the centre; zero direction for stationary spheres
	Radius   float64
	Material material.Material
}

// NewSphere creates a stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Point, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// NewMovingSphere creates a sphere that travels from center1 at time 0 to
// center2 at time 1
func NewMovingSphere(center1, center2 core.Point, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// IsMoving reports whether the sphere's centre changes over time
func (s *Sphere) IsMoving() bool {
	return s.Center.Direction != (core.Vec3{})
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	center := s.Center.At(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic in half-b form: a t² - 2h t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root strictly inside the range
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(center).Divide(s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = s.Material

	return true
}
