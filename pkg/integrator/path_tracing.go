package integrator

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// shadowAcneEpsilon keeps a scattered ray from re-hitting the surface it
// just left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a
// fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a path tracer lit by the sky gradient
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: SkyGradient,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, world, sampler, pt.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	var rec material.HitRecord
	if !world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), &rec) {
		return pt.background(ray)
	}

	scatter, didScatter := rec.Material.Scatter(ray, rec, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, sampler, depth-1))
}

func (pt *PathTracingIntegrator) background(ray core.Ray) core.Color {
	if pt.Background == nil {
		return SkyGradient(ray)
	}
	return pt.Background(ray)
}
