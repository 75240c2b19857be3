package geometry

import (
	"math"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// parallelEpsilon rejects rays whose direction lies (almost) in the
// triangle's plane. It is absolute, not scaled to the triangle size.
const parallelEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Point        // The three vertices
	Material   material.Material // Material of the triangle
	edge1      core.Vec3         // V1 - V0
	edge2      core.Vec3         // V2 - V0
	normal     core.Vec3         // Cached unit normal, edge1 × edge2
}

// NewTriangle creates a new triangle from three vertices. The winding order
// V0 → V1 → V2 determines which side is the front face.
func NewTriangle(v0, v1, v2 core.Point, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		edge1:    v1.Subtract(v0),
		edge2:    v2.Subtract(v0),
	}
	t.normal = t.edge1.Cross(t.edge2).UnitVector()
	return t
}

// Normal returns the triangle's geometric unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Centroid returns the average of the three vertices
func (t *Triangle) Centroid() core.Point {
	return t.V0.Add(t.V1).Add(t.V2).Divide(3)
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	pvec := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(pvec)

	if math.Abs(det) < parallelEpsilon {
		return false
	}

	invDet := 1.0 / det
	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0.0 || u > 1.0 {
		return false
	}

	qvec := tvec.Cross(t.edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := t.edge2.Dot(qvec) * invDet
	if !rayT.Contains(tHit) {
		return false
	}

	rec.T = tHit
	rec.Point = ray.At(tHit)
	rec.SetFaceNormal(ray, t.normal)
	rec.Material = t.Material

	return true
}
