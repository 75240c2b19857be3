package geometry

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// Hittable is implemented by every shape and by collections of shapes.
//
// Hit reports whether the ray strikes the object at a parameter inside rayT.
// On success every field of rec is written; on a miss rec may hold partial
// results and must be ignored.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool
}
