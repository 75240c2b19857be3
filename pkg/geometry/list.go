package geometry

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// HittableList is an ordered collection of objects that is itself Hittable.
// Lists may be nested.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list. Lists must not be modified while a
// render is in progress.
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all children
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	var tempRec material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(ray, rayT.WithMax(closestSoFar), &tempRec) {
			hitAnything = true
			closestSoFar = tempRec.T
			*rec = tempRec
		}
	}

	return hitAnything
}
