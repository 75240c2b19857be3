package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

func TestHittableList_ClosestHitWins(t *testing.T) {
	nearMaterial := material.NewLambertian(core.NewVec3(1, 0, 0))
	farMaterial := material.NewMetal(core.NewVec3(0, 0, 1), 0)

	// Overlapping spheres along the -Z axis
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, nearMaterial)
	far := NewSphere(core.NewVec3(0, 0, -4), 1.5, farMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := map[string]*HittableList{
		"near first": NewHittableList(near, far),
		"far first":  NewHittableList(far, near),
		"nested":     NewHittableList(NewHittableList(far), NewHittableList(near)),
	}

	for name, list := range orders {
		t.Run(name, func(t *testing.T) {
			var rec material.HitRecord
			if !list.Hit(ray, hitRange(), &rec) {
				t.Fatal("Expected hit, but got miss")
			}
			if rec.Material != nearMaterial {
				t.Errorf("Expected the nearer sphere's material, got %T", rec.Material)
			}
			if math.Abs(rec.T-2.0) > 1e-9 {
				t.Errorf("Expected t=2, got t=%f", rec.T)
			}
		})
	}
}

func TestHittableList_MixedPrimitives(t *testing.T) {
	triMaterial := material.NewLambertian(core.NewVec3(0, 1, 0))
	sphereMaterial := material.NewDielectric(1.5)

	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -10), 1.0, sphereMaterial))
	list.Add(NewTriangle(
		core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5), triMaterial))

	if list.Len() != 2 {
		t.Fatalf("Expected 2 objects, got %d", list.Len())
	}

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !list.Hit(ray, hitRange(), &rec) {
		t.Fatal("Expected hit, but got miss")
	}
	if rec.Material != triMaterial {
		t.Errorf("Expected triangle in front of sphere to win, got %T", rec.Material)
	}
}

func TestHittableList_Empty(t *testing.T) {
	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if NewHittableList().Hit(ray, hitRange(), &rec) {
		t.Error("Empty list should never report a hit")
	}
}
