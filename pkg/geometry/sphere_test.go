package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func hitRange() core.Interval {
	return core.NewInterval(0.001, math.Inf(1))
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var rec material.HitRecord
	if sphere.Hit(ray, hitRange(), &rec) {
		t.Errorf("Expected miss, but got hit at t=%f", rec.T)
	}
}

func TestSphere_Hit_HeadOn(t *testing.T) {
	const distance, radius = 5.0, 1.0
	sphere := NewSphere(core.NewVec3(0, 0, -distance), radius, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var rec material.HitRecord
	if !sphere.Hit(ray, hitRange(), &rec) {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(rec.T-(distance-radius)) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", distance-radius, rec.T)
	}
	if !rec.FrontFace {
		t.Error("Expected front face hit")
	}
	if rec.Normal.Dot(ray.Direction) > -1+1e-9 {
		t.Errorf("Expected normal anti-parallel to the ray, got %v", rec.Normal)
	}
	if rec.Material != testMaterial {
		t.Error("Expected hit record to carry the sphere material")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)

			var rec material.HitRecord
			if !sphere.Hit(ray, hitRange(), &rec) {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if rec.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
		})
	}
}

func TestSphere_Hit_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name      string
		offsetX   float64
		shouldHit bool
	}{
		{"exactly tangent", 1.0, true},
		{"just inside", 1.0 - 1e-6, true},
		{"just outside", 1.0 + 1e-6, false},
		{"well outside", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.offsetX, 0, 2), core.NewVec3(0, 0, -1))

			var rec material.HitRecord
			isHit := sphere.Hit(ray, hitRange(), &rec)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(rec.T-2.0) > 1e-2 {
				t.Errorf("Expected grazing hit near t=2, got t=%f", rec.T)
			}
		})
	}
}

func TestSphere_Hit_OpenInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	var rec material.HitRecord

	// Roots are at t=1 and t=3; bounds equal to a root exclude it
	if sphere.Hit(ray, core.NewInterval(0.001, 1.0), &rec) {
		t.Errorf("Expected miss with tMax on the near root, got t=%f", rec.T)
	}

	if !sphere.Hit(ray, core.NewInterval(1.0, 10.0), &rec) {
		t.Fatal("Expected the far root when tMin sits on the near root")
	}
	if math.Abs(rec.T-3.0) > 1e-9 || rec.FrontFace {
		t.Errorf("Expected back face hit at t=3, got t=%f front=%t", rec.T, rec.FrontFace)
	}

	if sphere.Hit(ray, core.NewInterval(3.5, 1000.0), &rec) {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", rec.T)
	}
}

func TestMovingSphere_Hit(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(2, 0, -5), 1.0, testMaterial)
	if !sphere.IsMoving() {
		t.Fatal("Expected sphere to be moving")
	}

	tests := []struct {
		name      string
		time      float64
		shouldHit bool
	}{
		{"start of shutter", 0.0, true},
		{"mid shutter", 0.5, true},
		{"end of shutter", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayAtTime(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1), tt.time)

			var rec material.HitRecord
			isHit := sphere.Hit(ray, hitRange(), &rec)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t at time %f, got %t", tt.shouldHit, tt.time, isHit)
			}
			if isHit {
				center := core.NewVec3(2*tt.time, 0, -5)
				if math.Abs(rec.Point.Subtract(center).Length()-1.0) > 1e-9 {
					t.Errorf("Hit point %v is not on the sphere at time %f", rec.Point, tt.time)
				}
			}
		})
	}
}

func TestSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -2, testMaterial)
	if sphere.Radius != 0 {
		t.Errorf("Expected radius clamped to 0, got %f", sphere.Radius)
	}
	if sphere.IsMoving() {
		t.Error("Stationary sphere reported as moving")
	}
}
