package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Lerp midpoint", a.Lerp(b, 0.5), NewVec3(2.5, -1.5, 4.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, approx); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_UnitVector(t *testing.T) {
	v := NewVec3(3, 0, 4).UnitVector()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero input is not guarded
	zero := Vec3{}.UnitVector()
	if !math.IsNaN(zero.X) {
		t.Errorf("Expected NaN from zero-length UnitVector, got %v", zero)
	}

	if n := (Vec3{}).Normalize(); n != (Vec3{}) {
		t.Errorf("Expected Normalize of zero vector to be zero, got %v", n)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component large", NewVec3(1e-9, 1e-3, 0), false},
		{"unit", NewVec3(0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(NewVec3(1, -1, 0), NewVec3(0, 1, 0))
	if diff := cmp.Diff(NewVec3(1, 1, 0), got, approx); diff != "" {
		t.Errorf("Reflect mismatch (-want +got):\n%s", diff)
	}
}

func TestRefract_IndexOneIsStraight(t *testing.T) {
	in := NewVec3(1, -2, 0.5).UnitVector()
	got := Refract(in, NewVec3(0, 1, 0), 1.0)
	if diff := cmp.Diff(in, got, approx); diff != "" {
		t.Errorf("Refract with ratio 1 should not bend (-want +got):\n%s", diff)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 1, 1), NewVec3(0, 0, -2), 0.25)
	if got := ray.At(1.5); got != NewVec3(1, 1, -2) {
		t.Errorf("Expected (1,1,-2), got %v", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
}

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(1, 2)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1, true, false},
		{1.5, true, true},
		{2, true, false},
		{2.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f) = %t, expected %t", tt.x, got, tt.contains)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f) = %t, expected %t", tt.x, got, tt.surrounds)
		}
	}

	if EmptyInterval.Contains(0) {
		t.Error("EmptyInterval should contain nothing")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("UniverseInterval should surround finite values")
	}
	if got := i.Clamp(3); got != 2 {
		t.Errorf("Clamp(3) = %f, expected 2", got)
	}
	if got := i.WithMax(1.25); got.Max != 1.25 || got.Min != 1 {
		t.Errorf("WithMax produced %v", got)
	}
}
