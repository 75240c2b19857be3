package geometry

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/material"
)

// Tetrahedron is a closed shell of four triangular faces over four vertices
type Tetrahedron struct {
	Vertices [4]core.Point
	Material material.Material
	faces    [4]*Triangle
}

// NewTetrahedron creates a tetrahedron from four non-coplanar points. Each
// face is wound so its normal points away from the centroid, regardless of
// the order in which the vertices are given.
func NewTetrahedron(p0, p1, p2, p3 core.Point, mat material.Material) *Tetrahedron {
	tet := &Tetrahedron{
		Vertices: [4]core.Point{p0, p1, p2, p3},
		Material: mat,
	}

	centroid := p0.Add(p1).Add(p2).Add(p3).Divide(4)
	faceIndices := [4][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
		{1, 3, 2},
	}

	for i, idx := range faceIndices {
		a, b, c := tet.Vertices[idx[0]], tet.Vertices[idx[1]], tet.Vertices[idx[2]]
		face := NewTriangle(a, b, c, mat)
		if face.Normal().Dot(face.Centroid().Subtract(centroid)) < 0 {
			face = NewTriangle(a, c, b, mat)
		}
		tet.faces[i] = face
	}

	return tet
}

// Faces returns the four outward-wound faces
func (tet *Tetrahedron) Faces() [4]*Triangle {
	return tet.faces
}

// Hit tests every face and keeps the nearest. Each hit narrows the search
// window, so a later face only wins when it is at least as close.
func (tet *Tetrahedron) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	var tempRec material.HitRecord
	hitAnything := false
	window := rayT

	for _, face := range tet.faces {
		if face.Hit(ray, window, &tempRec) {
			hitAnything = true
			window = window.WithMax(tempRec.T)
			*rec = tempRec
		}
	}

	return hitAnything
}
