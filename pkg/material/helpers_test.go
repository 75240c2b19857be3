package material

import (
	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// scriptedSampler returns the same draws on every call so tests can force
// specific random directions
type scriptedSampler struct {
	oneD float64
	twoD core.Vec2
}

func (s scriptedSampler) Get1D() float64 { return s.oneD }
func (s scriptedSampler) Get2D() core.Vec2 { return s.twoD }
func (s scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.twoD.X, s.twoD.Y, s.oneD)
}
