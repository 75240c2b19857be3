package renderer

import (
	"errors"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// constantSampler returns the same value for every draw. At 0.5 it removes
// pixel jitter and picks the centre of the defocus disk.
type constantSampler struct {
	value float64
}

func (s constantSampler) Get1D() float64  { return s.value }
func (s constantSampler) Get2D() core.Vec2 { return core.NewVec2(s.value, s.value) }
func (s constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

func centralSamplers(int64) core.Sampler {
	return constantSampler{value: 0.5}
}

// sequenceSampler replays a fixed list of 2D draws, then repeats the last
type sequenceSampler struct {
	draws []core.Vec2
	next  int
	oneD  float64
}

func (s *sequenceSampler) Get1D() float64 { return s.oneD }
func (s *sequenceSampler) Get2D() core.Vec2 {
	d := s.draws[s.next]
	if s.next < len(s.draws)-1 {
		s.next++
	}
	return d
}
func (s *sequenceSampler) Get3D() core.Vec3 {
	d := s.Get2D()
	return core.NewVec3(d.X, d.Y, s.oneD)
}

// memorySink keeps every delivered row and the order rows arrived in
type memorySink struct {
	width, height int
	rows          [][]core.Color
	order         []int
	failAt        int // Row index that fails, -1 for none
}

var errSinkFull = errors.New("sink full")

func newMemorySink() *memorySink {
	return &memorySink{failAt: -1}
}

func (s *memorySink) Start(width, height int) error {
	s.width, s.height = width, height
	s.rows = make([][]core.Color, height)
	return nil
}

func (s *memorySink) WriteRow(y int, row []core.Color) error {
	if y == s.failAt {
		return errSinkFull
	}
	s.rows[y] = append([]core.Color(nil), row...)
	s.order = append(s.order, y)
	return nil
}

func (s *memorySink) At(x, y int) core.Color {
	return s.rows[y][x]
}
