package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/integrator"
	"github.com/df07/go-tetra-raytracer/pkg/log"
)

var logger = log.New("renderer")

// SamplingConfig controls how work is split across goroutines
type SamplingConfig struct {
	Seed       int64 // Base seed; row j draws from a stream seeded with Seed+j
	NumWorkers int   // Number of render goroutines, 0 for one per CPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Seed:       42,
		NumWorkers: 0,
	}
}

// PixelSink receives finished rows in order, top row first
type PixelSink interface {
	// Start is called once with the image size before any row
	Start(width, height int) error
	// WriteRow receives the averaged linear colors of row y, left to right
	WriteRow(y int, row []core.Color) error
}

// SamplerFactory creates the random stream used for one scanline
type SamplerFactory func(seed int64) core.Sampler

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	newSampler SamplerFactory
}

// NewRaytracer creates a raytracer for world as seen from camera
func NewRaytracer(world geometry.Hittable, camera *Camera, config SamplingConfig) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(camera.Config().MaxDepth),
		config:     config,
		newSampler: func(seed int64) core.Sampler { return core.NewSeededSampler(seed) },
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// SetSamplerFactory replaces the per-scanline random stream constructor
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	rt.newSampler = factory
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderRow traces every sample of row j and returns the averaged colors
// along with per-pixel statistics. It only reads shared state, so rows may
// be rendered concurrently.
func (rt *Raytracer) RenderRow(j int) ([]core.Color, []PixelStats) {
	width := rt.camera.ImageWidth()
	samples := rt.camera.Config().SamplesPerPixel
	sampler := rt.newSampler(rt.config.Seed + int64(j))

	colors := make([]core.Color, width)
	pixels := make([]PixelStats, width)

	for i := 0; i < width; i++ {
		ps := &pixels[i]
		for s := 0; s < samples; s++ {
			ray := rt.camera.GetRay(i, j, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}
		colors[i] = ps.ColorAccum.Multiply(rt.camera.pixelSamplesScale)
	}

	return colors, pixels
}

// Render traces the full image and streams rows to sink in order. It returns
// ErrInterrupted if ctx is cancelled before the last row is delivered.
func (rt *Raytracer) Render(ctx context.Context, sink PixelSink) (RenderStats, error) {
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	start := time.Now()

	if err := sink.Start(width, height); err != nil {
		return RenderStats{}, fmt.Errorf("starting sink: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(rt, height, rt.config.NumWorkers)
	pool.Start(ctx)
	for j := 0; j < height; j++ {
		pool.SubmitTask(ScanlineTask{Row: j})
	}
	go pool.Stop()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.Config().SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
		RowsPerWorker:   make([]int, pool.GetNumWorkers()),
	}

	logger.Infof("rendering %dx%d at %d spp with %d workers", width, height, stats.SamplesPerPixel, stats.NumWorkers)

	// Rows finish out of order; hold them until their turn
	pending := make(map[int]ScanlineResult)
	nextRow := 0
	var varianceSum float64
	var renderErr error

	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %v", ErrInterrupted, result.Error)
			}
			continue
		}
		if renderErr != nil {
			continue
		}

		stats.RowsPerWorker[result.WorkerID]++
		pending[result.Row] = result

		for {
			next, ready := pending[nextRow]
			if !ready {
				break
			}
			delete(pending, nextRow)

			if err := sink.WriteRow(nextRow, next.Colors); err != nil {
				renderErr = fmt.Errorf("writing row %d: %w", nextRow, err)
				cancel()
				break
			}

			for i := range next.Pixels {
				stats.TotalSamples += next.Pixels[i].SampleCount
				varianceSum += next.Pixels[i].MeanVariance()
			}
			stats.TotalPixels += len(next.Pixels)

			nextRow++
			logger.Noticef("Scanlines remaining: %d", height-nextRow)
		}
	}

	stats.Duration = time.Since(start)
	if stats.TotalPixels > 0 {
		stats.MeanVariance = varianceSum / float64(stats.TotalPixels)
	}

	if renderErr != nil {
		logger.Warningf("render stopped after %d of %d scanlines: %v", nextRow, height, renderErr)
		return stats, renderErr
	}

	logger.Noticef("rendered %dx%d (%d samples) in %s", width, height, stats.TotalSamples, stats.Duration)
	return stats, nil
}
