package renderer

import (
	"time"

	"github.com/df07/go-tetra-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	NumWorkers      int           // Number of workers in the pool
	RowsPerWorker   []int         // Scanlines rendered by each worker
	MeanVariance    float64       // Average variance of the pixel estimates
	Duration        time.Duration // Wall time from start to the last delivered row
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the unbiased sample variance of the luminance samples
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := (ps.LuminanceSqAccum - n*mean*mean) / (n - 1)
	if variance < 0 {
		// Rounding on near-constant pixels
		return 0
	}
	return variance
}

// MeanVariance estimates the variance of the pixel's average, which
// shrinks as 1/SampleCount
func (ps *PixelStats) MeanVariance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return ps.Variance() / float64(ps.SampleCount)
}
