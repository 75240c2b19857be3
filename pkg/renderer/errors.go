package renderer

import "errors"

var (
	// ErrInterrupted is returned when a render is cancelled before every
	// scanline has been delivered to the sink.
	ErrInterrupted = errors.New("render interrupted")

	// ErrNoWorld is returned when a raytracer is created without a scene.
	ErrNoWorld = errors.New("no world to render")
)
