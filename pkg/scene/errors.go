package scene

import "errors"

var (
	// ErrUnknownScene is returned by Load for names that match no built-in scene
	ErrUnknownScene = errors.New("unknown scene")

	// ErrUnknownMaterial is returned when a scene file references a material
	// that is not defined or has an unsupported type
	ErrUnknownMaterial = errors.New("unknown material")
)
