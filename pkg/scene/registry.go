package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Load
	DisplayName string
	Description string
	build       func(Options) *Scene
}

var builtinScenes = []SceneInfo{
	{
		ID:          "final",
		DisplayName: "Final Scene",
		Description: "Random field of spheres and tetrahedra around three large spheres",
		build:       NewFinalScene,
	},
	{
		ID:          "single-sphere",
		DisplayName: "Single Sphere",
		Description: "One diffuse sphere under the sky gradient",
		build:       NewSingleSphereScene,
	},
	{
		ID:          "materials",
		DisplayName: "Materials",
		Description: "Hollow glass, diffuse and brushed metal spheres side by side",
		build:       NewMaterialsScene,
	},
	{
		ID:          "tetrahedra",
		DisplayName: "Tetrahedra",
		Description: "Diffuse, glass and metal tetrahedra on a checkered floor",
		build:       NewTetrahedraScene,
	},
	{
		ID:          "motion",
		DisplayName: "Motion Blur",
		Description: "Bouncing spheres captured over the shutter interval",
		build:       NewMotionScene,
	},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	return scenes
}

// Load builds a scene by built-in name, or from a JSON scene file when
// nameOrPath ends in .json
func Load(nameOrPath string, opts Options) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadJSON(nameOrPath, opts)
	}

	for _, info := range builtinScenes {
		if info.ID == nameOrPath {
			return info.build(opts), nil
		}
	}

	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, nameOrPath, strings.Join(sceneIDs(), ", "))
}

func sceneIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		ids = append(ids, info.ID)
	}
	return ids
}
