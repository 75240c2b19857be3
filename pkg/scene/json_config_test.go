package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-tetra-raytracer/pkg/core"
	"github.com/df07/go-tetra-raytracer/pkg/geometry"
	"github.com/df07/go-tetra-raytracer/pkg/material"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
	"github.com/google/go-cmp/cmp"
)

const sampleScene = `{
  "name": "json-sample",
  "camera": {
    "imageWidth": 64,
    "lookFrom": [0, 1, 4],
    "lookAt": [0, 0, 0],
    "motionBlur": true
  },
  "materials": [
    {"name": "ground", "type": "checker", "scale": 0.5, "even": [0.2, 0.3, 0.1], "odd": [0.9, 0.9, 0.9]},
    {"name": "red", "type": "lambertian", "albedo": [0.7, 0.1, 0.1]},
    {"name": "mirror", "type": "metal", "albedo": [0.8, 0.8, 0.8], "fuzz": 0.1},
    {"name": "glass", "type": "dielectric", "ior": 1.5}
  ],
  "spheres": [
    {"center": [0, -100, 0], "radius": 100, "material": "ground"},
    {"center": [1, 0.5, 0], "center2": [1, 0.8, 0], "radius": 0.5, "material": "mirror"}
  ],
  "triangles": [
    {"vertices": [[-1, 0, -1], [1, 0, -1], [0, 1, -1]], "material": "red"}
  ],
  "tetrahedra": [
    {"vertices": [[0, 1, 0], [-0.5, 0, 0.3], [0.5, 0, 0.3], [0, 0, -0.5]], "material": "glass"}
  ]
}`

func TestParseJSON(t *testing.T) {
	sc, err := ParseJSON([]byte(sampleScene), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if sc.Name != "json-sample" || sc.ObjectCount() != 4 {
		t.Errorf("Expected 4 objects in json-sample, got %d in %q", sc.ObjectCount(), sc.Name)
	}

	expected := renderer.DefaultCameraConfig()
	expected.ImageWidth = 64
	expected.LookFrom = core.NewVec3(0, 1, 4)
	expected.LookAt = core.NewVec3(0, 0, 0)
	expected.MotionBlur = true
	if diff := cmp.Diff(expected, sc.CameraConfig); diff != "" {
		t.Errorf("camera config mismatch (-want +got):\n%s", diff)
	}

	moving, ok := sc.World.Objects[1].(*geometry.Sphere)
	if !ok || !moving.IsMoving() {
		t.Errorf("Expected second sphere to move, got %#v", sc.World.Objects[1])
	}
	if _, ok := sc.World.Objects[3].(*geometry.Tetrahedron); !ok {
		t.Errorf("Expected tetrahedron last, got %T", sc.World.Objects[3])
	}
}

func TestParseJSON_FresnelOption(t *testing.T) {
	sc, err := ParseJSON([]byte(sampleScene), Options{Fresnel: true})
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	tet := sc.World.Objects[3].(*geometry.Tetrahedron)
	if d, ok := tet.Material.(*material.Dielectric); !ok || !d.Fresnel {
		t.Errorf("Expected Fresnel glass, got %#v", tet.Material)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{
			name:    "undefined material",
			json:    `{"materials": [], "spheres": [{"center": [0,0,0], "radius": 1, "material": "gold"}]}`,
			wantErr: ErrUnknownMaterial,
		},
		{
			name:    "unsupported material type",
			json:    `{"materials": [{"name": "glow", "type": "emissive"}], "spheres": [{"center": [0,0,0], "radius": 1, "material": "glow"}]}`,
			wantErr: ErrUnknownMaterial,
		},
		{
			name: "malformed",
			json: `{"materials": [`,
		},
		{
			name: "empty world",
			json: `{"materials": [{"name": "red", "type": "lambertian", "albedo": [1,0,0]}]}`,
		},
		{
			name: "bad radius",
			json: `{"materials": [{"name": "red", "type": "lambertian"}], "spheres": [{"center": [0,0,0], "radius": 0, "material": "red"}]}`,
		},
		{
			name: "duplicate material",
			json: `{"materials": [{"name": "red", "type": "lambertian"}, {"name": "red", "type": "metal"}]}`,
		},
		{
			name: "glass without index",
			json: `{"materials": [{"name": "glass", "type": "dielectric"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.json), DefaultOptions())
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "three-things.json")

	// Name comes from the file when the JSON has none
	unnamed := `{"materials": [{"name": "red", "type": "lambertian", "albedo": [1,0,0]}],
		"spheres": [{"center": [0,0,-1], "radius": 0.5, "material": "red"}]}`
	if err := os.WriteFile(path, []byte(unnamed), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	sc, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sc.Name != "three-things" {
		t.Errorf("Expected name from file, got %q", sc.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.json"), DefaultOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
