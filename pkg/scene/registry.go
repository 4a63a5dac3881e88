package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	Description string
}

type sceneBuilder struct {
	description string
	build       func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneBuilder{
	"default": {
		description: "Hollow glass, diffuse and gold spheres on a large ground sphere",
		build: func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewDefaultScene(cameraOverrides...)
		},
	},
	"random": {
		description: "Grid of random small spheres around three large ones (seeded)",
		build:       NewRandomSpheresScene,
	},
	"mirror": {
		description: "Polished metal spheres over a mirror floor, no stochastic materials",
		build: func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewMirrorScene(cameraOverrides...)
		},
	},
}

// Names returns the sorted names of the built-in scenes
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns every built-in scene with its description, sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{ID: name, Description: builtinScenes[name].description})
	}
	return scenes
}

// CreateScene builds the named scene. The seed only affects randomly generated scenes.
func CreateScene(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	builder, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder.build(seed, cameraOverrides...), nil
}
