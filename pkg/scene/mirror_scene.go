package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMirrorScene creates a pinhole view of polished metal spheres over a mirror
// floor. Every material is deterministic, so each pixel's colour depends only
// on the jittered camera ray.
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 1, 3),
		LookAt:        core.NewVec3(0, 0.5, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{SamplesPerPixel: 16, MaxDepth: 20}, cameraOverrides)

	floor := material.NewMetal(core.NewVec3(0.6, 0.6, 0.65), 0.0)
	silver := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	copper := material.NewMetal(core.NewVec3(0.95, 0.64, 0.54), 0.0)
	brass := material.NewMetal(core.NewVec3(0.89, 0.79, 0.45), 0.0)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, floor))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, silver))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1.1, 0.4, -1.4), 0.4, copper))
	s.World.Add(geometry.NewSphere(core.NewVec3(1.1, 0.4, -1.4), 0.4, brass))

	return s
}
