package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates three spheres on a large ground sphere: hollow glass,
// diffuse and fuzzed gold, seen through a slightly defocused lens
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	s := newScene(defaultCameraConfig, SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, cameraOverrides)

	// Create materials
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter))

	// Hollow glass sphere: the negative radius flips the inner surface normals
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass))

	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialGold))

	return s
}
