package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Grid of small spheres spans [-gridExtent, gridExtent) on x and z
const (
	gridExtent      = 11
	smallRadius     = 0.2
	clearanceRadius = 0.9 // Small spheres closer than this to the metal sphere are dropped
)

// NewRandomSpheresScene creates the classic cover scene: a large ground sphere,
// a 22x22 grid of small randomly chosen spheres and three large feature spheres.
// The same seed always yields the same scene.
func NewRandomSpheresScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{SamplesPerPixel: 10, MaxDepth: 5}, cameraOverrides)
	sampler := core.NewSeededSampler(seed)

	materialGround := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, materialGround))

	clearancePoint := core.NewVec3(4, smallRadius, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallRadius,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearancePoint).Length() <= clearanceRadius {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMaterial < 0.8:
				// diffuse
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				// metal
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				// glass
				sphereMaterial = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(center, smallRadius, sphereMaterial))
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.4, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
