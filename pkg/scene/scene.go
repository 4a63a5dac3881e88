package scene

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *geometry.HittableList // Objects in the scene
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the recommended sampling settings for a scene
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// newScene creates an empty scene with the given camera, applying the first override if present
func newScene(defaultCameraConfig geometry.CameraConfig, samplingConfig SamplingConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return &Scene{
		World:          geometry.NewHittableList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
	}
}

// NewCamera builds the camera described by the scene's camera configuration
func (s *Scene) NewCamera() *geometry.Camera {
	return geometry.NewCamera(s.CameraConfig)
}

// ImageSize returns the output resolution implied by the camera configuration
func (s *Scene) ImageSize() (width, height int) {
	return s.CameraConfig.Width, s.CameraConfig.ImageHeight()
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
