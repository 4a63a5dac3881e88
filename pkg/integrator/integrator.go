package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along a camera ray.
	// Implementations must be safe for concurrent use with distinct samplers.
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}
