package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// HitEpsilon is the lower bound of every hit query. Secondary rays start on the
// surface they left, so intersections closer than this are self-hits.
const HitEpsilon = 0.001

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Vec3 // Colour straight up
	Bottom core.Vec3 // Colour straight down
}

// DefaultBackground returns the white-to-light-blue sky
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient colour for a ray direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	// Map unit y from [-1,1] to [0,1]
	unitDirection := direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	maxDepth   int
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth:   maxDepth,
		background: DefaultBackground(),
	}
}

// WithBackground returns a copy of the integrator using a different sky gradient
func (pt *PathTracingIntegrator) WithBackground(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth:   pt.maxDepth,
		background: background,
	}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor traces a camera ray with the integrator's full bounce budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, pt.maxDepth, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, HitEpsilon, math.Inf(1))
	if !isHit {
		return pt.background.Color(ray.Direction)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, depth-1, sampler))
}

// RayColor traces a ray through world against the default sky with the given
// bounce budget. It never fails: degenerate inputs surface as NaN components.
func RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	return NewPathTracingIntegrator(depth).RayColor(ray, world, sampler)
}
