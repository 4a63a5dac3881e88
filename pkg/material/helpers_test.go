package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantSampler returns the same value for every draw
type constantSampler struct {
	value float64
	draws int
}

func (c *constantSampler) Get1D() float64 {
	c.draws++
	return c.value
}

func (c *constantSampler) Get3D() core.Vec3 {
	c.draws += 3
	return core.NewVec3(c.value, c.value, c.value)
}

func vecClose(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
