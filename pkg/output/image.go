package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// toByte converts one linear channel to an 8-bit display value:
// gamma 2 (square root), NaN mapped to 0, clamped to [0, 0.999], scaled by 256.
func toByte(c float64) uint8 {
	c = math.Sqrt(c)
	if math.IsNaN(c) {
		c = 0
	}
	c = math.Max(0, math.Min(0.999, c))
	return uint8(256 * c)
}

// ToColor converts a linear RGB colour to a gamma-corrected 8-bit colour
func ToColor(v core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(v.X),
		G: toByte(v.Y),
		B: toByte(v.Z),
		A: 255,
	}
}

// ToRGBA converts a rendered frame to an 8-bit image. Frame row 0 becomes the top row.
func ToRGBA(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, ToColor(frame.At(x, y)))
		}
	}
	return img
}
