package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Frame holds the averaged linear colour of every pixel in row-major order.
// Row 0 is the top of the image.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	width, height = max(0, width), max(0, height)
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the colour of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the colour of pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// Row returns the pixels of row y. The slice aliases the frame.
func (f *Frame) Row(y int) []core.Vec3 {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}
