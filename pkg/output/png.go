package output

import (
	"fmt"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePNG writes the frame as an 8-bit PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, ToRGBA(frame)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
