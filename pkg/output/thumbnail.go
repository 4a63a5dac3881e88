package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit within maxSize x maxSize, keeping its
// aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}

// EncodeThumbnail renders a PNG preview of img no larger than maxSize on either side
func EncodeThumbnail(img image.Image, maxSize uint) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, Thumbnail(img, maxSize)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
