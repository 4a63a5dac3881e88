package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Supported output formats
const (
	FormatPNG = "png"
	FormatPPM = "ppm"
)

// ErrUnsupportedFormat is returned for an unknown output format
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatPNG, FormatPPM}
}

// IsSupportedFormat reports whether format can be encoded
func IsSupportedFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

// ContentType returns the MIME type for a format
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatPPM:
		return "image/x-portable-pixmap"
	default:
		return "application/octet-stream"
	}
}

// Encode writes the frame in the requested format
func Encode(w io.Writer, frame *renderer.Frame, format string) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, frame)
	case FormatPPM:
		return WritePPM(w, frame)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// EncodeBytes encodes the frame into memory
func EncodeBytes(frame *renderer.Frame, format string) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Encode(buf, frame, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveFile writes data to path, creating parent directories as needed
func SaveFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
