package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Expected black for a pixel without samples, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected (0.5, 0.5, 0.5), got %v", got)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black average to a third of white
	frame := NewFrame(2, 2)
	frame.Set(0, 0, core.NewVec3(1, 0, 0))
	frame.Set(1, 0, core.NewVec3(0, 1, 0))
	frame.Set(0, 1, core.NewVec3(0, 0, 1))

	avgLum := CalculateAverageLuminance(frame)
	expected := 0.25
	tolerance := 0.0001

	if math.Abs(avgLum-expected) > tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}

	if CalculateAverageLuminance(NewFrame(0, 0)) != 0 {
		t.Error("Expected zero luminance for an empty frame")
	}
}

func TestFrame_RowAliasesPixels(t *testing.T) {
	frame := NewFrame(3, 2)
	row := frame.Row(1)
	row[2] = core.NewVec3(1, 2, 3)

	if frame.At(2, 1) != core.NewVec3(1, 2, 3) {
		t.Errorf("Row slice should write through to the frame, got %v", frame.At(2, 1))
	}
	if frame.Pixels[5] != core.NewVec3(1, 2, 3) {
		t.Error("Frame must be row-major")
	}
	if len(frame.Row(0)) != 3 {
		t.Errorf("Expected row length 3, got %d", len(frame.Row(0)))
	}
}
