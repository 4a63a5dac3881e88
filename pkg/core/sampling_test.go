package core

import (
	"math"
	"testing"
)

func TestRandomRange(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomRange(sampler, -2.5, 4)
		if v < -2.5 || v >= 4 {
			t.Fatalf("RandomRange produced %f outside [-2.5, 4)", v)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
		sum = sum.Add(p)
	}

	// Uniform in a sphere has zero mean
	mean := sum.Divide(n)
	if mean.Length() > 0.02 {
		t.Errorf("Expected mean near origin, got %v", mean)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(11)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample must lie in z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(5)
	normal := NewVec3(0.3, -1, 0.2).Normalize()
	for i := 0; i < 1000; i++ {
		p := RandomInHemisphere(normal, sampler)
		if p.Dot(normal) < 0 {
			t.Fatalf("Point %v is on the wrong side of %v", p, normal)
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed diverged")
		}
	}
	if a.Get3D() != b.Get3D() {
		t.Fatal("Get3D diverged for identical seeds")
	}
}
