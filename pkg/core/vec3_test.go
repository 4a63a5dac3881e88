package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0.5)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(-3, 7, 3.5)},
		{"subtract", a.Subtract(b), NewVec3(5, -3, 2.5)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide scalar", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply component-wise", a.MultiplyVec(b), NewVec3(-4, 10, 1.5)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecClose(tt.result, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if a != NewVec3(1, 2, 3) {
		t.Errorf("Operations must not mutate the receiver, got %v", a)
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if v.LengthSquared() != 49 {
		t.Errorf("Expected squared length 49, got %f", v.LengthSquared())
	}
	if v.Length() != 7 {
		t.Errorf("Expected length 7, got %f", v.Length())
	}
	if d := v.Dot(NewVec3(1, -1, 0.5)); d != 2 {
		t.Errorf("Expected dot 2, got %f", d)
	}
}

func TestVec3_CrossMatchesMathgl(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{NewVec3(1, 2, 3), NewVec3(-7, 0.5, 4)},
		{NewVec3(-0.3, 9, 2), NewVec3(2, 2, -2)},
	}

	for _, p := range pairs {
		got := p[0].Cross(p[1])
		ref := mgl64.Vec3{p[0].X, p[0].Y, p[0].Z}.Cross(mgl64.Vec3{p[1].X, p[1].Y, p[1].Z})
		if !vecClose(got, NewVec3(ref[0], ref[1], ref[2]), tolerance) {
			t.Errorf("Cross(%v, %v) = %v, mathgl says %v", p[0], p[1], got, ref)
		}
		// The cross product is orthogonal to both inputs
		if math.Abs(got.Dot(p[0])) > 1e-9 || math.Abs(got.Dot(p[1])) > 1e-9 {
			t.Errorf("Cross product %v not orthogonal to inputs", got)
		}
	}
}

func TestVec3_NormalizeUnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomVec3Range(sampler, -100, 100)
		if v.NearZero() {
			continue
		}
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-12 {
			t.Fatalf("Normalized %v has length %f", v, l)
		}
	}
}

func TestVec3_NormalizeZeroIsNaN(t *testing.T) {
	n := NewVec3(0, 0, 0).Normalize()
	if n.IsFinite() {
		t.Errorf("Expected non-finite result for zero vector, got %v", n)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestReflect_FlipsNormalComponent(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 200; i++ {
		n := RandomUnitVector(sampler)
		v := RandomVec3Range(sampler, -1, 1)
		r := Reflect(v, n)

		if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-12 {
			t.Fatalf("dot(reflect(v,n), n) = %f, want %f", r.Dot(n), -v.Dot(n))
		}
		if math.Abs(r.Length()-v.Length()) > 1e-12 {
			t.Fatalf("Reflection changed length: %f vs %f", r.Length(), v.Length())
		}
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		r := Refract(NewVec3(0, -1, 0), n, 1.0/1.5)
		if !vecClose(r, NewVec3(0, -1, 0), tolerance) {
			t.Errorf("Expected (0,-1,0), got %v", r)
		}
	})

	t.Run("ratio of one does not bend", func(t *testing.T) {
		uv := NewVec3(1, -1, 0.3).Normalize()
		r := Refract(uv, n, 1.0)
		if !vecClose(r, uv, 1e-12) {
			t.Errorf("Expected %v, got %v", uv, r)
		}
	})

	t.Run("obeys snell's law", func(t *testing.T) {
		eta := 1.0 / 1.5
		uv := NewVec3(math.Sin(math.Pi/4), -math.Cos(math.Pi/4), 0)
		r := Refract(uv, n, eta)

		sinIn := math.Sqrt(1 - math.Pow(uv.Dot(n), 2))
		sinOut := math.Sqrt(1 - math.Pow(r.Normalize().Dot(n), 2))
		if math.Abs(sinOut-eta*sinIn) > 1e-12 {
			t.Errorf("sin(out)=%f, expected %f", sinOut, eta*sinIn)
		}
		if math.Abs(r.Length()-1) > 1e-12 {
			t.Errorf("Refracted unit vector should stay unit length, got %f", r.Length())
		}
	})
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, -1))
	if got := r.At(1.5); !vecClose(got, NewVec3(1, 4, -0.5), tolerance) {
		t.Errorf("Expected (1, 4, -0.5), got %v", got)
	}
	if got := r.At(0); got != r.Origin {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
}
