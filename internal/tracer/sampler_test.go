package tracer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSamplerDeterministicForSeed(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Samplers with the same seed should produce the same sequence")
		}
	}
}

func TestSamplerUnitVector(t *testing.T) {
	s := NewSampler(42)
	for i := 0; i < 1000; i++ {
		v := s.UnitVector()
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Fatalf("Expected unit length, got %v", v.Len())
		}
	}
}

func TestSamplerInUnitDiskAndOffsets(t *testing.T) {
	s := NewSampler(9)
	for i := 0; i < 1000; i++ {
		p := s.InUnitDisk()
		if p.Z() != 0 || p.Dot(p) >= 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
		x, y := s.SquareOffset()
		if x < -0.5 || x >= 0.5 || y < -0.5 || y >= 0.5 {
			t.Fatalf("Offset (%v, %v) outside [-0.5, 0.5)", x, y)
		}
		if r := s.Range(2, 3); r < 2 || r >= 3 {
			t.Fatalf("Range value %v outside [2, 3)", r)
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	if got := Reflect(mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 1, 0}); got != (mgl64.Vec3{1, 1, 0}) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
	if got := MulElem(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 0.5, -1}); got != (mgl64.Vec3{2, 1, -3}) {
		t.Errorf("Expected (2,1,-3), got %v", got)
	}
	if got := Lerp(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0.5, 0.7, 1}, 0.5); !got.ApproxEqualThreshold(mgl64.Vec3{0.75, 0.85, 1}, 1e-12) {
		t.Errorf("Expected midpoint, got %v", got)
	}
	if LinearToGamma(-1) != 0 || LinearToGamma(0.25) != 0.5 {
		t.Error("LinearToGamma should clamp negatives and take the square root")
	}
}
