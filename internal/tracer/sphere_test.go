package tracer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func TestSphereHitFromOutside(t *testing.T) {
	mat := NewLambertian(mgl64.Vec3{0.5, 0.5, 0.5})

	tests := []struct {
		name      string
		ray       Ray
		expectedT float64
		normal    mgl64.Vec3
	}{
		{
			name:      "along -z",
			ray:       NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1}),
			expectedT: 0.5,
			normal:    mgl64.Vec3{0, 0, 1},
		},
		{
			name:      "non-unit direction",
			ray:       NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -2}),
			expectedT: 0.25,
			normal:    mgl64.Vec3{0, 0, 1},
		},
		{
			name:      "from above",
			ray:       NewRay(mgl64.Vec3{0, 3, -1}, mgl64.Vec3{0, -1, 0}),
			expectedT: 2.5,
			normal:    mgl64.Vec3{0, 1, 0},
		},
	}

	sphere := NewSphere(mgl64.Vec3{0, 0, -1}, 0.5, mat)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec HitRecord
			if !sphere.Hit(tt.ray, NewInterval(0.001, math.Inf(1)), &rec) {
				t.Fatal("Expected a hit")
			}
			if math.Abs(rec.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, rec.T)
			}
			if !rec.Normal.ApproxEqualThreshold(tt.normal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.normal, rec.Normal)
			}
			want := rec.Point.Sub(sphere.Center()).Normalize()
			if !rec.Normal.ApproxEqualThreshold(want, tolerance) {
				t.Errorf("Normal %v should point from center to hit point %v", rec.Normal, want)
			}
			if !rec.FrontFace {
				t.Error("Hit from outside should be a front face")
			}
			if rec.Material != mat {
				t.Error("Hit record should reference the sphere's material")
			}
		})
	}
}

func TestSphereMissLeavesRecordUntouched(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, -1}, 0.5, NewLambertian(mgl64.Vec3{1, 1, 1}))
	ray := NewRay(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 0, -1})

	rec := HitRecord{T: 42}
	if sphere.Hit(ray, NewInterval(0.001, math.Inf(1)), &rec) {
		t.Fatal("Expected a miss")
	}
	if rec.T != 42 || rec.Material != nil {
		t.Errorf("Miss should not modify the record, got %+v", rec)
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 1, NewDielectric(1.5))
	ray := NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})

	var rec HitRecord
	if !sphere.Hit(ray, NewInterval(0.001, math.Inf(1)), &rec) {
		t.Fatal("Expected a hit from inside")
	}
	if math.Abs(rec.T-1) > tolerance {
		t.Errorf("Expected t=1, got %v", rec.T)
	}
	if rec.FrontFace {
		t.Error("Hit from inside should be a back face")
	}
	if !rec.Normal.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, tolerance) {
		t.Errorf("Normal should face the ray, got %v", rec.Normal)
	}
}

func TestSphereRespectsInterval(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, -1}, 0.5, nil)
	ray := NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1})

	var rec HitRecord
	if sphere.Hit(ray, NewInterval(0.001, 0.4), &rec) {
		t.Error("Both roots lie beyond the interval max")
	}
	if !sphere.Hit(ray, NewInterval(0.6, 10), &rec) {
		t.Fatal("Far root should be accepted when the near root is excluded")
	}
	if math.Abs(rec.T-1.5) > tolerance {
		t.Errorf("Expected far root t=1.5, got %v", rec.T)
	}
}

func TestSphereRadiusClamped(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{}, -3, nil)
	if sphere.Radius() != 0 {
		t.Errorf("Expected radius clamped to 0, got %v", sphere.Radius())
	}
	var rec HitRecord
	if sphere.Hit(NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}), UniverseInterval, &rec) {
		t.Error("A zero-radius sphere should never be hit")
	}
}

func TestHitRecordSetFaceNormal(t *testing.T) {
	var rec HitRecord
	outward := mgl64.Vec3{0, 1, 0}

	rec.SetFaceNormal(NewRay(mgl64.Vec3{}, mgl64.Vec3{0, -1, 0}), outward)
	if !rec.FrontFace || rec.Normal != outward {
		t.Errorf("Opposing ray should give front face, got %+v", rec)
	}

	rec.SetFaceNormal(NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}), outward)
	if rec.FrontFace || rec.Normal != (mgl64.Vec3{0, -1, 0}) {
		t.Errorf("Aligned ray should give back face with flipped normal, got %+v", rec)
	}
}
