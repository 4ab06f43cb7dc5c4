package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Sphere struct {
	center   mgl64.Vec3
	radius   float64
	material *Material
}

// NewSphere creates a sphere. Negative radii are clamped to zero.
func NewSphere(center mgl64.Vec3, radius float64, material *Material) *Sphere {
	return &Sphere{
		center:   center,
		radius:   math.Max(0, radius),
		material: material,
	}
}

func (s *Sphere) Center() mgl64.Vec3  { return s.center }
func (s *Sphere) Radius() float64     { return s.radius }
func (s *Sphere) Material() *Material { return s.material }

func (s *Sphere) hittable() {}

func (s *Sphere) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	// A zero-radius sphere has no surface to orient a normal on.
	if s.radius == 0 {
		return false
	}

	oc := s.center.Sub(r.Origin)
	a := r.Direction.Dot(r.Direction)
	h := r.Direction.Dot(oc)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = r.At(root)
	rec.SetFaceNormal(r, rec.Point.Sub(s.center).Mul(1/s.radius))
	rec.Material = s.material
	return true
}
