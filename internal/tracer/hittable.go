package tracer

import "github.com/go-gl/mathgl/mgl64"

// HitRecord describes the closest intersection found along a ray.
type HitRecord struct {
	Point     mgl64.Vec3
	Normal    mgl64.Vec3 // unit length, facing against the incoming ray
	Material  *Material
	T         float64
	FrontFace bool
}

// SetFaceNormal orients the normal against r. outwardNormal must be unit length.
func (rec *HitRecord) SetFaceNormal(r Ray, outwardNormal mgl64.Vec3) {
	rec.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Mul(-1)
	}
}

// Hittable is implemented by Sphere and HittableList only.
type Hittable interface {
	// Hit reports an intersection with t inside rayT and fills rec. On a miss
	// rec is left untouched.
	Hit(r Ray, rayT Interval, rec *HitRecord) bool

	hittable()
}
