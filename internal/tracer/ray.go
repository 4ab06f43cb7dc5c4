package tracer

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half line. Direction is not required to be unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns Origin + t*Direction. Negative t yields points behind the origin.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
