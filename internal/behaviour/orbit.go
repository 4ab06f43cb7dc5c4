package behaviour

import (
	"math"

	"GopherTrace/internal/renderer"

	"github.com/go-gl/mathgl/mgl64"
)

// Orbit turns a camera around a target at constant height, like a turntable.
type Orbit struct {
	Camera *renderer.Camera
	Target mgl64.Vec3
	Speed  float64 // radians per second

	radius float64
	height float64
	angle  float64
}

func NewOrbit(camera *renderer.Camera, target mgl64.Vec3, speed float64) *Orbit {
	return &Orbit{Camera: camera, Target: target, Speed: speed}
}

// Start picks up the camera's current distance and bearing from the target.
func (o *Orbit) Start() {
	offset := o.Camera.Transform.Position.Sub(o.Target)
	o.radius = math.Hypot(offset.X(), offset.Z())
	o.height = offset.Y()
	o.angle = math.Atan2(offset.X(), offset.Z())
}

func (o *Orbit) Update(dt float64) bool {
	if o.Speed == 0 || o.radius == 0 {
		return false
	}
	o.angle += o.Speed * dt
	o.Camera.Transform.Position = o.Target.Add(mgl64.Vec3{
		o.radius * math.Sin(o.angle),
		o.height,
		o.radius * math.Cos(o.angle),
	})
	o.Camera.Transform.LookAt(o.Target)
	return true
}
