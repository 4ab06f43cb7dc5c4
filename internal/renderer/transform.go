package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxPitch keeps the forward vector off the world up axis so the basis stays defined.
const maxPitch = math.Pi/2 - 1e-3

var worldUp = mgl64.Vec3{0, 1, 0}

// Transform is a camera position plus yaw/pitch orientation in radians.
// Yaw 0 and pitch 0 look down -Z.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward returns the unit view direction.
func (t *Transform) Forward() mgl64.Vec3 {
	cp := math.Cos(t.Pitch)
	return mgl64.Vec3{
		cp * math.Sin(t.Yaw),
		math.Sin(t.Pitch),
		-cp * math.Cos(t.Yaw),
	}.Normalize()
}

// Basis returns forward, right and up unit vectors.
func (t *Transform) Basis() (forward, right, up mgl64.Vec3) {
	forward = t.Forward()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// MoveRelative moves along the local right, up and forward axes.
func (t *Transform) MoveRelative(right, up, forward float64) {
	f, r, u := t.Basis()
	t.Position = t.Position.Add(r.Mul(right)).Add(u.Mul(up)).Add(f.Mul(forward))
}

// MoveAbsolute moves in world space.
func (t *Transform) MoveAbsolute(x, y, z float64) {
	t.Position = t.Position.Add(mgl64.Vec3{x, y, z})
}

// Rotate adds to pitch and yaw. Pitch is clamped just inside ±π/2.
func (t *Transform) Rotate(pitch, yaw float64) {
	t.Pitch = mgl64.Clamp(t.Pitch+pitch, -maxPitch, maxPitch)
	t.Yaw += yaw
}

// LookAt points the transform at target from its current position.
func (t *Transform) LookAt(target mgl64.Vec3) {
	dir := target.Sub(t.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	t.Pitch = mgl64.Clamp(math.Asin(dir.Y()), -maxPitch, maxPitch)
	t.Yaw = math.Atan2(dir.X(), -dir.Z())
}
