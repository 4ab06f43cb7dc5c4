package behaviour

import (
	"math"
	"testing"

	"GopherTrace/internal/renderer"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOrbitKeepsDistance(t *testing.T) {
	cam := renderer.NewDefaultCamera(16, 9)
	cam.Transform.Position = mgl64.Vec3{0, 1, 5}
	orbit := NewOrbit(cam, mgl64.Vec3{0, 0, 0}, math.Pi/2)
	orbit.Start()

	if !orbit.Update(1) {
		t.Fatal("Orbit should report a camera change")
	}
	want := mgl64.Vec3{5, 1, 0}
	if !cam.Transform.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Expected position %v, got %v", want, cam.Transform.Position)
	}

	toTarget := mgl64.Vec3{0, 0, 0}.Sub(cam.Transform.Position).Normalize()
	if !cam.Transform.Forward().ApproxEqualThreshold(toTarget, 1e-6) {
		t.Errorf("Camera should face the target, forward %v want %v", cam.Transform.Forward(), toTarget)
	}
}

func TestOrbitStoppedReportsNoChange(t *testing.T) {
	cam := renderer.NewDefaultCamera(16, 9)
	cam.Transform.Position = mgl64.Vec3{0, 0, 3}
	orbit := NewOrbit(cam, mgl64.Vec3{}, 0)
	orbit.Start()

	if orbit.Update(1) {
		t.Error("Zero speed orbit should not move the camera")
	}
	if cam.Transform.Position != (mgl64.Vec3{0, 0, 3}) {
		t.Errorf("Camera moved to %v", cam.Transform.Position)
	}
}
