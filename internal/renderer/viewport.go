package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewportGeometry is the world-space pixel grid rays are shot through. It is
// a plain value derived from a camera and recomputed whenever the camera
// moves, turns, changes projection or changes resolution.
type ViewportGeometry struct {
	Width, Height int

	Forward, Right, Up mgl64.Vec3

	// PlaneDistance is how far in front of the camera the grid sits.
	PlaneDistance float64

	ViewportU, ViewportV     mgl64.Vec3
	PixelDeltaU, PixelDeltaV mgl64.Vec3
	UpperLeftPixelCenter     mgl64.Vec3

	DefocusDiskU, DefocusDiskV mgl64.Vec3
}

// ComputeViewport derives the pixel grid for cam at the given resolution.
// Non-positive dimensions are treated as 1.
func ComputeViewport(cam *Camera, width, height int) ViewportGeometry {
	width = max(width, 1)
	height = max(height, 1)

	g := ViewportGeometry{Width: width, Height: height}
	g.Forward, g.Right, g.Up = cam.Transform.Basis()

	g.PlaneDistance = cam.NearClip
	if cam.DefocusAngle > 0 && cam.FocusDist > 0 {
		g.PlaneDistance = cam.FocusDist
	}

	aspect := cam.AspectRatio
	if aspect <= 0 {
		aspect = float64(width) / float64(height)
	}

	var viewportWidth, viewportHeight float64
	switch cam.Projection {
	case Orthographic:
		viewportWidth = cam.OrthographicWidth
		viewportHeight = viewportWidth / aspect
	default:
		viewportHeight = 2 * g.PlaneDistance * math.Tan(mgl64.DegToRad(cam.FieldOfView)/2)
		viewportWidth = viewportHeight * aspect
	}

	g.ViewportU = g.Right.Mul(viewportWidth)
	g.ViewportV = g.Up.Mul(-viewportHeight)
	g.PixelDeltaU = g.ViewportU.Mul(1 / float64(width))
	g.PixelDeltaV = g.ViewportV.Mul(1 / float64(height))

	upperLeft := cam.Transform.Position.
		Add(g.Forward.Mul(g.PlaneDistance)).
		Sub(g.ViewportU.Mul(0.5)).
		Sub(g.ViewportV.Mul(0.5))
	g.UpperLeftPixelCenter = upperLeft.Add(g.PixelDeltaU.Add(g.PixelDeltaV).Mul(0.5))

	if cam.DefocusAngle > 0 {
		radius := g.PlaneDistance * math.Tan(mgl64.DegToRad(cam.DefocusAngle)/2)
		g.DefocusDiskU = g.Right.Mul(radius)
		g.DefocusDiskV = g.Up.Mul(radius)
	}
	return g
}

// PixelCenter returns the world position of pixel (i, j) offset by (dx, dy) pixels.
func (g *ViewportGeometry) PixelCenter(i, j int, dx, dy float64) mgl64.Vec3 {
	return g.UpperLeftPixelCenter.
		Add(g.PixelDeltaU.Mul(float64(i) + dx)).
		Add(g.PixelDeltaV.Mul(float64(j) + dy))
}
