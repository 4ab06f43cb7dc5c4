// camera.go
package renderer

import (
	"math"

	"GopherTrace/internal/tracer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type ProjectionType int

const (
	Perspective ProjectionType = iota
	Orthographic
)

func (p ProjectionType) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// rayTMin keeps bounce rays from re-hitting the surface they leave.
const rayTMin = 0.001

// Sky is the background gradient seen by rays that escape the scene.
type Sky struct {
	Horizon mgl64.Vec3
	Zenith  mgl64.Vec3
}

func DefaultSky() Sky {
	return Sky{
		Horizon: mgl64.Vec3{1.0, 1.0, 1.0},
		Zenith:  mgl64.Vec3{0.5, 0.7, 1.0},
	}
}

// Color blends horizon to zenith by the direction's height.
func (s Sky) Color(direction mgl64.Vec3) mgl64.Vec3 {
	unit := direction.Normalize()
	a := 0.5 * (unit.Y() + 1.0)
	return tracer.Lerp(s.Horizon, s.Zenith, a)
}

type Camera struct {
	// HOT DATA - read for every ray
	Transform       Transform
	SamplesPerPixel int
	MaxDepth        int
	Sky             Sky
	geometry        ViewportGeometry

	// COLD DATA - projection, changed through setters
	FieldOfView       float64 // vertical, degrees
	AspectRatio       float64
	NearClip          float64
	FarClip           float64
	OrthographicWidth float64
	Projection        ProjectionType
	DefocusAngle      float64 // degrees
	FocusDist         float64
}

// NewDefaultCamera returns a perspective camera at the origin looking down -Z.
func NewDefaultCamera(width, height int) *Camera {
	aspect := 16.0 / 9.0
	if width > 0 && height > 0 {
		aspect = float64(width) / float64(height)
	}
	camera := Camera{
		SamplesPerPixel:   10,
		MaxDepth:          10,
		Sky:               DefaultSky(),
		FieldOfView:       45.0,
		AspectRatio:       aspect,
		NearClip:          0.01,
		FarClip:           100.0,
		OrthographicWidth: 4.0,
		Projection:        Perspective,
		FocusDist:         10.0,
	}
	camera.SetResolution(width, height)
	return &camera
}

// Geometry returns the current viewport geometry.
func (c *Camera) Geometry() ViewportGeometry {
	return c.geometry
}

// UpdateViewport recomputes the pixel grid from the transform and projection.
func (c *Camera) UpdateViewport() {
	c.geometry = ComputeViewport(c, c.geometry.Width, c.geometry.Height)
}

// SetResolution sets the pixel grid size and recomputes the viewport.
func (c *Camera) SetResolution(width, height int) {
	c.geometry.Width = max(width, 1)
	c.geometry.Height = max(height, 1)
	c.UpdateViewport()
}

func (c *Camera) SetFieldOfView(fov float64) {
	c.FieldOfView = fov
	c.UpdateViewport()
}

func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.UpdateViewport()
}

func (c *Camera) SetNearClip(near float64) {
	c.NearClip = near
	c.UpdateViewport()
}

func (c *Camera) SetFarClip(far float64) {
	c.FarClip = far
}

func (c *Camera) SetOrthographicWidth(width float64) {
	c.OrthographicWidth = width
	c.UpdateViewport()
}

func (c *Camera) SetProjection(p ProjectionType) {
	c.Projection = p
	c.UpdateViewport()
}

// SetDefocus enables depth of field when angle > 0.
func (c *Camera) SetDefocus(angle, focusDist float64) {
	c.DefocusAngle = angle
	c.FocusDist = focusDist
	c.UpdateViewport()
}

// GetRay builds a jittered ray through pixel (i, j).
func (c *Camera) GetRay(i, j int, s *tracer.Sampler) tracer.Ray {
	ox, oy := s.SquareOffset()
	target := c.geometry.PixelCenter(i, j, ox, oy)

	if c.Projection == Orthographic {
		origin := target.Sub(c.geometry.Forward.Mul(c.geometry.PlaneDistance))
		return tracer.NewRay(origin, c.geometry.Forward)
	}

	origin := c.Transform.Position
	if c.DefocusAngle > 0 {
		p := s.InUnitDisk()
		origin = origin.
			Add(c.geometry.DefocusDiskU.Mul(p.X())).
			Add(c.geometry.DefocusDiskV.Mul(p.Y()))
	}
	return tracer.NewRay(origin, target.Sub(origin))
}

// RayColor traces r through world for at most depth bounces.
func (c *Camera) RayColor(r tracer.Ray, depth int, world tracer.Hittable, s *tracer.Sampler) mgl64.Vec3 {
	if depth <= 0 {
		return mgl64.Vec3{}
	}

	var rec tracer.HitRecord
	if world.Hit(r, tracer.NewInterval(rayTMin, math.Inf(1)), &rec) {
		if rec.Material == nil {
			return mgl64.Vec3{}
		}
		res, ok := rec.Material.Scatter(r, &rec, s)
		if !ok {
			return mgl64.Vec3{}
		}
		return tracer.MulElem(res.Attenuation, c.RayColor(res.Scattered, depth-1, world, s))
	}

	return c.Sky.Color(r.Direction)
}

// PixelColor averages samples jittered rays through pixel (i, j).
func (c *Camera) PixelColor(i, j, samples int, world tracer.Hittable, s *tracer.Sampler) mgl64.Vec3 {
	samples = max(samples, 1)
	var sum mgl64.Vec3
	for n := 0; n < samples; n++ {
		sum = sum.Add(c.RayColor(c.GetRay(i, j, s), c.MaxDepth, world, s))
	}
	return sum.Mul(1 / float64(samples))
}

// RenderRow writes scanline j of buf.
func (c *Camera) RenderRow(buf *PixelBuffer, j, samples int, world tracer.Hittable, s *tracer.Sampler) {
	for i := 0; i < buf.Width(); i++ {
		buf.SetColor(i, j, toPixel(c.PixelColor(i, j, samples, world, s)))
	}
}

func toPixel(c mgl64.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{float32(c[0]), float32(c[1]), float32(c[2]), 1}
}
