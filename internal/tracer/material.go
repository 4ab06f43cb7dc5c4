package tracer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// machineEpsilon is the float64 spacing at 1.0.
const machineEpsilon = 2.220446049250313e-16

type MaterialKind int

const (
	Lambertian MaterialKind = iota
	Metal
	Dielectric
)

func (k MaterialKind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("MaterialKind(%d)", int(k))
	}
}

// Material is an immutable surface description shared by any number of
// spheres. Only the fields relevant to Kind are meaningful.
type Material struct {
	kind            MaterialKind
	albedo          mgl64.Vec3
	fuzz            float64
	refractionIndex float64
}

// ScatterResult is the outcome of a successful scatter.
type ScatterResult struct {
	Attenuation mgl64.Vec3
	Scattered   Ray
}

func NewLambertian(albedo mgl64.Vec3) *Material {
	return &Material{kind: Lambertian, albedo: albedo}
}

// NewMetal creates a metal. fuzz is clamped to [0, 1].
func NewMetal(albedo mgl64.Vec3, fuzz float64) *Material {
	return &Material{kind: Metal, albedo: albedo, fuzz: mgl64.Clamp(fuzz, 0, 1)}
}

// NewDielectric creates a clear material with the given index of refraction
// relative to the enclosing medium.
func NewDielectric(refractionIndex float64) *Material {
	return &Material{kind: Dielectric, albedo: mgl64.Vec3{1, 1, 1}, refractionIndex: refractionIndex}
}

func (m *Material) Kind() MaterialKind       { return m.kind }
func (m *Material) Albedo() mgl64.Vec3       { return m.albedo }
func (m *Material) Fuzz() float64            { return m.fuzz }
func (m *Material) RefractionIndex() float64 { return m.refractionIndex }

// Scatter computes the bounce of in at rec. A false result means the path is absorbed.
func (m *Material) Scatter(in Ray, rec *HitRecord, s *Sampler) (ScatterResult, bool) {
	switch m.kind {
	case Lambertian:
		return m.scatterLambertian(rec, s)
	case Metal:
		return m.scatterMetal(in, rec, s)
	case Dielectric:
		return m.scatterDielectric(in, rec, s)
	default:
		panic(fmt.Sprintf("tracer: unhandled material kind %v", m.kind))
	}
}

func (m *Material) scatterLambertian(rec *HitRecord, s *Sampler) (ScatterResult, bool) {
	direction := rec.Normal.Add(s.UnitVector())
	if direction.Dot(direction) < machineEpsilon {
		direction = rec.Normal
	}
	return ScatterResult{
		Attenuation: m.albedo,
		Scattered:   NewRay(rec.Point, direction),
	}, true
}

func (m *Material) scatterMetal(in Ray, rec *HitRecord, s *Sampler) (ScatterResult, bool) {
	direction := Reflect(in.Direction, rec.Normal).Normalize()
	if m.fuzz > 0 {
		direction = direction.Add(s.UnitVector().Mul(m.fuzz))
	}
	scattered := NewRay(rec.Point, direction)
	return ScatterResult{Attenuation: m.albedo, Scattered: scattered}, direction.Dot(rec.Normal) > 0
}

func (m *Material) scatterDielectric(in Ray, rec *HitRecord, s *Sampler) (ScatterResult, bool) {
	ri := m.refractionIndex
	if rec.FrontFace {
		ri = 1.0 / m.refractionIndex
	}

	unitDirection := in.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Mul(-1).Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction mgl64.Vec3
	switch {
	case ri == 1.0:
		// Matched media: no interface, so no reflection at any angle.
		direction = unitDirection
	case ri*sinTheta > 1.0 || Reflectance(cosTheta, ri) > s.Float64():
		direction = Reflect(unitDirection, rec.Normal)
	default:
		direction = Refract(unitDirection, rec.Normal, ri)
	}

	return ScatterResult{
		Attenuation: mgl64.Vec3{1, 1, 1},
		Scattered:   NewRay(rec.Point, direction),
	}, true
}

// Reflectance is Schlick's approximation of Fresnel reflectance.
func Reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
