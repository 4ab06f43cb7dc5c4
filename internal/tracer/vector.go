package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MulElem multiplies two vectors component-wise.
func MulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Reflect mirrors v about the plane with normal n. n must be unit length.
func Reflect(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n, where
// etaRatio is the ratio of refractive indices (incident over transmitted).
func Refract(uv, n mgl64.Vec3, etaRatio float64) mgl64.Vec3 {
	cosTheta := math.Min(uv.Mul(-1).Dot(n), 1.0)
	perp := uv.Add(n.Mul(cosTheta)).Mul(etaRatio)
	parallel := n.Mul(-math.Sqrt(math.Abs(1.0 - perp.Dot(perp))))
	return perp.Add(parallel)
}

// Lerp blends from a (t=0) to b (t=1).
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// LinearToGamma applies gamma 2 to a linear channel value. Negative input maps to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
