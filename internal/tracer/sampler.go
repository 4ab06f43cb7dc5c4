package tracer

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// smallestNonzero rejects vectors whose squared length underflows on normalization.
const smallestNonzero = math.SmallestNonzeroFloat64

// Sampler is the random source used by ray generation and scattering.
// It is not safe for concurrent use; each render thread owns one.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a deterministic sampler. A zero seed picks a time-based one.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a value in [min, max).
func (s *Sampler) Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// Vec returns a vector with each component in [min, max).
func (s *Sampler) Vec(min, max float64) mgl64.Vec3 {
	return mgl64.Vec3{s.Range(min, max), s.Range(min, max), s.Range(min, max)}
}

// SquareOffset returns a jitter offset in [-0.5, 0.5) on both axes.
func (s *Sampler) SquareOffset() (float64, float64) {
	return s.rng.Float64() - 0.5, s.rng.Float64() - 0.5
}

// UnitVector returns a uniformly distributed direction on the unit sphere.
func (s *Sampler) UnitVector() mgl64.Vec3 {
	for {
		p := s.Vec(-1, 1)
		lensq := p.Dot(p)
		if smallestNonzero < lensq && lensq <= 1 {
			return p.Mul(1 / math.Sqrt(lensq))
		}
	}
}

// InUnitDisk returns a point inside the unit disk on the z=0 plane.
func (s *Sampler) InUnitDisk() mgl64.Vec3 {
	for {
		p := mgl64.Vec3{s.Range(-1, 1), s.Range(-1, 1), 0}
		if p.Dot(p) < 1 {
			return p
		}
	}
}
