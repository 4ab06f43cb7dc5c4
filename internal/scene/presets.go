package scene

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// Preset returns a built-in scene description by name.
func Preset(name string, seed int64) (*Description, error) {
	switch name {
	case "", "default":
		return DefaultPreset(), nil
	case "field":
		return FieldPreset(seed, 8), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// DefaultPreset is a ground plane with a diffuse, a hollow glass and a metal sphere.
func DefaultPreset() *Description {
	return &Description{
		Name:   "default",
		Camera: CameraDesc{Position: [3]float64{0, 0, 0}, LookAt: &[3]float64{0, 0, -1}},
		Materials: []MaterialDesc{
			{Name: "ground", Kind: "lambertian", Albedo: [3]float64{0.8, 0.8, 0.0}},
			{Name: "center", Kind: "lambertian", Albedo: [3]float64{0.1, 0.2, 0.5}},
			{Name: "glass", Kind: "dielectric", RefractionIndex: 1.5},
			{Name: "bubble", Kind: "dielectric", RefractionIndex: 1.0 / 1.5},
			{Name: "gold", Kind: "metal", Albedo: [3]float64{0.8, 0.6, 0.2}, Fuzz: 1.0},
		},
		Spheres: []SphereDesc{
			{Center: [3]float64{0, -100.5, -1}, Radius: 100, Material: "ground"},
			{Center: [3]float64{0, 0, -1.2}, Radius: 0.5, Material: "center"},
			{Center: [3]float64{-1, 0, -1}, Radius: 0.5, Material: "glass"},
			{Center: [3]float64{-1, 0, -1}, Radius: 0.4, Material: "bubble"},
			{Center: [3]float64{1, 0, -1}, Radius: 0.5, Material: "gold"},
		},
	}
}

// FieldPreset scatters small spheres over a (2*half+1)^2 grid. 2D Perlin noise
// picks each sphere's offset, size and material, so a seed always yields the
// same field.
func FieldPreset(seed int64, half int) *Description {
	noise := perlin.NewPerlin(2, 2, 3, seed)

	d := &Description{
		Name: "field",
		Camera: CameraDesc{
			Position:     [3]float64{13, 2, 3},
			LookAt:       &[3]float64{0, 0, 0},
			FieldOfView:  20,
			DefocusAngle: 0.6,
			FocusDist:    10,
		},
		Materials: []MaterialDesc{
			{Name: "ground", Kind: "lambertian", Albedo: [3]float64{0.5, 0.5, 0.5}},
			{Name: "glass", Kind: "dielectric", RefractionIndex: 1.5},
			{Name: "clay", Kind: "lambertian", Albedo: [3]float64{0.4, 0.2, 0.1}},
			{Name: "steel", Kind: "metal", Albedo: [3]float64{0.7, 0.6, 0.5}, Fuzz: 0.0},
		},
		Spheres: []SphereDesc{
			{Center: [3]float64{0, -1000, 0}, Radius: 1000, Material: "ground"},
			{Center: [3]float64{0, 1, 0}, Radius: 1, Material: "glass"},
			{Center: [3]float64{-4, 1, 0}, Radius: 1, Material: "clay"},
			{Center: [3]float64{4, 1, 0}, Radius: 1, Material: "steel"},
		},
	}

	for a := -half; a <= half; a++ {
		for b := -half; b <= half; b++ {
			n := noise.Noise2D(float64(a)*0.37, float64(b)*0.37)
			jitter := noise.Noise2D(float64(a)*0.37+17.3, float64(b)*0.37-5.1)
			radius := 0.15 + 0.1*math.Abs(n)
			center := [3]float64{float64(a) + 0.9*jitter, radius, float64(b) + 0.9*n}

			if clearOfFeatures(center) {
				d.addFieldSphere(a, b, n, center, radius)
			}
		}
	}
	return d
}

// clearOfFeatures keeps field spheres away from the three large spheres.
func clearOfFeatures(center [3]float64) bool {
	for _, x := range []float64{-4, 0, 4} {
		dx, dz := center[0]-x, center[2]
		if math.Sqrt(dx*dx+dz*dz) < 1.3 {
			return false
		}
	}
	return true
}

func (d *Description) addFieldSphere(a, b int, n float64, center [3]float64, radius float64) {
	name := fmt.Sprintf("field_%d_%d", a, b)
	t := 0.5 * (n + 1) // roughly [0, 1]

	var mat MaterialDesc
	switch {
	case t < 0.55:
		mat = MaterialDesc{Name: name, Kind: "lambertian", Albedo: [3]float64{t * t, 0.3 + 0.5*t, 1 - t}}
	case t < 0.7:
		mat = MaterialDesc{Name: name, Kind: "metal", Albedo: [3]float64{0.5 + t/2, 0.5 + t/3, 0.5}, Fuzz: 0.7 - t}
	default:
		mat = MaterialDesc{Name: "glass"}
	}
	if mat.Name == name {
		d.Materials = append(d.Materials, mat)
	}
	d.Spheres = append(d.Spheres, SphereDesc{Center: center, Radius: radius, Material: mat.Name})
}
