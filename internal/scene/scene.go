// Package scene turns scene descriptions into a traceable world.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"GopherTrace/internal/logger"
	"GopherTrace/internal/renderer"
	"GopherTrace/internal/tracer"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var (
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownPreset   = errors.New("unknown scene preset")
)

type MaterialDesc struct {
	Name            string     `json:"name"`
	Kind            string     `json:"kind"` // lambertian, metal or dielectric
	Albedo          [3]float64 `json:"albedo"`
	Fuzz            float64    `json:"fuzz,omitempty"`
	RefractionIndex float64    `json:"refractionIndex,omitempty"`
}

type SphereDesc struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type CameraDesc struct {
	Position     [3]float64  `json:"position"`
	LookAt       *[3]float64 `json:"lookAt,omitempty"`
	FieldOfView  float64     `json:"fieldOfView,omitempty"` // degrees, 0 keeps the configured value
	DefocusAngle float64     `json:"defocusAngle,omitempty"`
	FocusDist    float64     `json:"focusDist,omitempty"`
}

type SkyDesc struct {
	Horizon [3]float64 `json:"horizon"`
	Zenith  [3]float64 `json:"zenith"`
}

// Description is the serialisable form of a scene.
type Description struct {
	Name      string         `json:"name"`
	Camera    CameraDesc     `json:"camera"`
	Sky       *SkyDesc       `json:"sky,omitempty"`
	Materials []MaterialDesc `json:"materials"`
	Spheres   []SphereDesc   `json:"spheres"`
}

// Scene is a built Description ready for rendering.
type Scene struct {
	Name      string
	World     *tracer.HittableList
	Materials map[string]*tracer.Material
	camera    CameraDesc
	sky       *SkyDesc
}

func vec(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}

func (m MaterialDesc) build() (*tracer.Material, error) {
	switch strings.ToLower(m.Kind) {
	case "", "lambertian":
		return tracer.NewLambertian(vec(m.Albedo)), nil
	case "metal":
		return tracer.NewMetal(vec(m.Albedo), m.Fuzz), nil
	case "dielectric":
		ri := m.RefractionIndex
		if ri == 0 {
			ri = 1.5
		}
		return tracer.NewDielectric(ri), nil
	default:
		return nil, fmt.Errorf("material %q: %w kind %q", m.Name, ErrUnknownMaterial, m.Kind)
	}
}

// Build creates shared materials once and the spheres that reference them.
func (d *Description) Build() (*Scene, error) {
	s := &Scene{
		Name:      d.Name,
		World:     tracer.NewHittableList(),
		Materials: make(map[string]*tracer.Material, len(d.Materials)),
		camera:    d.Camera,
		sky:       d.Sky,
	}
	for _, md := range d.Materials {
		mat, err := md.build()
		if err != nil {
			return nil, err
		}
		s.Materials[md.Name] = mat
	}
	for i, sd := range d.Spheres {
		mat, ok := s.Materials[sd.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, sd.Material)
		}
		if sd.Radius < 0 {
			logger.Log.Warn("Negative sphere radius clamped to zero", zap.Int("sphere", i), zap.Float64("radius", sd.Radius))
		}
		s.World.Add(tracer.NewSphere(vec(sd.Center), sd.Radius, mat))
	}
	logger.Log.Info("Scene built",
		zap.String("name", d.Name),
		zap.Int("materials", len(s.Materials)),
		zap.Int("spheres", s.World.Len()))
	return s, nil
}

// ApplyCamera places cam as the scene describes.
func (s *Scene) ApplyCamera(cam *renderer.Camera) {
	cam.Transform.Position = vec(s.camera.Position)
	if s.camera.LookAt != nil {
		cam.Transform.LookAt(vec(*s.camera.LookAt))
	}
	if s.camera.FieldOfView > 0 {
		cam.FieldOfView = s.camera.FieldOfView
	}
	if s.camera.DefocusAngle > 0 {
		cam.DefocusAngle = s.camera.DefocusAngle
		cam.FocusDist = s.camera.FocusDist
	}
	if s.sky != nil {
		cam.Sky = renderer.Sky{Horizon: vec(s.sky.Horizon), Zenith: vec(s.sky.Zenith)}
	}
	cam.UpdateViewport()
}

func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &d, nil
}

func (d *Description) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Open loads a scene file, choosing the format from its extension.
func Open(path string) (*Description, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return Load(path)
	}
}
