// Package config holds the viewer configuration and its quality presets.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"GopherTrace/internal/renderer"
)

var ErrInvalidConfig = errors.New("invalid config")

type WindowConfig struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type CameraConfig struct {
	FieldOfView       float64 `json:"fieldOfView"` // degrees
	NearClip          float64 `json:"nearClip"`
	FarClip           float64 `json:"farClip"`
	DefocusAngle      float64 `json:"defocusAngle"` // degrees
	FocusDist         float64 `json:"focusDist"`
	Projection        string  `json:"projection"` // "perspective" or "orthographic"
	OrthographicWidth float64 `json:"orthographicWidth"`
}

type RenderConfig struct {
	SamplesPerPixel int `json:"samplesPerPixel"`
	MaxDepth        int `json:"maxDepth"`
	renderer.ProgressiveConfig
}

type Config struct {
	Window     WindowConfig              `json:"window"`
	Render     RenderConfig              `json:"render"`
	Camera     CameraConfig              `json:"camera"`
	Controller renderer.ControllerConfig `json:"controller"`
	// Seed for the sampler. 0 seeds from the clock.
	Seed int64 `json:"seed"`
}

// Default returns the interactive defaults.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "GopherTrace",
			VSync:  false,
		},
		Render: RenderConfig{
			SamplesPerPixel:   10,
			MaxDepth:          10,
			ProgressiveConfig: renderer.DefaultProgressiveConfig(),
		},
		Camera: CameraConfig{
			FieldOfView:       45,
			NearClip:          0.01,
			FarClip:           100,
			FocusDist:         10,
			Projection:        renderer.Perspective.String(),
			OrthographicWidth: 4,
		},
		Controller: renderer.DefaultControllerConfig(),
	}
}

// HighQuality trades interactivity for a cleaner static image.
func HighQuality() Config {
	cfg := Default()
	cfg.Render.SamplesPerPixel = 50
	cfg.Render.MaxDepth = 50
	cfg.Render.StaticScale = 1.0
	cfg.Render.MovingScale = 0.2
	return cfg
}

// Performance keeps frames cheap on slow machines.
func Performance() Config {
	cfg := Default()
	cfg.Render.SamplesPerPixel = 2
	cfg.Render.MaxDepth = 4
	cfg.Render.StaticScale = 0.25
	cfg.Render.MovingScale = 0.05
	cfg.Render.Accumulate = true
	return cfg
}

// Preset returns a named configuration.
func Preset(name string) (Config, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "quality":
		return HighQuality(), nil
	case "performance":
		return Performance(), nil
	default:
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
}

// Load reads a JSON file over base. Missing fields keep base values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg := base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Render.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samplesPerPixel must be positive", ErrInvalidConfig)
	case c.Render.MaxDepth <= 0:
		return fmt.Errorf("%w: maxDepth must be positive", ErrInvalidConfig)
	case !validScale(c.Render.StaticScale) || !validScale(c.Render.MovingScale):
		return fmt.Errorf("%w: scales must be in (0, 1], got static=%v moving=%v",
			ErrInvalidConfig, c.Render.StaticScale, c.Render.MovingScale)
	case c.Camera.NearClip <= 0 || c.Camera.FarClip <= c.Camera.NearClip:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.Camera.NearClip, c.Camera.FarClip)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("%w: fieldOfView %v out of (0, 180)", ErrInvalidConfig, c.Camera.FieldOfView)
	}
	if _, err := c.Camera.ProjectionType(); err != nil {
		return err
	}
	return nil
}

func validScale(s float64) bool {
	return s > 0 && s <= 1
}

func (c CameraConfig) ProjectionType() (renderer.ProjectionType, error) {
	switch c.Projection {
	case "", "perspective":
		return renderer.Perspective, nil
	case "orthographic":
		return renderer.Orthographic, nil
	default:
		return renderer.Perspective, fmt.Errorf("%w: unknown projection %q", ErrInvalidConfig, c.Projection)
	}
}

// ApplyCamera copies projection and sampling settings onto cam.
func (c Config) ApplyCamera(cam *renderer.Camera) {
	projection, _ := c.Camera.ProjectionType()
	cam.SamplesPerPixel = c.Render.SamplesPerPixel
	cam.MaxDepth = c.Render.MaxDepth
	cam.SetFieldOfView(c.Camera.FieldOfView)
	cam.SetNearClip(c.Camera.NearClip)
	cam.SetFarClip(c.Camera.FarClip)
	cam.SetOrthographicWidth(c.Camera.OrthographicWidth)
	cam.SetProjection(projection)
	cam.SetDefocus(c.Camera.DefocusAngle, c.Camera.FocusDist)
}
