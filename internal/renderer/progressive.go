package renderer

import (
	"fmt"

	"GopherTrace/internal/logger"
	"GopherTrace/internal/tracer"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Mode is the scheduler state for a frame.
type Mode int

const (
	// Static renders one scanline per frame at the static scale.
	Static Mode = iota
	// Moving renders every scanline per frame at the moving scale.
	Moving
)

func (m Mode) String() string {
	if m == Moving {
		return "moving"
	}
	return "static"
}

// ProgressiveConfig controls buffer scale and sample counts per mode.
type ProgressiveConfig struct {
	StaticScale float64 `json:"staticScale"`
	MovingScale float64 `json:"movingScale"`
	// MovingSamplesPerPixel overrides the camera's sample count while moving. 0 keeps it.
	MovingSamplesPerPixel int `json:"movingSamplesPerPixel"`
	// Accumulate averages every static pass over a row instead of overwriting it.
	Accumulate bool `json:"accumulate"`
}

func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		StaticScale:           0.5,
		MovingScale:           0.1,
		MovingSamplesPerPixel: 1,
		Accumulate:            true,
	}
}

// FrameStats describes the work done by one RenderFrame call.
type FrameStats struct {
	Mode         Mode
	FirstRow     int
	Rows         int
	Width        int
	Height       int
	Transitioned bool
}

// ProgressiveRenderer spreads a static image over many frames one scanline at
// a time and drops to a cheap full frame whenever the camera moves.
type ProgressiveRenderer struct {
	camera  *Camera
	buffer  *PixelBuffer
	sampler *tracer.Sampler
	config  ProgressiveConfig

	windowWidth  int
	windowHeight int

	currentScanline    int
	wasMovingLastFrame bool
	textureScale       float64

	accum  []mgl64.Vec3
	passes []int
}

// NewProgressiveRenderer starts in Static mode with the buffer at the static scale.
func NewProgressiveRenderer(camera *Camera, sampler *tracer.Sampler, config ProgressiveConfig, windowWidth, windowHeight int) (*ProgressiveRenderer, error) {
	if config.StaticScale <= 0 || config.MovingScale <= 0 {
		return nil, fmt.Errorf("render scales must be positive, got static=%v moving=%v", config.StaticScale, config.MovingScale)
	}
	p := &ProgressiveRenderer{
		camera:       camera,
		buffer:       &PixelBuffer{},
		sampler:      sampler,
		config:       config,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	if err := p.applyScale(config.StaticScale); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ProgressiveRenderer) Buffer() *PixelBuffer      { return p.buffer }
func (p *ProgressiveRenderer) Camera() *Camera           { return p.camera }
func (p *ProgressiveRenderer) CurrentScanline() int      { return p.currentScanline }
func (p *ProgressiveRenderer) TextureScale() float64     { return p.textureScale }
func (p *ProgressiveRenderer) Config() ProgressiveConfig { return p.config }

// Mode reports the mode of the most recent frame.
func (p *ProgressiveRenderer) Mode() Mode {
	if p.wasMovingLastFrame {
		return Moving
	}
	return Static
}

// Resize follows a window size change: the buffer is reallocated at the
// current mode's scale and the sweep restarts from the top.
func (p *ProgressiveRenderer) Resize(windowWidth, windowHeight int) error {
	if windowWidth == p.windowWidth && windowHeight == p.windowHeight {
		return nil
	}
	p.windowWidth = windowWidth
	p.windowHeight = windowHeight
	if windowWidth > 0 && windowHeight > 0 {
		p.camera.SetAspectRatio(float64(windowWidth) / float64(windowHeight))
	}
	return p.applyScale(p.textureScale)
}

// applyScale reallocates the buffer at window*scale, clamped to at least one
// pixel per axis, resets the sweep and recomputes the viewport.
// The camera keeps the window aspect: truncation can change the buffer's
// shape, but the blit stretches it back over the window.
func (p *ProgressiveRenderer) applyScale(scale float64) error {
	width := max(int(float64(p.windowWidth)*scale), 1)
	height := max(int(float64(p.windowHeight)*scale), 1)
	if err := p.buffer.Resize(width, height); err != nil {
		return err
	}
	p.textureScale = scale
	p.currentScanline = 0
	p.accum = make([]mgl64.Vec3, width*height)
	p.passes = make([]int, height)
	p.camera.SetResolution(width, height)
	return nil
}

// RenderFrame advances the scheduler by one frame. moving reports whether the
// camera changed since the previous frame.
func (p *ProgressiveRenderer) RenderFrame(world tracer.Hittable, moving bool) (FrameStats, error) {
	stats := FrameStats{Mode: Static}
	if moving {
		stats.Mode = Moving
	}

	if moving != p.wasMovingLastFrame {
		scale := p.config.StaticScale
		if moving {
			scale = p.config.MovingScale
		}
		if err := p.applyScale(scale); err != nil {
			return stats, err
		}
		stats.Transitioned = true
		logger.Log.Debug("Render mode changed",
			zap.Stringer("mode", stats.Mode),
			zap.Int("width", p.buffer.Width()),
			zap.Int("height", p.buffer.Height()))
	} else if moving {
		p.camera.UpdateViewport()
	}
	p.wasMovingLastFrame = moving

	stats.Width = p.buffer.Width()
	stats.Height = p.buffer.Height()

	if moving {
		samples := p.camera.SamplesPerPixel
		if p.config.MovingSamplesPerPixel > 0 {
			samples = p.config.MovingSamplesPerPixel
		}
		for j := 0; j < stats.Height; j++ {
			p.camera.RenderRow(p.buffer, j, samples, world, p.sampler)
		}
		stats.FirstRow, stats.Rows = 0, stats.Height
		return stats, nil
	}

	j := p.currentScanline
	if p.config.Accumulate {
		p.accumulateRow(j, world)
	} else {
		p.camera.RenderRow(p.buffer, j, p.camera.SamplesPerPixel, world, p.sampler)
	}
	p.currentScanline = (p.currentScanline + 1) % stats.Height
	stats.FirstRow, stats.Rows = j, 1
	return stats, nil
}

func (p *ProgressiveRenderer) accumulateRow(j int, world tracer.Hittable) {
	p.passes[j]++
	inv := 1 / float64(p.passes[j])
	for i := 0; i < p.buffer.Width(); i++ {
		idx := p.buffer.PixelIndex(i, j)
		p.accum[idx] = p.accum[idx].Add(p.camera.PixelColor(i, j, p.camera.SamplesPerPixel, world, p.sampler))
		p.buffer.SetColor(i, j, toPixel(p.accum[idx].Mul(inv)))
	}
}

// RenderFull renders every scanline once at the current resolution, as a
// static frame would over a full sweep.
func (p *ProgressiveRenderer) RenderFull(world tracer.Hittable) error {
	for row := 0; row < p.buffer.Height(); row++ {
		if _, err := p.RenderFrame(world, false); err != nil {
			return err
		}
	}
	return nil
}
