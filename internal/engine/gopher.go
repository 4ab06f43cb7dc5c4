package engine

import (
	"errors"
	"fmt"
	"runtime"

	behaviour "GopherTrace/internal/behaviour"
	"GopherTrace/internal/config"
	"GopherTrace/internal/input"
	"GopherTrace/internal/logger"
	"GopherTrace/internal/renderer"
	"GopherTrace/internal/tracer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// How often the window title is refreshed with frame stats, in seconds.
const titleRefreshInterval = 0.5

var ErrNoWorld = errors.New("no world to render")

type Gopher struct {
	Width             int32
	Height            int32
	Config            config.Config
	Camera            *renderer.Camera
	World             tracer.Hittable
	SnapshotDir       string
	EnableCameraInput bool // Control whether camera processes keyboard/mouse input

	rendererAPI      Render
	window           *glfw.Window
	input            *windowInput
	controller       *renderer.FPSController
	progressive      *renderer.ProgressiveRenderer
	sampler          *tracer.Sampler
	snapshots        *SnapshotWriter
	snapshotHeld     bool
	worldChanged     bool
	lastStats        renderer.FrameStats
	onRenderCallback func(deltaTime float64)
}

// NewGopher sets up the camera, controller and progressive renderer for cfg.
// No window exists until Render is called.
func NewGopher(cfg config.Config) (*Gopher, error) {
	logger.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Log.Info("GopherTrace initializing...",
		zap.Int32("width", cfg.Window.Width),
		zap.Int32("height", cfg.Window.Height),
		zap.Int("samplesPerPixel", cfg.Render.SamplesPerPixel),
		zap.Int("maxDepth", cfg.Render.MaxDepth))

	width, height := int(cfg.Window.Width), int(cfg.Window.Height)
	camera := renderer.NewDefaultCamera(width, height)
	cfg.ApplyCamera(camera)

	sampler := tracer.NewSampler(cfg.Seed)
	progressive, err := renderer.NewProgressiveRenderer(camera, sampler, cfg.Render.ProgressiveConfig, width, height)
	if err != nil {
		return nil, err
	}

	return &Gopher{
		Width:             cfg.Window.Width,
		Height:            cfg.Window.Height,
		Config:            cfg,
		Camera:            camera,
		SnapshotDir:       ".",
		EnableCameraInput: true,
		rendererAPI:       &OpenGLRenderer{},
		controller:        renderer.NewFPSController(camera, cfg.Controller),
		progressive:       progressive,
		sampler:           sampler,
	}, nil
}

// SetWorld replaces the traced scene. The next frame renders as moving.
func (gopher *Gopher) SetWorld(world tracer.Hittable) {
	gopher.World = world
	gopher.worldChanged = true
}

// Render opens the window and runs the frame loop until it closes.
func (gopher *Gopher) Render(x, y int) error {
	if gopher.World == nil {
		return ErrNoWorld
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer logger.Sync()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	gopher.window, err = glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Config.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer gopher.window.Destroy()

	gopher.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	gopher.window.SetPos(x, y)
	gopher.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	// The framebuffer can differ from the requested window size on HiDPI screens.
	fbWidth, fbHeight := gopher.window.GetFramebufferSize()
	if err := gopher.rendererAPI.Init(int32(fbWidth), int32(fbHeight), gopher.window); err != nil {
		return err
	}
	defer gopher.rendererAPI.Cleanup()

	gopher.input = newWindowInput(gopher.window)
	gopher.snapshots = NewSnapshotWriter(gopher.SnapshotDir)
	defer gopher.snapshots.Close()

	if err := gopher.RenderLoop(); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	return nil
}

// RenderLoop runs frames until exit is requested or a frame fails.
func (gopher *Gopher) RenderLoop() error {
	lastTime := glfw.GetTime()
	lastTitle := lastTime
	frames := 0
	lastWidth, lastHeight := gopher.input.Size()

	for {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		glfw.PollEvents()
		gopher.input.poll()
		if gopher.input.ExitRequested() {
			break
		}

		if w, h := gopher.input.Size(); w != lastWidth || h != lastHeight {
			gopher.rendererAPI.UpdateViewport(int32(w), int32(h))
			lastWidth, lastHeight = w, h
		}

		if err := gopher.presentFrame(gopher.input, deltaTime); err != nil {
			logger.Log.Error("Frame failed", zap.Error(err))
			return err
		}

		frames++
		if elapsed := currentTime - lastTitle; elapsed >= titleRefreshInterval {
			gopher.window.SetTitle(gopher.title(float64(frames) / elapsed))
			frames = 0
			lastTitle = currentTime
		}
	}
	logger.Log.Info("Render loop finished")
	return nil
}

// presentFrame traces one frame and hands it to the presenter. Nothing is
// uploaded or presented when tracing fails.
func (gopher *Gopher) presentFrame(in input.Surface, deltaTime float64) error {
	stats, err := gopher.Step(in, deltaTime)
	if err != nil {
		return err
	}
	gopher.lastStats = stats

	gopher.rendererAPI.Upload(gopher.progressive.Buffer())
	gopher.rendererAPI.Draw()

	if gopher.onRenderCallback != nil {
		gopher.onRenderCallback(deltaTime)
	}

	gopher.rendererAPI.Present(gopher.Config.Window.VSync)
	return nil
}

// Step runs the CPU side of one frame: resize, camera input, behaviours,
// snapshots and the progressive trace. Any change to the view renders the
// frame in moving mode.
func (gopher *Gopher) Step(in input.Surface, deltaTime float64) (renderer.FrameStats, error) {
	if gopher.World == nil {
		return renderer.FrameStats{}, ErrNoWorld
	}
	moved := gopher.worldChanged
	gopher.worldChanged = false

	width, height := in.Size()
	if width <= 0 || height <= 0 {
		// Minimized. Keep the last image.
		return gopher.lastStats, nil
	}
	if int32(width) != gopher.Width || int32(height) != gopher.Height {
		if err := gopher.progressive.Resize(width, height); err != nil {
			return renderer.FrameStats{}, err
		}
		gopher.Width, gopher.Height = int32(width), int32(height)
		moved = true
		logger.Log.Debug("Window resized", zap.Int("width", width), zap.Int("height", height))
	}

	if gopher.EnableCameraInput && gopher.controller.Update(in, deltaTime) {
		moved = true
	}
	if behaviour.GlobalBehaviourManager.UpdateAll(deltaTime) {
		moved = true
	}

	pressed := in.KeyDown(input.KeyP)
	if pressed && !gopher.snapshotHeld && gopher.snapshots != nil {
		gopher.snapshots.Save(gopher.progressive.Buffer())
	}
	gopher.snapshotHeld = pressed

	return gopher.progressive.RenderFrame(gopher.World, moved)
}

// RenderHeadless traces one full frame at window resolution without opening a
// window and writes it to path as PNG.
func (gopher *Gopher) RenderHeadless(path string) error {
	if gopher.World == nil {
		return ErrNoWorld
	}
	defer logger.Sync()

	cfg := gopher.Config.Render.ProgressiveConfig
	cfg.StaticScale = 1
	cfg.Accumulate = false
	full, err := renderer.NewProgressiveRenderer(gopher.Camera, gopher.sampler, cfg, int(gopher.Width), int(gopher.Height))
	if err != nil {
		return err
	}

	logger.Log.Info("Rendering headless",
		zap.String("path", path),
		zap.Int32("width", gopher.Width),
		zap.Int32("height", gopher.Height))
	if err := full.RenderFull(gopher.World); err != nil {
		return err
	}
	if err := full.Buffer().SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logger.Log.Info("Image saved", zap.String("path", path))
	return nil
}

func (gopher *Gopher) title(fps float64) string {
	stats := gopher.lastStats
	status := fmt.Sprintf("%s %dx%d", stats.Mode, stats.Width, stats.Height)
	if stats.Mode == renderer.Static {
		status += fmt.Sprintf(" row %d", gopher.progressive.CurrentScanline())
	}
	return fmt.Sprintf("%s | %s | %.0f fps", gopher.Config.Window.Title, status, fps)
}

// SetOnRenderCallback sets a callback that will be called each frame after the traced image is drawn
func (gopher *Gopher) SetOnRenderCallback(callback func(deltaTime float64)) {
	gopher.onRenderCallback = callback
}

// Progressive returns the scheduler driving the frame loop.
func (gopher *Gopher) Progressive() *renderer.ProgressiveRenderer {
	return gopher.progressive
}

// GetWindow returns the GLFW window (nil before Render)
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

// GetRenderer returns the renderer API
func (gopher *Gopher) GetRenderer() Render {
	return gopher.rendererAPI
}
