package renderer

import (
	"errors"
	"math"
	"testing"

	"GopherTrace/internal/tracer"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestRenderer(t *testing.T, windowWidth, windowHeight int) *ProgressiveRenderer {
	t.Helper()
	cam := NewDefaultCamera(windowWidth, windowHeight)
	cam.SamplesPerPixel = 1
	cam.MaxDepth = 2
	p, err := NewProgressiveRenderer(cam, tracer.NewSampler(42), DefaultProgressiveConfig(), windowWidth, windowHeight)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer failed: %v", err)
	}
	return p
}

func TestProgressiveStartsStatic(t *testing.T) {
	p := newTestRenderer(t, 40, 20)

	if p.Mode() != Static {
		t.Errorf("Expected static mode, got %v", p.Mode())
	}
	if p.Buffer().Width() != 20 || p.Buffer().Height() != 10 {
		t.Errorf("Expected 20x10 static buffer, got %dx%d", p.Buffer().Width(), p.Buffer().Height())
	}
	if p.TextureScale() != 0.5 {
		t.Errorf("Expected static scale 0.5, got %v", p.TextureScale())
	}
}

func TestStaticSweepRendersEachRowOnce(t *testing.T) {
	p := newTestRenderer(t, 40, 20)
	world := oneSphereWorld()
	height := p.Buffer().Height()

	seen := make(map[int]int)
	for frame := 0; frame < height; frame++ {
		stats, err := p.RenderFrame(world, false)
		if err != nil {
			t.Fatalf("RenderFrame failed: %v", err)
		}
		if stats.Mode != Static || stats.Transitioned {
			t.Fatalf("Frame %d should be a static frame without transition, got %+v", frame, stats)
		}
		if stats.Rows != 1 {
			t.Fatalf("Static frame should render one row, got %d", stats.Rows)
		}
		seen[stats.FirstRow]++
	}

	for row := 0; row < height; row++ {
		if seen[row] != 1 {
			t.Errorf("Row %d rendered %d times, expected once", row, seen[row])
		}
	}
	if p.CurrentScanline() != 0 {
		t.Errorf("Expected scanline to wrap to 0, got %d", p.CurrentScanline())
	}
}

func TestModeTransitionResizesAndClears(t *testing.T) {
	p := newTestRenderer(t, 200, 100)
	world := oneSphereWorld()

	stats, err := p.RenderFrame(world, true)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.Transitioned || stats.Mode != Moving {
		t.Fatalf("Expected a transition into moving mode, got %+v", stats)
	}
	if p.Buffer().Width() != 20 || p.Buffer().Height() != 10 {
		t.Errorf("Expected 20x10 moving buffer, got %dx%d", p.Buffer().Width(), p.Buffer().Height())
	}
	if stats.FirstRow != 0 || stats.Rows != 10 {
		t.Errorf("Moving frame should render all 10 rows, got first=%d rows=%d", stats.FirstRow, stats.Rows)
	}
	if g := p.Camera().Geometry(); g.Width != 20 || g.Height != 10 {
		t.Errorf("Viewport should follow the buffer, got %dx%d", g.Width, g.Height)
	}

	stats, err = p.RenderFrame(world, false)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.Transitioned || stats.Mode != Static {
		t.Fatalf("Expected a transition into static mode, got %+v", stats)
	}
	buf := p.Buffer()
	if buf.Width() != 100 || buf.Height() != 50 {
		t.Fatalf("Expected 100x50 static buffer, got %dx%d", buf.Width(), buf.Height())
	}
	for y := 1; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.At(x, y) != (mgl32.Vec4{}) {
				t.Fatalf("Pixel (%d,%d) should be cleared after resize, got %v", x, y, buf.At(x, y))
			}
		}
	}
	if buf.At(0, 0)[3] != 1 {
		t.Error("Row 0 should be rendered right after the transition")
	}
	if p.CurrentScanline() != 1 {
		t.Errorf("Expected scanline 1 after one static frame, got %d", p.CurrentScanline())
	}
}

func TestMovingFramesKeepSize(t *testing.T) {
	p := newTestRenderer(t, 100, 50)
	world := oneSphereWorld()

	if _, err := p.RenderFrame(world, true); err != nil {
		t.Fatal(err)
	}
	p.Camera().Transform.Rotate(0, 0.1)
	stats, err := p.RenderFrame(world, true)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Transitioned {
		t.Error("Consecutive moving frames should not transition")
	}
	if stats.Rows != p.Buffer().Height() {
		t.Errorf("Expected %d rows, got %d", p.Buffer().Height(), stats.Rows)
	}
	if p.CurrentScanline() != 0 {
		t.Errorf("Moving frames should leave the scanline at 0, got %d", p.CurrentScanline())
	}
}

func TestScaledSizeClampedToOnePixel(t *testing.T) {
	p := newTestRenderer(t, 5, 5)

	if _, err := p.RenderFrame(oneSphereWorld(), true); err != nil {
		t.Fatal(err)
	}
	if p.Buffer().Width() != 1 || p.Buffer().Height() != 1 {
		t.Errorf("Expected 1x1 buffer, got %dx%d", p.Buffer().Width(), p.Buffer().Height())
	}
}

func TestProgressiveResize(t *testing.T) {
	p := newTestRenderer(t, 40, 20)
	world := oneSphereWorld()
	for i := 0; i < 3; i++ {
		if _, err := p.RenderFrame(world, false); err != nil {
			t.Fatal(err)
		}
	}

	if err := p.Resize(100, 25); err != nil {
		t.Fatal(err)
	}
	if p.Buffer().Width() != 50 || p.Buffer().Height() != 12 {
		t.Errorf("Expected 50x12 buffer, got %dx%d", p.Buffer().Width(), p.Buffer().Height())
	}
	if p.CurrentScanline() != 0 {
		t.Errorf("Resize should restart the sweep, got scanline %d", p.CurrentScanline())
	}
	if p.Camera().AspectRatio != 4 {
		t.Errorf("Expected aspect ratio 4, got %v", p.Camera().AspectRatio)
	}
}

func TestAccumulatedPassesAverage(t *testing.T) {
	p := newTestRenderer(t, 8, 8)
	world := tracer.NewHittableList()

	if err := p.RenderFull(world); err != nil {
		t.Fatal(err)
	}
	if err := p.RenderFull(world); err != nil {
		t.Fatal(err)
	}
	for row, n := range p.passes {
		if n != 2 {
			t.Errorf("Row %d: expected 2 passes, got %d", row, n)
		}
	}
	sky := p.Camera().Sky
	for y := 0; y < p.Buffer().Height(); y++ {
		for x := 0; x < p.Buffer().Width(); x++ {
			c := p.Buffer().At(x, y)
			if float64(c[0]) < sky.Zenith[0]-1e-6 || float64(c[0]) > sky.Horizon[0]+1e-6 {
				t.Fatalf("Averaged sky pixel %v outside the gradient", c)
			}
		}
	}
}

func TestProgressiveRejectsNonPositiveScale(t *testing.T) {
	cfg := DefaultProgressiveConfig()
	cfg.MovingScale = 0
	_, err := NewProgressiveRenderer(NewDefaultCamera(10, 10), tracer.NewSampler(1), cfg, 10, 10)
	if err == nil {
		t.Error("Expected an error for a zero scale")
	}
	if errors.Is(err, ErrInvalidDimensions) {
		t.Error("Scale validation should happen before any buffer allocation")
	}
}

func TestMovingViewportKeepsWindowAspect(t *testing.T) {
	p := newTestRenderer(t, 64, 36)

	stats, err := p.RenderFrame(tracer.NewHittableList(), true)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Width != 6 || stats.Height != 3 {
		t.Fatalf("Expected truncated 6x3 moving buffer, got %dx%d", stats.Width, stats.Height)
	}

	// The buffer is stretched over the whole window, so the viewport keeps the
	// window's shape even when the truncated buffer does not.
	g := p.Camera().Geometry()
	got := g.ViewportU.Len() / g.ViewportV.Len()
	if want := 64.0 / 36.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected viewport aspect %v, got %v", want, got)
	}
}
