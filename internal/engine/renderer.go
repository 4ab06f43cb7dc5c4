package engine

import (
	"GopherTrace/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Render presents a CPU pixel buffer on a window surface.
type Render interface {
	Init(width, height int32, window *glfw.Window) error
	Upload(buffer *renderer.PixelBuffer)
	Draw()
	Present(vsync bool)
	UpdateViewport(width, height int32)
	Cleanup()
}
