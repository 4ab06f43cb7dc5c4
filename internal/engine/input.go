package engine

import (
	"GopherTrace/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[input.Key][]glfw.Key{
	input.KeyW:       {glfw.KeyW},
	input.KeyA:       {glfw.KeyA},
	input.KeyS:       {glfw.KeyS},
	input.KeyD:       {glfw.KeyD},
	input.KeyX:       {glfw.KeyX},
	input.KeySpace:   {glfw.KeySpace},
	input.KeyShift:   {glfw.KeyLeftShift, glfw.KeyRightShift},
	input.KeyControl: {glfw.KeyLeftControl, glfw.KeyRightControl},
	input.KeyEscape:  {glfw.KeyEscape},
	input.KeyP:       {glfw.KeyP},
}

// windowInput adapts a glfw window to input.Surface. Cursor movement is
// collected by the callback between polls.
type windowInput struct {
	window *glfw.Window

	lastX, lastY   float64
	firstMouse     bool
	pendingX       float64
	pendingY       float64
	deltaX, deltaY float64
}

func newWindowInput(window *glfw.Window) *windowInput {
	in := &windowInput{window: window, firstMouse: true}
	window.SetCursorPosCallback(in.cursorCallback)
	return in
}

func (in *windowInput) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if w.GetAttrib(glfw.Focused) != glfw.True {
		in.firstMouse = true
		return
	}
	if in.firstMouse {
		in.lastX, in.lastY = xpos, ypos
		in.firstMouse = false
		return
	}
	in.pendingX += xpos - in.lastX
	in.pendingY += ypos - in.lastY
	in.lastX, in.lastY = xpos, ypos
}

// poll hands the movement gathered since the previous poll to the frame.
func (in *windowInput) poll() {
	in.deltaX, in.deltaY = in.pendingX, in.pendingY
	in.pendingX, in.pendingY = 0, 0
}

func (in *windowInput) Size() (int, int) {
	return in.window.GetFramebufferSize()
}

func (in *windowInput) AspectRatio() float64 {
	w, h := in.Size()
	if h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}

func (in *windowInput) KeyDown(k input.Key) bool {
	for _, key := range glfwKeys[k] {
		if in.window.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

func (in *windowInput) MouseLeftDown() bool {
	return in.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

func (in *windowInput) MouseDelta() (float64, float64) { return in.deltaX, in.deltaY }

func (in *windowInput) ExitRequested() bool {
	return in.window.ShouldClose() || in.KeyDown(input.KeyEscape)
}
