package engine

import (
	"fmt"

	"GopherTrace/internal/logger"
	"GopherTrace/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Gamma applied by the blit shader. PNG export uses the same curve.
const displayGamma = 2.0

// OpenGLRenderer stretches the traced buffer over the whole window with a
// single textured triangle. The texture is RGBA32F and stays linear.
type OpenGLRenderer struct {
	window         *glfw.Window
	shader         Shader
	uniforms       *UniformCache
	vao            uint32
	texture        uint32
	textureWidth   int
	textureHeight  int
	viewportWidth  int32
	viewportHeight int32
	swapInterval   int
}

func (rend *OpenGLRenderer) Init(width, height int32, window *glfw.Window) error {
	rend.window = window
	rend.swapInterval = -1

	rend.shader = NewShader(blitVertexShaderSource, blitFragmentShaderSource)
	if err := rend.shader.Compile(); err != nil {
		return fmt.Errorf("blit shader: %w", err)
	}
	rend.uniforms = NewUniformCache(rend.shader.Program())

	// Core profile refuses draws without a bound VAO, even an empty one.
	gl.GenVertexArrays(1, &rend.vao)

	gl.GenTextures(1, &rend.texture)
	gl.BindTexture(gl.TEXTURE_2D, rend.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	rend.UpdateViewport(width, height)

	logger.Log.Info("OpenGL presenter ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

// Upload copies the whole buffer into the texture, reallocating it when the
// buffer size changed since the last upload.
func (rend *OpenGLRenderer) Upload(buffer *renderer.PixelBuffer) {
	pixels := buffer.Pixels()
	if len(pixels) == 0 {
		return
	}
	w, h := buffer.Width(), buffer.Height()

	gl.BindTexture(gl.TEXTURE_2D, rend.texture)
	if w != rend.textureWidth || h != rend.textureHeight {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(w), int32(h), 0, gl.RGBA, gl.FLOAT, gl.Ptr(&pixels[0]))
		rend.textureWidth, rend.textureHeight = w, h
		logger.Log.Debug("Texture reallocated", zap.Int("width", w), zap.Int("height", h))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.FLOAT, gl.Ptr(&pixels[0]))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (rend *OpenGLRenderer) Draw() {
	gl.Viewport(0, 0, rend.viewportWidth, rend.viewportHeight)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if rend.textureWidth == 0 {
		return
	}

	rend.shader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rend.texture)
	rend.uniforms.SetInt("screenTexture", 0)
	rend.uniforms.SetFloat("gamma", displayGamma)

	gl.BindVertexArray(rend.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (rend *OpenGLRenderer) Present(vsync bool) {
	interval := 0
	if vsync {
		interval = 1
	}
	if interval != rend.swapInterval {
		glfw.SwapInterval(interval)
		rend.swapInterval = interval
	}
	rend.window.SwapBuffers()
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.viewportWidth, rend.viewportHeight = width, height
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	if rend.texture != 0 {
		gl.DeleteTextures(1, &rend.texture)
		rend.texture = 0
	}
	if rend.vao != 0 {
		gl.DeleteVertexArrays(1, &rend.vao)
		rend.vao = 0
	}
	rend.shader.Delete()
	rend.textureWidth, rend.textureHeight = 0, 0
}
