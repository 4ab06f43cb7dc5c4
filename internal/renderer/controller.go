package renderer

import (
	"math"

	"GopherTrace/internal/input"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// settleThreshold is the smoothed speed below which motion counts as stopped.
const settleThreshold = 1e-3

// ControllerConfig holds FPS controller tuning.
type ControllerConfig struct {
	MoveSpeed      float64 `json:"moveSpeed"` // units per second
	LookSpeed      float64 `json:"lookSpeed"` // radians per pixel of mouse travel
	FastMultiplier float64 `json:"fastMultiplier"`
	SlowMultiplier float64 `json:"slowMultiplier"`

	// Smoothing eases velocity changes with a damped spring.
	Smoothing       bool    `json:"smoothing"`
	SmoothingFPS    int     `json:"smoothingFps"`
	SpringFrequency float64 `json:"springFrequency"`
	SpringDamping   float64 `json:"springDamping"`
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		MoveSpeed:       5.0,
		LookSpeed:       0.002,
		FastMultiplier:  5.0,
		SlowMultiplier:  0.1,
		Smoothing:       false,
		SmoothingFPS:    60,
		SpringFrequency: 6.0,
		SpringDamping:   1.0,
	}
}

// springAxis is one smoothed scalar and its spring velocity.
type springAxis struct {
	value    float64
	velocity float64
}

// FPSController moves a camera's transform from polled input.
type FPSController struct {
	camera *Camera
	config ControllerConfig

	spring harmonica.Spring
	// move holds right, up (world), forward speeds. look holds pitch, yaw rates.
	move [3]springAxis
	look [2]springAxis
}

func NewFPSController(camera *Camera, config ControllerConfig) *FPSController {
	fps := config.SmoothingFPS
	if fps <= 0 {
		fps = 60
	}
	return &FPSController{
		camera: camera,
		config: config,
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.SpringFrequency, config.SpringDamping),
	}
}

func (c *FPSController) Config() ControllerConfig { return c.config }

// Update applies one frame of input and reports whether the camera moved.
func (c *FPSController) Update(in input.Surface, dt float64) bool {
	speed := c.config.MoveSpeed
	if in.KeyDown(input.KeyShift) {
		speed *= c.config.FastMultiplier
	}
	if in.KeyDown(input.KeyControl) {
		speed *= c.config.SlowMultiplier
	}

	var right, up, forward float64
	if in.KeyDown(input.KeyW) {
		forward++
	}
	if in.KeyDown(input.KeyS) {
		forward--
	}
	if in.KeyDown(input.KeyD) {
		right++
	}
	if in.KeyDown(input.KeyA) {
		right--
	}
	if in.KeyDown(input.KeySpace) {
		up++
	}
	if in.KeyDown(input.KeyX) {
		up--
	}

	var pitch, yaw float64
	if in.MouseLeftDown() {
		dx, dy := in.MouseDelta()
		pitch = -dy * c.config.LookSpeed
		yaw = dx * c.config.LookSpeed
	}

	if c.config.Smoothing {
		return c.applySmoothed(right*speed, up*speed, forward*speed, pitch, yaw, dt)
	}

	moved := false
	if right != 0 || forward != 0 {
		c.camera.Transform.MoveRelative(right*speed*dt, 0, forward*speed*dt)
		moved = true
	}
	if up != 0 {
		c.camera.Transform.MoveAbsolute(0, up*speed*dt, 0)
		moved = true
	}
	if pitch != 0 || yaw != 0 {
		c.camera.Transform.Rotate(pitch, yaw)
		moved = true
	}
	return moved
}

// applySmoothed eases toward the target velocities. Look deltas are per
// frame already, so they are eased but not scaled by dt.
func (c *FPSController) applySmoothed(right, up, forward, pitch, yaw, dt float64) bool {
	targets := [3]float64{right, up, forward}
	for i := range c.move {
		c.move[i].value, c.move[i].velocity = c.spring.Update(c.move[i].value, c.move[i].velocity, targets[i])
	}
	lookTargets := [2]float64{pitch, yaw}
	for i := range c.look {
		c.look[i].value, c.look[i].velocity = c.spring.Update(c.look[i].value, c.look[i].velocity, lookTargets[i])
	}

	velocity := mgl64.Vec3{c.move[0].value, c.move[1].value, c.move[2].value}
	moving := velocity.Len() > settleThreshold
	turning := math.Abs(c.look[0].value)+math.Abs(c.look[1].value) > settleThreshold*c.config.LookSpeed

	if moving {
		c.camera.Transform.MoveRelative(velocity[0]*dt, 0, velocity[2]*dt)
		c.camera.Transform.MoveAbsolute(0, velocity[1]*dt, 0)
	} else {
		c.move = [3]springAxis{}
	}
	if turning {
		c.camera.Transform.Rotate(c.look[0].value, c.look[1].value)
	} else {
		c.look = [2]springAxis{}
	}
	return moving || turning
}
