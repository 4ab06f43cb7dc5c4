// Package input describes the window and input surface the camera controller
// polls once per frame.
package input

// Key identifies a keyboard key the controller cares about.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyX
	KeySpace
	KeyShift
	KeyControl
	KeyEscape
	KeyP
	keyCount
)

// Surface is the per-frame view of a window: its size, button state and the
// mouse movement since the previous poll.
type Surface interface {
	Size() (width, height int)
	AspectRatio() float64
	KeyDown(k Key) bool
	MouseLeftDown() bool
	MouseDelta() (dx, dy float64)
	ExitRequested() bool
}

// Snapshot is a fixed Surface value. Headless renders use an idle one.
type Snapshot struct {
	Width, Height  int
	Keys           [keyCount]bool
	MouseLeft      bool
	DeltaX, DeltaY float64
	Exit           bool
}

// Idle returns a snapshot of the given size with nothing pressed.
func Idle(width, height int) *Snapshot {
	return &Snapshot{Width: width, Height: height}
}

// Press marks keys as held and returns the snapshot for chaining.
func (s *Snapshot) Press(keys ...Key) *Snapshot {
	for _, k := range keys {
		s.Keys[k] = true
	}
	return s
}

// Release clears every key, mouse and exit state.
func (s *Snapshot) Release() *Snapshot {
	s.Keys = [keyCount]bool{}
	s.MouseLeft = false
	s.DeltaX, s.DeltaY = 0, 0
	s.Exit = false
	return s
}

func (s *Snapshot) Size() (int, int) { return s.Width, s.Height }

func (s *Snapshot) AspectRatio() float64 {
	if s.Height <= 0 {
		return 1
	}
	return float64(s.Width) / float64(s.Height)
}

func (s *Snapshot) KeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.Keys[k]
}

func (s *Snapshot) MouseLeftDown() bool            { return s.MouseLeft }
func (s *Snapshot) MouseDelta() (float64, float64) { return s.DeltaX, s.DeltaY }
func (s *Snapshot) ExitRequested() bool            { return s.Exit }
