package scene

import "Storm3D/internal/renderer"

// KeyState is the set of keys polled once per frame.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Quit     bool
}

// ApplyMovement moves cam for every held direction key.
func ApplyMovement(cam *renderer.Camera, keys KeyState, dt float32) {
	if keys.Forward {
		cam.ProcessKeyboard(renderer.Forward, dt)
	}
	if keys.Backward {
		cam.ProcessKeyboard(renderer.Backward, dt)
	}
	if keys.Left {
		cam.ProcessKeyboard(renderer.Left, dt)
	}
	if keys.Right {
		cam.ProcessKeyboard(renderer.Right, dt)
	}
}

// MouseTracker converts absolute cursor positions into offsets.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Move returns the offset since the previous sample with y pointing up. The
// first sample only primes the tracker and returns zero.
func (m *MouseTracker) Move(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a first sample again.
func (m *MouseTracker) Reset() {
	m.primed = false
}
