package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

type DepthFunc int

const (
	DepthLess DepthFunc = iota
	// DepthLessEqual lets geometry at the far plane (the skybox) pass against a cleared depth buffer.
	DepthLessEqual
)

func (d DepthFunc) String() string {
	switch d {
	case DepthLess:
		return "LESS"
	case DepthLessEqual:
		return "LEQUAL"
	}
	return "UNKNOWN"
}

// PipelineState is the fixed-function state a draw needs.
type PipelineState struct {
	DepthFunc  DepthFunc
	Blend      bool
	DepthWrite bool
}

// DefaultPipelineState is the state the GL context is put in at startup.
var DefaultPipelineState = PipelineState{DepthFunc: DepthLess, Blend: false, DepthWrite: true}

// StateDevice issues raw state changes.
type StateDevice interface {
	SetDepthFunc(fn DepthFunc)
	SetBlend(enabled bool)
	SetDepthWrite(enabled bool)
}

// StateTracker remembers the last applied state and only forwards changes.
type StateTracker struct {
	current PipelineState
	valid   bool
}

// Apply moves the device to next.
func (t *StateTracker) Apply(dev StateDevice, next PipelineState) {
	if !t.valid || t.current.DepthFunc != next.DepthFunc {
		dev.SetDepthFunc(next.DepthFunc)
	}
	if !t.valid || t.current.Blend != next.Blend {
		dev.SetBlend(next.Blend)
	}
	if !t.valid || t.current.DepthWrite != next.DepthWrite {
		dev.SetDepthWrite(next.DepthWrite)
	}
	t.current = next
	t.valid = true
}

// Current returns the last applied state.
func (t *StateTracker) Current() (PipelineState, bool) {
	return t.current, t.valid
}

// Invalidate forces the next Apply to issue every field.
func (t *StateTracker) Invalidate() {
	t.valid = false
}

// GLStateDevice applies state to the current OpenGL context.
type GLStateDevice struct{}

func (GLStateDevice) SetDepthFunc(fn DepthFunc) {
	switch fn {
	case DepthLessEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}
}

func (GLStateDevice) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		return
	}
	gl.Disable(gl.BLEND)
}

func (GLStateDevice) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

// ConfigureGlobalState sets the state that never changes during a frame:
// depth testing, front-face culling with clockwise winding, and the default
// pipeline state.
func ConfigureGlobalState(tracker *StateTracker) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	gl.FrontFace(gl.CW)
	tracker.Invalidate()
	tracker.Apply(GLStateDevice{}, DefaultPipelineState)
}
