package renderer

import (
	"Storm3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Pass knows how to issue draw commands for one material. Begin is called
// when the renderer switches to the pass, Draw once per command.
type Pass interface {
	Begin(frame *Frame)
	Draw(cmd DrawCommand)
}

// FrameDevice is the state device plus the per-frame operations the renderer
// issues itself.
type FrameDevice interface {
	StateDevice
	Clear(color mgl32.Vec4)
	Viewport(width, height int32)
}

// RenderStats counts the work done by the last Render call.
type RenderStats struct {
	DrawCalls    int
	PassSwitches int
	Skipped      int
}

// OpenGLRenderer executes frames built elsewhere. It owns no scene state.
type OpenGLRenderer struct {
	device  FrameDevice
	tracker StateTracker
	passes  map[PassKind]Pass
	stats   RenderStats
	warned  map[PassKind]bool
}

func NewOpenGLRenderer(device FrameDevice) *OpenGLRenderer {
	return &OpenGLRenderer{
		device: device,
		passes: make(map[PassKind]Pass),
		warned: make(map[PassKind]bool),
	}
}

// Init configures the global GL state for the current context.
func (rend *OpenGLRenderer) Init(width, height int32) {
	rend.device.Viewport(width, height)
	ConfigureGlobalState(&rend.tracker)
	logger.Log.Info("OpenGL render initialized",
		zap.Int32("width", width),
		zap.Int32("height", height))
}

func (rend *OpenGLRenderer) SetPass(kind PassKind, pass Pass) {
	rend.passes[kind] = pass
}

// Render clears the target and issues every command in order. The depth
// function is back to LESS when it returns.
func (rend *OpenGLRenderer) Render(frame Frame) {
	rend.stats = RenderStats{}
	rend.device.Clear(frame.ClearColor)

	var current Pass
	for _, cmd := range frame.Commands {
		pass, ok := rend.passes[cmd.Kind]
		if !ok {
			rend.stats.Skipped++
			if !rend.warned[cmd.Kind] {
				rend.warned[cmd.Kind] = true
				logger.Log.Warn("No pass registered", zap.Stringer("kind", cmd.Kind))
			}
			continue
		}

		rend.tracker.Apply(rend.device, cmd.State)
		if pass != current {
			pass.Begin(&frame)
			current = pass
			rend.stats.PassSwitches++
		}
		pass.Draw(cmd)
		rend.stats.DrawCalls++
	}

	if state, ok := rend.tracker.Current(); ok && state.DepthFunc != DepthLess {
		state.DepthFunc = DepthLess
		rend.tracker.Apply(rend.device, state)
	}
}

func (rend *OpenGLRenderer) Stats() RenderStats {
	return rend.stats
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.device.Viewport(width, height)
}

// GLFrameDevice drives the current OpenGL context.
type GLFrameDevice struct {
	GLStateDevice
}

func (GLFrameDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (GLFrameDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}
