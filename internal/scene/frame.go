package scene

import (
	"Storm3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	OpaqueState      = renderer.PipelineState{DepthFunc: renderer.DepthLess, Blend: false, DepthWrite: true}
	TransparentState = renderer.PipelineState{DepthFunc: renderer.DepthLess, Blend: true, DepthWrite: true}
	// Skybox depth is written at the far plane, so it needs LEQUAL to pass.
	SkyboxState = renderer.PipelineState{DepthFunc: renderer.DepthLessEqual, Blend: false, DepthWrite: true}
)

// BuildFrame lists the draws for the current state: the plane, the
// transparent objects from farthest to nearest, then the skybox.
func BuildFrame(s *State) renderer.Frame {
	view := s.Camera.GetViewMatrix()
	projection := s.Camera.GetProjectionMatrix()
	sorted := SortBackToFront(s.Camera.Position, s.Transparents)

	commands := make([]renderer.DrawCommand, 0, len(sorted)+2)

	commands = append(commands, renderer.DrawCommand{
		Kind:       renderer.PassPlane,
		Model:      s.Plane.GetModelMatrix(),
		View:       view,
		Projection: projection,
		State:      OpaqueState,
	})

	for _, obj := range sorted {
		commands = append(commands, renderer.DrawCommand{
			Kind:       obj.Kind,
			Model:      mgl32.Translate3D(obj.Position.X(), obj.Position.Y(), obj.Position.Z()),
			View:       view,
			Projection: projection,
			State:      TransparentState,
			Distance:   obj.Distance,
		})
	}

	commands = append(commands, renderer.DrawCommand{
		Kind:       renderer.PassSkybox,
		Model:      mgl32.Ident4(),
		View:       s.Camera.GetSkyboxViewMatrix(),
		Projection: projection,
		State:      SkyboxState,
	})

	c := s.Settings.Scene.ClearColor
	return renderer.Frame{
		ClearColor: mgl32.Vec4{c[0], c[1], c[2], c[3]},
		Elapsed:    s.Elapsed,
		ViewPos:    s.Camera.Position,
		Light:      s.PointLight(),
		Flicker:    s.Flicker.Intensity,
		Commands:   commands,
	}
}
