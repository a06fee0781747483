package renderer

import "github.com/go-gl/mathgl/mgl32"

// PassKind selects the shader and geometry a draw command uses.
type PassKind int

const (
	PassPlane PassKind = iota
	PassWater
	PassThunder
	PassSkybox
)

func (k PassKind) String() string {
	switch k {
	case PassPlane:
		return "plane"
	case PassWater:
		return "water"
	case PassThunder:
		return "thunder"
	case PassSkybox:
		return "skybox"
	}
	return "unknown"
}

// DrawCommand is one draw call. Distance is the eye distance used to order
// transparent commands and is zero for the rest.
type DrawCommand struct {
	Kind       PassKind
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	State      PipelineState
	Distance   float32
}

// Frame is everything needed to render one frame, in submission order.
type Frame struct {
	ClearColor mgl32.Vec4
	Elapsed    float32
	ViewPos    mgl32.Vec3
	Light      PointLight
	Flicker    float32
	Commands   []DrawCommand
}
