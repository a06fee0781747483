// camera.go
package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

const (
	minFov   = 1.0
	maxFov   = 45.0
	maxPitch = 89.0
)

type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle (vertical rotation)
	Yaw        float32    // Yaw angle (horizontal rotation)

	// COLD DATA - Configuration, accessed less frequently
	WorldUp     mgl32.Vec3
	Speed       float32 // Units per second
	Sensitivity float32 // Degrees per pixel of mouse travel
	Fov         float32 // Vertical field of view in degrees, changed by scrolling
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool
}

// NewCamera returns a camera with the free-fly defaults: 2.5 units/s, 0.1
// sensitivity, 45 degree FOV.
func NewCamera(position mgl32.Vec3, yaw, pitch float32, aspectRatio float32) *Camera {
	camera := Camera{
		Position:    position,
		Front:       mgl32.Vec3{0, 0, -1},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         yaw,
		Pitch:       pitch,
		Speed:       2.5,
		Sensitivity: 0.1,
		Fov:         maxFov,
		Near:        0.1,
		Far:         100.0,
		AspectRatio: aspectRatio,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// GetSkyboxViewMatrix is the view matrix with its translation removed, so the
// skybox stays centered on the eye.
func (c *Camera) GetSkyboxViewMatrix() mgl32.Mat4 {
	return c.GetViewMatrix().Mat3().Mat4()
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// ProcessKeyboard moves the camera Speed*deltaTime units along its basis.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.Speed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	}
	c.updateCameraVectors()
}

// ProcessMouseScroll zooms by narrowing the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.SetFov(mgl32.Clamp(c.Fov-yoffset, minFov, maxFov))
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
