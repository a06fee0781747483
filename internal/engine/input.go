package engine

import (
	"Storm3D/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyPoller reports whether a key is held. *glfw.Window implements it.
type KeyPoller interface {
	GetKey(key glfw.Key) glfw.Action
}

// PollKeys samples WASD and Escape.
func PollKeys(window KeyPoller) scene.KeyState {
	pressed := func(key glfw.Key) bool {
		return window.GetKey(key) == glfw.Press
	}
	return scene.KeyState{
		Forward:  pressed(glfw.KeyW),
		Backward: pressed(glfw.KeyS),
		Left:     pressed(glfw.KeyA),
		Right:    pressed(glfw.KeyD),
		Quit:     pressed(glfw.KeyEscape),
	}
}
