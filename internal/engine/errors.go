package engine

import "errors"

var (
	ErrGLFWInit  = errors.New("failed to initialize GLFW")
	ErrWindow    = errors.New("failed to create GLFW window")
	ErrGLInit    = errors.New("failed to initialize OpenGL")
	ErrResources = errors.New("failed to load resources")
)
