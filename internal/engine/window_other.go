//go:build !windows

package engine

import "github.com/go-gl/glfw/v3.3/glfw"

func applyWindowStyle(*glfw.Window) {}
