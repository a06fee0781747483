package main

import (
	"Storm3D/internal/config"
	"Storm3D/internal/engine"
	"Storm3D/internal/logger"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "storm3d:", err)
		return -1
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintln(os.Stderr, "storm3d:", err)
		return -1
	}
	defer logger.Sync()

	app, err := engine.New(cfg)
	if err != nil {
		logger.Log.Error("Initialization failed", zap.Error(err))
		return -1
	}
	app.Run()
	return 0
}
