package engine

import (
	"Storm3D/internal/config"
	"Storm3D/internal/logger"
	"Storm3D/internal/renderer"
	"Storm3D/internal/scene"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// App owns the window, the GL context and the per-frame state. All methods
// must be called from the main OS thread.
type App struct {
	cfg       config.Settings
	window    *glfw.Window
	state     *scene.State
	renderer  *renderer.OpenGLRenderer
	resources *Resources
	cleanup   Unwind
}

// New opens the window and loads every resource. On failure everything
// initialized so far is torn down and the returned error wraps one of the
// package's sentinel errors.
func New(cfg config.Settings) (*App, error) {
	logger.Log.Info("Storm3D initializing...")
	app := &App{cfg: cfg}
	var unwind Unwind
	defer unwind.Unwind()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGLFWInit, err)
	}
	unwind.Add(glfw.Terminate)

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	unwind.Add(window.Destroy)
	app.window = window

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGLInit, err)
	}
	logger.Log.Info("OpenGL context ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	applyWindowStyle(window)

	app.state = scene.NewState(cfg)
	width, height := window.GetFramebufferSize()
	app.state.OnResize(width, height)

	app.renderer = renderer.NewOpenGLRenderer(renderer.GLFrameDevice{})
	app.renderer.Init(int32(width), int32(height))

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetFramebufferSizeCallback(app.onFramebufferSize)
	window.SetCursorPosCallback(app.onCursorPos)
	window.SetCursorEnterCallback(app.onCursorEnter)
	window.SetScrollCallback(app.onScroll)

	textures := renderer.NewTextureLoader(renderer.GLTextureDevice{})
	resources, err := LoadResources(cfg, textures)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResources, err)
	}
	unwind.Add(resources.Release)
	app.resources = resources
	if resources.Plane != nil {
		app.state.SetPlane(resources.Plane)
	}
	resources.RegisterPasses(app.renderer, cfg)

	// ownership of the cleanup steps moves to the app
	app.cleanup = append(app.cleanup, unwind...)
	unwind.Discard()

	logger.Log.Info("Storm3D initialized",
		zap.Int("width", width),
		zap.Int("height", height))
	return app, nil
}

// Run renders until the window is asked to close, then releases everything.
func (app *App) Run() {
	for !app.window.ShouldClose() {
		keys := PollKeys(app.window)
		app.state.Advance(glfw.GetTime(), keys)
		if keys.Quit {
			app.window.SetShouldClose(true)
		}

		app.renderer.Render(scene.BuildFrame(app.state))

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
	app.resources.Textures.LogStats()
	app.Close()
}

// Close releases the resources, destroys the window and terminates GLFW.
func (app *App) Close() {
	app.cleanup.Unwind()
	logger.Log.Info("Storm3D shut down")
}

func (app *App) onFramebufferSize(_ *glfw.Window, width, height int) {
	app.state.OnResize(width, height)
	if width > 0 && height > 0 {
		app.renderer.UpdateViewport(int32(width), int32(height))
	}
}

func (app *App) onCursorPos(_ *glfw.Window, xpos, ypos float64) {
	app.state.OnCursor(xpos, ypos)
}

// Re-entering the window must not turn the camera by the distance travelled
// outside it.
func (app *App) onCursorEnter(_ *glfw.Window, entered bool) {
	if entered {
		app.state.Mouse.Reset()
	}
}

func (app *App) onScroll(_ *glfw.Window, _, yoff float64) {
	app.state.OnScroll(yoff)
}
