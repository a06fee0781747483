package scene

import (
	"Storm3D/internal/behaviour"
	"Storm3D/internal/config"
	"Storm3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// State is everything that changes from frame to frame. The window callbacks
// and the frame loop are the only writers.
type State struct {
	Settings     config.Settings
	Camera       *renderer.Camera
	Clock        FrameClock
	Mouse        MouseTracker
	Light        *LightOrbit
	Flicker      *ThunderFlicker
	Behaviours   *behaviour.Manager
	Transparents []Transparent
	// Plane carries the plane transform. It is replaced by the loaded model
	// once resources are up.
	Plane        *renderer.Model

	Width   int
	Height  int
	Elapsed float32
	Delta   float32
}

func NewState(cfg config.Settings) *State {
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	cam := renderer.NewCamera(vec3(cfg.Camera.Position), cfg.Camera.Yaw, cfg.Camera.Pitch, aspect)
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	cam.Fov = cfg.Camera.Fov
	cam.InvertMouse = cfg.Camera.InvertMouse
	cam.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)

	s := &State{
		Settings:   cfg,
		Camera:     cam,
		Light:      &LightOrbit{Radius: cfg.Light.OrbitRadius, Height: cfg.Light.Height},
		Flicker:    NewThunderFlicker(cfg.Scene.FlickerSeed, cfg.Scene.FlickerRate),
		Behaviours: behaviour.NewManager(),
		Plane:      &renderer.Model{Name: "plane"},
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
	}
	PlaceModel(s.Plane, cfg.Scene)
	s.Behaviours.Add(s.Light)
	s.Behaviours.Add(s.Flicker)

	// water squares first so they win ties against sprites
	for _, p := range cfg.Scene.WaterSquares {
		s.Transparents = append(s.Transparents, Transparent{Kind: renderer.PassWater, Position: vec3(p)})
	}
	for _, p := range cfg.Scene.ThunderSprites {
		s.Transparents = append(s.Transparents, Transparent{Kind: renderer.PassThunder, Position: vec3(p)})
	}
	return s
}

// PlaceModel applies the configured plane position, scale and rotation.
func PlaceModel(model *renderer.Model, scene config.SceneSettings) {
	p, r := scene.PlanePosition, scene.PlaneRotation
	model.SetPosition(p[0], p[1], p[2])
	model.SetScale(scene.PlaneScale, scene.PlaneScale, scene.PlaneScale)
	model.Rotation = mgl32.QuatIdent()
	model.Rotate(r[0], r[1], r[2])
}

// SetPlane places model at the configured transform and draws it as the
// plane from now on.
func (s *State) SetPlane(model *renderer.Model) {
	PlaceModel(model, s.Settings.Scene)
	s.Plane = model
}

// Advance updates the clock, moves the camera for the held keys and runs the
// behaviours.
func (s *State) Advance(now float64, keys KeyState) behaviour.Tick {
	s.Elapsed, s.Delta = s.Clock.Tick(now)
	ApplyMovement(s.Camera, keys, s.Delta)
	tick := behaviour.Tick{Elapsed: s.Elapsed, Delta: s.Delta}
	s.Behaviours.UpdateAll(tick)
	return tick
}

func (s *State) OnCursor(x, y float64) {
	dx, dy := s.Mouse.Move(x, y)
	s.Camera.ProcessMouseMovement(dx, dy, true)
}

func (s *State) OnScroll(dy float64) {
	s.Camera.ProcessMouseScroll(float32(dy))
}

// OnResize tracks the framebuffer size. A zero size (minimized window) keeps
// the previous aspect ratio.
func (s *State) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.Camera.SetAspectRatio(float32(width) / float32(height))
}

// PointLight is the scene light at its current orbit position.
func (s *State) PointLight() renderer.PointLight {
	l := s.Settings.Light
	return renderer.PointLight{
		Position:  s.Light.Position,
		Ambient:   vec3(l.Ambient),
		Diffuse:   vec3(l.Diffuse),
		Specular:  vec3(l.Specular),
		Constant:  l.Constant,
		Linear:    l.Linear,
		Quadratic: l.Quadratic,
	}
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
