package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable pointing at an optional YAML override.
const EnvPath = "STORM3D_CONFIG"

type Settings struct {
	Window WindowSettings `yaml:"window"`
	Camera CameraSettings `yaml:"camera"`
	Light  LightSettings  `yaml:"light"`
	Scene  SceneSettings  `yaml:"scene"`
	Assets AssetSettings  `yaml:"assets"`
	Log    LogSettings    `yaml:"log"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraSettings struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Fov         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	InvertMouse bool       `yaml:"invert_mouse"`
}

// LightSettings describes the orbiting point light over the plane.
type LightSettings struct {
	OrbitRadius float32    `yaml:"orbit_radius"`
	Height      float32    `yaml:"height"`
	Ambient     [3]float32 `yaml:"ambient"`
	Diffuse     [3]float32 `yaml:"diffuse"`
	Specular    [3]float32 `yaml:"specular"`
	Constant    float32    `yaml:"constant"`
	Linear      float32    `yaml:"linear"`
	Quadratic   float32    `yaml:"quadratic"`
	Shininess   float32    `yaml:"shininess"`
}

type SceneSettings struct {
	ClearColor     [4]float32   `yaml:"clear_color"`
	PlanePosition  [3]float32   `yaml:"plane_position"`
	PlaneScale     float32      `yaml:"plane_scale"`
	PlaneRotation  [3]float32   `yaml:"plane_rotation"` // degrees about X, Y, Z
	WaterSquares   [][3]float32 `yaml:"water_squares"`
	ThunderSprites [][3]float32 `yaml:"thunder_sprites"`
	WaterHalfSize  float32      `yaml:"water_half_size"`
	WaterTiling    float32      `yaml:"water_tiling"`
	SkyboxSize     float32      `yaml:"skybox_size"`
	CelShading     bool         `yaml:"cel_shading"`
	FlickerSeed    int64        `yaml:"flicker_seed"`
	FlickerRate    float32      `yaml:"flicker_rate"`
}

type ShaderPair struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// AssetSettings lists asset files relative to Root.
type AssetSettings struct {
	Root           string     `yaml:"root"`
	PlaneShader    ShaderPair `yaml:"plane_shader"`
	SkyboxShader   ShaderPair `yaml:"skybox_shader"`
	WaterShader    ShaderPair `yaml:"water_shader"`
	ThunderShader  ShaderPair `yaml:"thunder_shader"`
	Model          string     `yaml:"model"`
	SkyboxFaces    []string   `yaml:"skybox_faces"`
	WaterTexture   string     `yaml:"water_texture"`
	ThunderTexture string     `yaml:"thunder_texture"`
}

type LogSettings struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in scene.
func Default() Settings {
	return Settings{
		Window: WindowSettings{Width: 800, Height: 600, Title: "Storm3D"},
		Camera: CameraSettings{
			Position:    [3]float32{3, 3, 15},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Fov:         45,
			Near:        0.1,
			Far:         100,
		},
		Light: LightSettings{
			OrbitRadius: 4,
			Height:      4,
			Ambient:     [3]float32{1, 1, 1},
			Diffuse:     [3]float32{0.6, 0.6, 0.6},
			Specular:    [3]float32{1, 1, 1},
			Constant:    1,
			Linear:      0.09,
			Quadratic:   0.032,
			Shininess:   32,
		},
		Scene: SceneSettings{
			ClearColor:    [4]float32{0, 0, 0, 1},
			PlanePosition: [3]float32{0.2, 5, 0.2},
			PlaneScale:    0.7,
			WaterSquares: [][3]float32{
				{-25, 1, -25},
				{-25, 1, 25},
				{25, 1, -25},
				{25, 1, 25},
			},
			ThunderSprites: [][3]float32{{3.2, 3, 3.2}},
			WaterHalfSize:  25,
			WaterTiling:    40,
			SkyboxSize:     50,
			CelShading:     true,
			FlickerSeed:    7,
			FlickerRate:    3,
		},
		Assets: AssetSettings{
			Root:          ".",
			PlaneShader:   ShaderPair{"resources/shaders/plane.vs", "resources/shaders/plane.fs"},
			SkyboxShader:  ShaderPair{"resources/shaders/skybox.vs", "resources/shaders/skybox.fs"},
			WaterShader:   ShaderPair{"resources/shaders/water.vs", "resources/shaders/water.fs"},
			ThunderShader: ShaderPair{"resources/shaders/thunder.vs", "resources/shaders/thunder.fs"},
			Model:         "resources/objects/caravan/caravanA.obj",
			// +X, -X, +Y, -Y, +Z, -Z
			SkyboxFaces: []string{
				"resources/textures/skybox/right.jpg",
				"resources/textures/skybox/left.jpg",
				"resources/textures/skybox/top.jpg",
				"resources/textures/skybox/bottom.jpg",
				"resources/textures/skybox/front.jpg",
				"resources/textures/skybox/back.jpg",
			},
			WaterTexture:   "resources/textures/water.png",
			ThunderTexture: "resources/textures/blend.png",
		},
		Log: LogSettings{Level: "info"},
	}
}

// Load overlays the YAML document at path onto Default. Keys missing from the
// document keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// FromEnv loads the file named by STORM3D_CONFIG. An unset variable or a
// missing file yields Default.
func FromEnv() (Settings, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", s.Camera.Near, s.Camera.Far)
	}
	if len(s.Assets.SkyboxFaces) != 6 {
		return fmt.Errorf("skybox needs 6 faces, got %d", len(s.Assets.SkyboxFaces))
	}
	return nil
}

// Path resolves an asset path against Root.
func (a AssetSettings) Path(rel string) string {
	if filepath.IsAbs(rel) || a.Root == "" {
		return rel
	}
	return filepath.Join(a.Root, rel)
}
