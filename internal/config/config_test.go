package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDemoScene(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
	assert.Equal(t, [3]float32{3, 3, 15}, s.Camera.Position)
	assert.Len(t, s.Scene.WaterSquares, 4)
	assert.Len(t, s.Assets.SkyboxFaces, 6)
	assert.Equal(t, float32(0.032), s.Light.Quadratic)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storm.yaml")
	doc := `
window:
  title: Night Storm
camera:
  speed: 5
scene:
  thunder_sprites:
    - [1, 2, 3]
    - [4, 5, 6]
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Night Storm", s.Window.Title)
	assert.Equal(t, 800, s.Window.Width, "untouched keys keep defaults")
	assert.Equal(t, float32(5), s.Camera.Speed)
	assert.Equal(t, float32(45), s.Camera.Fov)
	assert.Equal(t, [][3]float32{{1, 2, 3}, {4, 5, 6}}, s.Scene.ThunderSprites)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  near: 10\n  far: 1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.yaml"))
	s, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Window.Width = 0
	assert.Error(t, s.Validate())

	s = Default()
	s.Assets.SkyboxFaces = s.Assets.SkyboxFaces[:5]
	assert.Error(t, s.Validate())
}

func TestAssetPath(t *testing.T) {
	a := AssetSettings{Root: "/srv/storm"}
	assert.Equal(t, filepath.Join("/srv/storm", "resources/textures/water.png"), a.Path("resources/textures/water.png"))
	assert.Equal(t, "/abs/file.png", a.Path("/abs/file.png"))

	a.Root = ""
	assert.Equal(t, "rel.png", a.Path("rel.png"))
}
