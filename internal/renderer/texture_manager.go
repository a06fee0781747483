package renderer

import (
	"Storm3D/internal/logger"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// CubemapFaces is the number of faces a cubemap needs, in +X, -X, +Y, -Y, +Z, -Z order.
const CubemapFaces = 6

// TextureStats provides debugging information about the loader
type TextureStats struct {
	Loaded      int
	Failed      int
	CacheHits   int
	CacheMisses int
}

// TextureDevice creates and fills texture objects on the GPU.
type TextureDevice interface {
	GenTexture() uint32
	Upload2D(id uint32, img *image.RGBA)
	BindCubemap(id uint32)
	UploadCubemapFace(id uint32, face int, img *image.RGBA)
	FinishCubemap(id uint32)
}

// TextureLoader loads 2D textures and cubemaps. Decode failures are logged and
// the generated, empty texture handle is returned anyway.
type TextureLoader struct {
	device       TextureDevice
	textureCache map[string]uint32 // path -> texture ID
	stats        TextureStats
}

func NewTextureLoader(device TextureDevice) *TextureLoader {
	return &TextureLoader{
		device:       device,
		textureCache: make(map[string]uint32),
	}
}

// Load2D returns a mipmapped, repeating, linearly filtered texture for path.
func (tl *TextureLoader) Load2D(path string) uint32 {
	if textureID, exists := tl.textureCache[path]; exists {
		tl.stats.CacheHits++
		logger.Log.Debug("Texture cache hit",
			zap.String("path", path),
			zap.Uint32("textureID", textureID))
		return textureID
	}
	tl.stats.CacheMisses++

	textureID := tl.device.GenTexture()
	rgba, err := DecodeImage(path)
	if err != nil {
		tl.stats.Failed++
		logger.Log.Error("Texture failed to load",
			zap.String("path", path),
			zap.Uint32("textureID", textureID),
			zap.Error(err))
		return textureID
	}

	tl.device.Upload2D(textureID, rgba)
	tl.textureCache[path] = textureID
	tl.stats.Loaded++

	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))
	return textureID
}

// LoadCubemap builds a cubemap from six face images. A face that fails to
// decode is logged and left empty; the other faces are still uploaded.
func (tl *TextureLoader) LoadCubemap(faces []string) (uint32, error) {
	if len(faces) != CubemapFaces {
		return 0, fmt.Errorf("cubemap needs %d faces, got %d", CubemapFaces, len(faces))
	}

	textureID := tl.device.GenTexture()
	tl.device.BindCubemap(textureID)
	for i, path := range faces {
		rgba, err := DecodeImage(path)
		if err != nil {
			tl.stats.Failed++
			logger.Log.Error("Cubemap texture failed to load",
				zap.String("path", path),
				zap.Int("face", i),
				zap.Error(err))
			continue
		}
		tl.device.UploadCubemapFace(textureID, i, rgba)
		tl.stats.Loaded++
	}
	tl.device.FinishCubemap(textureID)

	logger.Log.Info("Cubemap loaded", zap.Uint32("textureID", textureID))
	return textureID, nil
}

func (tl *TextureLoader) GetStats() TextureStats {
	return tl.stats
}

// LogStats logs current texture statistics
func (tl *TextureLoader) LogStats() {
	logger.Log.Info("Texture loader stats",
		zap.Int("loaded", tl.stats.Loaded),
		zap.Int("failed", tl.stats.Failed),
		zap.Int("cacheHits", tl.stats.CacheHits),
		zap.Int("cacheMisses", tl.stats.CacheMisses))
}

// DecodeImage reads any registered image format (png, jpeg, bmp, tiff) into
// a tightly packed RGBA image.
func DecodeImage(path string) (*image.RGBA, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported stride")
	}
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba, nil
}

// GLTextureDevice uploads textures to the current OpenGL context.
type GLTextureDevice struct{}

func (GLTextureDevice) GenTexture() uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	return textureID
}

func (GLTextureDevice) Upload2D(id uint32, rgba *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
}

func (GLTextureDevice) BindCubemap(id uint32) {
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
}

func (GLTextureDevice) UploadCubemapFace(id uint32, face int, rgba *image.RGBA) {
	gl.TexImage2D(
		gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
}

func (GLTextureDevice) FinishCubemap(id uint32) {
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
}
