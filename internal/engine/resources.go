package engine

import (
	"Storm3D/internal/config"
	"Storm3D/internal/loader"
	"Storm3D/internal/logger"
	"Storm3D/internal/renderer"
	"fmt"

	"go.uber.org/zap"
)

// Resources holds the GPU objects shared by every frame.
type Resources struct {
	Textures *renderer.TextureLoader

	PlaneShader   *renderer.Shader
	SkyboxShader  *renderer.Shader
	WaterShader   *renderer.Shader
	ThunderShader *renderer.Shader

	Plane       *renderer.Model
	WaterQuad   *renderer.Mesh
	SpriteQuad  *renderer.Mesh
	Skybox      *renderer.Skybox
	WaterTex    uint32
	ThunderTex  uint32
	CubemapTex  uint32
	shaderOrder []*renderer.Shader
}

func loadShader(assets config.AssetSettings, name string, pair config.ShaderPair) (*renderer.Shader, error) {
	return renderer.LoadShader(name, assets.Path(pair.Vertex), assets.Path(pair.Fragment))
}

// LoadResources compiles the shaders and uploads every mesh and texture.
// Shader failures are fatal. Texture failures are logged by the texture
// loader and leave empty textures. A model that fails to load is logged and
// the plane is left out of the frame.
func LoadResources(cfg config.Settings, textures *renderer.TextureLoader) (*Resources, error) {
	assets := cfg.Assets
	res := &Resources{Textures: textures}

	shaders := []struct {
		name string
		pair config.ShaderPair
		dst  **renderer.Shader
	}{
		{"plane", assets.PlaneShader, &res.PlaneShader},
		{"skybox", assets.SkyboxShader, &res.SkyboxShader},
		{"water", assets.WaterShader, &res.WaterShader},
		{"thunder", assets.ThunderShader, &res.ThunderShader},
	}
	for _, s := range shaders {
		shader, err := loadShader(assets, s.name, s.pair)
		if err != nil {
			res.Release()
			return nil, err
		}
		*s.dst = shader
		res.shaderOrder = append(res.shaderOrder, shader)
	}

	modelPath := assets.Path(assets.Model)
	if model, err := loader.LoadModel(modelPath, false); err != nil {
		logger.Log.Error("Model failed to load", zap.String("path", modelPath), zap.Error(err))
	} else {
		model.Upload(textures)
		res.Plane = model
	}

	res.WaterTex = textures.Load2D(assets.Path(assets.WaterTexture))
	res.ThunderTex = textures.Load2D(assets.Path(assets.ThunderTexture))

	faces := make([]string, len(assets.SkyboxFaces))
	for i, face := range assets.SkyboxFaces {
		faces[i] = assets.Path(face)
	}
	cubemap, err := textures.LoadCubemap(faces)
	if err != nil {
		res.Release()
		return nil, fmt.Errorf("skybox: %w", err)
	}
	res.CubemapTex = cubemap

	res.WaterQuad = renderer.UploadMesh(
		renderer.WaterQuadVertices(cfg.Scene.WaterHalfSize, cfg.Scene.WaterTiling), nil, renderer.LayoutPosUVNormal)
	res.SpriteQuad = renderer.UploadMesh(renderer.SpriteQuadVertices(), nil, renderer.LayoutPosUV)
	res.Skybox = renderer.NewSkybox(cfg.Scene.SkyboxSize, cubemap)

	textures.LogStats()
	return res, nil
}

// RegisterPasses binds every material to the pass that draws it.
func (res *Resources) RegisterPasses(rend *renderer.OpenGLRenderer, cfg config.Settings) {
	if res.Plane != nil {
		rend.SetPass(renderer.PassPlane, &renderer.PlanePass{
			Shader:    res.PlaneShader,
			Model:     res.Plane,
			CubemapID: res.CubemapTex,
			Shininess: cfg.Light.Shininess,
		})
	}
	rend.SetPass(renderer.PassWater, &renderer.WaterPass{
		Shader:     res.WaterShader,
		Mesh:       res.WaterQuad,
		TextureID:  res.WaterTex,
		CelShading: cfg.Scene.CelShading,
	})
	rend.SetPass(renderer.PassThunder, &renderer.SpritePass{
		Shader:    res.ThunderShader,
		Mesh:      res.SpriteQuad,
		TextureID: res.ThunderTex,
	})
	rend.SetPass(renderer.PassSkybox, &renderer.SkyboxPass{
		Shader: res.SkyboxShader,
		Skybox: res.Skybox,
	})
}

// Release deletes the shader programs. Textures and buffers live until the
// context is destroyed.
func (res *Resources) Release() {
	for _, shader := range res.shaderOrder {
		shader.Delete()
	}
	res.shaderOrder = nil
}
