package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// SkyboxVertexCount is the number of vertices in the skybox cube (6 faces, 2 triangles each).
const SkyboxVertexCount = 36

type Skybox struct {
	Mesh      *Mesh
	TextureID uint32
}

// SkyboxVertices returns a cube of half-extent size centered at the origin,
// positions only.
func SkyboxVertices(size float32) []float32 {
	return []float32{
		-size, size, -size,
		-size, -size, -size,
		size, -size, -size,
		size, -size, -size,
		size, size, -size,
		-size, size, -size,

		-size, -size, size,
		-size, -size, -size,
		-size, size, -size,
		-size, size, -size,
		-size, size, size,
		-size, -size, size,

		size, -size, -size,
		size, -size, size,
		size, size, size,
		size, size, size,
		size, size, -size,
		size, -size, -size,

		-size, -size, size,
		-size, size, size,
		size, size, size,
		size, size, size,
		size, -size, size,
		-size, -size, size,

		-size, size, -size,
		size, size, -size,
		size, size, size,
		size, size, size,
		-size, size, size,
		-size, size, -size,

		-size, -size, -size,
		-size, -size, size,
		size, -size, -size,
		size, -size, -size,
		-size, -size, size,
		size, -size, size,
	}
}

// NewSkybox uploads the cube geometry for an already loaded cubemap.
func NewSkybox(size float32, cubemapID uint32) *Skybox {
	return &Skybox{
		Mesh:      UploadMesh(SkyboxVertices(size), nil, LayoutPos),
		TextureID: cubemapID,
	}
}

// Draw binds the cubemap on unit 0 and draws the cube. The caller sets the
// depth function and the rotation-only view.
func (s *Skybox) Draw() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.TextureID)
	s.Mesh.Draw()
}
