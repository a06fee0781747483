package renderer

import (
	"Storm3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Alpha:         1.0,
}

// MaterialGroup represents a submesh with a single material
type MaterialGroup struct {
	Material   *Material // Material for this group
	IndexStart int32     // Starting index in the index buffer
	IndexCount int32     // Number of indices for this group
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    *Material
	Mesh        *Mesh
	IsDirty     bool

	// COLD DATA - Initialization only
	Name            string
	SourcePath      string
	Vertices        []float32 // Vertex position data
	Faces           []int32   // Index data
	InterleavedData []float32 // pos(3) uv(2) normal(3)
	MaterialGroups  []MaterialGroup
}

type Material struct {
	DiffuseColor  [3]float32
	SpecularColor [3]float32
	Shininess     float32
	Alpha         float32
	TextureID     uint32 // diffuse map
	SpecularID    uint32 // specular map

	Name         string
	TexturePath  string // map_Kd, resolved against the MTL file
	SpecularPath string // map_Ks
}

// Opacity is the MTL dissolve value clamped to [0,1].
func (mat *Material) Opacity() float32 {
	return mgl32.Clamp(mat.Alpha, 0, 1)
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.IsDirty = true
}

// GetModelMatrix returns translation * rotation * scale, recomputing it when
// the transform changed.
func (m *Model) GetModelMatrix() mgl32.Mat4 {
	if m.IsDirty || m.ModelMatrix == (mgl32.Mat4{}) {
		m.calculateModelMatrix()
		m.IsDirty = false
	}
	return m.ModelMatrix
}

func (m *Model) calculateModelMatrix() {
	rotation := m.Rotation
	if rotation == (mgl32.Quat{}) {
		rotation = mgl32.QuatIdent()
	}
	scaleMatrix := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
	translationMatrix := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())
	m.ModelMatrix = translationMatrix.Mul4(rotation.Mat4()).Mul4(scaleMatrix)
}

// Groups returns the material groups to draw. A model without groups is one
// group spanning every index.
func (m *Model) Groups() []MaterialGroup {
	if len(m.MaterialGroups) > 0 {
		return m.MaterialGroups
	}
	material := m.Material
	if material == nil {
		material = DefaultMaterial
	}
	return []MaterialGroup{{Material: material, IndexStart: 0, IndexCount: int32(len(m.Faces))}}
}

// Upload sends the geometry to the GPU and loads every material texture
// through textures.
func (m *Model) Upload(textures *TextureLoader) {
	m.Mesh = UploadMesh(m.InterleavedData, m.Faces, LayoutPosUVNormal)

	for _, group := range m.Groups() {
		material := group.Material
		if material.TexturePath != "" && material.TextureID == 0 {
			material.TextureID = textures.Load2D(material.TexturePath)
		}
		if material.SpecularPath != "" && material.SpecularID == 0 {
			material.SpecularID = textures.Load2D(material.SpecularPath)
		}
	}

	logger.Log.Info("Model uploaded",
		zap.String("name", m.Name),
		zap.Int("indices", len(m.Faces)),
		zap.Int("materialGroups", len(m.Groups())))
}

// Draw issues one draw call per material group. Sampler uniforms are named
// prefix+"texture_diffuse1" (unit 0) and prefix+"texture_specular1" (unit 1).
func (m *Model) Draw(shader *Shader, prefix string) {
	if m.Mesh == nil {
		return
	}
	shader.SetInt(prefix+"texture_diffuse1", 0)
	shader.SetInt(prefix+"texture_specular1", 1)
	for _, group := range m.Groups() {
		if group.IndexCount == 0 {
			continue
		}
		material := group.Material
		shader.SetVec3(prefix+"diffuseColor", material.DiffuseColor)
		shader.SetVec3(prefix+"specularColor", material.SpecularColor)
		shader.SetFloat(prefix+"alpha", material.Opacity())

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, material.TextureID)
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, material.SpecularID)

		m.Mesh.DrawRange(group.IndexStart, group.IndexCount)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}
