package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexLayout lists the float count of each attribute, in location order.
type VertexLayout []int32

var (
	// LayoutPosUVNormal matches Model.InterleavedData: position, texcoord, normal.
	LayoutPosUVNormal = VertexLayout{3, 2, 3}
	LayoutPosUV       = VertexLayout{3, 2}
	LayoutPos         = VertexLayout{3}
)

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int32 {
	var n int32
	for _, size := range l {
		n += size
	}
	return n
}

// Mesh is an uploaded vertex array. Handles live for the whole process.
type Mesh struct {
	VAO     uint32
	VBO     uint32
	EBO     uint32
	Count   int32
	Indexed bool
}

// UploadMesh creates a VAO/VBO (and an EBO when indices are given) for
// interleaved vertex data.
func UploadMesh(vertices []float32, indices []int32, layout VertexLayout) *Mesh {
	mesh := &Mesh{}
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &mesh.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		mesh.Indexed = true
		mesh.Count = int32(len(indices))
	} else {
		mesh.Count = int32(len(vertices)) / layout.Stride()
	}

	stride := layout.Stride() * 4
	var offset int32
	for location, size := range layout {
		gl.VertexAttribPointer(uint32(location), size, gl.FLOAT, false, stride, gl.PtrOffset(int(offset*4)))
		gl.EnableVertexAttribArray(uint32(location))
		offset += size
	}

	gl.BindVertexArray(0)
	return mesh
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.Indexed {
		gl.DrawElements(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	}
	gl.BindVertexArray(0)
}

// DrawRange draws count indices starting at first. Only valid for indexed meshes.
func (m *Mesh) DrawRange(first, count int32) {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(int(first)*4))
	gl.BindVertexArray(0)
}

// WaterQuadVertices is a horizontal square of side 2*half centered on the
// origin, with texture coordinates repeating tiling times across it.
// Layout: LayoutPosUVNormal.
func WaterQuadVertices(half, tiling float32) []float32 {
	return []float32{
		// positions         // texture coords // normals
		half, 0, half, tiling, 0, 0, 1, 0,
		-half, 0, -half, 0, tiling, 0, 1, 0,
		-half, 0, half, 0, 0, 0, 1, 0,

		half, 0, half, tiling, 0, 0, 1, 0,
		half, 0, -half, tiling, tiling, 0, 1, 0,
		-half, 0, -half, 0, tiling, 0, 1, 0,
	}
}

// SpriteQuadVertices is a unit-wide, unit-tall upright quad whose left edge
// sits on the origin. Layout: LayoutPosUV.
func SpriteQuadVertices() []float32 {
	return []float32{
		0, 0.5, 0, 0, 0,
		0, -0.5, 0, 0, 1,
		1, -0.5, 0, 1, 1,

		0, 0.5, 0, 0, 0,
		1, -0.5, 0, 1, 1,
		1, 0.5, 0, 1, 0,
	}
}
