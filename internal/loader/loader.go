package loader

import (
	"Storm3D/internal/logger"
	"Storm3D/internal/renderer"
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const floatsPerVertex = 8 // pos(3) uv(2) normal(3)

// defaultMaterialName groups faces that appear before any usemtl.
const defaultMaterialName = "default"

type FaceVertex struct {
	VertexIdx   int32
	TexCoordIdx int32
	NormalIdx   int32
}

// LoadModel parses a Wavefront OBJ file into a model with an interleaved
// vertex buffer and one material group per run of faces sharing a material.
func LoadModel(filename string, recalculateNormals bool) (*renderer.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var vertices []float32
	var textureCoords []float32
	var normals []float32
	var faceVertices []FaceVertex
	var faceMaterials []string // material name per entry in faceVertices
	materials := make(map[string]*renderer.Material)
	currentMaterialName := defaultMaterialName

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}
		switch parts[0] {
		case "v":
			vertex, err := parseVertex(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNumber, err)
			}
			vertices = append(vertices, vertex...)
		case "vn":
			normal, err := parseVertex(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNumber, err)
			}
			normals = append(normals, normal...)
		case "vt":
			texCoord, err := parseVertex(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNumber, err)
			}
			textureCoords = append(textureCoords, texCoord...)
		case "f":
			counts := elementCounts{len(vertices) / 3, len(textureCoords) / 2, len(normals) / 3}
			face, err := parseFace(parts[1:], counts)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNumber, err)
			}
			faceVertices = append(faceVertices, face...)
			for range face {
				faceMaterials = append(faceMaterials, currentMaterialName)
			}
		case "mtllib":
			if len(parts) < 2 {
				continue
			}
			mtlPath := filepath.Join(filepath.Dir(filename), parts[1])
			loaded, err := LoadMaterials(mtlPath)
			if err != nil {
				logger.Log.Warn("Material library unavailable, using default material",
					zap.String("path", mtlPath),
					zap.Error(err))
				continue
			}
			for name, material := range loaded {
				materials[name] = material
			}
		case "usemtl":
			if len(parts) >= 2 {
				currentMaterialName = parts[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(faceVertices) == 0 {
		return nil, fmt.Errorf("%s: no faces", filename)
	}

	interleaved, indices, err := unifyIndices(vertices, textureCoords, normals, faceVertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if recalculateNormals || len(normals) == 0 {
		positions := make([]float32, 0, len(interleaved)/floatsPerVertex*3)
		for i := 0; i < len(interleaved); i += floatsPerVertex {
			positions = append(positions, interleaved[i:i+3]...)
		}
		recalculated := RecalculateNormals(positions, indices)
		for v := 0; v < len(recalculated)/3; v++ {
			copy(interleaved[v*floatsPerVertex+5:v*floatsPerVertex+8], recalculated[v*3:v*3+3])
		}
	}

	model := &renderer.Model{
		Name:            strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		SourcePath:      filename,
		Vertices:        vertices,
		Faces:           indices,
		InterleavedData: interleaved,
		Position:        mgl32.Vec3{0, 0, 0},
		Scale:           mgl32.Vec3{1, 1, 1},
		Rotation:        mgl32.QuatIdent(),
		IsDirty:         true,
	}
	model.MaterialGroups = buildMaterialGroups(faceMaterials, materials)
	model.Material = model.MaterialGroups[0].Material

	logger.Log.Info("Model loaded",
		zap.String("path", filename),
		zap.Int("positions", len(vertices)/3),
		zap.Int("unifiedVertices", len(interleaved)/floatsPerVertex),
		zap.Int("indices", len(indices)),
		zap.Int("materialGroups", len(model.MaterialGroups)))
	return model, nil
}

// unifyIndices turns separate v/vt/vn indices into one index per unique
// triplet. Missing texture coordinates default to (0,0), missing normals
// to +Y.
func unifyIndices(vertices, textureCoords, normals []float32, faceVertices []FaceVertex) ([]float32, []int32, error) {
	vertexMap := make(map[FaceVertex]int32)
	interleaved := make([]float32, 0, len(faceVertices)*floatsPerVertex)
	indices := make([]int32, 0, len(faceVertices))

	for _, fv := range faceVertices {
		if existing, ok := vertexMap[fv]; ok {
			indices = append(indices, existing)
			continue
		}
		if fv.VertexIdx < 0 || int(fv.VertexIdx)*3+2 >= len(vertices) {
			return nil, nil, fmt.Errorf("vertex index %d out of range (%d positions)", fv.VertexIdx+1, len(vertices)/3)
		}
		newIdx := int32(len(interleaved) / floatsPerVertex)
		vertexMap[fv] = newIdx

		interleaved = append(interleaved, vertices[fv.VertexIdx*3:fv.VertexIdx*3+3]...)

		if fv.TexCoordIdx >= 0 && int(fv.TexCoordIdx)*2+1 < len(textureCoords) {
			interleaved = append(interleaved, textureCoords[fv.TexCoordIdx*2:fv.TexCoordIdx*2+2]...)
		} else {
			interleaved = append(interleaved, 0.0, 0.0)
		}

		if fv.NormalIdx >= 0 && int(fv.NormalIdx)*3+2 < len(normals) {
			interleaved = append(interleaved, normals[fv.NormalIdx*3:fv.NormalIdx*3+3]...)
		} else {
			if fv.NormalIdx >= 0 {
				logger.Log.Warn("Normal index out of bounds",
					zap.Int32("normalIdx", fv.NormalIdx),
					zap.Int("normalsLen", len(normals)/3))
			}
			interleaved = append(interleaved, 0.0, 1.0, 0.0)
		}
		indices = append(indices, newIdx)
	}
	return interleaved, indices, nil
}

// buildMaterialGroups splits the index buffer into contiguous runs sharing a
// material. Unknown material names fall back to a copy of the default.
func buildMaterialGroups(faceMaterials []string, materials map[string]*renderer.Material) []renderer.MaterialGroup {
	var groups []renderer.MaterialGroup
	var fallback *renderer.Material

	resolve := func(name string) *renderer.Material {
		if material, ok := materials[name]; ok {
			return material
		}
		if name != defaultMaterialName {
			logger.Log.Warn("Material not found, using default", zap.String("material", name))
		}
		if fallback == nil {
			copied := *renderer.DefaultMaterial
			fallback = &copied
		}
		return fallback
	}

	currentName := ""
	for i, name := range faceMaterials {
		if i == 0 || name != currentName {
			groups = append(groups, renderer.MaterialGroup{
				Material:   resolve(name),
				IndexStart: int32(i),
			})
			currentName = name
		}
		groups[len(groups)-1].IndexCount++
	}
	return groups
}

// LoadMaterials loads material properties from a .mtl file. Texture paths
// are resolved relative to the file.
func LoadMaterials(filename string) (map[string]*renderer.Material, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var currentMaterial *renderer.Material
	materials := make(map[string]*renderer.Material)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] != "newmtl" && currentMaterial == nil {
			logger.Log.Debug("Material statement before newmtl", zap.String("line", line))
			continue
		}

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				logger.Log.Error("Malformed material line", zap.String("line", line))
				continue
			}
			currentMaterial = &renderer.Material{
				Name:          fields[1],
				DiffuseColor:  renderer.DefaultMaterial.DiffuseColor,
				SpecularColor: renderer.DefaultMaterial.SpecularColor,
				Shininess:     renderer.DefaultMaterial.Shininess,
				Alpha:         1.0,
			}
			materials[fields[1]] = currentMaterial
		case "Kd": // Diffuse color
			if len(fields) == 4 {
				currentMaterial.DiffuseColor = parseColor(fields[1:])
			}
		case "Ks": // Specular color
			if len(fields) == 4 {
				currentMaterial.SpecularColor = parseColor(fields[1:])
			}
		case "Ns": // Shininess
			if len(fields) == 2 {
				currentMaterial.Shininess = parseFloat(fields[1])
			}
		case "d": // Dissolve
			if len(fields) == 2 {
				currentMaterial.Alpha = parseFloat(fields[1])
			}
		case "map_Kd":
			if len(fields) >= 2 {
				currentMaterial.TexturePath = resolveTexturePath(filename, fields[len(fields)-1])
			}
		case "map_Ks":
			if len(fields) >= 2 {
				currentMaterial.SpecularPath = resolveTexturePath(filename, fields[len(fields)-1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, errors.New("no materials defined")
	}
	return materials, nil
}

// The texture path is the last field; options may precede it.
func resolveTexturePath(mtlPath, texturePath string) string {
	texturePath = filepath.FromSlash(strings.ReplaceAll(texturePath, "\\", "/"))
	if filepath.IsAbs(texturePath) {
		return texturePath
	}
	return filepath.Join(filepath.Dir(mtlPath), texturePath)
}

// parseColor parses RGB color components from a list of strings to an array of float32.
func parseColor(fields []string) [3]float32 {
	var color [3]float32
	for i, field := range fields {
		if val, err := strconv.ParseFloat(field, 32); err == nil {
			color[i] = float32(val)
		} else {
			logger.Log.Error("Error parsing color component", zap.Error(err))
		}
	}
	return color
}

func parseFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		logger.Log.Error("Error parsing material value", zap.Error(err))
		return 0
	}
	return float32(f)
}

// parseVertex parses the first n components. Extra components (w) are ignored.
func parseVertex(parts []string, n int) ([]float32, error) {
	if len(parts) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(parts))
	}
	vertex := make([]float32, 0, n)
	for _, part := range parts[:n] {
		val, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex value %v: %w", part, err)
		}
		vertex = append(vertex, float32(val))
	}
	return vertex, nil
}

// elementCounts is the number of v, vt and vn entries read so far. Negative
// face indices count back from these.
type elementCounts struct {
	vertices      int
	textureCoords int
	normals       int
}

// resolveIndex converts a 1-based or negative relative OBJ index to a
// 0-based one.
func resolveIndex(field string, count int) (int32, error) {
	idx, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0:
		return int32(idx - 1), nil
	case idx < 0:
		return int32(int64(count) + idx), nil
	}
	return 0, errors.New("index 0 is not valid")
}

// parseFace reads v, v/vt, v//vn or v/vt/vn entries and triangulates quads
// and larger polygons as a fan from the first vertex.
func parseFace(parts []string, counts elementCounts) ([]FaceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(parts))
	}
	face := make([]FaceVertex, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")

		vertexIdx, err := resolveIndex(vals[0], counts.vertices)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %v: %w", vals[0], err)
		}

		var texCoordIdx int32 = -1
		if len(vals) > 1 && vals[1] != "" {
			texCoordIdx, err = resolveIndex(vals[1], counts.textureCoords)
			if err != nil {
				return nil, fmt.Errorf("invalid texture coordinate index %v: %w", vals[1], err)
			}
		}

		var normalIdx int32 = -1
		if len(vals) > 2 && vals[2] != "" {
			normalIdx, err = resolveIndex(vals[2], counts.normals)
			if err != nil {
				return nil, fmt.Errorf("invalid normal index %v: %w", vals[2], err)
			}
		}

		face = append(face, FaceVertex{
			VertexIdx:   vertexIdx,
			TexCoordIdx: texCoordIdx,
			NormalIdx:   normalIdx,
		})
	}

	if len(face) == 3 {
		return face, nil
	}
	triangulated := make([]FaceVertex, 0, (len(face)-2)*3)
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}

// RecalculateNormals averages the face normals around each vertex.
func RecalculateNormals(vertices []float32, faces []int32) []float32 {
	if len(vertices) == 0 || len(faces) == 0 {
		logger.Log.Warn("Empty vertices or faces slice")
		return nil
	}

	normals := make([]float32, len(vertices))

	for i := 0; i+2 < len(faces); i += 3 {
		idx0 := faces[i] * 3
		idx1 := faces[i+1] * 3
		idx2 := faces[i+2] * 3

		if idx0+2 >= int32(len(vertices)) || idx1+2 >= int32(len(vertices)) || idx2+2 >= int32(len(vertices)) {
			logger.Log.Warn("Face index out of bounds",
				zap.Int32("idx0", idx0), zap.Int32("idx1", idx1), zap.Int32("idx2", idx2),
				zap.Int("verticesLen", len(vertices)))
			continue
		}

		v0 := mgl32.Vec3{vertices[idx0], vertices[idx0+1], vertices[idx0+2]}
		v1 := mgl32.Vec3{vertices[idx1], vertices[idx1+1], vertices[idx1+2]}
		v2 := mgl32.Vec3{vertices[idx2], vertices[idx2+1], vertices[idx2+2]}

		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		if normal.Len() == 0 {
			continue
		}
		normal = normal.Normalize()

		for j := int32(0); j < 3; j++ {
			normals[idx0+j] += normal[j]
			normals[idx1+j] += normal[j]
			normals[idx2+j] += normal[j]
		}
	}

	for i := 0; i+2 < len(normals); i += 3 {
		normal := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if normal.Len() == 0 {
			normals[i], normals[i+1], normals[i+2] = 0, 1, 0
			continue
		}
		normal = normal.Normalize()
		normals[i], normals[i+1], normals[i+2] = normal[0], normal[1], normal[2]
	}

	return normals
}
