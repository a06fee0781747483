package scene

import (
	"sort"

	"Storm3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Transparent is a blended object placed in the world.
type Transparent struct {
	Kind     renderer.PassKind
	Position mgl32.Vec3
}

// SortedTransparent is a transparent object with its distance to the eye.
type SortedTransparent struct {
	Transparent
	Distance float32
}

// SortBackToFront orders objects from farthest to nearest. Objects at the
// same distance keep their input order and none are dropped.
func SortBackToFront(eye mgl32.Vec3, objects []Transparent) []SortedTransparent {
	sorted := make([]SortedTransparent, len(objects))
	for i, obj := range objects {
		sorted[i] = SortedTransparent{Transparent: obj, Distance: eye.Sub(obj.Position).Len()}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Distance > sorted[j].Distance
	})
	return sorted
}
