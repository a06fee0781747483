package scene

import (
	"testing"

	"Storm3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBackToFrontOrder(t *testing.T) {
	objects := []Transparent{
		{Kind: renderer.PassWater, Position: mgl32.Vec3{0, 0, -1}},
		{Kind: renderer.PassWater, Position: mgl32.Vec3{0, 0, -10}},
		{Kind: renderer.PassThunder, Position: mgl32.Vec3{0, 0, -5}},
	}

	sorted := SortBackToFront(mgl32.Vec3{}, objects)

	require.Len(t, sorted, 3)
	assert.Equal(t, float32(10), sorted[0].Distance)
	assert.Equal(t, float32(5), sorted[1].Distance)
	assert.Equal(t, renderer.PassThunder, sorted[1].Kind)
	assert.Equal(t, float32(1), sorted[2].Distance)
}

func TestSortBackToFrontKeepsTies(t *testing.T) {
	// all four default water squares are equidistant from a centered eye
	objects := []Transparent{
		{Kind: renderer.PassWater, Position: mgl32.Vec3{-25, 1, -25}},
		{Kind: renderer.PassWater, Position: mgl32.Vec3{-25, 1, 25}},
		{Kind: renderer.PassWater, Position: mgl32.Vec3{25, 1, -25}},
		{Kind: renderer.PassWater, Position: mgl32.Vec3{25, 1, 25}},
		{Kind: renderer.PassThunder, Position: mgl32.Vec3{25, 1, 25}},
	}

	sorted := SortBackToFront(mgl32.Vec3{0, 1, 0}, objects)

	require.Len(t, sorted, len(objects), "no object may be dropped")
	for i := range objects {
		assert.Equal(t, objects[i], sorted[i].Transparent, "tie order must be stable at %d", i)
	}
}

func TestSortBackToFrontNonIncreasing(t *testing.T) {
	var objects []Transparent
	for i := 0; i < 40; i++ {
		x := float32((i*37)%17) - 8
		z := float32((i*11)%13) - 6
		objects = append(objects, Transparent{Kind: renderer.PassWater, Position: mgl32.Vec3{x, 1, z}})
	}
	eye := mgl32.Vec3{3, 3, 15}

	sorted := SortBackToFront(eye, objects)

	require.Len(t, sorted, len(objects))
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Distance, sorted[i].Distance)
	}
	for _, s := range sorted {
		assert.InDelta(t, eye.Sub(s.Position).Len(), s.Distance, 1e-5)
	}
}

func TestSortBackToFrontEmpty(t *testing.T) {
	assert.Empty(t, SortBackToFront(mgl32.Vec3{}, nil))
}

func TestSortBackToFrontLeavesInputAlone(t *testing.T) {
	objects := []Transparent{
		{Kind: renderer.PassWater, Position: mgl32.Vec3{0, 0, -1}},
		{Kind: renderer.PassWater, Position: mgl32.Vec3{0, 0, -10}},
	}

	SortBackToFront(mgl32.Vec3{}, objects)

	assert.Equal(t, float32(-1), objects[0].Position.Z())
}
