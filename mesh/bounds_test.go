package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcBoundingBoxEmpty(t *testing.T) {
	m := NewTriMesh()
	box := m.CalcBoundingBox()

	assert.False(t, box.IsValid())
	assert.Equal(t, mgl32.Vec3{}, box.Size())
}

func TestCalcBoundingBoxSingleVertex(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertex(mgl32.Vec3{3, -1, 2})
	box := m.CalcBoundingBox()

	require.True(t, box.IsValid())
	assert.Equal(t, mgl32.Vec3{3, -1, 2}, box.Min)
	assert.Equal(t, mgl32.Vec3{3, -1, 2}, box.Max)
	assert.Equal(t, mgl32.Vec3{}, box.Size())
}

func TestCalcBoundingBox(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{1, 1, 1})
	box := m.CalcBoundingBox()

	require.True(t, box.IsValid())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, box.Min)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, box.Max)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, box.Center())
}

func TestCalcBoundingBoxTransformed(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2})

	box := m.CalcBoundingBoxTransformed(mgl32.Translate3D(1, 2, 3))
	require.True(t, box.IsValid())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, box.Min)
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, box.Max)

	// The stored vertices are not mutated.
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Vertices()[0])
}

func TestCalcBoundingSphere(t *testing.T) {
	m := NewTriMesh()
	center, radius := m.CalcBoundingSphere()
	assert.Equal(t, mgl32.Vec3{}, center)
	assert.Zero(t, radius)

	m.AppendVertices(
		mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, -1, -1},
		mgl32.Vec3{-1, 1, -1}, mgl32.Vec3{1, 1, 1},
	)
	center, radius = m.CalcBoundingSphere()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, center)
	assert.InDelta(t, math32.Sqrt(3), radius, 1e-6)
}

func TestCalcBoundingRect(t *testing.T) {
	m := NewTriMesh2D()
	rect := m.CalcBoundingRect()
	assert.False(t, rect.IsValid())

	m.AppendVertices(mgl32.Vec2{-1, 4}, mgl32.Vec2{3, 0})
	rect = m.CalcBoundingRect()
	require.True(t, rect.IsValid())
	assert.Equal(t, mgl32.Vec2{-1, 0}, rect.Min)
	assert.Equal(t, mgl32.Vec2{3, 4}, rect.Max)
	assert.Equal(t, mgl32.Vec2{4, 4}, rect.Size())
}
