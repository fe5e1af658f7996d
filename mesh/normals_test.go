package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateNormalsSingleTriangle(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	m.AppendTriangle(0, 1, 2)

	require.NoError(t, m.RecalculateNormals())
	require.Len(t, m.Normals(), 3)
	for _, n := range m.Normals() {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, n)
	}
	assert.Equal(t, ConventionPerVertex, m.NormalConvention())
}

func TestRecalculateNormalsSmoothing(t *testing.T) {
	// Two coplanar triangles sharing an edge; every accumulated normal must
	// still normalize to the plane normal.
	m := NewTriMesh()
	m.AppendVertices(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0},
	)
	m.AppendTriangle(0, 1, 2)
	m.AppendTriangle(0, 2, 3)

	require.NoError(t, m.RecalculateNormals())
	require.Len(t, m.Normals(), 4)
	for _, n := range m.Normals() {
		assert.InDelta(t, 0, n.X(), 1e-6)
		assert.InDelta(t, 0, n.Y(), 1e-6)
		assert.InDelta(t, 1, n.Z(), 1e-6)
	}
}

func TestRecalculateNormalsReplacesExisting(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	m.AppendTriangle(0, 1, 2)
	m.AppendNormal(mgl32.Vec3{1, 0, 0})
	m.SetNormalConvention(ConventionPerFace)

	require.NoError(t, m.RecalculateNormals())
	require.Len(t, m.Normals(), 3)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normals()[0])
	assert.Equal(t, ConventionPerVertex, m.NormalConvention())
}

func TestRecalculateNormalsDegenerate(t *testing.T) {
	// Collinear vertices form a zero-area triangle; the affected vertices
	// resolve to the zero vector, never NaN.
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0})
	m.AppendTriangle(0, 1, 2)

	require.NoError(t, m.RecalculateNormals())
	require.Len(t, m.Normals(), 3)
	for _, n := range m.Normals() {
		assert.Equal(t, mgl32.Vec3{}, n)
		for _, comp := range n {
			assert.False(t, math32.IsNaN(comp))
		}
	}
}

func TestRecalculateNormalsMixedDegenerate(t *testing.T) {
	// One healthy triangle plus one degenerate one sharing a vertex: the
	// degenerate face contributes nothing, it does not poison the sum.
	m := NewTriMesh()
	m.AppendVertices(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0},
		mgl32.Vec3{2, 0, 0}, mgl32.Vec3{3, 0, 0},
	)
	m.AppendTriangle(0, 1, 2)
	m.AppendTriangle(0, 3, 4)

	require.NoError(t, m.RecalculateNormals())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normals()[0])
	assert.Equal(t, mgl32.Vec3{}, m.Normals()[3])
	assert.Equal(t, mgl32.Vec3{}, m.Normals()[4])
}

func TestRecalculateNormalsUnreferencedVertex(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{5, 5, 5})
	m.AppendTriangle(0, 1, 2)

	require.NoError(t, m.RecalculateNormals())
	require.Len(t, m.Normals(), 4)
	assert.Equal(t, mgl32.Vec3{}, m.Normals()[3])
}

func TestRecalculateNormalsOutOfRange(t *testing.T) {
	m := NewTriMesh()
	m.AppendVertices(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})
	m.AppendTriangle(0, 1, 5)
	m.AppendNormal(mgl32.Vec3{1, 0, 0})

	err := m.RecalculateNormals()
	assert.ErrorIs(t, err, errIndexOutOfRange)

	// The existing normals buffer is untouched on failure.
	require.Len(t, m.Normals(), 1)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Normals()[0])
}
