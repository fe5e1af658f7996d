package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
)

// TriMeshBuilderOption is a functional option for configuring a TriMesh via NewTriMesh.
type TriMeshBuilderOption func(*triMesh)

// WithVertices is an option builder that sets the vertex buffer of the mesh.
//
// Parameters:
//   - verts: the vertex positions to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the vertices option to a mesh
func WithVertices(verts []mgl32.Vec3) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.vertices = verts
	}
}

// WithNormals is an option builder that sets the normals buffer of the mesh.
//
// Parameters:
//   - normals: the normals to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the normals option to a mesh
func WithNormals(normals []mgl32.Vec3) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.normals = normals
	}
}

// WithColorsRGB is an option builder that sets the RGB color buffer of the mesh.
//
// Parameters:
//   - colors: the RGB colors to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the RGB colors option to a mesh
func WithColorsRGB(colors []common.Color) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.colorsRGB = colors
	}
}

// WithColorsRGBA is an option builder that sets the RGBA color buffer of the mesh.
//
// Parameters:
//   - colors: the RGBA colors to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the RGBA colors option to a mesh
func WithColorsRGBA(colors []common.ColorA) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.colorsRGBA = colors
	}
}

// WithTexCoords is an option builder that sets the texture coordinate buffer of the mesh.
//
// Parameters:
//   - texCoords: the texture coordinates to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the texture coordinates option to a mesh
func WithTexCoords(texCoords []mgl32.Vec2) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.texCoords = texCoords
	}
}

// WithIndices is an option builder that sets the index buffer of the mesh.
//
// Parameters:
//   - indices: the index values to set (retained, not copied)
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint32) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.indices = indices
	}
}

// WithNormalConvention is an option builder that declares how the normals
// buffer aligns with the mesh topology.
//
// Parameters:
//   - c: the convention to declare
//
// Returns:
//   - TriMeshBuilderOption: a function that applies the convention option to a mesh
func WithNormalConvention(c AttributeConvention) TriMeshBuilderOption {
	return func(m *triMesh) {
		m.normalConvention = c
	}
}
