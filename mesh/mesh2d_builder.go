package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
)

// TriMesh2DBuilderOption is a functional option for configuring a TriMesh2D via NewTriMesh2D.
type TriMesh2DBuilderOption func(*triMesh2D)

// WithVertices2D is an option builder that sets the vertex buffer of the mesh.
//
// Parameters:
//   - verts: the vertex positions to set (retained, not copied)
//
// Returns:
//   - TriMesh2DBuilderOption: a function that applies the vertices option to a mesh
func WithVertices2D(verts []mgl32.Vec2) TriMesh2DBuilderOption {
	return func(m *triMesh2D) {
		m.vertices = verts
	}
}

// WithColorsRGB2D is an option builder that sets the RGB color buffer of the mesh.
//
// Parameters:
//   - colors: the RGB colors to set (retained, not copied)
//
// Returns:
//   - TriMesh2DBuilderOption: a function that applies the RGB colors option to a mesh
func WithColorsRGB2D(colors []common.Color) TriMesh2DBuilderOption {
	return func(m *triMesh2D) {
		m.colorsRGB = colors
	}
}

// WithColorsRGBA2D is an option builder that sets the RGBA color buffer of the mesh.
//
// Parameters:
//   - colors: the RGBA colors to set (retained, not copied)
//
// Returns:
//   - TriMesh2DBuilderOption: a function that applies the RGBA colors option to a mesh
func WithColorsRGBA2D(colors []common.ColorA) TriMesh2DBuilderOption {
	return func(m *triMesh2D) {
		m.colorsRGBA = colors
	}
}

// WithTexCoords2D is an option builder that sets the texture coordinate buffer of the mesh.
//
// Parameters:
//   - texCoords: the texture coordinates to set (retained, not copied)
//
// Returns:
//   - TriMesh2DBuilderOption: a function that applies the texture coordinates option to a mesh
func WithTexCoords2D(texCoords []mgl32.Vec2) TriMesh2DBuilderOption {
	return func(m *triMesh2D) {
		m.texCoords = texCoords
	}
}

// WithIndices2D is an option builder that sets the index buffer of the mesh.
//
// Parameters:
//   - indices: the index values to set (retained, not copied)
//
// Returns:
//   - TriMesh2DBuilderOption: a function that applies the indices option to a mesh
func WithIndices2D(indices []uint32) TriMesh2DBuilderOption {
	return func(m *triMesh2D) {
		m.indices = indices
	}
}
