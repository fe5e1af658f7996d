// Package mesh provides indexed triangle-mesh containers for 2D and 3D
// geometry. A mesh is built incrementally with append calls, queried for
// derived geometry (bounding volumes, smooth normals), and handed to the
// codec package for persistence.
//
// Meshes perform no internal locking. A single mesh must not be mutated from
// multiple goroutines; concurrent reads are safe only while no writer is
// active.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
)

// triMesh is the implementation of the TriMesh interface.
type triMesh struct {
	vertices   []mgl32.Vec3
	normals    []mgl32.Vec3
	colorsRGB  []common.Color
	colorsRGBA []common.ColorA
	texCoords  []mgl32.Vec2
	indices    []uint32

	normalConvention AttributeConvention
}

// TriMesh defines the interface for a 3D indexed triangle mesh.
// Vertices, per-vertex (or per-face) attributes, and triangle indices are
// appended independently; no validation happens at append time. Derived
// operations (normal recalculation, serialization) call Validate first and
// fail on inconsistent topology rather than reading out of range.
type TriMesh interface {
	// Clear resets every buffer to empty. Buffers are independent; the
	// normal convention tag is reset to per-vertex.
	Clear()

	// HasNormals reports whether the normals buffer is non-empty.
	//
	// Returns:
	//   - bool: true if at least one normal has been stored
	HasNormals() bool

	// HasColorsRGB reports whether the RGB color buffer is non-empty.
	//
	// Returns:
	//   - bool: true if at least one RGB color has been stored
	HasColorsRGB() bool

	// HasColorsRGBA reports whether the RGBA color buffer is non-empty.
	//
	// Returns:
	//   - bool: true if at least one RGBA color has been stored
	HasColorsRGBA() bool

	// HasTexCoords reports whether the texture coordinate buffer is non-empty.
	//
	// Returns:
	//   - bool: true if at least one texture coordinate has been stored
	HasTexCoords() bool

	// AppendVertex appends a single vertex position. The vertex's index is
	// NumVertices()-1 after the call and can be referenced by AppendTriangle
	// or AppendIndices.
	//
	// Parameters:
	//   - v: the vertex position to append
	AppendVertex(v mgl32.Vec3)

	// AppendVertices appends multiple vertex positions in order.
	//
	// Parameters:
	//   - verts: the vertex positions to append
	AppendVertices(verts ...mgl32.Vec3)

	// AppendNormal appends a single normal. Whether normals align with
	// vertices or faces is declared by SetNormalConvention, not inferred.
	//
	// Parameters:
	//   - n: the normal to append
	AppendNormal(n mgl32.Vec3)

	// AppendNormals appends multiple normals in order.
	//
	// Parameters:
	//   - normals: the normals to append
	AppendNormals(normals ...mgl32.Vec3)

	// AppendColorRGB appends a single RGB color.
	//
	// Parameters:
	//   - c: the color to append
	AppendColorRGB(c common.Color)

	// AppendColorsRGB appends multiple RGB colors in order.
	//
	// Parameters:
	//   - colors: the colors to append
	AppendColorsRGB(colors ...common.Color)

	// AppendColorRGBA appends a single RGBA color. The RGB and RGBA buffers
	// are independent; either or both may be populated.
	//
	// Parameters:
	//   - c: the color to append
	AppendColorRGBA(c common.ColorA)

	// AppendColorsRGBA appends multiple RGBA colors in order.
	//
	// Parameters:
	//   - colors: the colors to append
	AppendColorsRGBA(colors ...common.ColorA)

	// AppendTexCoord appends a single texture coordinate, conventionally one
	// per vertex.
	//
	// Parameters:
	//   - tc: the texture coordinate to append
	AppendTexCoord(tc mgl32.Vec2)

	// AppendTexCoords appends multiple texture coordinates in order.
	//
	// Parameters:
	//   - texCoords: the texture coordinates to append
	AppendTexCoords(texCoords ...mgl32.Vec2)

	// AppendTriangle appends the three vertex indices of one triangle, in
	// order. Indices are not bounds-checked here; Validate enforces the
	// range invariant before derived operations run.
	//
	// Parameters:
	//   - i0, i1, i2: the vertex indices of the triangle corners
	AppendTriangle(i0, i1, i2 uint32)

	// AppendIndices appends raw index values verbatim. The values are not
	// required to form complete triples at append time.
	//
	// Parameters:
	//   - indices: the index values to append
	AppendIndices(indices ...uint32)

	// NumVertices returns the number of stored vertex positions.
	//
	// Returns:
	//   - int: the vertex count
	NumVertices() int

	// NumIndices returns the number of stored index values.
	//
	// Returns:
	//   - int: the index count
	NumIndices() int

	// NumTriangles returns NumIndices()/3 using integer division; a trailing
	// incomplete triple is not counted.
	//
	// Returns:
	//   - int: the triangle count
	NumTriangles() int

	// TriangleVertices returns copies of the three vertex positions of
	// triangle idx. Both the triangle index and the three vertex indices it
	// references are range-checked.
	//
	// Parameters:
	//   - idx: the triangle index, in [0, NumTriangles())
	//
	// Returns:
	//   - a, b, c: the triangle's vertex positions
	//   - error: an out-of-range error if idx or any referenced vertex index is invalid
	TriangleVertices(idx int) (a, b, c mgl32.Vec3, err error)

	// Vertices returns the live vertex buffer. Mutating elements of the
	// returned slice mutates the mesh; use SetVertices to replace the buffer
	// wholesale.
	//
	// Returns:
	//   - []mgl32.Vec3: the backing vertex slice
	Vertices() []mgl32.Vec3

	// Normals returns the live normals buffer.
	//
	// Returns:
	//   - []mgl32.Vec3: the backing normals slice
	Normals() []mgl32.Vec3

	// ColorsRGB returns the live RGB color buffer.
	//
	// Returns:
	//   - []common.Color: the backing RGB color slice
	ColorsRGB() []common.Color

	// ColorsRGBA returns the live RGBA color buffer.
	//
	// Returns:
	//   - []common.ColorA: the backing RGBA color slice
	ColorsRGBA() []common.ColorA

	// TexCoords returns the live texture coordinate buffer.
	//
	// Returns:
	//   - []mgl32.Vec2: the backing texture coordinate slice
	TexCoords() []mgl32.Vec2

	// Indices returns the live index buffer. Triangle T occupies positions
	// [3T, 3T+2].
	//
	// Returns:
	//   - []uint32: the backing index slice
	Indices() []uint32

	// SetVertices replaces the vertex buffer wholesale.
	//
	// Parameters:
	//   - verts: the new vertex buffer (retained, not copied)
	SetVertices(verts []mgl32.Vec3)

	// SetNormals replaces the normals buffer wholesale.
	//
	// Parameters:
	//   - normals: the new normals buffer (retained, not copied)
	SetNormals(normals []mgl32.Vec3)

	// SetColorsRGB replaces the RGB color buffer wholesale.
	//
	// Parameters:
	//   - colors: the new RGB color buffer (retained, not copied)
	SetColorsRGB(colors []common.Color)

	// SetColorsRGBA replaces the RGBA color buffer wholesale.
	//
	// Parameters:
	//   - colors: the new RGBA color buffer (retained, not copied)
	SetColorsRGBA(colors []common.ColorA)

	// SetTexCoords replaces the texture coordinate buffer wholesale.
	//
	// Parameters:
	//   - texCoords: the new texture coordinate buffer (retained, not copied)
	SetTexCoords(texCoords []mgl32.Vec2)

	// SetIndices replaces the index buffer wholesale.
	//
	// Parameters:
	//   - indices: the new index buffer (retained, not copied)
	SetIndices(indices []uint32)

	// NormalConvention returns the declared alignment of the normals buffer.
	//
	// Returns:
	//   - AttributeConvention: per-vertex or per-face
	NormalConvention() AttributeConvention

	// SetNormalConvention declares the alignment of the normals buffer.
	// RecalculateNormals always resets it to per-vertex.
	//
	// Parameters:
	//   - c: the convention to declare
	SetNormalConvention(c AttributeConvention)

	// Validate checks the topology invariants deferred at append time: the
	// index buffer length must be a multiple of 3 and every index must be
	// < NumVertices(). Derived operations call this before reading geometry.
	//
	// Returns:
	//   - error: nil if the mesh is consistent, otherwise the violated invariant
	Validate() error

	// CalcBoundingBox computes the minimal axis-aligned box enclosing every
	// vertex. An empty mesh yields the common.EmptyBox3 sentinel.
	//
	// Returns:
	//   - common.Box3: the bounding box
	CalcBoundingBox() common.Box3

	// CalcBoundingBoxTransformed computes the bounding box of the vertices
	// as transformed by the given matrix (applied as a point transform with
	// w=1). The stored vertices are not mutated.
	//
	// Parameters:
	//   - transform: the affine transform to apply to each vertex
	//
	// Returns:
	//   - common.Box3: the bounding box of the transformed vertices
	CalcBoundingBoxTransformed(transform mgl32.Mat4) common.Box3

	// CalcBoundingSphere computes a bounding sphere centered on the bounding
	// box center with radius equal to the farthest vertex distance from it.
	// An empty mesh yields a zero sphere at the origin.
	//
	// Returns:
	//   - mgl32.Vec3: the sphere center
	//   - float32: the sphere radius
	CalcBoundingSphere() (mgl32.Vec3, float32)

	// RecalculateNormals discards the normals buffer and derives one smooth
	// unit normal per vertex from the triangle geometry. Vertices referenced
	// only by degenerate triangles (or not at all) receive the zero vector.
	// Fails with an out-of-range error if Validate fails, leaving the
	// existing normals untouched.
	//
	// Returns:
	//   - error: nil on success, otherwise the topology error
	RecalculateNormals() error
}

var _ TriMesh = &triMesh{}

// NewTriMesh creates a new empty TriMesh with the specified options applied.
//
// Parameters:
//   - options: a variadic list of TriMeshBuilderOption functions to configure the mesh
//
// Returns:
//   - TriMesh: a new instance of TriMesh configured with the provided options
func NewTriMesh(options ...TriMeshBuilderOption) TriMesh {
	m := &triMesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *triMesh) Clear() {
	m.vertices = nil
	m.normals = nil
	m.colorsRGB = nil
	m.colorsRGBA = nil
	m.texCoords = nil
	m.indices = nil
	m.normalConvention = ConventionPerVertex
}

func (m *triMesh) HasNormals() bool {
	return len(m.normals) > 0
}

func (m *triMesh) HasColorsRGB() bool {
	return len(m.colorsRGB) > 0
}

func (m *triMesh) HasColorsRGBA() bool {
	return len(m.colorsRGBA) > 0
}

func (m *triMesh) HasTexCoords() bool {
	return len(m.texCoords) > 0
}

func (m *triMesh) AppendVertex(v mgl32.Vec3) {
	m.vertices = append(m.vertices, v)
}

func (m *triMesh) AppendVertices(verts ...mgl32.Vec3) {
	m.vertices = append(m.vertices, verts...)
}

func (m *triMesh) AppendNormal(n mgl32.Vec3) {
	m.normals = append(m.normals, n)
}

func (m *triMesh) AppendNormals(normals ...mgl32.Vec3) {
	m.normals = append(m.normals, normals...)
}

func (m *triMesh) AppendColorRGB(c common.Color) {
	m.colorsRGB = append(m.colorsRGB, c)
}

func (m *triMesh) AppendColorsRGB(colors ...common.Color) {
	m.colorsRGB = append(m.colorsRGB, colors...)
}

func (m *triMesh) AppendColorRGBA(c common.ColorA) {
	m.colorsRGBA = append(m.colorsRGBA, c)
}

func (m *triMesh) AppendColorsRGBA(colors ...common.ColorA) {
	m.colorsRGBA = append(m.colorsRGBA, colors...)
}

func (m *triMesh) AppendTexCoord(tc mgl32.Vec2) {
	m.texCoords = append(m.texCoords, tc)
}

func (m *triMesh) AppendTexCoords(texCoords ...mgl32.Vec2) {
	m.texCoords = append(m.texCoords, texCoords...)
}

func (m *triMesh) AppendTriangle(i0, i1, i2 uint32) {
	m.indices = append(m.indices, i0, i1, i2)
}

func (m *triMesh) AppendIndices(indices ...uint32) {
	m.indices = append(m.indices, indices...)
}

func (m *triMesh) NumVertices() int {
	return len(m.vertices)
}

func (m *triMesh) NumIndices() int {
	return len(m.indices)
}

func (m *triMesh) NumTriangles() int {
	return len(m.indices) / 3
}

func (m *triMesh) TriangleVertices(idx int) (a, b, c mgl32.Vec3, err error) {
	if idx < 0 || idx >= m.NumTriangles() {
		err = fmt.Errorf("%w: triangle %d of %d", errTriangleOutOfRange, idx, m.NumTriangles())
		return
	}
	n := uint32(len(m.vertices))
	i0, i1, i2 := m.indices[3*idx], m.indices[3*idx+1], m.indices[3*idx+2]
	for _, i := range [3]uint32{i0, i1, i2} {
		if i >= n {
			err = fmt.Errorf("%w: index %d with %d vertices", errIndexOutOfRange, i, n)
			return
		}
	}
	return m.vertices[i0], m.vertices[i1], m.vertices[i2], nil
}

func (m *triMesh) Vertices() []mgl32.Vec3 {
	return m.vertices
}

func (m *triMesh) Normals() []mgl32.Vec3 {
	return m.normals
}

func (m *triMesh) ColorsRGB() []common.Color {
	return m.colorsRGB
}

func (m *triMesh) ColorsRGBA() []common.ColorA {
	return m.colorsRGBA
}

func (m *triMesh) TexCoords() []mgl32.Vec2 {
	return m.texCoords
}

func (m *triMesh) Indices() []uint32 {
	return m.indices
}

func (m *triMesh) SetVertices(verts []mgl32.Vec3) {
	m.vertices = verts
}

func (m *triMesh) SetNormals(normals []mgl32.Vec3) {
	m.normals = normals
}

func (m *triMesh) SetColorsRGB(colors []common.Color) {
	m.colorsRGB = colors
}

func (m *triMesh) SetColorsRGBA(colors []common.ColorA) {
	m.colorsRGBA = colors
}

func (m *triMesh) SetTexCoords(texCoords []mgl32.Vec2) {
	m.texCoords = texCoords
}

func (m *triMesh) SetIndices(indices []uint32) {
	m.indices = indices
}

func (m *triMesh) NormalConvention() AttributeConvention {
	return m.normalConvention
}

func (m *triMesh) SetNormalConvention(c AttributeConvention) {
	m.normalConvention = c
}

func (m *triMesh) Validate() error {
	return validateIndices(m.indices, len(m.vertices))
}

// validateIndices enforces the invariants deferred at append time: complete
// triples and every index in range of the vertex buffer.
func validateIndices(indices []uint32, numVertices int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", errIndicesNotTriples, len(indices))
	}
	n := uint32(numVertices)
	for pos, i := range indices {
		if i >= n {
			return fmt.Errorf("%w: index %d at position %d with %d vertices", errIndexOutOfRange, i, pos, numVertices)
		}
	}
	return nil
}
