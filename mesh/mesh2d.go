package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
)

// triMesh2D is the implementation of the TriMesh2D interface.
type triMesh2D struct {
	vertices   []mgl32.Vec2
	colorsRGB  []common.Color
	colorsRGBA []common.ColorA
	texCoords  []mgl32.Vec2
	indices    []uint32
}

// TriMesh2D defines the interface for a 2D indexed triangle mesh. It mirrors
// TriMesh with 2-component vertices and no normals.
type TriMesh2D interface {
	// Clear resets every buffer to empty.
	Clear()

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

	// AppendVertex appends a single vertex position.
	//
	// Parameters:
	//   - v: the vertex position to append
	AppendVertex(v mgl32.Vec2)

	// AppendVertices appends multiple vertex positions in order.
	//
	// Parameters:
	//   - verts: the vertex positions to append
	AppendVertices(verts ...mgl32.Vec2)

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

	// AppendColorRGBA appends a single RGBA color.
	//
	// Parameters:
	//   - c: the color to append
	AppendColorRGBA(c common.ColorA)

	// AppendColorsRGBA appends multiple RGBA colors in order.
	//
	// Parameters:
	//   - colors: the colors to append
	AppendColorsRGBA(colors ...common.ColorA)

	// AppendTexCoord appends a single texture coordinate.
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
	// order, without bounds-checking.
	//
	// Parameters:
	//   - i0, i1, i2: the vertex indices of the triangle corners
	AppendTriangle(i0, i1, i2 uint32)

	// AppendIndices appends raw index values verbatim.
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

	// NumTriangles returns NumIndices()/3 using integer division.
	//
	// Returns:
	//   - int: the triangle count
	NumTriangles() int

	// TriangleVertices returns copies of the three vertex positions of
	// triangle idx, range-checking both the triangle index and the vertex
	// indices it references.
	//
	// Parameters:
	//   - idx: the triangle index, in [0, NumTriangles())
	//
	// Returns:
	//   - a, b, c: the triangle's vertex positions
	//   - error: an out-of-range error if idx or any referenced vertex index is invalid
	TriangleVertices(idx int) (a, b, c mgl32.Vec2, err error)

	// Vertices returns the live vertex buffer.
	//
	// Returns:
	//   - []mgl32.Vec2: the backing vertex slice
	Vertices() []mgl32.Vec2

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

	// Indices returns the live index buffer.
	//
	// Returns:
	//   - []uint32: the backing index slice
	Indices() []uint32

	// SetVertices replaces the vertex buffer wholesale.
	//
	// Parameters:
	//   - verts: the new vertex buffer (retained, not copied)
	SetVertices(verts []mgl32.Vec2)

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

	// Validate checks that the index buffer forms complete triples and that
	// every index is < NumVertices().
	//
	// Returns:
	//   - error: nil if the mesh is consistent, otherwise the violated invariant
	Validate() error

	// CalcBoundingRect computes the minimal axis-aligned rectangle enclosing
	// every vertex. An empty mesh yields the common.EmptyRect sentinel.
	//
	// Returns:
	//   - common.Rect: the bounding rectangle
	CalcBoundingRect() common.Rect
}

var _ TriMesh2D = &triMesh2D{}

// NewTriMesh2D creates a new empty TriMesh2D with the specified options applied.
//
// Parameters:
//   - options: a variadic list of TriMesh2DBuilderOption functions to configure the mesh
//
// Returns:
//   - TriMesh2D: a new instance of TriMesh2D configured with the provided options
func NewTriMesh2D(options ...TriMesh2DBuilderOption) TriMesh2D {
	m := &triMesh2D{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *triMesh2D) Clear() {
	m.vertices = nil
	m.colorsRGB = nil
	m.colorsRGBA = nil
	m.texCoords = nil
	m.indices = nil
}

func (m *triMesh2D) HasColorsRGB() bool {
	return len(m.colorsRGB) > 0
}

func (m *triMesh2D) HasColorsRGBA() bool {
	return len(m.colorsRGBA) > 0
}

func (m *triMesh2D) HasTexCoords() bool {
	return len(m.texCoords) > 0
}

func (m *triMesh2D) AppendVertex(v mgl32.Vec2) {
	m.vertices = append(m.vertices, v)
}

func (m *triMesh2D) AppendVertices(verts ...mgl32.Vec2) {
	m.vertices = append(m.vertices, verts...)
}

func (m *triMesh2D) AppendColorRGB(c common.Color) {
	m.colorsRGB = append(m.colorsRGB, c)
}

func (m *triMesh2D) AppendColorsRGB(colors ...common.Color) {
	m.colorsRGB = append(m.colorsRGB, colors...)
}

func (m *triMesh2D) AppendColorRGBA(c common.ColorA) {
	m.colorsRGBA = append(m.colorsRGBA, c)
}

func (m *triMesh2D) AppendColorsRGBA(colors ...common.ColorA) {
	m.colorsRGBA = append(m.colorsRGBA, colors...)
}

func (m *triMesh2D) AppendTexCoord(tc mgl32.Vec2) {
	m.texCoords = append(m.texCoords, tc)
}

func (m *triMesh2D) AppendTexCoords(texCoords ...mgl32.Vec2) {
	m.texCoords = append(m.texCoords, texCoords...)
}

func (m *triMesh2D) AppendTriangle(i0, i1, i2 uint32) {
	m.indices = append(m.indices, i0, i1, i2)
}

func (m *triMesh2D) AppendIndices(indices ...uint32) {
	m.indices = append(m.indices, indices...)
}

func (m *triMesh2D) NumVertices() int {
	return len(m.vertices)
}

func (m *triMesh2D) NumIndices() int {
	return len(m.indices)
}

func (m *triMesh2D) NumTriangles() int {
	return len(m.indices) / 3
}

func (m *triMesh2D) TriangleVertices(idx int) (a, b, c mgl32.Vec2, err error) {
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

func (m *triMesh2D) Vertices() []mgl32.Vec2 {
	return m.vertices
}

func (m *triMesh2D) ColorsRGB() []common.Color {
	return m.colorsRGB
}

func (m *triMesh2D) ColorsRGBA() []common.ColorA {
	return m.colorsRGBA
}

func (m *triMesh2D) TexCoords() []mgl32.Vec2 {
	return m.texCoords
}

func (m *triMesh2D) Indices() []uint32 {
	return m.indices
}

func (m *triMesh2D) SetVertices(verts []mgl32.Vec2) {
	m.vertices = verts
}

func (m *triMesh2D) SetColorsRGB(colors []common.Color) {
	m.colorsRGB = colors
}

func (m *triMesh2D) SetColorsRGBA(colors []common.ColorA) {
	m.colorsRGBA = colors
}

func (m *triMesh2D) SetTexCoords(texCoords []mgl32.Vec2) {
	m.texCoords = texCoords
}

func (m *triMesh2D) SetIndices(indices []uint32) {
	m.indices = indices
}

func (m *triMesh2D) Validate() error {
	return validateIndices(m.indices, len(m.vertices))
}
