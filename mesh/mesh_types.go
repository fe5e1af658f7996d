package mesh

import "errors"

// Common errors returned by mesh queries and derived-geometry operations.
var (
	errTriangleOutOfRange = errors.New("triangle index out of range")
	errIndexOutOfRange    = errors.New("vertex index out of range")
	errIndicesNotTriples  = errors.New("index buffer length is not a multiple of 3")
)

// AttributeConvention declares how an attribute buffer aligns with the mesh
// topology: one entry per vertex, or one entry per triangle face. The
// container never infers the convention from buffer lengths; callers tag it
// explicitly.
type AttributeConvention int

const (
	// ConventionPerVertex aligns the attribute buffer with the vertex buffer.
	ConventionPerVertex AttributeConvention = iota

	// ConventionPerFace aligns the attribute buffer with the triangle count.
	ConventionPerFace
)

// String returns the human-readable name of the convention.
//
// Returns:
//   - string: "per-vertex", "per-face", or "unknown"
func (c AttributeConvention) String() string {
	switch c {
	case ConventionPerVertex:
		return "per-vertex"
	case ConventionPerFace:
		return "per-face"
	default:
		return "unknown"
	}
}
