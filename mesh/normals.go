package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func (m *triMesh) RecalculateNormals() error {
	if err := m.Validate(); err != nil {
		return err
	}

	// Accumulate un-normalized face normals so each triangle's contribution
	// is weighted by its area. A degenerate triangle contributes the zero
	// vector and drops out of the sum.
	accum := make([]mgl32.Vec3, len(m.vertices))
	for i := 0; i+2 < len(m.indices); i += 3 {
		i0, i1, i2 := m.indices[i], m.indices[i+1], m.indices[i+2]
		v0, v1, v2 := m.vertices[i0], m.vertices[i1], m.vertices[i2]
		faceNormal := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(faceNormal)
		accum[i1] = accum[i1].Add(faceNormal)
		accum[i2] = accum[i2].Add(faceNormal)
	}

	for i := range accum {
		length := math32.Sqrt(accum[i].Dot(accum[i]))
		if length == 0 {
			// Vertex is unreferenced or touched only by degenerate faces;
			// the zero vector is the documented default rather than a NaN
			// from normalizing zero.
			continue
		}
		accum[i] = accum[i].Mul(1 / length)
	}

	m.normals = accum
	m.normalConvention = ConventionPerVertex
	return nil
}
