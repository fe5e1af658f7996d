package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/voxaline/trimesh-go/mesh"
)

// encodeOBJ writes v/vn/vt records in buffer order followed by face records
// with 1-based indices. The corner format (i, i/i, i//i, i/i/i) is chosen by
// which attribute buffers fully cover the vertex buffer; the internal model is
// single-indexed so every corner reuses its position index for all three
// slots, and a slot is only emitted when that reuse cannot dangle past the
// records written above. Shorter buffers keep their records but drop out of
// the corner references, as do per-face-tagged normals. The color buffers have
// no OBJ representation and are carried by the DAT format only.
func (c *codec) encodeOBJ(m mesh.TriMesh, w io.Writer) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("mesh failed validation: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices() {
		c.writeRecord(bw, "v", v[:])
	}
	for _, n := range m.Normals() {
		c.writeRecord(bw, "vn", n[:])
	}
	for _, tc := range m.TexCoords() {
		c.writeRecord(bw, "vt", tc[:])
	}

	writeTexIdx := m.HasTexCoords() && len(m.TexCoords()) == m.NumVertices()
	writeNormalIdx := m.HasNormals() &&
		m.NormalConvention() == mesh.ConventionPerVertex &&
		len(m.Normals()) == m.NumVertices()
	indices := m.Indices()
	for i := 0; i+2 < len(indices); i += 3 {
		bw.WriteString("f")
		for _, idx := range indices[i : i+3] {
			bw.WriteByte(' ')
			c.writeCorner(bw, idx+1, writeTexIdx, writeNormalIdx)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write mesh data: %w", err)
	}
	return nil
}

// writeCorner writes one face corner reference, repeating the single
// internal index in whichever v/vt/vn slots are enabled.
func (c *codec) writeCorner(bw *bufio.Writer, idx uint32, hasTex, hasNorm bool) {
	s := strconv.FormatUint(uint64(idx), 10)
	bw.WriteString(s)
	switch {
	case hasTex && hasNorm:
		bw.WriteByte('/')
		bw.WriteString(s)
		bw.WriteByte('/')
		bw.WriteString(s)
	case hasTex:
		bw.WriteByte('/')
		bw.WriteString(s)
	case hasNorm:
		bw.WriteString("//")
		bw.WriteString(s)
	}
}

// writeRecord writes one token followed by float components.
func (c *codec) writeRecord(bw *bufio.Writer, token string, components []float32) {
	bw.WriteString(token)
	for _, f := range components {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(float64(f), 'g', c.objPrecision, 32))
	}
	bw.WriteByte('\n')
}
