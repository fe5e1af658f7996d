package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/voxaline/trimesh-go/mesh"
)

// encodeDAT writes the fixed-size header followed by the six buffers, tightly
// packed little-endian. Every buffer round-trips bit-for-bit through
// decodeDAT, including the normal convention tag carried in the header.
func (c *codec) encodeDAT(m mesh.TriMesh, w io.Writer) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("mesh failed validation: %w", err)
	}

	header := datHeader{
		Magic:            datMagic,
		Version:          datVersion,
		NormalConvention: uint32(m.NormalConvention()),
		NumVertices:      uint32(m.NumVertices()),
		NumNormals:       uint32(len(m.Normals())),
		NumColorsRGB:     uint32(len(m.ColorsRGB())),
		NumColorsRGBA:    uint32(len(m.ColorsRGBA())),
		NumTexCoords:     uint32(len(m.TexCoords())),
		NumIndices:       uint32(m.NumIndices()),
	}

	bw := bufio.NewWriter(w)
	sections := []any{
		header,
		m.Vertices(),
		m.Normals(),
		m.ColorsRGB(),
		m.ColorsRGBA(),
		m.TexCoords(),
		m.Indices(),
	}
	for _, section := range sections {
		if err := binary.Write(bw, binary.LittleEndian, section); err != nil {
			return fmt.Errorf("failed to write mesh data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write mesh data: %w", err)
	}
	return nil
}
