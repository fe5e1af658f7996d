package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/common"
	"github.com/voxaline/trimesh-go/mesh"
)

// decodeDAT reads the header, rejects unknown magic or version before
// trusting any payload, then reads the six buffers and validates the
// index/vertex relationship so a corrupted file cannot produce a mesh with
// out-of-range topology.
func (c *codec) decodeDAT(r io.Reader) (mesh.TriMesh, error) {
	var header datHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read DAT header: %w", err)
	}

	if header.Magic != datMagic {
		return nil, fmt.Errorf("%w: 0x%08X", errBadMagic, header.Magic)
	}
	if header.Version != datVersion {
		return nil, fmt.Errorf("%w: version %d, this codec reads version %d", errUnsupportedVersion, header.Version, datVersion)
	}

	vertices := make([]mgl32.Vec3, header.NumVertices)
	normals := make([]mgl32.Vec3, header.NumNormals)
	colorsRGB := make([]common.Color, header.NumColorsRGB)
	colorsRGBA := make([]common.ColorA, header.NumColorsRGBA)
	texCoords := make([]mgl32.Vec2, header.NumTexCoords)
	indices := make([]uint32, header.NumIndices)

	sections := []any{vertices, normals, colorsRGB, colorsRGBA, texCoords, indices}
	for _, section := range sections {
		if err := binary.Read(r, binary.LittleEndian, section); err != nil {
			return nil, fmt.Errorf("failed to read mesh data: %w", err)
		}
	}

	m := mesh.NewTriMesh(
		mesh.WithVertices(vertices),
		mesh.WithNormals(normals),
		mesh.WithColorsRGB(colorsRGB),
		mesh.WithColorsRGBA(colorsRGBA),
		mesh.WithTexCoords(texCoords),
		mesh.WithIndices(indices),
		mesh.WithNormalConvention(mesh.AttributeConvention(header.NormalConvention)),
	)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errInconsistentMesh, err)
	}
	return m, nil
}
