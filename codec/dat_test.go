package codec

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxaline/trimesh-go/common"
	"github.com/voxaline/trimesh-go/mesh"
)

func fullTestMesh() mesh.TriMesh {
	return mesh.NewTriMesh(
		mesh.WithVertices([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 1}}),
		mesh.WithNormals([]mgl32.Vec3{{0, 0, 1}, {0, 1, 0}}),
		mesh.WithColorsRGB([]common.Color{{R: 1}, {G: 0.5, B: 0.25}}),
		mesh.WithColorsRGBA([]common.ColorA{{R: 0.1, G: 0.2, B: 0.3, A: 0.4}}),
		mesh.WithTexCoords([]mgl32.Vec2{{0, 0}, {1, 1}}),
		mesh.WithIndices([]uint32{0, 1, 2, 0, 2, 3}),
		mesh.WithNormalConvention(mesh.ConventionPerFace),
	)
}

func TestDATRoundTrip(t *testing.T) {
	m := fullTestMesh()
	c := NewCodec()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(m, &buf, FormatDAT))
	first := append([]byte(nil), buf.Bytes()...)

	got, err := c.Decode(&buf, FormatDAT)
	require.NoError(t, err)

	assert.Equal(t, m.Vertices(), got.Vertices())
	assert.Equal(t, m.Normals(), got.Normals())
	assert.Equal(t, m.ColorsRGB(), got.ColorsRGB())
	assert.Equal(t, m.ColorsRGBA(), got.ColorsRGBA())
	assert.Equal(t, m.TexCoords(), got.TexCoords())
	assert.Equal(t, m.Indices(), got.Indices())
	assert.Equal(t, mesh.ConventionPerFace, got.NormalConvention())

	// Bit-for-bit fidelity: re-encoding the decoded mesh reproduces the
	// exact byte stream.
	var second bytes.Buffer
	require.NoError(t, c.Encode(got, &second, FormatDAT))
	assert.Equal(t, first, second.Bytes())
}

func TestDecodeDATBadMagic(t *testing.T) {
	header := datHeader{Magic: 0xDEADBEEF, Version: datVersion}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))

	m, err := NewCodec().Decode(&buf, FormatDAT)
	assert.ErrorIs(t, err, errBadMagic)
	assert.Nil(t, m)
}

func TestDecodeDATUnsupportedVersion(t *testing.T) {
	header := datHeader{Magic: datMagic, Version: datVersion + 1}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))

	m, err := NewCodec().Decode(&buf, FormatDAT)
	assert.ErrorIs(t, err, errUnsupportedVersion)
	assert.Nil(t, m)
}

func TestDecodeDATTruncated(t *testing.T) {
	header := datHeader{Magic: datMagic, Version: datVersion, NumVertices: 10}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))

	m, err := NewCodec().Decode(&buf, FormatDAT)
	require.Error(t, err)
	assert.Nil(t, m)
}

func TestDecodeDATEmptyInput(t *testing.T) {
	m, err := NewCodec().Decode(bytes.NewReader(nil), FormatDAT)
	require.Error(t, err)
	assert.Nil(t, m)
}

func TestDecodeDATInconsistentIndices(t *testing.T) {
	// A file whose index values point past its own vertex buffer must be
	// rejected rather than producing a mesh with dangling topology.
	header := datHeader{Magic: datMagic, Version: datVersion, NumVertices: 1, NumIndices: 3}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []mgl32.Vec3{{0, 0, 0}}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint32{0, 1, 2}))

	m, err := NewCodec().Decode(&buf, FormatDAT)
	assert.ErrorIs(t, err, errInconsistentMesh)
	assert.Nil(t, m)
}

func TestEncodeDATInvalidMesh(t *testing.T) {
	m := mesh.NewTriMesh(
		mesh.WithVertices([]mgl32.Vec3{{0, 0, 0}}),
		mesh.WithIndices([]uint32{0, 5, 0}),
	)

	var buf bytes.Buffer
	err := NewCodec().Encode(m, &buf, FormatDAT)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.dat")

	m := fullTestMesh()
	c := NewCodec()
	require.NoError(t, c.EncodeFile(m, path))

	got, err := c.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Vertices(), got.Vertices())
	assert.Equal(t, m.Indices(), got.Indices())
}

func TestDecodeFileUnknownExtension(t *testing.T) {
	_, err := NewCodec().DecodeFile("mesh.ply")
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewCodec(WithWorkers(2))

	paths := make([]string, 3)
	for i := range paths {
		m := mesh.NewTriMesh(
			mesh.WithVertices([]mgl32.Vec3{{float32(i), 0, 0}, {1, 0, 0}, {0, 1, 0}}),
			mesh.WithIndices([]uint32{0, 1, 2}),
		)
		paths[i] = filepath.Join(dir, "mesh"+string(rune('a'+i))+".dat")
		require.NoError(t, c.EncodeFile(m, paths[i]))
	}

	meshes, err := c.DecodeFiles(paths)
	require.NoError(t, err)
	require.Len(t, meshes, 3)
	for i, m := range meshes {
		// Results keep input order regardless of completion order.
		assert.Equal(t, mgl32.Vec3{float32(i), 0, 0}, m.Vertices()[0])
	}
}

func TestDecodeFilesPropagatesError(t *testing.T) {
	dir := t.TempDir()
	c := NewCodec()

	good := filepath.Join(dir, "good.dat")
	require.NoError(t, c.EncodeFile(mesh.NewTriMesh(
		mesh.WithVertices([]mgl32.Vec3{{0, 0, 0}}),
	), good))

	missing := filepath.Join(dir, "missing.dat")
	meshes, err := c.DecodeFiles([]string{good, missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.dat")
	assert.Nil(t, meshes)
	// The underlying I/O failure is propagated, not reinterpreted.
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeFilesEmpty(t *testing.T) {
	meshes, err := NewCodec().DecodeFiles(nil)
	require.NoError(t, err)
	assert.Nil(t, meshes)
}
