package codec

import "errors"

// Common errors returned by the codec.
var (
	errUnknownFormat      = errors.New("unknown mesh format")
	errMalformedRecord    = errors.New("malformed record")
	errIndexUnresolved    = errors.New("face index does not resolve to a previously-seen entry")
	errBadMagic           = errors.New("invalid DAT magic number")
	errUnsupportedVersion = errors.New("unsupported DAT version")
	errInconsistentMesh   = errors.New("decoded mesh has inconsistent buffers")
)

// Format identifies an on-disk mesh representation.
type Format int

const (
	// FormatOBJ is the line-oriented Wavefront-style text format.
	FormatOBJ Format = iota

	// FormatDAT is the compact little-endian binary format.
	FormatDAT
)

// String returns the conventional file extension name of the format.
//
// Returns:
//   - string: "obj", "dat", or "unknown"
func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatDAT:
		return "dat"
	default:
		return "unknown"
	}
}

// datMagic is the DAT header magic, the bytes "TMSH" read little-endian.
const datMagic uint32 = 0x48534D54

// datVersion is the only DAT layout revision this codec understands. Files
// claiming any other version are rejected rather than misread.
const datVersion uint32 = 1

// datHeader is the fixed-size little-endian header that opens every DAT file.
// The six buffer counts describe the tightly packed payload sections that
// follow, in this order: vertices, normals, RGB colors, RGBA colors, texture
// coordinates, indices.
type datHeader struct {
	Magic            uint32
	Version          uint32
	NormalConvention uint32
	NumVertices      uint32
	NumNormals       uint32
	NumColorsRGB     uint32
	NumColorsRGBA    uint32
	NumTexCoords     uint32
	NumIndices       uint32
}
