package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxaline/trimesh-go/mesh"
)

// decodeOBJ parses the line-oriented text format. Each line's leading token
// selects the record kind; lines with any other leading token (comments,
// usemtl, object/group/smoothing directives, ...) are skipped without error.
// That tolerance is deliberate and covers only unrecognized tokens: a line
// that does claim to be a v/vn/vt/f record must parse fully or the whole
// decode fails with the offending line number.
func (c *codec) decodeOBJ(r io.Reader) (mesh.TriMesh, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		texCoords []mgl32.Vec2
		indices   []uint32
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNum, err)
			}
			normals = append(normals, n)
		case "vt":
			tc, err := parseFloats2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNum, err)
			}
			texCoords = append(texCoords, tc)
		case "f":
			tris, err := parseFace(fields[1:], len(positions), len(texCoords), len(normals))
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNum, err)
			}
			indices = append(indices, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh data: %w", err)
	}

	return mesh.NewTriMesh(
		mesh.WithVertices(positions),
		mesh.WithNormals(normals),
		mesh.WithTexCoords(texCoords),
		mesh.WithIndices(indices),
	), nil
}

// parseFloats3 parses exactly three float fields.
func parseFloats3(fields []string) (mgl32.Vec3, error) {
	if len(fields) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", errMalformedRecord, len(fields))
	}
	var v mgl32.Vec3
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("%w: component %q is not a number", errMalformedRecord, f)
		}
		v[i] = float32(val)
	}
	return v, nil
}

// parseFloats2 parses exactly two float fields.
func parseFloats2(fields []string) (mgl32.Vec2, error) {
	if len(fields) != 2 {
		return mgl32.Vec2{}, fmt.Errorf("%w: want 2 components, got %d", errMalformedRecord, len(fields))
	}
	var v mgl32.Vec2
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("%w: component %q is not a number", errMalformedRecord, f)
		}
		v[i] = float32(val)
	}
	return v, nil
}

// parseFace parses one face record into zero-based triangle indices,
// fan-triangulating faces with more than three corners around the first one.
// Corner references take the forms v, v/vt, v//vn, and v/vt/vn; every present
// index is resolved (1-based, negative meaning relative to the current end of
// its buffer) and range-checked against the entries seen so far, so a face
// can never reference geometry the file has not yet declared.
func parseFace(corners []string, numPositions, numTexCoords, numNormals int) ([]uint32, error) {
	if len(corners) < 3 {
		return nil, fmt.Errorf("%w: want at least 3 corners, got %d", errMalformedRecord, len(corners))
	}

	positionIdx := make([]uint32, len(corners))
	for i, corner := range corners {
		parts := strings.Split(corner, "/")
		if len(parts) > 3 {
			return nil, fmt.Errorf("%w: corner %q has too many index fields", errMalformedRecord, corner)
		}

		pos, err := resolveIndex(parts[0], numPositions)
		if err != nil {
			return nil, fmt.Errorf("corner %q vertex: %w", corner, err)
		}
		positionIdx[i] = uint32(pos)

		if len(parts) > 1 && parts[1] != "" {
			if _, err := resolveIndex(parts[1], numTexCoords); err != nil {
				return nil, fmt.Errorf("corner %q texcoord: %w", corner, err)
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if _, err := resolveIndex(parts[2], numNormals); err != nil {
				return nil, fmt.Errorf("corner %q normal: %w", corner, err)
			}
		}
	}

	tris := make([]uint32, 0, 3*(len(corners)-2))
	for i := 1; i+1 < len(positionIdx); i++ {
		tris = append(tris, positionIdx[0], positionIdx[i], positionIdx[i+1])
	}
	return tris, nil
}

// resolveIndex converts a 1-based file index to a 0-based buffer index.
// Negative values are relative to the current end of the buffer (-1 is the
// most recently appended entry). Zero is not a valid OBJ index.
func resolveIndex(field string, bufLen int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not an integer", errMalformedRecord, field)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: index 0 (indices are 1-based)", errMalformedRecord)
	}

	idx := v - 1
	if v < 0 {
		idx = bufLen + v
	}
	if idx < 0 || idx >= bufLen {
		return 0, fmt.Errorf("%w: index %d with %d entries seen", errIndexUnresolved, v, bufLen)
	}
	return idx, nil
}
