// OBJ (Wavefront mesh) format parser.
package formats

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NoIndex marks an absent index in a FaceVertex.
const NoIndex = -1

// Position is a vertex position.
type Position struct {
	X, Y, Z float64
}

// TexCoord is a texture coordinate. V follows the OBJ convention: 0 is the
// bottom of the texture.
type TexCoord struct {
	U, V float64
}

// Normal is a vertex normal.
type Normal struct {
	X, Y, Z float64
}

// FaceVertex holds 0-based indices into the mesh arrays.
// TexCoord and Normal are NoIndex when the face token omitted them.
type FaceVertex struct {
	Position int
	TexCoord int
	Normal   int
}

// Face is one polygon (3 or more vertices) together with the material
// that was active when it was declared.
type Face struct {
	Vertices []FaceVertex
	Material string // usemtl name in effect, "" if none declared yet
	Text     string // original source line
}

// LineKind tags one entry of a mesh's shadow line sequence.
type LineKind int

const (
	LineVerbatim LineKind = iota // emitted exactly as read
	LinePosition                 // a "v " line, regenerable from Positions
	LineTexCoord                 // a "vt " line
	LineNormal                   // a "vn " line
)

// String returns a human-readable kind name.
func (k LineKind) String() string {
	switch k {
	case LineVerbatim:
		return "verbatim"
	case LinePosition:
		return "position"
	case LineTexCoord:
		return "texcoord"
	case LineNormal:
		return "normal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// LineRecord is one shadow line. Text always holds the original line so the
// sequence, replayed in order, reconstructs the input byte-for-byte.
type LineRecord struct {
	Kind  LineKind
	Index int    // index into the typed array for non-verbatim kinds
	Text  string // original line text, without the trailing newline
}

// Mesh is a parsed OBJ file: typed geometry arrays, the face list, and the
// shadow line sequence used for lossless re-emission.
type Mesh struct {
	Positions []Position
	TexCoords []TexCoord
	Normals   []Normal
	Faces     []Face
	Lines     []LineRecord
}

// ParseOBJFile reads and parses an OBJ file.
func ParseOBJFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// ParseOBJ parses OBJ mesh text.
//
// Recognized directives are v/vt/vn (exact lowercase prefix, one space),
// usemtl and f (leading whitespace and any case tolerated). Every other
// line, including comments and directives like o/g/s/mtllib, passes through
// to the shadow sequence untouched. The current usemtl name is threaded
// through the scan and stamped onto each face.
func ParseOBJ(data []byte) (*Mesh, error) {
	mesh := &Mesh{}
	material := ""

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(line, "v "):
			toks := strings.Fields(line[2:])
			// 6 tokens is the vertex-color extension; the trailing
			// triple is not geometry and is dropped on re-parse.
			if len(toks) != 3 && len(toks) != 6 {
				return nil, parseErrorf(lineNo, raw, "vertex needs 3 coordinates, got %d tokens", len(toks))
			}
			vals, err := parseFloats(toks, lineNo, raw)
			if err != nil {
				return nil, err
			}
			mesh.Positions = append(mesh.Positions, Position{vals[0], vals[1], vals[2]})
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LinePosition, Index: len(mesh.Positions) - 1, Text: raw})

		case strings.HasPrefix(line, "vt "):
			toks := strings.Fields(line[3:])
			// an optional third value (w) is tolerated and ignored
			if len(toks) != 2 && len(toks) != 3 {
				return nil, parseErrorf(lineNo, raw, "texcoord needs 2 coordinates, got %d tokens", len(toks))
			}
			vals, err := parseFloats(toks, lineNo, raw)
			if err != nil {
				return nil, err
			}
			mesh.TexCoords = append(mesh.TexCoords, TexCoord{vals[0], vals[1]})
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LineTexCoord, Index: len(mesh.TexCoords) - 1, Text: raw})

		case strings.HasPrefix(line, "vn "):
			toks := strings.Fields(line[3:])
			if len(toks) != 3 {
				return nil, parseErrorf(lineNo, raw, "normal needs 3 coordinates, got %d tokens", len(toks))
			}
			vals, err := parseFloats(toks, lineNo, raw)
			if err != nil {
				return nil, err
			}
			mesh.Normals = append(mesh.Normals, Normal{vals[0], vals[1], vals[2]})
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LineNormal, Index: len(mesh.Normals) - 1, Text: raw})

		case strings.HasPrefix(lower, "usemtl"):
			material = strings.TrimSpace(trimmed[len("usemtl"):])
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LineVerbatim, Text: raw})

		case strings.HasPrefix(lower, "f "):
			face, err := parseFace(trimmed, material, mesh, lineNo, raw)
			if err != nil {
				return nil, err
			}
			mesh.Faces = append(mesh.Faces, face)
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LineVerbatim, Text: raw})

		default:
			mesh.Lines = append(mesh.Lines, LineRecord{Kind: LineVerbatim, Text: raw})
		}
	}

	return mesh, nil
}

// parseFace parses an "f v[/vt][/vn] ..." line. Indices are 1-based in the
// file and must resolve against the arrays declared so far.
func parseFace(trimmed, material string, mesh *Mesh, lineNo int, raw string) (Face, error) {
	toks := strings.Fields(trimmed)[1:]
	if len(toks) < 3 {
		return Face{}, parseErrorf(lineNo, raw, "face needs at least 3 vertices, got %d", len(toks))
	}

	verts := make([]FaceVertex, 0, len(toks))
	for _, tok := range toks {
		parts := strings.Split(tok, "/")
		if len(parts) > 3 {
			return Face{}, parseErrorf(lineNo, raw, "bad face token %q", tok)
		}

		fv := FaceVertex{Position: NoIndex, TexCoord: NoIndex, Normal: NoIndex}

		if parts[0] == "" {
			return Face{}, parseErrorf(lineNo, raw, "face token %q has no position index", tok)
		}
		idx, err := parseIndex(parts[0], len(mesh.Positions), "position", lineNo, raw)
		if err != nil {
			return Face{}, err
		}
		fv.Position = idx

		if len(parts) > 1 && parts[1] != "" {
			idx, err := parseIndex(parts[1], len(mesh.TexCoords), "texcoord", lineNo, raw)
			if err != nil {
				return Face{}, err
			}
			fv.TexCoord = idx
		}
		if len(parts) > 2 && parts[2] != "" {
			idx, err := parseIndex(parts[2], len(mesh.Normals), "normal", lineNo, raw)
			if err != nil {
				return Face{}, err
			}
			fv.Normal = idx
		}

		verts = append(verts, fv)
	}

	return Face{Vertices: verts, Material: material, Text: raw}, nil
}

// parseIndex converts a 1-based absolute index token to a 0-based index,
// checking it against the number of elements declared so far. Relative
// (negative) indices are not supported.
func parseIndex(tok string, limit int, what string, lineNo int, raw string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrorf(lineNo, raw, "bad %s index %q", what, tok)
	}
	if n < 1 || n > limit {
		return 0, parseErrorf(lineNo, raw, "%s index %d out of range (%d declared)", what, n, limit)
	}
	return n - 1, nil
}

// parseFloats parses every token as a float64.
func parseFloats(toks []string, lineNo int, raw string) ([]float64, error) {
	vals := make([]float64, len(toks))
	for i, tok := range toks {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, parseErrorf(lineNo, raw, "bad numeric token %q", tok)
		}
		vals[i] = f
	}
	return vals, nil
}
