// MTL (Wavefront material library) format parser and writer.
package formats

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Material is one material definition. Reflectance, scalar and map fields
// are nil/empty when the library never set them. Directives the parser does
// not recognize land in Extra with their lower-cased key, so future MTL
// properties survive a parse/write cycle.
type Material struct {
	Name string

	Ambient  *Color // Ka
	Diffuse  *Color // Kd
	Specular *Color // Ks

	Shininess *float64 // Ns
	Alpha     *float64 // d
	Illum     *int     // illum model

	AmbientMap   string // map_Ka
	DiffuseMap   string // map_Kd
	SpecularMap  string // map_Ks
	HighlightMap string // map_Ns
	AlphaMap     string // map_d
	BumpMap      string // map_bump or bump

	Extra map[string]string // unrecognized directives, key lower-cased
}

// MaterialLibrary is a parsed MTL file: materials by name plus the verbatim
// shadow lines for lossless re-emission.
type MaterialLibrary struct {
	Materials map[string]*Material
	Order     []string // material names in declaration order
	Lines     []string // every input line, unmodified
}

// ParseMTLFile reads and parses an MTL file.
func ParseMTLFile(path string) (*MaterialLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MTL file: %w", err)
	}
	return ParseMTL(data)
}

// ParseMTL parses MTL material library text. Directive keys are matched
// case-insensitively. Directives seen before the first newmtl have no
// material to attach to and are skipped (their lines still round-trip).
func ParseMTL(data []byte) (*MaterialLibrary, error) {
	lib := &MaterialLibrary{Materials: make(map[string]*Material)}
	var current *Material

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		lib.Lines = append(lib.Lines, raw)

		trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key := strings.Fields(trimmed)[0]
		value := strings.TrimSpace(trimmed[len(key):])
		key = strings.ToLower(key)
		if value == "" {
			return nil, parseErrorf(lineNo, raw, "directive %q missing value", key)
		}

		if key == "newmtl" {
			current = &Material{Name: value, Extra: make(map[string]string)}
			lib.Materials[value] = current
			lib.Order = append(lib.Order, value)
			continue
		}
		if current == nil {
			continue
		}

		switch key {
		case "ka":
			c, err := parseColor(key, value, lineNo, raw)
			if err != nil {
				return nil, err
			}
			current.Ambient = c
		case "kd":
			c, err := parseColor(key, value, lineNo, raw)
			if err != nil {
				return nil, err
			}
			current.Diffuse = c
		case "ks":
			c, err := parseColor(key, value, lineNo, raw)
			if err != nil {
				return nil, err
			}
			current.Specular = c
		case "ns":
			f, err := parseScalar(key, value, lineNo, raw)
			if err != nil {
				return nil, err
			}
			current.Shininess = f
		case "d":
			f, err := parseScalar(key, value, lineNo, raw)
			if err != nil {
				return nil, err
			}
			current.Alpha = f
		case "illum":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, parseErrorf(lineNo, raw, "directive %q: bad integer %q", key, value)
			}
			current.Illum = &n
		case "map_ka":
			current.AmbientMap = value
		case "map_kd":
			current.DiffuseMap = value
		case "map_ks":
			current.SpecularMap = value
		case "map_ns":
			current.HighlightMap = value
		case "map_d":
			current.AlphaMap = value
		case "map_bump", "bump":
			current.BumpMap = value
		default:
			current.Extra[key] = value
		}
	}

	return lib, nil
}

// WriteMTL re-emits the library text byte-identically.
func WriteMTL(lib *MaterialLibrary) []byte {
	return []byte(strings.Join(lib.Lines, "\n"))
}

// parseColor parses a 3-float reflectance value.
func parseColor(key, value string, lineNo int, raw string) (*Color, error) {
	toks := strings.Fields(value)
	if len(toks) != 3 {
		return nil, parseErrorf(lineNo, raw, "directive %q needs 3 components, got %d", key, len(toks))
	}
	vals := make([]float64, 3)
	for i, tok := range toks {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, parseErrorf(lineNo, raw, "directive %q: bad numeric token %q", key, tok)
		}
		vals[i] = f
	}
	return &Color{vals[0], vals[1], vals[2]}, nil
}

// parseScalar parses a single float value.
func parseScalar(key, value string, lineNo int, raw string) (*float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, parseErrorf(lineNo, raw, "directive %q: bad numeric token %q", key, value)
	}
	return &f, nil
}
