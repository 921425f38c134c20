// OBJ mesh writer: replays a mesh's shadow line sequence, substituting
// color-augmented vertex lines where a baked color exists.
package formats

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteOBJ re-emits the mesh text. Position lines whose index appears in
// colors are rewritten as "v x y z r g b"; every other shadow line is
// emitted exactly as read. With an empty color map the output is
// byte-identical to the parsed input.
func WriteOBJ(mesh *Mesh, colors map[int]Color) []byte {
	parts := make([]string, len(mesh.Lines))
	for i, rec := range mesh.Lines {
		if rec.Kind == LinePosition {
			if c, ok := colors[rec.Index]; ok {
				parts[i] = positionLine(mesh.Positions[rec.Index], c, rec.Text)
				continue
			}
		}
		parts[i] = rec.Text
	}
	return []byte(strings.Join(parts, "\n"))
}

// WriteOBJFile writes the re-emitted mesh to path.
func WriteOBJFile(path string, mesh *Mesh, colors map[int]Color) error {
	if err := os.WriteFile(path, WriteOBJ(mesh, colors), 0644); err != nil {
		return fmt.Errorf("writing OBJ file: %w", err)
	}
	return nil
}

// positionLine renders a color-augmented vertex line. Coordinates use the
// shortest exact representation; colors carry 6 significant digits, enough
// to reconstruct the 8-bit source channel. A CR is kept if the original
// line ended with one.
func positionLine(p Position, c Color, original string) string {
	line := "v " + coord(p.X) + " " + coord(p.Y) + " " + coord(p.Z) +
		" " + channel(c.R) + " " + channel(c.G) + " " + channel(c.B)
	if strings.HasSuffix(original, "\r") {
		line += "\r"
	}
	return line
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func channel(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
