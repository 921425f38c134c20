package texture

import (
	"github.com/cpp-toolbox/objbake/pkg/math"
)

// Sample returns the color of the texel nearest to (u, v), each channel
// normalized from [0,255] to [0,1]. Both coordinates wrap into [0,1) so the
// texture tiles; v=0 addresses the bottom pixel row of the image, per the
// OBJ texture-space convention. Nearest-neighbor only: no filtering, so a
// given (u, v) always maps to exactly one source pixel.
func (g *Grid) Sample(u, v float64) math.Vec3 {
	uv := math.Vec2{X: u, Y: v}.Wrap()

	px := int(uv.X * float64(g.Width))
	if px >= g.Width {
		px = g.Width - 1
	}
	py := int((1 - uv.Y) * float64(g.Height))
	if py >= g.Height {
		py = g.Height - 1
	}

	r, gr, b := g.At(px, py)
	return math.Vec3{X: float64(r) / 255, Y: float64(gr) / 255, Z: float64(b) / 255}
}
