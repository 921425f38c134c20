package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/cpp-toolbox/objbake/pkg/math"
)

// testGrid returns a 2x2 texture with distinct corner colors:
// top-left red, top-right green, bottom-left blue, bottom-right gray 51.
func testGrid() *Grid {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{51, 51, 51, 255})
	return FromImage(img)
}

func TestSampleVerticalFlip(t *testing.T) {
	g := testGrid()

	// v near 1 addresses the top row, v near 0 the bottom row
	if got := g.Sample(0.25, 0.9); got != (math.Vec3{X: 1}) {
		t.Errorf("Sample(0.25, 0.9) = %v, want top-left red", got)
	}
	if got := g.Sample(0.25, 0.1); got != (math.Vec3{Z: 1}) {
		t.Errorf("Sample(0.25, 0.1) = %v, want bottom-left blue", got)
	}
	if got := g.Sample(0.75, 0.9); got != (math.Vec3{Y: 1}) {
		t.Errorf("Sample(0.75, 0.9) = %v, want top-right green", got)
	}
}

func TestSampleWrap(t *testing.T) {
	g := testGrid()

	want := g.Sample(0.25, 0.75)
	got := g.Sample(1.25, -0.25)
	if got != want {
		t.Errorf("Sample(1.25, -0.25) = %v, want Sample(0.25, 0.75) = %v", got, want)
	}

	// far outside the nominal range
	if got := g.Sample(-3.75, 4.75); got != want {
		t.Errorf("Sample(-3.75, 4.75) = %v, want %v", got, want)
	}
}

func TestSampleNormalization(t *testing.T) {
	g := testGrid()

	c := g.Sample(0.75, 0.1) // bottom-right, channel value 51
	want := 51.0 / 255.0
	for _, ch := range []float64{c.X, c.Y, c.Z} {
		if ch < want-1e-9 || ch > want+1e-9 {
			t.Errorf("channel = %v, want %v", ch, want)
		}
	}
}

func TestSampleEdgeClamp(t *testing.T) {
	g := testGrid()

	// u, v just below 1 must stay inside the grid
	if got := g.Sample(0.999999, 0.999999); got != (math.Vec3{Y: 1}) {
		t.Errorf("Sample near (1,1) = %v, want top-right green", got)
	}
	// exactly 1 wraps to 0
	if got := g.Sample(1, 1); got != (math.Vec3{Z: 1}) {
		t.Errorf("Sample(1, 1) = %v, want bottom-left blue (wrapped)", got)
	}
}
