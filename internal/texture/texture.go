// Package texture loads diffuse texture images and samples them for
// vertex-color baking.
package texture

import "image"

// MissingResourceError reports a referenced file that does not exist on
// disk. A material naming a texture that is not there means a broken asset
// pipeline, so callers treat this as fatal.
type MissingResourceError struct {
	Path string
}

func (e *MissingResourceError) Error() string {
	return "missing resource: " + e.Path
}

// Grid is a decoded texture held as a fixed 2D grid of RGB samples.
// Alpha is ignored throughout.
type Grid struct {
	Width  int
	Height int
	pix    *image.NRGBA
}

// At returns the 8-bit RGB channels of the pixel at (x, y).
// (0, 0) is the top-left pixel of the image.
func (g *Grid) At(x, y int) (r, gr, b uint8) {
	off := g.pix.PixOffset(x, y)
	return g.pix.Pix[off], g.pix.Pix[off+1], g.pix.Pix[off+2]
}
