package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// decoders for the raster formats commonly referenced by MTL files
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/HugoSmits86/nativewebp"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Load decodes the image at path into a Grid. A maxSize > 0 downscales
// textures whose longest side exceeds it before sampling.
func Load(path string, maxSize int) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingResourceError{Path: path}
		}
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil && strings.EqualFold(filepath.Ext(path), ".webp") {
		img, err = nativewebp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	if maxSize > 0 {
		b := img.Bounds()
		if b.Dx() > maxSize || b.Dy() > maxSize {
			// nearest keeps downscaled sampling reproducible
			img = resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.NearestNeighbor)
		}
	}

	return FromImage(img), nil
}

// FromImage converts a decoded image into a Grid.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	pix := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(pix, pix.Bounds(), img, b.Min, xdraw.Src)
	return &Grid{Width: b.Dx(), Height: b.Dy(), pix: pix}
}
