// Package bake resolves the material in effect at each face and samples its
// diffuse texture to produce per-vertex colors.
package bake

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cpp-toolbox/objbake/internal/texture"
	"github.com/cpp-toolbox/objbake/pkg/formats"
	"github.com/cpp-toolbox/objbake/pkg/math"
)

// Options control a bake run.
type Options struct {
	// SolidFaceColor averages the samples taken at a face's vertices and
	// assigns the average to every vertex of that face.
	SolidFaceColor bool

	// MaxTextureSize downscales textures whose longest side exceeds it
	// before sampling. 0 disables downscaling.
	MaxTextureSize int
}

// VertexKey identifies one (position, texcoord) pairing referenced by a
// face-vertex. Two face corners that share a position but carry different
// texcoords bake to separate keys.
type VertexKey struct {
	Position int
	TexCoord int
}

// Stats summarizes what a bake run did.
type Stats struct {
	FacesBaked      int // faces whose vertices received colors
	FacesNoMaterial int // empty or unresolved material name
	FacesNoDiffuse  int // material found but carries no diffuse map
}

// Result carries the baked colors plus run statistics.
type Result struct {
	Colors map[VertexKey]formats.Color
	Stats  Stats
}

// Engine bakes vertex colors for a single run and owns the texture cache:
// each distinct texture path is decoded at most once.
type Engine struct {
	lib   *formats.MaterialLibrary
	dir   string
	cache *texture.Cache
	opts  Options
}

// New creates an engine. Relative texture paths resolve against dir,
// conventionally the material library's directory.
func New(lib *formats.MaterialLibrary, dir string, opts Options) *Engine {
	return &Engine{
		lib:   lib,
		dir:   dir,
		cache: texture.NewCache(opts.MaxTextureSize),
		opts:  opts,
	}
}

// Bake samples the diffuse texture of each face's material at every
// face-vertex that carries a texcoord. Faces with no material, an unknown
// material, or a material without a diffuse map are skipped; a diffuse map
// whose file is missing aborts the run. Faces are processed in file order,
// and when two faces reach the same (position, texcoord) pair through
// different materials the later face's color wins.
func (e *Engine) Bake(mesh *formats.Mesh) (*Result, error) {
	res := &Result{Colors: make(map[VertexKey]formats.Color)}

	for _, face := range mesh.Faces {
		mat := e.lib.Materials[face.Material]
		if mat == nil {
			res.Stats.FacesNoMaterial++
			continue
		}
		if mat.DiffuseMap == "" {
			res.Stats.FacesNoDiffuse++
			continue
		}

		grid, err := e.cache.Get(e.resolvePath(mat.DiffuseMap))
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", mat.Name, err)
		}

		var baked int
		if e.opts.SolidFaceColor {
			baked = bakeSolid(mesh, face, grid, res.Colors)
		} else {
			baked = bakePerVertex(mesh, face, grid, res.Colors)
		}
		if baked > 0 {
			res.Stats.FacesBaked++
		}
	}

	return res, nil
}

// bakePerVertex samples the texture at each face-vertex's own texcoord.
func bakePerVertex(mesh *formats.Mesh, face formats.Face, grid *texture.Grid, colors map[VertexKey]formats.Color) int {
	baked := 0
	for _, fv := range face.Vertices {
		if fv.Position == formats.NoIndex || fv.TexCoord == formats.NoIndex {
			continue
		}
		uv := mesh.TexCoords[fv.TexCoord]
		c := grid.Sample(uv.U, uv.V)
		colors[VertexKey{fv.Position, fv.TexCoord}] = formats.Color{R: c.X, G: c.Y, B: c.Z}
		baked++
	}
	return baked
}

// bakeSolid samples every textured corner of the face, averages the
// samples, and assigns the average to each corner.
func bakeSolid(mesh *formats.Mesh, face formats.Face, grid *texture.Grid, colors map[VertexKey]formats.Color) int {
	var sum math.Vec3
	var keys []VertexKey
	for _, fv := range face.Vertices {
		if fv.Position == formats.NoIndex || fv.TexCoord == formats.NoIndex {
			continue
		}
		uv := mesh.TexCoords[fv.TexCoord]
		sum = sum.Add(grid.Sample(uv.U, uv.V))
		keys = append(keys, VertexKey{fv.Position, fv.TexCoord})
	}
	if len(keys) == 0 {
		return 0
	}

	avg := sum.Scale(1 / float64(len(keys)))
	c := formats.Color{R: avg.X, G: avg.Y, B: avg.Z}
	for _, k := range keys {
		colors[k] = c
	}
	return len(keys)
}

// PositionColors reduces baked colors to one color per position index for
// the mesh writer. A position referenced through several texcoords gets the
// average of its pair colors; keys are visited in sorted order so the
// floating-point sum never depends on map iteration order.
func PositionColors(colors map[VertexKey]formats.Color) map[int]formats.Color {
	keys := make([]VertexKey, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Position != keys[j].Position {
			return keys[i].Position < keys[j].Position
		}
		return keys[i].TexCoord < keys[j].TexCoord
	})

	sums := make(map[int]math.Vec3)
	counts := make(map[int]int)
	for _, k := range keys {
		c := colors[k]
		sums[k.Position] = sums[k.Position].Add(math.Vec3{X: c.R, Y: c.G, Z: c.B})
		counts[k.Position]++
	}

	out := make(map[int]formats.Color, len(sums))
	for pos, sum := range sums {
		avg := sum.Scale(1 / float64(counts[pos]))
		out[pos] = formats.Color{R: avg.X, G: avg.Y, B: avg.Z}
	}
	return out
}

// resolvePath turns an MTL texture reference into a filesystem path.
func (e *Engine) resolvePath(path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) || e.dir == "" {
		return path
	}
	return filepath.Join(e.dir, path)
}
