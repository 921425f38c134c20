package main

import (
	"path/filepath"
	"strings"
)

// materialsPathFor derives the default material library path: the mesh path
// with its extension replaced by .mtl.
func materialsPathFor(meshPath string) string {
	ext := filepath.Ext(meshPath)
	return strings.TrimSuffix(meshPath, ext) + ".mtl"
}

// outputPathFor derives the default output path: the mesh path with _baked
// inserted before the extension.
func outputPathFor(meshPath string) string {
	ext := filepath.Ext(meshPath)
	return strings.TrimSuffix(meshPath, ext) + "_baked" + ext
}
