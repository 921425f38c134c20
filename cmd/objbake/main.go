// objbake bakes diffuse-texture colors into the vertices of a Wavefront OBJ
// mesh so that downstream viewers can approximate textured appearance
// without sampling images at render time.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpp-toolbox/objbake/internal/bake"
	"github.com/cpp-toolbox/objbake/internal/config"
	"github.com/cpp-toolbox/objbake/internal/logger"
	"github.com/cpp-toolbox/objbake/internal/texture"
	"github.com/cpp-toolbox/objbake/pkg/formats"
)

func main() {
	config.ParseFlags()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
	defer logger.Sync()

	meshPath := flag.Arg(0)
	mtlPath := config.MaterialsPath()
	if mtlPath == "" {
		mtlPath = materialsPathFor(meshPath)
	}
	outPath := config.OutputPath()
	if outPath == "" {
		outPath = outputPathFor(meshPath)
	}

	if _, err := os.Stat(mtlPath); errors.Is(err, fs.ErrNotExist) {
		fatal(&texture.MissingResourceError{Path: mtlPath})
	}

	mesh, err := formats.ParseOBJFile(meshPath)
	if err != nil {
		fatal(err)
	}
	logger.Sugar.Infow("parsed mesh", "path", meshPath,
		"positions", len(mesh.Positions),
		"texcoords", len(mesh.TexCoords),
		"faces", len(mesh.Faces))

	lib, err := formats.ParseMTLFile(mtlPath)
	if err != nil {
		fatal(err)
	}
	logger.Sugar.Infow("parsed material library", "path", mtlPath,
		"materials", len(lib.Materials))

	engine := bake.New(lib, filepath.Dir(mtlPath), bake.Options{
		SolidFaceColor: cfg.Bake.SolidFaceColor,
		MaxTextureSize: cfg.Bake.MaxTextureSize,
	})
	res, err := engine.Bake(mesh)
	if err != nil {
		fatal(err)
	}
	logger.Sugar.Infow("baked vertex colors",
		"pairs", len(res.Colors),
		"faces_baked", res.Stats.FacesBaked,
		"faces_no_material", res.Stats.FacesNoMaterial,
		"faces_no_diffuse", res.Stats.FacesNoDiffuse)

	if !cfg.Bake.Overwrite && fileExists(outPath) && !confirmOverwrite(outPath) {
		fmt.Fprintln(os.Stderr, "Aborted: output file left untouched.")
		os.Exit(1)
	}

	if err := formats.WriteOBJFile(outPath, mesh, bake.PositionColors(res.Colors)); err != nil {
		fatal(err)
	}
	logger.Sugar.Infow("wrote baked mesh", "path", outPath)
}

func printUsage() {
	fmt.Println(`objbake - bake diffuse-texture colors into OBJ vertex data

Usage:
  objbake [options] <mesh.obj>

Options:
  -materials <path>    Material library (default: mesh path with .mtl extension)
  -out <path>          Output mesh (default: mesh path with _baked suffix)
  -solid               One averaged color per face instead of per vertex
  -force               Overwrite the output file without asking
  -max-texture-size N  Downscale textures above N pixels before sampling
  -config <path>       Config file (default: ./objbake.yaml)
  -debug               Enable debug logging
  -log-file <path>     Also write logs to this file

Examples:
  objbake model.obj
  objbake -materials shared.mtl -out model_vc.obj model.obj
  objbake -solid -force model.obj`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirmOverwrite asks on stdin whether an existing output file may be
// replaced. Anything but an explicit yes declines.
func confirmOverwrite(path string) bool {
	fmt.Fprintf(os.Stderr, "Output %s exists. Overwrite? [y/N] ", path)
	reply, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	reply = strings.ToLower(strings.TrimSpace(reply))
	return reply == "y" || reply == "yes"
}
