package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
	flagMaterials = flag.String("materials", "", "Path to the material library (default: mesh path with .mtl extension)")
	flagOut       = flag.String("out", "", "Output mesh path (default: mesh path with _baked suffix)")
	flagSolid     = flag.Bool("solid", false, "Bake one averaged color per face instead of per vertex")
	flagForce     = flag.Bool("force", false, "Overwrite the output file without asking")
	flagMaxTex    = flag.Int("max-texture-size", 0, "Downscale textures above this size before sampling (0 = off)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// MaterialsPath returns the explicit material library path, or "".
func MaterialsPath() string {
	return *flagMaterials
}

// OutputPath returns the explicit output path, or "".
func OutputPath() string {
	return *flagOut
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagSolid {
		cfg.Bake.SolidFaceColor = true
	}
	if *flagForce {
		cfg.Bake.Overwrite = true
	}
	if *flagMaxTex > 0 {
		cfg.Bake.MaxTextureSize = *flagMaxTex
	}
}
