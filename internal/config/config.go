// Package config handles tool configuration loading and management.
package config

// Config holds all objbake settings.
type Config struct {
	Bake    BakeConfig    `yaml:"bake"`
	Logging LoggingConfig `yaml:"logging"`
}

// BakeConfig holds baking behavior settings.
type BakeConfig struct {
	// SolidFaceColor averages each face's corner samples into one color
	// per face instead of sampling per vertex.
	SolidFaceColor bool `yaml:"solid_face_color"`
	// MaxTextureSize downscales textures whose longest side exceeds it
	// before sampling. 0 disables downscaling.
	MaxTextureSize int `yaml:"max_texture_size"`
	// Overwrite replaces an existing output file without prompting.
	Overwrite bool `yaml:"overwrite"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bake: BakeConfig{
			SolidFaceColor: false,
			MaxTextureSize: 0,
			Overwrite:      false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
