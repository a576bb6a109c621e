// Package config loads run settings for the voronoi command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/voronoi/internal/render"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level structure of a voronoi YAML file.
type Config struct {
	// DataDir is where input files are looked up.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives the final image and the debug_<input> snapshot directory.
	OutputDir string `yaml:"output_dir"`
	// Format is the image encoding: png, bmp or tiff.
	Format string `yaml:"format"`
	// Scale is the pixel size of one grid cell.
	Scale int `yaml:"scale"`
	// Workers sizes the jump-flood pool; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// PaletteSeed fixes the color jitter; 0 picks a random seed.
	PaletteSeed int64 `yaml:"palette_seed"`
	// Logging configures the stderr logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		DataDir:   "data",
		OutputDir: "output",
		Format:    string(render.PNG),
		Scale:     render.DefaultScale,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format %q (allowed: png, bmp, tiff)", ErrInvalid, c.Format)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalid, c.Scale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (allowed: debug, info, warn, error)", ErrInvalid, c.Logging.Level)
	}
	return nil
}
