package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownExtension is returned for configuration files that are neither TOML nor YAML
var ErrUnknownExtension = errors.New("unknown config file extension")

// Config contains the settings of one render
type Config struct {
	Scene           string  `toml:"scene" yaml:"scene"`
	Width           int     `toml:"width" yaml:"width"`
	AspectRatio     float64 `toml:"aspect_ratio" yaml:"aspect_ratio"`
	SamplesPerPixel int     `toml:"samples_per_pixel" yaml:"samples_per_pixel"`
	MaxDepth        int     `toml:"max_depth" yaml:"max_depth"`
	Passes          int     `toml:"passes" yaml:"passes"`
	Workers         int     `toml:"workers" yaml:"workers"` // 0 = one per CPU
	TileSize        int     `toml:"tile_size" yaml:"tile_size"`
	Seed            uint64  `toml:"seed" yaml:"seed"`
	Output          string  `toml:"output" yaml:"output"`
	LogLevel        string  `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file or flag overrides a setting
func Default() Config {
	return Config{
		Scene:           "one-sphere",
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Passes:          4,
		Workers:         0,
		TileSize:        64,
		Seed:            42,
		Output:          "output/render.png",
		LogLevel:        "info",
	}
}

// Height returns the image height implied by the width and aspect ratio, at least 1
func (c Config) Height() int {
	if c.AspectRatio <= 0 {
		return max(c.Width, 1)
	}
	return max(int(float64(c.Width)/c.AspectRatio), 1)
}

// Level parses LogLevel into a slog level
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Scene == "" {
		errs = append(errs, errors.New("scene must be set"))
	}
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.AspectRatio <= 0 {
		errs = append(errs, fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio))
	}
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", c.MaxDepth))
	}
	if c.Passes <= 0 {
		errs = append(errs, fmt.Errorf("passes must be positive, got %d", c.Passes))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must be set"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load reads the file at path on top of Default and validates the result.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext into cfg. Keys missing from
// data keep the values already in cfg; unknown keys are an error.
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("decoding toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnknownExtension)
	}
	return nil
}

// Encode writes cfg in the format named by ext
func Encode(cfg Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(cfg)
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownExtension)
	}
}
