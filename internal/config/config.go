// Package config loads the YAML view configuration shared by the CLI and
// both interactive shells.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotetra/pkg/shade"
	"github.com/philipparndt/gotetra/pkg/viewer"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config describes how a frame is sized, oriented and decorated. Angles are
// in degrees, matching the slider ranges of the shells.
type Config struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	HeadingDeg float64  `yaml:"heading"`
	PitchDeg   float64  `yaml:"pitch"`
	Background [3]uint8 `yaml:"background,flow"`
	Wireframe  bool     `yaml:"wireframe"`
	WireColor  [3]uint8 `yaml:"wire_color,flow"`
	Scale      int      `yaml:"scale"`
}

// Default returns a 400x400 straight-on view on black
func Default() Config {
	return Config{
		Width:     400,
		Height:    400,
		WireColor: [3]uint8{255, 255, 255},
		Scale:     1,
	}
}

// Load reads the config at path. A missing file yields Default(); fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as needed
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks sizes and the pitch range
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: size %dx%d must be at least 1x1", ErrInvalid, c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be at least 1", ErrInvalid, c.Scale)
	}
	if math.IsNaN(c.PitchDeg) || c.PitchDeg < -90 || c.PitchDeg > 90 {
		return fmt.Errorf("%w: pitch %v outside [-90, 90]", ErrInvalid, c.PitchDeg)
	}
	if math.IsNaN(c.HeadingDeg) || math.IsInf(c.HeadingDeg, 0) {
		return fmt.Errorf("%w: heading %v is not finite", ErrInvalid, c.HeadingDeg)
	}
	return nil
}

// HeadingRadians returns the heading in radians
func (c Config) HeadingRadians() float64 {
	return c.HeadingDeg * math.Pi / 180
}

// PitchRadians returns the pitch in radians
func (c Config) PitchRadians() float64 {
	return c.PitchDeg * math.Pi / 180
}

// RenderOptions converts the decoration settings for the renderer
func (c Config) RenderOptions() viewer.Options {
	return viewer.Options{
		Background: shade.FromArray(c.Background).ToRGBA(),
		Wireframe:  c.Wireframe,
		WireColor:  shade.FromArray(c.WireColor).ToRGBA(),
	}
}

// BackgroundColor returns the background as a display color
func (c Config) BackgroundColor() color.RGBA {
	return shade.FromArray(c.Background).ToRGBA()
}
