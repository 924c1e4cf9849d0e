// Package config loads stopcontagion's optional TOML configuration file.
//
// Configuration comes from three layers, weakest first: built-in defaults,
// the config file, then command-line flags. The file is looked up at
// $STOPCONTAGION_CONFIG, then ./stopcontagion.toml, then
// $XDG_CONFIG_HOME/stopcontagion/config.toml. A missing file is not an
// error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cszach/Network-Inoculator/pkg/influence"
	"github.com/cszach/Network-Inoculator/pkg/layout"
)

// EnvConfigPath overrides the config file lookup when set.
const EnvConfigPath = "STOPCONTAGION_CONFIG"

// Config holds every tunable that has a file-level default.
type Config struct {
	// Radius is the ball radius for collective influence scoring.
	Radius int `toml:"radius"`

	Layout LayoutConfig `toml:"layout"`
}

// LayoutConfig mirrors the force simulation parameters.
type LayoutConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Iterations int     `toml:"iterations"`
	Seed       uint64  `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Radius: influence.DefaultRadius,
		Layout: LayoutConfig{
			Width:      layout.DefaultWidth,
			Height:     layout.DefaultHeight,
			Iterations: layout.DefaultIterations,
			Seed:       layout.DefaultSeed,
		},
	}
}

// Load reads configuration from the first file found in the lookup order,
// layered over [Default]. It returns the defaults when no file exists, and
// an error only for a file that exists but cannot be parsed or validated.
func Load() (Config, error) {
	path := findFile()
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path, layered over [Default].
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SimConfig converts the layout section into simulation parameters.
func (c Config) SimConfig() layout.Config {
	return layout.Config{
		Width:      c.Layout.Width,
		Height:     c.Layout.Height,
		Iterations: c.Layout.Iterations,
		Seed:       c.Layout.Seed,
	}
}

func (c Config) validate() error {
	if c.Radius < 1 {
		return fmt.Errorf("radius %d must be at least 1", c.Radius)
	}
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		return fmt.Errorf("layout frame %gx%g is not positive", c.Layout.Width, c.Layout.Height)
	}
	if c.Layout.Iterations < 0 {
		return fmt.Errorf("layout iterations %d is negative", c.Layout.Iterations)
	}
	return nil
}

func findFile() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	if _, err := os.Stat("stopcontagion.toml"); err == nil {
		return "stopcontagion.toml"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "stopcontagion", "config.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
