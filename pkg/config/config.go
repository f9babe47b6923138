// Package config loads the editor's tunable layout and generator parameters.
//
// Configuration is read from a TOML file. Every field has a default matching
// the editor's built-in behavior, so a missing file or a partial file is
// valid:
//
//	[layout]
//	center_x = 200.0
//	center_y = 200.0
//	radius   = 150.0
//
//	[generate]
//	spacing          = 50.0
//	width            = 400.0
//	height           = 400.0
//	edge_probability = 0.5
//	seed             = 0
//
// The default location follows the XDG convention:
// $XDG_CONFIG_HOME/grapheditor/config.toml, falling back to
// ~/.config/grapheditor/config.toml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/grapheditor/pkg/errors"
)

// AppName is used for the configuration directory.
const AppName = "grapheditor"

// Defaults for the circular layout and generators.
const (
	DefaultCenterX         = 200.0
	DefaultCenterY         = 200.0
	DefaultRadius          = 150.0
	DefaultSpacing         = 50.0
	DefaultWidth           = 400.0
	DefaultHeight          = 400.0
	DefaultEdgeProbability = 0.5
)

// Layout configures align_graph.
type Layout struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Radius  float64 `toml:"radius"`
}

// Generate configures the complete and random graph generators.
type Generate struct {
	Spacing         float64 `toml:"spacing"`          // diagonal step of complete-graph nodes
	Width           float64 `toml:"width"`            // random canvas width
	Height          float64 `toml:"height"`           // random canvas height
	EdgeProbability float64 `toml:"edge_probability"` // chance of each random edge
	Seed            uint64  `toml:"seed"`             // 0 = seeded from the OS
}

// Config is the full configuration file.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Generate Generate `toml:"generate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			CenterX: DefaultCenterX,
			CenterY: DefaultCenterY,
			Radius:  DefaultRadius,
		},
		Generate: Generate{
			Spacing:         DefaultSpacing,
			Width:           DefaultWidth,
			Height:          DefaultHeight,
			EdgeProbability: DefaultEdgeProbability,
		},
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	checks := []error{
		errors.ValidateFinite("layout.center_x", c.Layout.CenterX),
		errors.ValidateFinite("layout.center_y", c.Layout.CenterY),
		errors.ValidatePositive("layout.radius", c.Layout.Radius),
		errors.ValidateFinite("generate.spacing", c.Generate.Spacing),
		errors.ValidatePositive("generate.width", c.Generate.Width),
		errors.ValidatePositive("generate.height", c.Generate.Height),
		errors.ValidateProbability("generate.edge_probability", c.Generate.EdgeProbability),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration at path. A missing file yields the defaults.
// An empty path means DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultPath returns the config file location using the XDG standard.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}
