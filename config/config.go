// Package config loads the gocalc command settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go.creack.net/gocalc/executor"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the command settings.
type Config struct {
	AngleMode   string `yaml:"angle_mode"`
	GroupDigits bool   `yaml:"group_digits"`
	Color       string `yaml:"color"`
	Prompt      string `yaml:"prompt"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		AngleMode: executor.Radians.String(),
		Color:     ColorAuto,
		Prompt:    "> ",
	}
}

// DefaultPath returns <user config dir>/gocalc/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "gocalc", "config.yaml"), nil
}

// Load reads the config at path over the defaults. An empty path loads
// the default location, which is allowed to be missing.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// Mode returns the configured angle mode.
func (c Config) Mode() (executor.AngleMode, error) {
	return executor.ParseAngleMode(c.AngleMode)
}
