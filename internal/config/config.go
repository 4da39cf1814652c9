// Package config loads tool settings from a luna.toml file. All settings
// have defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the complete tool configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
}

// OutputConfig controls how trees and diagnostics are rendered.
type OutputConfig struct {
	// Format selects the tree rendering: "tree" or "json".
	Format string `toml:"format"`
	// Color controls diagnostic styling: "auto", "always" or "never".
	Color string `toml:"color"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Extensions lists the file suffixes that trigger a re-check.
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover finds and loads a config file from the usual locations: an
// explicit path if given, otherwise ./luna.toml, otherwise
// ~/.config/luna/luna.toml. When nothing is found the defaults apply.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	candidates := []string{
		"./luna.toml",
		filepath.Join(os.Getenv("HOME"), ".config/luna/luna.toml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".luna"}
	}
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "tree", "json":
	default:
		return fmt.Errorf("invalid output format %q: want tree or json", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: want auto, always or never", c.Output.Color)
	}
	return nil
}
