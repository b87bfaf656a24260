// Package config loads the optional per-repository presubmit settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up at the repository root.
const FileName = ".gatecheck.yaml"

// Config holds repository-level defaults. CLI flags take precedence over
// everything here.
type Config struct {
	// Program is the default program name when --program is not given.
	Program string `yaml:"program"`
	// Exclude lists extra path exclude expressions, appended to the CLI's.
	Exclude []string `yaml:"exclude"`
	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// Load reads the settings file from the repository root. A missing file is
// a clean zero-value Config; a malformed one is a configuration error,
// surfaced before any check runs.
func Load(root string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(root, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", FileName, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("config: color must be auto, always, or never, got %q", c.Color)
}
