// Package config loads the optional defaults file for duscan.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds scan defaults that command-line flags may override.
type Config struct {
	// Threads is the default worker count (0 = 3 x num cores).
	Threads int `yaml:"threads"`
	// SizeFormat is "decimal" or "binary".
	SizeFormat string `yaml:"size_format"`
	// Total prints the total size section by default.
	Total bool `yaml:"total"`
	// Verbose prints every filesystem error by default.
	Verbose bool `yaml:"verbose"`
	// ApparentSize reports logical sizes instead of disk usage by default.
	ApparentSize bool `yaml:"apparent_size"`
}

// DefaultPath returns the conventional location of the defaults file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "duscan", "config.yaml")
}

// Load reads the defaults file at path, falling back to DefaultPath when path
// is empty. A missing file is not an error: the zero-value config is returned
// so flags alone drive the run.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	var cfg Config

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.SizeFormat {
	case "", "decimal", "binary":
	default:
		return fmt.Errorf("size_format must be %q or %q, got %q", "decimal", "binary", c.SizeFormat)
	}

	if c.Threads < 0 {
		return errors.New("threads cannot be negative")
	}

	return nil
}
