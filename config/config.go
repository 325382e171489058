// Package config loads the optional deadflow configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/arxeiss/deadflow/lint"
)

// FileName is the configuration file looked up in the scanned root.
const FileName = ".deadflow.yaml"

// Config represents the linter configuration.
type Config struct {
	Marker      string   `yaml:"marker"`
	Extensions  []string `yaml:"extensions"`
	Exclude     []string `yaml:"exclude"`
	Concurrency int      `yaml:"concurrency"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Marker:     lint.DefaultMarker,
		Extensions: []string{".js"},
		Exclude:    []string{"__mocks__", "__tests__", "node_modules"},
	}
}

// Load loads configuration from the specified file path. Keys missing from
// the file keep their default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	return config, nil
}

// LoadFromRoot loads FileName from root if it exists, defaults otherwise.
func LoadFromRoot(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Marker == "" {
		return ErrMarkerEmpty
	}
	if len(c.Extensions) == 0 {
		return ErrExtensionsEmpty
	}
	for _, entries := range [][]string{c.Extensions, c.Exclude} {
		for _, e := range entries {
			if e == "" {
				return ErrEmptyEntry
			}
		}
	}
	if c.Concurrency < 0 {
		return ErrNegativeConcurrent
	}
	return nil
}

// Workers returns the number of files linted in parallel.
func (c *Config) Workers() int {
	if c.Concurrency == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Concurrency
}
