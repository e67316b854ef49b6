package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-docx2pdf/internal/fileutil"
	"github.com/alnah/go-docx2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds persistent CLI configuration.
type Config struct {
	Fonts FontsConfig `yaml:"fonts"`
	Media MediaConfig `yaml:"media"`
}

// FontsConfig defines font resolution options.
type FontsConfig struct {
	Dir string `yaml:"dir"` // Directory searched for {name}.ttf (empty = built-in face only)
}

// MediaConfig defines media extraction options.
type MediaConfig struct {
	OutputDir string `yaml:"outputDir"` // Where extracted images are written (empty = current directory)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// configSearchPaths returns the locations probed when --config is not set,
// in priority order.
func configSearchPaths() []string {
	paths := []string{"docx2pdf.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "go-docx2pdf", "config.yaml"))
	}
	return paths
}

// loadConfig reads the config at path, or probes the search paths when
// path is empty. A missing config is not an error unless explicitly
// requested: defaults apply.
func loadConfig(path string) (*Config, error) {
	if path != "" {
		return readConfig(path)
	}

	for _, p := range configSearchPaths() {
		if fileutil.FileExists(p) {
			return readConfig(p)
		}
	}
	return DefaultConfig(), nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}
