// Package config loads optional YAML configuration for the textsearch CLI.
//
// Library callers configure searches through options directly; the config
// file only provides defaults for the command-line tool.
package config

import (
	"errors"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults.
type Config struct {
	Workers       int  `yaml:"workers"`        // Worker pool size; defaults to the CPU count
	IgnoreCase    bool `yaml:"ignore_case"`    // Case-insensitive matching
	ContextBefore int  `yaml:"context_before"` // Snippet bytes before the primary match
	ContextAfter  int  `yaml:"context_after"`  // Snippet bytes after the primary match
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}

// Load reads a config from the given path. If the file does not exist,
// returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ContextBefore < 0 {
		cfg.ContextBefore = 0
	}
	if cfg.ContextAfter < 0 {
		cfg.ContextAfter = 0
	}
}
