// Package config loads the solver configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc2025 configuration.
type Config struct {
	// InputDir is the directory holding day-NN.txt input files.
	InputDir string `yaml:"input_dir"`

	// Day08 tunes the Playground clustering solver.
	Day08 Day08Config `yaml:"day08"`
}

// Day08Config configures the Day 8 greedy connector.
type Day08Config struct {
	// Connections is the part-1 budget of successful connections to make
	// before reading off circuit sizes.
	Connections int `yaml:"connections"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir: "inputs",
		Day08:    Day08Config{Connections: 1000},
	}
}

// Load reads the YAML config at path, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.InputDir == "" {
		cfg.InputDir = Default().InputDir
	}
	if cfg.Day08.Connections <= 0 {
		cfg.Day08.Connections = Default().Day08.Connections
	}
	return cfg, nil
}
