// Package config loads the optional YAML configuration of the
// generator. Every default reproduces the built-in fixed behavior, so
// running without a config file and running with an empty one are
// identical.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"capnp-generator/internal/common"
	"capnp-generator/internal/cxx"
	"capnp-generator/internal/emit"
)

// Config is the generator configuration.
type Config struct {
	// Version of the config format.
	Version string `yaml:"version"`
	// Output is the schema filename to write.
	Output string `yaml:"output"`
	// SchemaID overrides the fixed schema identifier.
	SchemaID string `yaml:"schema_id"`
	// Extensions lists header extensions to scan (with leading dot).
	Extensions []string `yaml:"extensions"`
	// Exclude lists directory basenames skipped during the walk.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)

	return cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in default values for optional fields and
// normalizes extensions to lowercase dotted form.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Output == "" {
		cfg.Output = emit.DefaultFilename
	}

	if cfg.SchemaID == "" {
		cfg.SchemaID = emit.SchemaID
	}

	if common.IsEmpty(cfg.Extensions) {
		cfg.Extensions = append([]string(nil), cxx.DefaultExtensions...)
	}

	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		cfg.Extensions[i] = ext
	}
}
