// Package config handles run configuration from a YAML file and environment
// variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked for in the working directory when no --config
// flag is given.
const DefaultFilename = "parselit.yml"

// Environment variable overrides, applied after the file is read.
const (
	EnvOutputDir = "PARSELIT_OUTPUT_DIR"
	EnvLogLevel  = "PARSELIT_LOG_LEVEL"
)

// Config holds the tool's settings.
type Config struct {
	OutputDir string `yaml:"output_dir"` // Directory for exported CSV tables
	LogLevel  string `yaml:"log_level"`  // logrus level name: debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: "output",
		LogLevel:  "info",
	}
}

// Load reads the configuration file at path. An empty path means the default
// filename, which may be absent; an explicitly named file must exist.
// Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if cfg.OutputDir == "" {
		return Config{}, fmt.Errorf("output_dir must not be empty")
	}
	return cfg, nil
}
