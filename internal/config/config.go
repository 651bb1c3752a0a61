// =============================================================================
// Dealership Inventory - Configuration
// =============================================================================
//
// Application configuration is a single YAML file. Unset fields fall back to
// defaults, so a missing config file is not an error for the common case of
// running in the current directory.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// OutputDir is where generated files land when --out is a bare name.
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir receives input files after a successful merge.
	ArchiveDir string `yaml:"archive_dir"`

	// OutputNameFormat names generated files. Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - YYYYMMDD_HHMMSS at generation time
	OutputNameFormat string `yaml:"output_name_format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML config at path. A missing file yields the defaults;
// a present but malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "inventory_{timestamp}_{uuid}"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}
