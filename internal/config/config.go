// Package config loads snowballer settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/phyzicist/snowballer/internal/snowball"
)

// Formats lists the supported report output formats.
//
//nolint:gochecknoglobals // Config constant
var Formats = []string{"table", "json"}

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScanConfig holds scan settings.
type ScanConfig struct {
	Root       string   `mapstructure:"root"`
	Months     int      `mapstructure:"months"`
	MaxPathLen int      `mapstructure:"max_path"`
	Excludes   []string `mapstructure:"excludes"`
}

// OutputConfig holds report and image output settings.
type OutputConfig struct {
	Image  string `mapstructure:"image"`
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultRoot returns the user's documents directory per the host
// platform's conventions, falling back to the working directory when
// the home directory cannot be resolved.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, "Documents")
}

// Load reads configuration from the specified file path. When the path
// is empty, well-known locations are searched and built-in defaults are
// used if no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("scan.root", "")
	v.SetDefault("scan.months", snowball.DefaultMonths)
	v.SetDefault("scan.max_path", snowball.DefaultMaxPathLen)
	v.SetDefault("scan.excludes", []string{})
	v.SetDefault("output.image", "snowball.png")
	v.SetDefault("output.format", "table")
	v.SetDefault("logging.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("snowballer")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/snowballer")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK if using defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Scan.Months < 1 {
		return fmt.Errorf("scan.months must be at least 1")
	}

	if c.Scan.MaxPathLen < 1 {
		return fmt.Errorf("scan.max_path must be at least 1")
	}

	if c.Output.Image == "" {
		return fmt.Errorf("output.image is required")
	}

	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q: must be one of %v", c.Output.Format, Formats)
	}

	return nil
}
