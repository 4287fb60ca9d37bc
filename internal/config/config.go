// Package config provides configuration management for styletree using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// A project declares its compilation units in .styletree.yml: each unit
// names a style tree source file, an output CSS path, and optional
// per-unit exclusion patterns. Cross-unit settings are the output format
// and the watch debounce interval. Values can be overridden with
// STYLETREE_-prefixed environment variables or flags.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/styletree/styletree/internal/styles"
)

type Config struct {
	Format string                `yaml:"format"`
	Watch  WatchConfig           `yaml:"watch"`
	Units  map[string]UnitConfig `yaml:"units"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type UnitConfig struct {
	Src     string   `yaml:"src"`
	Output  string   `yaml:"output"`
	Exclude []string `yaml:"exclude"`
}

// Load builds the effective configuration from viper's merged sources and
// applies defaults. An unknown output format is rejected here so every
// later compile sees a valid mode.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Workaround for viper scalar handling when set via flag bindings.
	if config.Format == "" && viper.IsSet("format") {
		config.Format = viper.GetString("format")
	}
	if _, err := styles.ParseFormat(config.Format); err != nil {
		return nil, err
	}

	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = 300 * time.Millisecond
	}
	if config.Units == nil {
		config.Units = make(map[string]UnitConfig)
	}

	return &config, nil
}

// FormatMode returns the validated output format.
func (c *Config) FormatMode() styles.Format {
	f, err := styles.ParseFormat(c.Format)
	if err != nil {
		return styles.FormatDefault
	}
	return f
}

// Validate reports why a unit cannot be compiled, or nil. A malformed unit
// is rejected before the compiler is ever invoked for it.
func (u UnitConfig) Validate() error {
	if u.Src == "" {
		return errors.New("missing style source path (src)")
	}
	if u.Output == "" {
		return errors.New("missing output path")
	}
	return nil
}
