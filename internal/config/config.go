// Package config loads simulator settings from a YAML file and SABBER_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SABBER_LOGGING_LEVEL.
const EnvPrefix = "SABBER"

// Config is the full configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Collections CollectionsConfig `mapstructure:"collections"`
	History     HistoryConfig     `mapstructure:"history"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CollectionsConfig tunes the ordered sets backing zones.
type CollectionsConfig struct {
	IndexThreshold int `mapstructure:"index_threshold"`
}

// HistoryConfig controls power history recording and trace export.
type HistoryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Compression string `mapstructure:"compression"`
}

// CatalogConfig locates the card catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("collections.index_threshold", 16)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.compression", "default")
	v.SetDefault("catalog.path", "data/cards.yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the YAML file at path over the defaults. An empty path uses
// defaults and environment only.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	if c.Collections.IndexThreshold < 0 {
		return fmt.Errorf("invalid collections.index_threshold %d", c.Collections.IndexThreshold)
	}
	if _, err := c.History.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps Compression (fastest, default, better, best) to a zstd level.
func (h HistoryConfig) Level() (zstd.EncoderLevel, error) {
	ok, level := zstd.EncoderLevelFromString(h.Compression)
	if !ok {
		return zstd.SpeedDefault, fmt.Errorf("invalid history.compression %q", h.Compression)
	}
	return level, nil
}
