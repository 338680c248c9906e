package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Log encodings accepted by log_format.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds all runtime configuration for an astrostay session.
// Values are populated from .astrostay.yaml, ASTROSTAY_* env vars, and CLI flags.
type Config struct {
	CatalogPath       string        `mapstructure:"catalog_path"`
	WatchCatalog      bool          `mapstructure:"watch_catalog"`
	LogFile           string        `mapstructure:"log_file"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	TelemetryPath     string        `mapstructure:"telemetry_path"`
	AdvanceDelay      time.Duration `mapstructure:"advance_delay"`
	ContactResetDelay time.Duration `mapstructure:"contact_reset_delay"`
	NoStars           bool          `mapstructure:"no_stars"`
	StarCount         int           `mapstructure:"star_count"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("watch_catalog", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", LogFormatJSON)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("advance_delay", 300*time.Millisecond)
	viper.SetDefault("contact_reset_delay", 2*time.Second)
	viper.SetDefault("no_stars", false)
	viper.SetDefault("star_count", 200)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component can honor.
func (c Config) Validate() error {
	var errs []error
	if c.AdvanceDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: advance_delay must not be negative", ErrInvalidConfig))
	}
	if c.ContactResetDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: contact_reset_delay must not be negative", ErrInvalidConfig))
	}
	if c.StarCount < 0 {
		errs = append(errs, fmt.Errorf("%w: star_count must not be negative", ErrInvalidConfig))
	}
	switch c.LogFormat {
	case "", LogFormatJSON, LogFormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: log_format %q is not json or console", ErrInvalidConfig, c.LogFormat))
	}
	if c.WatchCatalog && c.CatalogPath == "" {
		errs = append(errs, fmt.Errorf("%w: watch_catalog needs catalog_path", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
