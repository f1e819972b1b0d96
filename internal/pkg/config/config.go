package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Simplify SimplifyConfig `mapstructure:"simplify"`
	Log      LogConfig      `mapstructure:"log"`
}

type OutputConfig struct {
	RoutePoints int    `mapstructure:"route_points"`
	File        string `mapstructure:"file"`
}

type SimplifyConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	MaxDistance float64 `mapstructure:"max_distance"` // meters
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("output.route_points", 50)
	v.SetDefault("output.file", "output.gpx")
	v.SetDefault("simplify.enabled", false)
	v.SetDefault("simplify.max_distance", 10.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: TRACK2ROUTE_OUTPUT_FILE → output.file
	v.SetEnvPrefix("TRACK2ROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Output.RoutePoints < 2 {
		errs = append(errs, fmt.Sprintf("output.route_points must be at least 2, got %d", c.Output.RoutePoints))
	}
	if c.Output.File == "" {
		errs = append(errs, "output.file is required")
	}
	if c.Simplify.MaxDistance <= 0 {
		errs = append(errs, fmt.Sprintf("simplify.max_distance must be positive, got %v", c.Simplify.MaxDistance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
