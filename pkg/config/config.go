package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the scanner service
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ExtractionConfig holds the extraction engine's tunable policy. Exclusions
// replaces the built-in label dictionary when non-empty, so deployments in a
// different jurisdiction can supply their own phrase list.
type ExtractionConfig struct {
	MinimumAge  int           `mapstructure:"minimum_age"`
	MaxAgeYears int           `mapstructure:"max_age_years"`
	ScanTTL     time.Duration `mapstructure:"scan_ttl"`
	Exclusions  []string      `mapstructure:"exclusions"`
}

// Load loads configuration from environment variables and an optional
// config file, applying development defaults.
func Load(serviceName string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SCANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from config file if exists
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/scanner")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8085)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.environment", "development")

	// Extraction defaults
	v.SetDefault("extraction.minimum_age", 18)
	v.SetDefault("extraction.max_age_years", 120)
	v.SetDefault("extraction.scan_ttl", 15*time.Minute)
	v.SetDefault("extraction.exclusions", []string{})
}
