// Package config loads siunits CLI configuration using Viper.
//
// Values come from, lowest priority first: built-in defaults, an optional
// TOML config file and SIUNITS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "siunits"
	// ConfigFileExt is the config file format.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. SIUNITS_CATALOG.
	EnvPrefix = "SIUNITS"
)

// Config is the CLI configuration.
type Config struct {
	// Catalog is the SQLite catalog path. Empty means the built-in SI
	// registry.
	Catalog string `mapstructure:"catalog"`
	// Registry is the UUID of the registry to load from Catalog. Empty
	// selects the only stored registry.
	Registry string `mapstructure:"registry"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads configuration. When path is empty the working directory is
// searched for siunits.toml and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("catalog", defaults.Catalog)
	v.SetDefault("registry", defaults.Registry)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
