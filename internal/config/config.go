// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Prefix is prepended to every variable name: TAQREEB_DB, TAQREEB_LOG_LEVEL, ...
const Prefix = "TAQREEB"

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	// Cache database path. Empty means ~/.taqreeb/cache.db.
	DB string `envconfig:"DB" default:""`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Optional YAML/JSON vendor catalog; the built-in catalog is used when empty.
	Catalog string `envconfig:"CATALOG" default:""`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:"127.0.0.1:8787"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("unsupported LOG_LEVEL: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %q", c.LogFormat)
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	return nil
}

// DBPath resolves the cache path, falling back to the home directory.
func (c *Config) DBPath() string {
	if c.DB != "" {
		return c.DB
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taqreeb", "cache.db")
}
