// Package config resolves runtime settings from defaults, an optional YAML
// file, and environment variables, in that order. Command-line flags overlay
// the result at the cobra layer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey      = "TMDB_API_KEY"
	EnvBaseURL     = "MARQUEE_BASE_URL"
	EnvLimit       = "MARQUEE_LIMIT"
	EnvPatternsDir = "MARQUEE_PATTERNS"
	EnvLogLevel    = "MARQUEE_LOG_LEVEL"
)

// DefaultLimit is the initial result display cap; the limit command adjusts
// it per session.
const DefaultLimit = 10

// Config holds every tunable the binaries accept.
type Config struct {
	// APIKey authenticates against TMDB. Empty is legal: queries degrade to
	// "no results" and a warning is shown once at startup.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the TMDB API root. Empty means the public API.
	BaseURL string `yaml:"base_url"`

	// Limit caps how many answers a query displays.
	Limit int `yaml:"limit"`

	// PatternsDir points at a directory of pattern cards mounted ahead of
	// the builtins. Empty means builtins only.
	PatternsDir string `yaml:"patterns"`

	// LogLevel selects the stderr log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Load builds a Config. path names an explicit YAML file; empty skips the
// file layer. Environment variables overlay file values.
func Load(path string) (*Config, error) {
	cfg := &Config{Limit: DefaultLimit}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPatternsDir)); v != "" {
		c.PatternsDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLimit)); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", EnvLimit, v, err)
		}
		c.Limit = limit
	}
	return nil
}
