// Package config loads runtime settings for the portfolio commands.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_PORT.
const EnvPrefix = "PORTFOLIO_"

// Config holds settings shared by the serve and tui commands.
type Config struct {
	Port          string  `koanf:"port"`
	Mode          string  `koanf:"mode"`
	ContentFile   string  `koanf:"content_file"`
	StaticDir     string  `koanf:"static_dir"`
	DBPath        string  `koanf:"db_path"`
	AdminToken    string  `koanf:"admin_token"`
	HashSalt      string  `koanf:"hash_salt"`
	RetentionDays int     `koanf:"retention_days"`
	FocusOffset   float64 `koanf:"focus_offset"`
	LogLevel      string  `koanf:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Port:          "8080",
		Mode:          "release",
		StaticDir:     "./static",
		DBPath:        "portfolio.db",
		RetentionDays: 365,
		FocusOffset:   80,
		LogLevel:      "info",
	}
}

// Load reads the optional YAML file at path, then overlays PORTFOLIO_*
// environment variables. PORT is honored too, for hosts that set it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("setting port: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if math.IsNaN(c.FocusOffset) || math.IsInf(c.FocusOffset, 0) || c.FocusOffset < 0 {
		return fmt.Errorf("focus_offset must be a finite, non-negative number, got %v", c.FocusOffset)
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be non-negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", s)
	}
	return lvl, nil
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
