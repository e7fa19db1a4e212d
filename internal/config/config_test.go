package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nfocus_offset: 56\nmode: debug\n"), 0644))

	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_MODE", "test")
	t.Setenv("PORTFOLIO_ADMIN_TOKEN", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 56.0, cfg.FocusOffset)
	assert.Equal(t, "test", cfg.Mode)
	assert.Equal(t, "s3cret", cfg.AdminToken)
}

func TestLoadHonorsPlainPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)

	t.Setenv("PORTFOLIO_PORT", "4000")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port, "prefixed override wins")
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"mode":      func(c *Config) { c.Mode = "prod" },
		"port":      func(c *Config) { c.Port = "" },
		"focus":     func(c *Config) { c.FocusOffset = -1 },
		"focus NaN": func(c *Config) { c.FocusOffset = math.NaN() },
		"focus Inf": func(c *Config) { c.FocusOffset = math.Inf(1) },
		"retention": func(c *Config) { c.RetentionDays = -1 },
		"log level": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNaNFocusOffsetFromEnvRejected(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_FOCUS_OFFSET", "NaN")

	cfg, err := Load("")
	require.NoError(t, err)
	require.True(t, math.IsNaN(cfg.FocusOffset))
	assert.ErrorContains(t, cfg.Validate(), "focus_offset")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
