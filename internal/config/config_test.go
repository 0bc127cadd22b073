package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/style"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, mode.Light, cfg.Mode())
	assert.Equal(t, style.Idle, cfg.InitialState())
	assert.Same(t, style.Default(), cfg.Builder())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeConfig(t, t.TempDir(), `
theme:
  mode: Solarized Dark
  high_contrast: true
logging:
  level: debug
  format: json
tui:
  state: focused
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Solarized Dark", cfg.Theme.Mode)
	assert.Equal(t, mode.Dark, cfg.Mode())
	assert.True(t, cfg.Builder().HighContrast())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.LoggingOptions().Format)
	assert.Equal(t, style.Focused, cfg.InitialState())
}

func TestLoadDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "prism"), 0o755))
	writeConfig(t, filepath.Join(home, "prism"), "theme:\n  mode: Dark\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, mode.Dark, cfg.Mode())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingDefaultIsOptional(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PRISM_THEME_MODE", "Dark")
	t.Setenv("PRISM_THEME_HIGH_CONTRAST", "true")
	t.Setenv("PRISM_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, mode.Dark, cfg.Mode())
	assert.True(t, cfg.Theme.HighContrast)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"empty mode", func(c *Config) { c.Theme.Mode = " " }, []string{"theme.mode"}},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, []string{"logging.level"}},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, []string{"logging.format"}},
		{"bad state", func(c *Config) { c.TUI.State = "dragging" }, []string{"tui.state"}},
		{"several", func(c *Config) {
			c.Logging.Level = "loud"
			c.TUI.State = "dragging"
		}, []string{"logging.level", "tui.state"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var validation *ValidationErrors
			require.True(t, errors.As(err, &validation))
			var fields []string
			for _, e := range validation.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeConfig(t, t.TempDir(), "logging:\n  format: xml\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
