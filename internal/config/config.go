// Package config loads prism settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/prism/internal/logging"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/style"
)

// EnvPrefix prefixes every environment override, e.g. PRISM_THEME_MODE.
const EnvPrefix = "PRISM"

// Config is the root configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme" json:"theme"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui" json:"tui"`
}

// ThemeConfig selects the theme.
type ThemeConfig struct {
	// Mode is a theme identifier. Anything other than "Light" or "Dark" is
	// classified by name.
	Mode         string `mapstructure:"mode" yaml:"mode" json:"mode"`
	HighContrast bool   `mapstructure:"high_contrast" yaml:"high_contrast" json:"high_contrast"`
	// Overlay names a palette overlay, or a path to an overlay file.
	Overlay string `mapstructure:"overlay" yaml:"overlay,omitempty" json:"overlay,omitempty"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// TUIConfig configures the preview.
type TUIConfig struct {
	// State is the interaction state the preview starts in.
	State string `mapstructure:"state" yaml:"state" json:"state"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Mode: mode.LightName,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatAuto,
		},
		TUI: TUIConfig{
			State: style.Idle.String(),
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/prism or its platform equivalent.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "prism")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "prism")
	}
	return filepath.Join(".", ".prism")
}

// Load reads configuration. An explicit path must exist; otherwise the
// default location is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme.mode", cfg.Theme.Mode)
	v.SetDefault("theme.high_contrast", cfg.Theme.HighContrast)
	v.SetDefault("theme.overlay", cfg.Theme.Overlay)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("tui.state", cfg.TUI.State)
}

// Mode classifies the configured theme identifier.
func (c *Config) Mode() mode.Mode {
	return mode.Resolve(c.Theme.Mode)
}

// Builder returns a style builder matching the theme settings, ignoring any
// overlay.
func (c *Config) Builder() *style.Builder {
	if c.Theme.HighContrast {
		return style.NewBuilder(style.WithHighContrast())
	}
	return style.Default()
}

// InitialState returns the configured preview state.
func (c *Config) InitialState() style.State {
	st, err := style.ParseState(c.TUI.State)
	if err != nil {
		return style.Idle
	}
	return st
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{Level: c.Logging.Level, Format: c.Logging.Format}
}
