package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/prism/internal/logging"
	"github.com/opencode-ai/prism/pkg/style"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

// AddMessage records an error for field.
func (v *ValidationErrors) AddMessage(field, message string) {
	v.Errors = append(v.Errors, &ValidationError{Field: field, Message: message})
}

// Err returns nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(parts, "; "))
}

func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every section.
func (c *Config) Validate() error {
	validation := &ValidationErrors{}

	if strings.TrimSpace(c.Theme.Mode) == "" {
		validation.AddMessage("theme.mode", "theme mode is required")
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		validation.AddMessage("logging.level", fmt.Sprintf("unknown level %q", c.Logging.Level))
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", logging.FormatAuto, logging.FormatConsole, logging.FormatJSON:
	default:
		validation.AddMessage("logging.format", fmt.Sprintf("unknown format %q (want auto, console or json)", c.Logging.Format))
	}

	if _, err := style.ParseState(c.TUI.State); err != nil {
		validation.AddMessage("tui.state", fmt.Sprintf("unknown state %q", c.TUI.State))
	}

	return validation.Err()
}
