// Package styles derives the preview chrome from the palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/prism/pkg/mode"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Focus    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles builds styles from the default theme in light mode.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme.WithMode(mode.Light))
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens
	color := theme.Color

	return Styles{
		Theme:    theme,
		Title:    lipgloss.NewStyle().Foreground(color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(color(tokens.Accent)),
		Panel:    lipgloss.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(color(tokens.Border)),
		Border:   lipgloss.NewStyle().Foreground(color(tokens.Border)),
		Focus:    lipgloss.NewStyle().Foreground(color(tokens.Focus)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(color(tokens.Success)),
		Warning:  lipgloss.NewStyle().Foreground(color(tokens.Warning)),
		Error:    lipgloss.NewStyle().Foreground(color(tokens.Error)),
		Info:     lipgloss.NewStyle().Foreground(color(tokens.Info)),
		Selected: lipgloss.NewStyle().Foreground(color(tokens.Accent)).Bold(true).Underline(true),
	}
}
