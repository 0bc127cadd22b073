package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// ThemeTokens maps the preview chrome roles onto palette tokens.
type ThemeTokens struct {
	Background palette.Token
	Panel      palette.Token
	Text       palette.Token
	TextMuted  palette.Token
	Border     palette.Token
	Accent     palette.Token
	Focus      palette.Token
	Success    palette.Token
	Warning    palette.Token
	Error      palette.Token
	Info       palette.Token
}

// Theme bundles chrome tokens with the resolver and mode used to paint them.
type Theme struct {
	Name    string
	Mode    mode.Mode
	Tokens  ThemeTokens
	Resolve palette.Resolver
}

// Color resolves t for the theme mode and flattens it onto the background.
func (t Theme) Color(token palette.Token) lipgloss.Color {
	bg := t.Resolve(t.Tokens.Background, t.Mode).Over(palette.Black)
	return lipgloss.Color(t.Resolve(token, t.Mode).Over(bg).Hex())
}

// WithMode returns the theme painted for m.
func (t Theme) WithMode(m mode.Mode) Theme {
	t.Mode = m
	return t
}

// ThemeFor returns the named chrome theme in mode m. Unknown names fall back
// to the default theme.
func ThemeFor(name string, m mode.Mode) Theme {
	if name == HighContrastTheme.Name {
		return HighContrastTheme.WithMode(m)
	}
	return DefaultTheme.WithMode(m)
}
