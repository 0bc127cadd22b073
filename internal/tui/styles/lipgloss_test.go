package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

func TestThemeColorFollowsMode(t *testing.T) {
	light := DefaultTheme.WithMode(mode.Light)
	dark := DefaultTheme.WithMode(mode.Dark)

	assert.Equal(t, lipgloss.Color(palette.Resolve(palette.TokenLabel, mode.Light).Hex()), light.Color(palette.TokenLabel))
	assert.NotEqual(t, light.Color(palette.TokenLabel), dark.Color(palette.TokenLabel))
}

func TestThemeColorFlattensTranslucentTokens(t *testing.T) {
	theme := DefaultTheme.WithMode(mode.Light)
	bg := palette.Resolve(palette.TokenBackground, mode.Light)
	sep := palette.Resolve(palette.TokenSeparator, mode.Light)

	assert.Equal(t, lipgloss.Color(sep.Over(bg).Hex()), theme.Color(palette.TokenSeparator))
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "high-contrast", ThemeFor("high-contrast", mode.Dark).Name)
	assert.Equal(t, mode.Dark, ThemeFor("high-contrast", mode.Dark).Mode)
	assert.Equal(t, "default", ThemeFor("neon", mode.Light).Name)
}

func TestHighContrastUsesAccessibleHues(t *testing.T) {
	theme := HighContrastTheme.WithMode(mode.Light)
	want := palette.ResolveAccessible(palette.TokenRed, mode.Light)
	assert.Equal(t, lipgloss.Color(want.Hex()), theme.Color(palette.TokenRed))
}

func TestBuildStyles(t *testing.T) {
	styleSet := BuildStyles(DefaultTheme.WithMode(mode.Dark))
	assert.Equal(t, mode.Dark, styleSet.Theme.Mode)
	assert.True(t, styleSet.Title.GetBold())
	assert.Equal(t, styleSet.Theme.Color(palette.TokenRed), styleSet.Error.GetForeground())
}
