package styles

import "github.com/opencode-ai/prism/pkg/palette"

// HighContrastTheme uses opaque separators and the accessible hues.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: palette.TokenBackground,
		Panel:      palette.TokenBackground,
		Text:       palette.TokenLabel,
		TextMuted:  palette.TokenLabel,
		Border:     palette.TokenOpaqueSeparator,
		Accent:     palette.TokenBlue,
		Focus:      palette.TokenYellow,
		Success:    palette.TokenGreen,
		Warning:    palette.TokenOrange,
		Error:      palette.TokenRed,
		Info:       palette.TokenBlue,
	},
	Resolve: palette.ResolveAccessible,
}
