package styles

import "github.com/opencode-ai/prism/pkg/palette"

// DefaultTheme paints the chrome from the standard palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: palette.TokenBackground,
		Panel:      palette.TokenSecondaryBackground,
		Text:       palette.TokenLabel,
		TextMuted:  palette.TokenSecondaryLabel,
		Border:     palette.TokenSeparator,
		Accent:     palette.TokenAccent,
		Focus:      palette.TokenControlAccent,
		Success:    palette.TokenGreen,
		Warning:    palette.TokenOrange,
		Error:      palette.TokenRed,
		Info:       palette.TokenLink,
	},
	Resolve: palette.Resolve,
}
