package palette

// highContrastEntries holds accessible counterparts for the primary hues.
// Tokens without a counterpart are left zero.
var highContrastEntries = [tokenCount]Pair{
	TokenRed:    {Light: RGB(0.84, 0.0, 0.0), Dark: RGB(1.0, 0.41, 0.38)},    // #D70000 / #FF6961
	TokenOrange: {Light: RGB(0.83, 0.33, 0.0), Dark: RGB(1.0, 0.7, 0.4)},     // #D35400 / #FFB366
	TokenYellow: {Light: RGB(0.77, 0.63, 0.0), Dark: RGB(1.0, 0.83, 0.24)},   // #C4A000 / #FFD33D
	TokenGreen:  {Light: RGB(0.15, 0.54, 0.34), Dark: RGB(0.23, 0.87, 0.57)}, // #268A57 / #3BDF93
	TokenBlue:   {Light: RGB(0.0, 0.42, 0.87), Dark: RGB(0.39, 0.66, 1.0)},   // #006DDE / #64A8FF
}
