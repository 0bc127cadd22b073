package palette

// defaultEntries is the baseline palette, indexed by token.
//
// Light and dark values that are intentionally identical: teal, gray,
// placeholder, find.highlight and the white, black, clear and shadow
// utility tokens.
var defaultEntries = [tokenCount]Entry{
	TokenRed:    {Light: RGB(1.0, 0.23, 0.19), Dark: RGB(1.0, 0.27, 0.23)},  // #FF3B30 / #FF453A
	TokenOrange: {Light: RGB(1.0, 0.58, 0.0), Dark: RGB(1.0, 0.62, 0.04)},   // #FF9500 / #FF9F0A
	TokenYellow: {Light: RGB(1.0, 0.8, 0.0), Dark: RGB(1.0, 0.84, 0.0)},     // #FFCC00 / #FFD60A
	TokenGreen:  {Light: RGB(0.20, 0.78, 0.35), Dark: RGB(0.19, 0.82, 0.35)}, // #34C759 / #30D158
	TokenMint:   {Light: RGB(0.0, 0.78, 0.74), Dark: RGB(0.39, 0.9, 0.89)},   // #00C7BE / #63E6E2
	TokenTeal:   {Light: RGB(0.35, 0.78, 0.98), Dark: RGB(0.35, 0.78, 0.98)}, // identical by design
	TokenCyan:   {Light: RGB(0.31, 0.85, 0.98), Dark: RGB(0.39, 0.88, 1.0)},  // #50E3FD / #64D2FF
	TokenBlue:   {Light: RGB(0.0, 0.48, 1.0), Dark: RGB(0.04, 0.52, 1.0)},    // #007AFF / #0A84FF
	TokenIndigo: {Light: RGB(0.35, 0.34, 0.84), Dark: RGB(0.37, 0.36, 0.9)},  // #5856D6 / #5E5CE6
	TokenPurple: {Light: RGB(0.69, 0.32, 0.87), Dark: RGB(0.75, 0.35, 0.95)}, // #AF52DE / #BF5AF2
	TokenPink:   {Light: RGB(1.0, 0.17, 0.34), Dark: RGB(1.0, 0.22, 0.37)},   // #FF2D55 / #FF375F
	TokenBrown:  {Light: RGB(0.64, 0.52, 0.31), Dark: RGB(0.67, 0.56, 0.39)}, // #A2845E / #AC8E68

	TokenGray:  {Light: RGB(0.56, 0.56, 0.58), Dark: RGB(0.56, 0.56, 0.58)}, // #8E8E93
	TokenGray2: {Light: RGB(0.68, 0.68, 0.7), Dark: RGB(0.39, 0.39, 0.4)},   // #AEAEB2 / #636366
	TokenGray3: {Light: RGB(0.78, 0.78, 0.8), Dark: RGB(0.28, 0.28, 0.29)},  // #C7C7CC / #48484A
	TokenGray4: {Light: RGB(0.82, 0.82, 0.84), Dark: RGB(0.22, 0.22, 0.23)}, // #D1D1D6 / #38383A
	TokenGray5: {Light: RGB(0.90, 0.90, 0.92), Dark: RGB(0.17, 0.17, 0.18)}, // #E5E5EA / #2C2C2E
	TokenGray6: {Light: RGB(0.95, 0.95, 0.97), Dark: RGB(0.11, 0.11, 0.12)}, // #F2F2F7 / #1C1C1E

	TokenBackground:          {Light: White, Dark: RGB(0.11, 0.11, 0.12)},                  // #FFFFFF / #1C1C1E
	TokenSecondaryBackground: {Light: RGB(0.95, 0.95, 0.97), Dark: RGB(0.17, 0.17, 0.18)}, // #F2F2F7 / #2C2C2E
	TokenTertiaryBackground:  {Light: RGB(0.90, 0.90, 0.92), Dark: RGB(0.22, 0.22, 0.23)}, // #E5E5EA / #38383A

	TokenLabel:           {Light: Black, Dark: White},
	TokenSecondaryLabel:  {Light: RGB(0.43, 0.43, 0.45), Dark: RGB(0.78, 0.78, 0.8)},  // #6D6D72 / #C7C7CC
	TokenTertiaryLabel:   {Light: RGB(0.56, 0.56, 0.58), Dark: RGB(0.56, 0.56, 0.58)}, // #8E8E93
	TokenQuaternaryLabel: {Light: RGB(0.68, 0.68, 0.7), Dark: RGB(0.44, 0.44, 0.46)},  // #AEAEB2 / #6F6F74

	TokenPlaceholder:     {Light: RGB(0.56, 0.56, 0.58), Dark: RGB(0.56, 0.56, 0.58)}, // #8E8E93
	TokenSeparator:       {Light: RGB(0.78, 0.78, 0.8), Dark: RGB(0.33, 0.33, 0.35)},  // #C7C7CC / #545458
	TokenOpaqueSeparator: {Light: RGB(0.82, 0.82, 0.84), Dark: RGB(0.33, 0.33, 0.35)}, // #D1D1D6 / #545458

	TokenAccent:                    {Light: RGB(0.0, 0.48, 1.0), Dark: RGB(0.04, 0.52, 1.0)},
	TokenControlAccent:             {Light: RGB(0.0, 0.48, 1.0), Dark: RGB(0.04, 0.52, 1.0)},
	TokenControlBackground:         {Light: RGB(0.95, 0.95, 0.97), Dark: RGB(0.12, 0.12, 0.12)}, // #F2F2F7 / #1E1E1E
	TokenControlText:               {Light: Black, Dark: White},
	TokenFindHighlight:             {Light: RGB(1.0, 0.8, 0.0), Dark: RGB(1.0, 0.8, 0.0)},
	TokenLink:                      {Light: RGB(0.0, 0.48, 1.0), Dark: RGB(0.04, 0.52, 1.0)},    // #007AFF / #0A84FF
	TokenSelectedContentBackground: {Light: RGB(0.0, 0.48, 1.0), Dark: RGB(0.0, 0.35, 0.82)},    // #007AFF / #0058D0
	TokenSelectedTextBackground:    {Light: RGB(0.71, 0.84, 1.0), Dark: RGB(0.25, 0.39, 0.55)},  // #B5D5FF / #3F638B
	TokenWindowBackground:          {Light: RGB(0.95, 0.95, 0.97), Dark: RGB(0.2, 0.2, 0.2)},    // #F2F2F7 / #323232

	TokenWhite:  {Light: White, Dark: White},
	TokenBlack:  {Light: Black, Dark: Black},
	TokenClear:  {Light: RGBA(1, 1, 1, 0), Dark: RGBA(1, 1, 1, 0)},
	TokenShadow: {Light: Black, Dark: Black},
}
