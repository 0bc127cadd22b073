// Package palette holds the fixed table of semantic colour tokens and the
// resolver that turns a token and a mode into a concrete colour.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// Token names a semantic colour. The zero value is not a valid token.
type Token uint8

// Group classifies tokens for listing.
type Group string

const (
	GroupSystem   Group = "system"
	GroupGray     Group = "gray"
	GroupFill     Group = "fill"
	GroupText     Group = "text"
	GroupState    Group = "state"
	GroupPlatform Group = "platform"
	GroupUtility  Group = "utility"
)

const (
	// System hues
	TokenRed Token = iota + 1
	TokenOrange
	TokenYellow
	TokenGreen
	TokenMint
	TokenTeal
	TokenCyan
	TokenBlue
	TokenIndigo
	TokenPurple
	TokenPink
	TokenBrown

	// Gray scale, lightest step first in light mode
	TokenGray
	TokenGray2
	TokenGray3
	TokenGray4
	TokenGray5
	TokenGray6

	// Background fills
	TokenBackground
	TokenSecondaryBackground
	TokenTertiaryBackground

	// Text
	TokenLabel
	TokenSecondaryLabel
	TokenTertiaryLabel
	TokenQuaternaryLabel

	// State
	TokenPlaceholder
	TokenSeparator
	TokenOpaqueSeparator

	// Platform accents
	TokenAccent
	TokenControlAccent
	TokenControlBackground
	TokenControlText
	TokenFindHighlight
	TokenLink
	TokenSelectedContentBackground
	TokenSelectedTextBackground
	TokenWindowBackground

	// Utility
	TokenWhite
	TokenBlack
	TokenClear
	TokenShadow

	tokenCount
)

type tokenInfo struct {
	name  string
	group Group
}

var tokenInfos = [tokenCount]tokenInfo{
	TokenRed:    {"red", GroupSystem},
	TokenOrange: {"orange", GroupSystem},
	TokenYellow: {"yellow", GroupSystem},
	TokenGreen:  {"green", GroupSystem},
	TokenMint:   {"mint", GroupSystem},
	TokenTeal:   {"teal", GroupSystem},
	TokenCyan:   {"cyan", GroupSystem},
	TokenBlue:   {"blue", GroupSystem},
	TokenIndigo: {"indigo", GroupSystem},
	TokenPurple: {"purple", GroupSystem},
	TokenPink:   {"pink", GroupSystem},
	TokenBrown:  {"brown", GroupSystem},

	TokenGray:  {"gray", GroupGray},
	TokenGray2: {"gray2", GroupGray},
	TokenGray3: {"gray3", GroupGray},
	TokenGray4: {"gray4", GroupGray},
	TokenGray5: {"gray5", GroupGray},
	TokenGray6: {"gray6", GroupGray},

	TokenBackground:          {"background", GroupFill},
	TokenSecondaryBackground: {"background.secondary", GroupFill},
	TokenTertiaryBackground:  {"background.tertiary", GroupFill},

	TokenLabel:           {"label", GroupText},
	TokenSecondaryLabel:  {"label.secondary", GroupText},
	TokenTertiaryLabel:   {"label.tertiary", GroupText},
	TokenQuaternaryLabel: {"label.quaternary", GroupText},

	TokenPlaceholder:     {"placeholder", GroupState},
	TokenSeparator:       {"separator", GroupState},
	TokenOpaqueSeparator: {"separator.opaque", GroupState},

	TokenAccent:                    {"accent", GroupPlatform},
	TokenControlAccent:             {"control.accent", GroupPlatform},
	TokenControlBackground:         {"control.background", GroupPlatform},
	TokenControlText:               {"control.text", GroupPlatform},
	TokenFindHighlight:             {"find.highlight", GroupPlatform},
	TokenLink:                      {"link", GroupPlatform},
	TokenSelectedContentBackground: {"selected.content.background", GroupPlatform},
	TokenSelectedTextBackground:    {"selected.text.background", GroupPlatform},
	TokenWindowBackground:          {"window.background", GroupPlatform},

	TokenWhite:  {"white", GroupUtility},
	TokenBlack:  {"black", GroupUtility},
	TokenClear:  {"clear", GroupUtility},
	TokenShadow: {"shadow", GroupUtility},
}

// ErrUnknownToken is returned when a token or group name is not in the palette.
var ErrUnknownToken = errors.New("unknown color token")

// AllGroups returns the listing groups in declaration order.
func AllGroups() []Group {
	return []Group{GroupSystem, GroupGray, GroupFill, GroupText, GroupState, GroupPlatform, GroupUtility}
}

// ParseGroup looks a group up by name.
func ParseGroup(name string) (Group, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range AllGroups() {
		if string(g) == name {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: group %q", ErrUnknownToken, name)
}

// Valid reports whether t is one of the declared tokens.
func (t Token) Valid() bool {
	return t > 0 && t < tokenCount
}

// String returns the dotted token name, e.g. "label.secondary".
func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Token(%d)", uint8(t))
	}
	return tokenInfos[t].name
}

// Group returns the listing group of the token.
func (t Token) Group() Group {
	if !t.Valid() {
		return ""
	}
	return tokenInfos[t].group
}

// AllTokens returns every token in declaration order.
func AllTokens() []Token {
	tokens := make([]Token, 0, tokenCount-1)
	for t := Token(1); t < tokenCount; t++ {
		tokens = append(tokens, t)
	}
	return tokens
}

// ParseToken looks a token up by its dotted name.
func ParseToken(name string) (Token, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := Token(1); t < tokenCount; t++ {
		if tokenInfos[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, name)
}

// Hue is one of the twelve system hues. It parameterises tinted buttons and
// coloured text.
type Hue uint8

const (
	HueRed Hue = iota
	HueOrange
	HueYellow
	HueGreen
	HueMint
	HueTeal
	HueCyan
	HueBlue
	HueIndigo
	HuePurple
	HuePink
	HueBrown

	hueCount
)

var hueTokens = [hueCount]Token{
	HueRed:    TokenRed,
	HueOrange: TokenOrange,
	HueYellow: TokenYellow,
	HueGreen:  TokenGreen,
	HueMint:   TokenMint,
	HueTeal:   TokenTeal,
	HueCyan:   TokenCyan,
	HueBlue:   TokenBlue,
	HueIndigo: TokenIndigo,
	HuePurple: TokenPurple,
	HuePink:   TokenPink,
	HueBrown:  TokenBrown,
}

// ErrUnknownHue is returned when a hue name is not a system hue.
var ErrUnknownHue = errors.New("unknown hue")

// Token returns the palette token for the hue.
func (h Hue) Token() Token {
	if h >= hueCount {
		return 0
	}
	return hueTokens[h]
}

// String returns the hue name.
func (h Hue) String() string {
	if h >= hueCount {
		return fmt.Sprintf("Hue(%d)", uint8(h))
	}
	return hueTokens[h].String()
}

// AllHues returns the system hues in declaration order.
func AllHues() []Hue {
	hues := make([]Hue, 0, hueCount)
	for h := Hue(0); h < hueCount; h++ {
		hues = append(hues, h)
	}
	return hues
}

// ParseHue looks a hue up by name.
func ParseHue(name string) (Hue, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for h := Hue(0); h < hueCount; h++ {
		if hueTokens[h].String() == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHue, name)
}
