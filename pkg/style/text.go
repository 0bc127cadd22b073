package style

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// TextStyle is the visual flavour of a text run.
type TextStyle uint8

const (
	TextPrimary TextStyle = iota
	TextSecondary
	TextTertiary
	TextLink
	// TextColored uses the Text's Color hue.
	TextColored

	textStyleCount
)

var textRules = [textStyleCount]struct {
	name  string
	color ref
}{
	TextPrimary:   {"primary", tokenRef(palette.TokenLabel)},
	TextSecondary: {"secondary", tokenRef(palette.TokenSecondaryLabel)},
	TextTertiary:  {"tertiary", tokenRef(palette.TokenTertiaryLabel)},
	TextLink:      {"link", roleRef(palette.RoleLink)},
	TextColored:   {"colored", ref{}},
}

// Text is a text variant. Only links react to interaction state.
type Text struct {
	Style TextStyle
	Color palette.Hue
}

// String returns the text style name.
func (s TextStyle) String() string {
	if s >= textStyleCount {
		return fmt.Sprintf("TextStyle(%d)", uint8(s))
	}
	return textRules[s].name
}

// ParseTextStyle reads a text style name.
func ParseTextStyle(name string) (TextStyle, error) {
	names := make([]string, textStyleCount)
	for i, rule := range textRules {
		names[i] = rule.name
	}
	i, err := parseName(KindText, name, names)
	return TextStyle(i), err
}

// Kind implements Variant.
func (Text) Kind() Kind { return KindText }

func (Text) variant() {}

// String returns e.g. "text/secondary" or "text/colored(red)".
func (t Text) String() string {
	if t.Style == TextColored {
		return fmt.Sprintf("%s/%s(%s)", KindText, t.Style, t.Color)
	}
	return fmt.Sprintf("%s/%s", KindText, t.Style)
}

// AllTexts enumerates every text style, with coloured text expanded over all
// hues.
func AllTexts() []Text {
	var texts []Text
	for style := TextStyle(0); style < textStyleCount; style++ {
		if style != TextColored {
			texts = append(texts, Text{Style: style})
			continue
		}
		for _, hue := range palette.AllHues() {
			texts = append(texts, Text{Style: style, Color: hue})
		}
	}
	return texts
}

// BuildText resolves a text run for mode m. Non-link text ignores st.
func (b *Builder) BuildText(v Text, m mode.Mode, st State) Spec {
	color := textRules[v.Style].color
	if v.Style == TextColored {
		color = tokenRef(v.Color.Token())
	}
	return Spec{
		Background: palette.Transparent,
		Foreground: b.resolveRef(color, m),
		Opacity:    1,
		Underline:  v.Style == TextLink && st == Hovered,
	}
}
