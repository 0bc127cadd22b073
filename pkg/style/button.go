package style

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// ButtonStyle is the visual flavour of a button.
type ButtonStyle uint8

const (
	// ButtonPrimary is the filled accent button.
	ButtonPrimary ButtonStyle = iota
	// ButtonSecondary is an outlined, tinted accent button.
	ButtonSecondary
	ButtonSuccess
	ButtonWarning
	// ButtonDanger is for destructive actions.
	ButtonDanger
	// ButtonLink renders as a text link.
	ButtonLink
	// ButtonSystem is a neutral gray button.
	ButtonSystem
	ButtonPlain
	ButtonGray
	// ButtonTinted is filled with the button's Tint hue.
	ButtonTinted

	buttonStyleCount
)

// Size scales a button's padding and corner radius.
type Size uint8

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge

	sizeCount
)

type buttonRule struct {
	name  string
	kind  ruleKind
	color ref
}

// buttonRules is indexed by ButtonStyle. Tinted takes its colour from the
// hue. For neutral buttons the colour is the label.
var buttonRules = [buttonStyleCount]buttonRule{
	ButtonPrimary:   {"primary", ruleFilled, tokenRef(palette.TokenBlue)},
	ButtonSecondary: {"secondary", ruleTonal, tokenRef(palette.TokenBlue)},
	ButtonSuccess:   {"success", ruleFilled, tokenRef(palette.TokenGreen)},
	ButtonWarning:   {"warning", ruleFilled, tokenRef(palette.TokenOrange)},
	ButtonDanger:    {"danger", ruleFilled, tokenRef(palette.TokenRed)},
	ButtonLink:      {"link", ruleTextOnly, roleRef(palette.RoleLink)},
	ButtonSystem:    {"system", ruleNeutral, tokenRef(palette.TokenLabel)},
	ButtonPlain:     {"plain", ruleTextOnly, tokenRef(palette.TokenLabel)},
	ButtonGray:      {"gray", ruleTonal, tokenRef(palette.TokenGray)},
	ButtonTinted:    {"tinted", ruleFilled, ref{}},
}

type sizeMetrics struct {
	name    string
	radius  float64
	padding Insets
}

var sizeTable = [sizeCount]sizeMetrics{
	SizeSmall:  {"small", SmallCornerRadius, Insets{Vertical: 4, Horizontal: 10}},
	SizeMedium: {"medium", CornerRadius, Insets{Vertical: 7, Horizontal: 14}},
	SizeLarge:  {"large", LargeCornerRadius, Insets{Vertical: 11, Horizontal: 20}},
}

// String returns the style name.
func (s ButtonStyle) String() string {
	if s >= buttonStyleCount {
		return fmt.Sprintf("ButtonStyle(%d)", uint8(s))
	}
	return buttonRules[s].name
}

// String returns the size name.
func (s Size) String() string {
	if s >= sizeCount {
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
	return sizeTable[s].name
}

// ParseButtonStyle reads a button style name.
func ParseButtonStyle(name string) (ButtonStyle, error) {
	names := make([]string, buttonStyleCount)
	for i, rule := range buttonRules {
		names[i] = rule.name
	}
	i, err := parseName(KindButton, name, names)
	return ButtonStyle(i), err
}

// ParseSize reads a button size name. An empty name is medium.
func ParseSize(name string) (Size, error) {
	if name == "" {
		return SizeMedium, nil
	}
	names := make([]string, sizeCount)
	for i, m := range sizeTable {
		names[i] = m.name
	}
	i, err := parseName(KindButton, name, names)
	if err != nil {
		return SizeMedium, fmt.Errorf("size: %w", err)
	}
	return Size(i), nil
}

// AllSizes returns every button size, smallest first.
func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Button is a button variant. Tint is only read by ButtonTinted.
type Button struct {
	Style ButtonStyle
	Tint  palette.Hue
	Size  Size
}

// Kind implements Variant.
func (Button) Kind() Kind { return KindButton }

func (Button) variant() {}

// String returns e.g. "button/primary/medium" or "button/tinted(pink)/small".
func (b Button) String() string {
	name := b.Style.String()
	if b.Style == ButtonTinted {
		name = fmt.Sprintf("%s(%s)", name, b.Tint)
	}
	return fmt.Sprintf("%s/%s/%s", KindButton, name, b.Size)
}

// AllButtons enumerates every button style in every size, with tinted
// buttons expanded over all hues.
func AllButtons() []Button {
	var buttons []Button
	for _, size := range AllSizes() {
		for style := ButtonStyle(0); style < buttonStyleCount; style++ {
			if style != ButtonTinted {
				buttons = append(buttons, Button{Style: style, Size: size})
				continue
			}
			for _, hue := range palette.AllHues() {
				buttons = append(buttons, Button{Style: style, Tint: hue, Size: size})
			}
		}
	}
	return buttons
}

// BuildButton resolves a button for mode m in state st.
func (b *Builder) BuildButton(v Button, m mode.Mode, st State) Spec {
	metrics := sizeTable[v.Size]
	rule := buttonRules[v.Style]
	colorRef := rule.color
	if v.Style == ButtonTinted {
		colorRef = tokenRef(v.Tint.Token())
	}
	c := b.resolveRef(colorRef, m)

	base := Spec{
		Border:  Border{Radius: metrics.radius},
		Padding: metrics.padding,
		Opacity: 1,
	}

	switch rule.kind {
	case ruleFilled:
		return b.filled(base, c, m, st)
	case ruleTonal:
		return b.tonal(base, c, m, st)
	case ruleTextOnly:
		return b.textOnly(base, c, v.Style == ButtonLink, m, st)
	case ruleNeutral:
		return b.neutral(base, c, m, st)
	}
	panic(fmt.Sprintf("style: button %s has no rule", v))
}
