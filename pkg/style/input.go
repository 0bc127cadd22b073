package style

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// Input is a text input variant.
type Input uint8

const (
	InputStandard Input = iota
	InputSearch
	// InputInline sits inside other content with a hairline border.
	InputInline

	inputCount
)

type inputRule struct {
	name       string
	background ref
	// border is zero for borderless inputs; they still get a focus border.
	border  ref
	radius  float64
	padding Insets
}

var inputRules = [inputCount]inputRule{
	InputStandard: {"standard", roleRef(palette.RoleInputBackground), roleRef(palette.RoleInputBorder), SmallCornerRadius, Insets{10, 10}},
	InputSearch:   {"search", tokenRef(palette.TokenTertiaryBackground), ref{}, CornerRadius, Insets{7, 10}},
	InputInline:   {"inline", tokenRef(palette.TokenClear), tokenRef(palette.TokenSeparator), TinyCornerRadius, Insets{4, 4}},
}

// Kind implements Variant.
func (Input) Kind() Kind { return KindInput }

func (Input) variant() {}

// String returns e.g. "input/search".
func (i Input) String() string {
	if i >= inputCount {
		return fmt.Sprintf("Input(%d)", uint8(i))
	}
	return fmt.Sprintf("%s/%s", KindInput, inputRules[i].name)
}

// ParseInput reads an input variant name.
func ParseInput(name string) (Input, error) {
	names := make([]string, inputCount)
	for i, rule := range inputRules {
		names[i] = rule.name
	}
	i, err := parseName(KindInput, name, names)
	return Input(i), err
}

// AllInputs returns every input variant.
func AllInputs() []Input {
	return []Input{InputStandard, InputSearch, InputInline}
}

// BuildInput resolves an input for mode m. Inputs distinguish Idle, Focused
// and Disabled; hovered and pressed inputs look idle.
func (b *Builder) BuildInput(v Input, m mode.Mode, st State) Spec {
	rule := inputRules[v]
	s := Spec{
		Background:  b.resolveRef(rule.background, m),
		Foreground:  b.color(palette.TokenLabel, m),
		Border:      Border{Radius: rule.radius},
		Padding:     rule.padding,
		Opacity:     1,
		Placeholder: b.color(palette.TokenPlaceholder, m),
		Selection:   palette.RoleSelection.ResolveWith(b.resolve, m),
	}
	if rule.border.valid() {
		s.Border.Width = InputBorderWidth
		s.Border.Color = b.resolveRef(rule.border, m)
	}

	switch st {
	case Idle, Hovered, Pressed:
	case Focused:
		s.Border.Width += InputFocusWidthDelta
		s.Border.Color = b.color(palette.TokenAccent, m)
	case Disabled:
		s.Opacity = DisabledOpacity
	}
	return s
}
