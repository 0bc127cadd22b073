package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/prism/pkg/palette"
)

// Kind is a widget kind.
type Kind uint8

const (
	KindButton Kind = iota
	KindContainer
	KindText
	KindInput
)

// ErrUnknownVariant is returned when a kind or variant name is not recognised.
var ErrUnknownVariant = errors.New("unknown style variant")

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindInput:
		return "input"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind reads a widget kind name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "button":
		return KindButton, nil
	case "container":
		return KindContainer, nil
	case "text":
		return KindText, nil
	case "input":
		return KindInput, nil
	default:
		return 0, fmt.Errorf("%w: kind %q", ErrUnknownVariant, name)
	}
}

// Variant is the visual flavour of one widget. The set of implementations is
// closed: [Button], [Container], [Text] and [Input].
type Variant interface {
	Kind() Kind
	String() string
	variant()
}

// AllVariants enumerates every variant reachable through the public types:
// buttons in every size, tinted buttons and coloured text for every hue.
func AllVariants() []Variant {
	var variants []Variant
	for _, b := range AllButtons() {
		variants = append(variants, b)
	}
	for _, c := range AllContainers() {
		variants = append(variants, c)
	}
	for _, t := range AllTexts() {
		variants = append(variants, t)
	}
	for _, i := range AllInputs() {
		variants = append(variants, i)
	}
	return variants
}

// ParseVariant reads a variant of the given kind by name. hue is used by
// tinted buttons and coloured text, size by buttons.
func ParseVariant(kind Kind, name string, hue palette.Hue, size Size) (Variant, error) {
	switch kind {
	case KindButton:
		s, err := ParseButtonStyle(name)
		if err != nil {
			return nil, err
		}
		return Button{Style: s, Tint: hue, Size: size}, nil
	case KindContainer:
		return ParseContainer(name)
	case KindText:
		s, err := ParseTextStyle(name)
		if err != nil {
			return nil, err
		}
		return Text{Style: s, Color: hue}, nil
	case KindInput:
		return ParseInput(name)
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnknownVariant, kind)
	}
}

func parseName(kind Kind, name string, names []string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownVariant, kind, name)
}
