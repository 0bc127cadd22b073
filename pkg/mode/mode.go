// Package mode classifies theme identifiers into the two appearance modes
// the palette understands.
//
// Hosts frequently carry their own theme objects (a named theme, a user
// supplied custom theme, a system preference). None of them is a resolution
// target on its own: every identifier degrades to exactly one of [Light] or
// [Dark] before any colour is picked.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the appearance mode a colour is resolved for.
type Mode uint8

const (
	// Light selects the light value of every token. It is the zero value.
	Light Mode = iota
	// Dark selects the dark value of every token.
	Dark
)

// Named identifiers that map directly to a mode.
const (
	LightName = "Light"
	DarkName  = "Dark"
)

// darkMarker is the literal substring that marks a custom identifier as dark.
// The match is case sensitive.
const darkMarker = "Dark"

// ErrUnknownMode is returned by [Parse] for values that are neither light nor dark.
var ErrUnknownMode = errors.New("unknown theme mode")

// Source is anything that can be classified into a Mode.
type Source interface {
	Mode() Mode
}

// Mode implements Source.
func (m Mode) Mode() Mode {
	return m
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case Dark:
		return DarkName
	case Light:
		return LightName
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// MarshalText encodes the mode as lower-case text.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText decodes a mode with [Parse].
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Custom is a host theme identifier the engine does not otherwise understand.
type Custom string

// Mode classifies the custom identifier with [Resolve].
func (c Custom) Mode() Mode {
	return Resolve(string(c))
}

// String returns the identifier unchanged.
func (c Custom) String() string {
	return string(c)
}

type stringerSource struct {
	s fmt.Stringer
}

func (s stringerSource) Mode() Mode {
	return Of(s.s)
}

// FromStringer adapts a host theme value into a Source. The value's String
// form is classified on every call.
func FromStringer(s fmt.Stringer) Source {
	return stringerSource{s: s}
}

// Resolve classifies a theme identifier.
//
// "Light" and "Dark" map directly. Any other identifier is Dark when it
// contains the literal substring "Dark" and Light otherwise, so ambiguous or
// empty identifiers fall back to Light. The match is case sensitive:
// "dark-blue" is Light.
func Resolve(identifier string) Mode {
	switch identifier {
	case LightName:
		return Light
	case DarkName:
		return Dark
	}
	if strings.Contains(identifier, darkMarker) {
		return Dark
	}
	return Light
}

// Of classifies a host theme by its display string. A nil value, or one
// whose String method panics such as a typed nil pointer, is Light.
func Of(theme fmt.Stringer) (m Mode) {
	if theme == nil {
		return Light
	}
	defer func() {
		if recover() != nil {
			m = Light
		}
	}()
	return Resolve(theme.String())
}

// Parse reads a mode from configuration or flag input. Unlike [Resolve] it
// is strict and case insensitive: only "light" and "dark" are accepted.
func Parse(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}
