package style

import (
	"errors"
	"fmt"
	"strings"
)

// State is the interaction state a widget is drawn in.
type State uint8

const (
	Idle State = iota
	Hovered
	Pressed
	Disabled
	Focused

	stateCount
)

var stateNames = [stateCount]string{
	Idle:     "idle",
	Hovered:  "hovered",
	Pressed:  "pressed",
	Disabled: "disabled",
	Focused:  "focused",
}

// ErrUnknownState is returned when a state name is not recognised.
var ErrUnknownState = errors.New("unknown interaction state")

// String returns the state name.
func (s State) String() string {
	if s >= stateCount {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// MarshalText encodes the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state with [ParseState].
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AllStates returns every interaction state.
func AllStates() []State {
	return []State{Idle, Hovered, Pressed, Disabled, Focused}
}

// ParseState reads a state name. "hover", "press" and "focus" are accepted
// as aliases.
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "idle", "":
		return Idle, nil
	case "hovered", "hover":
		return Hovered, nil
	case "pressed", "press":
		return Pressed, nil
	case "disabled":
		return Disabled, nil
	case "focused", "focus":
		return Focused, nil
	default:
		return Idle, fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
}
