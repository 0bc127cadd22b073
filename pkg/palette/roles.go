package palette

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
)

// Role is a widget-level colour that may pick a different token per mode.
// Cards, for example, sit on the page background in light mode and on the
// secondary fill in dark mode. The zero value is not a valid role.
type Role uint8

const (
	RoleCardBackground Role = iota + 1
	// RoleSystemBackground is the neutral fill of system buttons.
	RoleSystemBackground
	RoleInactiveBorder
	RoleInputBackground
	RoleInputBorder
	// RoleSelection is the translucent text selection highlight.
	RoleSelection
	RoleLink

	roleCount
)

// SelectionAlpha is the opacity of the selection highlight.
const SelectionAlpha = 0.3

type roleInfo struct {
	name  string
	light Token
	dark  Token
	alpha float64
}

var roleInfos = [roleCount]roleInfo{
	RoleCardBackground:   {"card.background", TokenBackground, TokenSecondaryBackground, 1},
	RoleSystemBackground: {"system.background", TokenGray5, TokenGray4, 1},
	RoleInactiveBorder:   {"inactive.border", TokenGray3, TokenGray2, 1},
	RoleInputBackground:  {"input.background", TokenSecondaryBackground, TokenSecondaryBackground, 1},
	RoleInputBorder:      {"input.border", TokenGray4, TokenGray3, 1},
	RoleSelection:        {"selection", TokenBlue, TokenBlue, SelectionAlpha},
	RoleLink:             {"link", TokenLink, TokenLink, 1},
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r > 0 && r < roleCount
}

// String returns the dotted role name.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleInfos[r].name
}

// Token returns the token backing r in mode m.
func (r Role) Token(m mode.Mode) Token {
	if !r.Valid() {
		return 0
	}
	if m.IsDark() {
		return roleInfos[r].dark
	}
	return roleInfos[r].light
}

// ResolveWith resolves r through resolve, so remapped or accessible palettes
// apply to roles as well.
func (r Role) ResolveWith(resolve Resolver, m mode.Mode) Color {
	if !r.Valid() {
		return Color{}
	}
	if resolve == nil {
		resolve = Resolve
	}
	return resolve(r.Token(m), m).ScaleAlpha(roleInfos[r].alpha)
}

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount-1)
	for r := Role(1); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ThemeColors is the role table resolved for one mode.
type ThemeColors struct {
	CardBackground   Color `json:"card_background" yaml:"card_background"`
	SystemBackground Color `json:"system_background" yaml:"system_background"`
	InactiveBorder   Color `json:"inactive_border" yaml:"inactive_border"`
	InputBackground  Color `json:"input_background" yaml:"input_background"`
	InputBorder      Color `json:"input_border" yaml:"input_border"`
	Selection        Color `json:"selection" yaml:"selection"`
	Link             Color `json:"link" yaml:"link"`
}

// Theme returns the role table for m over the default palette.
func Theme(m mode.Mode) ThemeColors {
	return ThemeWith(Resolve, m)
}

// ThemeWith returns the role table for m resolved through resolve.
func ThemeWith(resolve Resolver, m mode.Mode) ThemeColors {
	return ThemeColors{
		CardBackground:   RoleCardBackground.ResolveWith(resolve, m),
		SystemBackground: RoleSystemBackground.ResolveWith(resolve, m),
		InactiveBorder:   RoleInactiveBorder.ResolveWith(resolve, m),
		InputBackground:  RoleInputBackground.ResolveWith(resolve, m),
		InputBorder:      RoleInputBorder.ResolveWith(resolve, m),
		Selection:        RoleSelection.ResolveWith(resolve, m),
		Link:             RoleLink.ResolveWith(resolve, m),
	}
}
