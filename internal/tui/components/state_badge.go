package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/prism/internal/tui/styles"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/style"
)

// RenderStateBadge renders an interaction state with icon and color.
func RenderStateBadge(styleSet styles.Styles, state style.State) string {
	icon, label, st := stateDescriptor(styleSet, state)
	return st.Render(fmt.Sprintf("%s %s", icon, label))
}

// RenderModeBadge renders the theme mode.
func RenderModeBadge(styleSet styles.Styles, m mode.Mode) string {
	if m.IsDark() {
		return styleSet.Info.Render("● Dark")
	}
	return styleSet.Warning.Render("○ Light")
}

func stateDescriptor(styleSet styles.Styles, state style.State) (string, string, lipgloss.Style) {
	switch state {
	case style.Idle:
		return "-", "Idle", styleSet.Muted
	case style.Hovered:
		return "~", "Hovered", styleSet.Info
	case style.Pressed:
		return ">", "Pressed", styleSet.Accent
	case style.Disabled:
		return "x", "Disabled", styleSet.Error
	case style.Focused:
		return "*", "Focused", styleSet.Focus
	default:
		return "?", state.String(), styleSet.Muted
	}
}
