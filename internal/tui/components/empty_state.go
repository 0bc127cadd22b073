// Package components provides reusable preview components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/prism/internal/tui/styles"
)

// EmptyState is a placeholder view: a title, an optional detail line and the
// keys that get the user out of it.
type EmptyState struct {
	Icon   string
	Title  string
	Detail string
	Keys   []KeyHint
}

// KeyHint pairs a key with the action it triggers.
type KeyHint struct {
	Key    string
	Action string
}

func (e EmptyState) heading() string {
	if e.Icon == "" {
		return e.Title
	}
	return e.Icon + "  " + e.Title
}

func (h KeyHint) render(styleSet styles.Styles) string {
	if h.Action == "" {
		return styleSet.Accent.Render(h.Key)
	}
	return styleSet.Accent.Render(h.Key) + " " + styleSet.Muted.Render(h.Action)
}

// Render draws the state over several lines.
func (e EmptyState) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Muted.Render(e.heading())}
	if e.Detail != "" {
		lines = append(lines, styleSet.Muted.Render(e.Detail))
	}
	if len(e.Keys) == 0 {
		return strings.Join(lines, "\n")
	}

	hints := make([]string, 0, len(e.Keys))
	for _, h := range e.Keys {
		hints = append(hints, h.render(styleSet))
	}
	lines = append(lines, "", styleSet.Text.Render("Keys: ")+strings.Join(hints, styleSet.Muted.Render(" | ")))
	return strings.Join(lines, "\n")
}

// RenderCompact draws the title and the first key hint on one line.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := styleSet.Muted.Render(e.heading())
	if len(e.Keys) > 0 {
		line += " " + styleSet.Muted.Render("(") + e.Keys[0].render(styleSet) + styleSet.Muted.Render(")")
	}
	return line
}

// EmptyVariantsFiltered is shown when the variant filter matches nothing.
func EmptyVariantsFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:   "?",
		Title:  fmt.Sprintf("No variants match '%s'", filter),
		Detail: "Press / to edit the filter or esc to clear it.",
		Keys:   []KeyHint{{Key: "tab", Action: "switch widget kind"}},
	}
}

// TerminalTooSmall is shown when the viewport cannot fit the preview.
func TerminalTooSmall(width, height, minWidth, minHeight int) EmptyState {
	return EmptyState{
		Title:  fmt.Sprintf("Terminal too small (%dx%d).", width, height),
		Detail: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Keys:   []KeyHint{{Key: "q", Action: "quit"}},
	}
}
