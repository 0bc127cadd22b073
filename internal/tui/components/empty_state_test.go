package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/prism/internal/tui/styles"
)

func TestEmptyStateRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{Title: "No items found"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
	})

	t.Run("empty state with icon", func(t *testing.T) {
		es := EmptyState{Icon: "?", Title: "Nothing here"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "?  Nothing here") {
			t.Errorf("Expected icon and title in output, got: %s", result)
		}
	})

	t.Run("empty state with keys", func(t *testing.T) {
		es := EmptyState{
			Title:  "No variants",
			Detail: "Nothing to show.",
			Keys: []KeyHint{
				{Key: "tab", Action: "switch kind"},
				{Key: "esc"},
			},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Nothing to show.") {
			t.Errorf("Expected detail line, got: %s", result)
		}
		if !strings.Contains(result, "Keys:") {
			t.Errorf("Expected key header, got: %s", result)
		}
		if !strings.Contains(result, "tab switch kind") {
			t.Errorf("Expected key hint in output, got: %s", result)
		}
		if !strings.Contains(result, "esc") {
			t.Errorf("Expected bare key in output, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := styles.DefaultStyles()
	es := EmptyState{
		Title: "Empty",
		Keys:  []KeyHint{{Key: "esc", Action: "clear"}, {Key: "q"}},
	}
	result := es.RenderCompact(styleSet)
	if strings.Contains(result, "\n") {
		t.Errorf("Expected a single line, got: %s", result)
	}
	if !strings.Contains(result, "esc clear") {
		t.Errorf("Expected first key hint in compact output, got: %s", result)
	}
	if strings.Contains(result, "q") {
		t.Errorf("Expected only the first key hint, got: %s", result)
	}
}

func TestPrebuiltEmptyStates(t *testing.T) {
	styleSet := styles.DefaultStyles()

	filtered := EmptyVariantsFiltered("neon").Render(styleSet)
	for _, want := range []string{"neon", "Press /"} {
		if !strings.Contains(filtered, want) {
			t.Errorf("Expected %q in output, got: %s", want, filtered)
		}
	}

	small := TerminalTooSmall(40, 10, 60, 15).Render(styleSet)
	for _, want := range []string{"40x10", "60x15"} {
		if !strings.Contains(small, want) {
			t.Errorf("Expected %q in output, got: %s", want, small)
		}
	}
}
