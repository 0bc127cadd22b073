package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencode-ai/prism/internal/tui/styles"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

func TestSample(t *testing.T) {
	tests := []struct {
		variant style.Variant
		want    string
	}{
		{style.Button{Style: style.ButtonDanger}, "Danger"},
		{style.ContainerCard, "container/card"},
		{style.Text{Style: style.TextSecondary}, "The quick brown fox"},
		{style.InputSearch, "Search..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sample(tt.variant), tt.variant.String())
	}
}

func TestRenderSwatchContainsNameAndSample(t *testing.T) {
	styleSet := styles.DefaultStyles()
	for _, v := range style.AllVariants() {
		out := RenderSwatch(styleSet, style.Default(), v, mode.Dark, style.Hovered, false)
		if !strings.Contains(out, v.String()) {
			t.Fatalf("swatch for %s missing name: %q", v, out)
		}
	}
}

func TestRenderTokenRow(t *testing.T) {
	out := RenderTokenRow(styles.DefaultStyles(), palette.TokenBlue, palette.Resolve, mode.Light)
	light, dark := palette.Get(palette.TokenBlue)
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, light.String())
	assert.Contains(t, out, dark.String())
}

func TestRenderStateBadge(t *testing.T) {
	styleSet := styles.DefaultStyles()
	for _, st := range style.AllStates() {
		out := RenderStateBadge(styleSet, st)
		label := strings.ToUpper(st.String()[:1]) + st.String()[1:]
		assert.Contains(t, out, label)
	}
	assert.Contains(t, RenderModeBadge(styleSet, mode.Dark), "Dark")
	assert.Contains(t, RenderModeBadge(styleSet, mode.Light), "Light")
}
