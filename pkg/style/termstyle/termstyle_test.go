package termstyle

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

func TestStyleOpaqueButton(t *testing.T) {
	r := ForMode(mode.Dark)
	spec := style.Build(style.Button{Style: style.ButtonPrimary}, mode.Dark, style.Idle)

	st := r.Style(spec)
	assert.Equal(t, lipgloss.Color(spec.Background.Hex()), st.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), st.GetForeground())
	assert.False(t, st.GetBorderTop())
	assert.False(t, st.GetUnderline())
	assert.False(t, st.GetFaint())
	assert.Equal(t, 2, st.GetPaddingLeft())
}

func TestStyleFlattensDisabledColors(t *testing.T) {
	r := ForMode(mode.Light)
	spec := style.Build(style.Button{Style: style.ButtonPrimary}, mode.Light, style.Disabled)

	st := r.Style(spec)
	want := spec.Background.ScaleAlpha(style.DisabledOpacity).Over(r.Surface())
	assert.Equal(t, lipgloss.Color(want.Hex()), st.GetBackground())
	assert.NotEqual(t, lipgloss.Color(spec.Background.Hex()), st.GetBackground())
	assert.True(t, st.GetFaint())
}

func TestStyleBorders(t *testing.T) {
	r := ForMode(mode.Light)

	card := r.Style(style.Build(style.ContainerFloating, mode.Light, style.Idle))
	assert.True(t, card.GetBorderTop())
	assert.Equal(t, lipgloss.RoundedBorder(), card.GetBorderStyle())

	focused := r.Style(style.Build(style.Button{Style: style.ButtonPrimary}, mode.Light, style.Focused))
	assert.Equal(t, lipgloss.ThickBorder(), focused.GetBorderStyle())

	group := r.Style(style.Build(style.ContainerGroup, mode.Light, style.Idle))
	assert.Equal(t, lipgloss.NormalBorder(), group.GetBorderStyle())
}

func TestRenderLinkHover(t *testing.T) {
	r := ForMode(mode.Light)
	spec := style.Build(style.Text{Style: style.TextLink}, mode.Light, style.Hovered)

	require.True(t, r.Style(spec).GetUnderline())
	assert.True(t, strings.Contains(r.Render(spec, "docs"), "docs"))
}

func TestNewFlattensTranslucentSurface(t *testing.T) {
	r := New(palette.White.WithAlpha(0))
	assert.Equal(t, palette.Black, r.Surface())
}
