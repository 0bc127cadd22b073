package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/prism/internal/tui/styles"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
	"github.com/opencode-ai/prism/pkg/style/termstyle"
)

const swatchLabelWidth = 30

// Sample returns the text a variant is demonstrated with.
func Sample(v style.Variant) string {
	switch v := v.(type) {
	case style.Button:
		return strings.ToUpper(v.Style.String()[:1]) + v.Style.String()[1:]
	case style.Container:
		return v.String()
	case style.Text:
		return "The quick brown fox"
	case style.Input:
		return "Search..."
	}
	return v.String()
}

// RenderSwatch renders one variant next to its name.
func RenderSwatch(styleSet styles.Styles, b *style.Builder, v style.Variant, m mode.Mode, st style.State, selected bool) string {
	spec := b.Build(v, m, st)
	sample := termstyle.ForMode(m).Render(spec, Sample(v))

	nameStyle := styleSet.Text
	if selected {
		nameStyle = styleSet.Selected
	}
	name := nameStyle.Width(swatchLabelWidth).Render(v.String())
	return lipgloss.JoinHorizontal(lipgloss.Center, name, sample)
}

// RenderTokenRow renders one palette token with its light and dark values.
func RenderTokenRow(styleSet styles.Styles, t palette.Token, resolve palette.Resolver, m mode.Mode) string {
	light := resolve(t, mode.Light)
	dark := resolve(t, mode.Dark)
	surface := termstyle.ForMode(m).Surface()

	chip := func(c palette.Color) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(c.Over(surface).Hex())).Render("    ")
	}

	return fmt.Sprintf("%s %s %s  %s",
		styleSet.Text.Width(swatchLabelWidth).Render(t.String()),
		chip(light), chip(dark),
		styleSet.Muted.Render(fmt.Sprintf("%s / %s", light, dark)),
	)
}
