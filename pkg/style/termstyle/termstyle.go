// Package termstyle paints style specs with lipgloss.
//
// Terminals have no alpha channel, shadows or sub-cell borders, so a
// Renderer flattens every colour onto a surface colour, maps padding from
// points to cells and chooses a border glyph set from the corner radius.
// Shadows are not drawn.
package termstyle

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

// Approximate size of one terminal cell in points.
const (
	cellWidth  = 7.0
	cellHeight = 14.0
)

// Renderer converts specs into lipgloss styles painted over a surface.
type Renderer struct {
	surface palette.Color
}

// New returns a Renderer that composites onto surface. Translucent surfaces
// are flattened onto black.
func New(surface palette.Color) Renderer {
	return Renderer{surface: surface.Over(palette.Black)}
}

// ForMode returns a Renderer over the window background of m.
func ForMode(m mode.Mode) Renderer {
	return New(palette.Resolve(palette.TokenBackground, m))
}

// Surface returns the opaque colour the renderer composites onto.
func (r Renderer) Surface() palette.Color {
	return r.surface
}

// Style converts spec into a lipgloss style.
func (r Renderer) Style(spec style.Spec) lipgloss.Style {
	backdrop := r.surface
	st := lipgloss.NewStyle()

	if spec.HasBackground() {
		backdrop = r.flatten(spec.Background, spec.Opacity, r.surface)
		st = st.Background(hex(backdrop))
	}
	st = st.Foreground(hex(r.flatten(spec.Foreground, spec.Opacity, backdrop)))

	if spec.Border.Visible() {
		st = st.Border(borderFor(spec.Border)).
			BorderForeground(hex(r.flatten(spec.Border.Color, spec.Opacity, r.surface)))
		if spec.HasBackground() {
			st = st.BorderBackground(hex(r.surface))
		}
	}

	st = st.Padding(cells(spec.Padding.Vertical, cellHeight), cells(spec.Padding.Horizontal, cellWidth))
	st = st.Underline(spec.Underline)
	st = st.Faint(spec.Opacity <= style.DisabledOpacity)
	return st
}

// Render paints text with spec.
func (r Renderer) Render(spec style.Spec, text string) string {
	return r.Style(spec).Render(text)
}

func (r Renderer) flatten(c palette.Color, opacity float64, backdrop palette.Color) palette.Color {
	return c.ScaleAlpha(opacity).Over(backdrop)
}

func borderFor(b style.Border) lipgloss.Border {
	switch {
	case b.Width >= style.FocusRingWidth:
		return lipgloss.ThickBorder()
	case b.Radius >= style.CornerRadius:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func cells(points, cell float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(points / cell))
}

func hex(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
