package style

import (
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// ruleKind selects one of the shared derivation rules for interactive widgets.
type ruleKind uint8

const (
	ruleFilled ruleKind = iota
	ruleTonal
	ruleTextOnly
	ruleNeutral
)

// ref names a colour in a rule table, either a token or a per-mode role.
type ref struct {
	token palette.Token
	role  palette.Role
}

func tokenRef(t palette.Token) ref { return ref{token: t} }

func roleRef(r palette.Role) ref { return ref{role: r} }

func (r ref) valid() bool {
	return r.token.Valid() || r.role.Valid()
}

func (b *Builder) resolveRef(r ref, m mode.Mode) palette.Color {
	if r.role.Valid() {
		return r.role.ResolveWith(b.resolve, m)
	}
	return b.color(r.token, m)
}

type shadowLevel struct {
	offsetY    float64
	blur       float64
	lightAlpha float64
	darkAlpha  float64
}

var shadowLevels = [...]shadowLevel{
	ElevationLow:    {offsetY: 1, blur: 3, lightAlpha: 0.12, darkAlpha: 0.3},
	ElevationMedium: {offsetY: 4, blur: 12, lightAlpha: 0.16, darkAlpha: 0.4},
}

func (b *Builder) shadow(e Elevation, m mode.Mode) Shadow {
	if e == ElevationNone || int(e) >= len(shadowLevels) {
		return Shadow{}
	}
	level := shadowLevels[e]
	alpha := level.lightAlpha
	if m.IsDark() {
		alpha = level.darkAlpha
	}
	return Shadow{
		Elevation: e,
		Color:     b.color(palette.TokenShadow, m).ScaleAlpha(alpha),
		OffsetY:   level.offsetY,
		Blur:      level.blur,
	}
}

// focusRing replaces the border with an accent ring. The radius is kept.
func (b *Builder) focusRing(border Border, m mode.Mode) Border {
	width := border.Width
	if width < FocusRingWidth {
		width = FocusRingWidth
	}
	return Border{
		Width:  width,
		Color:  b.color(palette.TokenAccent, m).ScaleAlpha(FocusRingAlpha),
		Radius: border.Radius,
	}
}

// filled: solid background with a contrasting label and a low shadow.
// Disabled keeps the hue and only lowers the layer opacity.
func (b *Builder) filled(base Spec, fill palette.Color, m mode.Mode, st State) Spec {
	s := base
	s.Background = fill
	s.Foreground = fill.Contrasting()
	s.Shadow = b.shadow(ElevationLow, m)

	switch st {
	case Idle:
	case Hovered:
		s.Background = fill.Darken(HoverDarken)
	case Pressed:
		s.Background = fill.Darken(PressedDarken)
		s.Shadow = Shadow{}
	case Disabled:
		s.Opacity = DisabledOpacity
		s.Shadow = Shadow{}
	case Focused:
		s.Border = b.focusRing(s.Border, m)
	}
	return s
}

// tonalDelta is the darkening applied by the tonal and neutral rules.
func tonalDelta(st State) float64 {
	switch st {
	case Hovered:
		return HoverDarken * TonalScale
	case Pressed:
		return PressedDarken * TonalScale
	}
	return 0
}

// tonal: tint behind an outline and label of the same colour, no shadow.
func (b *Builder) tonal(base Spec, tone palette.Color, m mode.Mode, st State) Spec {
	delta := tonalDelta(st)
	s := base
	s.Foreground = tone
	s.Background = tone.ScaleAlpha(TintAlpha).Darken(delta)
	s.Border.Width = 1
	s.Border.Color = tone.Darken(delta)

	switch st {
	case Disabled:
		s.Opacity = DisabledOpacity
	case Focused:
		s.Border = b.focusRing(s.Border, m)
	}
	return s
}

// neutral: the tonal pattern over an opaque system fill with an inactive
// outline and the given label colour.
func (b *Builder) neutral(base Spec, label palette.Color, m mode.Mode, st State) Spec {
	delta := tonalDelta(st)
	s := base
	s.Foreground = label
	s.Background = palette.RoleSystemBackground.ResolveWith(b.resolve, m).Darken(delta)
	s.Border.Width = 1
	s.Border.Color = palette.RoleInactiveBorder.ResolveWith(b.resolve, m).Darken(delta)

	switch st {
	case Disabled:
		s.Opacity = DisabledOpacity
	case Focused:
		s.Border = b.focusRing(s.Border, m)
	}
	return s
}

// textOnly: no fill or outline. Links underline on hover; plain labels fade.
func (b *Builder) textOnly(base Spec, fg palette.Color, link bool, m mode.Mode, st State) Spec {
	s := base
	s.Background = palette.Transparent
	s.Foreground = fg

	switch st {
	case Idle:
	case Hovered:
		if link {
			s.Underline = true
		} else {
			s.Opacity = PlainHoverOpacity
		}
	case Pressed:
		if link {
			s.Underline = true
			s.Opacity = LinkPressedOpacity
		} else {
			s.Opacity = PlainPressedOpacity
		}
	case Disabled:
		s.Opacity = DisabledOpacity
	case Focused:
		s.Border = b.focusRing(s.Border, m)
	}
	return s
}
