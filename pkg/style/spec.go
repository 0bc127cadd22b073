// Package style maps widget variants and interaction states to fully
// resolved, render-ready style records.
//
// Every widget kind has a closed set of variants. [Build] is a pure function
// of (variant, mode, state): it reads only immutable tables, keeps no state
// and may be called from any number of goroutines at once. Hosts that want
// caching can key it on the same tuple.
package style

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/prism/pkg/palette"
)

// Corner radii shared by every widget kind.
const (
	TinyCornerRadius  = 4.0
	SmallCornerRadius = 6.0
	CornerRadius      = 8.0
	LargeCornerRadius = 12.0
)

// State deltas and opacities used by the derivation rules.
const (
	// DisabledOpacity is the opacity floor of every disabled widget.
	DisabledOpacity = 0.4

	HoverDarken   = 0.06
	PressedDarken = 0.12
	// TonalScale scales the hover/pressed deltas for tinted, outlined buttons.
	TonalScale = 0.5
	// TintAlpha is the fill opacity of tonal buttons and accent containers.
	TintAlpha = 0.15

	FocusRingWidth = 2.0
	FocusRingAlpha = 0.6

	PlainHoverOpacity   = 0.8
	PlainPressedOpacity = 0.6
	LinkPressedOpacity  = 0.7

	InputBorderWidth     = 1.0
	InputFocusWidthDelta = 1.0
	SelectionAlpha       = palette.SelectionAlpha
)

// Elevation is the depth of a drop shadow.
type Elevation uint8

const (
	ElevationNone Elevation = iota
	ElevationLow
	ElevationMedium
)

// String returns the elevation name.
func (e Elevation) String() string {
	switch e {
	case ElevationNone:
		return "none"
	case ElevationLow:
		return "low"
	case ElevationMedium:
		return "medium"
	default:
		return fmt.Sprintf("Elevation(%d)", uint8(e))
	}
}

// MarshalText encodes the elevation name.
func (e Elevation) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes an elevation name.
func (e *Elevation) UnmarshalText(text []byte) error {
	for _, candidate := range []Elevation{ElevationNone, ElevationLow, ElevationMedium} {
		if candidate.String() == string(text) {
			*e = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: unknown elevation %q", ErrInvalidSpec, text)
}

// Border describes a stroke around the widget. A zero width means no border;
// Radius applies to the background fill either way.
type Border struct {
	Width  float64       `json:"width" yaml:"width"`
	Color  palette.Color `json:"color" yaml:"color"`
	Radius float64       `json:"radius" yaml:"radius"`
}

// Visible reports whether the border paints anything.
func (b Border) Visible() bool {
	return b.Width > 0 && !b.Color.IsTransparent()
}

// Shadow is a drop shadow below the widget. ElevationNone means no shadow.
type Shadow struct {
	Elevation Elevation     `json:"elevation" yaml:"elevation"`
	Color     palette.Color `json:"color" yaml:"color"`
	OffsetY   float64       `json:"offset_y" yaml:"offset_y"`
	Blur      float64       `json:"blur" yaml:"blur"`
}

// Insets is symmetric content padding.
type Insets struct {
	Vertical   float64 `json:"vertical" yaml:"vertical"`
	Horizontal float64 `json:"horizontal" yaml:"horizontal"`
}

// Spec is a fully resolved style.
//
// Colours are concrete values, never tokens. Opacity is a layer opacity the
// renderer applies to the whole widget on top of the per-colour alpha.
// Placeholder and Selection are only set for inputs.
type Spec struct {
	Background  palette.Color `json:"background" yaml:"background"`
	Foreground  palette.Color `json:"foreground" yaml:"foreground"`
	Border      Border        `json:"border" yaml:"border"`
	Shadow      Shadow        `json:"shadow" yaml:"shadow"`
	Padding     Insets        `json:"padding" yaml:"padding"`
	Opacity     float64       `json:"opacity" yaml:"opacity"`
	Underline   bool          `json:"underline" yaml:"underline"`
	Placeholder palette.Color `json:"placeholder" yaml:"placeholder"`
	Selection   palette.Color `json:"selection" yaml:"selection"`
}

// HasBackground reports whether the spec fills its bounds.
func (s Spec) HasBackground() bool {
	return !s.Background.IsTransparent()
}

// HasShadow reports whether the spec casts a shadow.
func (s Spec) HasShadow() bool {
	return s.Shadow.Elevation != ElevationNone
}

// ErrInvalidSpec is wrapped by every error returned from [Spec.Validate].
var ErrInvalidSpec = errors.New("invalid style spec")

// Validate checks that every field of the spec holds a usable value.
func (s Spec) Validate() error {
	switch {
	case s.Foreground.IsTransparent():
		return fmt.Errorf("%w: foreground is transparent", ErrInvalidSpec)
	case s.Opacity < DisabledOpacity || s.Opacity > 1:
		return fmt.Errorf("%w: opacity %.2f outside [%.2f, 1]", ErrInvalidSpec, s.Opacity, DisabledOpacity)
	case s.Border.Width < 0 || s.Border.Radius < 0:
		return fmt.Errorf("%w: negative border metrics", ErrInvalidSpec)
	case s.Border.Width > 0 && s.Border.Color.IsTransparent():
		return fmt.Errorf("%w: border has width but no color", ErrInvalidSpec)
	case s.Padding.Vertical < 0 || s.Padding.Horizontal < 0:
		return fmt.Errorf("%w: negative padding", ErrInvalidSpec)
	case s.HasShadow() && (s.Shadow.Blur <= 0 || s.Shadow.Color.IsTransparent()):
		return fmt.Errorf("%w: %s shadow has no blur or color", ErrInvalidSpec, s.Shadow.Elevation)
	case !s.HasShadow() && s.Shadow != (Shadow{}):
		return fmt.Errorf("%w: absent shadow carries values", ErrInvalidSpec)
	}
	return nil
}
