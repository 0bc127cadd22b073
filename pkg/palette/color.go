package palette

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA colour. Every channel is in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// contrastThreshold is the CIE L* above which dark content reads better.
const contrastThreshold = 0.8

// Common colours.
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Transparent = Color{}
)

// RGB constructs an opaque colour from normalized channels.
func RGB(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: 1}
}

// RGBA constructs a colour from normalized channels and alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// ScaleAlpha multiplies the alpha channel by factor. The factor is clamped to
// [0, 1]; the colour channels are left unchanged.
func (c Color) ScaleAlpha(factor float64) Color {
	c.A = clamp01(c.A * clamp01(factor))
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// IsTransparent reports whether the colour paints nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Darken lowers HSL lightness by delta, keeping hue, saturation and alpha.
// Non-positive deltas return c unchanged.
func (c Color) Darken(delta float64) Color {
	if delta <= 0 {
		return c
	}
	h, s, l := c.colorful().Hsl()
	out := colorful.Hsl(h, s, clamp01(l-delta)).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Contrasting returns white or black, whichever reads better on c.
func (c Color) Contrasting() Color {
	l, _, _ := c.colorful().Lab()
	if l > contrastThreshold {
		return Black
	}
	return White
}

// Over composites c onto an opaque backdrop and returns an opaque colour.
func (c Color) Over(backdrop Color) Color {
	if c.A >= 1 {
		return c
	}
	out := backdrop.colorful().BlendRgb(c.colorful(), clamp01(c.A)).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: 1}
}

// ErrInvalidHex is returned when a colour string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex colour")

// ParseHex reads #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGBA(c.R, c.G, c.B, alpha), nil
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String returns #rrggbb for opaque colours and #rrggbbaa otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(clamp01(c.A)*255)))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
