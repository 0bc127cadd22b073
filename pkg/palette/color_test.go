package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/prism/pkg/mode"
)

func TestScaleAlphaOnlyTouchesAlpha(t *testing.T) {
	blue := Resolve(TokenBlue, mode.Light)
	scaled := blue.ScaleAlpha(0.3)

	assert.Equal(t, blue.R, scaled.R)
	assert.Equal(t, blue.G, scaled.G)
	assert.Equal(t, blue.B, scaled.B)
	assert.InDelta(t, blue.A*0.3, scaled.A, 1e-12)
}

func TestScaleAlphaClampsFactor(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"negative", -2, 0},
		{"zero", 0, 0},
		{"half", 0.5, 0.5},
		{"one", 1, 1},
		{"above one", 4, 1},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := White.ScaleAlpha(tt.factor)
			assert.Equal(t, tt.want, got.A)
			assert.Equal(t, 1.0, got.R)
		})
	}
}

func TestScaleAlphaCompounds(t *testing.T) {
	c := RGBA(0.2, 0.4, 0.6, 0.5).ScaleAlpha(0.5)
	assert.InDelta(t, 0.25, c.A, 1e-12)
}

func TestDarken(t *testing.T) {
	blue := Resolve(TokenBlue, mode.Light)
	darker := blue.Darken(0.1)

	_, _, lBefore := blue.colorful().Hsl()
	_, _, lAfter := darker.colorful().Hsl()
	assert.InDelta(t, lBefore-0.1, lAfter, 1e-6)
	assert.Equal(t, blue.A, darker.A)

	assert.Equal(t, blue, blue.Darken(0))
	assert.Equal(t, blue, blue.Darken(-1))
	assert.Equal(t, Black, Black.Darken(0.5))
}

func TestContrasting(t *testing.T) {
	assert.Equal(t, White, Resolve(TokenBlue, mode.Dark).Contrasting())
	assert.Equal(t, White, Resolve(TokenRed, mode.Light).Contrasting())
	assert.Equal(t, Black, Resolve(TokenYellow, mode.Light).Contrasting())
	assert.Equal(t, Black, White.Contrasting())
}

func TestOver(t *testing.T) {
	half := Black.WithAlpha(0.5)
	got := half.Over(White)
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.Equal(t, 1.0, got.A)

	require.Equal(t, Black, Black.Over(White))
}

func TestHexAndString(t *testing.T) {
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#000000", Black.String())
	assert.Equal(t, "#00000080", Black.WithAlpha(0.5).String())
	assert.True(t, Transparent.IsTransparent())
	assert.False(t, White.IsTransparent())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#0a84ff")
	require.NoError(t, err)
	assert.Equal(t, "#0a84ff", c.String())
	assert.Equal(t, 1.0, c.A)

	c, err = ParseHex("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)
	assert.Equal(t, "#00000080", c.String())

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", c.String())

	for _, bad := range []string{"", "blue", "#12345", "#0a84ffzz"} {
		_, err := ParseHex(bad)
		assert.ErrorIs(t, err, ErrInvalidHex, bad)
	}
}
