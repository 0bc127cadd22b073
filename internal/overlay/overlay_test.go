package overlay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

func writeOverlay(t *testing.T, dir, file, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseOverlay(t *testing.T) {
	overlay, err := parseOverlay([]byte(`
name: " mint "
tokens:
  Accent:
    light: "#00c7be"
  link:
    dark: "#63e6e2"
`))
	require.NoError(t, err)
	assert.Equal(t, "mint", overlay.Name)
	assert.Equal(t, []palette.Token{palette.TokenAccent, palette.TokenLink}, overlay.Remapped())
}

func TestResolverRemapsPerMode(t *testing.T) {
	overlay, err := parseOverlay([]byte(`
name: mint
tokens:
  accent:
    light: "#00c7be"
`))
	require.NoError(t, err)

	resolve := overlay.Resolver(palette.Resolve)
	assert.Equal(t, "#00c7be", resolve(palette.TokenAccent, mode.Light).String())
	assert.Equal(t, palette.Resolve(palette.TokenAccent, mode.Dark), resolve(palette.TokenAccent, mode.Dark))
	assert.Equal(t, palette.Resolve(palette.TokenRed, mode.Light), resolve(palette.TokenRed, mode.Light))
}

func TestResolverKeepsHighContrastBase(t *testing.T) {
	overlay, err := parseOverlay([]byte("name: x\ntokens:\n  accent:\n    dark: \"#ffffff\"\n"))
	require.NoError(t, err)

	b := style.NewBuilder(overlay.Options(true)...)
	assert.True(t, b.HighContrast())

	spec := b.Build(style.Button{Style: style.ButtonDanger}, mode.Dark, style.Idle)
	assert.Equal(t, palette.ResolveAccessible(palette.TokenRed, mode.Dark), spec.Background)

	focused := b.Build(style.InputStandard, mode.Dark, style.Focused)
	assert.Equal(t, palette.White, focused.Border.Color)
}

func TestOverlayValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing name", "tokens:\n  accent:\n    light: \"#fff\"\n", ErrOverlayNameRequired},
		{"no tokens", "name: empty\n", ErrOverlayNoTokens},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOverlay([]byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	invalid := []struct {
		name string
		body string
		key  string
	}{
		{"unknown token", "name: x\ntokens:\n  chartreuse:\n    light: \"#fff\"\n", "chartreuse"},
		{"empty pair", "name: x\ntokens:\n  accent: {}\n", "accent"},
		{"bad hex", "name: x\ntokens:\n  accent:\n    dark: \"blue\"\n", "accent"},
		{"duplicate", "name: x\ntokens:\n  accent:\n    dark: \"#fff\"\n  Accent:\n    light: \"#000\"\n", "accent"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOverlay([]byte(tt.body))
			var validation *OverlayValidationError
			require.True(t, errors.As(err, &validation), "error = %v", err)
			assert.Equal(t, tt.key, validation.Key)
		})
	}
}

func TestLoadBuiltinOverlays(t *testing.T) {
	overlays, err := LoadBuiltinOverlays()
	require.NoError(t, err)

	var names []string
	for _, o := range overlays {
		names = append(names, o.Name)
		assert.Equal(t, "builtin", o.Source)
		assert.NotEmpty(t, o.Remapped())
	}
	assert.Equal(t, []string{"graphite", "ocean", "rose"}, names)
}

func TestLoadOverlaysFromDir(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "b.yaml", "name: beta\ntokens:\n  accent:\n    light: \"#111111\"\n")
	writeOverlay(t, dir, "a.yml", "name: alpha\ntokens:\n  accent:\n    light: \"#222222\"\n")
	writeOverlay(t, dir, "notes.txt", "ignored")

	overlays, err := LoadOverlaysFromDir(dir)
	require.NoError(t, err)
	require.Len(t, overlays, 2)
	assert.Equal(t, "alpha", overlays[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.yml"), overlays[0].Source)

	missing, err := LoadOverlaysFromDir(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestFindPrefersConfigDir(t *testing.T) {
	configDir := t.TempDir()
	writeOverlay(t, filepath.Join(configDir, "overlays"), "ocean.yaml", "name: ocean\ntokens:\n  accent:\n    light: \"#123456\"\n")

	overlay, err := Find(configDir, "ocean")
	require.NoError(t, err)
	assert.NotEqual(t, "builtin", overlay.Source)
	assert.Equal(t, "#123456", overlay.Resolver(nil)(palette.TokenAccent, mode.Light).String())

	rose, err := Find(configDir, "rose")
	require.NoError(t, err)
	assert.Equal(t, "builtin", rose.Source)

	_, err = Find(configDir, "nope")
	assert.ErrorIs(t, err, ErrOverlayNotFound)
}

func TestFindByPath(t *testing.T) {
	path := writeOverlay(t, t.TempDir(), "custom.yaml", "name: custom\ntokens:\n  link:\n    light: \"#abcdef\"\n")

	overlay, err := Find("", path)
	require.NoError(t, err)
	assert.Equal(t, "custom", overlay.Name)
	assert.Equal(t, path, overlay.Source)
}
