// Package overlay loads named palette overlays. An overlay remaps a few
// tokens, typically the accent, on top of the built-in palette.
package overlay

import (
	"errors"
	"fmt"
	"sort"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

var (
	// ErrOverlayNameRequired is returned when an overlay has no name.
	ErrOverlayNameRequired = errors.New("overlay name is required")
	// ErrOverlayNoTokens is returned when an overlay remaps nothing.
	ErrOverlayNoTokens = errors.New("overlay must remap at least one token")
	// ErrOverlayNotFound is returned when an overlay is not found.
	ErrOverlayNotFound = errors.New("overlay not found")
)

// OverlayValidationError describes a validation error in an overlay.
type OverlayValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *OverlayValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("overlay %s[%s]: %s", e.Field, e.Key, e.Message)
	}
	return fmt.Sprintf("overlay %s: %s", e.Field, e.Message)
}

// Overlay remaps palette tokens.
type Overlay struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Tokens      map[string]ColorPair `yaml:"tokens"`
	Source      string               `yaml:"-"` // file path or "builtin"

	remaps map[palette.Token]remap
}

type remap struct {
	light, dark       palette.Color
	hasLight, hasDark bool
}

// ColorPair holds hex values per mode. An empty value keeps the base colour
// for that mode.
type ColorPair struct {
	Light string `yaml:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty"`
}

// Validate checks token names and colours and prepares the overlay for use.
func (o *Overlay) Validate() error {
	if o.Name == "" {
		return ErrOverlayNameRequired
	}
	if len(o.Tokens) == 0 {
		return ErrOverlayNoTokens
	}

	remaps := make(map[palette.Token]remap, len(o.Tokens))
	for _, key := range sortedKeys(o.Tokens) {
		value := o.Tokens[key]
		token, err := palette.ParseToken(key)
		if err != nil {
			return &OverlayValidationError{Field: "tokens", Key: key, Message: "unknown token"}
		}
		if value.Light == "" && value.Dark == "" {
			return &OverlayValidationError{Field: "tokens", Key: key, Message: "light or dark is required"}
		}

		var r remap
		if value.Light != "" {
			if r.light, err = palette.ParseHex(value.Light); err != nil {
				return &OverlayValidationError{Field: "tokens", Key: key, Message: err.Error()}
			}
			r.hasLight = true
		}
		if value.Dark != "" {
			if r.dark, err = palette.ParseHex(value.Dark); err != nil {
				return &OverlayValidationError{Field: "tokens", Key: key, Message: err.Error()}
			}
			r.hasDark = true
		}
		if _, dup := remaps[token]; dup {
			return &OverlayValidationError{Field: "tokens", Key: key, Message: "token remapped twice"}
		}
		remaps[token] = r
	}
	o.remaps = remaps
	return nil
}

// Remapped returns the tokens the overlay changes, in palette order.
func (o *Overlay) Remapped() []palette.Token {
	var tokens []palette.Token
	for _, t := range palette.AllTokens() {
		if _, ok := o.remaps[t]; ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Resolver wraps base so remapped tokens resolve to the overlay colours.
// Base is used for every other token, and for a mode the overlay leaves
// empty.
func (o *Overlay) Resolver(base palette.Resolver) palette.Resolver {
	if base == nil {
		base = palette.Resolve
	}
	remaps := o.remaps
	return func(t palette.Token, m mode.Mode) palette.Color {
		r, ok := remaps[t]
		switch {
		case !ok:
			return base(t, m)
		case m.IsDark() && r.hasDark:
			return r.dark
		case !m.IsDark() && r.hasLight:
			return r.light
		default:
			return base(t, m)
		}
	}
}

// Options returns builder options applying the overlay, optionally on top of
// the high-contrast palette.
func (o *Overlay) Options(highContrast bool) []style.Option {
	base := palette.Resolve
	var opts []style.Option
	if highContrast {
		base = palette.ResolveAccessible
		opts = append(opts, style.WithHighContrast())
	}
	return append(opts, style.WithResolver(o.Resolver(base)))
}

func sortedKeys(m map[string]ColorPair) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
