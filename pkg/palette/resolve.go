package palette

import "github.com/opencode-ai/prism/pkg/mode"

// Pair is a light/dark value pair.
type Pair struct {
	Light Color `json:"light" yaml:"light"`
	Dark  Color `json:"dark" yaml:"dark"`
}

// Pick returns the value for m.
func (p Pair) Pick(m mode.Mode) Color {
	if m.IsDark() {
		return p.Dark
	}
	return p.Light
}

// Entry is a palette row: a token's light and dark values and, for the
// primary hues, an accessible high-contrast counterpart.
type Entry struct {
	Token           Token `json:"-" yaml:"-"`
	Light           Color `json:"light" yaml:"light"`
	Dark            Color `json:"dark" yaml:"dark"`
	HighContrast    Pair  `json:"high_contrast,omitempty" yaml:"high_contrast,omitempty"`
	HasHighContrast bool  `json:"-" yaml:"-"`
}

// Pair returns the standard light/dark values.
func (e Entry) Pair() Pair {
	return Pair{Light: e.Light, Dark: e.Dark}
}

// Lookup returns the palette row for t. Invalid tokens yield a zero Entry.
func Lookup(t Token) Entry {
	if !t.Valid() {
		return Entry{Token: t}
	}
	entry := defaultEntries[t]
	entry.Token = t
	if hc := highContrastEntries[t]; hc != (Pair{}) {
		entry.HighContrast = hc
		entry.HasHighContrast = true
	}
	return entry
}

// Get returns the light and dark values of t.
func Get(t Token) (light, dark Color) {
	entry := Lookup(t)
	return entry.Light, entry.Dark
}

// Resolve returns the value of t for m: the dark value when m is Dark,
// otherwise the light value.
func Resolve(t Token, m mode.Mode) Color {
	return Lookup(t).Pair().Pick(m)
}

// ResolveAccessible is like Resolve but prefers the high-contrast
// counterpart when the token has one.
func ResolveAccessible(t Token, m mode.Mode) Color {
	entry := Lookup(t)
	if entry.HasHighContrast {
		return entry.HighContrast.Pick(m)
	}
	return entry.Pair().Pick(m)
}

// Resolver turns a token into a colour for a mode.
type Resolver func(Token, mode.Mode) Color

// All returns every palette row in declaration order.
func All() []Entry {
	entries := make([]Entry, 0, tokenCount-1)
	for _, t := range AllTokens() {
		entries = append(entries, Lookup(t))
	}
	return entries
}
