package style

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// Builder composes the palette, the mode resolver and the variant rules.
// A Builder is immutable once constructed and safe for concurrent use.
type Builder struct {
	resolve      palette.Resolver
	highContrast bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithHighContrast resolves the primary hues to their accessible
// counterparts.
func WithHighContrast() Option {
	return func(b *Builder) {
		b.highContrast = true
		b.resolve = palette.ResolveAccessible
	}
}

// WithResolver replaces token resolution, e.g. to remap the accent colour.
// The resolver must be a pure function.
func WithResolver(resolve palette.Resolver) Option {
	return func(b *Builder) {
		if resolve != nil {
			b.resolve = resolve
		}
	}
}

// NewBuilder returns a Builder over the default palette.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{resolve: palette.Resolve}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// Default returns the shared Builder over the default palette.
func Default() *Builder {
	return defaultBuilder
}

// HighContrast reports whether the builder uses accessible hues.
func (b *Builder) HighContrast() bool {
	return b.highContrast
}

// Build resolves v for the mode of src in state st. A nil src is Light.
// States do not apply to containers and non-link text.
func (b *Builder) Build(v Variant, src mode.Source, st State) Spec {
	m := modeOf(src)
	switch v := v.(type) {
	case Button:
		return b.BuildButton(v, m, st)
	case Container:
		return b.BuildContainer(v, m)
	case Text:
		return b.BuildText(v, m, st)
	case Input:
		return b.BuildInput(v, m, st)
	}
	panic(fmt.Sprintf("style: unsupported variant %T", v))
}

// Build resolves v with the default builder.
func Build(v Variant, src mode.Source, st State) Spec {
	return defaultBuilder.Build(v, src, st)
}

func (b *Builder) color(t palette.Token, m mode.Mode) palette.Color {
	return b.resolve(t, m)
}

func modeOf(src mode.Source) mode.Mode {
	if src == nil {
		return mode.Light
	}
	return src.Mode()
}
