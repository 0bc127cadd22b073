package style

import (
	"errors"
	"testing"

	"github.com/opencode-ai/prism/pkg/palette"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		variant string
		hue     palette.Hue
		size    Size
		want    Variant
	}{
		{"primary button", KindButton, "primary", 0, SizeMedium, Button{Style: ButtonPrimary}},
		{"tinted button", KindButton, "Tinted", palette.HueTeal, SizeSmall, Button{Style: ButtonTinted, Tint: palette.HueTeal, Size: SizeSmall}},
		{"card", KindContainer, "card", 0, 0, ContainerCard},
		{"floating", KindContainer, " floating ", 0, 0, ContainerFloating},
		{"colored text", KindText, "colored", palette.HueGreen, 0, Text{Style: TextColored, Color: palette.HueGreen}},
		{"search input", KindInput, "search", 0, 0, InputSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.kind, tt.variant, tt.hue, tt.size)
			if err != nil {
				t.Fatalf("ParseVariant() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseVariant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVariantUnknown(t *testing.T) {
	cases := []struct {
		kind Kind
		name string
	}{
		{KindButton, "ghost"},
		{KindContainer, "popover"},
		{KindText, "headline"},
		{KindInput, "multiline"},
	}
	for _, c := range cases {
		if _, err := ParseVariant(c.kind, c.name, 0, 0); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("ParseVariant(%s, %q) error = %v, want ErrUnknownVariant", c.kind, c.name, err)
		}
	}
}

func TestParseKindSizeState(t *testing.T) {
	if k, err := ParseKind("Container"); err != nil || k != KindContainer {
		t.Fatalf("ParseKind() = %v, %v", k, err)
	}
	if _, err := ParseKind("slider"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("ParseKind() error = %v, want ErrUnknownVariant", err)
	}

	if s, err := ParseSize(""); err != nil || s != SizeMedium {
		t.Fatalf("ParseSize(\"\") = %v, %v", s, err)
	}
	if s, err := ParseSize("large"); err != nil || s != SizeLarge {
		t.Fatalf("ParseSize(large) = %v, %v", s, err)
	}
	if _, err := ParseSize("huge"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("ParseSize(huge) error = %v", err)
	}

	if st, err := ParseState("hover"); err != nil || st != Hovered {
		t.Fatalf("ParseState(hover) = %v, %v", st, err)
	}
	if _, err := ParseState("dragging"); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("ParseState(dragging) error = %v", err)
	}
}

func TestVariantStrings(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{Button{Style: ButtonDanger, Size: SizeLarge}, "button/danger/large"},
		{Button{Style: ButtonTinted, Tint: palette.HuePink, Size: SizeSmall}, "button/tinted(pink)/small"},
		{ContainerSidebar, "container/sidebar"},
		{Text{Style: TextSecondary}, "text/secondary"},
		{Text{Style: TextColored, Color: palette.HueBrown}, "text/colored(brown)"},
		{InputInline, "input/inline"},
	}
	for _, tt := range tests {
		if got := tt.variant.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidateRejectsIncompleteSpecs(t *testing.T) {
	valid := Build(Button{Style: ButtonPrimary}, nil, Idle)
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	broken := []Spec{
		{},
		func() Spec { s := valid; s.Opacity = 0.1; return s }(),
		func() Spec { s := valid; s.Border.Width = 2; s.Border.Color = palette.Transparent; return s }(),
		func() Spec { s := valid; s.Shadow.Blur = 0; return s }(),
		func() Spec { s := valid; s.Padding.Vertical = -1; return s }(),
	}
	for i, spec := range broken {
		if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("case %d: Validate() error = %v, want ErrInvalidSpec", i, err)
		}
	}
}
