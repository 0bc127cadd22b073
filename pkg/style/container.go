package style

import (
	"fmt"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
)

// Container is a container variant. Containers have no interaction states.
type Container uint8

const (
	ContainerTransparent Container = iota
	ContainerCard
	// ContainerSheet is for modal sheets.
	ContainerSheet
	// ContainerGroup is for grouped lists.
	ContainerGroup
	ContainerSidebar
	ContainerAccent
	ContainerToolbar
	ContainerFloating

	containerCount
)

type containerRule struct {
	name       string
	background ref
	tint       float64
	// border is zero for borderless containers.
	border    palette.Token
	radius    float64
	elevation Elevation
	padding   Insets
}

var containerRules = [containerCount]containerRule{
	ContainerTransparent: {"transparent", tokenRef(palette.TokenClear), 1, 0, TinyCornerRadius, ElevationNone, Insets{}},
	ContainerCard:        {"card", roleRef(palette.RoleCardBackground), 1, 0, CornerRadius, ElevationLow, Insets{15, 15}},
	ContainerSheet:       {"sheet", tokenRef(palette.TokenSecondaryBackground), 1, 0, CornerRadius, ElevationMedium, Insets{15, 15}},
	ContainerGroup:       {"group", tokenRef(palette.TokenSecondaryBackground), 1, palette.TokenSeparator, SmallCornerRadius, ElevationNone, Insets{10, 10}},
	ContainerSidebar:     {"sidebar", tokenRef(palette.TokenTertiaryBackground), 1, palette.TokenSeparator, TinyCornerRadius, ElevationNone, Insets{10, 10}},
	ContainerAccent:      {"accent", tokenRef(palette.TokenAccent), TintAlpha, palette.TokenAccent, CornerRadius, ElevationNone, Insets{10, 10}},
	ContainerToolbar:     {"toolbar", tokenRef(palette.TokenSecondaryBackground), 1, palette.TokenSeparator, SmallCornerRadius, ElevationLow, Insets{8, 8}},
	ContainerFloating:    {"floating", tokenRef(palette.TokenBackground), 1, palette.TokenOpaqueSeparator, CornerRadius, ElevationMedium, Insets{10, 10}},
}

// Kind implements Variant.
func (Container) Kind() Kind { return KindContainer }

func (Container) variant() {}

// String returns e.g. "container/card".
func (c Container) String() string {
	if c >= containerCount {
		return fmt.Sprintf("Container(%d)", uint8(c))
	}
	return fmt.Sprintf("%s/%s", KindContainer, containerRules[c].name)
}

// ParseContainer reads a container variant name.
func ParseContainer(name string) (Container, error) {
	names := make([]string, containerCount)
	for i, rule := range containerRules {
		names[i] = rule.name
	}
	i, err := parseName(KindContainer, name, names)
	return Container(i), err
}

// AllContainers returns every container variant.
func AllContainers() []Container {
	containers := make([]Container, 0, containerCount)
	for c := Container(0); c < containerCount; c++ {
		containers = append(containers, c)
	}
	return containers
}

// BuildContainer resolves a container for mode m.
func (b *Builder) BuildContainer(v Container, m mode.Mode) Spec {
	rule := containerRules[v]
	s := Spec{
		Background: b.resolveRef(rule.background, m).ScaleAlpha(rule.tint),
		Foreground: b.color(palette.TokenLabel, m),
		Border:     Border{Radius: rule.radius},
		Shadow:     b.shadow(rule.elevation, m),
		Padding:    rule.padding,
		Opacity:    1,
	}
	if rule.border != 0 {
		s.Border.Width = 1
		s.Border.Color = b.color(rule.border, m)
	}
	return s
}
