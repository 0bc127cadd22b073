package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
	"github.com/opencode-ai/prism/pkg/style/termstyle"
)

var (
	styleHue       string
	styleSize      string
	styleState     string
	styleAllStates bool
	styleSwatch    bool
)

func init() {
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(variantsCmd)

	styleCmd.Flags().StringVar(&styleHue, "hue", "blue", "hue for tinted buttons and colored text")
	styleCmd.Flags().StringVar(&styleSize, "size", "medium", "button size (small, medium, large)")
	styleCmd.Flags().StringVar(&styleState, "state", "", "interaction state (idle, hovered, pressed, disabled, focused)")
	styleCmd.Flags().BoolVar(&styleAllStates, "all-states", false, "resolve the variant in every interaction state")
	styleCmd.Flags().BoolVar(&styleSwatch, "swatch", false, "print a rendered sample after the fields")
}

var styleCmd = &cobra.Command{
	Use:   "style <kind> <variant>",
	Short: "Resolve a style variant",
	Long: `Resolve the render-ready style of one widget variant.

Kinds are button, container, text and input. Run 'prism variants' for
the variant names of each kind.`,
	Example: `  prism style button primary --state hovered
  prism style button tinted --hue pink --size small --mode Dark
  prism style container card --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := parseVariantArgs(args[0], args[1], styleHue, styleSize)
		if err != nil {
			return err
		}

		states := style.AllStates()
		if !styleAllStates {
			st, err := style.ParseState(styleState)
			if err != nil {
				return err
			}
			if styleState == "" {
				st = currentConfig().InitialState()
			}
			states = []style.State{st}
		}

		views := resolveStyles(currentBuilder(), variant, currentMode(), states)
		out := cmd.OutOrStdout()
		if err := writeStyles(out, views); err != nil {
			return err
		}
		if styleSwatch && !IsStructuredOutput() {
			return writeSwatches(out, currentBuilder(), variant, currentMode(), states)
		}
		return nil
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants [kind]",
	Short: "List style variants",
	Long:  "List every style variant, optionally restricted to one widget kind.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind *style.Kind
		if len(args) == 1 {
			k, err := style.ParseKind(args[0])
			if err != nil {
				return err
			}
			kind = &k
		}
		return writeVariants(cmd.OutOrStdout(), kind)
	},
}

func parseVariantArgs(kindName, variantName, hueName, sizeName string) (style.Variant, error) {
	kind, err := style.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	hue, err := palette.ParseHue(hueName)
	if err != nil {
		return nil, err
	}
	size, err := style.ParseSize(sizeName)
	if err != nil {
		return nil, err
	}
	return style.ParseVariant(kind, variantName, hue, size)
}

// StyleView is a resolved spec as printed by `prism style`.
type StyleView struct {
	Variant           string          `json:"variant" yaml:"variant"`
	Mode              mode.Mode       `json:"mode" yaml:"mode"`
	State             style.State     `json:"state" yaml:"state"`
	Background        string          `json:"background" yaml:"background"`
	Foreground        string          `json:"foreground" yaml:"foreground"`
	BorderWidth       float64         `json:"border_width" yaml:"border_width"`
	BorderColor       string          `json:"border_color" yaml:"border_color"`
	Radius            float64         `json:"radius" yaml:"radius"`
	Elevation         style.Elevation `json:"elevation" yaml:"elevation"`
	ShadowColor       string          `json:"shadow_color,omitempty" yaml:"shadow_color,omitempty"`
	ShadowOffsetY     float64         `json:"shadow_offset_y,omitempty" yaml:"shadow_offset_y,omitempty"`
	ShadowBlur        float64         `json:"shadow_blur,omitempty" yaml:"shadow_blur,omitempty"`
	PaddingVertical   float64         `json:"padding_vertical" yaml:"padding_vertical"`
	PaddingHorizontal float64         `json:"padding_horizontal" yaml:"padding_horizontal"`
	Opacity           float64         `json:"opacity" yaml:"opacity"`
	Underline         bool            `json:"underline" yaml:"underline"`
	Placeholder       string          `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Selection         string          `json:"selection,omitempty" yaml:"selection,omitempty"`
}

func newStyleView(v style.Variant, m mode.Mode, st style.State, spec style.Spec) StyleView {
	view := StyleView{
		Variant:           v.String(),
		Mode:              m,
		State:             st,
		Background:        spec.Background.String(),
		Foreground:        spec.Foreground.String(),
		BorderWidth:       spec.Border.Width,
		BorderColor:       spec.Border.Color.String(),
		Radius:            spec.Border.Radius,
		Elevation:         spec.Shadow.Elevation,
		PaddingVertical:   spec.Padding.Vertical,
		PaddingHorizontal: spec.Padding.Horizontal,
		Opacity:           spec.Opacity,
		Underline:         spec.Underline,
	}
	if spec.HasShadow() {
		view.ShadowColor = spec.Shadow.Color.String()
		view.ShadowOffsetY = spec.Shadow.OffsetY
		view.ShadowBlur = spec.Shadow.Blur
	}
	if v.Kind() == style.KindInput {
		view.Placeholder = spec.Placeholder.String()
		view.Selection = spec.Selection.String()
	}
	return view
}

func resolveStyles(b *style.Builder, v style.Variant, m mode.Mode, states []style.State) []StyleView {
	views := make([]StyleView, 0, len(states))
	for _, st := range states {
		views = append(views, newStyleView(v, m, st, b.Build(v, m, st)))
	}
	return views
}

func writeStyles(out io.Writer, views []StyleView) error {
	if IsStructuredOutput() {
		if len(views) == 1 {
			return WriteOutput(out, views[0])
		}
		return WriteOutput(out, views)
	}

	if len(views) == 1 {
		return writeFields(out, styleFields(views[0]))
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.State.String(),
			v.Background,
			v.Foreground,
			formatBorder(v),
			formatFloat(v.Opacity),
			formatYesNo(v.Underline),
			v.Elevation.String(),
		})
	}
	return writeTable(out, []string{"STATE", "BACKGROUND", "FOREGROUND", "BORDER", "OPACITY", "UNDERLINE", "SHADOW"}, rows)
}

func styleFields(v StyleView) [][2]string {
	fields := [][2]string{
		{"Variant", v.Variant},
		{"Mode", v.Mode.String()},
		{"State", v.State.String()},
		{"Background", v.Background},
		{"Foreground", v.Foreground},
		{"Border", formatBorder(v)},
		{"Radius", formatFloat(v.Radius)},
		{"Shadow", formatShadow(v)},
		{"Padding", fmt.Sprintf("%s x %s", formatFloat(v.PaddingVertical), formatFloat(v.PaddingHorizontal))},
		{"Opacity", formatFloat(v.Opacity)},
		{"Underline", formatYesNo(v.Underline)},
	}
	if v.Placeholder != "" {
		fields = append(fields, [2]string{"Placeholder", v.Placeholder}, [2]string{"Selection", v.Selection})
	}
	return fields
}

func writeSwatches(out io.Writer, b *style.Builder, v style.Variant, m mode.Mode, states []style.State) error {
	renderer := termstyle.ForMode(m)
	for _, st := range states {
		sample := renderer.Render(b.Build(v, m, st), st.String())
		if _, err := fmt.Fprintln(out, sample); err != nil {
			return err
		}
	}
	return nil
}

func writeVariants(out io.Writer, kind *style.Kind) error {
	var names []string
	for _, v := range style.AllVariants() {
		if kind != nil && v.Kind() != *kind {
			continue
		}
		names = append(names, v.String())
	}

	if IsStructuredOutput() {
		return WriteOutput(out, names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

func formatBorder(v StyleView) string {
	if v.BorderWidth == 0 {
		return "none"
	}
	return fmt.Sprintf("%s %s", formatFloat(v.BorderWidth), v.BorderColor)
}

func formatShadow(v StyleView) string {
	if v.ShadowColor == "" {
		return "none"
	}
	return fmt.Sprintf("%s (offset %s, blur %s, %s)", v.Elevation, formatFloat(v.ShadowOffsetY), formatFloat(v.ShadowBlur), v.ShadowColor)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
