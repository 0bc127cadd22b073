package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/prism/pkg/palette"
)

var paletteGroup string

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().StringVar(&paletteGroup, "group", "", "only show one group (system, gray, fill, text, state, platform, utility)")
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List palette tokens",
	Long: `List every semantic colour token with its light and dark values.

The RESOLVED column shows the value for the active theme mode, taking
--high-contrast and --overlay into account.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := paletteRows(paletteGroup)
		if err != nil {
			return err
		}
		return writePalette(cmd.OutOrStdout(), rows)
	},
}

// PaletteRow is one token as printed by `prism palette`.
type PaletteRow struct {
	Token             string `json:"token" yaml:"token"`
	Group             string `json:"group" yaml:"group"`
	Light             string `json:"light" yaml:"light"`
	Dark              string `json:"dark" yaml:"dark"`
	HighContrastLight string `json:"high_contrast_light,omitempty" yaml:"high_contrast_light,omitempty"`
	HighContrastDark  string `json:"high_contrast_dark,omitempty" yaml:"high_contrast_dark,omitempty"`
	Resolved          string `json:"resolved" yaml:"resolved"`
}

func paletteRows(group string) ([]PaletteRow, error) {
	var only palette.Group
	if group != "" {
		g, err := palette.ParseGroup(group)
		if err != nil {
			return nil, err
		}
		only = g
	}

	m := currentMode()
	resolve := currentResolver()

	var rows []PaletteRow
	for _, entry := range palette.All() {
		if only != "" && entry.Token.Group() != only {
			continue
		}
		row := PaletteRow{
			Token:    entry.Token.String(),
			Group:    string(entry.Token.Group()),
			Light:    entry.Light.String(),
			Dark:     entry.Dark.String(),
			Resolved: resolve(entry.Token, m).String(),
		}
		if entry.HasHighContrast {
			row.HighContrastLight = entry.HighContrast.Light.String()
			row.HighContrastDark = entry.HighContrast.Dark.String()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writePalette(out io.Writer, rows []PaletteRow) error {
	if IsStructuredOutput() {
		return WriteOutput(out, rows)
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		hc := "-"
		if row.HighContrastLight != "" {
			hc = fmt.Sprintf("%s / %s", row.HighContrastLight, row.HighContrastDark)
		}
		table = append(table, []string{row.Token, row.Group, row.Light, row.Dark, hc, row.Resolved})
	}
	return writeTable(out, []string{"TOKEN", "GROUP", "LIGHT", "DARK", "HIGH CONTRAST", "RESOLVED"}, table)
}
