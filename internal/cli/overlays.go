package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/prism/internal/config"
	"github.com/opencode-ai/prism/internal/overlay"
)

func init() {
	rootCmd.AddCommand(overlaysCmd)
}

var overlaysCmd = &cobra.Command{
	Use:   "overlays",
	Short: "List palette overlays",
	Long: `List palette overlays from $XDG_CONFIG_HOME/prism/overlays,
/usr/share/prism/overlays and the built-in set. The first overlay with a
given name wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlays, err := overlay.LoadFromSearchPaths(config.DefaultConfigDir())
		if err != nil {
			return err
		}
		return writeOverlays(cmd.OutOrStdout(), overlayRows(overlays))
	},
}

// OverlayRow is one overlay as printed by `prism overlays`.
type OverlayRow struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string   `json:"source" yaml:"source"`
	Tokens      []string `json:"tokens" yaml:"tokens"`
	Active      bool     `json:"active" yaml:"active"`
}

func overlayRows(overlays []*overlay.Overlay) []OverlayRow {
	active := ""
	if activeOverlay != nil {
		active = activeOverlay.Name
	}
	rows := make([]OverlayRow, 0, len(overlays))
	for _, o := range overlays {
		tokens := make([]string, 0, len(o.Tokens))
		for _, t := range o.Remapped() {
			tokens = append(tokens, t.String())
		}
		rows = append(rows, OverlayRow{
			Name:        o.Name,
			Description: o.Description,
			Source:      o.Source,
			Tokens:      tokens,
			Active:      o.Name == active,
		})
	}
	return rows
}

func writeOverlays(out io.Writer, rows []OverlayRow) error {
	if IsStructuredOutput() {
		return WriteOutput(out, rows)
	}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{row.Name, formatYesNo(row.Active), row.Source, strings.Join(row.Tokens, ", ")})
	}
	return writeTable(out, []string{"NAME", "ACTIVE", "SOURCE", "TOKENS"}, table)
}
