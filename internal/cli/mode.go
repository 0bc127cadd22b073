package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/prism/pkg/mode"
)

func init() {
	rootCmd.AddCommand(modeCmd)
}

var modeCmd = &cobra.Command{
	Use:   "mode [identifier...]",
	Short: "Classify theme identifiers",
	Long: `Classify theme identifiers as light or dark.

"Light" and "Dark" map to themselves. Any other identifier is dark when it
contains "Dark" (case sensitive) and light otherwise. Without arguments the
configured theme is classified.`,
	Example: `  prism mode "Solarized Dark"
  prism mode Nord dark-blue --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{currentConfig().Theme.Mode}
		}
		return writeModes(cmd.OutOrStdout(), classifyModes(args))
	},
}

// ModeResult is one classified identifier.
type ModeResult struct {
	Identifier string    `json:"identifier" yaml:"identifier"`
	Mode       mode.Mode `json:"mode" yaml:"mode"`
}

func classifyModes(identifiers []string) []ModeResult {
	results := make([]ModeResult, 0, len(identifiers))
	for _, id := range identifiers {
		results = append(results, ModeResult{Identifier: id, Mode: mode.Resolve(id)})
	}
	return results
}

func writeModes(out io.Writer, results []ModeResult) error {
	if IsStructuredOutput() {
		return WriteOutput(out, results)
	}
	if len(results) == 1 {
		_, err := fmt.Fprintln(out, results[0].Mode)
		return err
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Identifier, r.Mode.String()})
	}
	return writeTable(out, []string{"IDENTIFIER", "MODE"}, rows)
}
