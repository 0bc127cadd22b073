package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/prism/internal/tui"
	"github.com/opencode-ai/prism/pkg/style"
)

var previewKind string

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewKind, "kind", "button", "widget kind shown first (button, container, text, input)")
}

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"ui"},
	Short:   "Launch the interactive style preview",
	Long:    "Browse every style variant and palette token in light and dark mode.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "preview requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use 'prism style' for plain output",
			NextStep: "prism style button primary --all-states",
		}
	}

	kind, err := style.ParseKind(previewKind)
	if err != nil {
		return err
	}

	cfg := currentConfig()
	return tui.Run(tui.Config{
		Mode:         cfg.Mode(),
		State:        cfg.InitialState(),
		Kind:         kind,
		HighContrast: cfg.Theme.HighContrast,
		Overlay:      activeOverlay,
	})
}
