// Package cli implements the prism command line.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/prism/internal/config"
	"github.com/opencode-ai/prism/internal/logging"
	"github.com/opencode-ai/prism/internal/overlay"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

var (
	cfgFile        string
	modeFlag       string
	highContrast   bool
	overlayFlag    string
	logLevel       string
	jsonOutput     bool
	yamlOutput     bool
	nonInteractive bool

	appConfig     *config.Config
	activeOverlay *overlay.Overlay
)

// Version is set by the linker.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Semantic theme engine",
	Long: `prism resolves semantic colour tokens and widget style variants
for light and dark themes.

Inspect the palette, classify theme names, print resolved styles or open
an interactive preview of every variant.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput && yamlOutput {
			return errors.New("--json and --yaml are mutually exclusive")
		}
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/prism/config.yaml)")
	flags.StringVar(&modeFlag, "mode", "", "theme identifier, e.g. Light, Dark or \"Solarized Dark\"")
	flags.BoolVar(&highContrast, "high-contrast", false, "use high-contrast hue counterparts")
	flags.StringVar(&overlayFlag, "overlay", "", "palette overlay name or YAML file (see 'prism overlays')")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	flags.BoolVar(&yamlOutput, "yaml", false, "output in YAML format")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if strings.TrimSpace(modeFlag) != "" {
		cfg.Theme.Mode = modeFlag
	}
	if highContrast {
		cfg.Theme.HighContrast = true
	}
	if overlayFlag != "" {
		cfg.Theme.Overlay = overlayFlag
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LoggingOptions()); err != nil {
		return err
	}
	activeOverlay = nil
	if cfg.Theme.Overlay != "" {
		o, err := overlay.Find(config.DefaultConfigDir(), cfg.Theme.Overlay)
		if err != nil {
			return fmt.Errorf("overlay %q: %w", cfg.Theme.Overlay, err)
		}
		activeOverlay = o
	}

	log := logging.Component("cli")
	log.Debug().
		Str("mode", cfg.Mode().String()).
		Bool("high_contrast", cfg.Theme.HighContrast).
		Str("overlay", cfg.Theme.Overlay).
		Msg("configuration loaded")

	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func currentMode() mode.Mode {
	return currentConfig().Mode()
}

func currentBuilder() *style.Builder {
	cfg := currentConfig()
	if activeOverlay != nil {
		return style.NewBuilder(activeOverlay.Options(cfg.Theme.HighContrast)...)
	}
	return cfg.Builder()
}

func currentResolver() palette.Resolver {
	base := palette.Resolve
	if currentConfig().Theme.HighContrast {
		base = palette.ResolveAccessible
	}
	if activeOverlay != nil {
		return activeOverlay.Resolver(base)
	}
	return base
}

// IsJSONOutput reports whether --json was set.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsYAMLOutput reports whether --yaml was set.
func IsYAMLOutput() bool {
	return yamlOutput
}

// IsStructuredOutput reports whether output is machine readable.
func IsStructuredOutput() bool {
	return jsonOutput || yamlOutput
}

// WriteOutput encodes v as JSON or YAML.
func WriteOutput(out io.Writer, v any) error {
	if yamlOutput {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// PreflightError reports a precondition the environment does not meet.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "Error: %v\n", err)
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		if preflight.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(out, "Next: %s\n", preflight.NextStep)
		}
	}
}
