package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/ralint/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Color   string // "auto" | "always" | "never"
	Config  string // explicit config file; searched for when empty
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidColors defines the allowed --color values.
var ValidColors = []string{"auto", "always", "never"}

// NewRootCommand creates the root command for the ralint CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ralint",
		Short: "ralint - RetroAchievements logic linter",
		Long: `Lint RetroAchievements achievement sets: trigger and value logic,
leaderboards, code notes, rich presence scripts and set design.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if !slices.Contains(ValidColors, opts.Color) {
				return fmt.Errorf("invalid color %q: must be one of %v", opts.Color, ValidColors)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "colour text output (auto|always|never)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "config file (default: search ./ralint.yaml, ./.ralint.yaml, ./ralint.cue, ~/.config/ralint/config.yaml)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewLogicCommand(opts))
	cmd.AddCommand(NewNoteCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}

// formatter builds the output formatter for a command run.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	useColor := !color.NoColor
	switch o.Color {
	case "always":
		useColor = true
	case "never":
		useColor = false
	}
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		Color:     useColor,
	}
}

func (f *OutputFormatter) reporter() *Reporter {
	return &Reporter{W: f.Writer, Color: f.Color, All: f.Verbose}
}

// loadConfig reads the configured file, or searches for one.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	if o.Config != "" {
		return config.Load(o.Config)
	}
	return config.Find()
}
