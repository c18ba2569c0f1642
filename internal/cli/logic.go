package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ralint/internal/feedback"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/loader"
	"github.com/roach88/ralint/internal/notes"
	"github.com/roach88/ralint/internal/parser"
)

var logicModes = map[string]parser.Mode{
	"auto":    parser.ModeAuto,
	"trigger": parser.ModeTrigger,
	"value":   parser.ModeValue,
}

// LogicResult is the JSON payload of the logic command.
type LogicResult struct {
	Logic      *ir.Logic           `json:"logic"`
	Assessment feedback.Assessment `json:"assessment"`
}

// NewLogicCommand creates the logic command.
func NewLogicCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		mode      string
		notesPath string
	)

	cmd := &cobra.Command{
		Use:   "logic <definition>",
		Short: "Explain and lint a single logic definition",
		Long: `Parse a trigger or value definition, print it one requirement per
line, and run the logic rules over it.`,
		Example: `  ralint logic '0xH001234=1_d0xH001234=0'
  ralint logic --mode value 'M:0xX000010*2' --notes notes.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogic(cmd, rootOpts, args[0], mode, notesPath)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "auto", "how to read the definition (auto|trigger|value)")
	cmd.Flags().StringVar(&notesPath, "notes", "", "code notes JSON used by the note rules")

	return cmd
}

func runLogic(cmd *cobra.Command, opts *RootOptions, def, mode, notesPath string) error {
	out := opts.formatter(cmd)

	m, ok := logicModes[mode]
	if !ok {
		return out.Fail(ExitCommandError, ErrCodeBadArg, fmt.Errorf("invalid mode %q: must be auto, trigger or value", mode))
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, err)
	}

	var ns []notes.Note
	if notesPath != "" {
		f, err := os.Open(notesPath)
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodeNotFound, err)
		}
		defer f.Close()
		if ns, err = loader.LoadCodeNotes(f); err != nil {
			return out.Fail(ExitCommandError, ErrCodeParse, fmt.Errorf("%s: %w", notesPath, err))
		}
	}

	l, err := parser.ParseLogic(def, m)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeParse, err)
	}
	assessment := feedback.NewAnalyzer(cfg.Policy).AssessLogic(l, ns)

	if out.JSON() {
		return out.Success(LogicResult{Logic: l, Assessment: assessment})
	}

	writeLogic(out, l)
	out.reporter().Assessment("Assessment", assessment)
	return nil
}

// writeLogic prints each group with its requirements numbered from 1.
func writeLogic(out *OutputFormatter, l *ir.Logic) {
	for gi, g := range l.Groups {
		name := "Core"
		if gi > 0 {
			name = fmt.Sprintf("Alt %d", gi)
		}
		if l.Value {
			name = fmt.Sprintf("Value %d", gi+1)
		}
		fmt.Fprintln(out.Writer, name)
		for ri, r := range g {
			fmt.Fprintf(out.Writer, "  %2d  %-24s %s\n", ri+1, r.String(), strings.TrimSpace(r.Annotated()))
		}
	}
	fmt.Fprintln(out.Writer)
}
