package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/ralint/internal/feedback"
	"github.com/roach88/ralint/internal/loader"
	"github.com/roach88/ralint/internal/parser"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Inputs  loader.Inputs
	FailOn  string
	Rules   map[string]string
	Workers int
}

// CheckResult is the JSON payload of a check run.
type CheckResult struct {
	SetID  int                       `json:"set_id"`
	Title  string                    `json:"title"`
	Status feedback.Severity         `json:"status"`
	FailOn feedback.Severity         `json:"fail_on"`
	Failed bool                      `json:"failed"`
	Counts map[feedback.Severity]int `json:"counts"`
	Report *feedback.Report          `json:"report"`
	Config string                    `json:"config,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint an achievement set",
		Long: `Lint every achievement and leaderboard of a set, its code notes and its
rich presence script.

The set comes from a JSON export (--set), a local "-User.txt" file (--local),
or both; local assets replace exported ones with the same ID. Exits 1 when
any issue is at or above the --fail-on severity.`,
		Example: `  ralint check --set 1234.json --notes 1234-Notes.json --rich 1234-Rich.txt
  ralint check --local 1234-User.txt --fail-on warn --rule missing-delta=off`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Inputs.SetPath, "set", "", "achievement set JSON export")
	cmd.Flags().StringVar(&opts.Inputs.LocalPath, "local", "", "local achievements file (XXX-User.txt)")
	cmd.Flags().StringVar(&opts.Inputs.NotesPath, "notes", "", "code notes JSON")
	cmd.Flags().StringVar(&opts.Inputs.RichPath, "rich", "", "rich presence script")
	cmd.Flags().StringVar(&opts.FailOn, "fail-on", "", "lowest severity that fails the run (info|warn|error)")
	cmd.Flags().StringToStringVar(&opts.Rules, "rule", nil, "rule override as name=off|on|info|warn|error (repeatable)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "assets assessed concurrently (0: one per CPU)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	out := opts.formatter(cmd)

	if opts.Inputs.SetPath == "" && opts.Inputs.LocalPath == "" {
		return out.Fail(ExitCommandError, ErrCodeBadArg, errors.New("one of --set or --local is required"))
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, err)
	}
	if cfg.Path != "" {
		out.VerboseLog("Using config %s", cfg.Path)
	}

	failOn := cfg.FailOn
	if opts.FailOn != "" {
		if failOn, err = feedback.ParseSeverity(opts.FailOn); err != nil {
			return out.Fail(ExitCommandError, ErrCodeBadArg, fmt.Errorf("--fail-on: %w", err))
		}
		if failOn == feedback.SeverityPass {
			return out.Fail(ExitCommandError, ErrCodeBadArg, errors.New("--fail-on: must be info, warn or error"))
		}
	}

	overrides, err := feedback.NewPolicy(opts.Rules)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeBadArg, fmt.Errorf("--rule: %w", err))
	}
	policy := make(feedback.Policy, len(cfg.Policy)+len(overrides))
	for name, s := range cfg.Policy {
		policy[name] = s
	}
	for name, s := range overrides {
		policy[name] = s
	}

	bundle, err := loader.Load(opts.Inputs)
	if err != nil {
		return out.Fail(ExitCommandError, loadErrorCode(err), err)
	}
	out.VerboseLog("Loaded %d achievements, %d leaderboards, %d notes",
		len(bundle.Set.Achievements), len(bundle.Set.Leaderboards), len(bundle.Notes))

	analyzer := feedback.NewAnalyzer(policy)
	analyzer.Workers = cfg.Workers
	if opts.Workers > 0 {
		analyzer.Workers = opts.Workers
	}
	report, err := analyzer.Analyze(cmd.Context(), bundle.Set, bundle.Notes, bundle.Rich)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeGeneric, err)
	}

	failed := report.Fails(failOn)
	if out.JSON() {
		status := "ok"
		if failed {
			status = "fail"
		}
		err = out.Respond(CLIResponse{
			Status: status,
			Data: CheckResult{
				SetID:  bundle.Set.ID,
				Title:  bundle.Set.Title,
				Status: report.Status(),
				FailOn: failOn,
				Failed: failed,
				Counts: report.Count(),
				Report: report,
				Config: cfg.Path,
			},
			RunID: uuid.NewString(),
		})
		if err != nil {
			return err
		}
	} else {
		out.reporter().Report(report, failOn)
	}

	if failed {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: issues at or above %s", ErrCodeLintFailed, failOn))
	}
	return nil
}

// loadErrorCode classifies a loader error.
func loadErrorCode(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case parser.IsParseError(err):
		return ErrCodeParse
	default:
		return ErrCodeGeneric
	}
}
