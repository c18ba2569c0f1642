package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/ralint/internal/feedback"
)

// RuleStatus is one row of the rules listing.
type RuleStatus struct {
	feedback.RuleInfo
	Enabled  bool   `json:"enabled"`
	Override string `json:"override,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	var catalog bool

	cmd := &cobra.Command{
		Use:           "rules",
		Short:         "List lint rules and whether the current config enables them",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, rootOpts, catalog)
		},
	}

	cmd.Flags().BoolVar(&catalog, "catalog", false, "list issue types instead of rules")

	return cmd
}

func runRules(cmd *cobra.Command, opts *RootOptions, catalog bool) error {
	out := opts.formatter(cmd)

	if catalog {
		types := feedback.Catalog()
		if out.JSON() {
			return out.Success(types)
		}
		tw := tabwriter.NewWriter(out.Writer, 0, 4, 2, ' ', 0)
		for _, it := range types {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Name, it.Severity, it.Description)
		}
		return tw.Flush()
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, err)
	}

	var rows []RuleStatus
	for _, ri := range feedback.Rules() {
		row := RuleStatus{RuleInfo: ri, Enabled: !ri.DefaultOff}
		if s, ok := cfg.Policy[ri.Name]; ok {
			row.Enabled = !s.Off
			switch {
			case s.Off:
				row.Override = "off"
			case s.Severity != nil:
				row.Override = s.Severity.String()
			default:
				row.Override = "on"
			}
		}
		rows = append(rows, row)
	}

	if out.JSON() {
		return out.Success(rows)
	}
	tw := tabwriter.NewWriter(out.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tSUITE\tENABLED\tOVERRIDE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", r.Name, r.Suite, r.Enabled, r.Override)
	}
	return tw.Flush()
}
