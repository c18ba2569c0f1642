package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ralint/internal/feedback"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// NoteResult is the JSON payload of the note command.
type NoteResult struct {
	Note       notes.Note          `json:"note"`
	Pointer    bool                `json:"pointer"`
	Array      bool                `json:"array"`
	Assessment feedback.Assessment `json:"assessment"`
}

// NewNoteCommand creates the note command.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "note <text>",
		Short: "Show what ralint infers from a code note",
		Long: `Infer the size, type and enumerated values of a code note and run the
code note rules over it. Use "\n" in the text to separate lines.`,
		Example:       `  ralint note '[8-bit] Character\n0x00 = Mario\n0x01 = Luigi'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNote(cmd, rootOpts, args[0], address)
		},
	}

	cmd.Flags().StringVar(&address, "address", "0x0", "address the note is attached to")

	return cmd
}

func runNote(cmd *cobra.Command, opts *RootOptions, text, address string) error {
	out := opts.formatter(cmd)

	addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(address), "0x"), 16, 32)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeBadArg, fmt.Errorf("invalid address %q", address))
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, err)
	}

	n := notes.New(uint32(addr), strings.ReplaceAll(text, `\n`, "\n"), "")
	analyzer := feedback.NewAnalyzer(cfg.Policy)
	result := NoteResult{
		Note:       n,
		Pointer:    n.IsProbablePointer(),
		Array:      n.IsArray(),
		Assessment: analyzer.AssessNotes(nil, []notes.Note{n}),
	}

	if out.JSON() {
		return out.Success(result)
	}

	size := "unknown"
	if n.Type != ir.SizeUnknown {
		size = n.Type.String()
	}
	fmt.Fprintf(out.Writer, "Address: 0x%08x\n", n.Address)
	fmt.Fprintf(out.Writer, "Type:    %s\n", size)
	fmt.Fprintf(out.Writer, "Bytes:   %d\n", n.Size)
	fmt.Fprintf(out.Writer, "Pointer: %t\n", result.Pointer)
	fmt.Fprintf(out.Writer, "Array:   %t\n", result.Array)
	if len(n.Enums) > 0 {
		fmt.Fprintln(out.Writer, "Values:")
		for _, e := range n.Enums {
			fmt.Fprintf(out.Writer, "  %-6s %d = %s\n", e.Literal, e.Value, e.Meaning)
		}
	}
	fmt.Fprintln(out.Writer)
	out.reporter().Assessment("Assessment", result.Assessment)
	return nil
}
