package feedback

import (
	"fmt"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// DisplayInput is a rich presence script together with the set's code
// notes.
type DisplayInput struct {
	RP    *asset.RichPresence
	Notes []notes.Note
}

// DisplaySuite checks a rich presence script.
var DisplaySuite = Suite[DisplayInput]{
	Label: "Logic & Design",
	Rules: []Rule[DisplayInput]{
		{Name: "rp-dynamic", Check: checkDynamicDisplay},
		{Name: "rp-notes", Check: checkDisplayNotes},
	},
}

func checkDynamicDisplay(in DisplayInput) []Issue {
	conditional, lookups := false, false
	for _, d := range in.RP.Display {
		conditional = conditional || d.Condition != nil
		lookups = lookups || len(d.Lookups) > 0
	}
	switch {
	case conditional:
		return nil
	case lookups:
		return []Issue{newIssue(NoConditionalDisplay, "")}
	default:
		return []Issue{newIssue(NoDynamicRP, "")}
	}
}

func displayNoteIssues(l *ir.Logic, ns []notes.Note, where string) []Issue {
	if l == nil {
		return nil
	}
	var out []Issue
	missingNotes(l, ns, func(_ ir.Requirement, addr uint32) {
		out = append(out, newIssue(MissingNoteRP,
			fmt.Sprintf("Missing note for %s: %s", where, displayHex(addr))).on(where))
	})
	mismatchedNotes(l, ns, func(r ir.Requirement, o ir.Operand, n *notes.Note) {
		out = append(out, newIssue(TypeMismatch, fmt.Sprintf(
			"Accessing %s in %s as %s. Matching code note at %s is marked as %s. Correct accessor should be: %s%08x",
			displayHex(o.Address()), where, o.Size, displayHex(n.Address), n.Type, n.Type.Prefix(), n.Address)).
			at(r).on(where))
	})
	return out
}

func checkDisplayNotes(in DisplayInput) []Issue {
	if len(in.Notes) == 0 {
		return nil
	}
	var out []Issue
	for di, d := range in.RP.Display {
		out = append(out, displayNoteIssues(d.Condition, in.Notes,
			fmt.Sprintf("condition of display #%d", di+1))...)
		for _, look := range d.Lookups {
			out = append(out, displayNoteIssues(look.Calc, in.Notes,
				fmt.Sprintf("%s lookup of display #%d", look.Name, di+1))...)
		}
	}
	return out
}
