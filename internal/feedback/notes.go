package feedback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// NotesSuite checks the code notes of a set.
var NotesSuite = Suite[[]notes.Note]{
	Label: "Code Notes",
	Rules: []Rule[[]notes.Note]{
		{Name: "note-empty", Check: checkEmptyNotes},
		{Name: "note-no-size", Check: checkNotesMissingSize},
		{Name: "note-enum-hex", Check: checkNotesEnumHex},
		{Name: "note-enum-too-large", Check: checkNotesEnumTooLarge},
	},
}

func checkEmptyNotes(ns []notes.Note) []Issue {
	var out []Issue
	for _, n := range ns {
		if strings.TrimSpace(n.Text) == "" {
			out = append(out, newIssue(NoteEmpty, "").about(n))
		}
	}
	return out
}

func checkNotesMissingSize(ns []notes.Note) []Issue {
	var out []Issue
	for _, n := range ns {
		if n.Type == ir.SizeUnknown && n.Size == 1 {
			out = append(out, newIssue(NoteNoSize, "Code note at "+displayHex(n.Address)).about(n))
		}
	}
	return out
}

var (
	enumNumberRE = regexp.MustCompile(`(?i)\b(0x)?([0-9a-f]{2,})\b`)
	hexDigitRE   = regexp.MustCompile(`(?i)[a-f]`)
)

// checkNotesEnumHex flags enumeration literals that contain hex digits but
// lack the 0x prefix.
func checkNotesEnumHex(ns []notes.Note) []Issue {
	var out []Issue
	for _, n := range ns {
		var found []string
		for _, e := range n.Enums {
			for _, m := range enumNumberRE.FindAllStringSubmatch(e.Literal, -1) {
				if m[1] == "" && hexDigitRE.MatchString(m[2]) {
					found = append(found, e.Literal)
				}
			}
		}
		if len(found) > 0 {
			out = append(out, newIssue(NoteEnumHex, fmt.Sprintf(
				"Code note at %s found potential hex values: %s",
				displayHex(n.Address), strings.Join(found, ", "))).about(n))
		}
	}
	return out
}

func checkNotesEnumTooLarge(ns []notes.Note) []Issue {
	var out []Issue
	for _, n := range ns {
		if n.Type == ir.SizeUnknown {
			continue
		}
		limit := n.Type.MaxValue()
		tooLarge := false
		for _, e := range n.Enums {
			if float64(e.Value) > limit {
				tooLarge = true
				break
			}
		}
		if tooLarge {
			out = append(out, newIssue(NoteEnumTooLarge, fmt.Sprintf(
				"The code note at %s is listed as %s, which has a max value of 0x%X",
				displayHex(n.Address), n.Type, uint64(limit))).about(n))
		}
	}
	return out
}
