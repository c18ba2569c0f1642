package feedback

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// Issue is a single finding. At most one of Requirement and Note is set;
// Field names the asset field or component the issue is about.
type Issue struct {
	Type        *IssueType
	Severity    Severity
	Rule        string
	Requirement *ir.Requirement
	Note        *notes.Note
	Field       string
	Detail      string
}

func newIssue(t *IssueType, detail string) Issue {
	return Issue{Type: t, Severity: t.Severity, Detail: detail}
}

func (i Issue) at(r ir.Requirement) Issue {
	i.Requirement = &r
	return i
}

func (i Issue) on(field string) Issue {
	i.Field = field
	return i
}

func (i Issue) about(n notes.Note) Issue {
	i.Note = &n
	return i
}

// Target describes what the issue points at, e.g. "SUB 0xH1234=1" or
// "note 0x00001234". It is empty for asset-wide issues.
func (i Issue) Target() string {
	switch {
	case i.Requirement != nil && i.Field != "":
		return i.Field + " " + i.Requirement.String()
	case i.Requirement != nil:
		return i.Requirement.String()
	case i.Note != nil:
		return fmt.Sprintf("note 0x%08x", i.Note.Address)
	default:
		return i.Field
	}
}

type issueJSON struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Rule        string   `json:"rule"`
	Target      string   `json:"target,omitempty"`
	Detail      string   `json:"detail,omitempty"`
	Description string   `json:"description"`
	References  []string `json:"references,omitempty"`
}

// MarshalJSON flattens the issue type into the issue.
func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(issueJSON{
		Type:        i.Type.Name,
		Severity:    i.Severity,
		Rule:        i.Rule,
		Target:      i.Target(),
		Detail:      i.Detail,
		Description: i.Type.Description,
		References:  i.Type.References,
	})
}

// IssueGroup is the output of one suite.
type IssueGroup struct {
	Label  string  `json:"label"`
	Issues []Issue `json:"issues"`
}

// Assessment is everything found for one asset.
type Assessment struct {
	Groups []IssueGroup `json:"groups"`
	Stats  any          `json:"stats,omitempty"`
}

// Issues returns every issue across groups.
func (a Assessment) Issues() []Issue {
	var out []Issue
	for _, g := range a.Groups {
		out = append(out, g.Issues...)
	}
	return out
}

// Status is the highest severity found, or SeverityPass when there is
// nothing to report.
func (a Assessment) Status() Severity {
	status := SeverityPass
	for _, is := range a.Issues() {
		status = max(status, is.Severity)
	}
	return status
}

// Pass reports whether nothing at warning level or above was found.
func (a Assessment) Pass() bool {
	return a.Status() < SeverityWarn
}
