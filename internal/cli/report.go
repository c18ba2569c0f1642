package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/roach88/ralint/internal/feedback"
)

// Reporter renders assessments as text.
type Reporter struct {
	W io.Writer
	// Color enables ANSI colouring of severities and headings.
	Color bool
	// All lists assets that have no issues as well.
	All bool
}

func (r *Reporter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Reporter) severity(s feedback.Severity) string {
	var c *color.Color
	switch s {
	case feedback.SeverityError:
		c = r.paint(color.FgRed, color.Bold)
	case feedback.SeverityWarn:
		c = r.paint(color.FgYellow)
	case feedback.SeverityInfo:
		c = r.paint(color.FgCyan)
	default:
		c = r.paint(color.FgGreen)
	}
	return c.Sprint(s)
}

// padded is severity, padded to the width of the longest severity name.
func (r *Reporter) padded(s feedback.Severity) string {
	return r.severity(s) + strings.Repeat(" ", max(0, 5-len(s.String())))
}

// Assessment writes one assessment under heading. Nothing is written for
// an assessment without issues unless All is set.
func (r *Reporter) Assessment(heading string, a feedback.Assessment) {
	if len(a.Issues()) == 0 && !r.All {
		return
	}
	fmt.Fprintf(r.W, "%s [%s]\n", r.paint(color.Bold).Sprint(heading), r.severity(a.Status()))
	for _, g := range a.Groups {
		if len(g.Issues) == 0 {
			continue
		}
		fmt.Fprintf(r.W, "  %s\n", g.Label)
		for _, is := range g.Issues {
			r.issue(is)
		}
	}
	fmt.Fprintln(r.W)
}

func (r *Reporter) issue(is feedback.Issue) {
	line := fmt.Sprintf("    %s %s", r.padded(is.Severity), is.Type.Name)
	if target := is.Target(); target != "" {
		line += " @ " + target
	}
	fmt.Fprintln(r.W, line)
	fmt.Fprintf(r.W, "          %s\n", is.Type.Description)
	if is.Detail != "" {
		fmt.Fprintf(r.W, "          %s\n", is.Detail)
	}
}

// Report writes every assessment of a set report followed by a summary.
func (r *Reporter) Report(rep *feedback.Report, failOn feedback.Severity) {
	for _, a := range rep.Achievements {
		r.Assessment(fmt.Sprintf("Achievement %d %q", a.ID, a.Title), a.Assessment)
	}
	for _, lb := range rep.Leaderboards {
		r.Assessment(fmt.Sprintf("Leaderboard %d %q", lb.ID, lb.Title), lb.Assessment)
	}
	r.Assessment("Code Notes", rep.Notes)
	r.Assessment("Rich Presence", rep.RichPresence)
	r.Assessment("Set", rep.Set)
	r.Summary(rep, failOn)
}

// Summary writes issue counts and the verdict against failOn.
func (r *Reporter) Summary(rep *feedback.Report, failOn feedback.Severity) {
	counts := rep.Count()
	parts := make([]string, 0, 3)
	total := 0
	for _, s := range []feedback.Severity{feedback.SeverityError, feedback.SeverityWarn, feedback.SeverityInfo} {
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
		total += counts[s]
	}
	fmt.Fprintf(r.W, "%d achievements, %d leaderboards: %d issues (%s)\n",
		len(rep.Achievements), len(rep.Leaderboards), total, strings.Join(parts, ", "))
	if rep.Fails(failOn) {
		fmt.Fprintf(r.W, "%s: issues at or above %s\n", r.paint(color.FgRed, color.Bold).Sprint("FAIL"), failOn)
		return
	}
	fmt.Fprintf(r.W, "%s: nothing at or above %s\n", r.paint(color.FgGreen).Sprint("PASS"), failOn)
}
