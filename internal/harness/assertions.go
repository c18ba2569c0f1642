package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails. It carries the
// asset's finding to help debug the failure.
type AssertionError struct {
	Type     string  // Assertion type for categorization
	Asset    string  // Asset the assertion was about
	Expected string  // Human-readable expected outcome
	Actual   string  // Human-readable actual outcome
	Finding  Finding // What the report holds for the asset
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s on %s\n", e.Type, e.Asset)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "\nFinding for %s [%s]:\n", e.Asset, e.Finding.Status)
	for i, name := range e.Finding.Issues {
		fmt.Fprintf(&buf, "  [%d] %s%s\n", i+1, name, fieldSuffix(e.Finding, i))
	}
	return buf.String()
}

func fieldSuffix(f Finding, i int) string {
	if i < len(f.Fields) && f.Fields[i] != "" {
		return " (" + f.Fields[i] + ")"
	}
	return ""
}

// matching returns the indexes of issues in f named issue, restricted to
// field when it is set.
func matching(f Finding, issue, field string) []int {
	var out []int
	for i, name := range f.Issues {
		if name != issue {
			continue
		}
		if field != "" && (i >= len(f.Fields) || f.Fields[i] != field) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func describe(a Assertion) string {
	if a.Field != "" {
		return fmt.Sprintf("%s on %s", a.Issue, a.Field)
	}
	return a.Issue
}

// assertIssuePresent checks that the asset has at least one matching issue
// and, when Severity is set, that one of them has that severity.
func assertIssuePresent(f Finding, a Assertion) error {
	idx := matching(f, a.Issue, a.Field)
	if len(idx) == 0 {
		return &AssertionError{
			Type:     AssertIssuePresent,
			Asset:    a.Asset,
			Expected: describe(a),
			Actual:   "not reported",
			Finding:  f,
		}
	}
	if a.Severity == "" {
		return nil
	}
	var got []string
	for _, i := range idx {
		if f.Severities[i] == a.Severity {
			return nil
		}
		got = append(got, f.Severities[i])
	}
	return &AssertionError{
		Type:     AssertIssuePresent,
		Asset:    a.Asset,
		Expected: fmt.Sprintf("%s at %s", describe(a), a.Severity),
		Actual:   "reported at " + strings.Join(got, ", "),
		Finding:  f,
	}
}

// assertIssueAbsent checks that no matching issue was reported.
func assertIssueAbsent(f Finding, a Assertion) error {
	if idx := matching(f, a.Issue, a.Field); len(idx) > 0 {
		return &AssertionError{
			Type:     AssertIssueAbsent,
			Asset:    a.Asset,
			Expected: "no " + describe(a),
			Actual:   fmt.Sprintf("reported %d time(s)", len(idx)),
			Finding:  f,
		}
	}
	return nil
}

// assertIssueCount checks the exact number of matching issues.
func assertIssueCount(f Finding, a Assertion) error {
	if n := len(matching(f, a.Issue, a.Field)); n != a.Count {
		return &AssertionError{
			Type:     AssertIssueCount,
			Asset:    a.Asset,
			Expected: fmt.Sprintf("%s exactly %d time(s)", describe(a), a.Count),
			Actual:   fmt.Sprintf("%d time(s)", n),
			Finding:  f,
		}
	}
	return nil
}

// assertStatus checks the asset's overall status.
func assertStatus(f Finding, a Assertion) error {
	if f.Status != a.Severity {
		return &AssertionError{
			Type:     AssertStatus,
			Asset:    a.Asset,
			Expected: a.Severity,
			Actual:   f.Status,
			Finding:  f,
		}
	}
	return nil
}

// EvaluateAssertions checks every assertion against the result and returns
// one message per failure.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		f, ok := result.Lookup(a.Asset)
		if !ok {
			errs = append(errs, fmt.Sprintf("assertion %d: asset %s not in report", i, a.Asset))
			continue
		}

		var err error
		switch a.Type {
		case AssertIssuePresent:
			err = assertIssuePresent(f, a)
		case AssertIssueAbsent:
			err = assertIssueAbsent(f, a)
		case AssertIssueCount:
			err = assertIssueCount(f, a)
		case AssertStatus:
			err = assertStatus(f, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return errs
}
