package harness

import "github.com/roach88/ralint/internal/feedback"

// Finding is the outcome for one asset of the report: its status and the
// issue type names found, in report order.
type Finding struct {
	Asset  string   `json:"asset"`
	Status string   `json:"status"`
	Issues []string `json:"issues"`

	// Fields holds, per issue, the field or component it was reported on.
	Fields []string `json:"fields,omitempty"`

	// Severities holds, per issue, the severity after rule overrides.
	Severities []string `json:"severities,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Findings lists every asset of the report in report order.
	Findings []Finding `json:"findings"`

	// Errors holds one message per failed assertion.
	Errors []string `json:"errors,omitempty"`

	// Report is the full analyzer output.
	Report *feedback.Report `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Findings: []Finding{},
		Errors:   []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Lookup returns the finding for asset, if the report has one.
func (r *Result) Lookup(asset string) (Finding, bool) {
	for _, f := range r.Findings {
		if f.Asset == asset {
			return f, true
		}
	}
	return Finding{}, false
}

func newFinding(asset string, a feedback.Assessment) Finding {
	f := Finding{Asset: asset, Status: a.Status().String(), Issues: []string{}}
	for _, is := range a.Issues() {
		f.Issues = append(f.Issues, is.Type.Name)
		f.Fields = append(f.Fields, is.Field)
		f.Severities = append(f.Severities, is.Severity.String())
	}
	return f
}
