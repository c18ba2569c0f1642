package feedback

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
	"github.com/roach88/ralint/internal/stats"
)

// AssetReport is the assessment of one achievement or leaderboard.
type AssetReport struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Assessment
}

// Report is the assessment of a whole set.
type Report struct {
	Achievements []AssetReport `json:"achievements"`
	Leaderboards []AssetReport `json:"leaderboards"`
	Notes        Assessment    `json:"notes"`
	RichPresence Assessment    `json:"rich_presence"`
	Set          Assessment    `json:"set"`
}

func (r *Report) all() []Assessment {
	out := make([]Assessment, 0, len(r.Achievements)+len(r.Leaderboards)+3)
	for _, a := range r.Achievements {
		out = append(out, a.Assessment)
	}
	for _, lb := range r.Leaderboards {
		out = append(out, lb.Assessment)
	}
	return append(out, r.Notes, r.RichPresence, r.Set)
}

// Status is the highest severity found anywhere in the report.
func (r *Report) Status() Severity {
	status := SeverityPass
	for _, a := range r.all() {
		status = max(status, a.Status())
	}
	return status
}

// Fails reports whether any issue is at or above threshold.
func (r *Report) Fails(threshold Severity) bool {
	return r.Status() >= threshold
}

// Count returns the number of issues at each severity.
func (r *Report) Count() map[Severity]int {
	counts := make(map[Severity]int)
	for _, a := range r.all() {
		for _, is := range a.Issues() {
			counts[is.Severity]++
		}
	}
	return counts
}

// Analyzer runs every suite over a set.
type Analyzer struct {
	Policy Policy
	// Workers bounds how many assets are assessed at once. Zero means
	// GOMAXPROCS.
	Workers int
}

// NewAnalyzer returns an analyzer using policy.
func NewAnalyzer(policy Policy) *Analyzer {
	return &Analyzer{Policy: policy}
}

func orEmpty(l *ir.Logic) *ir.Logic {
	if l == nil {
		return &ir.Logic{}
	}
	return l
}

// AssessLogic runs the logic suite over a bare definition.
func (a *Analyzer) AssessLogic(l *ir.Logic, ns []notes.Note) Assessment {
	l = orEmpty(l)
	return Assessment{
		Groups: []IssueGroup{LogicSuite.Run(LogicInput{Logic: l, Notes: ns}, a.Policy)},
		Stats:  stats.ForLogic(l),
	}
}

// AssessAchievement checks an achievement's trigger and text.
func (a *Analyzer) AssessAchievement(ach *asset.Achievement, ns []notes.Note) Assessment {
	logic := orEmpty(ach.Logic)
	return Assessment{
		Groups: []IssueGroup{
			LogicSuite.Run(LogicInput{Logic: logic, Notes: ns}, a.Policy),
			PresentationSuite.Run(ach, a.Policy),
		},
		Stats: stats.ForLogic(logic),
	}
}

// AssessLeaderboard checks all four components of a leaderboard, tagging
// each issue with its component, then its text. Start logic gets the full
// logic suite; the other components only the basic one.
func (a *Analyzer) AssessLeaderboard(lb *asset.Leaderboard, ns []notes.Note) Assessment {
	logic := IssueGroup{Label: LogicSuite.Label, Issues: []Issue{}}
	for _, c := range asset.Components {
		suite := BasicLogicSuite
		if c == asset.ComponentStart {
			suite = LogicSuite
		}
		g := suite.Run(LogicInput{Logic: orEmpty(lb.Component(c)), Notes: ns}, a.Policy)
		for _, is := range g.Issues {
			logic.Issues = append(logic.Issues, is.on(string(c)))
		}
	}
	return Assessment{
		Groups: []IssueGroup{logic, PresentationSuite.Run(lb, a.Policy)},
		Stats:  stats.ForLeaderboard(lb),
	}
}

// AssessNotes checks the code notes.
func (a *Analyzer) AssessNotes(set *asset.Set, ns []notes.Note) Assessment {
	return Assessment{
		Groups: []IssueGroup{NotesSuite.Run(ns, a.Policy)},
		Stats:  stats.ForNotes(set, ns),
	}
}

// AssessRichPresence checks a rich presence script. A nil script is
// assessed as an empty one.
func (a *Analyzer) AssessRichPresence(rp *asset.RichPresence, ns []notes.Note) Assessment {
	if rp == nil {
		rp = asset.NewRichPresence()
	}
	return Assessment{
		Groups: []IssueGroup{DisplaySuite.Run(DisplayInput{RP: rp, Notes: ns}, a.Policy)},
		Stats:  stats.ForDisplay(rp),
	}
}

// AssessSet checks the set as a whole.
func (a *Analyzer) AssessSet(set *asset.Set, ns []notes.Note, rp *asset.RichPresence) Assessment {
	return Assessment{
		Groups: []IssueGroup{SetSuite.Run(set, a.Policy)},
		Stats:  stats.ForSet(set, ns, rp),
	}
}

// Analyze assesses every asset of set. Achievements and leaderboards are
// assessed concurrently; each result keeps the position of its asset.
func (a *Analyzer) Analyze(ctx context.Context, set *asset.Set, ns []notes.Note, rp *asset.RichPresence) (*Report, error) {
	slog.Debug("analyzing set",
		"set", set.ID,
		"achievements", len(set.Achievements),
		"leaderboards", len(set.Leaderboards),
		"notes", len(ns))

	report := &Report{
		Achievements: make([]AssetReport, len(set.Achievements)),
		Leaderboards: make([]AssetReport, len(set.Leaderboards)),
	}

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ach := range set.Achievements {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			assessment := a.AssessAchievement(ach, ns)
			report.Achievements[i] = AssetReport{ID: ach.ID, Title: ach.Title, Kind: "achievement", Assessment: assessment}
			slog.Debug("assessed achievement", "id", ach.ID, "status", assessment.Status())
			return nil
		})
	}
	for i, lb := range set.Leaderboards {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			assessment := a.AssessLeaderboard(lb, ns)
			report.Leaderboards[i] = AssetReport{ID: lb.ID, Title: lb.Title, Kind: "leaderboard", Assessment: assessment}
			slog.Debug("assessed leaderboard", "id", lb.ID, "status", assessment.Status())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Notes = a.AssessNotes(set, ns)
	report.RichPresence = a.AssessRichPresence(rp, ns)
	report.Set = a.AssessSet(set, ns, rp)

	slog.Debug("analysis complete", "set", set.ID, "status", report.Status())
	return report, nil
}
