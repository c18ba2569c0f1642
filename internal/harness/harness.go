package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/feedback"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/loader"
	"github.com/roach88/ralint/internal/notes"
	"github.com/roach88/ralint/internal/parser"
)

// Run builds the scenario's inputs, analyzes them and evaluates the
// assertions. An error means the scenario itself could not be run; failed
// assertions are reported in the Result.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	bundle, err := loader.Load(loader.Inputs{
		SetPath:   scenario.Inputs.Set,
		LocalPath: scenario.Inputs.Local,
		NotesPath: scenario.Inputs.Notes,
		RichPath:  scenario.Inputs.Rich,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load inputs: %w", err)
	}
	if err := addInline(bundle, scenario); err != nil {
		return nil, err
	}

	policy, err := feedback.NewPolicy(scenario.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	slog.Debug("running scenario", "name", scenario.Name,
		"achievements", len(bundle.Set.Achievements),
		"leaderboards", len(bundle.Set.Leaderboards))

	report, err := feedback.NewAnalyzer(policy).Analyze(ctx, bundle.Set, bundle.Notes, bundle.Rich)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze: %w", err)
	}

	result := NewResult()
	result.Report = report
	for _, a := range report.Achievements {
		result.Findings = append(result.Findings, newFinding(fmt.Sprintf("achievement:%d", a.ID), a.Assessment))
	}
	for _, lb := range report.Leaderboards {
		result.Findings = append(result.Findings, newFinding(fmt.Sprintf("leaderboard:%d", lb.ID), lb.Assessment))
	}
	result.Findings = append(result.Findings,
		newFinding("notes", report.Notes),
		newFinding("rich_presence", report.RichPresence),
		newFinding("set", report.Set),
	)

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// addInline parses the scenario's inline assets into the bundle.
func addInline(b *loader.Bundle, s *Scenario) error {
	for _, def := range s.Achievements {
		logic, err := parser.ParseLogic(def.Logic, parser.ModeTrigger)
		if err != nil {
			return fmt.Errorf("achievement %d: %w", def.ID, err)
		}
		b.Set.AddAchievement(&asset.Achievement{
			Meta:   asset.Meta{ID: def.ID, Title: def.Title, Description: def.Description, State: asset.StateCore},
			Points: def.Points,
			Type:   def.Type,
			Logic:  logic,
		})
	}

	for _, def := range s.Leaderboards {
		lb := &asset.Leaderboard{
			Meta:          asset.Meta{ID: def.ID, Title: def.Title, Description: def.Description, State: asset.StateCore},
			LowerIsBetter: def.LowerIsBetter,
		}
		if def.Format != "" {
			f, ok := ir.FormatByType(def.Format)
			if !ok {
				return fmt.Errorf("leaderboard %d: unknown format %q", def.ID, def.Format)
			}
			lb.Format = f
		}
		components := map[asset.Component]string{
			asset.ComponentStart:  def.Start,
			asset.ComponentCancel: def.Cancel,
			asset.ComponentSubmit: def.Submit,
			asset.ComponentValue:  def.Value,
		}
		for _, c := range asset.Components {
			mode := parser.ModeTrigger
			if c == asset.ComponentValue {
				mode = parser.ModeValue
			}
			logic, err := parser.ParseLogic(components[c], mode)
			if err != nil {
				return fmt.Errorf("leaderboard %d %s: %w", def.ID, c, err)
			}
			lb.SetComponent(c, logic)
		}
		b.Set.AddLeaderboard(lb)
	}

	for _, def := range s.Notes {
		b.Notes = append(b.Notes, notes.New(def.Address, def.Text, def.Author))
	}

	if s.Rich != "" {
		rp, err := loader.ParseRichPresence(s.Rich)
		if err != nil {
			return fmt.Errorf("rich presence: %w", err)
		}
		b.Rich = rp
	}
	return nil
}
