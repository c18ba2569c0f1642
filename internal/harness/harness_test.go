package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InlineAchievements(t *testing.T) {
	s := &Scenario{
		Name:        "inline",
		Description: "inline achievements",
		Notes:       []NoteDef{{Address: 0x10, Text: "[8-bit] Stage"}},
		Achievements: []AchievementDef{
			{ID: 1, Title: "First Steps", Description: "Finish the tutorial", Type: "progression", Logic: "0xH10=1_d0xH10=0_0xH11=5"},
			{ID: 2, Title: "Last Steps", Description: "Finish the game", Type: "win_condition", Logic: "0xH10=9"},
		},
		Assertions: []Assertion{
			{Type: AssertIssuePresent, Asset: "achievement:1", Issue: "missing-note"},
			{Type: AssertIssuePresent, Asset: "achievement:2", Issue: "one-condition"},
			{Type: AssertIssuePresent, Asset: "achievement:2", Issue: "missing-delta"},
			{Type: AssertStatus, Asset: "set", Severity: "pass"},
		},
	}

	result, err := Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.NotNil(t, result.Report)
	assert.Len(t, result.Report.Achievements, 2)

	var assets []string
	for _, f := range result.Findings {
		assets = append(assets, f.Asset)
	}
	assert.Equal(t, []string{"achievement:1", "achievement:2", "notes", "rich_presence", "set"}, assets)
}

func TestRun_RuleOverrides(t *testing.T) {
	s := &Scenario{
		Name:        "overrides",
		Description: "rules change the findings",
		Achievements: []AchievementDef{
			{ID: 1, Title: "Only One", Description: "One check", Type: "win_condition", Logic: "0xH10=1"},
		},
		Rules: map[string]string{"missing-delta": "off", "one-condition": "error"},
		Assertions: []Assertion{
			{Type: AssertIssueAbsent, Asset: "achievement:1", Issue: "missing-delta"},
			{Type: AssertIssuePresent, Asset: "achievement:1", Issue: "one-condition", Severity: "error"},
			{Type: AssertStatus, Asset: "achievement:1", Severity: "error"},
			{Type: AssertIssuePresent, Asset: "set", Issue: "no-progression"},
		},
	}

	result, err := Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_FailedAssertionsAreReported(t *testing.T) {
	s := &Scenario{
		Name:         "failing",
		Description:  "an assertion that does not hold",
		Achievements: []AchievementDef{{ID: 1, Title: "Clean", Description: "Clean", Logic: "0xH10=1_d0xH10=0_0xH11=1"}},
		Assertions:   []Assertion{{Type: AssertIssuePresent, Asset: "achievement:1", Issue: "bad-chain"}},
	}

	result, err := Run(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bad-chain")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scenario *Scenario
		want     string
	}{
		{
			name:     "bad logic",
			scenario: &Scenario{Achievements: []AchievementDef{{ID: 1, Title: "Broken", Logic: "J:0xH10=1"}}},
			want:     "achievement 1:",
		},
		{
			name:     "unknown format",
			scenario: &Scenario{Leaderboards: []LeaderboardDef{{ID: 2, Title: "Odd", Format: "FURLONGS"}}},
			want:     `unknown format "FURLONGS"`,
		},
		{
			name: "unknown rule",
			scenario: &Scenario{
				Achievements: []AchievementDef{{ID: 1, Title: "Fine", Logic: "0xH10=1"}},
				Rules:        map[string]string{"no-such-rule": "off"},
			},
			want: "invalid rules",
		},
		{
			name:     "missing set file",
			scenario: &Scenario{Inputs: Inputs{Set: "testdata/nope.json"}},
			want:     "failed to load inputs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.scenario)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, &Scenario{Achievements: []AchievementDef{{ID: 1, Title: "A", Logic: "0xH10=1"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InlineLeaderboard(t *testing.T) {
	s := &Scenario{
		Name:        "lb",
		Description: "inline leaderboard",
		Leaderboards: []LeaderboardDef{{
			ID: 4, Title: "High Score", Format: "score",
			Start: "0xH10=1_d0xH10=0_0xH11=1", Cancel: "0xH12=1_N:0xH13=1", Submit: "0xH14=1", Value: "M:0xH15",
		}},
		Assertions: []Assertion{
			{Type: AssertIssuePresent, Asset: "leaderboard:4", Issue: "bad-chain", Field: "CAN"},
		},
	}

	result, err := Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Report.Leaderboards, 1)
	assert.Equal(t, 4, result.Report.Leaderboards[0].ID)
}
