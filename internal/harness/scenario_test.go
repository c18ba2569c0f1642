package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/pauselock_without_reset.yaml")
	require.NoError(t, err)

	assert.Equal(t, "pauselock_without_reset", s.Name)
	assert.NotEmpty(t, s.Description)
	require.Len(t, s.Achievements, 2)
	assert.Equal(t, "Hold Tight", s.Achievements[0].Title)
	assert.Equal(t, "progression", s.Achievements[0].Type)
	require.Len(t, s.Notes, 2)
	assert.Equal(t, uint32(0x10), s.Notes[0].Address)
	assert.Equal(t, "[8-bit] Stage", s.Notes[0].Text)
	assert.Contains(t, s.Rich, "Display:")
	assert.Len(t, s.Assertions, 4)
}

func TestLoadScenario_ResolvesInputs(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/duplicate_titles.yaml")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "scenarios", "fixtures", "set.json"), s.Inputs.Set)
	assert.Equal(t, filepath.Join("testdata", "scenarios", "fixtures", "notes.json"), s.Inputs.Notes)
	assert.Equal(t, map[string]string{"duplicate-text": "error"}, s.Rules)
}

func TestLoadScenarioWithBasePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "set.json"), []byte(`{"ID":1}`), 0644))

	path := writeScenario(t, t.TempDir(), `
name: based
description: "Inputs resolved against another directory"
inputs:
  set: set.json
assertions:
  - type: status
    asset: set
    severity: pass
`)
	s, err := LoadScenarioWithBasePath(path, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "set.json"), s.Inputs.Set)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_InvalidFixtures(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"no_assertions.yaml", "assertions list is required"},
		{"unknown_field.yaml", "failed to parse YAML"},
		{"missing_input.yaml", "input file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadScenario(filepath.Join("testdata", "invalid", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "missing name",
			content: `
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: status, asset: set, severity: pass}]
`,
			want: "name is required",
		},
		{
			name: "missing description",
			content: `
name: x
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: status, asset: set, severity: pass}]
`,
			want: "description is required",
		},
		{
			name: "no inputs",
			content: `
name: x
description: "x"
assertions: [{type: status, asset: set, severity: pass}]
`,
			want: "scenario has no inputs",
		},
		{
			name: "achievement without id",
			content: `
name: x
description: "x"
achievements: [{title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: status, asset: set, severity: pass}]
`,
			want: "achievements[0]: id and title are required",
		},
		{
			name: "leaderboard without title",
			content: `
name: x
description: "x"
leaderboards: [{id: 3}]
assertions: [{type: status, asset: set, severity: pass}]
`,
			want: "leaderboards[0]: id and title are required",
		},
		{
			name: "bad asset",
			content: `
name: x
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: status, asset: "badge:1", severity: pass}]
`,
			want: `invalid asset "badge:1"`,
		},
		{
			name: "issue_present without issue",
			content: `
name: x
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: issue_present, asset: "achievement:1"}]
`,
			want: "issue is required for issue_present",
		},
		{
			name: "negative count",
			content: `
name: x
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: issue_count, asset: "achievement:1", issue: missing-delta, count: -1}]
`,
			want: "count must be non-negative",
		},
		{
			name: "status without severity",
			content: `
name: x
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: status, asset: set}]
`,
			want: "severity is required for status",
		},
		{
			name: "unknown type",
			content: `
name: x
description: "x"
achievements: [{id: 1, title: A, description: a, logic: "0xH10=1"}]
assertions: [{type: trace_contains, asset: set}]
`,
			want: `unknown assertion type "trace_contains"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, t.TempDir(), tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDir(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"duplicate_titles", "leaderboard_components", "pauselock_without_reset"}, names)

	_, err = LoadDir(t.TempDir())
	assert.ErrorContains(t, err, "no scenarios found")
}

func TestValidAsset(t *testing.T) {
	for _, a := range []string{"notes", "rich_presence", "set", "achievement:12", "leaderboard:3"} {
		assert.True(t, validAsset(a), a)
	}
	for _, a := range []string{"", "achievement", "achievement:", "badge:1", "Set"} {
		assert.False(t, validAsset(a), a)
	}
}
