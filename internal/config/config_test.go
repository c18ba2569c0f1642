package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ralint/internal/feedback"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, feedback.SeverityError, cfg.FailOn)
	assert.Empty(t, cfg.Policy)
	assert.Zero(t, cfg.Workers)
	assert.Empty(t, cfg.Path)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "ralint.yaml"))
	require.NoError(t, err)

	assert.Equal(t, feedback.SeverityWarn, cfg.FailOn)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, filepath.Join("testdata", "ralint.yaml"), cfg.Path)
	require.Len(t, cfg.Policy, 3)
	assert.True(t, cfg.Policy["missing-delta"].Off)
	assert.Equal(t, feedback.SeverityError, *cfg.Policy["one-condition"].Severity)
	assert.False(t, cfg.Policy["missing-enumeration"].Off)
}

func TestLoadCUE(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "ralint.cue"))
	require.NoError(t, err)

	assert.Equal(t, feedback.SeverityInfo, cfg.FailOn)
	assert.Zero(t, cfg.Workers)
	assert.True(t, cfg.Policy["title-case"].Off)
	assert.Equal(t, feedback.SeverityWarn, *cfg.Policy["bad-chain"].Severity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{file: "unknown_key.yaml", want: "colour"},
		{file: "bad_severity.yaml", want: "bad_severity.yaml"},
		{file: "bad_rule.yaml", want: "no-such-rule"},
		{file: "missing.yaml", want: "missing.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	f, err := ParseYAML(nil)
	require.NoError(t, err)
	cfg, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, feedback.SeverityError, cfg.FailOn)
}

func TestParseYAMLRejectsNegativeWorkers(t *testing.T) {
	_, err := ParseYAML([]byte("workers: -2\n"))
	assert.Error(t, err)
}

func TestParseCUERejectsPassThreshold(t *testing.T) {
	_, err := ParseCUE("x.cue", []byte(`fail_on: "pass"`))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := Find()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(".ralint.yaml", []byte("fail_on: info\n"), 0o644))
	cfg, err = Find()
	require.NoError(t, err)
	assert.Equal(t, feedback.SeverityInfo, cfg.FailOn)
	assert.Equal(t, ".ralint.yaml", cfg.Path)
}
