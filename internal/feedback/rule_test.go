package feedback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ralint/internal/parser"
)

func TestParseSeverity(t *testing.T) {
	for _, name := range []string{"pass", "info", "warn", "error"} {
		s, err := ParseSeverity(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	s, err := ParseSeverity(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarn, s)

	_, err = ParseSeverity("fatal")
	assert.Error(t, err)

	assert.True(t, SeverityPass < SeverityInfo && SeverityInfo < SeverityWarn && SeverityWarn < SeverityError)
}

func TestSeverityText(t *testing.T) {
	b, err := json.Marshal(map[string]Severity{"s": SeverityError})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"error"}`, string(b))

	var out struct{ S Severity }
	require.NoError(t, json.Unmarshal([]byte(`{"S":"info"}`), &out))
	assert.Equal(t, SeverityInfo, out.S)
}

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range Catalog() {
		assert.False(t, seen[it.Name], "duplicate issue type %s", it.Name)
		seen[it.Name] = true
		assert.NotEmpty(t, it.Description, it.Name)
	}
	assert.True(t, seen["missing-delta"])
	assert.True(t, seen["pausing-measured"])
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	assert.Len(t, names, 28)
	assert.Equal(t, "missing-delta", names[0])
	assert.Contains(t, names, "missing-enumeration")
	assert.Contains(t, names, "rp-notes")
	assert.Contains(t, names, "duplicate-text")
}

func TestRules(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, len(RuleNames()))
	byName := make(map[string]RuleInfo)
	for _, r := range rules {
		byName[r.Name] = r
	}
	assert.True(t, byName["missing-enumeration"].DefaultOff)
	assert.True(t, byName["always-true-false"].DefaultOff)
	assert.False(t, byName["bad-chain"].DefaultOff)
	assert.Equal(t, "Logic & Design", byName["bad-chain"].Suite)
	assert.Equal(t, "Code Notes", byName["note-empty"].Suite)
	assert.Equal(t, "Set Design", byName["duplicate-text"].Suite)
}

func TestParseRuleSetting(t *testing.T) {
	s, err := ParseRuleSetting("off")
	require.NoError(t, err)
	assert.True(t, s.Off)

	s, err = ParseRuleSetting("on")
	require.NoError(t, err)
	assert.False(t, s.Off)
	assert.Nil(t, s.Severity)

	s, err = ParseRuleSetting("error")
	require.NoError(t, err)
	require.NotNil(t, s.Severity)
	assert.Equal(t, SeverityError, *s.Severity)

	_, err = ParseRuleSetting("loud")
	assert.Error(t, err)
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(map[string]string{"bad-chain": "off", "missing-delta": "info"})
	require.NoError(t, err)
	assert.True(t, p["bad-chain"].Off)
	assert.Equal(t, SeverityInfo, *p["missing-delta"].Severity)

	_, err = NewPolicy(map[string]string{"no-such-rule": "off"})
	assert.ErrorContains(t, err, "no-such-rule")

	_, err = NewPolicy(map[string]string{"bad-chain": "sometimes"})
	assert.ErrorContains(t, err, "bad-chain")
}

func TestSuiteRunAppliesPolicy(t *testing.T) {
	in := LogicInput{Logic: parser.MustParseLogic("0xH1234=1_0=1")}

	g := LogicSuite.Run(in, nil)
	assert.Equal(t, "Logic & Design", g.Label)
	assert.Equal(t, []string{"missing-delta", "one-condition"}, typeNames(g.Issues))
	assert.Equal(t, "missing-delta", g.Issues[0].Rule)
	assert.Equal(t, SeverityWarn, g.Issues[0].Severity)

	p, err := NewPolicy(map[string]string{
		"missing-delta":     "off",
		"one-condition":     "error",
		"always-true-false": "on",
	})
	require.NoError(t, err)
	g = LogicSuite.Run(in, p)
	assert.Equal(t, []string{"one-condition", "unsatisfiable"}, typeNames(g.Issues))
	assert.Equal(t, SeverityError, g.Issues[0].Severity)
	assert.Equal(t, "always-true-false", g.Issues[1].Rule)
}

func TestSuiteRunWithoutIssues(t *testing.T) {
	g := SetSuite.Run(newSet(typed(1, "A", "a", "progression")), nil)
	assert.NotNil(t, g.Issues)
	assert.Empty(t, g.Issues)
}

func TestIssueJSON(t *testing.T) {
	l := parser.MustParseLogic("0xH1234=1")
	is := newIssue(MissingNote, "Address 0x00001234 missing note").at(l.Groups[0][0]).on("SUB")
	is.Rule = "missing-note"

	b, err := json.Marshal(is)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "missing-note", out["type"])
	assert.Equal(t, "warn", out["severity"])
	assert.Equal(t, "SUB 0xH1234=1", out["target"])
	assert.Equal(t, "Address 0x00001234 missing note", out["detail"])
	assert.Equal(t, MissingNote.Description, out["description"])
	assert.Len(t, out["references"], 1)
}

func TestAssessmentStatus(t *testing.T) {
	var empty Assessment
	assert.Equal(t, SeverityPass, empty.Status())
	assert.True(t, empty.Pass())

	a := Assessment{Groups: []IssueGroup{
		{Label: "one", Issues: []Issue{newIssue(ImproperDelta, "")}},
		{Label: "two", Issues: []Issue{newIssue(PausingMeasured, "")}},
	}}
	assert.Equal(t, SeverityInfo, a.Status())
	assert.True(t, a.Pass())
	assert.Len(t, a.Issues(), 2)

	a.Groups[1].Issues = append(a.Groups[1].Issues, newIssue(BadChain, ""))
	assert.Equal(t, SeverityError, a.Status())
	assert.False(t, a.Pass())
}
