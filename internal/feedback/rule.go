package feedback

import (
	"fmt"
	"slices"
	"strings"
)

// Rule is a named check over one kind of input.
type Rule[T any] struct {
	Name string
	// DefaultOff rules only run when a Policy turns them on.
	DefaultOff bool
	Check      func(T) []Issue
}

// Suite is an ordered list of rules reported together under one label.
type Suite[T any] struct {
	Label string
	Rules []Rule[T]
}

// Run applies every enabled rule to in.
func (s Suite[T]) Run(in T, p Policy) IssueGroup {
	g := IssueGroup{Label: s.Label, Issues: []Issue{}}
	for _, r := range s.Rules {
		setting, configured := p[r.Name]
		if !setting.enabled(configured, r.DefaultOff) {
			continue
		}
		for _, is := range r.Check(in) {
			is.Rule = r.Name
			if setting.Severity != nil {
				is.Severity = *setting.Severity
			}
			g.Issues = append(g.Issues, is)
		}
	}
	return g
}

// RuleSetting overrides the behaviour of one rule.
type RuleSetting struct {
	Off bool
	// Severity replaces the catalog severity of every issue the rule emits.
	Severity *Severity
}

func (s RuleSetting) enabled(configured, defaultOff bool) bool {
	if configured {
		return !s.Off
	}
	return !defaultOff
}

// ParseRuleSetting accepts "off", "on", or a severity name.
func ParseRuleSetting(v string) (RuleSetting, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off":
		return RuleSetting{Off: true}, nil
	case "on":
		return RuleSetting{}, nil
	}
	sev, err := ParseSeverity(v)
	if err != nil {
		return RuleSetting{}, fmt.Errorf("rule setting: %w", err)
	}
	return RuleSetting{Severity: &sev}, nil
}

// Policy maps rule names to settings. Rules not listed use their defaults.
// The zero value is a valid, empty policy.
type Policy map[string]RuleSetting

// NewPolicy builds a policy from raw "rule: setting" pairs, rejecting
// unknown rule names.
func NewPolicy(raw map[string]string) (Policy, error) {
	p := make(Policy, len(raw))
	for name, v := range raw {
		if !slices.Contains(RuleNames(), name) {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		s, err := ParseRuleSetting(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p[name] = s
	}
	return p, nil
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	Name       string `json:"name"`
	Suite      string `json:"suite"`
	DefaultOff bool   `json:"default_off,omitempty"`
}

func (s Suite[T]) info() []RuleInfo {
	out := make([]RuleInfo, len(s.Rules))
	for i, r := range s.Rules {
		out[i] = RuleInfo{Name: r.Name, Suite: s.Label, DefaultOff: r.DefaultOff}
	}
	return out
}

// Rules describes every rule across all suites, without duplicates, in
// suite order.
func Rules() []RuleInfo {
	var out []RuleInfo
	seen := make(map[string]bool)
	lists := [][]RuleInfo{
		LogicSuite.info(),
		PresentationSuite.info(),
		NotesSuite.info(),
		DisplaySuite.info(),
		SetSuite.info(),
	}
	for _, infos := range lists {
		for _, ri := range infos {
			if !seen[ri.Name] {
				seen[ri.Name] = true
				out = append(out, ri)
			}
		}
	}
	return out
}

// RuleNames lists the names from Rules.
func RuleNames() []string {
	rules := Rules()
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Name
	}
	return out
}
