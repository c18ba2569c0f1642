package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a lint fixture: a set built from files and inline assets,
// the rule overrides to run it with, and the findings it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Inputs are files loaded the way the check command loads them.
	// Paths are relative to the scenario file.
	Inputs Inputs `yaml:"inputs,omitempty"`

	// Achievements, Leaderboards, Notes and Rich are added on top of Inputs.
	Achievements []AchievementDef `yaml:"achievements,omitempty"`
	Leaderboards []LeaderboardDef `yaml:"leaderboards,omitempty"`
	Notes        []NoteDef        `yaml:"notes,omitempty"`
	Rich         string           `yaml:"rich,omitempty"`

	// Rules overrides rule settings by name (off, on, or a severity).
	Rules map[string]string `yaml:"rules,omitempty"`

	// Assertions are checked against the report.
	Assertions []Assertion `yaml:"assertions"`
}

// Inputs mirrors the check command's file flags.
type Inputs struct {
	Set   string `yaml:"set,omitempty"`
	Local string `yaml:"local,omitempty"`
	Notes string `yaml:"notes,omitempty"`
	Rich  string `yaml:"rich,omitempty"`
}

// AchievementDef is an inline achievement.
type AchievementDef struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type,omitempty"`
	Points      int    `yaml:"points,omitempty"`
	Logic       string `yaml:"logic"`
}

// LeaderboardDef is an inline leaderboard. Components left empty are
// parsed as empty logic.
type LeaderboardDef struct {
	ID            int    `yaml:"id"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description,omitempty"`
	Format        string `yaml:"format,omitempty"`
	LowerIsBetter bool   `yaml:"lower_is_better,omitempty"`
	Start         string `yaml:"start"`
	Cancel        string `yaml:"cancel"`
	Submit        string `yaml:"submit"`
	Value         string `yaml:"value"`
}

// NoteDef is an inline code note.
type NoteDef struct {
	Address uint32 `yaml:"address"`
	Text    string `yaml:"text"`
	Author  string `yaml:"author,omitempty"`
}

// Assertion checks one asset of the report.
type Assertion struct {
	// Type is one of issue_present, issue_absent, issue_count or status.
	Type string `yaml:"type"`

	// Asset selects what is checked: "achievement:<id>",
	// "leaderboard:<id>", "notes", "rich_presence" or "set".
	Asset string `yaml:"asset"`

	// Issue is an issue type name (issue_present, issue_absent,
	// issue_count).
	Issue string `yaml:"issue,omitempty"`

	// Field optionally narrows issue matching to one field or leaderboard
	// component.
	Field string `yaml:"field,omitempty"`

	// Count is the expected number of matching issues (issue_count).
	Count int `yaml:"count,omitempty"`

	// Severity is the expected status (status) or, for issue_present, the
	// expected severity of the matching issue.
	Severity string `yaml:"severity,omitempty"`
}

// Assertion type constants.
const (
	AssertIssuePresent = "issue_present"
	AssertIssueAbsent  = "issue_absent"
	AssertIssueCount   = "issue_count"
	AssertStatus       = "status"
)

// LoadScenario reads and parses a scenario YAML file. Input paths are
// resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving input paths relative to basePath.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Unknown fields are rejected so typos like "assertion:" fail loudly.
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, p := range []*string{&scenario.Inputs.Set, &scenario.Inputs.Local, &scenario.Inputs.Notes, &scenario.Inputs.Rich} {
		if *p != "" && !filepath.IsAbs(*p) && basePath != "" {
			*p = filepath.Join(basePath, *p)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, in file name order.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", dir)
	}
	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		out = append(out, s)
	}
	return out, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Inputs.Set == "" && s.Inputs.Local == "" && len(s.Achievements) == 0 && len(s.Leaderboards) == 0 &&
		len(s.Notes) == 0 && s.Rich == "" && s.Inputs.Notes == "" && s.Inputs.Rich == "" {
		return fmt.Errorf("scenario has no inputs")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for _, p := range []string{s.Inputs.Set, s.Inputs.Local, s.Inputs.Notes, s.Inputs.Rich} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", p)
		}
	}

	for i, a := range s.Achievements {
		if a.ID == 0 || a.Title == "" {
			return fmt.Errorf("achievements[%d]: id and title are required", i)
		}
	}
	for i, lb := range s.Leaderboards {
		if lb.ID == 0 || lb.Title == "" {
			return fmt.Errorf("leaderboards[%d]: id and title are required", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if !validAsset(a.Asset) {
		return fmt.Errorf("assertions[%d]: invalid asset %q", index, a.Asset)
	}

	switch a.Type {
	case AssertIssuePresent, AssertIssueAbsent:
		if a.Issue == "" {
			return fmt.Errorf("assertions[%d]: issue is required for %s", index, a.Type)
		}
	case AssertIssueCount:
		if a.Issue == "" {
			return fmt.Errorf("assertions[%d]: issue is required for issue_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for issue_count", index)
		}
	case AssertStatus:
		if a.Severity == "" {
			return fmt.Errorf("assertions[%d]: severity is required for status", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

func validAsset(asset string) bool {
	switch asset {
	case "notes", "rich_presence", "set":
		return true
	}
	kind, id, ok := strings.Cut(asset, ":")
	return ok && (kind == "achievement" || kind == "leaderboard") && id != ""
}
