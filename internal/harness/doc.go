// Package harness runs lint scenarios: YAML fixtures that build a set,
// analyze it, and assert on the findings.
//
// # Scenario Format
//
//	name: pauselock_without_reset
//	description: "What this scenario checks"
//	inputs:
//	  set: fixtures/set.json       # relative to the scenario file
//	  notes: fixtures/notes.json
//	achievements:
//	  - id: 1
//	    title: Hold On
//	    description: Survive the storm
//	    type: progression
//	    logic: "0xH10=1_d0xH10=0_P:0xH20=1.1."
//	notes:
//	  - address: 0x10
//	    text: "[8-bit] Stage"
//	rules:
//	  missing-delta: "off"
//	assertions:
//	  - type: issue_present
//	    asset: achievement:1
//	    issue: pauselock-no-reset
//	  - type: status
//	    asset: set
//	    severity: pass
//
// Inline assets are added after the input files, replacing assets with the
// same ID.
//
// # Assertion Types
//
//   - issue_present: the asset has the issue (optionally on a field, at a severity)
//   - issue_absent: the asset does not have the issue
//   - issue_count: the asset has the issue exactly count times
//   - status: the asset's highest severity equals severity
//
// Assets are named achievement:<id>, leaderboard:<id>, notes,
// rich_presence or set.
//
// # Golden Files
//
// RunWithGolden compares a plain-text summary of every finding against
// testdata/golden/<name>.golden. Regenerate with -update.
package harness
