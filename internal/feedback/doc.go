// Package feedback is the lint engine. Rules are pure functions grouped into
// suites per asset kind; each rule returns the issues it finds and never
// fails. An Analyzer runs the suites over a whole set and collects one
// Assessment per asset.
//
// Rule output can be reshaped with a Policy: a rule may be switched off,
// switched on when it is off by default, or have its severity overridden.
package feedback
