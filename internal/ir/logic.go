package ir

import "strings"

// Group is an ordered list of requirements. Group 0 of a Logic is the core
// group; the rest are alternates.
type Group []Requirement

// Logic is a parsed condition definition.
type Logic struct {
	Groups []Group `json:"groups"`
	// Value is true for value expressions (groups joined by "$"), false for
	// trigger logic (groups joined by "S").
	Value  bool   `json:"value"`
	Source string `json:"source"`
}

// Core returns the core group, or nil if the logic has no groups.
func (l *Logic) Core() Group {
	if len(l.Groups) == 0 {
		return nil
	}
	return l.Groups[0]
}

// Alts returns the alternate groups.
func (l *Logic) Alts() []Group {
	if len(l.Groups) < 2 {
		return nil
	}
	return l.Groups[1:]
}

// Requirements returns every requirement in group order.
func (l *Logic) Requirements() []Requirement {
	var out []Requirement
	for _, g := range l.Groups {
		out = append(out, g...)
	}
	return out
}

// Operands returns every operand in order, left before right.
func (l *Logic) Operands() []Operand {
	var out []Operand
	for _, g := range l.Groups {
		for _, r := range g {
			out = append(out, r.Operands()...)
		}
	}
	return out
}

// Flags returns the flags used by the logic in order, excluding FlagNone.
func (l *Logic) Flags() []Flag {
	var out []Flag
	for _, g := range l.Groups {
		for _, r := range g {
			if r.Flag != FlagNone {
				out = append(out, r.Flag)
			}
		}
	}
	return out
}

// HasFlag reports whether any requirement carries f.
func (l *Logic) HasFlag(f Flag) bool {
	for _, g := range l.Groups {
		if g.HasFlag(f) {
			return true
		}
	}
	return false
}

// HasFlag reports whether any requirement in the group carries f.
func (g Group) HasFlag(f Flag) bool {
	for _, r := range g {
		if r.Flag == f {
			return true
		}
	}
	return false
}

// HasMeasured reports whether the group contains a Measured or Measured%
// requirement.
func (g Group) HasMeasured() bool {
	return g.HasFlag(FlagMeasured) || g.HasFlag(FlagMeasuredPercent)
}

// Addresses returns the directly read addresses, in order with repeats.
// Operands of a requirement that follows an AddAddress are pointer offsets
// and are excluded.
func (l *Logic) Addresses() []uint32 {
	var out []uint32
	for _, g := range l.Groups {
		for i, r := range g {
			if i > 0 && g[i-1].Flag == FlagAddAddress {
				continue
			}
			for _, o := range r.Operands() {
				if o.IsAddress() {
					out = append(out, o.Address())
				}
			}
		}
	}
	return out
}

// MemoryLookups returns the distinct virtual addresses read by the logic, in
// first-seen order. Reads behind a pointer chain are prefixed with the chain,
// e.g. "0x00001234+16:0x00000008".
func (l *Logic) MemoryLookups() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, g := range l.Groups {
		var prefix strings.Builder
		for _, r := range g {
			if r.Flag == FlagAddAddress {
				prefix.WriteString(r.Left.String())
				if r.HasRight() {
					prefix.WriteString(string(r.Op))
					prefix.WriteString(r.Right.String())
				}
				prefix.WriteByte(':')
				continue
			}
			for _, o := range r.Operands() {
				if o.IsAddress() {
					add(prefix.String() + o.String())
				}
			}
			prefix.Reset()
		}
	}
	return out
}

// String renders the logic back into condition syntax.
func (l *Logic) String() string {
	sep := "S"
	if l.Value {
		sep = "$"
	}
	parts := make([]string, len(l.Groups))
	for i, g := range l.Groups {
		reqs := make([]string, len(g))
		for j, r := range g {
			reqs[j] = r.String()
		}
		parts[i] = strings.Join(reqs, "_")
	}
	return strings.Join(parts, sep)
}

// GuardedByResetNextIf reports whether the requirement at index i is
// preceded, within its chain, by a ResetNextIf. The walk stops at the first
// terminating requirement.
func (g Group) GuardedByResetNextIf(i int) bool {
	for j := i - 1; j >= 0; j-- {
		if g[j].Flag == FlagResetNextIf {
			return true
		}
		if g[j].IsTerminating() {
			return false
		}
	}
	return false
}
