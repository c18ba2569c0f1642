package feedback

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// LogicInput is a logic definition together with the set's code notes.
type LogicInput struct {
	Logic *ir.Logic
	Notes []notes.Note
}

// BasicLogicSuite is run on leaderboard cancel, submit and value logic.
var BasicLogicSuite = Suite[LogicInput]{
	Label: "Logic & Design",
	Rules: []Rule[LogicInput]{
		{Name: "missing-note", Check: checkMissingNotes},
		{Name: "type-mismatch", Check: checkMismatchedNotes},
		{Name: "bad-chain", Check: checkBadChains},
		{Name: "bad-prior", Check: checkPriors},
		{Name: "stale-addaddress", Check: checkStaleAddAddress},
		{Name: "negative-offset", Check: checkNegativeOffsets},
		{Name: "source-mod-measured", Check: checkSourceModMeasured},
		{Name: "hit-no-reset", Check: checkUnclearedHits},
		{Name: "pauselock-no-reset", Check: checkPauseLocks},
		{Name: "useless-pause", Check: checkUselessPause},
		{Name: "useless-reset", Check: checkUselessReset},
		{Name: "reset-hitcount-one", Check: checkResetHitcountOne},
		{Name: "useless-resetnextif", Check: checkUselessResetNextIf},
		{Name: "missing-enumeration", DefaultOff: true, Check: checkMissingEnumerations},
	},
}

// LogicSuite is run on achievement triggers and leaderboard start logic.
var LogicSuite = Suite[LogicInput]{
	Label: "Logic & Design",
	Rules: append([]Rule[LogicInput]{
		{Name: "missing-delta", Check: checkDeltas},
		{Name: "one-condition", Check: checkOneCondition},
		{Name: "always-true-false", DefaultOff: true, Check: checkConstantRequirements},
	}, BasicLogicSuite.Rules...),
}

func displayHex(addr uint32) string { return fmt.Sprintf("0x%08x", addr) }

const deltaAdvice = "Appropriate use of Delta includes all of the following conditions: " +
	"There should be a Delta that is not part of ResetIf, ResetNextIf, or PauseIf on a memory address " +
	"for which there is a corresponding Mem constraint on the same address in the core group or in all alt groups. " +
	"There should be no way for the achievement to be triggered without a Delta being involved in some way."

// pointerKey renders an AddAddress requirement as one link of a pointer
// chain prefix.
func pointerKey(r ir.Requirement) string {
	s := r.Left.String()
	if r.HasRight() {
		s += string(r.Op) + r.Right.String()
	}
	return s + ":"
}

// collectMem adds every Mem read in g, keyed by its pointer chain, to set.
func collectMem(g ir.Group, set map[string]bool) {
	prefix := ""
	for _, r := range g {
		if r.Flag == ir.FlagAddAddress {
			prefix += pointerKey(r)
			continue
		}
		for _, o := range r.Operands() {
			if o.Kind == ir.KindMem {
				set[prefix+o.String()] = true
			}
		}
		prefix = ""
	}
}

func isPauseOrReset(f ir.Flag) bool {
	return f == ir.FlagResetIf || f == ir.FlagResetNextIf || f == ir.FlagPauseIf
}

// usesDelta reports whether some chain in g reads a Delta of a location in
// mem and ends in something other than a pause or reset.
func usesDelta(g ir.Group, mem map[string]bool) bool {
	hasDelta, prefix := false, ""
	for _, r := range g {
		if r.Flag == ir.FlagAddAddress {
			prefix += pointerKey(r)
		} else {
			for _, o := range r.Operands() {
				if o.Kind == ir.KindDelta && mem[prefix+o.String()] {
					hasDelta = true
				}
			}
			prefix = ""
		}
		if r.IsTerminating() {
			if hasDelta && !isPauseOrReset(r.Flag) {
				return true
			}
			hasDelta = false
		}
	}
	return false
}

func checkDeltas(in LogicInput) []Issue {
	l := in.Logic
	anyDelta := false
	for _, o := range l.Operands() {
		if o.Kind == ir.KindDelta {
			anyDelta = true
			break
		}
	}
	if !anyDelta {
		return []Issue{newIssue(MissingDelta, deltaAdvice)}
	}

	core := make(map[string]bool)
	collectMem(l.Core(), core)

	qualifies := make([]bool, len(l.Groups))
	for gi, g := range l.Groups {
		mem := make(map[string]bool, len(core))
		for k := range core {
			mem[k] = true
		}
		collectMem(g, mem)
		qualifies[gi] = usesDelta(g, mem)
	}

	if qualifies[0] {
		return nil
	}
	if len(qualifies) > 1 {
		all := true
		for _, q := range qualifies[1:] {
			all = all && q
		}
		if all {
			return nil
		}
	}
	return []Issue{newIssue(ImproperDelta, deltaAdvice)}
}

func checkOneCondition(in LogicInput) []Issue {
	if in.Logic.Value || len(in.Logic.MemoryLookups()) > 1 {
		return nil
	}
	return []Issue{newIssue(OneCondition, "")}
}

// checkConstantRequirements flags standalone requirements whose outcome
// never changes. Groups holding a ResetIf or PauseIf are exempt from the
// always-false case: "0=1" is how such alt groups are kept from being true.
func checkConstantRequirements(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		guarded := g.HasFlag(ir.FlagResetIf) || g.HasFlag(ir.FlagPauseIf)
		for ri, r := range g {
			if r.Flag != ir.FlagNone || r.Hits > 0 {
				continue
			}
			if ri > 0 && g[ri-1].Flag.Chains() {
				continue
			}
			switch {
			case r.IsAlwaysTrue():
				out = append(out, newIssue(Unnecessary, "").at(r))
			case r.IsAlwaysFalse() && !guarded:
				out = append(out, newIssue(Unsatisfiable, "").at(r))
			}
		}
	}
	return out
}

// directReads calls fn for each address operand that is read directly,
// i.e. not as the offset of a pointer chain.
func directReads(g ir.Group, fn func(ri int, r ir.Requirement, o ir.Operand)) {
	for ri, r := range g {
		if ri > 0 && g[ri-1].Flag == ir.FlagAddAddress {
			continue
		}
		for _, o := range r.Operands() {
			if o.IsAddress() {
				fn(ri, r, o)
			}
		}
	}
}

// missingNotes yields each directly read address without a note, once per
// requirement.
func missingNotes(l *ir.Logic, ns []notes.Note, fn func(r ir.Requirement, addr uint32)) {
	for _, g := range l.Groups {
		lastReq, lastAddr := -1, uint32(0)
		directReads(g, func(ri int, r ir.Requirement, o ir.Operand) {
			if _, ok := notes.Lookup(ns, o.Address()); ok {
				return
			}
			if ri == lastReq && o.Address() == lastAddr {
				return
			}
			lastReq, lastAddr = ri, o.Address()
			fn(r, o.Address())
		})
	}
}

// mismatchedNotes yields each direct read whose size disagrees with the
// size of the note covering it. Partial reads never disagree.
func mismatchedNotes(l *ir.Logic, ns []notes.Note, fn func(r ir.Requirement, o ir.Operand, n *notes.Note)) {
	for _, g := range l.Groups {
		directReads(g, func(_ int, r ir.Requirement, o ir.Operand) {
			n, ok := notes.Lookup(ns, o.Address())
			if !ok || n.Type == ir.SizeUnknown || o.Size == ir.SizeUnknown || o.Size.Partial() {
				return
			}
			if o.Size != n.Type {
				fn(r, o, n)
			}
		})
	}
}

func checkMissingNotes(in LogicInput) []Issue {
	if len(in.Notes) == 0 {
		return nil
	}
	var out []Issue
	missingNotes(in.Logic, in.Notes, func(r ir.Requirement, addr uint32) {
		out = append(out, newIssue(MissingNote,
			fmt.Sprintf("Address %s missing note", displayHex(addr))).at(r))
	})
	return out
}

func checkMismatchedNotes(in LogicInput) []Issue {
	if len(in.Notes) == 0 {
		return nil
	}
	var out []Issue
	mismatchedNotes(in.Logic, in.Notes, func(r ir.Requirement, o ir.Operand, n *notes.Note) {
		out = append(out, newIssue(TypeMismatch,
			fmt.Sprintf("Accessing %s as %s. Matching code note at %s is marked as %s",
				displayHex(o.Address()), o.Size, displayHex(n.Address), n.Type)).at(r))
	})
	return out
}

func checkBadChains(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		if len(g) == 0 {
			continue
		}
		if last := g[len(g)-1]; last.Flag.Chains() {
			out = append(out, newIssue(BadChain, "").at(last))
		}
	}
	return out
}

func checkPriors(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		for _, a := range g {
			if !a.HasRight() || a.Op != ir.OpNe || !a.Left.SameValue(a.Right) {
				continue
			}
			ca := a.Canonicalize()
			if ca.Left.Kind == ir.KindMem && ca.Right.Kind == ir.KindPrior {
				out = append(out, newIssue(BadPrior,
					"A memory value will always be not-equal to its prior, unless the value has never changed. "+
						"This requirement most likely does not accomplish anything and is probably safe to remove.").at(a))
			}
		}
		for ai, a := range g {
			ca := a.Canonicalize()
			if ca.Op != ir.OpNe || ca.Left.Kind != ir.KindPrior || ca.Right.IsAddress() {
				continue
			}
			for bi, b := range g {
				if ai == bi {
					continue
				}
				cb := b.Canonicalize()
				if cb.Op != ir.OpEq || cb.Left.Kind != ir.KindMem || cb.Right.IsAddress() {
					continue
				}
				if ca.Right.Equal(cb.Right) && ca.Left.SameValue(cb.Left) {
					out = append(out, newIssue(BadPrior, fmt.Sprintf(
						"The prior comparison will always be true when %s, unless the value has never changed. "+
							"This requirement most likely does not accomplish anything and is probably safe to remove.",
						b.Annotated())).at(a))
				}
			}
		}
	}
	return out
}

func checkStaleAddAddress(in LogicInput) []Issue {
	var out []Issue
	for _, r := range in.Logic.Requirements() {
		if r.Flag != ir.FlagAddAddress {
			continue
		}
		if r.Left.Kind == ir.KindDelta || r.Left.Kind == ir.KindPrior {
			out = append(out, newIssue(StaleAddAddress, "").at(r))
		}
	}
	return out
}

// checkNegativeOffsets flags pointer offsets in the upper half of the
// address space, which is how a negative offset wraps around.
func checkNegativeOffsets(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri := 1; ri < len(g); ri++ {
			if g[ri-1].Flag != ir.FlagAddAddress {
				continue
			}
			for _, o := range g[ri].Operands() {
				if o.IsAddress() && o.Address() >= 0x80000000 {
					out = append(out, newIssue(NegativeOffset,
						fmt.Sprintf("Offset %s is negative (-0x%x)", displayHex(o.Address()), -o.Address())).at(g[ri]))
					break
				}
			}
		}
	}
	return out
}

// chainBefore returns the non-terminating requirements leading up to ri,
// in order.
func chainBefore(g ir.Group, ri int) []ir.Requirement {
	start := ri
	for start > 0 && !g[start-1].IsTerminating() {
		start--
	}
	return g[start:ri]
}

func joinRequirements(rs []ir.Requirement) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, "_")
}

func checkSourceModMeasured(in LogicInput) []Issue {
	if !in.Logic.Value {
		return nil
	}
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			if r.Flag != ir.FlagMeasured || !r.IsModifying() {
				continue
			}
			fix := append(slices.Clone(chainBefore(g, ri)),
				r.WithFlag(ir.FlagAddSource),
				ir.Requirement{Flag: ir.FlagMeasured, Left: ir.Literal(0)})
			out = append(out, newIssue(SourceModMeasured,
				"This can be fixed by using AddSource to add to a Measured Val 0: "+joinRequirements(fix)).at(r))
		}
	}
	return out
}

// invertChain negates the chain ending at ri: every link has AndNext and
// OrNext swapped and its comparison reversed, and the final requirement
// loses its flag and hit target.
func invertChain(g ir.Group, ri int) string {
	invert := func(r ir.Requirement) ir.Requirement {
		switch r.Flag {
		case ir.FlagAndNext:
			r.Flag = ir.FlagOrNext
		case ir.FlagOrNext:
			r.Flag = ir.FlagAndNext
		}
		return r.ReverseComparison()
	}
	prev := chainBefore(g, ri)
	links := make([]ir.Requirement, 0, len(prev)+1)
	for _, r := range prev {
		links = append(links, invert(r))
	}
	links = append(links, invert(g[ri]).WithFlag(ir.FlagNone).WithHits(0))
	return joinRequirements(links)
}

func hasHits(l *ir.Logic) bool {
	for _, r := range l.Requirements() {
		if r.Hits > 0 {
			return true
		}
	}
	return false
}

func checkUnclearedHits(in LogicInput) []Issue {
	if in.Logic.HasFlag(ir.FlagResetIf) {
		return nil
	}
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			// a reset with hits is still a reset; a pause with hits is a pauselock
			if r.Hits == 0 || r.Flag == ir.FlagResetIf || r.Flag == ir.FlagPauseIf {
				continue
			}
			if !g.GuardedByResetNextIf(ri) {
				out = append(out, newIssue(HitNoReset, "").at(r))
			}
		}
	}
	return out
}

func checkPauseLocks(in LogicInput) []Issue {
	var out []Issue
	for gi, g := range in.Logic.Groups {
		resetElsewhere := false
		for oi, other := range in.Logic.Groups {
			if oi != gi && other.HasFlag(ir.FlagResetIf) {
				resetElsewhere = true
				break
			}
		}
		for ri, r := range g {
			if r.Flag != ir.FlagPauseIf || r.Hits == 0 || g.GuardedByResetNextIf(ri) {
				continue
			}
			if !resetElsewhere {
				out = append(out, newIssue(PauseLockNoReset, "").at(r))
			}
		}
	}
	return out
}

const fixPrefix = "Automated recommended change: "

func checkUselessPause(in LogicInput) []Issue {
	if hasHits(in.Logic) {
		return nil
	}
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			if r.Flag != ir.FlagPauseIf {
				continue
			}
			switch {
			case g.HasMeasured():
				out = append(out, newIssue(PausingMeasured, "").at(r))
			case !in.Logic.Value:
				// a pause in a value can freeze the reported value
				out = append(out, newIssue(UselessPause, fixPrefix+invertChain(g, ri)).at(r))
			}
		}
	}
	return out
}

func checkUselessReset(in LogicInput) []Issue {
	if hasHits(in.Logic) {
		return nil
	}
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			if r.Flag != ir.FlagResetIf {
				continue
			}
			if !in.Logic.Value || g.HasMeasured() {
				out = append(out, newIssue(UselessReset, fixPrefix+invertChain(g, ri)).at(r))
			}
		}
	}
	return out
}

func checkResetHitcountOne(in LogicInput) []Issue {
	var out []Issue
	for _, r := range in.Logic.Requirements() {
		if r.Flag == ir.FlagResetIf && r.Hits == 1 {
			out = append(out, newIssue(ResetHitcountOne, "").at(r))
		}
	}
	return out
}

func checkUselessResetNextIf(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			if r.Flag != ir.FlagResetNextIf {
				continue
			}
			for _, next := range g[ri+1:] {
				if next.Hits > 0 {
					break
				}
				if !next.IsTerminating() {
					continue
				}
				if in.Logic.Value && next.Flag.IsMeasured() {
					break
				}
				// ResetNextIf with hits before a PauseIf is "pause until"
				if r.Hits > 0 && next.Flag == ir.FlagPauseIf {
					break
				}
				out = append(out, newIssue(UselessResetNextIf, "").at(r))
				break
			}
		}
	}
	return out
}

func checkMissingEnumerations(in LogicInput) []Issue {
	var out []Issue
	for _, g := range in.Logic.Groups {
		for ri, r := range g {
			if ri > 0 && g[ri-1].Flag == ir.FlagAddAddress {
				continue
			}
			c := r.Canonicalize()
			if !c.IsComparison() || !c.Left.IsAddress() || c.Right.Kind != ir.KindValue {
				continue
			}
			for _, n := range in.Notes {
				if !n.Contains(c.Left.Address()) || len(n.Enums) == 0 {
					continue
				}
				if !hasEnumeration(n, int64(c.Right.Value)) {
					out = append(out, newIssue(MissingEnumeration, fmt.Sprintf(
						"Enumeration 0x%02x not found for note at address %s",
						int64(c.Right.Value), displayHex(c.Left.Address()))).at(r))
				}
			}
		}
	}
	return out
}

func hasEnumeration(n notes.Note, v int64) bool {
	for _, e := range n.Enums {
		if e.Value == v {
			return true
		}
	}
	return false
}
