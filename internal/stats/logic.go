// Package stats computes descriptive statistics over parsed logic, code
// notes, rich presence and whole sets. All functions are pure.
package stats

import (
	"slices"

	"github.com/roach88/ralint/internal/ir"
)

// LogicStats describes the shape of one logic definition.
type LogicStats struct {
	GroupCount         int                 `json:"group_count"`
	AltGroups          int                 `json:"alt_groups"`
	GroupMaxSize       int                 `json:"group_maxsize"`
	ConditionCount     int                 `json:"cond_count"`
	UniqueFlags        []ir.Flag           `json:"unique_flags"`
	UniqueComparisons  []ir.Operator       `json:"unique_cmps"`
	UniqueSizes        []ir.Size           `json:"unique_sizes"`
	MaxChain           int                 `json:"max_chain"`
	HitCountsOne       int                 `json:"hit_counts_one"`
	HitCountsMany      int                 `json:"hit_counts_many"`
	PauseIfs           int                 `json:"pause_ifs"`
	PauseLocks         int                 `json:"pause_locks"`
	ResetIfs           int                 `json:"reset_ifs"`
	ResetWithHits      int                 `json:"reset_with_hits"`
	Deltas             int                 `json:"deltas"`
	Priors             int                 `json:"priors"`
	Addresses          []uint32            `json:"addresses"`
	MemoryLookups      []string            `json:"memlookups"`
	MemDelta           int                 `json:"mem_del"`
	PauseLockAltReset  int                 `json:"pauselock_alt_reset"`
	SourceModification map[ir.Operator]int `json:"source_modification"`
	UsesBitOps         bool                `json:"uses_bit_ops"`
}

var sourceModOps = []ir.Operator{ir.OpMul, ir.OpDiv, ir.OpAnd, ir.OpXor, ir.OpMod, ir.OpAdd, ir.OpSub}

func appendUnique[T comparable](list []T, v T) []T {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}

// ForLogic computes statistics for a logic definition. A nil logic is
// treated as having no groups.
func ForLogic(l *ir.Logic) LogicStats {
	if l == nil {
		l = &ir.Logic{}
	}
	s := LogicStats{
		GroupCount:         len(l.Groups),
		UniqueFlags:        []ir.Flag{},
		UniqueComparisons:  []ir.Operator{},
		UniqueSizes:        []ir.Size{},
		Addresses:          []uint32{},
		MemoryLookups:      l.MemoryLookups(),
		SourceModification: make(map[ir.Operator]int, len(sourceModOps)),
	}
	if s.GroupCount > 0 {
		s.AltGroups = s.GroupCount - 1
	}
	if s.MemoryLookups == nil {
		s.MemoryLookups = []string{}
	}
	for _, op := range sourceModOps {
		s.SourceModification[op] = 0
	}

	resetGroups := make(map[int]bool)
	for gi, g := range l.Groups {
		if g.HasFlag(ir.FlagResetIf) {
			resetGroups[gi] = true
		}
	}

	for gi, g := range l.Groups {
		s.GroupMaxSize = max(s.GroupMaxSize, len(g))
		s.ConditionCount += len(g)

		chain := 0
		for ri, r := range g {
			if r.Flag != ir.FlagNone {
				s.UniqueFlags = appendUnique(s.UniqueFlags, r.Flag)
			}
			if r.IsComparison() {
				s.UniqueComparisons = appendUnique(s.UniqueComparisons, r.Op)
			}
			if _, ok := s.SourceModification[r.Op]; ok {
				s.SourceModification[r.Op]++
			}

			chain++
			if !r.Flag.Chains() {
				s.MaxChain = max(s.MaxChain, chain)
				chain = 0
			}

			switch {
			case r.Hits == 1:
				s.HitCountsOne++
			case r.Hits > 1:
				s.HitCountsMany++
			}

			switch r.Flag {
			case ir.FlagPauseIf:
				s.PauseIfs++
				if r.Hits > 0 {
					s.PauseLocks++
					if !g.GuardedByResetNextIf(ri) && otherGroupResets(resetGroups, gi) {
						s.PauseLockAltReset++
					}
				}
			case ir.FlagResetIf:
				s.ResetIfs++
				if r.Hits > 0 {
					s.ResetWithHits++
				}
			}

			if isMemDeltaCounter(r) {
				s.MemDelta++
			}

			for _, o := range r.Operands() {
				switch o.Kind {
				case ir.KindDelta:
					s.Deltas++
				case ir.KindPrior:
					s.Priors++
				}
				if o.IsAddress() {
					if o.Size.BitProficient() {
						s.UsesBitOps = true
						s.UniqueSizes = appendUnique(s.UniqueSizes, ir.SizeByte)
					} else {
						s.UniqueSizes = appendUnique(s.UniqueSizes, o.Size)
					}
				}
			}
		}
	}

	for _, a := range l.Addresses() {
		s.Addresses = appendUnique(s.Addresses, a)
	}
	return s
}

func otherGroupResets(resetGroups map[int]bool, gi int) bool {
	for g := range resetGroups {
		if g != gi {
			return true
		}
	}
	return false
}

// isMemDeltaCounter matches a hit counter comparing an address against its
// own delta with an inequality, e.g. "0xH10>d0xH10.5.".
func isMemDeltaCounter(r ir.Requirement) bool {
	if r.Hits == 0 || !r.IsComparison() || r.Op == ir.OpEq {
		return false
	}
	if r.Left.Value != r.Right.Value {
		return false
	}
	kinds := []ir.OperandKind{r.Left.Kind, r.Right.Kind}
	return slices.Contains(kinds, ir.KindMem) && slices.Contains(kinds, ir.KindDelta)
}
