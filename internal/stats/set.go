package stats

import (
	"fmt"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// SetStats summarises a whole set. Counts named Using* are the number of
// achievements using the feature.
type SetStats struct {
	AchievementCount int                 `json:"achievement_count"`
	LeaderboardCount int                 `json:"leaderboard_count"`
	AchievementState map[asset.State]int `json:"achievement_state"`
	AchievementType  map[string]int      `json:"achievement_type"`
	TotalPoints      int                 `json:"total_points"`
	AvgPoints        float64             `json:"avg_points"`

	AllFlags       []ir.Flag     `json:"all_flags"`
	AllComparisons []ir.Operator `json:"all_cmps"`
	AllSizes       []ir.Size     `json:"all_sizes"`

	UsingBitOps            int             `json:"using_bit_ops"`
	UsingAltGroups         int             `json:"using_alt_groups"`
	UsingDelta             int             `json:"using_delta"`
	UsingHitCounts         int             `json:"using_hitcounts"`
	UsingCheckpointHits    int             `json:"using_checkpoint_hits"`
	UsingPauseLock         int             `json:"using_pauselock"`
	UsingPauseLockAltReset int             `json:"using_pauselock_alt_reset"`
	UsingFlag              map[ir.Flag]int `json:"using_flag"`

	LeaderboardType              map[string]int `json:"leaderboard_type"`
	LeaderboardInstantSubmission int            `json:"lb_instant_submission"`
	LeaderboardConditionalValue  int            `json:"lb_conditional_value"`

	// MissingNotes is only computed when notes were loaded.
	MissingNotes []MissingNote `json:"missing_notes,omitempty"`
}

// MissingNote is an address read somewhere in the set that no note covers,
// with a label for every place that reads it.
type MissingNote struct {
	Address uint32   `json:"address"`
	Sources []string `json:"sources"`
}

// ForSet computes set-wide statistics. rp may be nil.
func ForSet(set *asset.Set, ns []notes.Note, rp *asset.RichPresence) SetStats {
	s := SetStats{
		AchievementCount: len(set.Achievements),
		LeaderboardCount: len(set.Leaderboards),
		AchievementState: make(map[asset.State]int, len(asset.States)),
		AchievementType:  make(map[string]int, len(asset.AchievementTypes)),
		AllFlags:         []ir.Flag{},
		AllComparisons:   []ir.Operator{},
		AllSizes:         []ir.Size{},
		UsingFlag:        make(map[ir.Flag]int),
		LeaderboardType:  make(map[string]int),
	}
	for _, st := range asset.States {
		s.AchievementState[st] = 0
	}
	for _, t := range asset.AchievementTypes {
		s.AchievementType[t] = 0
	}
	for _, f := range ir.AllFlags() {
		if f != ir.FlagNone {
			s.UsingFlag[f] = 0
		}
	}

	merge := func(ls LogicStats) {
		for _, f := range ls.UniqueFlags {
			s.AllFlags = appendUnique(s.AllFlags, f)
		}
		for _, op := range ls.UniqueComparisons {
			s.AllComparisons = appendUnique(s.AllComparisons, op)
		}
		for _, sz := range ls.UniqueSizes {
			s.AllSizes = appendUnique(s.AllSizes, sz)
		}
	}

	for _, a := range set.Achievements {
		ls := ForLogic(a.Logic)
		merge(ls)

		s.AchievementState[a.State]++
		s.AchievementType[a.Type]++
		s.TotalPoints += a.Points

		if ls.UsesBitOps {
			s.UsingBitOps++
		}
		if ls.AltGroups > 0 {
			s.UsingAltGroups++
		}
		if ls.Deltas > 0 {
			s.UsingDelta++
		}
		if ls.HitCountsMany > 0 {
			s.UsingHitCounts++
		}
		if ls.HitCountsOne > 0 {
			s.UsingCheckpointHits++
		}
		if ls.PauseLocks > 0 {
			s.UsingPauseLock++
		}
		if ls.PauseLockAltReset > 0 {
			s.UsingPauseLockAltReset++
		}
		for _, f := range ls.UniqueFlags {
			s.UsingFlag[f]++
		}
	}
	if s.AchievementCount > 0 {
		s.AvgPoints = float64(s.TotalPoints) / float64(s.AchievementCount)
	}

	for _, lb := range set.Leaderboards {
		lbs := ForLeaderboard(lb)
		for _, c := range asset.Components {
			merge(lbs.Components[c])
		}
		s.LeaderboardType[lb.Kind()]++
		if lbs.InstantSubmission {
			s.LeaderboardInstantSubmission++
		}
		if lbs.ConditionalValue {
			s.LeaderboardConditionalValue++
		}
	}

	if len(ns) > 0 {
		s.MissingNotes = missingNotes(set, ns, rp)
	}
	return s
}

// addressSources collects labelled reads in first-seen order.
type addressSources struct {
	order   []uint32
	sources map[uint32][]string
}

func (a *addressSources) attach(l *ir.Logic, label string) {
	if l == nil {
		return
	}
	seen := make(map[uint32]bool)
	for _, addr := range l.Addresses() {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		if _, ok := a.sources[addr]; !ok {
			a.order = append(a.order, addr)
		}
		a.sources[addr] = append(a.sources[addr], label)
	}
}

func missingNotes(set *asset.Set, ns []notes.Note, rp *asset.RichPresence) []MissingNote {
	src := &addressSources{sources: make(map[uint32][]string)}
	for _, a := range set.Achievements {
		src.attach(a.Logic, "Achievement: "+a.Title)
	}
	for _, lb := range set.Leaderboards {
		for _, c := range asset.Components {
			src.attach(lb.Component(c), fmt.Sprintf("Leaderboard (%s): %s", c, lb.Title))
		}
	}
	if rp != nil {
		attachDisplaySources(src, rp)
	}

	var out []MissingNote
	for _, addr := range src.order {
		if _, ok := notes.Lookup(ns, addr); ok {
			continue
		}
		out = append(out, MissingNote{Address: addr, Sources: src.sources[addr]})
	}
	return out
}

func attachDisplaySources(src *addressSources, rp *asset.RichPresence) {
	for i, d := range rp.Display {
		clause := i + 1
		src.attach(d.Condition, fmt.Sprintf("Rich Presence Display Condition #%d", clause))
		for _, l := range d.Lookups {
			src.attach(l.Calc, fmt.Sprintf("Rich Presence Display Lookup(%s) in Clause #%d", l.Name, clause))
		}
	}
}
