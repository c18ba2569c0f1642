package stats

import (
	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/notes"
)

// LeaderboardStats describes a leaderboard and each of its components.
type LeaderboardStats struct {
	InstantSubmission bool                             `json:"is_instant_submission"`
	ConditionalValue  bool                             `json:"conditional_value"`
	Components        map[asset.Component]LogicStats `json:"components"`
}

// ForLeaderboard computes leaderboard statistics. A submit component made
// only of always-true requirements submits instantly; a value with a
// MeasuredIf-guarded Measured in an alt group is conditional.
func ForLeaderboard(lb *asset.Leaderboard) LeaderboardStats {
	s := LeaderboardStats{Components: make(map[asset.Component]LogicStats, len(asset.Components))}
	for _, c := range asset.Components {
		s.Components[c] = ForLogic(lb.Component(c))
	}

	s.InstantSubmission = true
	if sub := lb.Component(asset.ComponentSubmit); sub != nil {
		for _, r := range sub.Requirements() {
			if !r.IsAlwaysTrue() {
				s.InstantSubmission = false
				break
			}
		}
	}

	if val := lb.Component(asset.ComponentValue); val != nil {
		for _, g := range val.Alts() {
			if g.HasFlag(ir.FlagMeasuredIf) && g.HasMeasured() {
				s.ConditionalValue = true
				break
			}
		}
	}
	return s
}

// NoteStats summarises a set's code notes.
type NoteStats struct {
	SizeCounts   map[string]int `json:"size_counts"`
	AuthorCounts map[string]int `json:"author_counts"`
	NotesCount   int            `json:"notes_count"`
	NotesUsed    int            `json:"notes_used"`
	NotesUnused  int            `json:"notes_unused"`
}

// ForNotes computes note statistics. A note counts as used when any
// achievement reads an address it covers. Notes with neither a size nor a
// type are left out of SizeCounts.
func ForNotes(set *asset.Set, ns []notes.Note) NoteStats {
	s := NoteStats{
		SizeCounts:   make(map[string]int),
		AuthorCounts: make(map[string]int),
		NotesCount:   len(ns),
	}
	for _, n := range ns {
		s.AuthorCounts[n.Author]++
		if n.Type != ir.SizeUnknown || n.Size != 1 {
			name := "Unknown"
			if n.Type != ir.SizeUnknown {
				name = n.Type.String()
			}
			s.SizeCounts[name]++
		}
	}

	var addrs []uint32
	if set != nil {
		for _, a := range set.Achievements {
			if a.Logic != nil {
				addrs = append(addrs, a.Logic.Addresses()...)
			}
		}
	}
	for _, n := range ns {
		for _, addr := range addrs {
			if n.Contains(addr) {
				s.NotesUsed++
				break
			}
		}
	}
	s.NotesUnused = s.NotesCount - s.NotesUsed
	return s
}

// DisplayStats describes a rich presence script.
type DisplayStats struct {
	TextLength          int               `json:"mem_length"`
	CustomMacros        map[string]string `json:"custom_macros"`
	Lookups             map[string]int    `json:"lookups"`
	DisplayGroups       int               `json:"display_groups"`
	ConditionalDisplays int               `json:"cond_display"`
	MaxLookups          int               `json:"max_lookups"`
	MinLookups          int               `json:"min_lookups"`
	Dynamic             bool              `json:"is_dynamic_rp"`
}

// ForDisplay computes rich presence statistics. CustomMacros maps each
// custom macro to its format type ("" when it has none) and Lookups maps
// each lookup table to its entry count.
func ForDisplay(rp *asset.RichPresence) DisplayStats {
	if rp == nil {
		rp = asset.NewRichPresence()
	}
	s := DisplayStats{
		TextLength:    len(rp.Text),
		CustomMacros:  make(map[string]string, len(rp.CustomMacros)),
		Lookups:       make(map[string]int, len(rp.Lookups)),
		DisplayGroups: len(rp.Display),
	}
	for _, name := range rp.CustomMacros {
		t := ""
		if f := rp.Macros[name]; f != nil {
			t = f.Type
		}
		s.CustomMacros[name] = t
	}
	for name, ranges := range rp.Lookups {
		s.Lookups[name] = len(ranges)
	}

	for i, d := range rp.Display {
		if d.Condition != nil {
			s.ConditionalDisplays++
		}
		n := len(d.Lookups)
		if i == 0 || n > s.MaxLookups {
			s.MaxLookups = n
		}
		if i == 0 || n < s.MinLookups {
			s.MinLookups = n
		}
	}
	s.Dynamic = s.MaxLookups > 0 || s.ConditionalDisplays > 0
	return s
}
