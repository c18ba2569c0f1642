package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/notes"
	"github.com/roach88/ralint/internal/parser"
)

func TestCheckEmptyNotes(t *testing.T) {
	ns := []notes.Note{notes.New(0x10, "[8-bit] Lives", ""), notes.New(0x20, "  ", "")}
	got := checkEmptyNotes(ns)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Note)
	assert.Equal(t, uint32(0x20), got[0].Note.Address)
	assert.Equal(t, "note 0x00000020", got[0].Target())
}

func TestCheckNotesMissingSize(t *testing.T) {
	ns := []notes.Note{
		notes.New(0x10, "[8-bit] Lives", ""),
		notes.New(0x20, "Lives", ""),
		notes.New(0x30, "[32-bit] Score", ""),
	}
	got := checkNotesMissingSize(ns)
	assert.Equal(t, []string{"Code note at 0x00000020"}, details(got))
}

func TestCheckNotesEnumHex(t *testing.T) {
	ns := []notes.Note{
		notes.New(0x10, "Stage\n10 = one\n11 = two\n1F = three", ""),
		notes.New(0x20, "[8-bit] Character\n0x00 = Mario\n0x01 = Luigi\n0x0A = Toad", ""),
	}
	got := checkNotesEnumHex(ns)
	assert.Equal(t, []string{"Code note at 0x00000010 found potential hex values: 1F"}, details(got))
}

func TestCheckNotesEnumTooLarge(t *testing.T) {
	ns := []notes.Note{
		notes.New(0x10, "[8-bit] Character\n0x00 = Mario\n0x100 = Bowser\n0x02 = Peach", ""),
		notes.New(0x20, "[16-bit] Character\n0x00 = Mario\n0x100 = Bowser\n0x02 = Peach", ""),
		notes.New(0x30, "Character\n0x00 = Mario\n0x100 = Bowser\n0x02 = Peach", ""),
	}
	got := checkNotesEnumTooLarge(ns)
	assert.Equal(t, []string{"The code note at 0x00000010 is listed as 8-bit, which has a max value of 0xFF"}, details(got))
}

func TestCheckDynamicDisplay(t *testing.T) {
	lookup := []asset.DisplayLookup{{Name: "Stage", Calc: parser.MustParseLogic("0xH20")}}
	tests := []struct {
		name    string
		display []asset.Display
		want    []string
	}{
		{name: "static text", display: []asset.Display{{Text: "Playing"}}, want: []string{"no-dynamic-rp"}},
		{name: "nothing at all", want: []string{"no-dynamic-rp"}},
		{name: "lookups only", display: []asset.Display{{Text: "@Stage(0xH20)", Lookups: lookup}}, want: []string{"no-conditional-display"}},
		{name: "conditional", display: []asset.Display{
			{Condition: parser.MustParseLogic("0xH10=1"), Text: "Title screen"},
			{Text: "Playing"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp := asset.NewRichPresence()
			rp.Display = tt.display
			got := checkDynamicDisplay(DisplayInput{RP: rp})
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, typeNames(got))
		})
	}
}

func TestCheckDisplayNotes(t *testing.T) {
	rp := asset.NewRichPresence()
	rp.Display = []asset.Display{
		{
			Condition: parser.MustParseLogic("0xH10=1"),
			Text:      "Stage @Stage(0xH20)",
			Lookups:   []asset.DisplayLookup{{Name: "Stage", Calc: mustLogic(t, "0xH20", parser.ModeValue)}},
		},
		{Text: "Playing"},
	}
	ns := []notes.Note{notes.New(0x10, "[16-bit] Mode", "")}

	got := checkDisplayNotes(DisplayInput{RP: rp, Notes: ns})
	assert.Equal(t, []string{"type-mismatch", "missing-note-rp"}, typeNames(got))
	assert.Equal(t, []string{
		"Accessing 0x00000010 in condition of display #1 as 8-bit. Matching code note at 0x00000010 is marked as 16-bit. Correct accessor should be: 0x00000010",
		"Missing note for Stage lookup of display #1: 0x00000020",
	}, details(got))
	assert.Equal(t, "condition of display #1 0xH10=1", got[0].Target())
	assert.Equal(t, "Stage lookup of display #1", got[1].Target())

	assert.Empty(t, checkDisplayNotes(DisplayInput{RP: rp}), "no notes loaded")
}

func newSet(achievements ...*asset.Achievement) *asset.Set {
	set := &asset.Set{ID: 1, Title: "Test"}
	for _, a := range achievements {
		set.AddAchievement(a)
	}
	return set
}

func typed(id int, title, desc, typ string) *asset.Achievement {
	return &asset.Achievement{Meta: asset.Meta{ID: id, Title: title, Description: desc}, Type: typ}
}

func TestCheckProgressionTyping(t *testing.T) {
	tests := []struct {
		name string
		set  *asset.Set
		want []string
	}{
		{name: "untyped", set: newSet(typed(1, "A", "a", asset.TypeNone)), want: []string{"no-typing"}},
		{name: "win condition only", set: newSet(typed(1, "A", "a", asset.TypeWinCondition)), want: []string{"no-progression"}},
		{name: "progression", set: newSet(typed(1, "A", "a", asset.TypeProgression), typed(2, "B", "b", asset.TypeWinCondition))},
		{name: "empty set", set: newSet(), want: []string{"no-typing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkProgressionTyping(tt.set)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, typeNames(got))
		})
	}
}

func TestCheckDuplicateText(t *testing.T) {
	set := newSet(
		typed(1, "Alpha", "Win the race", ""),
		typed(2, "Beta", "Win the race", ""),
		typed(3, "Alpha", "Lose the race", ""),
	)
	set.AddLeaderboard(&asset.Leaderboard{Meta: asset.Meta{ID: 10, Title: "Time Trial"}})
	set.AddLeaderboard(&asset.Leaderboard{Meta: asset.Meta{ID: 11, Title: "Time Trial"}})

	got := checkDuplicateText(set)
	assert.Equal(t, []string{"duplicate-titles", "duplicate-descriptions", "duplicate-titles"}, typeNames(got))
	assert.Equal(t, []string{
		"2 achievements share the title Alpha",
		"2 achievements share the same description: Alpha, Beta",
		"2 leaderboards share the title Time Trial",
	}, details(got))
}
