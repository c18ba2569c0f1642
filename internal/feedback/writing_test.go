package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ralint/internal/asset"
)

func achievement(title, desc string) *asset.Achievement {
	return &asset.Achievement{Meta: asset.Meta{ID: 1, Title: title, Description: desc}}
}

func TestMakeTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"the legend of zelda", "The Legend of Zelda"},
		{"escape from the castle", "Escape from the Castle"},
		{"what are you up to", "What Are You up To"},
		{"a tale OF two", "A Tale OF Two"},
		{"100 coins", "100 Coins"},
		{"Already Fine", "Already Fine"},
		{"rock 'n' roll", "Rock 'n' Roll"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeTitleCase(tt.in))
		})
	}
}

func TestCheckTitleCase(t *testing.T) {
	assert.Empty(t, checkTitleCase(achievement("Beat the Boss", "")))

	got := checkTitleCase(achievement("beat the boss", ""))
	require.Len(t, got, 1)
	assert.Equal(t, TitleCase, got[0].Type)
	assert.Equal(t, "title", got[0].Field)
	assert.Contains(t, got[0].Detail, "Automated suggestion")
	assert.Contains(t, got[0].Detail, ": Beat the Boss.")
	assert.Contains(t, got[0].Detail, "title=beat%20the%20boss")
}

func TestCheckWritingMistakes(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		desc   string
		want   []string
		fields []string
		detail string
	}{
		{name: "clean", title: "Star Collector", desc: "Collect every star"},
		{name: "emoji", title: "Star ⭐", desc: "Collect a star", want: []string{"no-emoji"}, fields: []string{"title"}},
		{
			name: "smart quotes", title: "Hero", desc: "It’s over",
			want: []string{"special-chars"}, fields: []string{"description"},
			detail: "Suggested: It's over",
		},
		{name: "foreign script", title: "Пример", desc: "Plain", want: []string{"foreign-chars"}, fields: []string{"title"}},
		{
			name: "accented", title: "Pokémon Master", desc: "Catch them all",
			want: []string{"special-chars"}, fields: []string{"title"},
			detail: "Suggested: Pokemon Master",
		},
		{
			name: "both fields", title: "Star ⭐", desc: "Pokémon",
			want: []string{"no-emoji", "special-chars"}, fields: []string{"title", "description"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkWritingMistakes(achievement(tt.title, tt.desc))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, typeNames(got))
			fields := make([]string, len(got))
			for i, is := range got {
				fields[i] = is.Field
			}
			assert.Equal(t, tt.fields, fields)
			if tt.detail != "" {
				assert.Contains(t, got[0].Detail, tt.detail)
			}
		})
	}
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "Pokemon", foldAccents("Pokémon"))
	assert.Equal(t, "Creme brulee", foldAccents("Crème brûlée"))
	assert.Equal(t, "plain", foldAccents("plain"))
}

func TestCheckBrackets(t *testing.T) {
	assert.Len(t, checkBrackets(achievement("T", "Beat the boss (hard mode)")), 1)
	assert.Len(t, checkBrackets(achievement("T", "Clear [stage 2] fast")), 1)
	assert.Empty(t, checkBrackets(achievement("T", "(Hard) beat the boss")))
	assert.Empty(t, checkBrackets(achievement("T", "Beat the boss")))
}
