package feedback

import (
	"fmt"
	"strings"

	"github.com/roach88/ralint/internal/asset"
)

// SetSuite checks the set as a whole.
var SetSuite = Suite[*asset.Set]{
	Label: "Set Design",
	Rules: []Rule[*asset.Set]{
		{Name: "progression-typing", Check: checkProgressionTyping},
		{Name: "duplicate-text", Check: checkDuplicateText},
	},
}

func checkProgressionTyping(set *asset.Set) []Issue {
	progression, win := false, false
	for _, a := range set.Achievements {
		progression = progression || a.Type == asset.TypeProgression
		win = win || a.Type == asset.TypeWinCondition
	}
	switch {
	case !progression && !win:
		return []Issue{newIssue(NoTyping, "")}
	case !progression:
		return []Issue{newIssue(NoProgression, "")}
	}
	return nil
}

// groupBy buckets items by key, keeping keys in first-seen order.
func groupBy[T any](items []T, key func(T) string) ([]string, map[string][]T) {
	var order []string
	groups := make(map[string][]T)
	for _, it := range items {
		k := key(it)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], it)
	}
	return order, groups
}

func checkDuplicateText(set *asset.Set) []Issue {
	var out []Issue

	order, byTitle := groupBy(set.Achievements, func(a *asset.Achievement) string { return a.Title })
	for _, title := range order {
		if n := len(byTitle[title]); n > 1 {
			out = append(out, newIssue(DuplicateTitles,
				fmt.Sprintf("%d achievements share the title %s", n, title)))
		}
	}

	order, byDesc := groupBy(set.Achievements, func(a *asset.Achievement) string { return a.Description })
	for _, desc := range order {
		group := byDesc[desc]
		if len(group) < 2 {
			continue
		}
		titles := make([]string, len(group))
		for i, a := range group {
			titles[i] = a.Title
		}
		out = append(out, newIssue(DuplicateDescriptions,
			fmt.Sprintf("%d achievements share the same description: %s", len(group), strings.Join(titles, ", "))))
	}

	order, lbTitles := groupBy(set.Leaderboards, func(lb *asset.Leaderboard) string { return lb.Title })
	for _, title := range order {
		if n := len(lbTitles[title]); n > 1 {
			out = append(out, newIssue(DuplicateTitles,
				fmt.Sprintf("%d leaderboards share the title %s", n, title)))
		}
	}
	return out
}
