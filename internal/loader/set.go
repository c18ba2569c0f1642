package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/parser"
)

// unofficialFlags is the export's Flags value for achievements that have
// not been promoted to core.
const unofficialFlags = 5

type setRecord struct {
	ID           int
	Title        string
	ConsoleID    int
	Achievements []achievementRecord
	Leaderboards []leaderboardRecord
}

type achievementRecord struct {
	ID          int
	Title       string
	Description string
	Points      int
	Author      string
	Type        string
	BadgeURL    string
	Flags       int
	MemAddr     string
}

type leaderboardRecord struct {
	ID            int
	Title         string
	Description   string
	Format        string
	LowerIsBetter looseBool
	Hidden        looseBool
	Mem           string
}

// looseBool accepts JSON booleans as well as 0/1.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`:
		*b = true
	case "false", "0", `"0"`, "null", `""`:
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", string(data))
	}
	return nil
}

// LoadSet decodes a set export. Assets titled "[VOID]" and hidden
// leaderboards are skipped; source order is preserved.
func LoadSet(r io.Reader) (*asset.Set, error) {
	var rec setRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode set: %w", err)
	}

	set := &asset.Set{ID: rec.ID, Title: rec.Title, ConsoleID: rec.ConsoleID}
	for _, a := range rec.Achievements {
		ach, err := a.toAchievement()
		if err != nil {
			return nil, err
		}
		if ach.IsVoid() {
			continue
		}
		if err := validateRecord("achievement", ach.ID, ach); err != nil {
			return nil, err
		}
		set.AddAchievement(ach)
	}
	for _, l := range rec.Leaderboards {
		if l.Hidden {
			continue
		}
		lb, err := l.toLeaderboard()
		if err != nil {
			return nil, err
		}
		if lb.IsVoid() {
			continue
		}
		if err := validateRecord("leaderboard", lb.ID, lb); err != nil {
			return nil, err
		}
		set.AddLeaderboard(lb)
	}
	return set, nil
}

func (a achievementRecord) toAchievement() (*asset.Achievement, error) {
	state := asset.StateCore
	if a.Flags == unofficialFlags {
		state = asset.StateUnofficial
	}
	logic, err := parser.ParseLogic(a.MemAddr, parser.ModeTrigger)
	if err != nil {
		return nil, fmt.Errorf("achievement %d (%s): %w", a.ID, a.Title, err)
	}
	return &asset.Achievement{
		Meta: asset.Meta{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Author:      a.Author,
			State:       state,
		},
		Points: a.Points,
		Type:   a.Type,
		Badge:  a.BadgeURL,
		Logic:  logic,
	}, nil
}

func (l leaderboardRecord) toLeaderboard() (*asset.Leaderboard, error) {
	format, err := lookupFormat(l.Format)
	if err != nil {
		return nil, fmt.Errorf("leaderboard %d (%s): %w", l.ID, l.Title, err)
	}
	lb := &asset.Leaderboard{
		Meta: asset.Meta{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			State:       asset.StateCore,
		},
		Format:        format,
		LowerIsBetter: bool(l.LowerIsBetter),
	}

	defs := make(map[asset.Component]string, len(asset.Components))
	for _, part := range strings.Split(l.Mem, "::") {
		if len(part) < 3 {
			continue
		}
		tag := asset.Component(strings.ToUpper(part[:3]))
		mem := ""
		if len(part) > 4 {
			mem = part[4:]
		}
		defs[tag] = mem
	}
	if err := setComponents(lb, defs); err != nil {
		return nil, fmt.Errorf("leaderboard %d (%s): %w", l.ID, l.Title, err)
	}
	return lb, nil
}

// setComponents parses every component; missing ones become empty logic.
// The value component is parsed as a value expression.
func setComponents(lb *asset.Leaderboard, defs map[asset.Component]string) error {
	for _, c := range asset.Components {
		mode := parser.ModeTrigger
		if c == asset.ComponentValue {
			mode = parser.ModeValue
		}
		logic, err := parser.ParseLogic(defs[c], mode)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		lb.SetComponent(c, logic)
	}
	return nil
}

func lookupFormat(t string) (ir.Format, error) {
	if strings.TrimSpace(t) == "" {
		t = "VALUE"
	}
	f, ok := ir.FormatByType(t)
	if !ok {
		return ir.Format{}, fmt.Errorf("unknown format %q", t)
	}
	return f, nil
}
