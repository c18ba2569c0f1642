package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/notes"
	"github.com/roach88/ralint/internal/parser"
)

const badgeURL = "https://media.retroachievements.org/Badge/%s.png"

// Minimum field counts for local rows.
const (
	noteFields        = 3
	leaderboardFields = 9
	achievementFields = 9
)

var nonEmptyLine = regexp.MustCompile(`[^\r\n]+`)

// LoadLocal reads a local user file. The first line is a version string and
// the second the set title; each remaining line is a code note ("N"), a
// leaderboard ("L") or an achievement. Notes found in the file are returned
// separately.
func LoadLocal(r io.Reader) (*asset.Set, []notes.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read local file: %w", err)
	}
	lines := nonEmptyLine.FindAllString(string(data), -1)
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("local file: missing header")
	}

	set := &asset.Set{Title: lines[1]}
	var local []notes.Note
	for i := 2; i < len(lines); i++ {
		lineNo := i + 1
		row, err := splitColons(lines[i])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(row) == 0 || row[0] == "" {
			return nil, nil, fmt.Errorf("line %d: empty row", lineNo)
		}

		switch row[0][0] {
		case 'N':
			n, err := localNote(row)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			local = append(local, n)
		case 'L':
			lb, err := localLeaderboard(row)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if lb.IsVoid() {
				continue
			}
			if err := validateRecord("leaderboard", lb.ID, lb); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			set.AddLeaderboard(lb)
		default:
			ach, err := localAchievement(row)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if ach.IsVoid() {
				continue
			}
			if err := validateRecord("achievement", ach.ID, ach); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			set.AddAchievement(ach)
		}
	}
	return set, local, nil
}

func localNote(row []string) (notes.Note, error) {
	if len(row) < noteFields {
		return notes.Note{}, fmt.Errorf("note: expected %d fields, got %d", noteFields, len(row))
	}
	addr, err := parseAddress(row[1])
	if err != nil {
		return notes.Note{}, fmt.Errorf("note: %w", err)
	}
	return notes.New(addr, row[2], ""), nil
}

func localLeaderboard(row []string) (*asset.Leaderboard, error) {
	if len(row) < leaderboardFields {
		return nil, fmt.Errorf("leaderboard: expected %d fields, got %d", leaderboardFields, len(row))
	}
	id, err := strconv.Atoi(row[0][1:])
	if err != nil {
		return nil, fmt.Errorf("leaderboard: invalid id %q", row[0])
	}
	format, err := lookupFormat(row[5])
	if err != nil {
		return nil, fmt.Errorf("leaderboard %d: %w", id, err)
	}
	lb := &asset.Leaderboard{
		Meta: asset.Meta{
			ID:          id,
			Title:       row[6],
			Description: row[7],
			State:       asset.StateLocal,
		},
		Format:        format,
		LowerIsBetter: row[8] == "1",
	}
	defs := map[asset.Component]string{
		asset.ComponentStart:  row[1],
		asset.ComponentCancel: row[2],
		asset.ComponentSubmit: row[3],
		asset.ComponentValue:  row[4],
	}
	if err := setComponents(lb, defs); err != nil {
		return nil, fmt.Errorf("leaderboard %d (%s): %w", id, lb.Title, err)
	}
	return lb, nil
}

func localAchievement(row []string) (*asset.Achievement, error) {
	if len(row) < achievementFields {
		return nil, fmt.Errorf("achievement: expected %d fields, got %d", achievementFields, len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("achievement: invalid id %q", row[0])
	}
	points, err := strconv.Atoi(row[8])
	if err != nil {
		return nil, fmt.Errorf("achievement %d: invalid points %q", id, row[8])
	}
	logic, err := parser.ParseLogic(row[1], parser.ModeTrigger)
	if err != nil {
		return nil, fmt.Errorf("achievement %d (%s): %w", id, row[2], err)
	}
	ach := &asset.Achievement{
		Meta: asset.Meta{
			ID:          id,
			Title:       row[2],
			Description: row[3],
			Author:      row[7],
			State:       asset.StateLocal,
		},
		Points: points,
		Type:   row[6],
		Logic:  logic,
	}
	if len(row) > 13 {
		ach.Badge = fmt.Sprintf(badgeURL, row[13])
	}
	return ach, nil
}

// splitColons splits a local row on ":". A field that starts with a double
// quote runs to the next unescaped quote and is decoded as a JSON string.
func splitColons(line string) ([]string, error) {
	var fields []string
	chars := []rune(line + ":")
	start, quoted := 0, false
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		if i == start && !quoted && ch == '"' {
			quoted = true
			continue
		}
		if !(quoted && ch == '"' && chars[i-1] != '\\') && !(!quoted && ch == ':') {
			continue
		}

		end := i
		if quoted {
			end = i + 1
		}
		field := string(chars[start:end])
		if quoted {
			var s string
			if err := json.Unmarshal([]byte(field), &s); err != nil {
				return nil, fmt.Errorf("invalid quoted field %s: %w", field, err)
			}
			field = s
		}
		fields = append(fields, field)
		start = end + 1
		quoted = false
		i = end
	}
	return fields, nil
}
