package ir

import "strings"

// FormatCategory groups value formats by what they display.
type FormatCategory string

const (
	CategoryValue FormatCategory = "value"
	CategoryTime  FormatCategory = "time"
)

// Format is a leaderboard or rich presence value format.
type Format struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Category FormatCategory `json:"category"`
}

var formats = []Format{
	{"POINTS", "Score", CategoryValue},
	{"SCORE", "Score", CategoryValue},
	{"FRAMES", "Frames", CategoryTime},
	{"TIME", "Frames", CategoryTime},
	{"MILLISECS", "Centiseconds", CategoryTime},
	{"TIMESECS", "Seconds", CategoryTime},
	{"SECS", "Seconds", CategoryTime},
	{"MINUTES", "Minutes", CategoryTime},
	{"SECS_AS_MINS", "Seconds", CategoryTime},
	{"VALUE", "Value", CategoryValue},
	{"UNSIGNED", "Unsigned", CategoryValue},
	{"TENS", "Value × 10", CategoryValue},
	{"HUNDREDS", "Value × 100", CategoryValue},
	{"THOUSANDS", "Value × 1000", CategoryValue},
	{"FIXED1", "Fixed1", CategoryValue},
	{"FIXED2", "Fixed2", CategoryValue},
	{"FIXED3", "Fixed3", CategoryValue},
	{"FLOAT1", "Float1", CategoryValue},
	{"FLOAT2", "Float2", CategoryValue},
	{"FLOAT3", "Float3", CategoryValue},
	{"FLOAT4", "Float4", CategoryValue},
	{"FLOAT5", "Float5", CategoryValue},
	{"FLOAT6", "Float6", CategoryValue},
}

// FormatByType looks up a format by its type keyword (e.g. "SCORE").
func FormatByType(t string) (Format, bool) {
	t = strings.ToUpper(strings.TrimSpace(t))
	for _, f := range formats {
		if f.Type == t {
			return f, true
		}
	}
	return Format{}, false
}

// IsTime reports whether the format displays a duration.
func (f Format) IsTime() bool { return f.Category == CategoryTime }
