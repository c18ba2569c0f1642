package asset

import "github.com/roach88/ralint/internal/ir"

// LookupRange maps an inclusive range of values to a label. A fallback
// range ("*") has no bounds.
type LookupRange struct {
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Value    string `json:"value"`
	Fallback bool   `json:"fallback,omitempty"`
}

// DisplayLookup is a "@Name(expr)" reference inside a display string.
type DisplayLookup struct {
	Name string    `json:"name"`
	Calc *ir.Logic `json:"-"`
}

// Display is one display clause. Condition is nil for the default clause.
type Display struct {
	Condition *ir.Logic       `json:"-"`
	Text      string          `json:"text"`
	Lookups   []DisplayLookup `json:"lookups,omitempty"`
}

// RichPresence is a parsed rich presence script.
type RichPresence struct {
	Text string `json:"-"`
	// Macros maps every macro name (built-in and custom) to its format.
	// Character macros have no format.
	Macros       map[string]*ir.Format    `json:"-"`
	CustomMacros []string                 `json:"custom_macros,omitempty"`
	Lookups      map[string][]LookupRange `json:"lookups,omitempty"`
	Display      []Display                `json:"display"`
}

var builtinMacros = []struct{ name, format string }{
	{"Number", "VALUE"},
	{"Unsigned", "UNSIGNED"},
	{"Score", "SCORE"},
	{"Centiseconds", "MILLISECS"},
	{"Seconds", "SECS"},
	{"Minutes", "MINUTES"},
	{"Fixed1", "FIXED1"},
	{"Fixed2", "FIXED2"},
	{"Fixed3", "FIXED3"},
	{"Float1", "FLOAT1"},
	{"Float2", "FLOAT2"},
	{"Float3", "FLOAT3"},
	{"Float4", "FLOAT4"},
	{"Float5", "FLOAT5"},
	{"Float6", "FLOAT6"},
	{"ASCIIChar", ""},
	{"UnicodeChar", ""},
}

// NewRichPresence returns an empty script with the built-in macros defined.
// An empty script is also what a set without rich presence is assessed as.
func NewRichPresence() *RichPresence {
	rp := &RichPresence{
		Macros:  make(map[string]*ir.Format, len(builtinMacros)),
		Lookups: make(map[string][]LookupRange),
	}
	for _, m := range builtinMacros {
		if f, ok := ir.FormatByType(m.format); ok {
			rp.Macros[m.name] = &f
		} else {
			rp.Macros[m.name] = nil
		}
	}
	return rp
}
