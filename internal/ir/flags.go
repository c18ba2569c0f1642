package ir

import "strings"

// Flag is the optional behavioural prefix of a requirement (the "P:" in
// "P:0xH1234=1"). FlagNone means the requirement carries no flag.
type Flag int

const (
	FlagNone Flag = iota
	FlagPauseIf
	FlagResetIf
	FlagResetNextIf
	FlagAddSource
	FlagSubSource
	FlagAddHits
	FlagSubHits
	FlagAddAddress
	FlagAndNext
	FlagOrNext
	FlagMeasured
	FlagMeasuredPercent
	FlagMeasuredIf
	FlagTrigger
	FlagRemember
)

type flagInfo struct {
	name      string
	prefix    string
	chains    bool
	scalable  bool
	combining bool
}

var flagTable = [...]flagInfo{
	FlagNone:            {"", "", false, false, false},
	FlagPauseIf:         {"PauseIf", "P", false, false, false},
	FlagResetIf:         {"ResetIf", "R", false, false, false},
	FlagResetNextIf:     {"ResetNextIf", "Z", true, false, false},
	FlagAddSource:       {"AddSource", "A", true, true, true},
	FlagSubSource:       {"SubSource", "B", true, true, true},
	FlagAddHits:         {"AddHits", "C", true, false, false},
	FlagSubHits:         {"SubHits", "D", true, false, false},
	FlagAddAddress:      {"AddAddress", "I", true, true, true},
	FlagAndNext:         {"AndNext", "N", true, false, true},
	FlagOrNext:          {"OrNext", "O", true, false, true},
	FlagMeasured:        {"Measured", "M", false, false, false},
	FlagMeasuredPercent: {"Measured%", "G", false, false, false},
	FlagMeasuredIf:      {"MeasuredIf", "Q", false, false, false},
	FlagTrigger:         {"Trigger", "T", false, false, false},
	FlagRemember:        {"Remember", "K", false, true, false},
}

// AllFlags lists every real flag in declaration order.
func AllFlags() []Flag {
	out := make([]Flag, 0, len(flagTable)-1)
	for f := FlagPauseIf; int(f) < len(flagTable); f++ {
		out = append(out, f)
	}
	return out
}

func (f Flag) valid() bool { return f >= 0 && int(f) < len(flagTable) }

// String returns the display name, or "" for FlagNone.
func (f Flag) String() string {
	if !f.valid() {
		return "Unknown"
	}
	return flagTable[f].name
}

// Prefix returns the single-letter syntax prefix without the colon.
func (f Flag) Prefix() string {
	if !f.valid() {
		return ""
	}
	return flagTable[f].prefix
}

// Chains reports whether the flag links its requirement to the next one.
func (f Flag) Chains() bool { return f.valid() && flagTable[f].chains }

// Scalable reports whether the flag turns the requirement into a value
// expression, in which case any comparison is discarded at parse time.
func (f Flag) Scalable() bool { return f.valid() && flagTable[f].scalable }

// Combining reports whether the flag combines its requirement with the
// next one (AddSource, SubSource, AddAddress, AndNext, OrNext).
func (f Flag) Combining() bool { return f.valid() && flagTable[f].combining }

// IsMeasured reports whether the flag is Measured or Measured%.
func (f Flag) IsMeasured() bool { return f == FlagMeasured || f == FlagMeasuredPercent }

// MarshalText implements encoding.TextMarshaler.
func (f Flag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// FlagByPrefix resolves a flag letter, case-insensitively.
func FlagByPrefix(prefix string) (Flag, bool) {
	p := strings.ToUpper(prefix)
	if p == "" {
		return FlagNone, false
	}
	for f := FlagPauseIf; int(f) < len(flagTable); f++ {
		if flagTable[f].prefix == p {
			return f, true
		}
	}
	return FlagNone, false
}
