package ir

import "strings"

// OperandKind classifies what an operand reads or represents.
type OperandKind int

const (
	KindMem OperandKind = iota
	KindDelta
	KindPrior
	KindBCD
	KindInvert
	KindRecall
	KindValue
	KindFloat
)

type kindInfo struct {
	name     string
	prefix   string
	address  bool
	priority int
}

var kindTable = [...]kindInfo{
	KindMem:    {"Mem", "", true, 10},
	KindDelta:  {"Delta", "d", true, 11},
	KindPrior:  {"Prior", "p", true, 12},
	KindBCD:    {"BCD", "b", true, 13},
	KindInvert: {"Invert", "~", true, 14},
	KindRecall: {"Recall", "{recall}", false, 20},
	KindValue:  {"Value", "v", false, 21},
	KindFloat:  {"Float", "f", false, 22},
}

func (k OperandKind) valid() bool { return k >= 0 && int(k) < len(kindTable) }

// String returns the display name of the kind.
func (k OperandKind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindTable[k].name
}

// Prefix returns the syntax prefix of the kind.
func (k OperandKind) Prefix() string {
	if !k.valid() {
		return ""
	}
	return kindTable[k].prefix
}

// IsAddress reports whether operands of this kind read memory.
func (k OperandKind) IsAddress() bool {
	return k.valid() && kindTable[k].address
}

// Priority orders kinds when canonicalizing comparisons; lower sorts left.
func (k OperandKind) Priority() int {
	if !k.valid() {
		return 0
	}
	return kindTable[k].priority
}

// MarshalText implements encoding.TextMarshaler.
func (k OperandKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// KindByPrefix resolves a single-character operand prefix. The empty prefix
// is a plain memory read.
func KindByPrefix(prefix string) (OperandKind, bool) {
	p := strings.ToLower(prefix)
	for k, info := range kindTable {
		if info.prefix == p {
			return OperandKind(k), true
		}
	}
	return 0, false
}
