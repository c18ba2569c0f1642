package ir

import (
	"math"
	"strings"
)

// Size is the width and encoding of a memory read. SizeUnknown is the zero
// value and is used by literal operands and untyped code notes.
type Size int

const (
	SizeUnknown Size = iota
	SizeByte
	SizeWord
	SizeTByte
	SizeDWord
	SizeWordBE
	SizeTByteBE
	SizeDWordBE
	SizeLower4
	SizeUpper4
	SizeFloat
	SizeFloatBE
	SizeDouble32
	SizeDouble32BE
	SizeMBF32
	SizeMBF32LE
	SizeBit0
	SizeBit1
	SizeBit2
	SizeBit3
	SizeBit4
	SizeBit5
	SizeBit6
	SizeBit7
	SizeBitCount
)

type sizeInfo struct {
	name   string
	prefix string
	bytes  int
	max    float64
}

var inf = math.Inf(1)

var sizeTable = [...]sizeInfo{
	SizeUnknown:    {"", "", 0, 0},
	SizeByte:       {"8-bit", "0xH", 1, 0xFF},
	SizeWord:       {"16-bit", "0x", 2, 0xFFFF},
	SizeTByte:      {"24-bit", "0xW", 3, 0xFFFFFF},
	SizeDWord:      {"32-bit", "0xX", 4, 0xFFFFFFFF},
	SizeWordBE:     {"16-bit BE", "0xI", 2, 0xFFFF},
	SizeTByteBE:    {"24-bit BE", "0xJ", 3, 0xFFFFFF},
	SizeDWordBE:    {"32-bit BE", "0xG", 4, 0xFFFFFFFF},
	SizeLower4:     {"Lower4", "0xL", 1, 0xF},
	SizeUpper4:     {"Upper4", "0xU", 1, 0xF},
	SizeFloat:      {"Float", "fF", 4, inf},
	SizeFloatBE:    {"Float BE", "fB", 4, inf},
	SizeDouble32:   {"Double32", "fH", 8, inf},
	SizeDouble32BE: {"Double32 BE", "fI", 8, inf},
	SizeMBF32:      {"MBF32", "fM", 4, inf},
	SizeMBF32LE:    {"MBF32 LE", "fL", 4, inf},
	SizeBit0:       {"Bit0", "0xM", 1, 1},
	SizeBit1:       {"Bit1", "0xN", 1, 1},
	SizeBit2:       {"Bit2", "0xO", 1, 1},
	SizeBit3:       {"Bit3", "0xP", 1, 1},
	SizeBit4:       {"Bit4", "0xQ", 1, 1},
	SizeBit5:       {"Bit5", "0xR", 1, 1},
	SizeBit6:       {"Bit6", "0xS", 1, 1},
	SizeBit7:       {"Bit7", "0xT", 1, 1},
	SizeBitCount:   {"BitCount", "0xK", 1, 8},
}

var sizeByPrefix = func() map[string]Size {
	m := make(map[string]Size, len(sizeTable))
	for s := SizeByte; int(s) < len(sizeTable); s++ {
		m[strings.ToLower(sizeTable[s].prefix)] = s
	}
	return m
}()

func (s Size) valid() bool { return s >= 0 && int(s) < len(sizeTable) }

// String returns the display name, or "" for SizeUnknown.
func (s Size) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return sizeTable[s].name
}

// Prefix returns the syntax prefix of the size ("0xH", "fF", ...).
func (s Size) Prefix() string {
	if !s.valid() {
		return ""
	}
	return sizeTable[s].prefix
}

// Bytes returns the number of bytes covered by a read of this size.
func (s Size) Bytes() int {
	if !s.valid() {
		return 0
	}
	return sizeTable[s].bytes
}

// MaxValue returns the largest value a read of this size can produce.
// Floating point sizes are unbounded.
func (s Size) MaxValue() float64 {
	if !s.valid() {
		return 0
	}
	return sizeTable[s].max
}

// BitProficient reports whether the size is a single-bit or bit-count read.
func (s Size) BitProficient() bool {
	return (s >= SizeBit0 && s <= SizeBit7) || s == SizeBitCount
}

// Partial reports whether the size reads less than a whole byte.
func (s Size) Partial() bool {
	return s.BitProficient() || s == SizeLower4 || s == SizeUpper4
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// SizeByPrefix resolves a size prefix case-insensitively. A trailing space
// (the legacy "0x " 16-bit form) is ignored.
func SizeByPrefix(prefix string) (Size, bool) {
	s, ok := sizeByPrefix[strings.ToLower(strings.TrimSpace(prefix))]
	return s, ok
}
