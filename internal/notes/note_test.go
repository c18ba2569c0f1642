package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ralint/internal/ir"
)

func TestInferSize(t *testing.T) {
	tests := []struct {
		note  string
		bytes int
		size  ir.Size
	}{
		{"", 1, ir.SizeUnknown},
		{"Test", 1, ir.SizeUnknown},
		{"16-bit Test", 2, ir.SizeWord},
		{"Test 16-bit", 2, ir.SizeWord},
		{"Test 16-bi", 1, ir.SizeUnknown},
		{"[16-bit] Test", 2, ir.SizeWord},
		{"[16 bit] Test", 2, ir.SizeWord},
		{"[16 Bit] Test", 2, ir.SizeWord},
		{"[24-bit] Test", 3, ir.SizeTByte},
		{"[32-bit] Test", 4, ir.SizeDWord},
		{"[32 bit] Test", 4, ir.SizeDWord},
		{"[32bit] Test", 4, ir.SizeDWord},
		{"Test [16-bit]", 2, ir.SizeWord},
		{"Test (16-bit)", 2, ir.SizeWord},
		{"Test (16 bits)", 2, ir.SizeWord},
		{"[64-bit] Test", 8, ir.SizeUnknown},
		{"[128-bit] Test", 16, ir.SizeUnknown},
		{"[17-bit] Test", 3, ir.SizeTByte},
		{"[100-bit] Test", 13, ir.SizeUnknown},
		{"[0-bit] Test", 1, ir.SizeUnknown},
		{"[1-bit] Test", 1, ir.SizeByte},
		{"[4-bit] Test", 1, ir.SizeByte},
		{"[8-bit] Test", 1, ir.SizeByte},
		{"[9-bit] Test", 2, ir.SizeWord},
		{"bit", 1, ir.SizeUnknown},
		{"9bit", 2, ir.SizeWord},
		{"-bit", 1, ir.SizeUnknown},

		{"[16-bit BE] Test", 2, ir.SizeWordBE},
		{"[24-bit BE] Test", 3, ir.SizeTByteBE},
		{"[32-bit BE] Test", 4, ir.SizeDWordBE},
		{"Test [32-bit BE]", 4, ir.SizeDWordBE},
		{"Test (32-bit BE)", 4, ir.SizeDWordBE},
		{"Test 32-bit BE", 4, ir.SizeDWordBE},
		{"[16-bit BigEndian] Test", 2, ir.SizeWordBE},
		{"[16-bit-BE] Test", 2, ir.SizeWordBE},
		{"[4-bit BE] Test", 1, ir.SizeByte},

		{"8 BYTE Test", 8, ir.SizeUnknown},
		{"Test 8 BYTE", 8, ir.SizeUnknown},
		{"Test 8 BYT", 1, ir.SizeUnknown},
		{"[2 Byte] Test", 2, ir.SizeWord},
		{"[4 Byte] Test", 4, ir.SizeDWord},
		{"[4 Byte - Float] Test", 4, ir.SizeFloat},
		{"[8 Byte] Test", 8, ir.SizeUnknown},
		{"[100 Bytes] Test", 100, ir.SizeUnknown},
		{"[2 byte] Test", 2, ir.SizeWord},
		{"[2-byte] Test", 2, ir.SizeWord},
		{"Test (6 bytes)", 6, ir.SizeUnknown},
		{"[2byte] Test", 2, ir.SizeWord},

		{"[float] Test", 4, ir.SizeFloat},
		{"[float32] Test", 4, ir.SizeFloat},
		{"Test float", 4, ir.SizeFloat},
		{"Test floa", 1, ir.SizeUnknown},
		{"is floating", 1, ir.SizeUnknown},
		{"has floated", 1, ir.SizeUnknown},
		{"16-afloat", 1, ir.SizeUnknown},
		{"[float be] Test", 4, ir.SizeFloatBE},
		{"[float bigendian] Test", 4, ir.SizeFloatBE},
		{"[be float] Test", 4, ir.SizeFloatBE},
		{"[bigendian float] Test", 4, ir.SizeFloatBE},
		{"[32-bit] pointer to float", 4, ir.SizeDWord},

		{"[64-bit double] Test", 8, ir.SizeDouble32},
		{"[64-bit double BE] Test", 8, ir.SizeDouble32BE},
		{"[double] Test", 8, ir.SizeDouble32},
		{"[double BE] Test", 8, ir.SizeDouble32BE},
		{"[double32] Test", 4, ir.SizeDouble32},
		{"[double32 BE] Test", 4, ir.SizeDouble32BE},
		{"[double64] Test", 8, ir.SizeDouble32},

		{"[MBF32] Test", 4, ir.SizeMBF32},
		{"[MBF40] Test", 5, ir.SizeMBF32},
		{"[MBF32 float] Test", 4, ir.SizeMBF32},
		{"[MBF80] Test", 1, ir.SizeUnknown},
		{"[MBF320] Test", 1, ir.SizeUnknown},
		{"[MBF-32] Test", 4, ir.SizeMBF32},
		{"[32-bit MBF] Test", 4, ir.SizeMBF32},
		{"[40-bit MBF] Test", 5, ir.SizeMBF32},
		{"[MBF] Test", 1, ir.SizeUnknown},
		{"Test MBF32", 4, ir.SizeMBF32},
		{"[MBF32 LE] Test", 4, ir.SizeMBF32LE},
		{"[MBF40-LE] Test", 5, ir.SizeMBF32LE},

		{"42=bitten", 1, ir.SizeUnknown},
		{"42-bitten", 1, ir.SizeUnknown},
		{"bit by bit", 1, ir.SizeUnknown},
		{"bit1=chest", 1, ir.SizeUnknown},

		{"Bite count (16-bit)", 2, ir.SizeWord},
		{"Number of bits collected (32 bits)", 4, ir.SizeDWord},

		{"100 32-bit pointers [400 bytes]", 400, ir.SizeUnknown},
		{"[400 bytes] 100 32-bit pointers", 400, ir.SizeUnknown},

		{"[lower4] score digit 1", 1, ir.SizeByte},
		{"[upper4] score digit 2", 1, ir.SizeByte},
		{"lower 4-byte value", 1, ir.SizeByte},
		{"lower (4-byte) value", 4, ir.SizeDWord},
	}
	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			size, bytes := InferSize(tt.note)
			assert.Equal(t, tt.size, size, "size")
			assert.Equal(t, tt.bytes, bytes, "bytes")
		})
	}
}

func TestInferSizeFirstLineOnly(t *testing.T) {
	size, bytes := InferSize("Lives\n[16-bit] ignored")
	assert.Equal(t, ir.SizeUnknown, size)
	assert.Equal(t, 1, bytes)
}

func TestNoteContains(t *testing.T) {
	n := New(0x100, "[32-bit] Score", "")
	assert.Equal(t, 4, n.Size)
	assert.True(t, n.Contains(0x100))
	assert.True(t, n.Contains(0x103))
	assert.False(t, n.Contains(0x104))
	assert.False(t, n.Contains(0xff))
}

func TestNoteContainsNearTopOfAddressSpace(t *testing.T) {
	n := New(0xFFFFFFFE, "[32-bit] Score", "")
	assert.True(t, n.Contains(0xFFFFFFFF))
}

func TestNoteIsArray(t *testing.T) {
	assert.True(t, New(0, "[8 bytes] name", "").IsArray())
	assert.False(t, New(0, "[32-bit] score", "").IsArray())
	assert.True(t, New(0, "[6 bytes] three 16-bit values", "").IsArray())
	assert.False(t, New(0, "Test", "").IsArray())
}

func TestNoteIsProbablePointer(t *testing.T) {
	assert.True(t, New(0, "[32-bit] Player pointer", "").IsProbablePointer())
	assert.True(t, New(0, "Player Ptr", "").IsProbablePointer())
	assert.True(t, New(0, "Player struct\n+0x10 = hp\n  +0x14 = mp", "").IsProbablePointer())
	assert.False(t, New(0, "Player struct\n+0x10 = hp", "").IsProbablePointer())
}

func TestPointerNotesSkipEnumerations(t *testing.T) {
	n := New(0, "[32-bit] Pointer\n+0x00 = a\n+0x01 = b\n+0x02 = c", "")
	assert.Nil(t, n.Enums)
}

func TestLookupPrefersLastNote(t *testing.T) {
	list := []Note{
		New(0x100, "[16 bytes] Party", "a"),
		New(0x104, "[8-bit] Member 2 HP", "b"),
	}

	n, ok := Lookup(list, 0x104)
	require.True(t, ok)
	assert.Equal(t, "b", n.Author)

	n, ok = Lookup(list, 0x105)
	require.True(t, ok)
	assert.Equal(t, "a", n.Author)

	_, ok = Lookup(list, 0x200)
	assert.False(t, ok)
}
