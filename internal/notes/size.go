package notes

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/roach88/ralint/internal/ir"
)

type token struct {
	text   string
	number bool
}

// tokenize splits s into runs of ASCII digits, runs of ASCII letters, and
// single other characters.
func tokenize(s string) []token {
	var out []token
	for i := 0; i < len(s); {
		c := s[i]
		j := i + 1
		switch {
		case isDigit(c):
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			out = append(out, token{s[i:j], true})
		case isLetter(c):
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			out = append(out, token{s[i:j], false})
		default:
			for j < len(s) && !utf8Start(s[j]) {
				j++
			}
			out = append(out, token{s[i:j], false})
		}
		i = j
	}
	return out
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func utf8Start(c byte) bool { return c&0xC0 != 0x80 }

// utf16Len counts UTF-16 code units, the unit the minimum-length rule uses.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1 << 30
	}
	return n
}

// InferSize extracts the memory size and byte count described by the first
// line of a code note ("[16-bit BE] Lives", "[4 Byte - Float] Speed").
// It returns SizeUnknown when no canonical size applies, and 1 byte when
// nothing is found at all.
//
// The algorithm walks tokens left to right, looking back one significant
// token (spaces and hyphens are transparent). Explicit byte counts override
// counts derived from bits; the first size found otherwise sticks.
func InferSize(text string) (ir.Size, int) {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.ToLower(first)
	if utf16Len(first) < 4 {
		return ir.SizeUnknown, 1
	}

	var (
		bytes            = 1
		size             = ir.SizeUnknown
		bytesFromBits    bool
		foundSize        bool
		prevWordIsSize   bool
		prevWordIsNumber bool
		prevWord         string
	)

	for _, tok := range tokenize(first) {
		word := tok.text
		wordIsSize := false

		switch {
		case tok.number:
			num := atoi(word)
			switch {
			case prevWord == "mbf":
				if num == 32 || num == 40 {
					bytes = num / 8
					size = ir.SizeMBF32
					wordIsSize = true
					foundSize = true
				}
			case prevWord == "double" && num == 32:
				bytes = num / 8
				size = ir.SizeDouble32
				wordIsSize = true
				foundSize = true
			case num == 4 && (prevWord == "lower" || prevWord == "upper"):
				// nibble notes are reported as whole bytes
				bytes = 1
				size = ir.SizeByte
				wordIsSize = true
				foundSize = true
			}

		case prevWordIsSize:
			switch word {
			case "float":
				if size == ir.SizeDWord {
					size = ir.SizeFloat
					wordIsSize = true
				}
			case "double":
				if size == ir.SizeDWord || bytes == 8 {
					size = ir.SizeDouble32
					wordIsSize = true
				}
			case "be", "bigendian":
				size = bigEndian(size)
			case "le":
				if size == ir.SizeMBF32 {
					size = ir.SizeMBF32LE
				}
			case "mbf":
				if bytes == 4 || bytes == 5 {
					size = ir.SizeMBF32
				}
			}

		case prevWordIsNumber:
			num := atoi(prevWord)
			switch word {
			case "bit", "bits":
				if !foundSize {
					bytes = (num + 7) / 8
					size = ir.SizeUnknown
					bytesFromBits = true
					wordIsSize = true
					foundSize = true
				}
			case "byte", "bytes":
				if !foundSize || bytesFromBits {
					bytes = num
					size = ir.SizeUnknown
					bytesFromBits = false
					wordIsSize = true
					foundSize = true
				}
			}
			if wordIsSize {
				switch bytes {
				case 0:
					bytes = 1
				case 1:
					size = ir.SizeByte
				case 2:
					size = ir.SizeWord
				case 3:
					size = ir.SizeTByte
				case 4:
					size = ir.SizeDWord
				default:
					size = ir.SizeUnknown
				}
			}

		case word == "float":
			if !foundSize {
				bytes = 4
				size = ir.SizeFloat
				wordIsSize = true
				if prevWord == "be" || prevWord == "bigendian" {
					size = ir.SizeFloatBE
				}
			}

		case word == "double":
			if !foundSize {
				bytes = 8
				size = ir.SizeDouble32
				wordIsSize = true
				if prevWord == "be" || prevWord == "bigendian" {
					size = ir.SizeDouble32BE
				}
			}
		}

		if word != " " && word != "-" {
			prevWordIsSize = wordIsSize
			prevWordIsNumber = tok.number
			prevWord = word
		}
	}

	return size, bytes
}

func bigEndian(s ir.Size) ir.Size {
	switch s {
	case ir.SizeWord:
		return ir.SizeWordBE
	case ir.SizeTByte:
		return ir.SizeTByteBE
	case ir.SizeDWord:
		return ir.SizeDWordBE
	case ir.SizeFloat:
		return ir.SizeFloatBE
	case ir.SizeDouble32:
		return ir.SizeDouble32BE
	}
	return s
}
