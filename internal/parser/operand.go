package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/ralint/internal/ir"
)

// operandPattern is shared with the requirement grammar. Alternatives, in
// order: address read, decimal/float literal, hex literal, recall.
const operandPattern = `[~dpb]?(?:(?:0x)+[G-Z ]?|f[A-Z])(?:0x)*[0-9A-F]{1,8}` +
	`|[fv]?[-+]?\d+(?:\.\d+)?` +
	`|[G-Z ]?[0-9A-F]+` +
	`|\{recall\}`

var operandRE = regexp.MustCompile(`(?i)^(?:` +
	`(([~dpb]?)((?:0x)+[G-Z ]?|f[A-Z])(?:0x)*([0-9A-F]{1,8}))` +
	`|(([fv]?)([-+]?\d+(?:\.\d+)?))` +
	`|([G-Z ]?([0-9A-F]+))` +
	`|(\{recall\})` +
	`)$`)

// ParseOperand parses a single operand.
//
// A bare hex run such as "H10" or "ff" is a literal Value, never an address;
// an address read always starts with an "0x" or "f<size>" prefix.
func ParseOperand(text string) (ir.Operand, error) {
	m := operandRE.FindStringSubmatch(text)
	if m == nil {
		return ir.Operand{}, newParseError(CategoryOperand, text, nil)
	}

	switch {
	case m[1] != "":
		kind, ok := ir.KindByPrefix(m[2])
		if !ok {
			return ir.Operand{}, newParseError(CategoryOperand, text, nil)
		}
		size, ok := ir.SizeByPrefix(m[3])
		if !ok {
			return ir.Operand{}, newParseError(CategoryOperand, text, nil)
		}
		addr, err := strconv.ParseUint(m[4], 16, 32)
		if err != nil {
			return ir.Operand{}, newParseError(CategoryOperand, text, err)
		}
		return ir.Read(kind, size, uint32(addr)), nil

	case m[5] != "":
		kind := ir.KindValue
		if strings.EqualFold(m[6], "f") {
			kind = ir.KindFloat
		}
		v, err := strconv.ParseFloat(m[7], 64)
		if err != nil {
			return ir.Operand{}, newParseError(CategoryOperand, text, err)
		}
		return ir.Operand{Kind: kind, Value: v}, nil

	case m[8] != "":
		v, err := strconv.ParseUint(m[9], 16, 64)
		if err != nil {
			return ir.Operand{}, newParseError(CategoryOperand, text, err)
		}
		return ir.Literal(float64(v)), nil

	default:
		return ir.Recall, nil
	}
}
