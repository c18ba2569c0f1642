package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/ralint/internal/ir"
)

var requirementRE = regexp.MustCompile(`(?i)^([A-Z]:)?(` + operandPattern + `)` +
	`(?:(!=|<=|>=|==|=|<|>|\+|-|\*|/|&|\^|%)(` + operandPattern + `))?` +
	`(?:\.(\d+)\.)?$`)

// ParseRequirement parses a single requirement such as "R:0xH1234=5.3.".
//
// When a value-producing flag (AddSource, SubSource, AddAddress, Remember)
// is followed by a comparison, the comparison and its right operand are
// discarded, matching how the runtime evaluates such requirements.
func ParseRequirement(text string) (ir.Requirement, error) {
	m := requirementRE.FindStringSubmatch(text)
	if m == nil {
		return ir.Requirement{}, newParseError(CategoryRequirement, text, nil)
	}

	var req ir.Requirement
	if m[1] != "" {
		flag, ok := ir.FlagByPrefix(strings.TrimSuffix(m[1], ":"))
		if !ok {
			return ir.Requirement{}, newParseError(CategoryRequirement, text, nil)
		}
		req.Flag = flag
	}

	lhs, err := ParseOperand(m[2])
	if err != nil {
		return ir.Requirement{}, newParseError(CategoryRequirement, text, err)
	}
	req.Left = lhs

	if m[3] != "" {
		op := ir.Operator(m[3])
		if op == "==" {
			op = ir.OpEq
		}
		if !(req.Flag.Scalable() && op.IsComparison()) {
			rhs, err := ParseOperand(m[4])
			if err != nil {
				return ir.Requirement{}, newParseError(CategoryRequirement, text, err)
			}
			req.Op = op
			req.Right = rhs
		}
	}

	if m[5] != "" {
		hits, err := strconv.Atoi(m[5])
		if err != nil {
			return ir.Requirement{}, newParseError(CategoryRequirement, text, err)
		}
		req.Hits = hits
	}
	return req, nil
}
