package ir

import (
	"fmt"
	"strings"
)

// Operator is a comparison or arithmetic operator between two operands.
// OpNone means the requirement has no right-hand side.
type Operator string

const (
	OpNone Operator = ""
	OpEq   Operator = "="
	OpNe   Operator = "!="
	OpLt   Operator = "<"
	OpLe   Operator = "<="
	OpGt   Operator = ">"
	OpGe   Operator = ">="
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
	OpAnd  Operator = "&"
	OpXor  Operator = "^"
	OpMod  Operator = "%"
)

var reversed = map[Operator]Operator{
	OpEq: OpNe, OpNe: OpEq,
	OpGt: OpLe, OpLe: OpGt,
	OpLt: OpGe, OpGe: OpLt,
}

// IsComparison reports whether the operator compares its operands.
func (op Operator) IsComparison() bool {
	_, ok := reversed[op]
	return ok
}

// IsModifying reports whether the operator computes a value.
func (op Operator) IsModifying() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpAnd, OpXor, OpMod:
		return true
	}
	return false
}

// Reverse returns the logical negation of a comparison ("=" becomes "!=",
// ">" becomes "<="). Non-comparisons are returned unchanged.
func (op Operator) Reverse() Operator {
	if r, ok := reversed[op]; ok {
		return r
	}
	return op
}

// Requirement is a single condition: flag, left operand, optional operator
// and right operand, and a hit target.
type Requirement struct {
	Flag  Flag     `json:"flag,omitempty"`
	Left  Operand  `json:"lhs"`
	Op    Operator `json:"op,omitempty"`
	Right Operand  `json:"rhs,omitzero"`
	Hits  int      `json:"hits"`
}

// HasRight reports whether the requirement has an operator and right side.
func (r Requirement) HasRight() bool { return r.Op != OpNone }

// HasHits reports whether the requirement can carry a hit target.
func (r Requirement) HasHits() bool { return r.Flag == FlagNone || !r.Flag.Scalable() }

// IsComparison reports whether the requirement compares its operands.
func (r Requirement) IsComparison() bool { return r.Op.IsComparison() }

// IsModifying reports whether the requirement computes a value.
func (r Requirement) IsModifying() bool { return r.Op != OpNone && !r.Op.IsComparison() }

// IsTerminating reports whether the requirement ends a combining chain.
func (r Requirement) IsTerminating() bool { return r.Flag == FlagNone || !r.Flag.Combining() }

// Operands returns the left operand and, when present, the right operand.
func (r Requirement) Operands() []Operand {
	if r.HasRight() {
		return []Operand{r.Left, r.Right}
	}
	return []Operand{r.Left}
}

// Canonicalize returns a copy with the lower-priority operand kind on the
// left. Swapping sides reverses the comparison so the meaning is unchanged.
func (r Requirement) Canonicalize() Requirement {
	if r.HasRight() && r.IsComparison() && r.Left.Kind.Priority() > r.Right.Kind.Priority() {
		r.Left, r.Right = r.Right, r.Left
		r.Op = r.Op.Reverse()
	}
	return r
}

// ReverseComparison returns a copy with the comparison negated.
func (r Requirement) ReverseComparison() Requirement {
	r.Op = r.Op.Reverse()
	return r
}

// WithFlag returns a copy carrying a different flag.
func (r Requirement) WithFlag(f Flag) Requirement {
	r.Flag = f
	return r
}

// WithHits returns a copy with a different hit target.
func (r Requirement) WithHits(hits int) Requirement {
	r.Hits = hits
	return r
}

// IsAlwaysTrue reports whether the requirement is an equality between
// identical operands.
func (r Requirement) IsAlwaysTrue() bool {
	return r.Op == OpEq && r.Left.Equal(r.Right)
}

// IsAlwaysFalse reports whether the requirement is an equality between two
// different literals.
func (r Requirement) IsAlwaysFalse() bool {
	return r.Op == OpEq &&
		!r.Left.IsAddress() && !r.Right.IsAddress() &&
		!r.Left.Equal(r.Right)
}

// Annotated renders the requirement for human-readable messages.
func (r Requirement) Annotated() string {
	s := r.Left.Annotated()
	if r.HasRight() {
		s += fmt.Sprintf(" %s %s", r.Op, r.Right.Annotated())
	}
	return s
}

// String renders the requirement in condition syntax.
func (r Requirement) String() string {
	var b strings.Builder
	if r.Flag != FlagNone {
		b.WriteString(r.Flag.Prefix())
		b.WriteByte(':')
	}
	b.WriteString(r.Left.Definition())
	if r.HasRight() {
		b.WriteString(string(r.Op))
		b.WriteString(r.Right.Definition())
	}
	if r.Hits > 0 && r.HasHits() {
		fmt.Fprintf(&b, ".%d.", r.Hits)
	}
	return b.String()
}
