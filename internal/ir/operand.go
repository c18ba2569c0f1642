package ir

import (
	"fmt"
	"math"
	"strconv"
)

// Operand is one side of a requirement: a memory read or a literal.
type Operand struct {
	Kind  OperandKind `json:"kind"`
	Value float64     `json:"value"`
	Size  Size        `json:"size,omitempty"`
}

// Mem builds a plain memory read operand.
func Mem(size Size, addr uint32) Operand {
	return Operand{Kind: KindMem, Value: float64(addr), Size: size}
}

// Read builds an address operand of the given kind.
func Read(kind OperandKind, size Size, addr uint32) Operand {
	return Operand{Kind: kind, Value: float64(addr), Size: size}
}

// Literal builds a Value operand.
func Literal(v float64) Operand {
	return Operand{Kind: KindValue, Value: v}
}

// Recall is the operand that reads back the remembered value.
var Recall = Operand{Kind: KindRecall}

// IsAddress reports whether the operand reads memory.
func (o Operand) IsAddress() bool { return o.Kind.IsAddress() }

// Address returns the operand value as a memory address.
func (o Operand) Address() uint32 { return uint32(o.Value) }

// SameValue reports whether two operands read the same location (or hold the
// same literal) regardless of kind.
func (o Operand) SameValue(other Operand) bool {
	return o.Size == other.Size && o.Value == other.Value
}

// Equal reports whether two operands are identical.
func (o Operand) Equal(other Operand) bool {
	return o.SameValue(other) && o.Kind == other.Kind
}

// MaxValue returns the largest value the operand can evaluate to.
func (o Operand) MaxValue() float64 {
	switch {
	case o.Kind == KindRecall:
		return math.Inf(1)
	case !o.Kind.IsAddress():
		return o.Value
	default:
		return o.Size.MaxValue()
	}
}

// ValueString renders the address as 0x%08x or the literal in decimal.
func (o Operand) ValueString() string {
	if o.Kind.IsAddress() {
		return fmt.Sprintf("0x%08x", o.Address())
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// String renders the operand value; a recall renders as "{recall}".
func (o Operand) String() string {
	if o.Kind == KindRecall {
		return KindRecall.Prefix()
	}
	return o.ValueString()
}

// Annotated prefixes address reads with their kind name ("Delta 0x00001234").
func (o Operand) Annotated() string {
	if o.Kind.IsAddress() {
		return o.Kind.String() + " " + o.String()
	}
	return o.String()
}

// Definition renders the operand in condition syntax.
func (o Operand) Definition() string {
	switch {
	case o.Kind == KindRecall:
		return KindRecall.Prefix()
	case o.Kind.IsAddress():
		return fmt.Sprintf("%s%s%x", o.Kind.Prefix(), o.Size.Prefix(), o.Address())
	case o.Kind == KindFloat:
		return "f" + strconv.FormatFloat(o.Value, 'f', -1, 64)
	default:
		return strconv.FormatFloat(o.Value, 'f', -1, 64)
	}
}
