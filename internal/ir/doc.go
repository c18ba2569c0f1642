// Package ir provides the immutable model of achievement condition logic.
//
// This package contains the domain enumerations (operand kinds, flags,
// memory sizes, value formats) and the Operand, Requirement and Logic
// types with their pure query and transformation methods. Text parsing
// lives in package parser. All other internal packages import ir; ir
// imports nothing internal.
//
// Key design constraints:
//   - Values are never mutated after construction; transformations
//     (Canonicalize, ReverseComparison, WithFlag) return copies
//   - Address operands always carry a Size; literal operands never do
//   - Enumeration tables are package-level and read-only
package ir
