package parser

import (
	"errors"
	"fmt"
)

// Category identifies which grammar level failed to parse.
type Category string

const (
	CategoryOperand     Category = "operand"
	CategoryRequirement Category = "requirement"
	CategoryLogic       Category = "logic"
	CategoryDisplay     Category = "display"
)

// ParseError reports text that does not match the condition grammar.
type ParseError struct {
	Category Category
	Text     string
	Err      error // nested failure, optional
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Category, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(cat Category, text string, err error) *ParseError {
	return &ParseError{Category: cat, Text: text, Err: err}
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// DisplayError reports a malformed rich presence display line.
func DisplayError(line string, err error) *ParseError {
	return newParseError(CategoryDisplay, line, err)
}
