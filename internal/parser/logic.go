package parser

import (
	"strings"

	"github.com/roach88/ralint/internal/ir"
)

// Mode selects how a definition is split into groups.
type Mode int

const (
	// ModeAuto treats the definition as a value expression when it
	// contains "$", and as trigger logic otherwise.
	ModeAuto Mode = iota
	ModeTrigger
	ModeValue
)

// ParseLogic parses a full definition into groups of requirements.
//
// Trigger logic separates groups with "S" (an "S" directly after "0x" is the
// Bit6 size prefix, not a separator); value expressions separate them with
// "$". Requirements are separated by "_". Empty groups are legal.
func ParseLogic(text string, mode Mode) (*ir.Logic, error) {
	value := mode == ModeValue || (mode == ModeAuto && strings.Contains(text, "$"))

	var parts []string
	if value {
		parts = strings.Split(text, "$")
	} else {
		parts = splitTriggerGroups(text)
	}

	logic := &ir.Logic{Value: value, Source: text, Groups: make([]ir.Group, 0, len(parts))}
	for _, part := range parts {
		group := ir.Group{}
		if part != "" {
			for _, def := range strings.Split(part, "_") {
				req, err := ParseRequirement(def)
				if err != nil {
					return nil, newParseError(CategoryLogic, text, err)
				}
				group = append(group, req)
			}
		}
		logic.Groups = append(logic.Groups, group)
	}
	return logic, nil
}

// MustParseLogic is ParseLogic that panics on error. Intended for tests and
// package-level fixtures.
func MustParseLogic(text string) *ir.Logic {
	l, err := ParseLogic(text, ModeAuto)
	if err != nil {
		panic(err)
	}
	return l
}

func splitTriggerGroups(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != 'S' {
			continue
		}
		if i >= 2 && text[i-2:i] == "0x" {
			continue
		}
		parts = append(parts, text[start:i])
		start = i + 1
	}
	return append(parts, text[start:])
}
