// Package notes models code notes: free-text annotations that developers
// attach to memory addresses. Size/type and value enumerations are inferred
// from the text with the same heuristics the toolkit's memory inspector uses.
package notes

import (
	"strings"

	"github.com/roach88/ralint/internal/ir"
)

// Note is a code note attached to an address.
type Note struct {
	Address uint32        `json:"address"`
	Size    int           `json:"size"`
	Type    ir.Size       `json:"type,omitempty"`
	Text    string        `json:"note"`
	Author  string        `json:"author,omitempty"`
	Enums   []Enumeration `json:"enums,omitempty"`
}

// New builds a note and runs size and enumeration inference over its text.
// Enumeration parsing is skipped for notes that describe pointers.
func New(addr uint32, text, author string) Note {
	n := Note{Address: addr, Text: text, Author: author}
	n.Type, n.Size = InferSize(text)
	if !n.IsProbablePointer() {
		n.Enums = ParseEnumerations(text)
	}
	return n
}

// Contains reports whether addr falls in [Address, Address+Size).
func (n Note) Contains(addr uint32) bool {
	return addr >= n.Address && uint64(addr) < uint64(n.Address)+uint64(n.Size)
}

// IsArray reports whether the note spans at least two elements of its type.
func (n Note) IsArray() bool {
	width := 1
	if n.Type != ir.SizeUnknown {
		width = n.Type.Bytes()
	}
	return n.Size >= width*2
}

// IsProbablePointer reports whether the note describes a pointer: the first
// line mentions "ptr"/"pointer", or two or more later lines start with "+".
func (n Note) IsProbablePointer() bool {
	lines := strings.Split(strings.ToLower(n.Text), "\n")
	if strings.Contains(lines[0], "ptr") || strings.Contains(lines[0], "pointer") {
		return true
	}
	offsets := 0
	for _, line := range lines[1:] {
		if strings.HasPrefix(strings.TrimSpace(line), "+") {
			offsets++
		}
	}
	return offsets >= 2
}

// Lookup returns the note covering addr. When notes overlap, the last one in
// the list wins since later notes tend to be more specific.
func Lookup(notes []Note, addr uint32) (*Note, bool) {
	for i := len(notes) - 1; i >= 0; i-- {
		if notes[i].Contains(addr) {
			return &notes[i], true
		}
	}
	return nil, false
}
