// Package loader reads the on-disk formats the toolkit consumes: code note
// exports, set exports, local user files and rich presence scripts.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/ralint/internal/notes"
)

type noteRecord struct {
	Address json.RawMessage `json:"Address"`
	Note    string          `json:"Note"`
	User    string          `json:"User"`
}

// LoadCodeNotes decodes a code note export. Records with an empty note are
// skipped. Addresses may be hex strings ("0x001234"), decimal strings, or
// numbers.
func LoadCodeNotes(r io.Reader) ([]notes.Note, error) {
	var records []noteRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode code notes: %w", err)
	}

	out := make([]notes.Note, 0, len(records))
	for i, rec := range records {
		if rec.Note == "" {
			continue
		}
		addr, err := decodeAddress(rec.Address)
		if err != nil {
			return nil, fmt.Errorf("code note %d: %w", i, err)
		}
		out = append(out, notes.New(addr, rec.Note, rec.User))
	}
	return out, nil
}

func decodeAddress(raw json.RawMessage) (uint32, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseAddress(s)
	}
	var n uint32
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid address %s", string(raw))
	}
	return n, nil
}

// parseAddress accepts "0x"-prefixed hex or plain decimal.
func parseAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(rest, 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return uint32(v), nil
}
