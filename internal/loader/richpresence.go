package loader

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/ir"
	"github.com/roach88/ralint/internal/parser"
)

var (
	conditionalDisplay = regexp.MustCompile(`^\?(.+?)\?(.*)$`)
	displayLookup      = regexp.MustCompile(`(?i)@([ _a-z][ _a-z0-9]*)\((.+?)\)`)
)

type rpBlock int

const (
	blockNone rpBlock = iota
	blockMacro
	blockLookup
	blockDisplay
)

// rpReader accumulates the block currently being read.
type rpReader struct {
	rp     *asset.RichPresence
	block  rpBlock
	name   string
	format *ir.Format
	ranges []asset.LookupRange
}

// flush commits a finished Format or Lookup block.
func (r *rpReader) flush() {
	switch r.block {
	case blockMacro:
		r.rp.CustomMacros = append(r.rp.CustomMacros, r.name)
		r.rp.Macros[r.name] = r.format
	case blockLookup:
		r.rp.Lookups[r.name] = r.ranges
	}
	r.name, r.format, r.ranges = "", nil, nil
}

// LoadRichPresence reads and parses a rich presence script.
func LoadRichPresence(r io.Reader) (*asset.RichPresence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rich presence: %w", err)
	}
	return ParseRichPresence(string(data))
}

// ParseRichPresence parses the text of a rich presence script. Comments
// ("//" to end of line) and blank lines are ignored. The Display block must
// come last; every line after "Display:" is a display clause.
func ParseRichPresence(text string) (*asset.RichPresence, error) {
	rd := &rpReader{rp: asset.NewRichPresence()}
	rd.rp.Text = text

	for _, line := range nonEmptyLine.FindAllString(text, -1) {
		line, _, _ = strings.Cut(line, "//")
		line = strings.TrimSpace(line)

		switch {
		case line == "":
		case rd.block == blockDisplay:
			d, err := parseDisplay(line)
			if err != nil {
				return nil, err
			}
			rd.rp.Display = append(rd.rp.Display, d)
		case strings.HasPrefix(line, "Format:"):
			rd.flush()
			rd.block, rd.name = blockMacro, line[len("Format:"):]
		case strings.HasPrefix(line, "Lookup:"):
			rd.flush()
			rd.block, rd.name, rd.ranges = blockLookup, line[len("Lookup:"):], []asset.LookupRange{}
		case strings.HasPrefix(line, "Display:"):
			rd.flush()
			rd.block = blockDisplay
		case rd.block == blockMacro:
			if t, ok := strings.CutPrefix(line, "FormatType="); ok {
				if f, found := ir.FormatByType(t); found {
					rd.format = &f
				}
			}
		case rd.block == blockLookup:
			rd.ranges = append(rd.ranges, parseLookupLine(line)...)
		}
	}
	rd.flush()

	for i := range rd.rp.Display {
		d := &rd.rp.Display[i]
		for _, m := range displayLookup.FindAllStringSubmatch(d.Text, -1) {
			calc, err := parser.ParseLogic(m[2], parser.ModeValue)
			if err != nil {
				return nil, parser.DisplayError(d.Text, err)
			}
			d.Lookups = append(d.Lookups, asset.DisplayLookup{Name: m[1], Calc: calc})
		}
	}
	return rd.rp, nil
}

func parseDisplay(line string) (asset.Display, error) {
	if !strings.HasPrefix(line, "?") {
		return asset.Display{Text: line}, nil
	}
	m := conditionalDisplay.FindStringSubmatch(line)
	if m == nil {
		return asset.Display{}, parser.DisplayError(line, fmt.Errorf("malformed conditional display"))
	}
	cond, err := parser.ParseLogic(m[1], parser.ModeTrigger)
	if err != nil {
		return asset.Display{}, parser.DisplayError(line, err)
	}
	return asset.Display{Condition: cond, Text: m[2]}, nil
}

// parseLookupLine reads "k,k-k,*=label". "*" is the fallback entry.
func parseLookupLine(line string) []asset.LookupRange {
	keys, value, _ := strings.Cut(line, "=")
	var out []asset.LookupRange
	for _, k := range strings.Split(keys, ",") {
		if k == "*" {
			out = append(out, asset.LookupRange{Value: value, Fallback: true})
			continue
		}
		bounds := strings.Split(k, "-")
		out = append(out, asset.LookupRange{Start: bounds[0], End: bounds[len(bounds)-1], Value: value})
	}
	return out
}
