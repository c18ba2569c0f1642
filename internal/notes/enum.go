package notes

import (
	"regexp"
	"strconv"
	"strings"
)

// Enumeration is one labelled value listed in a code note ("0x02 = Mario").
type Enumeration struct {
	Literal string `json:"literal"`
	Meaning string `json:"meaning"`
	Value   int64  `json:"value"`
}

var (
	enumLineRE    = regexp.MustCompile(`(?i)((?:(?:0x)?[0-9a-f]+)+)([^\w\d]*[^\w\d\s][^\w\d]*).+$`)
	enumLiteralRE = regexp.MustCompile(`(?i)\b(0x)?([0-9a-f]+)\b`)
	hexLetterRE   = regexp.MustCompile(`(?i)[a-f]`)
)

// ParseEnumerations extracts value/meaning pairs from the lines after the
// first. The most common separator between a leading number and the rest of
// the line is taken as the delimiter (first seen wins ties). Nothing is
// returned unless the delimiter appears more than once and at least three
// lines use it. If any literal looks hexadecimal, all literals are read as
// hex.
func ParseEnumerations(text string) []Enumeration {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	var order []string
	counts := make(map[string]int)
	for _, line := range lines[1:] {
		m := enumLineRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if _, ok := counts[m[2]]; !ok {
			order = append(order, m[2])
		}
		counts[m[2]]++
	}
	if len(order) == 0 {
		return nil
	}

	delim, best := order[0], counts[order[0]]
	for _, d := range order[1:] {
		if counts[d] > best {
			delim, best = d, counts[d]
		}
	}

	var (
		enums     []Enumeration
		isHex     bool
		lineCount int
	)
	for _, line := range lines[1:] {
		if !strings.Contains(line, delim) {
			continue
		}
		lineCount++

		lhs, rest, _ := strings.Cut(line, delim)
		meaning := strings.TrimSpace(rest)
		for _, m := range enumLiteralRE.FindAllStringSubmatch(lhs, -1) {
			enums = append(enums, Enumeration{Literal: m[0], Meaning: meaning})
			if m[1] != "" || hexLetterRE.MatchString(m[0]) {
				isHex = true
			}
		}
	}

	if best == 1 || lineCount < 3 {
		return nil
	}

	base := 10
	if isHex {
		base = 16
	}
	out := enums[:0]
	for _, e := range enums {
		lit := e.Literal
		if len(lit) > 2 && strings.EqualFold(lit[:2], "0x") {
			lit = lit[2:]
		}
		v, err := strconv.ParseInt(lit, base, 64)
		if err != nil {
			continue
		}
		e.Value = v
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
