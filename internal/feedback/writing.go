package feedback

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/ralint/internal/asset"
)

// PresentationSuite checks the player-facing text of achievements and
// leaderboards.
var PresentationSuite = Suite[asset.Asset]{
	Label: "Presentation & Writing",
	Rules: []Rule[asset.Asset]{
		{Name: "title-case", Check: checkTitleCase},
		{Name: "writing-mistakes", Check: checkWritingMistakes},
		{Name: "desc-brackets", Check: checkBrackets},
	},
}

const (
	fieldTitle       = "title"
	fieldDescription = "description"
)

var titleMinors = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true, "by": true,
	"en": true, "for": true, "from": true, "how": true, "if": true, "in": true,
	"n'": true, "'n'": true, "neither": true, "nor": true, "of": true, "on": true,
	"only": true, "onto": true, "out": true, "or": true, "over": true, "per": true,
	"so": true, "than": true, "that": true, "the": true, "to": true, "until": true,
	"up": true, "upon": true, "v": true, "v.": true, "versus": true, "vs": true,
	"vs.": true, "via": true, "when": true, "with": true, "without": true, "yet": true,
}

var titleWordRE = regexp.MustCompile(`[0-9'\x{2018}\x{2019}\p{Latin}\-]+`)

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// MakeTitleCase capitalizes every word of phrase except minor words in the
// middle. Words written entirely in capitals are left alone.
func MakeTitleCase(phrase string) string {
	var b strings.Builder
	last := 0
	for _, loc := range titleWordRE.FindAllStringIndex(phrase, -1) {
		b.WriteString(phrase[last:loc[0]])
		word := phrase[loc[0]:loc[1]]
		switch {
		case word == strings.ToUpper(word):
			b.WriteString(word)
		case loc[0] == 0 || loc[1] == len(phrase):
			b.WriteString(capitalize(word))
		case titleMinors[word]:
			b.WriteString(word)
		default:
			b.WriteString(capitalize(word))
		}
		last = loc[1]
	}
	b.WriteString(phrase[last:])
	return b.String()
}

func checkTitleCase(a asset.Asset) []Issue {
	title := a.Metadata().Title
	corrected := MakeTitleCase(title)
	if corrected == title {
		return nil
	}
	q := url.PathEscape(title)
	detail := fmt.Sprintf("Automated suggestion (hyphenated or otherwise-separated words may need a manual check): %s. "+
		"Additional suggestions: www.titlecaseconverter.com/?style=CMOS&showExplanations=1&keepAllCaps=1&multiLine=1&highlightChanges=1&convertOnPaste=1&straightQuotes=1&title=%s, "+
		"www.capitalizemytitle.com/style/Chicago/?title=%s",
		corrected, q, q)
	return []Issue{newIssue(TitleCase, detail).on(fieldTitle)}
}

// emoji covers the blocks whose code points render as emoji by default.
var emoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231a, Hi: 0x231b, Stride: 1},
		{Lo: 0x23e9, Hi: 0x23ec, Stride: 1},
		{Lo: 0x23f0, Hi: 0x23f3, Stride: 3},
		{Lo: 0x25fd, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2614, Hi: 0x2615, Stride: 1},
		{Lo: 0x2648, Hi: 0x2653, Stride: 1},
		{Lo: 0x267f, Hi: 0x2693, Stride: 20},
		{Lo: 0x26a1, Hi: 0x26a1, Stride: 1},
		{Lo: 0x26aa, Hi: 0x26ab, Stride: 1},
		{Lo: 0x26bd, Hi: 0x26be, Stride: 1},
		{Lo: 0x26c4, Hi: 0x26c5, Stride: 1},
		{Lo: 0x26ce, Hi: 0x26d4, Stride: 6},
		{Lo: 0x26ea, Hi: 0x26ea, Stride: 1},
		{Lo: 0x26f2, Hi: 0x26f3, Stride: 1},
		{Lo: 0x26f5, Hi: 0x26fa, Stride: 5},
		{Lo: 0x26fd, Hi: 0x26fd, Stride: 1},
		{Lo: 0x2705, Hi: 0x2705, Stride: 1},
		{Lo: 0x270a, Hi: 0x270b, Stride: 1},
		{Lo: 0x2728, Hi: 0x274c, Stride: 36},
		{Lo: 0x274e, Hi: 0x274e, Stride: 1},
		{Lo: 0x2753, Hi: 0x2755, Stride: 1},
		{Lo: 0x2757, Hi: 0x2757, Stride: 1},
		{Lo: 0x2795, Hi: 0x2797, Stride: 1},
		{Lo: 0x27b0, Hi: 0x27bf, Stride: 15},
		{Lo: 0x2b1b, Hi: 0x2b1c, Stride: 1},
		{Lo: 0x2b50, Hi: 0x2b55, Stride: 5},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f004, Hi: 0x1f004, Stride: 1},
		{Lo: 0x1f0cf, Hi: 0x1f0cf, Stride: 1},
		{Lo: 0x1f18e, Hi: 0x1f18e, Stride: 1},
		{Lo: 0x1f191, Hi: 0x1f19a, Stride: 1},
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1},
		{Lo: 0x1f201, Hi: 0x1f201, Stride: 1},
		{Lo: 0x1f21a, Hi: 0x1f22f, Stride: 21},
		{Lo: 0x1f232, Hi: 0x1f236, Stride: 1},
		{Lo: 0x1f238, Hi: 0x1f23a, Stride: 1},
		{Lo: 0x1f250, Hi: 0x1f251, Stride: 1},
		{Lo: 0x1f300, Hi: 0x1f320, Stride: 1},
		{Lo: 0x1f32d, Hi: 0x1f335, Stride: 1},
		{Lo: 0x1f337, Hi: 0x1f37c, Stride: 1},
		{Lo: 0x1f37e, Hi: 0x1f393, Stride: 1},
		{Lo: 0x1f3a0, Hi: 0x1f3ca, Stride: 1},
		{Lo: 0x1f3cf, Hi: 0x1f3d3, Stride: 1},
		{Lo: 0x1f3e0, Hi: 0x1f3f0, Stride: 1},
		{Lo: 0x1f3f4, Hi: 0x1f3f4, Stride: 1},
		{Lo: 0x1f3f8, Hi: 0x1f43e, Stride: 1},
		{Lo: 0x1f440, Hi: 0x1f440, Stride: 1},
		{Lo: 0x1f442, Hi: 0x1f4fc, Stride: 1},
		{Lo: 0x1f4ff, Hi: 0x1f53d, Stride: 1},
		{Lo: 0x1f54b, Hi: 0x1f54e, Stride: 1},
		{Lo: 0x1f550, Hi: 0x1f567, Stride: 1},
		{Lo: 0x1f57a, Hi: 0x1f57a, Stride: 1},
		{Lo: 0x1f595, Hi: 0x1f596, Stride: 1},
		{Lo: 0x1f5a4, Hi: 0x1f5a4, Stride: 1},
		{Lo: 0x1f5fb, Hi: 0x1f64f, Stride: 1},
		{Lo: 0x1f680, Hi: 0x1f6c5, Stride: 1},
		{Lo: 0x1f6cc, Hi: 0x1f6cc, Stride: 1},
		{Lo: 0x1f6d0, Hi: 0x1f6d2, Stride: 1},
		{Lo: 0x1f6d5, Hi: 0x1f6d7, Stride: 1},
		{Lo: 0x1f6dc, Hi: 0x1f6df, Stride: 1},
		{Lo: 0x1f6eb, Hi: 0x1f6ec, Stride: 1},
		{Lo: 0x1f6f4, Hi: 0x1f6fc, Stride: 1},
		{Lo: 0x1f7e0, Hi: 0x1f7eb, Stride: 1},
		{Lo: 0x1f7f0, Hi: 0x1f7f0, Stride: 1},
		{Lo: 0x1f90c, Hi: 0x1f93a, Stride: 1},
		{Lo: 0x1f93c, Hi: 0x1f945, Stride: 1},
		{Lo: 0x1f947, Hi: 0x1f9ff, Stride: 1},
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1},
	},
}

var foreignScripts = []*unicode.RangeTable{
	unicode.Arabic, unicode.Armenian, unicode.Bengali, unicode.Bopomofo,
	unicode.Braille, unicode.Buhid, unicode.Canadian_Aboriginal, unicode.Cherokee,
	unicode.Cyrillic, unicode.Devanagari, unicode.Ethiopic, unicode.Georgian,
	unicode.Greek, unicode.Gujarati, unicode.Gurmukhi, unicode.Han,
	unicode.Hangul, unicode.Hanunoo, unicode.Hebrew, unicode.Hiragana,
	unicode.Inherited, unicode.Kannada, unicode.Katakana, unicode.Khmer,
	unicode.Lao, unicode.Limbu, unicode.Malayalam, unicode.Mongolian,
	unicode.Myanmar, unicode.Ogham, unicode.Oriya, unicode.Runic,
	unicode.Sinhala, unicode.Syriac, unicode.Tagalog, unicode.Tagbanwa,
	unicode.Tamil, unicode.Telugu, unicode.Thaana, unicode.Thai,
	unicode.Tibetan, unicode.Yi,
}

var smartQuotes = strings.NewReplacer("‘", "'", "’", "'", "“", `"`, "”", `"`)

func containsAny(s string, tables ...*unicode.RangeTable) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return unicode.IsOneOf(tables, r) })
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// foldAccents strips combining marks, turning "Pokémon" into "Pokemon".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func writingMistake(field, text string) (Issue, bool) {
	switch {
	case containsAny(text, emoji):
		return newIssue(NoEmoji, "").on(field), true
	case strings.ContainsAny(text, "‘’“”"):
		return newIssue(SpecialChars, fmt.Sprintf(
			`"Smart" quotes are great for typography, but often don't render correctly in emulators. Current: %s Suggested: %s`,
			text, smartQuotes.Replace(text))).on(field), true
	case containsAny(text, foreignScripts...):
		return newIssue(ForeignChars,
			"For policy exceptions regarding the use of foreign language message QATeam: "+text).on(field), true
	case !isASCII(text):
		detail := "Non-ASCII characters: " + text
		if folded := foldAccents(text); folded != text && isASCII(folded) {
			detail += " Suggested: " + folded
		}
		return newIssue(SpecialChars, detail).on(field), true
	}
	return Issue{}, false
}

func checkWritingMistakes(a asset.Asset) []Issue {
	m := a.Metadata()
	var out []Issue
	for _, f := range []struct{ name, text string }{
		{fieldTitle, m.Title},
		{fieldDescription, m.Description},
	} {
		if is, ok := writingMistake(f.name, f.text); ok {
			out = append(out, is)
		}
	}
	return out
}

var bracketsRE = regexp.MustCompile(`.[{\[(](.+)[}\])]`)

func checkBrackets(a asset.Asset) []Issue {
	if bracketsRE.MatchString(strings.TrimSpace(a.Metadata().Description)) {
		return []Issue{newIssue(DescBrackets, "").on(fieldDescription)}
	}
	return nil
}
