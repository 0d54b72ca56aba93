// Package numeral extracts numbers from lines of text under several
// numeral systems: Han (simplified and formal/大写), ASCII and Unicode
// Roman numerals, and Arabic digits (ASCII and full-width). Each parser
// returned by Parsers is immutable: its regexp is compiled there and
// nothing is mutated afterwards, so a *Parser is safe to share across
// concurrent callers.
package numeral

import (
	"fmt"
	"regexp"

	"toccer/common"
)

// Parser is one pluggable numeral extractor. Primary characters must be
// present in a match; Optional characters are tolerated but, unless
// RequireOptional is set, never required. RequireOptional models the
// priority-2 "mixed" parsers, which exist specifically to catch headings
// that draw from both sub-charsets at once (e.g. "Chapter mIx" mixing
// upper- and lower-case Roman numerals).
type Parser struct {
	Name            string
	Group           common.NumeralGroup
	Priority        int
	Anchored        bool
	Primary         charset
	Optional        charset
	RequireOptional bool
	Decode          func(string) (int64, bool)

	re *regexp.Regexp
}

// Charset returns every rune this parser is willing to match, primary and
// optional combined; the candidate generator intersects this against the
// runes actually observed in matched infixes to build the compact
// character-class used in the emitted regex template.
func (p *Parser) Charset() charset {
	return p.Primary.union(p.Optional)
}

// CharClass returns the "[...]" regex character class for this parser's
// effective charset against one group of matched infixes: every Primary
// rune, plus any Optional rune that was actually observed in infixes.
// This keeps a mixed-case pattern's regenerated regex no looser than the
// matches that justified it.
func (p *Parser) CharClass(infixes []string) string {
	observed := make(charset)
	for _, infix := range infixes {
		for _, r := range infix {
			if p.Optional.contains(r) {
				observed[r] = true
			}
		}
	}
	effective := p.Primary.union(observed)
	return classFromRuneRanges(compactRanges(effective.runes()))
}

func (p *Parser) pattern() string {
	all := p.Charset().runes()
	class := classFromRuneRanges(compactRanges(all))
	body := fmt.Sprintf("%s+", class)
	if p.Anchored {
		return `\b` + body + `\b`
	}
	return body
}

func (p *Parser) regexp() *regexp.Regexp {
	if p.re == nil {
		p.re = regexp.MustCompile(p.pattern())
	}
	return p.re
}

func classFromRuneRanges(ranges [][2]rune) string {
	b := []byte("[")
	for _, r := range ranges {
		if r[0] == r[1] {
			b = append(b, []byte(string(r[0]))...)
		} else {
			b = append(b, []byte(string(r[0]))...)
			b = append(b, '-')
			b = append(b, []byte(string(r[1]))...)
		}
	}
	b = append(b, ']')
	return string(b)
}

func (p *Parser) valid(match string) bool {
	hasPrimary, hasOptional := false, false
	for _, r := range match {
		if p.Primary.contains(r) {
			hasPrimary = true
		}
		if p.Optional.contains(r) {
			hasOptional = true
		}
	}
	if !hasPrimary {
		return false
	}
	if p.RequireOptional && !hasOptional {
		return false
	}
	return true
}

// Extract finds the parser's numeral run on the line, decodes it, and
// returns the surrounding prefix/suffix split. It returns ok=false when
// no valid, decodable match exists on the line at all.
func (p *Parser) Extract(line string) (Match, bool) {
	locs := p.regexp().FindAllStringIndex(line, -1)
	for _, loc := range locs {
		infix := line[loc[0]:loc[1]]
		if !p.valid(infix) {
			continue
		}
		n, ok := p.Decode(infix)
		if !ok {
			continue
		}
		return Match{
			Prefix: line[:loc[0]],
			Infix:  infix,
			Suffix: line[loc[1]:],
			Number: n,
			Title:  line,
		}, true
	}
	return Match{}, false
}

// Parsers is the fixed set of nine numeral parsers, in declaration order
// (not sorted by Priority). The order matters: it is the order candidate
// patterns are generated in, and ties are broken by Priority afterwards,
// so keeping this list stable keeps results stable.
func Parsers() []*Parser {
	hanCommon := hanDigitsCharset().union(hanUnitsCharset())
	hanFormal := hanFormalCharset()

	ps := []*Parser{
		{
			Name:     "roman-upper",
			Group:    common.NumeralGroupRoman,
			Priority: 1,
			Anchored: true,
			Primary:  romanASCIICharset(true, false),
			Decode:   decodeRoman,
		},
		{
			Name:     "roman-lower",
			Group:    common.NumeralGroupRoman,
			Priority: 1,
			Anchored: true,
			Primary:  romanASCIICharset(false, true),
			Decode:   decodeRoman,
		},
		{
			Name:            "roman-mixed-case",
			Group:           common.NumeralGroupRoman,
			Priority:        2,
			Anchored:        true,
			Primary:         romanASCIICharset(true, false),
			Optional:        romanASCIICharset(false, true),
			RequireOptional: true,
			Decode:          decodeRoman,
		},
		{
			Name:     "roman-unicode",
			Group:    common.NumeralGroupRoman,
			Priority: 1,
			Anchored: false,
			Primary:  unicodeRomanCharset(),
			Decode:   decodeUnicodeRoman,
		},
		{
			Name:     "han-common",
			Group:    common.NumeralGroupHan,
			Priority: 1,
			Anchored: false,
			Primary:  hanCommon,
			Decode:   decodeHan,
		},
		{
			Name:     "han-formal",
			Group:    common.NumeralGroupHan,
			Priority: 1,
			Anchored: false,
			Primary:  hanFormal,
			Decode:   decodeHan,
		},
		{
			Name:            "han-mixed",
			Group:           common.NumeralGroupHan,
			Priority:        2,
			Anchored:        false,
			Primary:         hanCommon,
			Optional:        hanFormal,
			RequireOptional: true,
			Decode:          decodeHan,
		},
		{
			Name:     "arabic",
			Group:    common.NumeralGroupNumeric,
			Priority: 1,
			Anchored: true,
			Primary:  asciiDigitsCharset(),
			Decode:   decodeArabic,
		},
		{
			Name:     "arabic-fullwidth",
			Group:    common.NumeralGroupNumeric,
			Priority: 1,
			Anchored: false,
			Primary:  fullWidthDigitsCharset(),
			Decode:   decodeArabic,
		},
	}
	for _, p := range ps {
		p.re = regexp.MustCompile(p.pattern())
	}
	return ps
}
