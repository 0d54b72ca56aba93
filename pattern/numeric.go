package pattern

import (
	"regexp"
	"strings"
	"unicode"

	"toccer/article"
	"toccer/beauty"
	"toccer/common"
	"toccer/model"
	"toccer/numeral"
	"toccer/token"
)

// GenerateNumeric walks every numeral parser's matches and groups them
// into candidate number-anchored patterns: first by (parser, left-trimmed
// prefix), then by growing prefixes of the suffix's tokens, so a heading
// family sharing both the lead-in text and a stretch of trailing text
// ("Chapter " ... " — a new beginning") is found as its own, tighter
// pattern alongside the looser one.
func GenerateNumeric(ctx *article.Context, parsers []*numeral.Parser) []model.Pattern {
	var out []model.Pattern

	for pi, p := range parsers {
		groups := map[string][]*numeral.Match{}
		var order []string
		for li := range ctx.Lines {
			rec := &ctx.Lines[li]
			if rec.Matches == nil || rec.Matches[pi] == nil {
				continue
			}
			m := rec.Matches[pi]
			key := strings.TrimLeftFunc(m.Prefix, unicode.IsSpace)
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], m)
		}

		for _, prefix := range order {
			matches := groups[prefix]
			if len(matches) < model.MinContents {
				continue
			}
			out = append(out, commitNumberPattern(pi, p, prefix, matches, ctx.Chars)...)

			buckets := map[string][]*numeral.Match{}
			var bucketOrder []string
			for _, m := range matches {
				for _, key := range suffixTokenPrefixes(m.Suffix) {
					if _, ok := buckets[key]; !ok {
						bucketOrder = append(bucketOrder, key)
					}
					buckets[key] = append(buckets[key], m)
				}
			}
			for _, key := range bucketOrder {
				bucket := buckets[key]
				if len(bucket) < model.MinContents || len(bucket) == len(matches) {
					continue
				}
				out = append(out, commitNumberPattern(pi, p, prefix, bucket, ctx.Chars)...)
			}
		}
	}

	return out
}

// suffixTokenPrefixes tokenizes the suffix (leading/trailing whitespace
// trimmed) and returns the literal text of every non-empty growing prefix
// of its tokens, used purely to decide which matches belong to the same
// tighter suffix-anchored bucket.
func suffixTokenPrefixes(suffix string) []string {
	trimmed := strings.TrimSpace(suffix)
	if trimmed == "" {
		return nil
	}
	toks := token.Tokenize(trimmed)
	out := make([]string, 0, len(toks))
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t)
		out = append(out, b.String())
	}
	return out
}

// commitNumberPattern scores the candidate group and, if it clears the
// minimum beauty floor, emits both the glob and regex-literal forms of
// the pattern sharing one key and beauty.
func commitNumberPattern(parserIndex int, p *numeral.Parser, prefix string, matches []*numeral.Match, chars int) []model.Pattern {
	contents := make(model.Contents, len(matches))
	for i, m := range matches {
		n := m.Number
		contents[i] = model.Entry{
			Title:  strings.TrimSpace(m.Title),
			Cursor: m.Cursor,
			Number: &n,
		}
	}

	b1 := beauty.Numeric(contents)
	if b1 < model.BeautyMin1 {
		return nil
	}
	b2 := beauty.Size(contents, chars) * beauty.Title(contents)
	beautyVal := b1 * b2
	if beautyVal < model.BeautyMin1 {
		return nil
	}

	lcp := commonPrefix(suffixesOf(matches))

	key := model.PatternKey{ParserIndex: parserIndex, Prefix: prefix, Suffix: lcp}

	globPattern := model.Pattern{
		Kind:        common.PatternKindNumber,
		Template:    asLiteralOrRegex(prefix, lcp),
		Key:         key,
		Priority:    10 * p.Priority,
		Beauty:      beautyVal,
		ParserIndex: parserIndex,
		Contents:    contents,
	}
	regexPattern := model.Pattern{
		Kind:        common.PatternKindNumber,
		Template:    regexForm(prefix, p, infixesOf(matches), lcp),
		Key:         key,
		Priority:    10*p.Priority + 1,
		Beauty:      beautyVal,
		ParserIndex: parserIndex,
		Contents:    contents,
	}
	return []model.Pattern{globPattern, regexPattern}
}

func infixesOf(matches []*numeral.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Infix
	}
	return out
}

func suffixesOf(matches []*numeral.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Suffix
	}
	return out
}

func commonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	p := ss[0]
	for _, s := range ss[1:] {
		p = commonPrefixPair(p, s)
		if p == "" {
			return ""
		}
	}
	return p
}

func commonPrefixPair(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	i := 0
	for i < n && ra[i] == rb[i] {
		i++
	}
	return string(ra[:i])
}

// regexForm builds the "/^\s*<prefix><charset>+<suffix>/" regex-literal
// template using the parser's effective charset: its primary runes plus
// whichever of its optional runes were actually observed in this group's
// matched infixes.
func regexForm(prefix string, p *numeral.Parser, infixes []string, suffix string) string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(`^\s*`)
	b.WriteString(regexp.QuoteMeta(collapseWhitespace(prefix)))
	b.WriteString(p.CharClass(infixes))
	b.WriteString("+")
	b.WriteString(regexp.QuoteMeta(collapseWhitespace(suffix)))
	b.WriteByte('/')
	return b.String()
}
