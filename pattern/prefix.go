package pattern

import (
	"math"
	"strings"
	"unicode"

	"toccer/article"
	"toccer/beauty"
	"toccer/common"
	"toccer/model"
)

// GenerateLexical is the prefix path: it groups lines purely by shared
// leading tokens, with no numeral involved at all, for tables of contents
// whose headings carry no number ("Preface", "Afterword", bare titles).
func GenerateLexical(ctx *article.Context) []model.Pattern {
	firstToken := make(map[string][]int)
	var order []string
	for li := range ctx.Lines {
		toks := ctx.Lines[li].Tokens
		if len(toks) == 0 {
			continue
		}
		t0 := toks[0]
		if _, ok := firstToken[t0]; !ok {
			order = append(order, t0)
		}
		firstToken[t0] = append(firstToken[t0], li)
	}

	var out []model.Pattern
	for _, t0 := range order {
		lines := firstToken[t0]
		if len(lines) < model.MinContents {
			continue
		}
		maxAllowed := float64(model.MaxContentsLength) / model.PrefixMinRatio
		if float64(len(lines)) > maxAllowed {
			continue
		}
		ratio := float64(len(lines)) / denominator(t0, ctx)
		if ratio < model.PrefixMinRatio {
			continue
		}
		out = append(out, findPrefix(ctx, []string{t0}, lines)...)
	}
	return out
}

// selectivity is tokenCounts[tok]: how many lines of the article contain
// this token anywhere, heading or not, counted per line at most once.
func selectivity(tok string, ctx *article.Context) float64 {
	d := float64(ctx.TokenLineFreq[tok])
	if d == 0 {
		d = 1
	}
	return d
}

// denominator is D: tokenCounts[tok] scaled by FACTOR_TEXT_PREFIX when
// tok opens with a letter. A common word needs to be proportionally more
// concentrated in the candidate group than a rare punctuation or digit
// opener does before the group is trusted as a heading marker.
func denominator(tok string, ctx *article.Context) float64 {
	d := selectivity(tok, ctx)
	if r := []rune(tok); len(r) > 0 && unicode.IsLetter(r[0]) {
		d *= model.FactorTextPrefix
	}
	return d
}

// findPrefix recursively extends prefixTokens one token at a time. At
// each step it tries to split the current line set by their next token;
// any sub-group big and selective enough to keep going recurses further.
// Extension stops where no next-token is both big and selective enough;
// the lines stranded there get their keywords searched for a suffix-
// anchored pattern, the only point this path ever emits a candidate.
func findPrefix(ctx *article.Context, prefixTokens []string, lineIdxs []int) []model.Pattern {
	var out []model.Pattern

	pos := len(prefixTokens)
	nextGroups := make(map[string][]int)
	var nextOrder []string
	consumed := make(map[int]bool, len(lineIdxs))

	for _, li := range lineIdxs {
		toks := ctx.Lines[li].Tokens
		if len(toks) <= pos {
			continue
		}
		key := toks[pos]
		if _, ok := nextGroups[key]; !ok {
			nextOrder = append(nextOrder, key)
		}
		nextGroups[key] = append(nextGroups[key], li)
	}

	for _, key := range nextOrder {
		group := nextGroups[key]
		if len(group) < model.MinContents {
			continue
		}
		nratio := float64(len(group)) / denominator(key, ctx)
		if nratio < model.PrefixMinRatio {
			continue
		}
		for _, li := range group {
			consumed[li] = true
		}
		out = append(out, findPrefix(ctx, append(append([]string(nil), prefixTokens...), key), group)...)
	}

	var remainder []int
	for _, li := range lineIdxs {
		if !consumed[li] {
			remainder = append(remainder, li)
		}
	}
	out = append(out, searchKeywords(ctx, prefixTokens, remainder)...)
	return out
}

// searchKeywords looks, within a terminal prefix's remaining lines, for a
// single token beyond the fixed prefix that recurs often enough across
// those lines to anchor a tighter pattern, then widens the match back out
// to every line in the whole article whose title contains that anchor.
func searchKeywords(ctx *article.Context, prefixTokens []string, lineIdxs []int) []model.Pattern {
	if len(lineIdxs) < model.MinContents {
		return nil
	}
	pos := len(prefixTokens)
	buckets := make(map[string][]int)
	var order []string
	for _, li := range lineIdxs {
		toks := ctx.Lines[li].Tokens
		seen := make(map[string]bool)
		for _, tk := range toks[minInt(pos, len(toks)):] {
			if seen[tk] {
				continue
			}
			seen[tk] = true
			if _, ok := buckets[tk]; !ok {
				order = append(order, tk)
			}
			buckets[tk] = append(buckets[tk], li)
		}
	}

	var out []model.Pattern
	for _, kw := range order {
		bucket := buckets[kw]
		if len(bucket) < model.MinContents {
			continue
		}
		ratio := float64(len(bucket)) / denominator(kw, ctx)
		if ratio < model.PrefixMinRatio {
			continue
		}
		suffix := commonPrefix(keywordTails(ctx, bucket, len(strings.Join(prefixTokens, "")), kw))
		if p := commitPrefixPattern(ctx, prefixTokens, bucket, ratio, suffix); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// commitPrefixPattern scores a keyword-anchored prefix-path candidate
// and, if it clears the minimum beauty floor, widens it back out to
// every matching line in the article and returns the pattern.
func commitPrefixPattern(ctx *article.Context, prefixTokens []string, lineIdxs []int, ratio float64, suffix string) *model.Pattern {
	if len(lineIdxs) < model.MinContents {
		return nil
	}
	prefixText := strings.Join(prefixTokens, "")

	selected := selectByContains(ctx, prefixText, suffix)
	if len(selected) < model.MinContents {
		return nil
	}

	b1 := clampUnit(math.Pow(ratio, float64(model.KeywordUniqueFactor)/10))
	if b1 < model.BeautyMin1 {
		return nil
	}
	b2 := beauty.Title(selected) * beauty.Size(selected, ctx.Chars)
	beautyVal := b1 * b2
	if beautyVal < model.BeautyMin1 {
		return nil
	}

	key := model.PatternKey{ParserIndex: -1, Prefix: prefixText, Suffix: suffix}
	return &model.Pattern{
		Kind:        common.PatternKindPrefix,
		Template:    asLiteralOrRegex(prefixText, suffix),
		Key:         key,
		Priority:    10,
		Beauty:      beautyVal,
		ParserIndex: -1,
		PrefixScore: ratio,
		Contents:    selected,
	}
}

// keywordTails returns, for every line in bucket, the text of the line
// starting at the keyword's first occurrence past the fixed prefix, which
// is prefixLen bytes long and starts after the line's leading whitespace.
func keywordTails(ctx *article.Context, bucket []int, prefixLen int, keyword string) []string {
	out := make([]string, 0, len(bucket))
	for _, li := range bucket {
		raw := ctx.Lines[li].Raw
		start := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace)) + prefixLen
		if start > len(raw) {
			continue
		}
		if idx := strings.Index(raw[start:], keyword); idx >= 0 {
			out = append(out, raw[start+idx:])
		}
	}
	return out
}

// selectByContains re-scans the whole article for lines whose trimmed
// text contains both prefix and suffix, widening a bucket discovered
// through one recursive path back out to every matching line.
func selectByContains(ctx *article.Context, prefix, suffix string) model.Contents {
	var out model.Contents
	for i := range ctx.Lines {
		rec := &ctx.Lines[i]
		trimmed := strings.TrimLeftFunc(rec.Raw, unicode.IsSpace)
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		if suffix != "" && !strings.Contains(trimmed, suffix) {
			continue
		}
		out = append(out, model.Entry{
			Title:  strings.TrimSpace(rec.Raw),
			Cursor: rec.Cursor,
		})
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
