// Package article builds a single pass over the raw text of an article:
// line records with byte cursors, per-line numeral extractions, and token
// frequencies used later to judge how selective a candidate prefix is.
package article

import (
	"strings"

	"toccer/model"
	"toccer/numeral"
	"toccer/token"
)

// LineRecord is one line of the article as seen by the engine.
type LineRecord struct {
	Raw     string
	Cursor  int
	Tokens  []string
	Numbers []*int64
	// Matches is parallel to Numbers: the full extraction (prefix/infix/
	// suffix) for every parser that found something on this line. It is
	// nil for a parser slot with no match, and nil entirely for lines at
	// or above MaxTitleLength (only short lines are scanned for numerals).
	Matches []*numeral.Match
}

// Context is the result of one pass over the article.
type Context struct {
	Chars         int
	Lines         []LineRecord
	TokenLineFreq map[string]int
}

// Build tokenizes every line, tallies per-line-unique token frequencies,
// and runs each numeral parser over lines short enough to plausibly be a
// heading.
func Build(text string, parsers []*numeral.Parser) *Context {
	lines := strings.Split(text, "\n")

	ctx := &Context{
		TokenLineFreq: make(map[string]int),
	}
	ctx.Lines = make([]LineRecord, len(lines))

	cursor := 0
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		toks := token.Tokenize(raw)

		seen := make(map[string]bool, len(toks))
		for _, t := range toks {
			if seen[t] {
				continue
			}
			seen[t] = true
			ctx.TokenLineFreq[t]++
		}

		rec := LineRecord{
			Raw:    raw,
			Cursor: cursor,
			Tokens: toks,
		}
		if len(trimmed) < model.MaxTitleLength {
			rec.Numbers = make([]*int64, len(parsers))
			rec.Matches = make([]*numeral.Match, len(parsers))
			for pi, p := range parsers {
				if m, ok := p.Extract(raw); ok {
					mm := m
					mm.Cursor = cursor
					mm.Title = raw
					rec.Matches[pi] = &mm
					n := mm.Number
					rec.Numbers[pi] = &n
				}
			}
		}
		ctx.Lines[i] = rec

		cursor += len(raw) + 1
	}
	ctx.Chars = cursor

	return ctx
}
