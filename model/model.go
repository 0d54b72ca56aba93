// Package model holds the value types shared between the candidate
// generator, the scorers, and the selector. Its only dependency in this
// module is the import-free package common, so every other package can
// import it without risking an import cycle.
package model

import "toccer/common"

// Entry is one row of a candidate table of contents: a line of the
// article, its byte cursor, and (for numeral-anchored candidates) the
// number extracted from it.
type Entry struct {
	Title  string
	Cursor int
	Number *int64
}

// Contents is an ordered candidate table of contents, document order.
type Contents []Entry

// PatternKey is the canonical dedup identifier for a discovered pattern:
// the originating parser (or -1 for a prefix pattern), the literal prefix
// and suffix that bound it.
type PatternKey struct {
	ParserIndex int
	Prefix      string
	Suffix      string
}

// Pattern describes one discovered heading family, before or after it has
// been re-applied to the article by the selector.
type Pattern struct {
	Kind     common.PatternKind
	Template string
	Key      PatternKey
	Priority int
	Beauty   float64

	// ParserIndex is the index into the numeral parser table this pattern
	// was generated from; -1 for prefix patterns.
	ParserIndex int

	// PrefixScore is the prefix-uniqueness sub-score a prefix pattern was
	// born with; unused for number patterns.
	PrefixScore float64

	// Contents is filled in by the selector after re-scanning the article
	// with the compiled template.
	Contents Contents
}
