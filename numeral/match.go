package numeral

// Match is what a single numeral parser found on a single line: the text
// before the numeral run, the numeral run itself, the text after it, and
// the decoded value. Cursor and Title tie the match back to the line it
// came from so the candidate generator can build an Entry directly from
// it.
type Match struct {
	Prefix string
	Infix  string
	Suffix string
	Number int64
	Cursor int
	Title  string
}
