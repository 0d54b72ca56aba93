package numeral

import "sort"

// charset is a small, explicit set of runes a numeral parser is willing to
// match. Numeral alphabets are tiny (a few dozen characters at most) so a
// map is simpler and just as fast as a unicode.RangeTable here, and it is
// far easier to intersect with "characters actually observed" when the
// candidate generator computes the effective charset for a template (see
// pattern.commitNumberPattern).
type charset map[rune]bool

func newCharset(runes ...rune) charset {
	cs := make(charset, len(runes))
	for _, r := range runes {
		cs[r] = true
	}
	return cs
}

func (cs charset) union(other charset) charset {
	out := make(charset, len(cs)+len(other))
	for r := range cs {
		out[r] = true
	}
	for r := range other {
		out[r] = true
	}
	return out
}

func (cs charset) contains(r rune) bool {
	return cs[r]
}

func (cs charset) runes() []rune {
	out := make([]rune, 0, len(cs))
	for r := range cs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// compactRanges fuses consecutive code points into [lo, hi] pairs, used to
// emit a compact "[<lo>-<hi><lo>-<hi>...]" regex character class.
func compactRanges(runes []rune) [][2]rune {
	if len(runes) == 0 {
		return nil
	}
	sorted := append([]rune(nil), runes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var out [][2]rune
	lo, hi := sorted[0], sorted[0]
	for _, r := range sorted[1:] {
		if r == hi || r == hi+1 {
			hi = r
			continue
		}
		out = append(out, [2]rune{lo, hi})
		lo, hi = r, r
	}
	out = append(out, [2]rune{lo, hi})
	return out
}
