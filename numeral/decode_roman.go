package numeral

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var romanValues = map[rune]int64{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

func romanASCIICharset(upper, lower bool) charset {
	cs := make(charset)
	for r := range romanValues {
		if upper {
			cs[r] = true
		}
		if lower {
			cs[r+('a'-'A')] = true
		}
	}
	return cs
}

// decodeRoman normalizes to NFKC and uppercases, groups the result into
// runs of identical letters, and sums run values using an additive/
// subtractive-cancellation rule: each run contributes
// value*length; when a run's value exceeds the previous run's, the
// previously added piece is cancelled (subtracted twice) before adding the
// new run, which reproduces standard subtractive notation (IV, IX, ...)
// without needing a lookup table of two-letter combinations.
func decodeRoman(s string) (int64, bool) {
	norm := strings.ToUpper(norm.NFKC.String(s))

	runes := []rune(norm)
	if len(runes) == 0 {
		return 0, false
	}

	var (
		acc              int64
		prevValue        int64
		prevLen          int64
		i                int
		sawAnyValidLetter bool
	)
	for i < len(runes) {
		v, ok := romanValues[runes[i]]
		if !ok {
			return 0, false
		}
		sawAnyValidLetter = true
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		n := int64(j - i)

		acc += v * n
		if v > prevValue {
			acc -= 2 * prevValue * prevLen
		}
		prevValue, prevLen = v, n
		i = j
	}
	if !sawAnyValidLetter || acc <= 0 || acc > maxSafeNumber {
		return 0, false
	}
	return acc, true
}

// unicodeRomanValues maps the precomposed Unicode Roman numeral block
// (U+2160-U+217F) to the value it represents. Unlike ASCII Roman letters
// these code points already denote a complete number (Ⅳ is 4, not I
// followed by V), so decoding is a plain per-character sum.
var unicodeRomanValues = buildUnicodeRomanValues()

func buildUnicodeRomanValues() map[rune]int64 {
	upperBase := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 50, 100, 500, 1000}
	m := make(map[rune]int64, 2*len(upperBase)+2)
	// U+2160-216B: I..XII, U+216C-216F: L C D M
	for i, v := range upperBase {
		m[rune(0x2160+i)] = v
		m[rune(0x2170+i)] = v
	}
	m[0x217F] = 1000 // small roman numeral one thousand
	return m
}

func unicodeRomanCharset() charset {
	cs := make(charset)
	for r := range unicodeRomanValues {
		cs[r] = true
	}
	return cs
}

func decodeUnicodeRoman(s string) (int64, bool) {
	var sum int64
	seen := false
	for _, r := range s {
		v, ok := unicodeRomanValues[r]
		if !ok {
			return 0, false
		}
		sum += v
		seen = true
	}
	if !seen || sum > maxSafeNumber {
		return 0, false
	}
	return sum, true
}
