package numeral

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// maxSafeNumber guards against numeric overflow: chapter numbers larger
// than 2^62 indicate garbage input and are treated as if no number were
// found at all.
const maxSafeNumber = int64(1) << 62

func asciiDigitsCharset() charset {
	return newCharset('0', '1', '2', '3', '4', '5', '6', '7', '8', '9')
}

func fullWidthDigitsCharset() charset {
	cs := make(charset, 10)
	for r := rune('０'); r <= '９'; r++ {
		cs[r] = true
	}
	return cs
}

// decodeArabic NFKC-normalizes (collapsing full-width digits to their
// ASCII form) and parses the result as a base-10 integer.
func decodeArabic(s string) (int64, bool) {
	normalized := norm.NFKC.String(s)
	v, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil || v < 0 || v > maxSafeNumber {
		return 0, false
	}
	return v, true
}
