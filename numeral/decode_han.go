package numeral

// Han digit/unit tables. "common" covers the everyday numerals plus the
// 两/兩 "two" variant and full-width zero; "formal" covers the 大写
// (capital/banker's) forms used on checks and
// formal documents. A mixed parser accepts the union of both but, being a
// priority-2 parser, demands that a match actually draw from both sides
// (see RequireOptional in parsers.go) rather than just tolerating stray
// characters from the other set.
var (
	hanCommonDigits = map[rune]int64{
		'零': 0, '〇': 0, '０': 0,
		'一': 1, '二': 2, '两': 2, '兩': 2,
		'三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
	}
	hanCommonUnits = map[rune]int64{
		'十': 10, '百': 100, '千': 1000,
	}
	hanFormalDigits = map[rune]int64{
		'零': 0,
		'壹': 1, '贰': 2, '貳': 2, '叁': 3, '參': 3,
		'肆': 4, '伍': 5, '陆': 6, '陸': 6, '柒': 7, '捌': 8, '玖': 9,
	}
	hanFormalUnits = map[rune]int64{
		'拾': 10, '佰': 100, '仟': 1000,
	}
)

func hanDigitsCharset() charset {
	cs := make(charset)
	for r := range hanCommonDigits {
		cs[r] = true
	}
	return cs
}

func hanUnitsCharset() charset {
	cs := make(charset)
	for r := range hanCommonUnits {
		cs[r] = true
	}
	return cs
}

func hanFormalCharset() charset {
	cs := make(charset)
	for r := range hanFormalDigits {
		cs[r] = true
	}
	for r := range hanFormalUnits {
		cs[r] = true
	}
	return cs
}

// decodeHan walks the matched run, classifying every rune as either a
// digit (value < 10) or a unit (value >= 10): on a unit u, result +=
// max(current, 1) * u and current resets; on a digit d, current =
// current*10 + d.
func decodeHan(s string) (int64, bool) {
	var current, result int64
	seen := false
	for _, r := range s {
		if v, ok := hanCommonDigits[r]; ok {
			if current > (maxSafeNumber-v)/10 {
				return 0, false
			}
			current = current*10 + v
			seen = true
			continue
		}
		if v, ok := hanFormalDigits[r]; ok {
			if current > (maxSafeNumber-v)/10 {
				return 0, false
			}
			current = current*10 + v
			seen = true
			continue
		}
		if v, ok := hanCommonUnits[r]; ok {
			u := current
			if u == 0 {
				u = 1
			}
			if u > (maxSafeNumber-result)/v {
				return 0, false
			}
			result += u * v
			current = 0
			seen = true
			continue
		}
		if v, ok := hanFormalUnits[r]; ok {
			u := current
			if u == 0 {
				u = 1
			}
			if u > (maxSafeNumber-result)/v {
				return 0, false
			}
			result += u * v
			current = 0
			seen = true
			continue
		}
		// character outside every known table: not a Han numeral we
		// recognize, bail out rather than silently dropping it.
		return 0, false
	}
	if !seen {
		return 0, false
	}
	result += current
	if result < 0 || result > maxSafeNumber {
		return 0, false
	}
	return result, true
}
