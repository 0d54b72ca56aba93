package numeral

import "testing"

func TestDecodeHan(t *testing.T) {
	cases := map[string]int64{
		"一":    1,
		"十":    10,
		"二十":   20,
		"一百零一": 101,
		"三千二百": 3200,
	}
	for in, want := range cases {
		got, ok := decodeHan(in)
		if !ok {
			t.Fatalf("decodeHan(%q): expected ok", in)
		}
		if got != want {
			t.Errorf("decodeHan(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestDecodeRoman(t *testing.T) {
	cases := map[string]int64{
		"IV":        4,
		"IX":        9,
		"MCMLXXXIV": 1984,
	}
	for in, want := range cases {
		got, ok := decodeRoman(in)
		if !ok {
			t.Fatalf("decodeRoman(%q): expected ok", in)
		}
		if got != want {
			t.Errorf("decodeRoman(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestDecodeArabic(t *testing.T) {
	got, ok := decodeArabic("０１２")
	if !ok || got != 12 {
		t.Fatalf("decodeArabic(full-width 012) = %d, %v, want 12, true", got, ok)
	}
}

func TestParserExtract(t *testing.T) {
	parsers := Parsers()
	var roman *Parser
	for _, p := range parsers {
		if p.Name == "roman-upper" {
			roman = p
		}
	}
	if roman == nil {
		t.Fatal("roman-upper parser not found")
	}

	m, ok := roman.Extract("Chapter IV: The Crossing")
	if !ok {
		t.Fatal("expected match")
	}
	if m.Number != 4 || m.Infix != "IV" {
		t.Errorf("got %+v", m)
	}

	if _, ok := roman.Extract("TAXI fare"); ok {
		t.Error("word-boundary anchoring should reject numerals embedded mid-word")
	}
}

func TestMixedCaseRomanRequiresBothCases(t *testing.T) {
	parsers := Parsers()
	var mixed *Parser
	for _, p := range parsers {
		if p.Name == "roman-mixed-case" {
			mixed = p
		}
	}
	if mixed == nil {
		t.Fatal("roman-mixed-case parser not found")
	}
	if _, ok := mixed.Extract("Chapter IV"); ok {
		t.Error("pure-uppercase run should not satisfy the mixed-case parser")
	}
	if _, ok := mixed.Extract("Chapter mIx"); !ok {
		t.Error("mixed-case run should satisfy the mixed-case parser")
	}
}

func TestOverflowTreatedAsNoMatch(t *testing.T) {
	if _, ok := decodeArabic("99999999999999999999"); ok {
		t.Error("overflowing numeral should decode as not-ok")
	}
}
