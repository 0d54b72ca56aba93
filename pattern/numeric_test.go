package pattern

import (
	"strings"
	"testing"

	"toccer/article"
	"toccer/numeral"
)

func findParserIndex(t *testing.T, parsers []*numeral.Parser, name string) int {
	t.Helper()
	for i, p := range parsers {
		if p.Name == name {
			return i
		}
	}
	t.Fatalf("no parser named %q", name)
	return -1
}

func TestGenerateNumericFindsChapterPattern(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 1; i <= 10; i++ {
		lines = append(lines, "Chapter "+romanize(i)+": a heading")
		lines = append(lines, "some body text for this chapter, padded out a bit")
	}
	text := strings.Join(lines, "\n")

	parsers := numeral.Parsers()
	ctx := article.Build(text, parsers)

	patterns := GenerateNumeric(ctx, parsers)
	if len(patterns) == 0 {
		t.Fatal("expected at least one candidate pattern")
	}

	romanUpper := findParserIndex(t, parsers, "roman-upper")
	found := false
	for _, p := range patterns {
		if p.ParserIndex == romanUpper && strings.HasPrefix(p.Template, "Chapter ") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Chapter-prefixed roman-upper pattern among %d patterns", len(patterns))
	}
}

func TestSuffixTokenPrefixesReconstructSubstring(t *testing.T) {
	got := suffixTokenPrefixes(": The Beginning")
	if len(got) == 0 {
		t.Fatal("expected at least one prefix")
	}
	if got[len(got)-1] != ": The Beginning" {
		t.Errorf("last growing prefix = %q, want full trimmed suffix", got[len(got)-1])
	}
}

func TestCommonPrefix(t *testing.T) {
	got := commonPrefix([]string{": one", ": two", ": three"})
	if got != ": " {
		t.Errorf("commonPrefix = %q, want %q", got, ": ")
	}
}

func TestCommonPrefixSharedWord(t *testing.T) {
	got := commonPrefix([]string{": two", ": twelve"})
	if got != ": tw" {
		t.Errorf("commonPrefix = %q, want %q", got, ": tw")
	}
}

func romanize(n int) string {
	vals := []struct {
		v int
		s string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var b strings.Builder
	for _, p := range vals {
		for n >= p.v {
			b.WriteString(p.s)
			n -= p.v
		}
	}
	return b.String()
}
