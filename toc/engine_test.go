package toc

import (
	"strconv"
	"strings"
	"testing"
)

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

func hanize(n int) string {
	digits := []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	switch {
	case n < 10:
		return digits[n]
	case n == 10:
		return "十"
	case n < 20:
		return "十" + digits[n-10]
	case n == 20:
		return "二十"
	default:
		panic("hanize: out of range for this test helper")
	}
}

func padBody(n int) string {
	return strings.Repeat("body text filling out a chapter. ", n/34+1)
}

func TestInferHanChapterScenario(t *testing.T) {
	var b strings.Builder
	for n := 1; n <= 20; n++ {
		b.WriteString("第" + hanize(n) + "章 Title " + strconv.Itoa(n) + "\n")
		b.WriteString(padBody(500) + "\n")
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Contents) != 20 {
		t.Errorf("len(Contents) = %d, want 20", len(res.Contents))
	}
	if res.Beauty < 0.3 {
		t.Errorf("beauty = %v, want >= 0.3", res.Beauty)
	}
	if !strings.HasPrefix(res.Template, "第") {
		t.Errorf("template = %q, want it to start with 第", res.Template)
	}
	for i := 1; i < len(res.Contents); i++ {
		if res.Contents[i].Cursor <= res.Contents[i-1].Cursor {
			t.Fatalf("cursors not strictly increasing at %d", i)
		}
	}
}

func TestInferRomanChapterScenario(t *testing.T) {
	var b strings.Builder
	for n := 1; n <= 20; n++ {
		b.WriteString("Chapter " + romanize(n) + ".\n")
		b.WriteString(padBody(500) + "\n")
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Contents) != 20 {
		t.Errorf("len(Contents) = %d, want 20", len(res.Contents))
	}
	if !strings.HasPrefix(res.Template, "Chapter ") {
		t.Errorf("template = %q, want it to start with %q", res.Template, "Chapter ")
	}
}

func TestInferRejectsLowSelectivityPrefix(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		switch {
		case i == 37 || i == 201 || i == 512 || i == 700 || i == 900:
			b.WriteString("Note: something worth heading-level attention happened here\n")
		default:
			b.WriteString("Note: this line is not a heading, just noise that starts the same way\n")
		}
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got template %q with %d entries", res.Template, len(res.Contents))
	}
}

func TestInferHoleInNumberingStillScores(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5, 7, 8, 9, 10}
	var b strings.Builder
	for _, n := range numbers {
		b.WriteString("Chapter " + strconv.Itoa(n) + "\n")
		b.WriteString(padBody(400) + "\n")
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result despite the hole at 6")
	}
	if res.Beauty <= 0 || res.Beauty >= 1 {
		t.Errorf("beauty = %v, want a reduced but positive score", res.Beauty)
	}
}

func TestInferDecreasingNumbersUsesLongestNonDecreasing(t *testing.T) {
	numbers := []int{1, 2, 3, 2, 3, 4, 5}
	var b strings.Builder
	for _, n := range numbers {
		b.WriteString("Chapter " + strconv.Itoa(n) + "\n")
		b.WriteString(padBody(400) + "\n")
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Contents) != len(numbers) {
		t.Errorf("len(Contents) = %d, want %d (the selector widens back to every matching line)", len(res.Contents), len(numbers))
	}
}

func TestInferEmptyArticleHasNoResult(t *testing.T) {
	res, err := Infer("", nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res != nil {
		t.Errorf("expected no result for empty input, got %+v", res)
	}
}

func TestInferTitlesTooLongNeverBecomeHeadings(t *testing.T) {
	longTitle := "Chapter " + strings.Repeat("x", 250)
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		b.WriteString(longTitle + strconv.Itoa(i) + "\n")
		b.WriteString(padBody(400) + "\n")
	}

	res, err := Infer(b.String(), nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if res != nil {
		t.Errorf("expected no result when every candidate title exceeds MaxTitleLength, got %+v", res)
	}
}

func TestInferIsDeterministicAcrossRuns(t *testing.T) {
	var b strings.Builder
	for n := 1; n <= 15; n++ {
		b.WriteString("Chapter " + romanize(n) + ".\n")
		b.WriteString(padBody(300) + "\n")
	}
	text := b.String()

	first, err := Infer(text, nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	second, err := Infer(text, nil)
	if err != nil {
		t.Fatalf("Infer returned error: %v", err)
	}
	if first == nil || second == nil {
		t.Fatal("expected both calls to return a result")
	}
	if first.Template != second.Template || first.Beauty != second.Beauty {
		t.Errorf("two calls over the same text diverged: %+v vs %+v", first, second)
	}
}

func TestInferWithDiagnosticsFillsCandidatesAndSurvivors(t *testing.T) {
	var b strings.Builder
	for n := 1; n <= 15; n++ {
		b.WriteString("Chapter " + romanize(n) + ".\n")
		b.WriteString(padBody(300) + "\n")
	}

	var diag Diagnostics
	res, err := InferWithDiagnostics(b.String(), nil, &diag)
	if err != nil {
		t.Fatalf("InferWithDiagnostics returned error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(diag.Candidates) == 0 {
		t.Error("expected at least one generated candidate to be recorded")
	}
	if len(diag.Survivors) == 0 {
		t.Error("expected at least one surviving candidate to be recorded")
	}
	found := false
	for _, s := range diag.Survivors {
		if s.Template == res.Template {
			found = true
		}
	}
	if !found {
		t.Error("expected the chosen result's template to appear among the recorded survivors")
	}
}
