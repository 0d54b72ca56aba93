package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Chapter 12: The End", []string{"Chapter", " ", "12", ":", " ", "The", " ", "End"}},
		{"  第12章 ", []string{"第", "12", "章"}},
		{"", nil},
	}
	for _, c := range cases {
		got := Tokenize(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestTokenizeScriptBoundary(t *testing.T) {
	got := Tokenize("ChapterГлава")
	want := []string{"Chapter", "Глава"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(mixed script) = %#v, want %#v", got, want)
	}
}
