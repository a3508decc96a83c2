package text

import (
	"strings"
	"testing"
	"unicode"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n  ", nil},
		{"single word", "reading", []string{"reading"}},
		{"collapses runs", "the quick  brown fox", []string{"the", "quick", "brown", "fox"}},
		{"leading and trailing", "  pad  ded  ", []string{"pad", "ded"}},
		{"mixed separators", "one\ttwo\nthree\r\nfour", []string{"one", "two", "three", "four"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Tokenize(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTokenizeNoEmptyOrWhitespaceTokens(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a  b\t\tc",
		"\nfirst\nsecond\n",
		"tabs\tand spaces mixed\r\n",
	}
	for _, input := range inputs {
		for _, word := range Tokenize(input) {
			if word == "" {
				t.Fatalf("Tokenize(%q) produced empty token", input)
			}
			if strings.IndexFunc(word, unicode.IsSpace) != -1 {
				t.Fatalf("Tokenize(%q) produced token with whitespace: %q", input, word)
			}
		}
	}
}

func TestORPIndex(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"a", 0},
		{"to", 0},
		{"cat", 1},
		{"word", 1},
		{"speed", 2},
		{"glance", 2},
		{"reading", 3},
		{"presentation", 5},
	}
	for _, tc := range cases {
		if got := ORPIndex(tc.word); got != tc.want {
			t.Fatalf("ORPIndex(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestORPIndexCountsRunes(t *testing.T) {
	// Multi-byte runes must be indexed by rune, not by byte.
	if got := ORPIndex("héllo"); got != 2 {
		t.Fatalf("ORPIndex(héllo) = %d, want 2", got)
	}
	if got := ORPIndex("日本"); got != 0 {
		t.Fatalf("ORPIndex(日本) = %d, want 0", got)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		current, total int
		want           float64
	}{
		{0, 4, 25},
		{1, 4, 50},
		{3, 4, 100},
		{0, 1, 100},
		{0, 0, 0},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := Progress(tc.current, tc.total); got != tc.want {
			t.Fatalf("Progress(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
		}
	}
}
