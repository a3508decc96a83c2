// Package text splits documents into words and locates recognition points.
package text

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits s on runs of whitespace and drops empty results. The
// returned words never contain whitespace; blank or whitespace-only input
// yields an empty sequence.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// ORPIndex returns the rune index of the optimal recognition point for a
// non-empty word: the character the eye should fixate on during rapid
// serial presentation.
//
//	length 1 -> 0
//	length 2 -> 0
//	length 3 -> 1
//	length n -> (n-1)/2
func ORPIndex(word string) int {
	n := utf8.RuneCountInString(word)
	switch {
	case n <= 2:
		return 0
	case n == 3:
		return 1
	default:
		return (n - 1) / 2
	}
}

// Progress reports playback position as a percentage in [0,100]. A zero
// total reports 0 rather than dividing.
func Progress(current, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(current+1) / float64(total) * 100
}
