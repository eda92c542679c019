// Package hangul provides classification and extraction of precomposed
// Hangul syllables (Unicode block U+AC00..U+D7A3).
//
// Only complete syllables are recognized; compatibility jamo, conjoining
// jamo, and anything outside the block are treated as non-Hangul.
package hangul

import "strings"

const (
	// SyllableStart is the first codepoint of the Hangul syllable block ('가').
	SyllableStart rune = 0xAC00
	// SyllableEnd is the last codepoint of the Hangul syllable block ('힣').
	SyllableEnd rune = 0xD7A3
)

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SyllableStart && r <= SyllableEnd
}

// Extract returns the subsequence of text consisting only of Hangul
// syllables, preserving their relative order. Everything else (whitespace,
// punctuation, Latin, jamo, digits) is deleted, not replaced, so syllables
// separated by deleted characters become adjacent in the result.
func Extract(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if IsSyllable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractRunes is like Extract but returns the syllables as a rune slice,
// which is the form the counting code indexes into.
func ExtractRunes(text string) []rune {
	out := make([]rune, 0, len(text)/3)
	for _, r := range text {
		if IsSyllable(r) {
			out = append(out, r)
		}
	}
	return out
}
