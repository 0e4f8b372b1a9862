// Package fuzzy implements the substring search and approximate string
// scoring used to match user utterances against knowledge questions.
// Every function here is pure and safe for concurrent use.
package fuzzy

import (
	"strings"
	"unicode"
)

// Contains reports whether needle occurs in haystack, ignoring case.
func Contains(haystack, needle string) bool {
	return Occurrences(haystack, needle, false) > 0
}

// ContainsCase reports whether needle occurs in haystack. Case is ignored
// unless caseSensitive is set.
func ContainsCase(haystack, needle string, caseSensitive bool) bool {
	return Occurrences(haystack, needle, caseSensitive) > 0
}

// Occurrences counts the non-overlapping runs of needle inside haystack.
// Either operand being empty yields 0.
func Occurrences(haystack, needle string, caseSensitive bool) int {
	if haystack == "" || needle == "" {
		return 0
	}

	h, n := []rune(haystack), []rune(needle)
	if !caseSensitive {
		h, n = lowerRunes(h), lowerRunes(n)
	}

	count, cursor, start := 0, 0, 0
	for i := 0; i < len(h); i++ {
		if h[i] == n[cursor] {
			if cursor == 0 {
				start = i
			}
			cursor++
			if cursor == len(n) {
				count++
				cursor = 0
			}
			continue
		}

		// A partial run broke: resume scanning right after where it began.
		if cursor > 0 {
			i = start
			cursor = 0
		}
	}

	return count
}

// ApproximateWords returns the space separated words of text that contain
// needle, in the order they appear.
func ApproximateWords(text, needle string, caseSensitive bool) []string {
	if text == "" || needle == "" {
		return nil
	}

	var words []string
	for _, word := range strings.Split(text, " ") {
		if Occurrences(word, needle, caseSensitive) > 0 {
			words = append(words, word)
		}
	}
	return words
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
