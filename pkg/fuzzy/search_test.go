package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name          string
		haystack      string
		needle        string
		caseSensitive bool
		want          int
	}{
		{name: "empty haystack", haystack: "", needle: "a", want: 0},
		{name: "empty needle", haystack: "abc", needle: "", want: 0},
		{name: "both empty", haystack: "", needle: "", want: 0},
		{name: "single hit", haystack: "how are you", needle: "are", want: 1},
		{name: "ignores case by default", haystack: "Hello World", needle: "hello", want: 1},
		{name: "case sensitive miss", haystack: "Hello World", needle: "hello", caseSensitive: true, want: 0},
		{name: "case sensitive hit", haystack: "Hello World", needle: "World", caseSensitive: true, want: 1},
		{name: "multiple hits", haystack: "abab ab", needle: "ab", want: 3},
		{name: "non overlapping", haystack: "aaaa", needle: "aa", want: 2},
		{name: "broken run is rescanned", haystack: "aaab", needle: "aab", want: 1},
		{name: "needle longer than haystack", haystack: "ab", needle: "abc", want: 0},
		{name: "scattered letters do not count", haystack: "a-b-c", needle: "abc", want: 0},
		{name: "unicode", haystack: "Ça va bien", needle: "ça", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Occurrences(tt.haystack, tt.needle, tt.caseSensitive)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Hello World", "hello"))
	assert.True(t, Contains("how are you", "HOW ARE YOU"))
	assert.False(t, Contains("how are you", "who"))
	assert.False(t, Contains("", "x"))
	assert.False(t, Contains("x", ""))

	assert.False(t, ContainsCase("Hello World", "hello", true))
	assert.True(t, ContainsCase("Hello World", "hello", false))
}

func TestApproximateWords(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		needle string
		want   []string
	}{
		{name: "empty text", text: "", needle: "a", want: nil},
		{name: "no match", text: "purple elephant", needle: "xyz", want: nil},
		{name: "partial words", text: "football foot feet Footix", needle: "foot", want: []string{"football", "foot", "Footix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApproximateWords(tt.text, tt.needle, false))
		})
	}
}
