package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer turns raw utterances into canonical comparison text.
type Normalizer struct {
	blacklist []string
}

func New(blacklist []string) *Normalizer {
	words := make([]string, 0, len(blacklist))
	for _, w := range blacklist {
		if w != "" {
			words = append(words, w)
		}
	}
	return &Normalizer{blacklist: words}
}

func (n *Normalizer) Blacklist() []string {
	out := make([]string, len(n.blacklist))
	copy(out, n.blacklist)
	return out
}

// Normalize strips blacklisted words (in blacklist order) and punctuation,
// collapses runs of spaces and trims the edges. The result may be empty.
//
// Stripping can join the pieces of a blacklisted word back together ("he!y",
// "heheyy"), so the steps repeat until the text stops changing. A pass that
// changes the text either drops runes or only recomposes marks, so the loop
// ends.
func (n *Normalizer) Normalize(raw string) string {
	s := norm.NFC.String(raw)
	for {
		next := n.strip(s)
		if next == s {
			return s
		}
		s = next
	}
}

func (n *Normalizer) strip(s string) string {
	for _, w := range n.blacklist {
		s = strings.ReplaceAll(s, w, "")
	}
	return norm.NFC.String(Clean(s))
}

// Clean drops punctuation, collapses consecutive spaces into one and trims
// leading and trailing spaces.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		if IsPunctuation(r) {
			continue
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}

	return strings.Trim(b.String(), " ")
}

func IsPunctuation(r rune) bool {
	switch r {
	case '?', '!', '.', ';', ',', ':':
		return true
	}
	return false
}
