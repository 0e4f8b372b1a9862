package knowledge

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SimilarPair is two questions close enough that users will likely hit the
// wrong one.
type SimilarPair struct {
	First    string
	Second   string
	Distance int
}

// NearDuplicates lists question pairs whose case-insensitive edit distance
// is at most maxDistance, in scan order.
func (b *Base) NearDuplicates(maxDistance int) []SimilarPair {
	lowered := make([]string, len(b.entries))
	for i, e := range b.entries {
		lowered[i] = strings.ToLower(e.Question)
	}

	var pairs []SimilarPair
	for i := 0; i < len(lowered); i++ {
		for j := i + 1; j < len(lowered); j++ {
			d := levenshtein.ComputeDistance(lowered[i], lowered[j])
			if d <= maxDistance {
				pairs = append(pairs, SimilarPair{
					First:    b.entries[i].Question,
					Second:   b.entries[j].Question,
					Distance: d,
				})
			}
		}
	}
	return pairs
}
