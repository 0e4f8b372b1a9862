package fuzzy

import "unicode"

const (
	consecutiveScore = 0.7
	gapScore         = 0.1
	acronymBonus     = 0.8
	sameCaseBonus    = 0.1

	// Scores below lowScoreLimit are lifted by lowScoreBonus.
	lowScoreLimit = 0.85
	lowScoreBonus = 0.15
)

// Score rates how well candidate matches original, from 0 (no match) to 1
// (identical). Every character of candidate must be found in original, in
// order; a single miss returns 0.
func Score(original, candidate string) float64 {
	return score(original, candidate, 0, true)
}

// FuzzyScore is Score with a tolerance for characters of candidate that
// cannot be found in original. Each miss inflates the divisor of the final
// score by (1 - fuzziness) instead of disqualifying the match, so a
// fuzziness of 1 ignores misses entirely.
func FuzzyScore(original, candidate string, fuzziness float64) float64 {
	return score(original, candidate, fuzziness, false)
}

func score(original, candidate string, fuzziness float64, strict bool) float64 {
	if original == "" || candidate == "" {
		return 0
	}
	if original == candidate {
		return 1
	}

	orig := []rune(original)
	lowerOrig := lowerRunes(orig)
	cand := []rune(candidate)

	var running float64
	fuzzies := 1.0
	startAt := 0

	for _, r := range cand {
		idx := indexFrom(lowerOrig, unicode.ToLower(r), startAt)
		if idx < 0 {
			if strict {
				return 0
			}
			fuzzies += 1 - fuzziness
			continue
		}

		var charScore float64
		if idx == startAt {
			charScore = consecutiveScore
		} else {
			charScore = gapScore
			// first letter of a new word
			if orig[idx-1] == ' ' {
				charScore += acronymBonus
			}
		}

		if orig[idx] == r {
			charScore += sameCaseBonus
		}

		running += charScore
		startAt = idx + 1
	}

	final := 0.5 * (running/float64(len(orig)) + running/float64(len(cand))) / fuzzies
	if final < lowScoreLimit {
		final += lowScoreBonus
	}
	return final
}

func indexFrom(rs []rune, r rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
