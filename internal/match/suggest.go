package match

// DefaultSuggestScore is the minimum normalized similarity for a candidate
// to be offered as a "did you mean" suggestion.
const DefaultSuggestScore = 0.5

// Suggest returns the candidate closest to word, if any is close enough.
// Ties go to the candidate listed first.
func Suggest(word string, candidates []string) (string, bool) {
	return SuggestWithScore(word, candidates, DefaultSuggestScore)
}

// SuggestWithScore is Suggest with an explicit similarity threshold.
func SuggestWithScore(word string, candidates []string, minScore float64) (string, bool) {
	best := ""
	bestScore := -1.0

	for _, c := range candidates {
		if c == word {
			continue
		}

		score := Similarity(word, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}
