package heuristics

import "strings"

// DetectDifficulty scores the four difficulty levels against the text
// and returns the highest-scoring one. Each keyword hit is worth one
// point; average sentence length adds a small structural bonus. Ties
// resolve to the earliest declared level, so the result is
// deterministic for any input. Empty input yields the intermediate
// default.
func DetectDifficulty(text string) Difficulty {
	lower := strings.ToLower(text)

	scores := map[Difficulty]int{}
	for _, level := range AllDifficulties {
		scores[level] = countMatches(lower, difficultyKeywords[level])
	}

	// Long sentences correlate with harder material.
	switch avg := AvgSentenceLength(text); {
	case avg > 20:
		scores[DifficultyAdvanced] += 2
	case avg > 15:
		scores[DifficultyIntermediate]++
	default:
		scores[DifficultyBasic]++
	}

	best := DifficultyIntermediate
	bestScore := -1
	for _, level := range AllDifficulties {
		if scores[level] > bestScore {
			best = level
			bestScore = scores[level]
		}
	}
	return best
}
