package heuristics

import (
	"sort"
	"strings"
)

const (
	maxKeyConcepts   = 8
	minConceptLength = 4
)

// ExtractKeyConcepts returns the most frequent content words in the
// text, up to 8, ordered by descending frequency. Only letter-only
// tokens longer than 4 characters that are not stop words count.
// Frequency ties keep first-occurrence order, so the result is
// deterministic.
func ExtractKeyConcepts(text string) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}

	for i, token := range Words(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?()\"'„“")
		if len([]rune(token)) <= minConceptLength {
			continue
		}
		if IsStopWord(token) || !czechWordRe.MatchString(token) {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = i
		}
		counts[token]++
	}

	concepts := make([]string, 0, len(counts))
	for c := range counts {
		concepts = append(concepts, c)
	}
	sort.SliceStable(concepts, func(i, j int) bool {
		if counts[concepts[i]] != counts[concepts[j]] {
			return counts[concepts[i]] > counts[concepts[j]]
		}
		return firstSeen[concepts[i]] < firstSeen[concepts[j]]
	})

	if len(concepts) > maxKeyConcepts {
		concepts = concepts[:maxKeyConcepts]
	}
	return concepts
}
