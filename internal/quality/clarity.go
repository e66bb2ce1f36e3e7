package quality

import (
	"strings"

	"github.com/mhruby/kantor/internal/heuristics"
)

// defaultClarityScore applies when there are no instructions or
// questions to judge.
const defaultClarityScore = 0.7

// validateClarity averages instruction clarity and question clarity
// over everything the content offers.
func validateClarity(content Content) (float64, []Issue) {
	var (
		total float64
		count int
	)

	for _, instruction := range instructionStrings(content) {
		total += instructionClarity(instruction)
		count++
	}

	var issues []Issue
	for _, q := range getSlice(content, "questions") {
		text := questionText(q)
		if text == "" {
			continue
		}
		score := questionClarity(text)
		total += score
		count++
		if score < 0.5 {
			issues = append(issues, Issue{
				Type:       IssueInfo,
				Category:   CategoryLanguage,
				Message:    "otázka není formulována jako jasné zadání",
				Suggestion: "Začni otázku tázacím slovem nebo ji zakonči otazníkem.",
			})
			// One issue is enough; the score already reflects the rest.
			issues = issues[:1]
		}
	}

	if count == 0 {
		return defaultClarityScore, nil
	}
	return clamp01(total / float64(count)), issues
}

// instructionClarity weights an action verb at 0.6 and a sensible
// length at 0.4.
func instructionClarity(text string) float64 {
	score := 0.0
	if heuristics.ContainsActionVerb(text) {
		score += 0.6
	}
	if n := len(heuristics.Words(text)); n >= 3 && n <= 30 {
		score += 0.4
	}
	return score
}

// questionClarity rewards an interrogative opening or a question mark
// and a length between 10 and 200 characters.
func questionClarity(text string) float64 {
	score := 0.0
	if heuristics.ContainsInterrogative(text) || strings.Contains(text, "?") {
		score += 0.5
	}
	if n := len([]rune(text)); n >= 10 && n <= 200 {
		score += 0.5
	}
	return score
}
