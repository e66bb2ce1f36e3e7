package quality

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mhruby/kantor/internal/heuristics"
)

// gradeBand holds the expected language complexity for a grade range.
type gradeBand struct {
	wordLength     float64 // expected average content-word length
	sentenceLength float64 // expected average words per sentence
}

var gradeDigitRe = regexp.MustCompile(`[1-9]`)

// bandForGrade maps the declared grade level to expected complexity.
// Unknown grades get a middle-school band.
func bandForGrade(gradeLevel string) gradeBand {
	digit := 0
	if m := gradeDigitRe.FindString(gradeLevel); m != "" {
		digit, _ = strconv.Atoi(m)
	}
	switch {
	case digit >= 1 && digit <= 3:
		return gradeBand{wordLength: 5.0, sentenceLength: 8}
	case digit >= 4 && digit <= 6:
		return gradeBand{wordLength: 6.0, sentenceLength: 12}
	case digit >= 7 && digit <= 9:
		return gradeBand{wordLength: 7.0, sentenceLength: 16}
	default:
		return gradeBand{wordLength: 6.5, sentenceLength: 14}
	}
}

// checkAgeAppropriateness scores vocabulary and sentence complexity
// against the declared grade level and scans for inappropriate
// keywords. Keyword hits are errors; overlong sentences only warn.
func checkAgeAppropriateness(content Content) (float64, []Issue) {
	text := allText(content)
	band := bandForGrade(getString(content, "grade_level"))
	var issues []Issue

	score := 1.0
	if avgWord := heuristics.AvgWordLength(text); avgWord > 0 {
		score = clamp01(2.0 - avgWord/band.wordLength)
	}

	if avgSentence := heuristics.AvgSentenceLength(text); avgSentence > 1.5*band.sentenceLength {
		score *= 0.9
		issues = append(issues, Issue{
			Type:       IssueWarning,
			Category:   CategoryLanguage,
			Message:    fmt.Sprintf("věty jsou na daný ročník příliš dlouhé (průměr %.1f slov)", avgSentence),
			Suggestion: "Rozděl dlouhá souvětí na kratší věty.",
		})
	}

	if hits := heuristics.FindInappropriate(text); len(hits) > 0 {
		score *= 0.5
		issues = append(issues, Issue{
			Type:       IssueError,
			Category:   CategoryContent,
			Message:    fmt.Sprintf("obsah zmiňuje nevhodná témata: %s", strings.Join(hits, ", ")),
			Suggestion: "Odstraň zmínky o nevhodných tématech.",
		})
	}

	return clamp01(score), issues
}
