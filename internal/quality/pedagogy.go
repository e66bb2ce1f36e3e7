package quality

import (
	"math"
	"regexp"
	"strconv"

	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

// defaultPedagogyScore applies when the content carries no signal the
// pedagogy checks can use.
const defaultPedagogyScore = 0.7

var minutesValueRe = regexp.MustCompile(`(\d+)\s*(?:min|minut)`)

// validatePedagogicalSoundness averages whichever pedagogy signals the
// content provides: objective actionability, worksheet difficulty
// ordering and lesson-plan timing fit.
func validatePedagogicalSoundness(content Content, materialType material.Type) (float64, []Issue) {
	var (
		components []float64
		issues     []Issue
	)

	if objectives := objectiveStrings(content); len(objectives) > 0 {
		actionable := 0
		for _, obj := range objectives {
			if heuristics.ContainsActionVerb(obj) {
				actionable++
			}
		}
		fraction := float64(actionable) / float64(len(objectives))
		components = append(components, fraction)
		if fraction < 0.5 {
			issues = append(issues, Issue{
				Type:       IssueWarning,
				Category:   CategoryPedagogy,
				Message:    "většina cílů neobsahuje činnostní sloveso",
				Field:      "objectives",
				Suggestion: "Formuluj cíle činnostními slovesy (vysvětli, vyřeš, porovnej).",
			})
		}
	}

	if materialType == material.TypeWorksheet {
		if score, ok := difficultyOrdering(content); ok {
			components = append(components, score)
			if score < 0.5 {
				issues = append(issues, Issue{
					Type:       IssueInfo,
					Category:   CategoryPedagogy,
					Message:    "úlohy nejsou řazeny od jednodušších ke složitějším",
					Field:      "questions",
					Suggestion: "Seřaď úlohy vzestupně podle obtížnosti.",
				})
			}
		}
	}

	if materialType == material.TypeLessonPlan {
		if fit, ok := timingFit(content); ok {
			components = append(components, fit)
			if fit < 0.8 {
				issues = append(issues, Issue{
					Type:       IssueWarning,
					Category:   CategoryPedagogy,
					Message:    "součet časů aktivit neodpovídá délce hodiny",
					Field:      "activities",
					Suggestion: "Uprav časy aktivit tak, aby odpovídaly délce hodiny.",
				})
			}
		}
	}

	if len(components) == 0 {
		return defaultPedagogyScore, issues
	}
	total := 0.0
	for _, c := range components {
		total += c
	}
	return clamp01(total / float64(len(components))), issues
}

// difficultyOrdering measures how well question lengths grow through a
// worksheet as a length-based proxy for difficulty ordering. Reports
// false when there are not enough questions to compare.
func difficultyOrdering(content Content) (float64, bool) {
	questions := getSlice(content, "questions")
	if len(questions) < 2 {
		return 0, false
	}
	nonDecreasing := 0
	for i := 1; i < len(questions); i++ {
		if len(questionText(questions[i])) >= len(questionText(questions[i-1])) {
			nonDecreasing++
		}
	}
	return float64(nonDecreasing) / float64(len(questions)-1), true
}

// timingFit compares the declared lesson duration with the summed
// activity times. A perfect match scores 1, larger deviations fall
// toward 0.
func timingFit(content Content) (float64, bool) {
	declared := parseMinutes(getString(content, "duration"))
	if declared == 0 {
		return 0, false
	}
	total := 0
	for _, a := range getSlice(content, "activities") {
		m, ok := a.(map[string]any)
		if !ok {
			continue
		}
		total += parseMinutes(getString(m, "duration"))
	}
	if total == 0 {
		return 0, false
	}
	fit := 1.0 - math.Abs(float64(declared-total))/float64(declared)
	if fit < 0 {
		fit = 0
	}
	return fit, true
}

func parseMinutes(s string) int {
	m := minutesValueRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
