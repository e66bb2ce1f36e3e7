package quality

import (
	"fmt"

	"github.com/mhruby/kantor/internal/material"
)

// requiredFields lists what each material type must carry to be
// usable at all. Missing entries gate validity as error issues.
var requiredFields = map[material.Type][]string{
	material.TypeWorksheet:    {"title", "instructions", "questions"},
	material.TypeQuiz:         {"title", "questions", "time_limit"},
	material.TypeLessonPlan:   {"title", "objectives", "activities"},
	material.TypeProject:      {"title", "description", "assessment_criteria"},
	material.TypePresentation: {"title", "slides"},
	material.TypeActivity:     {"title", "instructions"},
}

// validateStructure checks required fields and per-question shape.
// The score is the fraction of required fields present, discounted
// for each malformed question.
func validateStructure(content Content, materialType material.Type) (float64, []Issue) {
	required, ok := requiredFields[materialType]
	if !ok {
		required = []string{"title"}
	}

	var issues []Issue
	present := 0
	for _, field := range required {
		if fieldPresent(content, field) {
			present++
			continue
		}
		issues = append(issues, Issue{
			Type:       IssueError,
			Category:   CategoryStructure,
			Message:    fmt.Sprintf("chybí povinné pole %q", field),
			Field:      field,
			Suggestion: fmt.Sprintf("Doplň pole %q do vygenerovaného obsahu.", field),
		})
	}
	score := float64(present) / float64(len(required))

	questionIssues := validateQuestions(content, materialType)
	issues = append(issues, questionIssues...)
	for range questionIssues {
		score *= 0.9
	}
	return clamp01(score), issues
}

// validateQuestions checks each question of a worksheet or quiz for a
// problem text, an answer and, for multiple choice, enough options.
func validateQuestions(content Content, materialType material.Type) []Issue {
	if materialType != material.TypeWorksheet && materialType != material.TypeQuiz {
		return nil
	}
	var issues []Issue
	for i, q := range getSlice(content, "questions") {
		m, ok := q.(map[string]any)
		if !ok {
			issues = append(issues, Issue{
				Type:     IssueError,
				Category: CategoryStructure,
				Message:  fmt.Sprintf("otázka %d není objekt", i+1),
				Field:    fmt.Sprintf("questions[%d]", i),
			})
			continue
		}
		if questionText(m) == "" {
			issues = append(issues, Issue{
				Type:     IssueError,
				Category: CategoryStructure,
				Message:  fmt.Sprintf("otázka %d nemá zadání", i+1),
				Field:    fmt.Sprintf("questions[%d].problem", i),
			})
		}
		if !fieldPresent(m, "answer") && !fieldPresent(m, "correct_answer") {
			issues = append(issues, Issue{
				Type:     IssueError,
				Category: CategoryStructure,
				Message:  fmt.Sprintf("otázka %d nemá odpověď", i+1),
				Field:    fmt.Sprintf("questions[%d].answer", i),
			})
		}
		if getString(m, "type") == "multiple_choice" && len(getSlice(m, "options")) < 2 {
			issues = append(issues, Issue{
				Type:       IssueError,
				Category:   CategoryStructure,
				Message:    fmt.Sprintf("otázka %d s výběrem odpovědi musí mít alespoň 2 možnosti", i+1),
				Field:      fmt.Sprintf("questions[%d].options", i),
				Suggestion: "Přidej ke každé otázce s výběrem odpovědi alespoň dvě možnosti.",
			})
		}
	}
	return issues
}
