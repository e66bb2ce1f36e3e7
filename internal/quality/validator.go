// Package quality scores generated material content against shallow
// pedagogical rubrics and reports typed issues. Every check is a
// syntactic heuristic; none of them understands the material.
package quality

import (
	"fmt"

	"github.com/mhruby/kantor/internal/material"
)

// Content is the decoded generated document. Its shape is untrusted.
type Content = map[string]any

// Validate scores content for the given material type. It never
// panics: nil or non-object content, and any internal failure, yield
// an all-zero score with a single error issue instead.
func Validate(raw any, materialType material.Type) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failedResult(fmt.Sprintf("hodnocení obsahu selhalo: %v", r))
		}
	}()

	content, ok := raw.(map[string]any)
	if !ok || content == nil {
		return failedResult("obsah není platný JSON objekt")
	}

	var issues []Issue

	structureScore, structureIssues := validateStructure(content, materialType)
	issues = append(issues, structureIssues...)

	accuracy, accuracyIssues := validateAccuracy(content, structureScore)
	issues = append(issues, accuracyIssues...)

	age, ageIssues := checkAgeAppropriateness(content)
	issues = append(issues, ageIssues...)

	pedagogy, pedagogyIssues := validatePedagogicalSoundness(content, materialType)
	issues = append(issues, pedagogyIssues...)

	clarity, clarityIssues := validateClarity(content)
	issues = append(issues, clarityIssues...)

	engagement := validateEngagement(content)

	score := Score{
		Accuracy:             accuracy,
		AgeAppropriateness:   age,
		PedagogicalSoundness: pedagogy,
		Clarity:              clarity,
		Engagement:           engagement,
	}.weighted()

	result = Result{
		Score:  score,
		Issues: issues,
	}
	result.Suggestions = generateSuggestions(score, issues)
	result.IsValid = score.Overall >= 0.6 && result.errorCount() == 0
	return result
}

func failedResult(message string) Result {
	return Result{
		IsValid: false,
		Score:   Score{},
		Issues: []Issue{{
			Type:     IssueError,
			Category: CategoryContent,
			Message:  message,
		}},
	}
}
