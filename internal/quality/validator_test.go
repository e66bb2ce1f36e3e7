package quality

import (
	"math"
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/material"
)

func goodWorksheet() Content {
	return Content{
		"title":        "Sčítání do deseti",
		"grade_level":  "2. třída",
		"instructions": "Vyřeš všechny úlohy a zkontroluj si výsledky.",
		"questions": []any{
			map[string]any{
				"problem": "Kolik je 2 + 3?",
				"answer":  "2 + 3 = 5",
				"type":    "short_answer",
			},
			map[string]any{
				"problem": "Maminka koupila 4 jablka a 3 hrušky. Kolik kusů ovoce koupila?",
				"answer":  "4 + 3 = 7",
				"type":    "short_answer",
			},
		},
	}
}

func checkWeightedSum(t *testing.T, s Score) {
	t.Helper()
	want := 0.25*s.Accuracy + 0.20*s.AgeAppropriateness +
		0.25*s.PedagogicalSoundness + 0.15*s.Clarity + 0.15*s.Engagement
	if math.Abs(s.Overall-want) > 1e-9 {
		t.Errorf("overall %v, want weighted sum %v", s.Overall, want)
	}
}

func TestValidateGoodWorksheet(t *testing.T) {
	result := Validate(goodWorksheet(), material.TypeWorksheet)
	checkWeightedSum(t, result.Score)
	if !result.IsValid {
		t.Errorf("good worksheet rejected: score %+v, issues %+v", result.Score, result.Issues)
	}
	if result.errorCount() != 0 {
		t.Errorf("unexpected error issues: %+v", result.Issues)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	content := Content{
		"title":     "Neúplný list",
		"questions": []any{},
	}
	result := Validate(content, material.TypeWorksheet)
	checkWeightedSum(t, result.Score)
	if result.IsValid {
		t.Error("content with missing required fields accepted")
	}

	var errorFields []string
	for _, issue := range result.Issues {
		if issue.Type == IssueError {
			errorFields = append(errorFields, issue.Field)
		}
	}
	if len(errorFields) != 2 {
		t.Fatalf("got %d error issues (%v), want 2", len(errorFields), errorFields)
	}
	want := map[string]bool{"instructions": true, "questions": true}
	for _, f := range errorFields {
		if !want[f] {
			t.Errorf("unexpected error field %q", f)
		}
	}
}

func TestValidateMultipleChoiceOptions(t *testing.T) {
	content := Content{
		"title":      "Kvíz",
		"time_limit": "10 min",
		"questions": []any{
			map[string]any{
				"problem": "Kolik je 2 + 2?",
				"answer":  "4",
				"type":    "multiple_choice",
				"options": []any{"4"},
			},
		},
	}
	result := Validate(content, material.TypeQuiz)
	found := false
	for _, issue := range result.Issues {
		if issue.Type == IssueError && strings.Contains(issue.Message, "alespoň 2 možnosti") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an option-count error, got %+v", result.Issues)
	}
}

func TestValidateNonObjectContent(t *testing.T) {
	for _, raw := range []any{nil, "text", 42.0, []any{"a"}} {
		result := Validate(raw, material.TypeWorksheet)
		if result.IsValid {
			t.Errorf("%T accepted as content", raw)
		}
		if result.Score != (Score{}) {
			t.Errorf("%T: score %+v, want all zero", raw, result.Score)
		}
		if len(result.Issues) != 1 || result.Issues[0].Type != IssueError {
			t.Errorf("%T: issues %+v, want a single error", raw, result.Issues)
		}
	}
}

func TestValidateArithmeticMismatch(t *testing.T) {
	content := goodWorksheet()
	content["questions"] = []any{
		map[string]any{
			"problem": "Kolik je 5 + 3?",
			"answer":  "5 + 3 = 9",
			"type":    "short_answer",
		},
	}
	result := Validate(content, material.TypeWorksheet)
	checkWeightedSum(t, result.Score)
	if result.IsValid {
		t.Error("worksheet with a wrong calculation accepted")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Category == CategoryMath && issue.Type == IssueError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a math error issue, got %+v", result.Issues)
	}
	if result.Score.Accuracy > 0.35 {
		t.Errorf("accuracy %v, want reduced by the 0.3 penalty", result.Score.Accuracy)
	}
}

func TestValidateSkipsVariableEquations(t *testing.T) {
	content := goodWorksheet()
	content["questions"] = []any{
		map[string]any{
			"problem": "Vyřeš rovnici a zapiš výsledek ve tvaru x = -1.",
			"answer":  "x = -1",
			"type":    "short_answer",
		},
	}
	result := Validate(content, material.TypeWorksheet)
	for _, issue := range result.Issues {
		if issue.Category == CategoryMath {
			t.Errorf("bare variable answer flagged as math error: %+v", issue)
		}
	}
}

func TestValidateInappropriateContent(t *testing.T) {
	content := goodWorksheet()
	content["instructions"] = "Vyřeš úlohy o tom, kolik lahví alkoholu se vejde do bedny."
	result := Validate(content, material.TypeWorksheet)
	if result.IsValid {
		t.Error("inappropriate content accepted")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Type == IssueError && issue.Category == CategoryContent {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a content error issue, got %+v", result.Issues)
	}
}

func TestValidateLessonPlanTiming(t *testing.T) {
	content := Content{
		"title":      "Zlomky",
		"duration":   "45 min",
		"objectives": []any{"Vysvětlit pojem zlomek.", "Vyřešit jednoduché příklady se zlomky."},
		"activities": []any{
			map[string]any{"name": "Úvod", "duration": "5 min"},
			map[string]any{"name": "Výklad", "duration": "10 min"},
		},
	}
	result := Validate(content, material.TypeLessonPlan)
	checkWeightedSum(t, result.Score)
	found := false
	for _, issue := range result.Issues {
		if issue.Category == CategoryPedagogy && strings.Contains(issue.Message, "časů") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a timing warning for 15 of 45 minutes, got %+v", result.Issues)
	}
}

func TestSuggestionsDeduplicatedWithThresholds(t *testing.T) {
	result := Validate(Content{"title": "Prázdný kvíz"}, material.TypeQuiz)
	seen := map[string]bool{}
	for _, s := range result.Suggestions {
		if seen[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected generic suggestions for low scores")
	}
}

func TestWeightedSumInvariantAcrossInputs(t *testing.T) {
	contents := []Content{
		goodWorksheet(),
		{},
		{"title": "Jen název"},
		{"title": "Aktivita", "instructions": []any{"Rozdělte se do skupin.", "Diskutujte o výsledku."}},
	}
	for _, content := range contents {
		for _, mt := range material.AllTypes {
			checkWeightedSum(t, Validate(content, mt).Score)
		}
	}
}
