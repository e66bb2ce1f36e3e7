package tui

import (
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/generator"
	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/quality"
)

func TestAssignmentReportContents(t *testing.T) {
	a := &analysis.Assignment{
		LearningObjectives:     []string{"Procvičit sčítání zlomků"},
		Difficulty:             heuristics.DifficultyBasic,
		Subject:                "matematika",
		GradeLevel:             "6. třída",
		EstimatedDuration:      "45 min",
		KeyTopics:              []string{"zlomky"},
		SuggestedMaterialTypes: []material.Type{material.TypeWorksheet},
		Confidence:             0.5,
	}

	report := strings.Join(assignmentReport(a), "\n")

	for _, want := range []string{
		"Rozbor zadání",
		"matematika",
		"6. třída",
		"Procvičit sčítání zlomků",
		"Pracovní list",
		"Spolehlivost rozboru",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestDocumentReportVerdict(t *testing.T) {
	doc := &generator.Document{
		MaterialType: material.TypeQuiz,
		Content: map[string]any{
			"title":     "Kvíz o zlomcích",
			"questions": []any{map[string]any{"problem": "1/2 + 1/4 = ?", "answer": "3/4"}},
		},
		Validation: quality.Result{
			IsValid: false,
			Issues: []quality.Issue{
				{Type: quality.IssueError, Category: quality.CategoryStructure, Message: "chybí pole time_limit"},
			},
		},
		Attempts: 2,
	}

	report := strings.Join(documentReport(doc), "\n")

	for _, want := range []string{
		"Kvíz o zlomcích",
		"neprošel kontrolou",
		"chybí pole time_limit",
		"1 položek",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestScrollClampsToBounds(t *testing.T) {
	m := newPreviewModel(Options{})
	m.height = 30
	m.lines = make([]string, 100)

	m.scroll("end")
	if got, want := m.offset, 100-m.contentHeight(); got != want {
		t.Errorf("offset after end = %d, want %d", got, want)
	}

	m.scroll("down")
	if got, want := m.offset, 100-m.contentHeight(); got != want {
		t.Errorf("offset after down at end = %d, want %d", got, want)
	}

	m.scroll("home")
	if m.offset != 0 {
		t.Errorf("offset after home = %d, want 0", m.offset)
	}

	m.scroll("up")
	if m.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", m.offset)
	}
}
