package analysis

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
)

func TestAnalyze_LLMPath(t *testing.T) {
	body := `Rozbor zadání: {"learning_objectives":["Pochopit sčítání zlomků"],` +
		`"difficulty":"střední","subject":"matematika","grade_level":"4. třída ZŠ",` +
		`"estimated_duration":"45 min","key_topics":["zlomky","procvičení"],"confidence":0.9}`
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})

	a := New(provider, DefaultConfig())
	result := a.Analyze(context.Background(), "Procvičit sčítání zlomků ve 4. třídě")

	if result.Subject != "matematika" {
		t.Errorf("subject: got %q, want %q", result.Subject, "matematika")
	}
	if result.Difficulty != heuristics.DifficultyIntermediate {
		t.Errorf("difficulty: got %q", result.Difficulty)
	}
	if result.Confidence != 0.9 {
		t.Errorf("confidence: got %f, want 0.9", result.Confidence)
	}
	// Suggested types come from the local rules, not model output:
	// "procvičení" matches the worksheet group.
	if len(result.SuggestedMaterialTypes) == 0 || result.SuggestedMaterialTypes[0] != material.TypeWorksheet {
		t.Errorf("suggested types: got %v", result.SuggestedMaterialTypes)
	}
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue → ErrProviderUnavailable

	a := New(provider, DefaultConfig())
	result := a.Analyze(context.Background(), "Základy sčítání zlomků pro 4. třídu")

	if result == nil {
		t.Fatal("fallback must always return an analysis")
	}
	if result.Confidence != 0.5 {
		t.Errorf("fallback confidence: got %f, want 0.5", result.Confidence)
	}
	want := []material.Type{material.TypeWorksheet, material.TypeLessonPlan}
	if !reflect.DeepEqual(result.SuggestedMaterialTypes, want) {
		t.Errorf("fallback types: got %v, want %v", result.SuggestedMaterialTypes, want)
	}
}

func TestAnalyze_FallbackOnGarbageOutput(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Bohužel nemohu odpovědět ve formátu JSON."`),
	})

	a := New(provider, DefaultConfig())
	result := a.Analyze(context.Background(), "Opakování vyjmenovaných slov")

	if result.Confidence != 0.5 {
		t.Errorf("expected fallback (confidence 0.5), got %f", result.Confidence)
	}
}

func TestAnalyze_NormalizesMissingFields(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"difficulty":42,"subject":null,"key_topics":"nejde o pole"}`),
	})

	a := New(provider, DefaultConfig())
	result := a.Analyze(context.Background(), "cokoliv")

	if result.Subject != "obecný" {
		t.Errorf("subject default: got %q", result.Subject)
	}
	if result.GradeLevel != "neurčeno" {
		t.Errorf("grade default: got %q", result.GradeLevel)
	}
	if result.EstimatedDuration != "45 min" {
		t.Errorf("duration default: got %q", result.EstimatedDuration)
	}
	if result.Difficulty != heuristics.DifficultyIntermediate {
		t.Errorf("difficulty default: got %q", result.Difficulty)
	}
	if len(result.KeyTopics) != 0 {
		t.Errorf("key topics should coerce to empty, got %v", result.KeyTopics)
	}
	if result.Confidence != 0.7 {
		t.Errorf("confidence default: got %f", result.Confidence)
	}
}

func TestFallbackAnalysis_Deterministic(t *testing.T) {
	description := "Cíl: žáci se naučí sčítat zlomky. Procvičení pro 4. třídu, asi 30 minut."
	first := FallbackAnalysis(description)
	second := FallbackAnalysis(description)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("fallback is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestSuggestMaterialTypes_NoDuplicates(t *testing.T) {
	assignments := []*Assignment{
		{KeyTopics: []string{"procvičení úloh", "cvičení", "trénink"}, Difficulty: heuristics.DifficultyBasic},
		{KeyTopics: []string{"projekt", "výzkum", "prezentace"}, Difficulty: heuristics.DifficultyExpert},
		{KeyTopics: nil, Difficulty: heuristics.DifficultyIntermediate},
		{KeyTopics: nil, Difficulty: ""},
	}
	for _, a := range assignments {
		got := SuggestMaterialTypes(a)
		seen := map[material.Type]bool{}
		for _, tp := range got {
			if seen[tp] {
				t.Errorf("duplicate type %q in %v", tp, got)
			}
			seen[tp] = true
		}
		if len(got) == 0 {
			t.Errorf("no suggestion for %+v", a)
		}
	}
}

func TestSuggestMaterialTypes_DifficultyDefaults(t *testing.T) {
	a := &Assignment{Difficulty: heuristics.DifficultyExpert}
	want := []material.Type{material.TypeProject, material.TypePresentation}
	if got := SuggestMaterialTypes(a); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`text before {"a":{"b":2}} text after`, `{"a":{"b":2}}`},
		{`{"s":"brace } inside"}`, `{"s":"brace } inside"}`},
		{`no json here`, ``},
		{`unbalanced {`, ``},
		{``, ``},
	}
	for _, c := range cases {
		if got := ExtractJSONObject(c.in); got != c.want {
			t.Errorf("ExtractJSONObject(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
