package promptgen

import (
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

func TestApplyModifications_PrependAppend(t *testing.T) {
	mods := []material.PromptModification{
		{Type: material.ModPrepend, Content: "PŘED"},
		{Type: material.ModAppend, Content: "ZA"},
	}
	got := ApplyModifications("Základní prompt", mods)
	want := "PŘED\n\nZákladní prompt\n\nZA"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyModifications_OrderMatters(t *testing.T) {
	mods := []material.PromptModification{
		{Type: material.ModAppend, Content: "první"},
		{Type: material.ModAppend, Content: "druhý"},
	}
	got := ApplyModifications("start", mods)
	if strings.Index(got, "první") > strings.Index(got, "druhý") {
		t.Errorf("modifications applied out of order: %q", got)
	}
}

func TestApplyModifications_ReplaceCaseInsensitive(t *testing.T) {
	mods := []material.PromptModification{
		{Type: material.ModReplace, Target: "úlohy", Content: "PŘÍKLADY"},
	}
	got := ApplyModifications("Úlohy a další úlohy", mods)
	if got != "PŘÍKLADY a další PŘÍKLADY" {
		t.Errorf("got %q", got)
	}
}

func TestApplyModifications_InjectAfterFirstOccurrence(t *testing.T) {
	mods := []material.PromptModification{
		{Type: material.ModInject, Target: "kotva", Content: "vloženo"},
	}
	got := ApplyModifications("před kotva po, druhá kotva", mods)
	want := "před kotva\nvloženo po, druhá kotva"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyModifications_MissingTargetNoOps(t *testing.T) {
	base := "nezměněný prompt"
	mods := []material.PromptModification{
		{Type: material.ModReplace, Target: "neexistuje", Content: "x"},
		{Type: material.ModInject, Target: "taky ne", Content: "y"},
	}
	if got := ApplyModifications(base, mods); got != base {
		t.Errorf("missing targets must no-op, got %q", got)
	}
}

func TestBuild_StageOrder(t *testing.T) {
	b := NewBuilder()
	got := b.Build(Params{
		MaterialType: material.TypeWorksheet,
		Assignment: &analysis.Assignment{
			Subject:    "matematika",
			GradeLevel: "4. třída ZŠ",
			Difficulty: heuristics.DifficultyIntermediate,
			KeyTopics:  []string{"zlomky"},
		},
		UserInputs:         map[string]string{"title": "Zlomky", "question_count": "10"},
		QualityLevel:       material.QualityStandard,
		CustomInstructions: "Vynech geometrii.",
	})

	markers := []string{
		"Kontext zadání:",
		"Vytvoř pracovní list",
		"Požadavky na kvalitu:",
		"Upřesnění od učitele:",
		"Další pokyny od učitele:",
		"Závěrečné pokyny:",
		"Začni generovat:",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", m)
		}
		if idx < last {
			t.Errorf("section %q out of order", m)
		}
		last = idx
	}
}

func TestBuild_SubtypePrependPrecedesEverything(t *testing.T) {
	b := NewBuilder()
	subtype := &material.Subtype{
		ID:         "s",
		ParentType: material.TypeWorksheet,
		PromptModifications: []material.PromptModification{
			{Type: material.ModPrepend, Content: "ÚPLNĚ PRVNÍ"},
		},
	}
	got := b.Build(Params{
		MaterialType: material.TypeWorksheet,
		Subtype:      subtype,
		Assignment:   &analysis.Assignment{Subject: "matematika"},
		QualityLevel: material.QualityStandard,
	})
	if !strings.HasPrefix(got, "ÚPLNĚ PRVNÍ") {
		t.Errorf("prepend modification must precede all other sections, prompt starts with %q", got[:40])
	}
}

func TestBuild_UnknownTypeFallsBack(t *testing.T) {
	b := NewBuilder()
	got := b.Build(Params{MaterialType: material.Type("neznámý")})
	if !strings.Contains(got, "Vytvoř výukový materiál") {
		t.Error("unknown material type should use the generic template")
	}
	if !strings.Contains(got, "jedním platným JSON objektem") {
		t.Error("finalization block missing")
	}
}

func TestBuild_OmitsAbsentUserFields(t *testing.T) {
	b := NewBuilder()
	got := b.Build(Params{
		MaterialType: material.TypeQuiz,
		UserInputs:   map[string]string{"time_limit": "15 min", "slide_count": "8"},
		QualityLevel: material.QualityBasic,
	})
	if !strings.Contains(got, "Časový limit: 15 min") {
		t.Error("recognized quiz field missing from prompt")
	}
	if strings.Contains(got, "slide_count") || strings.Contains(got, "Počet slidů") {
		t.Error("presentation-only field must not render for a quiz")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder()
	p := Params{
		MaterialType: material.TypeLessonPlan,
		UserInputs:   map[string]string{"class_size": "24", "duration": "45 min"},
		QualityLevel: material.QualityHigh,
	}
	first := b.Build(p)
	for i := 0; i < 5; i++ {
		if got := b.Build(p); got != first {
			t.Fatal("Build is not deterministic for identical params")
		}
	}
}
