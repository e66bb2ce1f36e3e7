package structurer

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/material"
)

func worksheetContent() Content {
	return Content{
		"title":        "Procvičování algebry",
		"instructions": "Vyřeš všechny úlohy a zkontroluj výsledky.",
		"questions": []any{
			map[string]any{"problem": "Vypočítej 2 + 3.", "answer": "5"},
			map[string]any{
				"problem": "Vyřeš rovnici x^2 + 2x + 1 = 0 a ověř obě možná řešení dosazením zpět do původní rovnice.",
				"answer":  "x = -1",
				"type":    "short_answer",
			},
			map[string]any{"problem": "Doplň 7 - 4.", "answer": "3"},
			map[string]any{
				"problem": "Popiš vlastními slovy, jak bys vysvětlil spolužákovi postup řešení lineární rovnice o jedné neznámé x.",
				"type":    "essay",
			},
		},
	}
}

func TestScaffoldingSortedByPosition(t *testing.T) {
	contents := []Content{
		worksheetContent(),
		{"activities": []any{
			map[string]any{"name": "Výklad"},
			map[string]any{"name": "Procvičování"},
			map[string]any{"name": "Shrnutí"},
		}},
		{"questions": []any{
			map[string]any{"problem": "a"},
			map[string]any{"problem": "b"},
			map[string]any{"problem": "c"},
			map[string]any{"problem": "d"},
			map[string]any{"problem": "e"},
		}},
		{},
		nil,
	}
	for _, mt := range material.AllTypes {
		for _, content := range contents {
			elements := addScaffolding(content, mt)
			for i := 1; i < len(elements); i++ {
				if elements[i-1].Position > elements[i].Position {
					t.Errorf("%s: scaffolding out of order at %d: %d > %d",
						mt, i, elements[i-1].Position, elements[i].Position)
				}
			}
		}
	}
}

func TestScaffoldingEmitsForHardQuestions(t *testing.T) {
	elements := addScaffolding(worksheetContent(), material.TypeWorksheet)
	if len(elements) == 0 {
		t.Fatal("expected scaffolding for hard worksheet questions")
	}
	hasStep := false
	for _, el := range elements {
		if el.Type == ElementStep {
			hasStep = true
		}
	}
	if !hasStep {
		t.Error("expected a step element for the hard questions")
	}
}

func TestDifficultyProgressionIdempotent(t *testing.T) {
	for _, mt := range material.AllTypes {
		content := worksheetContent()
		first := organizeDifficultyProgression(content, mt)
		second := organizeDifficultyProgression(content, mt)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: progression not deterministic", mt)
		}
	}
}

func TestDifficultyProgressionShapes(t *testing.T) {
	levels := organizeDifficultyProgression(worksheetContent(), material.TypeWorksheet)
	if len(levels) != 3 {
		t.Fatalf("worksheet progression: got %d levels, want 3", len(levels))
	}
	for i, level := range levels {
		if level.Level != i+1 {
			t.Errorf("level %d numbered %d", i, level.Level)
		}
		if len(level.Indicators) != 3 {
			t.Errorf("level %d: got %d indicators, want 3", i+1, len(level.Indicators))
		}
	}

	arc := organizeDifficultyProgression(Content{}, material.TypeLessonPlan)
	if len(arc) != 3 || !strings.Contains(arc[0].Description, "Úvod") {
		t.Errorf("lesson arc unexpected: %+v", arc)
	}

	fallback := organizeDifficultyProgression(Content{}, material.TypeProject)
	if len(fallback) != 2 {
		t.Errorf("default progression: got %d levels, want 2", len(fallback))
	}
}

func TestOrganizeWorksheetSortsAndSections(t *testing.T) {
	organized := organizeContent(worksheetContent(), material.TypeWorksheet, nil)
	questions := getSlice(organized, "questions")
	for i := 1; i < len(questions); i++ {
		if itemDifficulty(questions[i-1]) > itemDifficulty(questions[i]) {
			t.Errorf("questions not sorted ascending at %d", i)
		}
	}
	sections := getSlice(organized, "sections")
	if len(sections) == 0 || len(sections) > 3 {
		t.Fatalf("got %d sections, want 1..3", len(sections))
	}
}

func TestOrganizeWorksheetPracticeProblems(t *testing.T) {
	subtype := &material.Subtype{ID: "practice-problems", ParentType: material.TypeWorksheet}
	organized := organizeContent(worksheetContent(), material.TypeWorksheet, subtype)
	if len(getSlice(organized, "warm_up")) != 2 {
		t.Error("expected a two-question warm-up set")
	}
	if len(getSlice(organized, "bonus")) != 2 {
		t.Error("expected a two-question bonus set")
	}
}

func TestOrganizeLessonPlanIntro(t *testing.T) {
	content := Content{"activities": []any{
		map[string]any{"name": "Výklad zlomků"},
		map[string]any{"name": "Procvičování"},
	}}
	organized := organizeContent(content, material.TypeLessonPlan, nil)
	activities := getSlice(organized, "activities")
	if len(activities) != 3 {
		t.Fatalf("got %d activities, want synthesized intro + 2", len(activities))
	}
	first, _ := activities[0].(map[string]any)
	if !strings.Contains(strings.ToLower(getString(first, "name")), "úvod") {
		t.Errorf("first activity %q, want an introduction", getString(first, "name"))
	}

	withIntro := Content{"activities": []any{
		map[string]any{"name": "Úvodní opakování"},
	}}
	organized = organizeContent(withIntro, material.TypeLessonPlan, nil)
	if got := len(getSlice(organized, "activities")); got != 1 {
		t.Errorf("intro duplicated: got %d activities, want 1", got)
	}
}

func TestOrganizeQuizScoringGuide(t *testing.T) {
	content := Content{"questions": []any{
		map[string]any{"problem": "Kolik je 2+2?", "type": "multiple_choice"},
		map[string]any{"problem": "Kolik je 3+3?", "type": "multiple_choice"},
		map[string]any{"problem": "Vysvětli pojem zlomek.", "type": "short_answer"},
	}}
	organized := organizeContent(content, material.TypeQuiz, nil)
	guide := getMap(organized, "scoring_guide")
	if guide == nil {
		t.Fatal("missing scoring guide")
	}
	if pass := getString(guide, "pass_threshold"); !strings.Contains(pass, "2 z 3") {
		t.Errorf("pass threshold %q, want 2 of 3", pass)
	}
	if exc := getString(guide, "excellent"); !strings.Contains(exc, "3 z 3") {
		t.Errorf("excellent threshold %q, want 3 of 3", exc)
	}
}

func TestOrganizePresentation(t *testing.T) {
	content := Content{"slides": []any{
		map[string]any{"title": "Úvod", "bullet_points": []any{"a"}},
		map[string]any{"title": "Jádro", "bullet_points": []any{"a", "b", "c", "d"}},
	}}
	organized := organizeContent(content, material.TypePresentation, nil)
	slides := getSlice(organized, "slides")
	first, _ := slides[0].(map[string]any)
	second, _ := slides[1].(map[string]any)
	if first["number"] != 1 || second["number"] != 2 {
		t.Error("slides not numbered")
	}
	if got := getString(first, "time_estimate"); got != "1 min" {
		t.Errorf("one-bullet slide estimate %q, want minimum 1 min", got)
	}
	if got := getString(second, "time_estimate"); got != "2 min" {
		t.Errorf("four-bullet slide estimate %q, want 2 min", got)
	}
	if getString(first, "speaker_notes") == "" {
		t.Error("missing generated speaker notes")
	}
}

func TestOrganizeActivity(t *testing.T) {
	content := Content{"instructions": []any{
		"Připravte si nůžky a papír.", "Rozdělte se do skupin.",
		"Vystřihněte tvary.", "Slepte model.",
		"Porovnejte výsledky.", "Ukliďte pracovní místo.",
	}}
	organized := organizeContent(content, material.TypeActivity, nil)
	if len(getSlice(organized, "preparation")) == 0 ||
		len(getSlice(organized, "execution")) == 0 ||
		len(getSlice(organized, "conclusion")) == 0 {
		t.Error("instructions not partitioned into three phases")
	}
	safety := getSlice(organized, "safety_notes")
	if len(safety) == 0 {
		t.Fatal("expected a safety note for scissors")
	}
	if s, _ := safety[0].(string); !strings.Contains(s, "nůžkami") {
		t.Errorf("safety note %q does not mention scissors", s)
	}
}

func TestOrganizeDoesNotMutateInput(t *testing.T) {
	content := worksheetContent()
	snapshot := copyContent(content)
	organizeContent(content, material.TypeWorksheet, nil)
	if !reflect.DeepEqual(content, snapshot) {
		t.Error("organizeContent mutated its input")
	}
}

func TestBloomDistributionNormalized(t *testing.T) {
	content := Content{
		"instructions": "Vyjmenuj základní pojmy, vysvětli jejich význam a porovnej oba postupy.",
	}
	meta := addEducationalMetadata(content, material.TypeWorksheet)
	if len(meta.BloomLevels) == 0 {
		t.Fatal("expected observed Bloom levels")
	}
	sum := 0.0
	for _, level := range meta.BloomLevels {
		if level.Percentage <= 0 {
			t.Errorf("level %s reported with percentage %f", level.Level, level.Percentage)
		}
		sum += level.Percentage
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("percentages sum to %f, want 1", sum)
	}
}

func TestAssessmentTypeLookup(t *testing.T) {
	cases := map[material.Type]string{
		material.TypeQuiz:         "formativní hodnocení",
		material.TypeWorksheet:    "procvičování a upevňování",
		material.TypeProject:      "sumativní hodnocení",
		material.TypeActivity:     "aktivní učení",
		material.TypeLessonPlan:   "smíšené hodnocení",
		material.TypePresentation: "smíšené hodnocení",
	}
	for mt, want := range cases {
		if got := assessmentType(mt); got != want {
			t.Errorf("%s: got %q, want %q", mt, got, want)
		}
	}
}

func TestPrerequisitesCappedAndDeduplicated(t *testing.T) {
	text := strings.ToLower("Znalost zlomků. Znalost zlomků. Umět sčítat. Umět násobit. " +
		"Předchozí zkušenost s rýsováním. Základy geometrie. Základy algebry. Umět dělit.")
	prereqs := extractPrerequisites(text)
	if len(prereqs) > 5 {
		t.Fatalf("got %d prerequisites, want at most 5", len(prereqs))
	}
	seen := map[string]bool{}
	for _, p := range prereqs {
		if seen[p] {
			t.Errorf("duplicate prerequisite %q", p)
		}
		seen[p] = true
	}
}

func TestCognitiveLoadBounds(t *testing.T) {
	contents := []Content{
		{},
		worksheetContent(),
		{"text": strings.Repeat("abstraktní rovnice důkaz pozor krok souvislost ", 200)},
	}
	for _, content := range contents {
		load := estimateCognitiveLoad(content, strings.ToLower(flattenText(content)))
		for name, v := range map[string]float64{
			"intrinsic":  load.Intrinsic,
			"extraneous": load.Extraneous,
			"germane":    load.Germane,
			"overall":    load.Overall,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s load %f out of [0,1]", name, v)
			}
		}
	}
}

func TestStructureNilContent(t *testing.T) {
	result := Structure(nil, material.TypeWorksheet, nil)
	if result.Original == nil || result.Structured == nil {
		t.Fatal("nil content not replaced with empty content")
	}
	if len(result.DifficultyProgression) == 0 {
		t.Error("expected a fallback difficulty progression")
	}
}
