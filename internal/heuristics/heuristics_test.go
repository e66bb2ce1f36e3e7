package heuristics

import (
	"strings"
	"testing"
)

func TestExtractLearningObjectives_ExplicitMarker(t *testing.T) {
	text := "Cíl: Student se naučí základy algebry."
	objectives := ExtractLearningObjectives(text)

	if len(objectives) == 0 {
		t.Fatal("expected at least one objective")
	}
	found := false
	for _, o := range objectives {
		if strings.Contains(o, "základy algebry") {
			found = true
		}
	}
	if !found {
		t.Errorf("no objective contains %q, got %v", "základy algebry", objectives)
	}
}

func TestExtractLearningObjectives_CapAtFive(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("Cíl: Pochopit velmi důležité téma číslo ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("\n")
	}
	objectives := ExtractLearningObjectives(b.String())
	if len(objectives) > 5 {
		t.Errorf("expected at most 5 objectives, got %d", len(objectives))
	}
}

func TestExtractLearningObjectives_DropsShortCandidates(t *testing.T) {
	objectives := ExtractLearningObjectives("Cíl: krátké\n")
	for _, o := range objectives {
		if o == "krátké" {
			t.Error("candidate of 10 characters or fewer should be dropped")
		}
	}
}

func TestExtractLearningObjectives_FallbackFromConcepts(t *testing.T) {
	text := "Opakování násobilka násobilka násobilka pro žáky."
	objectives := ExtractLearningObjectives(text)
	if len(objectives) == 0 {
		t.Fatal("expected synthesized fallback objectives")
	}
	if len(objectives) > 3 {
		t.Errorf("fallback synthesizes at most 3 objectives, got %d", len(objectives))
	}
	if !strings.HasPrefix(objectives[0], "Pochopit ") {
		t.Errorf("fallback objective should start with \"Pochopit\", got %q", objectives[0])
	}
}

func TestDetectDifficulty_Total(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Základy sčítání pro první třídu.",
		"Expertní olympiádní úloha vyžadující hluboký vědecký výzkum a komplexní analýzu.",
		strings.Repeat("slovo ", 500),
	}
	valid := map[Difficulty]bool{
		DifficultyBasic: true, DifficultyIntermediate: true,
		DifficultyAdvanced: true, DifficultyExpert: true,
	}
	for _, in := range inputs {
		got := DetectDifficulty(in)
		if !valid[got] {
			t.Errorf("DetectDifficulty(%q) = %q, not a valid level", in, got)
		}
	}
}

func TestDetectDifficulty_BasicKeywordsShortSentences(t *testing.T) {
	text := "Základy. Jednoduchý úvod. Krátké věty."
	if got := DetectDifficulty(text); got != DifficultyBasic {
		t.Errorf("got %q, want %q", got, DifficultyBasic)
	}
}

func TestDetectDifficulty_Deterministic(t *testing.T) {
	text := "Procvičení i pokročilá analýza zlomků."
	first := DetectDifficulty(text)
	for i := 0; i < 10; i++ {
		if got := DetectDifficulty(text); got != first {
			t.Fatalf("non-deterministic result: %q then %q", first, got)
		}
	}
}

func TestDetectSubject(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Sčítání zlomků pro 4. třídu", "matematika"},
		{"Vyjmenovaná slova po B", "český jazyk"},
		{"Fotosyntéza a rostliny", "přírodověda"},
		{"Husitské války a středověk", "dějepis"},
		{"Hlavní města Evropy na mapě", "zeměpis"},
		{"Anglická nepravidelná slovesa", "angličtina"},
		{"Úvod do programování", "informatika"},
		{"Něco úplně jiného", "obecný"},
		{"", "obecný"},
	}
	for _, c := range cases {
		if got := DetectSubject(c.text); got != c.want {
			t.Errorf("DetectSubject(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestDetectSubject_TableOrderWins(t *testing.T) {
	// Mentions both math and history; math comes first in the table.
	text := "Počítání s letopočty ve středověku"
	if got := DetectSubject(text); got != "matematika" {
		t.Errorf("got %q, want matematika (first table entry wins)", got)
	}
}

func TestDetectGradeLevel(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Pracovní list pro 3. třídu", "3. třída ZŠ"},
		{"Opakování s 5. třídou", "5. třída ZŠ"},
		{"Materiál pro 7. ročník", "7. třída ZŠ"},
		{"Pro 2. ročník SŠ", "2. ročník SŠ"},
		{"Pro 2. ročník gymnázia", "2. ročník SŠ"},
		{"Bez udání třídy", GradeUndetermined},
		{"", GradeUndetermined},
	}
	for _, c := range cases {
		if got := DetectGradeLevel(c.text); got != c.want {
			t.Errorf("DetectGradeLevel(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestEstimateDuration_Explicit(t *testing.T) {
	if got := EstimateDuration("Aktivita na 30 minut pro celou třídu"); got != "30 min" {
		t.Errorf("got %q, want \"30 min\"", got)
	}
	if got := EstimateDuration("Projekt na 2 hodiny"); got != "2 hodiny" {
		t.Errorf("got %q, want \"2 hodiny\"", got)
	}
}

func TestEstimateDuration_WordCountBands(t *testing.T) {
	cases := []struct {
		words int
		want  string
	}{
		{10, "20 min"},
		{60, "45 min"},
		{150, "90 min"},
		{300, "2 hodiny"},
	}
	for _, c := range cases {
		text := strings.TrimSpace(strings.Repeat("slovo ", c.words))
		if got := EstimateDuration(text); got != c.want {
			t.Errorf("%d words: got %q, want %q", c.words, got, c.want)
		}
	}
}

func TestExtractKeyConcepts(t *testing.T) {
	text := "Zlomky zlomky zlomky. Sčítání sčítání. Geometrie. A je to."
	concepts := ExtractKeyConcepts(text)

	if len(concepts) == 0 {
		t.Fatal("expected concepts")
	}
	if concepts[0] != "zlomky" {
		t.Errorf("most frequent concept should come first, got %v", concepts)
	}
	if len(concepts) > 8 {
		t.Errorf("expected at most 8 concepts, got %d", len(concepts))
	}
	for _, c := range concepts {
		if len([]rune(c)) <= 4 {
			t.Errorf("concept %q has 4 or fewer characters", c)
		}
		if IsStopWord(c) {
			t.Errorf("stop word %q leaked into concepts", c)
		}
	}
}

func TestExtractKeyConcepts_EmptyInput(t *testing.T) {
	if got := ExtractKeyConcepts(""); len(got) != 0 {
		t.Errorf("expected no concepts for empty input, got %v", got)
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("protože") {
		t.Error("expected \"protože\" to be a stop word")
	}
	if IsStopWord("zlomky") {
		t.Error("\"zlomky\" should not be a stop word")
	}
}

func TestFindInappropriate(t *testing.T) {
	if hits := FindInappropriate("Pracovní list o sčítání"); len(hits) != 0 {
		t.Errorf("clean text flagged: %v", hits)
	}
	if hits := FindInappropriate("Příběh o alkoholu a násilí"); len(hits) == 0 {
		t.Error("expected inappropriate keywords to be found")
	}
}
