package structurer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mhruby/kantor/internal/material"
)

// organizer reorganizes a deep copy of the content for one material
// type. The subtype may refine the result and may be nil.
type organizer func(content Content, subtype *material.Subtype) Content

var organizers = map[material.Type]organizer{
	material.TypeWorksheet:    organizeWorksheet,
	material.TypeLessonPlan:   organizeLessonPlan,
	material.TypeQuiz:         organizeQuiz,
	material.TypeProject:      organizeProject,
	material.TypePresentation: organizePresentation,
	material.TypeActivity:     organizeActivity,
}

// organizeContent dispatches to the type-specific organizer. The input
// is copied first so callers keep their original untouched; unknown
// types get the copy back unchanged.
func organizeContent(content Content, materialType material.Type, subtype *material.Subtype) Content {
	copied := copyContent(content)
	organize, ok := organizers[materialType]
	if !ok {
		return copied
	}
	return organize(copied, subtype)
}

// sortByDifficulty orders items by their difficulty score ascending.
// The sort is stable so equally scored items keep generation order.
func sortByDifficulty(items []any) []any {
	sorted := make([]any, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return itemDifficulty(sorted[i]) < itemDifficulty(sorted[j])
	})
	return sorted
}

func sectionName(avgScore float64) string {
	switch {
	case avgScore < 2.0:
		return "Základní úlohy"
	case avgScore < 3.0:
		return "Střední úlohy"
	default:
		return "Pokročilé úlohy"
	}
}

// organizeWorksheet sorts questions easiest first and splits them into
// up to three sections named by their average difficulty. The
// practice-problems subtype additionally gets a warm-up set from the
// two easiest questions and a bonus set from the two hardest.
func organizeWorksheet(content Content, subtype *material.Subtype) Content {
	questions := getSlice(content, "questions")
	if len(questions) == 0 {
		return content
	}
	sorted := sortByDifficulty(questions)
	content["questions"] = sorted

	sectionCount := 3
	if len(sorted) < sectionCount {
		sectionCount = len(sorted)
	}
	per := (len(sorted) + sectionCount - 1) / sectionCount
	var sections []any
	for start := 0; start < len(sorted); start += per {
		end := start + per
		if end > len(sorted) {
			end = len(sorted)
		}
		chunk := sorted[start:end]
		total := 0.0
		for _, q := range chunk {
			total += itemDifficulty(q)
		}
		sections = append(sections, map[string]any{
			"name":      sectionName(total / float64(len(chunk))),
			"questions": chunk,
		})
	}
	content["sections"] = sections

	if subtype != nil && subtype.ID == "practice-problems" {
		content["warm_up"] = relabelQuestions(sorted[:minInt(2, len(sorted))], "Rozcvička")
		bonusStart := len(sorted) - minInt(2, len(sorted))
		content["bonus"] = relabelQuestions(sorted[bonusStart:], "Bonusová úloha")
	}
	return content
}

// relabelQuestions copies questions with a new label prefix so the
// warm-up and bonus sets read as their own sections.
func relabelQuestions(questions []any, label string) []any {
	out := make([]any, 0, len(questions))
	for i, q := range questions {
		m, ok := q.(map[string]any)
		if !ok {
			out = append(out, q)
			continue
		}
		copied, _ := deepCopy(m).(map[string]any)
		copied["label"] = fmt.Sprintf("%s %d", label, i+1)
		out = append(out, copied)
	}
	return out
}

// organizeLessonPlan guarantees an opening activity, writes transition
// text between activities and appends differentiation guidance.
func organizeLessonPlan(content Content, _ *material.Subtype) Content {
	activities := getSlice(content, "activities")
	first := ""
	if len(activities) > 0 {
		if m, ok := activities[0].(map[string]any); ok {
			first = strings.ToLower(getString(m, "name") + " " + getString(m, "title"))
		}
	}
	if !strings.Contains(first, "úvod") {
		intro := map[string]any{
			"name":        "Úvod do hodiny",
			"description": "Krátké seznámení s cílem hodiny a aktivace předchozích znalostí.",
			"duration":    "5 min",
		}
		activities = append([]any{intro}, activities...)
	}

	var transitions []any
	for i := 0; i < len(activities)-1; i++ {
		transitions = append(transitions, map[string]any{
			"after": i,
			"text":  fmt.Sprintf("Shrň s žáky výsledek aktivity %d a uveď, co bude následovat.", i+1),
		})
	}

	content["activities"] = activities
	content["transitions"] = transitions
	content["differentiation"] = differentiationOptions(material.TypeLessonPlan)
	return content
}

// organizeQuiz groups questions by type, sorts each group easiest
// first and attaches a scoring guide.
func organizeQuiz(content Content, _ *material.Subtype) Content {
	questions := getSlice(content, "questions")
	if len(questions) == 0 {
		return content
	}

	var typeOrder []string
	grouped := make(map[string][]any)
	for _, q := range questions {
		qType := "ostatní"
		if m, ok := q.(map[string]any); ok {
			if t := getString(m, "type"); t != "" {
				qType = t
			}
		}
		if _, seen := grouped[qType]; !seen {
			typeOrder = append(typeOrder, qType)
		}
		grouped[qType] = append(grouped[qType], q)
	}

	var regrouped []any
	for _, qType := range typeOrder {
		regrouped = append(regrouped, sortByDifficulty(grouped[qType])...)
	}
	content["questions"] = regrouped

	total := len(questions)
	pass := (total*60 + 99) / 100
	excellent := (total*90 + 99) / 100
	content["scoring_guide"] = map[string]any{
		"total_questions": total,
		"pass_threshold":  fmt.Sprintf("%d z %d správně (60 %%)", pass, total),
		"excellent":       fmt.Sprintf("%d z %d správně (90 %%)", excellent, total),
	}
	return content
}

// organizeProject imposes a three-phase timeline and enriches the
// rubric with level descriptors.
func organizeProject(content Content, _ *material.Subtype) Content {
	content["phases"] = []any{
		map[string]any{
			"name":        "Příprava a plánování",
			"description": "Rozdělení rolí, výběr tématu, shromáždění podkladů.",
			"share":       "25 %",
		},
		map[string]any{
			"name":        "Realizace",
			"description": "Samostatná práce na výstupu projektu s průběžnými konzultacemi.",
			"share":       "50 %",
		},
		map[string]any{
			"name":        "Prezentace a reflexe",
			"description": "Představení výsledků třídě a společné zhodnocení práce.",
			"share":       "25 %",
		},
	}
	content["rubric_levels"] = []any{
		"výborně: výstup je úplný, přesný a srozumitelně prezentovaný",
		"dobře: výstup je úplný s drobnými nepřesnostmi",
		"dostatečně: výstup je neúplný nebo obsahuje věcné chyby",
	}
	return content
}

// organizePresentation numbers slides, estimates timing from bullet
// counts and generates speaker notes with visual suggestions.
func organizePresentation(content Content, _ *material.Subtype) Content {
	slides := getSlice(content, "slides")
	totalMinutes := 0
	for i, s := range slides {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		m["number"] = i + 1
		bullets := len(getSlice(m, "bullet_points"))
		if bullets == 0 {
			bullets = len(getSlice(m, "bullets"))
		}
		minutes := maxInt(1, bullets/2)
		m["time_estimate"] = fmt.Sprintf("%d min", minutes)
		totalMinutes += minutes
		if getString(m, "speaker_notes") == "" {
			m["speaker_notes"] = "Shrň vlastními slovy hlavní myšlenku snímku a polož třídě kontrolní otázku."
		}
		if getString(m, "visual_suggestion") == "" {
			m["visual_suggestion"] = "Doplň snímek obrázkem, schématem nebo grafem k tématu."
		}
	}
	if len(slides) > 0 {
		content["estimated_duration"] = fmt.Sprintf("%d min", totalMinutes)
	}
	return content
}

var activitySafetyNotes = []struct {
	stems []string
	note  string
}{
	{[]string{"nůžky", "stříh", "řez"}, "Dohlédni na bezpečnou práci s nůžkami a ostrými nástroji."},
	{[]string{"chemik", "pokus", "experiment"}, "Prováděj pokusy jen s ochrannými pomůckami a pod dohledem učitele."},
}

// organizeActivity splits instructions into preparation, execution and
// conclusion thirds, adds keyword-triggered safety notes and a fixed
// assessment-criteria list.
func organizeActivity(content Content, _ *material.Subtype) Content {
	instructions := getSlice(content, "instructions")
	if n := len(instructions); n > 0 {
		third := (n + 2) / 3
		content["preparation"] = instructions[:minInt(third, n)]
		content["execution"] = instructions[minInt(third, n):minInt(2*third, n)]
		content["conclusion"] = instructions[minInt(2*third, n):]
	}

	lower := strings.ToLower(flattenText(content))
	var safety []any
	for _, rule := range activitySafetyNotes {
		for _, stem := range rule.stems {
			if strings.Contains(lower, stem) {
				safety = append(safety, rule.note)
				break
			}
		}
	}
	if len(safety) > 0 {
		content["safety_notes"] = safety
	}

	content["assessment_criteria"] = []any{
		"zapojení všech žáků do aktivity",
		"dodržení zadaného postupu",
		"kvalita výsledného výstupu",
		"spolupráce ve skupině",
	}
	return content
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
