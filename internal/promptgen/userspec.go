package promptgen

import (
	"strings"

	"github.com/mhruby/kantor/internal/material"
)

// userField maps a userInputs key to its Czech label.
type userField struct {
	Key   string
	Label string
}

// commonFields are considered for every material type.
var commonFields = []userField{
	{"title", "Název"},
	{"subject", "Předmět"},
	{"grade_level", "Ročník"},
	{"duration", "Časová dotace"},
}

// typeFields are the extra fields recognized per material type.
var typeFields = map[material.Type][]userField{
	material.TypeWorksheet: {
		{"question_count", "Počet úloh"},
		{"difficulty_progression", "Gradace obtížnosti"},
		{"include_answer_key", "Přiložit klíč s řešením"},
	},
	material.TypeQuiz: {
		{"question_count", "Počet otázek"},
		{"time_limit", "Časový limit"},
		{"question_types", "Typy otázek"},
	},
	material.TypeLessonPlan: {
		{"class_size", "Počet žáků"},
		{"teaching_methods", "Výukové metody"},
		{"available_resources", "Dostupné pomůcky"},
	},
	material.TypeProject: {
		{"project_type", "Typ projektu"},
		{"group_size", "Velikost skupin"},
		{"assessment_criteria", "Kritéria hodnocení"},
	},
	material.TypePresentation: {
		{"slide_count", "Počet slidů"},
		{"presentation_style", "Styl prezentace"},
		{"target_audience", "Cílové publikum"},
	},
	material.TypeActivity: {
		{"activity_type", "Typ aktivity"},
		{"group_size", "Velikost skupin"},
		{"required_materials", "Potřebné pomůcky"},
	},
}

// userSpecBlock renders the user-specification block. Only fields
// actually present in inputs are rendered, each as one labeled line.
// Returns "" when nothing is set.
func userSpecBlock(t material.Type, inputs map[string]string) string {
	if len(inputs) == 0 {
		return ""
	}

	var lines []string
	appendField := func(f userField) {
		if v, ok := inputs[f.Key]; ok && strings.TrimSpace(v) != "" {
			lines = append(lines, "- "+f.Label+": "+v)
		}
	}

	for _, f := range commonFields {
		appendField(f)
	}
	for _, f := range typeFields[t] {
		appendField(f)
	}

	if len(lines) == 0 {
		return ""
	}
	return "Upřesnění od učitele:\n" + strings.Join(lines, "\n")
}
