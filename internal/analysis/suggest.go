package analysis

import (
	"strings"

	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

// typeKeywordGroup pairs a material type with the topic keyword stems
// that suggest it.
type typeKeywordGroup struct {
	Type     material.Type
	Keywords []string
}

// typeKeywordGroups are checked in order against the joined key topics.
var typeKeywordGroups = []typeKeywordGroup{
	{material.TypeWorksheet, []string{"procvič", "cvičení", "úloh", "trénink", "opakování", "dril"}},
	{material.TypeLessonPlan, []string{"výklad", "vysvětl", "výuka", "nová látka", "hodina", "učivo"}},
	{material.TypeQuiz, []string{"test", "kvíz", "zkouš", "prověr", "hodnocení", "známk"}},
	{material.TypeProject, []string{"projekt", "výzkum", "badatel", "vyhled", "zpracov"}},
	{material.TypePresentation, []string{"prezentac", "přednes", "referát", "vystoupení"}},
	{material.TypeActivity, []string{"hra", "skupin", "interaktiv", "společně", "aktivit", "diskuz"}},
}

// difficultyDefaults supplies suggested types when no keyword group
// matches the topics.
var difficultyDefaults = map[heuristics.Difficulty][]material.Type{
	heuristics.DifficultyBasic:        {material.TypeWorksheet, material.TypeActivity},
	heuristics.DifficultyIntermediate: {material.TypeLessonPlan, material.TypeWorksheet, material.TypeQuiz},
	heuristics.DifficultyAdvanced:     {material.TypeProject, material.TypePresentation, material.TypeQuiz},
	heuristics.DifficultyExpert:       {material.TypeProject, material.TypePresentation},
}

// SuggestMaterialTypes recommends material types for an assignment by
// keyword-matching its key topics. When no group matches, a
// difficulty-indexed default table applies. The result preserves
// first-seen order and contains no duplicates.
func SuggestMaterialTypes(a *Assignment) []material.Type {
	topics := strings.ToLower(strings.Join(a.KeyTopics, " "))

	var suggested []material.Type
	for _, group := range typeKeywordGroups {
		for _, kw := range group.Keywords {
			if strings.Contains(topics, kw) {
				suggested = append(suggested, group.Type)
				break
			}
		}
	}

	if len(suggested) == 0 {
		suggested = difficultyDefaults[a.Difficulty]
		if suggested == nil {
			suggested = difficultyDefaults[heuristics.DifficultyIntermediate]
		}
	}

	return dedupeTypes(suggested)
}

// dedupeTypes removes duplicates while preserving first-seen order.
func dedupeTypes(types []material.Type) []material.Type {
	seen := map[material.Type]struct{}{}
	out := make([]material.Type, 0, len(types))
	for _, t := range types {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
