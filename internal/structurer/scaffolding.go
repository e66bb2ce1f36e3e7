package structurer

import (
	"fmt"
	"sort"

	"github.com/mhruby/kantor/internal/material"
)

// scaffoldingStrategy inspects content and emits zero or more elements.
type scaffoldingStrategy func(content Content) []ScaffoldingElement

// scaffoldingStrategies maps each material type to its ordered strategy
// list. Types without an entry fall back to defaultStrategies.
var scaffoldingStrategies = map[material.Type][]scaffoldingStrategy{
	material.TypeWorksheet:  {stepByStepScaffolding, workedExampleScaffolding, hintScaffolding},
	material.TypeLessonPlan: {activationScaffolding, connectionScaffolding},
	material.TypeQuiz:       {midpointReminderScaffolding},
}

var defaultStrategies = []scaffoldingStrategy{genericReminderScaffolding}

// addScaffolding runs every strategy registered for the material type
// and merges the results into one list sorted by position ascending.
// The sort is stable so elements sharing a position keep the order in
// which their strategies emitted them.
func addScaffolding(content Content, materialType material.Type) []ScaffoldingElement {
	strategies, ok := scaffoldingStrategies[materialType]
	if !ok {
		strategies = defaultStrategies
	}
	var elements []ScaffoldingElement
	for _, strategy := range strategies {
		elements = append(elements, strategy(content)...)
	}
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Position < elements[j].Position
	})
	return elements
}

// stepByStepScaffolding attaches decomposition guidance to every
// question hard enough to benefit from it.
func stepByStepScaffolding(content Content) []ScaffoldingElement {
	var out []ScaffoldingElement
	for i, q := range getSlice(content, "questions") {
		if itemDifficulty(q) <= 3.0 {
			continue
		}
		out = append(out, ScaffoldingElement{
			Type:        ElementStep,
			Content:     "Rozlož úlohu na menší kroky a řeš je postupně.",
			Position:    i,
			TargetField: fmt.Sprintf("questions[%d]", i),
		})
	}
	return out
}

// workedExampleScaffolding points the first moderately hard question at
// a worked example. One example per worksheet is enough.
func workedExampleScaffolding(content Content) []ScaffoldingElement {
	for i, q := range getSlice(content, "questions") {
		if itemDifficulty(q) > 2.5 {
			return []ScaffoldingElement{{
				Type:        ElementExample,
				Content:     "Projdi si nejprve vzorové řešení podobné úlohy.",
				Position:    i,
				TargetField: fmt.Sprintf("questions[%d]", i),
			}}
		}
	}
	return nil
}

func hintScaffolding(content Content) []ScaffoldingElement {
	var out []ScaffoldingElement
	for i, q := range getSlice(content, "questions") {
		if itemDifficulty(q) <= 4.0 {
			continue
		}
		out = append(out, ScaffoldingElement{
			Type:        ElementHint,
			Content:     "Nápověda: zkontroluj, které údaje ze zadání jsi už použil.",
			Position:    i,
			TargetField: fmt.Sprintf("questions[%d]", i),
		})
	}
	return out
}

// activationScaffolding opens a lesson plan with prior-knowledge
// activation before the first activity.
func activationScaffolding(content Content) []ScaffoldingElement {
	if len(getSlice(content, "activities")) == 0 {
		return nil
	}
	return []ScaffoldingElement{{
		Type:        ElementReminder,
		Content:     "Na začátku hodiny aktivuj předchozí znalosti žáků krátkou otázkou.",
		Position:    0,
		TargetField: "activities[0]",
	}}
}

func connectionScaffolding(content Content) []ScaffoldingElement {
	var out []ScaffoldingElement
	for i := range getSlice(content, "activities") {
		if i == 0 {
			continue
		}
		out = append(out, ScaffoldingElement{
			Type:        ElementConnection,
			Content:     "Propoj aktivitu s tím, co žáci dělali v předchozí části hodiny.",
			Position:    i,
			TargetField: fmt.Sprintf("activities[%d]", i),
		})
	}
	return out
}

// midpointReminderScaffolding marks where quiz difficulty tends to
// pick up. Short quizzes get no reminder.
func midpointReminderScaffolding(content Content) []ScaffoldingElement {
	questions := getSlice(content, "questions")
	if len(questions) < 4 {
		return nil
	}
	mid := len(questions) / 2
	return []ScaffoldingElement{{
		Type:        ElementReminder,
		Content:     "Od této otázky obtížnost postupně stoupá, pracuj pečlivě.",
		Position:    mid,
		TargetField: fmt.Sprintf("questions[%d]", mid),
	}}
}

func genericReminderScaffolding(content Content) []ScaffoldingElement {
	return []ScaffoldingElement{{
		Type:        ElementReminder,
		Content:     "Průběžně ověřuj, že žáci rozumí zadání, než postoupí dál.",
		Position:    0,
		TargetField: "",
	}}
}
