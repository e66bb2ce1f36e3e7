package promptgen

import (
	"fmt"
	"strings"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/material"
)

// Params carries everything Build needs. MaterialType is the only
// required field; everything else degrades to a smaller prompt.
type Params struct {
	MaterialType       material.Type
	Subtype            *material.Subtype
	Assignment         *analysis.Assignment
	UserInputs         map[string]string
	QualityLevel       material.QualityLevel
	CustomInstructions string
}

// Builder assembles generation prompts. It is stateless; a single
// Builder is safe for concurrent use.
type Builder struct{}

// NewBuilder creates a prompt Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assembles the final generation prompt as a strict, ordered
// pipeline of text transformations. The stage order is part of the
// contract:
//
//  1. base template by material type
//  2. context block from the assignment analysis (prepended)
//  3. subtype prompt modifications, in list order
//  4. quality-constraints block
//  5. user-specification block
//  6. custom-instructions block
//  7. finalization block
//
// Build is pure and synchronous; missing or unknown inputs produce a
// smaller but always well-formed prompt, never an error.
func (b *Builder) Build(p Params) string {
	prompt := baseTemplate(p.MaterialType)

	if p.Assignment != nil {
		prompt = contextBlock(p.Assignment) + "\n\n" + prompt
	}

	if p.Subtype != nil {
		prompt = ApplyModifications(prompt, p.Subtype.PromptModifications)
	}

	prompt += "\n\n" + qualityBlock(p.QualityLevel)

	if spec := userSpecBlock(p.MaterialType, p.UserInputs); spec != "" {
		prompt += "\n\n" + spec
	}

	if strings.TrimSpace(p.CustomInstructions) != "" {
		prompt += "\n\nDalší pokyny od učitele:\n" + p.CustomInstructions
	}

	prompt += "\n\n" + finalizationBlock(p.Assignment)

	return prompt
}

// contextBlock summarizes the assignment analysis for the model.
func contextBlock(a *analysis.Assignment) string {
	var b strings.Builder

	b.WriteString("Kontext zadání:\n")
	fmt.Fprintf(&b, "- Předmět: %s\n", a.Subject)
	fmt.Fprintf(&b, "- Ročník: %s\n", a.GradeLevel)
	fmt.Fprintf(&b, "- Obtížnost: %s\n", a.Difficulty)
	fmt.Fprintf(&b, "- Časová dotace: %s\n", a.EstimatedDuration)
	if len(a.KeyTopics) > 0 {
		fmt.Fprintf(&b, "- Klíčová témata: %s\n", strings.Join(a.KeyTopics, ", "))
	}
	if len(a.LearningObjectives) > 0 {
		b.WriteString("- Výukové cíle:\n")
		for _, o := range a.LearningObjectives {
			fmt.Fprintf(&b, "  • %s\n", o)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// finalizationBlock closes every prompt with the language reminders and
// the JSON-only output instruction.
func finalizationBlock(a *analysis.Assignment) string {
	var b strings.Builder

	b.WriteString("Závěrečné pokyny:\n")
	b.WriteString("- Piš spisovnou češtinou, oslovuj žáky přirozeně.\n")
	if a != nil && a.GradeLevel != "" {
		fmt.Fprintf(&b, "- Pamatuj, že materiál je pro: %s.\n", a.GradeLevel)
	}
	b.WriteString("- Odpověz výhradně jedním platným JSON objektem, bez jakéhokoli textu před ním či za ním.\n")
	b.WriteString("\nZačni generovat:")

	return b.String()
}
