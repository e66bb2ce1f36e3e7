package generator

import (
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
)

// outputSchemas declares the JSON shape each material type must come
// back in. The schemas stay permissive on purpose: they pin down the
// required top-level fields and the question shape, and leave the rest
// to the validator's softer scoring.
var outputSchemas = map[material.Type]*llm.Schema{
	material.TypeWorksheet: {
		Name:        "worksheet-content",
		Description: "Pracovní list s úlohami pro žáky.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "instructions", "questions"},
			"properties": map[string]any{
				"title":        map[string]any{"type": "string"},
				"instructions": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema,
				},
			},
		},
	},
	material.TypeLessonPlan: {
		Name:        "lesson-plan-content",
		Description: "Plán vyučovací hodiny s aktivitami.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "objectives", "activities"},
			"properties": map[string]any{
				"title":      map[string]any{"type": "string"},
				"duration":   map[string]any{"type": "string"},
				"objectives": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"activities": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"name"},
						"properties": map[string]any{
							"name":        map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"duration":    map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
	material.TypeQuiz: {
		Name:        "quiz-content",
		Description: "Kvíz s otázkami a časovým limitem.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "questions", "time_limit"},
			"properties": map[string]any{
				"title":      map[string]any{"type": "string"},
				"time_limit": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema,
				},
			},
		},
	},
	material.TypeProject: {
		Name:        "project-content",
		Description: "Zadání žákovského projektu s hodnoticími kritérii.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "description", "assessment_criteria"},
			"properties": map[string]any{
				"title":               map[string]any{"type": "string"},
				"description":         map[string]any{"type": "string"},
				"assessment_criteria": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	},
	material.TypePresentation: {
		Name:        "presentation-content",
		Description: "Podklad pro prezentaci po jednotlivých snímcích.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "slides"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"slides": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"title"},
						"properties": map[string]any{
							"title":         map[string]any{"type": "string"},
							"bullet_points": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
					},
				},
			},
		},
	},
	material.TypeActivity: {
		Name:        "activity-content",
		Description: "Popis třídní aktivity s postupem.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"title", "instructions"},
			"properties": map[string]any{
				"title":        map[string]any{"type": "string"},
				"instructions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"materials":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"problem", "answer"},
	"properties": map[string]any{
		"problem": map[string]any{"type": "string"},
		"answer":  map[string]any{"type": "string"},
		"type":    map[string]any{"type": "string"},
		"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// outputSchema returns the schema for a material type, or nil for an
// unknown type so generation degrades to free-form JSON.
func outputSchema(materialType material.Type) *llm.Schema {
	return outputSchemas[materialType]
}
