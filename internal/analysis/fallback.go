package analysis

import (
	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

// FallbackAnalysis derives every Assignment field from the text
// heuristics alone. It is pure and deterministic: the same description
// always yields the same Assignment. Suggested types are fixed to the
// two safest defaults and confidence to 0.5 so callers can tell (by
// value, not by shape) that the model was not consulted.
func FallbackAnalysis(description string) *Assignment {
	return &Assignment{
		LearningObjectives: heuristics.ExtractLearningObjectives(description),
		Difficulty:         heuristics.DetectDifficulty(description),
		Subject:            heuristics.DetectSubject(description),
		GradeLevel:         heuristics.DetectGradeLevel(description),
		EstimatedDuration:  heuristics.EstimateDuration(description),
		KeyTopics:          heuristics.ExtractKeyConcepts(description),
		SuggestedMaterialTypes: []material.Type{
			material.TypeWorksheet,
			material.TypeLessonPlan,
		},
		Confidence: fallbackConfidence,
	}
}
