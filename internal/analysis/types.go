package analysis

import (
	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

// Assignment is the structured summary derived from a free-text
// assignment description. It is immutable after construction and owned
// by the caller of Analyze.
type Assignment struct {
	// LearningObjectives holds at most 5 objectives in priority order.
	LearningObjectives []string

	// Difficulty is the detected cognitive demand.
	Difficulty heuristics.Difficulty

	// Subject is the detected school subject, "obecný" when unknown.
	Subject string

	// GradeLevel is a Czech grade label, "neurčeno" when unknown.
	GradeLevel string

	// EstimatedDuration is a human-readable time estimate, e.g. "45 min".
	EstimatedDuration string

	// KeyTopics are the dominant concepts of the description.
	KeyTopics []string

	// SuggestedMaterialTypes is an ordered, duplicate-free set of
	// material types that fit the assignment. Always computed locally,
	// never taken from model output.
	SuggestedMaterialTypes []material.Type

	// Confidence reflects how trustworthy the analysis is: the
	// model-reported value on the LLM path, a fixed 0.5 on the
	// heuristic fallback path.
	Confidence float64
}

// Defaults used when a field is missing or has the wrong type in model
// output. The fallback path uses the same sentinels so both paths are
// indistinguishable in shape.
const (
	defaultSubject     = heuristics.SubjectGeneral
	defaultGrade       = heuristics.GradeUndetermined
	defaultDuration    = "45 min"
	defaultConfidence  = 0.7
	fallbackConfidence = 0.5
)
