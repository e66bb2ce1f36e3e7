package analysis

import (
	"context"
	"encoding/json"

	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/llm"
)

// Config controls the analyzer's LLM request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended analyzer defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Analyzer turns a free-text assignment description into a structured
// Assignment. The LLM path is preferred; any failure along it falls
// back to the pure heuristic path, which produces output of identical
// shape. Callers never need to special-case failure.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Analyzer. Provider may be nil, in which case every
// analysis takes the heuristic path.
func New(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// Analyze produces a best-effort Assignment for the description. It
// never returns an error: one LLM attempt, then the total heuristic
// fallback. Confidence reflects the source (model-reported on success,
// 0.5 on fallback).
func (a *Analyzer) Analyze(ctx context.Context, description string) *Assignment {
	if a.provider == nil {
		return FallbackAnalysis(description)
	}

	ctx = llm.WithPurpose(ctx, "assignment-analysis")

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisMessage(description)},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return FallbackAnalysis(description)
	}

	raw := ExtractJSONObject(string(resp.Content))
	if raw == "" {
		return FallbackAnalysis(description)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return FallbackAnalysis(description)
	}

	return normalizeAnalysis(fields)
}

// normalizeAnalysis coerces the untrusted model output into a complete
// Assignment. SuggestedMaterialTypes is always recomputed locally.
func normalizeAnalysis(fields map[string]any) *Assignment {
	objectives := stringSliceOr(fields["learning_objectives"])
	if len(objectives) > 5 {
		objectives = objectives[:5]
	}

	assignment := &Assignment{
		LearningObjectives: objectives,
		Difficulty:         normalizeDifficulty(stringOr(fields["difficulty"], "")),
		Subject:            stringOr(fields["subject"], defaultSubject),
		GradeLevel:         stringOr(fields["grade_level"], defaultGrade),
		EstimatedDuration:  stringOr(fields["estimated_duration"], defaultDuration),
		KeyTopics:          stringSliceOr(fields["key_topics"]),
		Confidence:         floatOr(fields["confidence"], defaultConfidence),
	}
	assignment.SuggestedMaterialTypes = SuggestMaterialTypes(assignment)
	return assignment
}

// normalizeDifficulty maps a model-reported difficulty onto the closed
// enum, defaulting to intermediate for anything unrecognized.
func normalizeDifficulty(s string) heuristics.Difficulty {
	for _, d := range heuristics.AllDifficulties {
		if s == string(d) {
			return d
		}
	}
	return heuristics.DifficultyIntermediate
}
