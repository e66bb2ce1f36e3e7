package structurer

import "github.com/mhruby/kantor/internal/heuristics"

// Content is the raw generated document as decoded JSON. Its shape
// depends on the material type and is never trusted: every analysis in
// this package treats missing or malformed fields as absent.
type Content = map[string]any

// StructuredContent is the enriched form of a generated document.
// Built fresh per call; no state is shared across calls.
type StructuredContent struct {
	// Original is the untouched input content.
	Original Content

	// Structured is a reorganized deep copy of the input.
	Structured Content

	// Scaffolding is sorted by Position ascending; equal positions
	// preserve generation order.
	Scaffolding []ScaffoldingElement

	// DifficultyProgression describes how difficulty develops through
	// the material, from level 1 upward.
	DifficultyProgression []DifficultyLevel

	// Metadata carries the pedagogical annotations.
	Metadata Metadata
}

// ElementType is the kind of instructional aid a scaffolding element
// provides.
type ElementType string

const (
	ElementHint       ElementType = "hint"
	ElementExample    ElementType = "example"
	ElementStep       ElementType = "step"
	ElementReminder   ElementType = "reminder"
	ElementConnection ElementType = "connection"
)

// ScaffoldingElement is one instructional aid anchored at a position
// within the content. TargetField is a path-like reference and is
// advisory only; no integrity is guaranteed.
type ScaffoldingElement struct {
	Type        ElementType
	Content     string
	Position    int
	TargetField string
}

// DifficultyLevel is one entry of a difficulty progression.
type DifficultyLevel struct {
	Level       int // starts at 1
	Description string
	Indicators  []string
}

// BloomLevel reports the observed share of one Bloom's-taxonomy level.
// Only levels with at least one verb match are reported; percentages
// sum to 1 across the reported levels.
type BloomLevel struct {
	Level      heuristics.BloomLevelName
	Percentage float64
}

// LearningStyle reports one matched learning style with the indicator
// words found as evidence.
type LearningStyle struct {
	Style      heuristics.LearningStyleName
	Indicators []string
}

// CognitiveLoad estimates how mentally demanding the content is.
// Each component is in [0,1]; Overall is the clamped mean.
type CognitiveLoad struct {
	Intrinsic  float64
	Extraneous float64
	Germane    float64
	Overall    float64
}

// Metadata carries the pedagogical annotations of a document.
type Metadata struct {
	BloomLevels            []BloomLevel
	LearningStyles         []LearningStyle
	AssessmentType         string
	DifferentiationOptions []string
	PrerequisiteKnowledge  []string // at most 5, deduplicated
	CognitiveLoad          CognitiveLoad
}
