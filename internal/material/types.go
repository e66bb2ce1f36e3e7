package material

// Type identifies the kind of educational document being generated.
// The string values are stable, language-agnostic keys; human-facing
// labels are Czech and live in the prompt templates.
type Type string

const (
	TypeWorksheet    Type = "worksheet"
	TypeLessonPlan   Type = "lesson-plan"
	TypeQuiz         Type = "quiz"
	TypeProject      Type = "project"
	TypePresentation Type = "presentation"
	TypeActivity     Type = "activity"
)

// AllTypes is the closed set of material types. It is the single source
// of truth for validation and schema enums.
var AllTypes = []Type{
	TypeWorksheet,
	TypeLessonPlan,
	TypeQuiz,
	TypeProject,
	TypePresentation,
	TypeActivity,
}

// IsValid reports whether t is one of the known material types.
func (t Type) IsValid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// QualityLevel selects one of four fixed stylistic/rigor presets that
// adjust the language register and depth demanded of generated content.
type QualityLevel string

const (
	QualityBasic    QualityLevel = "basic"
	QualityStandard QualityLevel = "standard"
	QualityHigh     QualityLevel = "high"
	QualityExpert   QualityLevel = "expert"
)

// ModificationType is the kind of edit a PromptModification performs.
type ModificationType string

const (
	ModPrepend ModificationType = "prepend"
	ModAppend  ModificationType = "append"
	ModReplace ModificationType = "replace"
	ModInject  ModificationType = "inject"
)

// PromptModification is a single ordered edit applied to the assembled
// prompt. Target is required for replace and inject; a replace or
// inject whose target does not occur in the prompt silently no-ops.
type PromptModification struct {
	Type    ModificationType `yaml:"type"`
	Target  string           `yaml:"target,omitempty"`
	Content string           `yaml:"content"`
}

// FieldDescriptor describes an extra user-facing input a subtype adds
// on top of its parent type's fields.
type FieldDescriptor struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
}

// Subtype is a named specialization of a material type. Subtypes are
// supplied by configuration and are read-only to the pipeline.
type Subtype struct {
	ID                  string               `yaml:"id"`
	Name                string               `yaml:"name"`
	Description         string               `yaml:"description,omitempty"`
	ParentType          Type                 `yaml:"parent_type"`
	SpecialFields       []FieldDescriptor    `yaml:"special_fields,omitempty"`
	PromptModifications []PromptModification `yaml:"prompt_modifications,omitempty"`
}
