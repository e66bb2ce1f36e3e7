// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mhruby/kantor/ent/documentevent"
	"github.com/mhruby/kantor/ent/llmrequestevent"
	"github.com/mhruby/kantor/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documenteventMixin := schema.DocumentEvent{}.Mixin()
	documenteventMixinFields0 := documenteventMixin[0].Fields()
	_ = documenteventMixinFields0
	documenteventFields := schema.DocumentEvent{}.Fields()
	_ = documenteventFields
	// documenteventDescTimestamp is the schema descriptor for timestamp field.
	documenteventDescTimestamp := documenteventMixinFields0[1].Descriptor()
	// documentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	documentevent.DefaultTimestamp = documenteventDescTimestamp.Default.(func() time.Time)
	// documenteventDescDocumentID is the schema descriptor for document_id field.
	documenteventDescDocumentID := documenteventFields[0].Descriptor()
	// documentevent.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	documentevent.DocumentIDValidator = documenteventDescDocumentID.Validators[0].(func(string) error)
	// documenteventDescMaterialType is the schema descriptor for material_type field.
	documenteventDescMaterialType := documenteventFields[1].Descriptor()
	// documentevent.MaterialTypeValidator is a validator for the "material_type" field. It is called by the builders before save.
	documentevent.MaterialTypeValidator = documenteventDescMaterialType.Validators[0].(func(string) error)
	// documenteventDescSubtype is the schema descriptor for subtype field.
	documenteventDescSubtype := documenteventFields[2].Descriptor()
	// documentevent.DefaultSubtype holds the default value on creation for the subtype field.
	documentevent.DefaultSubtype = documenteventDescSubtype.Default.(string)
	// documenteventDescTitle is the schema descriptor for title field.
	documenteventDescTitle := documenteventFields[3].Descriptor()
	// documentevent.DefaultTitle holds the default value on creation for the title field.
	documentevent.DefaultTitle = documenteventDescTitle.Default.(string)
	// documenteventDescSubject is the schema descriptor for subject field.
	documenteventDescSubject := documenteventFields[4].Descriptor()
	// documentevent.DefaultSubject holds the default value on creation for the subject field.
	documentevent.DefaultSubject = documenteventDescSubject.Default.(string)
	// documenteventDescGradeLevel is the schema descriptor for grade_level field.
	documenteventDescGradeLevel := documenteventFields[5].Descriptor()
	// documentevent.DefaultGradeLevel holds the default value on creation for the grade_level field.
	documentevent.DefaultGradeLevel = documenteventDescGradeLevel.Default.(string)
	// documenteventDescQualityScore is the schema descriptor for quality_score field.
	documenteventDescQualityScore := documenteventFields[6].Descriptor()
	// documentevent.DefaultQualityScore holds the default value on creation for the quality_score field.
	documentevent.DefaultQualityScore = documenteventDescQualityScore.Default.(float64)
	// documenteventDescAttempts is the schema descriptor for attempts field.
	documenteventDescAttempts := documenteventFields[8].Descriptor()
	// documentevent.DefaultAttempts holds the default value on creation for the attempts field.
	documentevent.DefaultAttempts = documenteventDescAttempts.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
