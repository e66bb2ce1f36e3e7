// Code generated by ent, DO NOT EDIT.

package documentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mhruby/kantor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldDocumentID, v))
}

// MaterialType applies equality check predicate on the "material_type" field. It's identical to MaterialTypeEQ.
func MaterialType(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldMaterialType, v))
}

// Subtype applies equality check predicate on the "subtype" field. It's identical to SubtypeEQ.
func Subtype(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSubtype, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTitle, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSubject, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldGradeLevel, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldQualityScore, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldIsValid, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldAttempts, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldContent, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldDocumentID, v))
}

// MaterialTypeEQ applies the EQ predicate on the "material_type" field.
func MaterialTypeEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldMaterialType, v))
}

// MaterialTypeNEQ applies the NEQ predicate on the "material_type" field.
func MaterialTypeNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldMaterialType, v))
}

// MaterialTypeIn applies the In predicate on the "material_type" field.
func MaterialTypeIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldMaterialType, vs...))
}

// MaterialTypeNotIn applies the NotIn predicate on the "material_type" field.
func MaterialTypeNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldMaterialType, vs...))
}

// MaterialTypeGT applies the GT predicate on the "material_type" field.
func MaterialTypeGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldMaterialType, v))
}

// MaterialTypeGTE applies the GTE predicate on the "material_type" field.
func MaterialTypeGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldMaterialType, v))
}

// MaterialTypeLT applies the LT predicate on the "material_type" field.
func MaterialTypeLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldMaterialType, v))
}

// MaterialTypeLTE applies the LTE predicate on the "material_type" field.
func MaterialTypeLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldMaterialType, v))
}

// MaterialTypeContains applies the Contains predicate on the "material_type" field.
func MaterialTypeContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldMaterialType, v))
}

// MaterialTypeHasPrefix applies the HasPrefix predicate on the "material_type" field.
func MaterialTypeHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldMaterialType, v))
}

// MaterialTypeHasSuffix applies the HasSuffix predicate on the "material_type" field.
func MaterialTypeHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldMaterialType, v))
}

// MaterialTypeEqualFold applies the EqualFold predicate on the "material_type" field.
func MaterialTypeEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldMaterialType, v))
}

// MaterialTypeContainsFold applies the ContainsFold predicate on the "material_type" field.
func MaterialTypeContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldMaterialType, v))
}

// SubtypeEQ applies the EQ predicate on the "subtype" field.
func SubtypeEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSubtype, v))
}

// SubtypeNEQ applies the NEQ predicate on the "subtype" field.
func SubtypeNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSubtype, v))
}

// SubtypeIn applies the In predicate on the "subtype" field.
func SubtypeIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSubtype, vs...))
}

// SubtypeNotIn applies the NotIn predicate on the "subtype" field.
func SubtypeNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSubtype, vs...))
}

// SubtypeGT applies the GT predicate on the "subtype" field.
func SubtypeGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSubtype, v))
}

// SubtypeGTE applies the GTE predicate on the "subtype" field.
func SubtypeGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSubtype, v))
}

// SubtypeLT applies the LT predicate on the "subtype" field.
func SubtypeLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSubtype, v))
}

// SubtypeLTE applies the LTE predicate on the "subtype" field.
func SubtypeLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSubtype, v))
}

// SubtypeContains applies the Contains predicate on the "subtype" field.
func SubtypeContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldSubtype, v))
}

// SubtypeHasPrefix applies the HasPrefix predicate on the "subtype" field.
func SubtypeHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldSubtype, v))
}

// SubtypeHasSuffix applies the HasSuffix predicate on the "subtype" field.
func SubtypeHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldSubtype, v))
}

// SubtypeEqualFold applies the EqualFold predicate on the "subtype" field.
func SubtypeEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldSubtype, v))
}

// SubtypeContainsFold applies the ContainsFold predicate on the "subtype" field.
func SubtypeContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldSubtype, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldTitle, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldSubject, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldGradeLevel, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldQualityScore, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldIsValid, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldAttempts, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldContent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.NotPredicates(p))
}
