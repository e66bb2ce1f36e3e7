package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentEvent records every generated material document together
// with its validation outcome.
type DocumentEvent struct {
	ent.Schema
}

func (DocumentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DocumentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at generation time"),
		field.String("material_type").
			NotEmpty().
			Comment("worksheet, lesson-plan, quiz, project, presentation, activity"),
		field.String("subtype").
			Default("").
			Comment("Subtype ID when one was used"),
		field.String("title").
			Default("").
			Comment("Document title as generated"),
		field.String("subject").
			Default(""),
		field.String("grade_level").
			Default(""),
		field.Float("quality_score").
			Default(0).
			Comment("Overall quality score in [0,1]"),
		field.Bool("is_valid").
			Comment("Whether the validator accepted the document"),
		field.Int("attempts").
			Default(1).
			Comment("Generation attempts needed, including retries"),
		field.Text("content").
			Comment("Generated document as JSON"),
	}
}

func (DocumentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("material_type"),
		index.Fields("is_valid"),
	}
}
