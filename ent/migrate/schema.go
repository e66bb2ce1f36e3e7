// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentEventsColumns holds the columns for the "document_events" table.
	DocumentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "material_type", Type: field.TypeString},
		{Name: "subtype", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "grade_level", Type: field.TypeString, Default: ""},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "is_valid", Type: field.TypeBool},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// DocumentEventsTable holds the schema information for the "document_events" table.
	DocumentEventsTable = &schema.Table{
		Name:       "document_events",
		Columns:    DocumentEventsColumns,
		PrimaryKey: []*schema.Column{DocumentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[1]},
			},
			{
				Name:    "documentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[2]},
			},
			{
				Name:    "documentevent_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[3]},
			},
			{
				Name:    "documentevent_material_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[4]},
			},
			{
				Name:    "documentevent_is_valid",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
