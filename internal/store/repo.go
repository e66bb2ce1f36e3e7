package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM API call record.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption over a group of requests.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	TotalLatency time.Duration
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, oldest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given sequence number,
	// or nil when no such event exists.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) (map[string]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) (map[string]LLMUsage, error)
}

// DocumentEventData captures one generated material document.
type DocumentEventData struct {
	DocumentID   string // UUID assigned by the generator
	MaterialType string
	Subtype      string
	Title        string
	Subject      string
	GradeLevel   string
	QualityScore float64
	IsValid      bool
	Attempts     int
	Content      string // generated document as JSON
}

// DocumentEvent is a persisted generated document record.
type DocumentEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	DocumentEventData
}

// DocumentRepo provides append and query access to generated documents.
type DocumentRepo interface {
	// AppendDocument records a generated document.
	AppendDocument(ctx context.Context, data DocumentEventData) error

	// QueryDocuments returns documents matching opts, oldest first.
	QueryDocuments(ctx context.Context, opts QueryOpts) ([]DocumentEvent, error)

	// GetDocument returns the document with the given UUID, or nil
	// when no such document exists.
	GetDocument(ctx context.Context, documentID string) (*DocumentEvent, error)
}
