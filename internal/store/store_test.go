package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-model", Purpose: "assignment-analysis", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "mock", Model: "mock-model", Purpose: "content-generation", InputTokens: 400, OutputTokens: 900, Success: true},
		{Provider: "mock", Model: "mock-model", Purpose: "content-generation", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Sequence >= got[i].Sequence {
			t.Errorf("sequence not increasing at %d: %d >= %d", i, got[i-1].Sequence, got[i].Sequence)
		}
	}
	if got[0].Purpose != "assignment-analysis" {
		t.Errorf("first event purpose %q, want assignment-analysis", got[0].Purpose)
	}
}

func TestLLMEventGetBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "assignment-analysis", Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(all) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(all))
	}

	event, err := repo.GetLLMEvent(ctx, all[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if event == nil || event.Purpose != "assignment-analysis" {
		t.Errorf("got %+v, want the appended event", event)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for a missing sequence")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "model-a", Purpose: "assignment-analysis", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "model-a", Purpose: "content-generation", InputTokens: 30, OutputTokens: 40, Success: true},
		{Provider: "mock", Model: "model-b", Purpose: "content-generation", InputTokens: 5, Success: false},
	}
	for _, e := range data {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	gen := byPurpose["content-generation"]
	if gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("content-generation usage %+v, want 2 requests with 1 failure", gen)
	}
	if gen.InputTokens != 35 {
		t.Errorf("content-generation input tokens %d, want 35", gen.InputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if byModel["model-a"].Requests != 2 || byModel["model-b"].Requests != 1 {
		t.Errorf("model usage %+v", byModel)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()

	data := DocumentEventData{
		DocumentID:   "7c9f8a4e-0000-4000-8000-000000000001",
		MaterialType: "worksheet",
		Subtype:      "practice-problems",
		Title:        "Sčítání do deseti",
		Subject:      "matematika",
		GradeLevel:   "2. třída",
		QualityScore: 0.85,
		IsValid:      true,
		Attempts:     1,
		Content:      `{"title":"Sčítání do deseti"}`,
	}
	if err := repo.AppendDocument(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	doc, err := repo.GetDocument(ctx, data.DocumentID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc == nil {
		t.Fatal("document not found after append")
	}
	if doc.Title != data.Title || doc.QualityScore != data.QualityScore || !doc.IsValid {
		t.Errorf("got %+v, want the appended document", doc.DocumentEventData)
	}

	docs, err := repo.QueryDocuments(ctx, QueryOpts{})
	if err != nil || len(docs) != 1 {
		t.Fatalf("query: %v (%d documents)", err, len(docs))
	}

	missing, err := repo.GetDocument(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown document ID")
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "content-generation", Success: true,
	}); err != nil {
		t.Fatalf("append event: %v", err)
	}
	if err := s.DocumentRepo().AppendDocument(ctx, DocumentEventData{
		DocumentID:   "7c9f8a4e-0000-4000-8000-000000000002",
		MaterialType: "quiz",
		IsValid:      true,
		Content:      "{}",
	}); err != nil {
		t.Fatalf("append document: %v", err)
	}

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query events: %v", err)
	}
	docs, err := s.DocumentRepo().QueryDocuments(ctx, QueryOpts{})
	if err != nil || len(docs) != 1 {
		t.Fatalf("query documents: %v", err)
	}
	if docs[0].Sequence <= events[0].Sequence {
		t.Errorf("document sequence %d, want greater than event sequence %d",
			docs[0].Sequence, events[0].Sequence)
	}
}
