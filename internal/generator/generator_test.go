package generator

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
)

var validWorksheetJSON = json.RawMessage(`{
	"title": "Sčítání do deseti",
	"instructions": "Vyřeš všechny úlohy a zkontroluj si výsledky.",
	"questions": [
		{"problem": "Kolik je 2 + 3?", "answer": "2 + 3 = 5", "type": "short_answer"},
		{"problem": "Maminka koupila 4 jablka a 3 hrušky. Kolik kusů ovoce koupila?", "answer": "4 + 3 = 7", "type": "short_answer"}
	]
}`)

func TestGenerateValidFirstAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON})
	svc := New(mock, nil, DefaultConfig())

	doc, err := svc.Generate(context.Background(), Request{
		MaterialType: material.TypeWorksheet,
		QualityLevel: material.QualityStandard,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !doc.Validation.IsValid {
		t.Errorf("document rejected: %+v", doc.Validation.Issues)
	}
	if doc.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", doc.Attempts)
	}
	if doc.ID == "" {
		t.Error("missing document ID")
	}
	if doc.Structured == nil || len(doc.Structured.DifficultyProgression) == 0 {
		t.Error("missing structured enrichment")
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "worksheet-content" {
		t.Error("request missing the worksheet output schema")
	}
}

func TestGenerateRetriesOnInvalidContent(t *testing.T) {
	invalid := json.RawMessage(`{"title": "Bez otázek", "instructions": "Vyřeš úlohy.", "questions": []}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: invalid},
		llm.MockResponse{Content: validWorksheetJSON},
	)
	svc := New(mock, nil, DefaultConfig())

	doc, err := svc.Generate(context.Background(), Request{
		MaterialType: material.TypeWorksheet,
		QualityLevel: material.QualityStandard,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", doc.Attempts)
	}
	if !doc.Validation.IsValid {
		t.Errorf("second attempt rejected: %+v", doc.Validation.Issues)
	}

	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "neprošla kontrolou kvality") {
		t.Error("retry prompt missing remediation block")
	}
}

func TestGenerateReturnsLastAttemptWhenNeverValid(t *testing.T) {
	invalid := json.RawMessage(`{"title": "Bez otázek", "instructions": "Vyřeš úlohy.", "questions": []}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: invalid},
		llm.MockResponse{Content: invalid},
	)
	svc := New(mock, nil, DefaultConfig())

	doc, err := svc.Generate(context.Background(), Request{
		MaterialType: material.TypeWorksheet,
		QualityLevel: material.QualityStandard,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.Validation.IsValid {
		t.Error("invalid content reported as valid")
	}
	if doc.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", doc.Attempts)
	}
}

func TestGenerateErrorWhenNoUsableContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := New(mock, nil, DefaultConfig())

	_, err := svc.Generate(context.Background(), Request{
		MaterialType: material.TypeWorksheet,
		QualityLevel: material.QualityStandard,
	})
	if err == nil {
		t.Fatal("expected an error when every attempt fails")
	}
}

func TestGenerateSalvagesWrappedJSON(t *testing.T) {
	wrapped := json.RawMessage(`Tady je materiál: {"title": "Kvíz", "time_limit": "10 min", "questions": [{"problem": "Kolik je 2 + 2?", "answer": "2 + 2 = 4", "type": "short_answer"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: wrapped})
	svc := New(mock, nil, Config{MaxAttempts: 1, MaxTokens: 1024})

	doc, err := svc.Generate(context.Background(), Request{
		MaterialType: material.TypeQuiz,
		QualityLevel: material.QualityStandard,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.Content["title"] != "Kvíz" {
		t.Errorf("salvaged content title %v, want Kvíz", doc.Content["title"])
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	svc := New(llm.NewMockProvider(), nil, DefaultConfig())
	_, err := svc.Generate(context.Background(), Request{MaterialType: "poster"})
	if err == nil {
		t.Fatal("expected an error for an unknown material type")
	}
}
