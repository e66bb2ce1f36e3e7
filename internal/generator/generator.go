// Package generator orchestrates the full pipeline: prompt assembly,
// the LLM call, content structuring, quality validation and
// persistence of the resulting document.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/promptgen"
	"github.com/mhruby/kantor/internal/quality"
	"github.com/mhruby/kantor/internal/store"
	"github.com/mhruby/kantor/internal/structurer"
)

// Config tunes the generation service.
type Config struct {
	// MaxAttempts is how many times to generate before giving up on
	// producing content the validator accepts. The last attempt's
	// result is returned either way.
	MaxAttempts int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 2,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Request describes one document to generate.
type Request struct {
	MaterialType       material.Type
	Subtype            *material.Subtype
	Assignment         *analysis.Assignment
	UserInputs         map[string]string
	QualityLevel       material.QualityLevel
	CustomInstructions string
}

// Document is one generated, structured and validated material.
type Document struct {
	ID           string
	MaterialType material.Type
	Subtype      string
	Content      map[string]any
	Structured   *structurer.StructuredContent
	Validation   quality.Result
	Attempts     int
}

// Service generates documents. Documents is optional; when set, every
// generated document is persisted.
type Service struct {
	provider  llm.Provider
	builder   *promptgen.Builder
	documents store.DocumentRepo
	cfg       Config
}

// New creates a generation Service. documents may be nil to skip
// persistence.
func New(provider llm.Provider, documents store.DocumentRepo, cfg Config) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Service{
		provider:  provider,
		builder:   promptgen.NewBuilder(),
		documents: documents,
		cfg:       cfg,
	}
}

const generationSystemPrompt = "Jsi zkušený český učitel a tvůrce výukových materiálů. " +
	"Vytváříš obsah přesně podle zadání a odpovídáš výhradně jedním platným JSON objektem."

// Generate runs the pipeline for one request. The validator is
// advisory: when no attempt passes it, the last attempt's document is
// returned with its validation attached, not an error. An error means
// no usable content came back at all.
func (s *Service) Generate(ctx context.Context, req Request) (*Document, error) {
	if !req.MaterialType.IsValid() {
		return nil, fmt.Errorf("unknown material type %q", req.MaterialType)
	}

	prompt := s.builder.Build(promptgen.Params{
		MaterialType:       req.MaterialType,
		Subtype:            req.Subtype,
		Assignment:         req.Assignment,
		UserInputs:         req.UserInputs,
		QualityLevel:       req.QualityLevel,
		CustomInstructions: req.CustomInstructions,
	})

	var (
		doc     *Document
		lastErr error
	)
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		content, err := s.generateOnce(ctx, req.MaterialType, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		result := quality.Validate(content, req.MaterialType)
		doc = &Document{
			ID:           uuid.NewString(),
			MaterialType: req.MaterialType,
			Content:      content,
			Validation:   result,
			Attempts:     attempt,
		}
		if req.Subtype != nil {
			doc.Subtype = req.Subtype.ID
		}
		if result.IsValid {
			break
		}
		// Feed the findings back so the next attempt can fix them.
		prompt = prompt + "\n\n" + remediationBlock(result)
	}
	if doc == nil {
		return nil, fmt.Errorf("generate %s: %w", req.MaterialType, lastErr)
	}

	doc.Structured = structurer.Structure(doc.Content, req.MaterialType, req.Subtype)

	if s.documents != nil {
		if err := s.persist(ctx, req, doc); err != nil {
			return nil, fmt.Errorf("persist document: %w", err)
		}
	}
	return doc, nil
}

// generateOnce performs a single LLM call and decodes the content.
func (s *Service) generateOnce(ctx context.Context, materialType material.Type, prompt string) (map[string]any, error) {
	ctx = llm.WithPurpose(ctx, "content-generation")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generationSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      outputSchema(materialType),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var content map[string]any
	if err := json.Unmarshal(resp.Content, &content); err != nil {
		// Providers without structured output may wrap the JSON in
		// prose; salvage the first balanced object.
		extracted := analysis.ExtractJSONObject(string(resp.Content))
		if extracted == "" {
			return nil, fmt.Errorf("decode generated content: %w", err)
		}
		if err := json.Unmarshal([]byte(extracted), &content); err != nil {
			return nil, fmt.Errorf("decode extracted content: %w", err)
		}
	}
	return content, nil
}

// remediationBlock turns validation findings into follow-up prompt
// instructions.
func remediationBlock(result quality.Result) string {
	var sb strings.Builder
	sb.WriteString("Předchozí verze neprošla kontrolou kvality. Oprav tyto problémy:\n")
	for _, issue := range result.Issues {
		sb.WriteString("- ")
		sb.WriteString(issue.Message)
		sb.WriteString("\n")
	}
	for _, suggestion := range result.Suggestions {
		sb.WriteString("- ")
		sb.WriteString(suggestion)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Service) persist(ctx context.Context, req Request, doc *Document) error {
	contentJSON, err := json.Marshal(doc.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	data := store.DocumentEventData{
		DocumentID:   doc.ID,
		MaterialType: string(doc.MaterialType),
		Subtype:      doc.Subtype,
		QualityScore: doc.Validation.Score.Overall,
		IsValid:      doc.Validation.IsValid,
		Attempts:     doc.Attempts,
		Content:      string(contentJSON),
	}
	if title, ok := doc.Content["title"].(string); ok {
		data.Title = title
	}
	if req.Assignment != nil {
		data.Subject = req.Assignment.Subject
		data.GradeLevel = req.Assignment.GradeLevel
	}
	return s.documents.AppendDocument(ctx, data)
}
