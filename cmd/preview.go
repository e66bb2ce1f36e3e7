package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mhruby/kantor/internal/generator"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/quality"
	"github.com/mhruby/kantor/internal/store"
	"github.com/mhruby/kantor/internal/structurer"
	"github.com/mhruby/kantor/internal/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactive preview of assignment analysis and generated documents",
	Long: `Open the interactive preview. Without flags it offers a compose screen:
pick a material type, describe the assignment and review the analysis.

With --doc it renders a stored document with its validation report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd)
	},
}

func init() {
	previewCmd.Flags().String("doc", "", "Document UUID to preview from the database")
}

func runPreview(cmd *cobra.Command) error {
	docID, _ := cmd.Flags().GetString("doc")

	if docID != "" {
		doc, err := loadStoredDocument(cmd, docID)
		if err != nil {
			return err
		}
		return tui.Run(tui.Options{Document: doc})
	}

	// Stateless compose mode, no event logging.
	provider, err := llm.NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Analysis will use the heuristic path.")
		provider = nil
	}

	return tui.Run(tui.Options{Provider: provider})
}

// loadStoredDocument rebuilds a generator.Document from its stored
// event. Structuring and validation are recomputed from the content.
func loadStoredDocument(cmd *cobra.Command, docID string) (*generator.Document, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	event, err := s.DocumentRepo().GetDocument(context.Background(), docID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("document %q not found", docID)
	}

	var content map[string]any
	if err := json.Unmarshal([]byte(event.Content), &content); err != nil {
		return nil, fmt.Errorf("decode stored document %q: %w", docID, err)
	}

	materialType := material.Type(event.MaterialType)
	var subtype *material.Subtype
	if event.Subtype != "" {
		subtype = material.NewCatalog().Get(event.Subtype)
	}

	return &generator.Document{
		ID:           event.DocumentID,
		MaterialType: materialType,
		Subtype:      event.Subtype,
		Content:      content,
		Structured:   structurer.Structure(content, materialType, subtype),
		Validation:   quality.Validate(content, materialType),
		Attempts:     event.Attempts,
	}, nil
}
