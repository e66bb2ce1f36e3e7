package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/generator"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a teaching material from an assignment description",
	Long: `Analyze an assignment description, build a prompt, generate the material
with the configured LLM provider, structure it and run the quality check.

The generated document is stored in the local database and printed as JSON
(or written to --out).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("type", "t", "", "Material type: worksheet, lesson-plan, quiz, project, presentation, activity (required)")
	generateCmd.Flags().String("subtype", "", "Subtype ID from the catalog (see the catalog section of the docs)")
	generateCmd.Flags().StringP("description", "d", "", "Assignment description (required)")
	generateCmd.Flags().StringP("quality", "q", string(material.QualityStandard), "Quality level: basic, standard, high, expert")
	generateCmd.Flags().String("custom", "", "Custom instructions appended to the prompt")
	generateCmd.Flags().StringArray("input", nil, "Subtype field value as key=value (repeatable)")
	generateCmd.Flags().StringP("out", "o", "", "Write the document JSON to this file instead of stdout")

	_ = generateCmd.MarkFlagRequired("type")
	_ = generateCmd.MarkFlagRequired("description")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	typeVal, _ := cmd.Flags().GetString("type")
	subtypeVal, _ := cmd.Flags().GetString("subtype")
	description, _ := cmd.Flags().GetString("description")
	qualityVal, _ := cmd.Flags().GetString("quality")
	custom, _ := cmd.Flags().GetString("custom")
	inputs, _ := cmd.Flags().GetStringArray("input")
	outPath, _ := cmd.Flags().GetString("out")

	materialType := material.Type(typeVal)
	if !materialType.IsValid() {
		return fmt.Errorf("unknown material type %q", typeVal)
	}

	qualityLevel, err := parseQualityLevel(qualityVal)
	if err != nil {
		return err
	}

	var subtype *material.Subtype
	if subtypeVal != "" {
		subtype = material.NewCatalog().Get(subtypeVal)
		if subtype == nil {
			return fmt.Errorf("unknown subtype %q", subtypeVal)
		}
		if subtype.ParentType != materialType {
			return fmt.Errorf("subtype %q belongs to type %q, not %q", subtypeVal, subtype.ParentType, materialType)
		}
	}

	userInputs, err := parseUserInputs(inputs)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Analyzuji zadání…")
	analyzer := analysis.New(provider, analysis.DefaultConfig())
	assignment := analyzer.Analyze(ctx, description)

	fmt.Fprintf(os.Stderr, "Generuji materiál (%s, %s)…\n", typeVal, assignment.Subject)
	service := generator.New(provider, s.DocumentRepo(), generator.DefaultConfig())
	doc, err := service.Generate(ctx, generator.Request{
		MaterialType:       materialType,
		Subtype:            subtype,
		Assignment:         assignment,
		UserInputs:         userInputs,
		QualityLevel:       qualityLevel,
		CustomInstructions: custom,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	printValidationSummary(doc)

	out, err := json.MarshalIndent(doc.Content, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Uloženo do %s (dokument %s)\n", outPath, doc.ID)
		return nil
	}

	fmt.Println(string(out))
	return nil
}

func parseQualityLevel(s string) (material.QualityLevel, error) {
	switch material.QualityLevel(s) {
	case material.QualityBasic, material.QualityStandard, material.QualityHigh, material.QualityExpert:
		return material.QualityLevel(s), nil
	}
	return "", fmt.Errorf("unknown quality level %q: must be basic, standard, high or expert", s)
}

func parseUserInputs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --input %q: expected key=value", pair)
		}
		inputs[key] = value
	}
	return inputs, nil
}

func printValidationSummary(doc *generator.Document) {
	result := doc.Validation
	verdict := "prošel kontrolou kvality"
	if !result.IsValid {
		verdict = "NEPROŠEL kontrolou kvality"
	}
	fmt.Fprintf(os.Stderr, "Dokument %s %s (skóre %.2f, pokusů %d)\n",
		doc.ID, verdict, result.Score.Overall, doc.Attempts)

	for _, issue := range result.Issues {
		fmt.Fprintf(os.Stderr, "  [%s/%s] %s\n", issue.Type, issue.Category, issue.Message)
	}
}
