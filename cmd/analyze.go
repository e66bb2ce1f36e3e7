package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Analyze an assignment description without generating anything",
	Long: `Run the assignment analyzer on a free-text description and print the
structured result: objectives, subject, grade level, difficulty and
suggested material types.

Without a configured LLM provider the analyzer takes the heuristic path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	ctx := context.Background()

	// Stateless tool, no event logging.
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using heuristic analysis.")
		provider = nil
	}

	analyzer := analysis.New(provider, analysis.DefaultConfig())
	a := analyzer.Analyze(ctx, description)

	fmt.Printf("Předmět:     %s\n", a.Subject)
	fmt.Printf("Ročník:      %s\n", a.GradeLevel)
	fmt.Printf("Obtížnost:   %s\n", a.Difficulty)
	fmt.Printf("Délka:       %s\n", a.EstimatedDuration)
	fmt.Printf("Spolehlivost: %.0f %%\n", a.Confidence*100)

	fmt.Println("\nVýukové cíle:")
	for _, obj := range a.LearningObjectives {
		fmt.Printf("  - %s\n", obj)
	}

	if len(a.KeyTopics) > 0 {
		fmt.Printf("\nKlíčová témata: %s\n", strings.Join(a.KeyTopics, ", "))
	}

	if len(a.SuggestedMaterialTypes) > 0 {
		fmt.Println("\nDoporučené typy materiálů:")
		for _, t := range a.SuggestedMaterialTypes {
			fmt.Printf("  - %s\n", t)
		}
	}

	return nil
}
