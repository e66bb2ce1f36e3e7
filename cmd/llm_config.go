package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhruby/kantor/internal/llm"
	"github.com/spf13/cobra"
)

var llmConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved LLM provider configuration",
	Long: `Print which provider and model the KANTOR_* environment (or key
discovery) resolves to, without exposing API keys. With --check, run one
mock generation through the middleware stack to verify the wiring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetBool("check")

		cfg := llm.ConfigFromEnv()
		source := "environment"
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No provider configured.")
				fmt.Println(err)
				return nil
			}
			cfg = discovered
			source = "key discovery"
		}

		fmt.Printf("Provider:  %s (%s)\n", cfg.Provider, source)
		fmt.Printf("Model:     %s\n", resolvedModel(cfg))
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d (wait %s…%s)\n",
			cfg.Retry.MaxAttempts, cfg.Retry.InitialWait, cfg.Retry.MaxWait)

		if !check {
			return nil
		}

		// Dry run through the real middleware with a mock at the bottom.
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"ok":true}`)})
		wrapped := llm.WithRetry(mock, cfg.Retry)

		_, err := wrapped.Generate(context.Background(), llm.Request{
			System:    "ping",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "ping"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("dry run: %w", err)
		}
		fmt.Println("Dry run:   ✓ middleware stack OK")
		return nil
	},
}

func resolvedModel(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	}
	return ""
}

func init() {
	llmConfigCmd.Flags().Bool("check", false, "Run a mock generation through the middleware stack")
	llmCmd.AddCommand(llmConfigCmd)
}
