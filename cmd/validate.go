package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/quality"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Run the quality check on a material JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringP("type", "t", string(material.TypeWorksheet), "Material type the file claims to be")
}

func runValidate(cmd *cobra.Command, args []string) error {
	typeVal, _ := cmd.Flags().GetString("type")
	materialType := material.Type(typeVal)
	if !materialType.IsValid() {
		return fmt.Errorf("unknown material type %q", typeVal)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	var content any
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	result := quality.Validate(content, materialType)

	if result.IsValid {
		fmt.Println("✓ Materiál prošel kontrolou kvality.")
	} else {
		fmt.Println("✗ Materiál neprošel kontrolou kvality.")
	}

	fmt.Printf("\nCelkové skóre:  %.2f\n", result.Score.Overall)
	fmt.Printf("  Správnost:      %.2f\n", result.Score.Accuracy)
	fmt.Printf("  Přiměřenost:    %.2f\n", result.Score.AgeAppropriateness)
	fmt.Printf("  Didaktika:      %.2f\n", result.Score.PedagogicalSoundness)
	fmt.Printf("  Srozumitelnost: %.2f\n", result.Score.Clarity)
	fmt.Printf("  Poutavost:      %.2f\n", result.Score.Engagement)

	if len(result.Issues) > 0 {
		fmt.Println("\nNálezy:")
		for _, issue := range result.Issues {
			field := ""
			if issue.Field != "" {
				field = " (" + issue.Field + ")"
			}
			fmt.Printf("  [%s/%s] %s%s\n", issue.Type, issue.Category, issue.Message, field)
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("\nDoporučení:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	if !result.IsValid {
		// Non-zero exit so scripts can gate on validity.
		os.Exit(1)
	}
	return nil
}
