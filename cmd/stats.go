package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mhruby/kantor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show generated document history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		docs, err := s.DocumentRepo().QueryDocuments(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query documents: %w", err)
		}

		if len(docs) == 0 {
			fmt.Println("No documents generated yet.")
			return nil
		}

		fmt.Printf("%-19s  %-13s  %-30s  %-12s  %5s  %-3s\n",
			"Timestamp", "Type", "Title", "Subject", "Score", "OK")
		fmt.Println(strings.Repeat("─", 94))

		byType := make(map[string]int)
		var validCount int
		for _, d := range docs {
			ok := "✓"
			if !d.IsValid {
				ok = "✗"
			} else {
				validCount++
			}
			byType[d.MaterialType]++

			fmt.Printf("%-19s  %-13s  %-30s  %-12s  %5.2f  %-3s\n",
				d.Timestamp.Local().Format("2006-01-02 15:04:05"),
				d.MaterialType,
				truncate(d.Title, 30),
				truncate(d.Subject, 12),
				d.QualityScore,
				ok,
			)
		}

		fmt.Println(strings.Repeat("─", 94))
		fmt.Printf("%d documents, %d passed validation\n", len(docs), validCount)

		types := make([]string, 0, len(byType))
		for t := range byType {
			types = append(types, t)
		}
		sort.Strings(types)
		parts := make([]string, 0, len(types))
		for _, t := range types {
			parts = append(parts, fmt.Sprintf("%s: %d", t, byType[t]))
		}
		fmt.Println(strings.Join(parts, ", "))

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 50, "Number of documents to show")
}
