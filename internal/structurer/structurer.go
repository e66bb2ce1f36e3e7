// Package structurer enriches generated material content with
// scaffolding, a difficulty progression and pedagogical metadata. All
// analyses are syntactic heuristics over the decoded JSON; nothing in
// this package calls out of process.
package structurer

import "github.com/mhruby/kantor/internal/material"

// Structure runs the four independent analyses over content and
// returns the enriched result. Nil content is treated as empty; the
// input is never mutated.
func Structure(content Content, materialType material.Type, subtype *material.Subtype) *StructuredContent {
	if content == nil {
		content = Content{}
	}
	return &StructuredContent{
		Original:              content,
		Structured:            organizeContent(content, materialType, subtype),
		Scaffolding:           addScaffolding(content, materialType),
		DifficultyProgression: organizeDifficultyProgression(content, materialType),
		Metadata:              addEducationalMetadata(content, materialType),
	}
}
