package quality

// Thresholds below which a generic remediation suggestion is added.
const (
	accuracyThreshold   = 0.7
	clarityThreshold    = 0.7
	engagementThreshold = 0.6
	pedagogyThreshold   = 0.7
)

// generateSuggestions merges the per-issue suggestions with generic
// ones for low sub-scores, deduplicated in first-seen order.
func generateSuggestions(score Score, issues []Issue) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, issue := range issues {
		add(issue.Suggestion)
	}

	if score.Accuracy < accuracyThreshold {
		add("Zkontroluj věcnou správnost a úplnost obsahu.")
	}
	if score.Clarity < clarityThreshold {
		add("Formuluj zadání jednodušeji a jednoznačněji.")
	}
	if score.Engagement < engagementThreshold {
		add("Přidej interaktivní prvky a příklady z běžného života.")
	}
	if score.PedagogicalSoundness < pedagogyThreshold {
		add("Ujisti se, že obsah naplňuje vzdělávací cíle a má vhodnou posloupnost.")
	}
	return out
}
