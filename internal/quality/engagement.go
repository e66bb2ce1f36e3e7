package quality

import "strings"

var (
	interactivityWords = []string{"diskutuj", "pracujte ve dvojic", "skupin", "zahraj", "vyzkoušej", "navrhni", "experiment"}
	relevanceWords     = []string{"v praxi", "každodenn", "reáln", "ve škole", "doma", "nakup", "sport", "příroda", "rodina"}
)

// validateEngagement starts from a neutral base and rewards variety,
// interactivity and real-world relevance. The result never drops
// below the base; dull content simply earns nothing extra.
func validateEngagement(content Content) float64 {
	score := 0.5
	text := strings.ToLower(allText(content))

	if questions := getSlice(content, "questions"); len(questions) > 0 {
		types := make(map[string]struct{})
		for _, q := range questions {
			if m, ok := q.(map[string]any); ok {
				if t := getString(m, "type"); t != "" {
					types[t] = struct{}{}
				}
			}
		}
		score += 0.3 * float64(len(types)) / float64(len(questions))
	}

	matched := 0
	for _, w := range interactivityWords {
		if strings.Contains(text, w) {
			matched++
		}
	}
	if matched > 2 {
		matched = 2
	}
	score += 0.1 * float64(matched)

	matched = 0
	for _, w := range relevanceWords {
		if strings.Contains(text, w) {
			matched++
		}
	}
	if matched > 3 {
		matched = 3
	}
	score += 0.1 * float64(matched)

	if score > 1.0 {
		score = 1.0
	}
	return score
}
