package heuristics

import (
	"regexp"
	"strings"
)

const (
	maxObjectives      = 5
	minObjectiveLength = 10
)

// objectivePatterns are tried in order. Earlier patterns are more
// explicit markers and their captures are therefore more trustworthy.
var objectivePatterns = []*regexp.Regexp{
	// "Cíl: ..." / "Cíle: ..." markers, one objective per line.
	regexp.MustCompile(`(?im)^\s*cíle?\s*:\s*(.+)$`),
	// "Student se naučí ...", "žáci se naučí ..."
	regexp.MustCompile(`(?i)(?:student|žák|žáci|studenti|děti)\w*\s+se\s+nauč\w*\s+([^.!?\n]+)`),
	// "Po hodině budou umět ..." / "po hodině bude schopen ..."
	regexp.MustCompile(`(?i)po\s+(?:této\s+)?hodině\s+(?:budou|bude)\s+(?:umět|schopn\w*)\s+([^.!?\n]+)`),
	// Generic "naučit se / pochopit / porozumět / osvojit si ..."
	regexp.MustCompile(`(?i)(?:naučit\s+se|pochopit|porozumět|osvojit\s+si)\s+([^.!?\n]+)`),
}

// ExtractLearningObjectives pulls explicit learning objectives out of an
// assignment description. Candidates shorter than 10 characters are
// dropped, duplicates are removed, and at most 5 objectives are
// returned. When nothing matches, up to 3 fallback objectives are
// synthesized from the top key concepts.
func ExtractLearningObjectives(text string) []string {
	var objectives []string
	seen := map[string]struct{}{}

	for _, re := range objectivePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(strings.Trim(m[1], " .,;"))
			if len([]rune(candidate)) <= minObjectiveLength {
				continue
			}
			key := strings.ToLower(candidate)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			objectives = append(objectives, candidate)
			if len(objectives) == maxObjectives {
				return objectives
			}
		}
	}

	if len(objectives) > 0 {
		return objectives
	}

	// Nothing explicit; synthesize from the dominant concepts.
	for i, concept := range ExtractKeyConcepts(text) {
		if i == 3 {
			break
		}
		objectives = append(objectives, "Pochopit "+concept)
	}
	return objectives
}
