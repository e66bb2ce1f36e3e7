package structurer

import (
	"regexp"
	"strings"

	"github.com/mhruby/kantor/internal/heuristics"
	"github.com/mhruby/kantor/internal/material"
)

// addEducationalMetadata derives every annotation from the flattened
// text plus the structural shape of the content. All parts tolerate
// empty content by returning their fixed defaults.
func addEducationalMetadata(content Content, materialType material.Type) Metadata {
	text := strings.ToLower(flattenText(content))
	return Metadata{
		BloomLevels:            bloomDistribution(text),
		LearningStyles:         matchLearningStyles(text),
		AssessmentType:         assessmentType(materialType),
		DifferentiationOptions: differentiationOptions(materialType),
		PrerequisiteKnowledge:  extractPrerequisites(text),
		CognitiveLoad:          estimateCognitiveLoad(content, text),
	}
}

// bloomDistribution counts verb matches per taxonomy level and
// normalizes over the levels actually observed. Levels with zero
// matches are omitted rather than reported as zero.
func bloomDistribution(lowerText string) []BloomLevel {
	counts := make(map[heuristics.BloomLevelName]int)
	total := 0
	for _, level := range heuristics.BloomOrder {
		n := len(heuristics.MatchedStems(lowerText, heuristics.BloomVerbs[level]))
		if n > 0 {
			counts[level] = n
			total += n
		}
	}
	if total == 0 {
		return nil
	}
	out := make([]BloomLevel, 0, len(counts))
	for _, level := range heuristics.BloomOrder {
		if n, ok := counts[level]; ok {
			out = append(out, BloomLevel{
				Level:      level,
				Percentage: float64(n) / float64(total),
			})
		}
	}
	return out
}

// matchLearningStyles reports each style with at least one matched
// indicator word, carrying the matches as evidence.
func matchLearningStyles(lowerText string) []LearningStyle {
	var out []LearningStyle
	for _, style := range heuristics.StyleOrder {
		matched := heuristics.MatchedStems(lowerText, heuristics.LearningStyleIndicators[style])
		if len(matched) > 0 {
			out = append(out, LearningStyle{Style: style, Indicators: matched})
		}
	}
	return out
}

func assessmentType(materialType material.Type) string {
	switch materialType {
	case material.TypeQuiz:
		return "formativní hodnocení"
	case material.TypeWorksheet:
		return "procvičování a upevňování"
	case material.TypeProject:
		return "sumativní hodnocení"
	case material.TypeActivity:
		return "aktivní učení"
	default:
		return "smíšené hodnocení"
	}
}

var baseDifferentiation = []string{
	"Nabídni žákům volbu mezi úlohami různé obtížnosti.",
	"Připrav rozšiřující úlohy pro rychlejší žáky.",
	"Poskytni slabším žákům nápovědy nebo vzorová řešení.",
	"Umožni práci ve dvojicích tam, kde to dává smysl.",
	"Dej žákům na vybranou formu výstupu (text, schéma, prezentace).",
}

var typeDifferentiation = map[material.Type][]string{
	material.TypeWorksheet: {
		"Rozděl pracovní list na povinnou a volitelnou část.",
		"Přidej ke složitějším úlohám mezivýsledky pro kontrolu.",
	},
	material.TypeLessonPlan: {
		"Připrav alternativní aktivitu pro žáky se speciálními potřebami.",
		"Naplánuj volitelné rozšíření pro nadané žáky.",
	},
	material.TypeQuiz: {
		"Umožni slabším žákům delší časový limit.",
		"Nabídni část otázek jako bonusové.",
	},
	material.TypeProject: {
		"Umožni různé role v týmu podle silných stránek žáků.",
		"Sjednej individuální rozsah výstupu s každou skupinou.",
	},
	material.TypePresentation: {
		"Připrav zjednodušenou verzi snímků pro mladší publikum.",
		"Doplň ke klíčovým snímkům podrobnější poznámky.",
	},
	material.TypeActivity: {
		"Přizpůsob tempo aktivity podle reakcí skupiny.",
		"Připrav náhradní variantu pro menší počet žáků.",
	},
}

func differentiationOptions(materialType material.Type) []string {
	out := make([]string, 0, len(baseDifferentiation)+2)
	out = append(out, baseDifferentiation...)
	out = append(out, typeDifferentiation[materialType]...)
	return out
}

const maxPrerequisites = 5

var prerequisitePatterns = []*regexp.Regexp{
	regexp.MustCompile(`znalost[i]?\s+([^.,;!?]{3,60})`),
	regexp.MustCompile(`umět\s+([^.,;!?]{3,60})`),
	regexp.MustCompile(`předchozí\s+([^.,;!?]{3,60})`),
	regexp.MustCompile(`základy\s+([^.,;!?]{3,60})`),
}

// extractPrerequisites pulls prior-knowledge phrases out of the text.
// At most five survive, deduplicated in pattern order.
func extractPrerequisites(lowerText string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range prerequisitePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lowerText, -1) {
			phrase := strings.TrimSpace(m[1])
			if phrase == "" {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			out = append(out, phrase)
			if len(out) == maxPrerequisites {
				return out
			}
		}
	}
	return out
}

var (
	complexConceptWords = []string{"abstraktní", "derivace", "integrál", "rovnice", "funkce", "důkaz", "analýza"}
	distractionWords    = []string{"pozor", "upozornění", "varování"}
	scaffoldWords       = []string{"krok", "nápověda", "příklad", "postup", "návod"}
	connectionWords     = []string{"souvis", "propoj", "navaz", "vztah"}
)

// estimateCognitiveLoad scores the three load components from cheap
// structural and lexical proxies. Each component lands in [0,1].
func estimateCognitiveLoad(content Content, lowerText string) CognitiveLoad {
	intrinsic := clamp01(float64(len(lowerText))/2000.0 +
		0.15*float64(len(heuristics.MatchedStems(lowerText, complexConceptWords))))

	extraneous := clamp01(float64(depth(map[string]any(content)))/6.0 +
		0.1*float64(len(heuristics.MatchedStems(lowerText, distractionWords))))

	germane := clamp01(0.2*float64(len(heuristics.MatchedStems(lowerText, scaffoldWords))) +
		0.2*float64(len(heuristics.MatchedStems(lowerText, connectionWords))))

	return CognitiveLoad{
		Intrinsic:  intrinsic,
		Extraneous: extraneous,
		Germane:    germane,
		Overall:    clamp01((intrinsic + extraneous + germane) / 3.0),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
