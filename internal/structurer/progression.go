package structurer

import (
	"fmt"

	"github.com/mhruby/kantor/internal/material"
)

var (
	basicIndicators = []string{
		"krátké zadání",
		"jeden výpočetní krok",
		"přímá aplikace pravidla",
	}
	intermediateIndicators = []string{
		"víc výpočetních kroků",
		"práce s neznámou",
		"kombinace dvou pravidel",
	}
	advancedIndicators = []string{
		"delší slovní zadání",
		"mocniny nebo složené výrazy",
		"vyžaduje vlastní postup řešení",
	}
)

func indicatorsForScore(score float64) []string {
	switch {
	case score < 2.0:
		return basicIndicators
	case score < 3.0:
		return intermediateIndicators
	default:
		return advancedIndicators
	}
}

// organizeDifficultyProgression describes how difficulty develops
// through the material. Worksheets and quizzes derive it from the
// question scores, lesson plans always follow the same pedagogical
// arc, everything else gets a two-stage placeholder.
func organizeDifficultyProgression(content Content, materialType material.Type) []DifficultyLevel {
	switch materialType {
	case material.TypeWorksheet, material.TypeQuiz:
		return questionProgression(content)
	case material.TypeLessonPlan:
		return lessonArc()
	default:
		return defaultProgression()
	}
}

// questionProgression partitions the observed difficulty range of the
// questions into three evenly spaced bands.
func questionProgression(content Content) []DifficultyLevel {
	questions := getSlice(content, "questions")
	if len(questions) == 0 {
		return defaultProgression()
	}

	min := itemDifficulty(questions[0])
	max := min
	for _, q := range questions[1:] {
		score := itemDifficulty(q)
		if score < min {
			min = score
		}
		if score > max {
			max = score
		}
	}

	names := []string{"Základní", "Střední", "Pokročilá"}
	step := (max - min) / 3.0
	levels := make([]DifficultyLevel, 0, 3)
	for i, name := range names {
		bandMid := min + step*(float64(i)+0.5)
		levels = append(levels, DifficultyLevel{
			Level:       i + 1,
			Description: fmt.Sprintf("%s úroveň (skóre %.1f až %.1f)", name, min+step*float64(i), min+step*float64(i+1)),
			Indicators:  indicatorsForScore(bandMid),
		})
	}
	return levels
}

func lessonArc() []DifficultyLevel {
	return []DifficultyLevel{
		{
			Level:       1,
			Description: "Úvod a motivace",
			Indicators:  []string{"aktivace předchozích znalostí", "motivační otázka", "seznámení s cílem hodiny"},
		},
		{
			Level:       2,
			Description: "Výklad a řízené procvičování",
			Indicators:  []string{"výklad nové látky", "společné řešení příkladů", "průběžná kontrola porozumění"},
		},
		{
			Level:       3,
			Description: "Aplikace a syntéza",
			Indicators:  []string{"samostatná práce", "přenos do nové situace", "shrnutí a reflexe"},
		},
	}
}

func defaultProgression() []DifficultyLevel {
	return []DifficultyLevel{
		{
			Level:       1,
			Description: "Základní část",
			Indicators:  basicIndicators,
		},
		{
			Level:       2,
			Description: "Pokročilá část",
			Indicators:  advancedIndicators,
		},
	}
}
