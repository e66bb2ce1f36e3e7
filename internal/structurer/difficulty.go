package structurer

import (
	"regexp"
	"strings"
)

var (
	arithmeticRe = regexp.MustCompile(`\d+\s*[+\-*/×÷:]\s*\d+`)
	powerRe      = regexp.MustCompile(`\^|²|³|na druhou|na třetí`)
)

// itemDifficulty scores one content item on an open-ended scale.
// Longer text, arithmetic, algebraic variables and powers all push the
// score up; the item type adds a fixed bonus. Used both to order items
// and to assign them to progression bands.
func itemDifficulty(item any) float64 {
	text := itemString(item)
	score := 1.0

	lengthBonus := 2.0 * float64(len(text)) / 100.0
	if lengthBonus > 2.0 {
		lengthBonus = 2.0
	}
	score += lengthBonus

	if arithmeticRe.MatchString(text) {
		score += 1.0
	}
	if hasVariableToken(text) {
		score += 1.0
	}
	if powerRe.MatchString(text) {
		score += 2.0
	}

	if m, ok := item.(map[string]any); ok {
		switch getString(m, "type") {
		case "multiple_choice":
			score += 0.5
		case "short_answer":
			score += 1.0
		case "essay":
			score += 2.0
		}
	}
	return score
}

// hasVariableToken reports whether the text contains a standalone
// single lowercase letter, the usual shape of an algebraic unknown.
func hasVariableToken(text string) bool {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,;:!?()")
		if len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z' {
			return true
		}
	}
	return false
}
