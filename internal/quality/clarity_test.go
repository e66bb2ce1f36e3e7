package quality

import (
	"math"
	"testing"
)

func TestQuestionClarity(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Kolik je 2 + 3?", 1.0},
		{"Proč se voda v létě vypařuje rychleji?", 1.0},
		{"Maminka koupila 4 jablka a 3 hrušky. Kolik kusů ovoce koupila?", 1.0},
		// Imperative phrasing without an interrogative word or a question
		// mark only earns the length half.
		{"Vypočítej obsah obdélníku o stranách 4 cm a 6 cm.", 0.5},
		{"Spoj.", 0.0},
	}

	for _, c := range cases {
		if got := questionClarity(c.text); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("questionClarity(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestInstructionClarity(t *testing.T) {
	if got := instructionClarity("Vyřeš všechny úlohy a zkontroluj si výsledky."); got != 1.0 {
		t.Errorf("clear instruction scored %v, want 1.0", got)
	}
	if got := instructionClarity("Úlohy."); got != 0.0 {
		t.Errorf("verbless fragment scored %v, want 0.0", got)
	}
}
