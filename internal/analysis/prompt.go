package analysis

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `Jsi zkušený český pedagog. Analyzuješ zadání od učitele a vracíš strukturovaný rozbor.

Pravidla:
- Odpověz jediným JSON objektem bez jakéhokoli dalšího textu.
- Všechny texty piš česky.
- Vycházej pouze z toho, co zadání skutečně obsahuje; nedomýšlej si fakta.`

// buildAnalysisMessage constructs the user message for the structured
// analysis request.
func buildAnalysisMessage(description string) string {
	var b strings.Builder

	b.WriteString("Zadání od učitele:\n")
	b.WriteString(description)
	b.WriteString("\n\n")
	b.WriteString(`Vrať JSON objekt přesně s těmito klíči:
{
  "learning_objectives": ["max. 5 výukových cílů"],
  "difficulty": "základní | střední | pokročilá | expertní",
  "subject": "vyučovací předmět",
  "grade_level": "ročník, např. 4. třída ZŠ",
  "estimated_duration": "odhad času, např. 45 min",
  "key_topics": ["klíčová témata"],
  "confidence": 0.0
}`)

	fmt.Fprintf(&b, "\n\nPole confidence vyjadřuje tvou jistotu v rozbor (0.0 až 1.0).")

	return b.String()
}
