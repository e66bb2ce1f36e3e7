package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/generator"
	"github.com/mhruby/kantor/internal/quality"
	"github.com/mhruby/kantor/internal/ui/components"
	"github.com/mhruby/kantor/internal/ui/theme"
)

const scoreBarWidth = 56

// assignmentReport renders an assignment analysis as report lines.
func assignmentReport(a *analysis.Assignment) []string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Rozbor zadání"))
	b.WriteString("\n\n")

	writeField(&b, "Předmět", a.Subject)
	writeField(&b, "Ročník", a.GradeLevel)
	writeField(&b, "Obtížnost", string(a.Difficulty))
	writeField(&b, "Odhadovaná délka", a.EstimatedDuration)
	b.WriteString("\n")

	writeHeading(&b, "Výukové cíle")
	for _, obj := range a.LearningObjectives {
		writeItem(&b, obj)
	}

	if len(a.KeyTopics) > 0 {
		b.WriteString("\n")
		writeHeading(&b, "Klíčová témata")
		writeItem(&b, strings.Join(a.KeyTopics, ", "))
	}

	if len(a.SuggestedMaterialTypes) > 0 {
		b.WriteString("\n")
		writeHeading(&b, "Doporučené typy materiálů")
		for _, t := range a.SuggestedMaterialTypes {
			writeItem(&b, typeLabel(t))
		}
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(components.NewScoreBar("Spolehlivost rozboru", a.Confidence, scoreBarWidth).View())
	b.WriteString("\n")

	return strings.Split(b.String(), "\n")
}

// documentReport renders a generated document with its validation
// result as report lines.
func documentReport(doc *generator.Document) []string {
	var b strings.Builder

	b.WriteString("\n")
	title := docTitle(doc)
	b.WriteString(theme.Title.Render("  " + title))
	b.WriteString("\n\n")

	writeField(&b, "Typ", typeLabel(doc.MaterialType))
	if doc.Subtype != "" {
		writeField(&b, "Podtyp", doc.Subtype)
	}
	writeField(&b, "Pokusy generování", fmt.Sprintf("%d", doc.Attempts))
	b.WriteString("\n")

	writeValidation(&b, doc.Validation)

	if doc.Structured != nil {
		if len(doc.Structured.Scaffolding) > 0 {
			b.WriteString("\n")
			writeHeading(&b, "Opory pro žáky")
			for _, el := range doc.Structured.Scaffolding {
				writeItem(&b, fmt.Sprintf("[%s] %s", el.Type, el.Content))
			}
		}

		if len(doc.Structured.DifficultyProgression) > 0 {
			b.WriteString("\n")
			writeHeading(&b, "Gradace obtížnosti")
			for _, lvl := range doc.Structured.DifficultyProgression {
				writeItem(&b, fmt.Sprintf("%d. %s", lvl.Level, lvl.Description))
			}
		}

		meta := doc.Structured.Metadata
		b.WriteString("\n")
		writeHeading(&b, "Pedagogická metadata")
		writeField(&b, "Způsob hodnocení", meta.AssessmentType)
		if len(meta.PrerequisiteKnowledge) > 0 {
			writeField(&b, "Předpoklady", strings.Join(meta.PrerequisiteKnowledge, "; "))
		}
		b.WriteString("  ")
		b.WriteString(components.NewScoreBar("Kognitivní zátěž", meta.CognitiveLoad.Overall, scoreBarWidth).View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	writeHeading(&b, "Obsah")
	writeContentSummary(&b, doc.Content)

	return strings.Split(b.String(), "\n")
}

func writeValidation(b *strings.Builder, result quality.Result) {
	writeHeading(b, "Kontrola kvality")

	verdict := theme.Pass.Render("✓ materiál prošel kontrolou")
	if !result.IsValid {
		verdict = theme.Fail.Render("✗ materiál neprošel kontrolou")
	}
	b.WriteString("  " + verdict + "\n\n")

	bars := []struct {
		label string
		score float64
	}{
		{"Celkem       ", result.Score.Overall},
		{"Správnost    ", result.Score.Accuracy},
		{"Přiměřenost  ", result.Score.AgeAppropriateness},
		{"Didaktika    ", result.Score.PedagogicalSoundness},
		{"Srozumitelnost", result.Score.Clarity},
		{"Poutavost    ", result.Score.Engagement},
	}
	for _, bar := range bars {
		b.WriteString("  ")
		b.WriteString(components.NewScoreBar(bar.label, bar.score, scoreBarWidth).View())
		b.WriteString("\n")
	}

	if len(result.Issues) > 0 {
		b.WriteString("\n")
		writeHeading(b, "Nálezy")
		for _, issue := range result.Issues {
			b.WriteString("  " + renderIssue(issue) + "\n")
		}
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n")
		writeHeading(b, "Doporučení")
		for _, s := range result.Suggestions {
			writeItem(b, s)
		}
	}
}

func renderIssue(issue quality.Issue) string {
	var mark string
	switch issue.Type {
	case quality.IssueError:
		mark = theme.Fail.Render("✗")
	case quality.IssueWarning:
		mark = theme.Body.Foreground(theme.Warning).Render("!")
	default:
		mark = theme.Hint.Render("i")
	}

	line := mark + " " + theme.Body.Render(issue.Message)
	if issue.Field != "" {
		line += theme.Hint.Render(" (" + issue.Field + ")")
	}
	return line
}

// writeContentSummary prints the top level of the structured content
// without trusting its shape.
func writeContentSummary(b *strings.Builder, content map[string]any) {
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := content[k].(type) {
		case string:
			writeField(b, k, truncateLine(v, 80))
		case float64:
			writeField(b, k, fmt.Sprintf("%v", v))
		case bool:
			writeField(b, k, fmt.Sprintf("%v", v))
		case []any:
			writeField(b, k, fmt.Sprintf("%d položek", len(v)))
		case map[string]any:
			writeField(b, k, fmt.Sprintf("%d polí", len(v)))
		}
	}
}

func docTitle(doc *generator.Document) string {
	if t, ok := doc.Content["title"].(string); ok && t != "" {
		return t
	}
	return "Vygenerovaný materiál"
}

func writeHeading(b *strings.Builder, text string) {
	b.WriteString("  " + theme.Selected.Render(text) + "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("  " + theme.Hint.Render(label+":") + " " + theme.Body.Render(value) + "\n")
}

func writeItem(b *strings.Builder, text string) {
	b.WriteString("  " + theme.Body.Render("• "+text) + "\n")
}

func truncateLine(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
