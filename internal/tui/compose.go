package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/ui/components"
	"github.com/mhruby/kantor/internal/ui/theme"
)

// typeLabels are the Czech display names for material types.
var typeLabels = map[material.Type]string{
	material.TypeWorksheet:    "Pracovní list",
	material.TypeLessonPlan:   "Plán hodiny",
	material.TypeQuiz:         "Kvíz",
	material.TypePresentation: "Prezentace",
	material.TypeProject:      "Projekt",
	material.TypeActivity:     "Aktivita",
}

var typeDescriptions = map[material.Type]string{
	material.TypeWorksheet:    "Sada úloh k samostatnému procvičování",
	material.TypeLessonPlan:   "Struktura vyučovací hodiny s aktivitami a časy",
	material.TypeQuiz:         "Otázky s bodováním pro ověření znalostí",
	material.TypePresentation: "Snímky s osnovou výkladu",
	material.TypeProject:      "Dlouhodobější zadání s fázemi a hodnocením",
	material.TypeActivity:     "Krátká aktivita do hodiny",
}

func typeLabel(t material.Type) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// composeState holds the compose screen widgets.
type composeState struct {
	menu         components.Menu
	input        components.TextInput
	materialType material.Type
}

func newComposeState() composeState {
	items := make([]components.MenuItem, 0, len(material.AllTypes))
	for _, t := range material.AllTypes {
		mt := t
		items = append(items, components.MenuItem{
			Label:       typeLabel(mt),
			Description: typeDescriptions[mt],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return typeChosenMsg{materialType: mt}
				}
			},
		})
	}

	return composeState{
		menu:  components.NewMenu(items),
		input: components.NewTextInput("Popište zadání, např. „procvičit zlomky pro 6. třídu“", 500),
	}
}

func (c composeState) view(focus focusArea, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Jaký materiál připravujeme?"))
	b.WriteString("\n\n")
	b.WriteString(c.menu.View())
	b.WriteString("\n")

	label := theme.Body.Render("  Zadání:")
	if focus == focusInput {
		label = theme.Selected.Render("  Zadání:")
	}
	b.WriteString(label)
	b.WriteString("\n  ")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	if focus == focusMenu {
		b.WriteString(theme.Hint.Render("  Enter vybere typ materiálu a přepne na zadání."))
	} else {
		b.WriteString(theme.Hint.Render("  Enter spustí rozbor zadání."))
	}

	return b.String()
}

// renderWorking renders the transient analyzing message.
func renderWorking(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Analyzuji zadání…")
}
