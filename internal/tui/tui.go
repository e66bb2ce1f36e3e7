// Package tui is the interactive preview surface. It offers a compose
// screen (pick a material type, describe the assignment) and a
// scrollable report screen showing the analysis or a generated
// document with its validation result.
package tui

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mhruby/kantor/internal/analysis"
	"github.com/mhruby/kantor/internal/generator"
	"github.com/mhruby/kantor/internal/llm"
	"github.com/mhruby/kantor/internal/material"
	"github.com/mhruby/kantor/internal/ui/layout"
)

// Options configures the preview application.
type Options struct {
	// Provider may be nil; analysis then takes the heuristic path.
	Provider llm.Provider

	// Document, when set, opens the report screen directly instead of
	// the compose screen.
	Document *generator.Document
}

type phase int

const (
	phaseCompose phase = iota
	phaseAnalyzing
	phaseReport
)

type focusArea int

const (
	focusMenu focusArea = iota
	focusInput
)

// typeChosenMsg is emitted when the user confirms a material type.
type typeChosenMsg struct {
	materialType material.Type
}

// analysisDoneMsg carries the finished assignment analysis.
type analysisDoneMsg struct {
	assignment *analysis.Assignment
}

type previewModel struct {
	opts Options

	phase phase
	focus focusArea

	compose composeState

	assignment *analysis.Assignment
	document   *generator.Document

	// report scroll state
	lines  []string
	offset int

	width  int
	height int
}

func newPreviewModel(opts Options) previewModel {
	m := previewModel{
		opts:    opts,
		compose: newComposeState(),
	}
	if opts.Document != nil {
		m.document = opts.Document
		m.phase = phaseReport
		m.lines = documentReport(opts.Document)
	}
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case typeChosenMsg:
		m.compose.materialType = msg.materialType
		m.focus = focusInput
		return m, m.compose.input.Init()

	case analysisDoneMsg:
		m.assignment = msg.assignment
		m.lines = assignmentReport(msg.assignment)
		m.offset = 0
		m.phase = phaseReport
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch m.phase {
		case phaseReport:
			// A document preview has no compose screen to go back to.
			if m.opts.Document != nil {
				return m, tea.Quit
			}
			m.phase = phaseCompose
			m.focus = focusMenu
			m.compose.input.Reset()
			return m, nil
		case phaseCompose:
			if m.focus == focusInput {
				m.focus = focusMenu
				return m, nil
			}
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.phase {
	case phaseCompose:
		if m.focus == focusInput && msg.String() == "enter" {
			description := m.compose.input.Value()
			if description == "" {
				return m, nil
			}
			m.phase = phaseAnalyzing
			return m, m.analyzeCmd(description)
		}
		return m.forward(msg)

	case phaseReport:
		m.scroll(msg.String())
		return m, nil
	}

	return m, nil
}

// forward routes a message to the focused compose component.
func (m previewModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase != phaseCompose {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusMenu {
		m.compose.menu, cmd = m.compose.menu.Update(msg)
	} else {
		m.compose.input, cmd = m.compose.input.Update(msg)
	}
	return m, cmd
}

func (m *previewModel) scroll(key string) {
	page := m.contentHeight() - 2
	if page < 1 {
		page = 1
	}

	switch key {
	case "up", "k":
		m.offset--
	case "down", "j":
		m.offset++
	case "pgup":
		m.offset -= page
	case "pgdown", " ":
		m.offset += page
	case "home", "g":
		m.offset = 0
	case "end", "G":
		m.offset = len(m.lines)
	}

	max := len(m.lines) - m.contentHeight()
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m previewModel) analyzeCmd(description string) tea.Cmd {
	provider := m.opts.Provider
	return func() tea.Msg {
		analyzer := analysis.New(provider, analysis.DefaultConfig())
		return analysisDoneMsg{
			assignment: analyzer.Analyze(context.Background(), description),
		}
	}
}

func (m previewModel) contentHeight() int {
	// header and footer are single bordered rows (3 lines each)
	h := m.height - 6
	if h < 0 {
		return 0
	}
	return h
}

func (m previewModel) title() string {
	switch m.phase {
	case phaseCompose:
		return "Nový materiál"
	case phaseAnalyzing:
		return "Analyzuji zadání"
	case phaseReport:
		if m.document != nil {
			return "Náhled dokumentu"
		}
		return "Rozbor zadání"
	}
	return ""
}

func (m previewModel) badge() string {
	if m.document != nil {
		return typeLabel(m.document.MaterialType)
	}
	if m.compose.materialType != "" {
		return typeLabel(m.compose.materialType)
	}
	return ""
}

func (m previewModel) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseReport:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Posun"},
			{Key: "PgUp/PgDn", Description: "Stránka"},
			{Key: "Esc", Description: "Zpět"},
			{Key: "Ctrl+C", Description: "Konec"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Výběr"},
			{Key: "Enter", Description: "Potvrdit"},
			{Key: "Esc", Description: "Zpět"},
			{Key: "Ctrl+C", Description: "Konec"},
		}
	}
}

func (m previewModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.badge(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch m.phase {
	case phaseCompose:
		content = m.compose.view(m.focus, m.width)
	case phaseAnalyzing:
		content = renderWorking(m.width, contentHeight)
	case phaseReport:
		content = m.renderReport(contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m previewModel) renderReport(height int) string {
	if len(m.lines) == 0 {
		return ""
	}

	end := m.offset + height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	start := m.offset
	if start > end {
		start = end
	}

	visible := m.lines[start:end]
	out := ""
	for i, line := range visible {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// Run starts the preview program.
func Run(opts Options) error {
	p := tea.NewProgram(newPreviewModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
