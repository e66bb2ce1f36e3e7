package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mhruby/kantor/internal/ui/theme"
)

// ScoreBar displays a quality score in [0, 1] as a horizontal bar with
// a color that follows the score band.
type ScoreBar struct {
	Label string
	Score float64
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score float64, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// fillColor picks the bar color for the score band.
// Bands match the validity threshold used by the quality validator.
func (s ScoreBar) fillColor() color.Color {
	switch {
	case s.Score >= 0.8:
		return theme.Success
	case s.Score >= 0.6:
		return theme.Warning
	default:
		return theme.Error
	}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	score := s.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	var result string
	if s.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // " 100%"

	barWidth := s.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * score)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(s.fillColor()).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d%%", int(score*100)))

	return result
}
