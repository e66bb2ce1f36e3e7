package components

import (
	"image/color"
	"strings"
	"testing"

	"github.com/mhruby/kantor/internal/ui/theme"
)

func TestScoreBarShowsPercent(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.0, "0%"},
		{0.5, "50%"},
		{1.0, "100%"},
		{1.7, "100%"}, // clamped
		{-0.3, "0%"},  // clamped
	}

	for _, tc := range cases {
		view := NewScoreBar("Kvalita", tc.score, 40).View()
		if !strings.Contains(view, tc.want) {
			t.Errorf("ScoreBar(%v) = %q, want it to contain %q", tc.score, view, tc.want)
		}
	}
}

func TestScoreBarFillColorBands(t *testing.T) {
	cases := []struct {
		score float64
		want  color.Color
	}{
		{0.95, theme.Success},
		{0.8, theme.Success},
		{0.7, theme.Warning},
		{0.6, theme.Warning},
		{0.3, theme.Error},
	}

	for _, tc := range cases {
		if got := NewScoreBar("", tc.score, 40).fillColor(); got != tc.want {
			t.Errorf("fillColor(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestScoreBarIncludesLabel(t *testing.T) {
	view := NewScoreBar("Srozumitelnost", 0.8, 40).View()
	if !strings.Contains(view, "Srozumitelnost") {
		t.Errorf("ScoreBar view %q missing label", view)
	}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial Selected = %d, want 1", m.Selected)
	}
}
