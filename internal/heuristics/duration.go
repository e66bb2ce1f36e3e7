package heuristics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	minutesRe    = regexp.MustCompile(`(\d+)\s*(?:minut|min\b|min\.)`)
	hoursRe      = regexp.MustCompile(`(\d+)\s*(?:hodin|hod\b|hod\.)`)
	classHourRe  = regexp.MustCompile(`(?:vyučovací|jedna)\s+hodin`)
	doubleHourRe = regexp.MustCompile(`dvouhodinov`)
)

// EstimateDuration returns the first explicit time expression found in
// the text, or a default derived from text length. Longer descriptions
// tend to describe longer activities, so the defaults scale with word
// count.
func EstimateDuration(text string) string {
	lower := strings.ToLower(text)

	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		return m[1] + " min"
	}
	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d %s", n, hourWord(n))
	}
	if doubleHourRe.MatchString(lower) {
		return "90 min"
	}
	if classHourRe.MatchString(lower) {
		return "45 min"
	}

	switch words := len(Words(text)); {
	case words < 50:
		return "20 min"
	case words < 100:
		return "45 min"
	case words < 200:
		return "90 min"
	default:
		return "2 hodiny"
	}
}

func hourWord(n int) string {
	switch {
	case n == 1:
		return "hodina"
	case n >= 2 && n <= 4:
		return "hodiny"
	default:
		return "hodin"
	}
}
