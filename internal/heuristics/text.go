package heuristics

import (
	"regexp"
	"strings"
)

// Word and sentence primitives shared by the analyzer and the validator.
// All functions are total: empty or degenerate input yields zero values,
// never a panic.

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	// Letters only, including Czech diacritics. Used to filter tokens
	// down to real words.
	czechWordRe = regexp.MustCompile(`^[a-záčďéěíňóřšťúůýž]+$`)
)

// Sentences splits text into non-empty sentences.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words tokenizes text on whitespace, dropping empty tokens.
func Words(text string) []string {
	var out []string
	for _, w := range whitespaceRe.Split(text, -1) {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// AvgSentenceLength returns the mean number of words per sentence.
func AvgSentenceLength(text string) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(Words(s))
	}
	return float64(total) / float64(len(sentences))
}

// AvgWordLength returns the mean rune length of the content words in
// text. Stop words and non-word tokens are excluded so the metric
// tracks vocabulary rather than grammar.
func AvgWordLength(text string) float64 {
	words := Words(strings.ToLower(text))
	total, count := 0, 0
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?()\"'")
		if w == "" || IsStopWord(w) || !czechWordRe.MatchString(w) {
			continue
		}
		total += len([]rune(w))
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// containsAny reports whether the lower-cased haystack contains any of
// the given stems.
func containsAny(lower string, stems []string) bool {
	for _, s := range stems {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// countMatches counts how many of the stems occur in the lower-cased
// haystack (each stem counted at most once).
func countMatches(lower string, stems []string) int {
	n := 0
	for _, s := range stems {
		if strings.Contains(lower, s) {
			n++
		}
	}
	return n
}

// MatchedStems returns the stems that occur in the lower-cased haystack,
// preserving table order.
func MatchedStems(lower string, stems []string) []string {
	var out []string
	for _, s := range stems {
		if strings.Contains(lower, s) {
			out = append(out, s)
		}
	}
	return out
}

// ContainsActionVerb reports whether text contains any action verb stem.
func ContainsActionVerb(text string) bool {
	return containsAny(strings.ToLower(text), ActionVerbs)
}

// ContainsInterrogative reports whether text starts a question with an
// interrogative word.
func ContainsInterrogative(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range InterrogativeWords {
		if strings.HasPrefix(lower, w+" ") || strings.Contains(lower, " "+w+" ") {
			return true
		}
	}
	return false
}

// FindInappropriate returns the inappropriate-content keywords found in
// text, or nil if it is clean.
func FindInappropriate(text string) []string {
	return MatchedStems(strings.ToLower(text), InappropriateKeywords)
}
