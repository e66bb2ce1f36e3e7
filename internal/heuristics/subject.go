package heuristics

import "strings"

// DetectSubject returns the first subject in the fixed table order with
// a keyword hit, or "obecný" when nothing matches. Table order is part
// of the contract: a text mentioning both fractions and history is a
// math text.
func DetectSubject(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range subjectTable {
		if containsAny(lower, entry.Keywords) {
			return entry.Subject
		}
	}
	return SubjectGeneral
}
