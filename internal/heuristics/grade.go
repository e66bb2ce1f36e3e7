package heuristics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GradeUndetermined is returned when no grade pattern matches.
const GradeUndetermined = "neurčeno"

var (
	elementaryGradeRe = regexp.MustCompile(`(\d)\.?\s*(?:tříd(?:a|y|ě|u|ou)|tř\.)`)
	yearGradeRe       = regexp.MustCompile(`(\d)\.?\s*(?:ročník|ročníku|ročníkem)`)
	secondaryHintRe   = regexp.MustCompile(`(?i)(?:sš|střední škol|gymnázi|maturit)`)
)

// DetectGradeLevel extracts a grade label from the text. "N. třída"
// always reads as elementary school for grades 1-9. "N. ročník" reads
// as secondary school for years 1-4 when the text mentions a secondary
// school, otherwise as the matching elementary grade. No match yields
// "neurčeno".
func DetectGradeLevel(text string) string {
	lower := strings.ToLower(text)

	if m := elementaryGradeRe.FindStringSubmatch(lower); m != nil {
		if n := parseGradeDigit(m[1]); n >= 1 && n <= 9 {
			return fmt.Sprintf("%d. třída ZŠ", n)
		}
	}

	if m := yearGradeRe.FindStringSubmatch(lower); m != nil {
		n := parseGradeDigit(m[1])
		if n >= 1 && n <= 4 && secondaryHintRe.MatchString(lower) {
			return fmt.Sprintf("%d. ročník SŠ", n)
		}
		if n >= 1 && n <= 9 {
			return fmt.Sprintf("%d. třída ZŠ", n)
		}
	}

	return GradeUndetermined
}

func parseGradeDigit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
