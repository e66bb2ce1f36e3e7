package quality

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// variableLiteral replaces algebraic unknowns before the arithmetic
// sanity check. This makes the check shallow on purpose: it can only
// catch equations that are wrong for every value of the variable.
const variableLiteral = "2"

var (
	equationRe = regexp.MustCompile(`((?:\d+(?:[.,]\d+)?|[a-z])(?:\s*[+\-*/×÷:]\s*(?:\d+(?:[.,]\d+)?|[a-z]))*)\s*=\s*(-?\d+(?:[.,]\d+)?)`)
	binaryRe   = regexp.MustCompile(`^\s*(-?\d+(?:[.,]\d+)?)\s*([+\-*/×÷:])\s*(\d+(?:[.,]\d+)?)\s*$`)
	variableRe = regexp.MustCompile(`\b[a-z]\b`)
)

// validateAccuracy combines the structural score with a shallow
// arithmetic sanity check over every "a op b = c" expression found in
// the text. Each mismatch multiplies the score by 0.3 and raises a
// math error. Expressions the check cannot reduce to a single binary
// operation are assumed valid.
func validateAccuracy(content Content, structureScore float64) (float64, []Issue) {
	score := structureScore
	var issues []Issue

	text := strings.ToLower(allText(content))
	for _, m := range equationRe.FindAllStringSubmatch(text, -1) {
		substituted := variableRe.MatchString(m[1])
		lhs := variableRe.ReplaceAllString(m[1], variableLiteral)
		expected, err := parseNumber(m[2])
		if err != nil {
			continue
		}
		value, ok := evalBinary(lhs)
		if !ok {
			// A bare variable equated to a number says nothing once
			// the variable is replaced with a literal.
			if substituted {
				continue
			}
			value, err = parseNumber(lhs)
			if err != nil {
				continue
			}
		}
		if math.Abs(value-expected) > 1e-6 {
			score *= 0.3
			issues = append(issues, Issue{
				Type:       IssueError,
				Category:   CategoryMath,
				Message:    fmt.Sprintf("výpočet %q nevychází, správný výsledek je %v", strings.TrimSpace(m[0]), value),
				Suggestion: "Zkontroluj číselné výsledky ve vygenerovaných úlohách.",
			})
		}
	}
	return clamp01(score), issues
}

// evalBinary evaluates a single "a op b" expression. Anything more
// complex reports false and is skipped by the caller.
func evalBinary(expr string) (float64, bool) {
	m := binaryRe.FindStringSubmatch(expr)
	if m == nil {
		return 0, false
	}
	a, errA := parseNumber(m[1])
	b, errB := parseNumber(m[3])
	if errA != nil || errB != nil {
		return 0, false
	}
	switch m[2] {
	case "+":
		return a + b, true
	case "-":
		return a - b, true
	case "*", "×":
		return a * b, true
	case "/", "÷", ":":
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
