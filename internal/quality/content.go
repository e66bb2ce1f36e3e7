package quality

import (
	"fmt"
	"strings"
)

func getString(content Content, key string) string {
	s, _ := content[key].(string)
	return s
}

func getSlice(content Content, key string) []any {
	s, _ := content[key].([]any)
	return s
}

// fieldPresent reports whether a required field carries usable data.
// Empty strings and empty collections count as missing.
func fieldPresent(content Content, key string) bool {
	v, ok := content[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// questionText returns the text of one question-like item.
func questionText(item any) string {
	m, ok := item.(map[string]any)
	if !ok {
		if s, isStr := item.(string); isStr {
			return s
		}
		return ""
	}
	for _, key := range []string{"problem", "question", "text"} {
		if s := getString(m, key); s != "" {
			return s
		}
	}
	return ""
}

// objectiveStrings reads learning objectives from either of the field
// names generated content uses.
func objectiveStrings(content Content) []string {
	var out []string
	for _, key := range []string{"objectives", "learning_objectives"} {
		for _, v := range getSlice(content, key) {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// instructionStrings collects instruction text for clarity scoring.
func instructionStrings(content Content) []string {
	var out []string
	if s := getString(content, "instructions"); s != "" {
		out = append(out, s)
	}
	for _, v := range getSlice(content, "instructions") {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// allText joins the string values of the content for keyword scans.
func allText(v any) string {
	var sb strings.Builder
	appendText(v, &sb)
	return sb.String()
}

func appendText(v any, sb *strings.Builder) {
	switch t := v.(type) {
	case string:
		sb.WriteString(t)
		sb.WriteString(" ")
	case map[string]any:
		for _, child := range t {
			appendText(child, sb)
		}
	case []any:
		for _, child := range t {
			appendText(child, sb)
		}
	case float64, int, bool:
		fmt.Fprintf(sb, "%v ", t)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
