package structurer

import (
	"fmt"
	"sort"
	"strings"
)

// sortedKeys keeps map walks deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getString returns content[key] as a string, or "" when the key is
// missing or holds a different type.
func getString(content Content, key string) string {
	s, _ := content[key].(string)
	return s
}

// getSlice returns content[key] as a []any, or nil when the key is
// missing or holds a different type.
func getSlice(content Content, key string) []any {
	s, _ := content[key].([]any)
	return s
}

// getMap returns content[key] as a nested map, or nil.
func getMap(content Content, key string) Content {
	m, _ := content[key].(map[string]any)
	return m
}

// itemString renders one slice element as text. Maps contribute their
// common textual fields; scalars are formatted directly.
func itemString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		var parts []string
		for _, key := range []string{"title", "name", "problem", "question", "text", "description", "content", "instructions", "answer"} {
			if s, ok := t[key].(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// flattenText collects all string values reachable in the content into
// a single space-joined text, walking maps and slices recursively.
// Used by analyses that only care about the words, not the shape.
func flattenText(v any) string {
	var sb strings.Builder
	collectText(v, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(v any, sb *strings.Builder) {
	switch t := v.(type) {
	case string:
		sb.WriteString(t)
		sb.WriteString(" ")
	case map[string]any:
		for _, key := range sortedKeys(t) {
			collectText(t[key], sb)
		}
	case []any:
		for _, item := range t {
			collectText(item, sb)
		}
	}
}

// depth returns the nesting depth of the value. A scalar has depth 0,
// a flat map or slice depth 1.
func depth(v any) int {
	switch t := v.(type) {
	case map[string]any:
		max := 0
		for _, child := range t {
			if d := depth(child); d > max {
				max = d
			}
		}
		return max + 1
	case []any:
		max := 0
		for _, child := range t {
			if d := depth(child); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 0
	}
}

// deepCopy clones JSON-shaped values so reorganization never mutates
// the caller's content.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = deepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = deepCopy(child)
		}
		return out
	default:
		return t
	}
}

func copyContent(content Content) Content {
	c, _ := deepCopy(content).(map[string]any)
	return c
}
