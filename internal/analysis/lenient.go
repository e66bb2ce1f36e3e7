package analysis

// Lenient coercion of untrusted model output. The model is asked for a
// fixed JSON shape but is not guaranteed to honor it, so every field is
// coerced defensively: array-or-empty, string-or-default,
// number-or-default. Keeping the coercions here avoids re-deriving ad
// hoc defaults at each call site.

// ExtractJSONObject returns the first balanced-brace JSON object
// substring of text, or "" if none exists. It is a brace-matching scan,
// not a parser: strings containing braces are handled, but the result
// still has to survive json.Unmarshal.
func ExtractJSONObject(text string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// stringOr coerces v to a non-empty string, falling back to def.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// stringSliceOr coerces v to a string slice. Non-arrays and non-string
// elements yield an empty slice / are skipped.
func stringSliceOr(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// floatOr coerces v to a float64 in [0,1], falling back to def.
func floatOr(v any, def float64) float64 {
	f, ok := v.(float64)
	if !ok {
		return def
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
