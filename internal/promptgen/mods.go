package promptgen

import (
	"regexp"
	"strings"

	"github.com/mhruby/kantor/internal/material"
)

// ApplyModifications folds the ordered modification list over the
// prompt. Each step is a pure (prompt, modification) → prompt function,
// so the strict ordering contract stays explicit and each modification
// type is testable on its own.
func ApplyModifications(prompt string, mods []material.PromptModification) string {
	for _, mod := range mods {
		prompt = applyModification(prompt, mod)
	}
	return prompt
}

func applyModification(prompt string, mod material.PromptModification) string {
	switch mod.Type {
	case material.ModPrepend:
		return mod.Content + "\n\n" + prompt
	case material.ModAppend:
		return prompt + "\n\n" + mod.Content
	case material.ModReplace:
		return replaceAll(prompt, mod.Target, mod.Content)
	case material.ModInject:
		return injectAfter(prompt, mod.Target, mod.Content)
	default:
		// Unknown modification types no-op rather than fail: subtype
		// catalogs are configuration, and configuration must not be
		// able to break prompt assembly.
		return prompt
	}
}

// replaceAll performs a case-insensitive global replacement of target.
// A missing or empty target silently no-ops.
func replaceAll(prompt, target, content string) string {
	if target == "" {
		return prompt
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(target))
	if err != nil {
		return prompt
	}
	return re.ReplaceAllLiteralString(prompt, content)
}

// injectAfter splices content on a new line immediately after the first
// literal occurrence of target. A missing target silently no-ops.
func injectAfter(prompt, target, content string) string {
	if target == "" {
		return prompt
	}
	idx := strings.Index(prompt, target)
	if idx < 0 {
		return prompt
	}
	end := idx + len(target)
	return prompt[:end] + "\n" + content + prompt[end:]
}
