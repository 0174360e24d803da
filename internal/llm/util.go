// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanCodeFence removes markdown code-fence wrappers from a model reply.
// The model often wraps structured output in ```json ... ``` blocks even when
// instructed not to; downstream parsers want the bare payload.
func CleanCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Skip a language identifier such as "json" on the fence line, but
		// keep the line when the payload itself starts there.
		first := strings.TrimSpace(text[:idx])
		if first == "" || (len(first) < 20 && !strings.ContainsAny(first, " [{\"")) {
			text = text[idx+1:]
		}
	} else {
		// Single-line fenced payload.
		text = strings.TrimPrefix(text, "json")
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}
