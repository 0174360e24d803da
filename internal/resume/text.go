package resume

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes extracted résumé text: line endings become LF, runs of
// spaces collapse to one, and blank-line runs collapse to a single separator.
// The result feeds a prompt, so layout fidelity matters less than compactness.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// Truncate caps text at max bytes, dropping any partial rune at the cut.
// Model prompts carry only the head of the résumé.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return strings.ToValidUTF8(text[:max], "")
}
