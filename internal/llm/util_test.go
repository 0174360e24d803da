package llm

import (
	"testing"
)

func TestCleanCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n[\"Data Scientist | India\"]\n```",
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "generic code block",
			input:    "```\n[\"Data Scientist | India\"]\n```",
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "code block with language",
			input:    "```python\n[\"Data Scientist | India\"]\n```",
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "payload on fence line",
			input:    "```[\"Data Scientist | India\"]\n```",
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "single line fenced payload",
			input:    "```json [\"Data Scientist | India\"]```",
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "plain payload untouched",
			input:    `["Data Scientist | India"]`,
			expected: `["Data Scientist | India"]`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n```json\n[\"a | b\"]\n```\n  ",
			expected: `["a | b"]`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanCodeFence(tt.input)
			if result != tt.expected {
				t.Errorf("CleanCodeFence() = %q, want %q", result, tt.expected)
			}
		})
	}
}
