package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "sorts lowercase letters",
			input:    "ca",
			expected: "AC",
		},
		{
			name:     "ignores separators",
			input:    "A,C,D",
			expected: "ACD",
		},
		{
			name:     "deduplicates repeated letters",
			input:    "ABBA",
			expected: "AB",
		},
		{
			name:     "strips whitespace and punctuation",
			input:    "  d ; b  ",
			expected: "BD",
		},
		{
			name:     "drops letters outside the alphabet",
			input:    "XYZ",
			expected: "",
		},
		{
			name:     "keeps valid letters among invalid ones",
			input:    "x A! e C?",
			expected: "AC",
		},
		{
			name:     "full alphabet in reverse",
			input:    "dcba",
			expected: "ABCD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{"", "ca", "A,C,D", "ABBA", "dcba", "hello world", "a b c d a b"}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", input)
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		correct  string
		expected bool
	}{
		{
			name:     "exact match",
			selected: "A",
			correct:  "A",
			expected: true,
		},
		{
			name:     "order insensitive match",
			selected: "CA",
			correct:  "AC",
			expected: true,
		},
		{
			name:     "case and whitespace insensitive match",
			selected: "ca ",
			correct:  "AC",
			expected: true,
		},
		{
			name:     "partial selection is wrong",
			selected: "A",
			correct:  "AC",
			expected: false,
		},
		{
			name:     "over-selection is wrong",
			selected: "ABC",
			correct:  "AC",
			expected: false,
		},
		{
			name:     "empty selection against a key is wrong",
			selected: "",
			correct:  "B",
			expected: false,
		},
		{
			name:     "both empty match",
			selected: "",
			correct:  "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCorrect(tt.selected, tt.correct))
		})
	}
}
