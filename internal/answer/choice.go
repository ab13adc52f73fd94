package answer

import "strings"

// choiceOrder is the fixed option alphabet. Canonical answers are ascending
// subsequences of it.
const choiceOrder = "ABCD"

// Normalize canonicalizes a raw choice answer: case folding, keeping only the
// letters A-D, deduplicating and sorting in alphabet order. Separators,
// whitespace and any other characters are ignored, so "ca" -> "AC",
// "A,C,D" -> "ACD", "ABBA" -> "AB". Any input without a valid letter,
// including the empty string, normalizes to "".
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	upper := strings.ToUpper(raw)
	var seen [len(choiceOrder)]bool
	for _, ch := range upper {
		if idx := strings.IndexRune(choiceOrder, ch); idx >= 0 {
			seen[idx] = true
		}
	}

	var b strings.Builder
	for i := 0; i < len(choiceOrder); i++ {
		if seen[i] {
			b.WriteByte(choiceOrder[i])
		}
	}
	return b.String()
}

// IsCorrect reports whether the selected answer matches the correct key under
// full set equality after normalization. A partial selection is wrong, and so
// is an over-selection; there is no subset credit.
func IsCorrect(selected, correct string) bool {
	return Normalize(selected) == Normalize(correct)
}
