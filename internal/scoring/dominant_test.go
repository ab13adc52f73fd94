package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discCatalog = []TraitInfo{
	{ID: "D", Name: "Dominance"},
	{ID: "I", Name: "Influence"},
	{ID: "S", Name: "Steadiness"},
	{ID: "C", Name: "Compliance"},
}

func TestRankTraits(t *testing.T) {
	scores := TraitScores{"D": 1, "I": 4, "S": 3, "C": 2}

	ranked := RankTraits(scores, discCatalog)

	require.Len(t, ranked, 4)
	assert.Equal(t, "I", ranked[0].ID)
	assert.Equal(t, "S", ranked[1].ID)
	assert.Equal(t, "C", ranked[2].ID)
	assert.Equal(t, "D", ranked[3].ID)
	assert.Equal(t, 0.4, ranked[0].Percentage)
}

func TestRankTraitsPercentageInvariant(t *testing.T) {
	tables := []TraitScores{
		{"D": 1, "I": 4, "S": 3, "C": 2},
		{"D": 0, "I": 0, "S": 0, "C": 0},
		{"D": 5, "I": 5, "S": 5, "C": 5},
		{"D": 7, "I": 0, "S": 0, "C": 0},
	}

	for _, scores := range tables {
		ranked := RankTraits(scores, discCatalog)

		sum := 0.0
		for _, tr := range ranked {
			assert.GreaterOrEqual(t, tr.Percentage, 0.0)
			sum += tr.Percentage
		}
		// sum is exactly 0 only when every score is 0, otherwise 1
		if sum != 0 {
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func TestRankTraitsZeroTotal(t *testing.T) {
	ranked := RankTraits(TraitScores{"D": 0, "I": 0, "S": 0, "C": 0}, discCatalog)

	for _, tr := range ranked {
		assert.Equal(t, 0.0, tr.Percentage, "zero total must never surface NaN")
	}
	// ties at score 0 keep catalog declaration order
	assert.Equal(t, "D", ranked[0].ID)
	assert.Equal(t, "I", ranked[1].ID)
	assert.Equal(t, "S", ranked[2].ID)
	assert.Equal(t, "C", ranked[3].ID)
}

func TestThresholdPolicy(t *testing.T) {
	tests := []struct {
		name      string
		scores    TraitScores
		threshold float64
		expected  []string
	}{
		{
			name:      "includes every trait reaching the threshold",
			scores:    TraitScores{"D": 4, "I": 4, "S": 1, "C": 1},
			threshold: 0.3,
			expected:  []string{"D", "I"},
		},
		{
			name:      "no qualifying trait yields an empty list",
			scores:    TraitScores{"D": 1, "I": 1, "S": 1, "C": 1},
			threshold: 0.3,
			expected:  []string{},
		},
		{
			name:      "zero total yields an empty list",
			scores:    TraitScores{"D": 0, "I": 0, "S": 0, "C": 0},
			threshold: 0.3,
			expected:  []string{},
		},
		{
			name:      "single trait holding the whole total",
			scores:    TraitScores{"D": 0, "I": 6, "S": 0, "C": 0},
			threshold: 0.3,
			expected:  []string{"I"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dominant := SelectDominant(tt.scores, discCatalog, ThresholdPolicy{Threshold: tt.threshold})

			ids := make([]string, 0, len(dominant))
			for _, d := range dominant {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestTopNPolicy(t *testing.T) {
	tests := []struct {
		name     string
		scores   TraitScores
		n        int
		expected []string
	}{
		{
			name:     "takes the top three",
			scores:   TraitScores{"D": 4, "I": 3, "S": 2, "C": 1},
			n:        3,
			expected: []string{"D", "I", "S"},
		},
		{
			name:     "a tie at the cutoff pulls in the fourth trait",
			scores:   TraitScores{"D": 5, "I": 5, "S": 5, "C": 5},
			n:        3,
			expected: []string{"D", "I", "S", "C"},
		},
		{
			name:     "zero scores are excluded regardless of rank",
			scores:   TraitScores{"D": 3, "I": 2, "S": 0, "C": 0},
			n:        3,
			expected: []string{"D", "I"},
		},
		{
			name:     "all zero yields an empty list",
			scores:   TraitScores{"D": 0, "I": 0, "S": 0, "C": 0},
			n:        3,
			expected: []string{},
		},
		{
			name:     "tie below the cutoff does not expand the list",
			scores:   TraitScores{"D": 4, "I": 3, "S": 2, "C": 1},
			n:        2,
			expected: []string{"D", "I"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dominant := SelectDominant(tt.scores, discCatalog, TopNPolicy{N: tt.n})

			ids := make([]string, 0, len(dominant))
			for _, d := range dominant {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSelectDominantDeterministicOnTies(t *testing.T) {
	scores := TraitScores{"D": 2, "I": 2, "S": 2, "C": 1}

	first := SelectDominant(scores, discCatalog, TopNPolicy{N: 3})
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, SelectDominant(scores, discCatalog, TopNPolicy{N: 3}))
	}
}
