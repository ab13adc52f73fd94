package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgauge/assess-engine/internal/scoring"
)

func interviewResult() *scoring.SessionResult {
	return &scoring.SessionResult{
		SessionID:       "sess-9",
		RespondentName:  "Dana",
		Instrument:      scoring.InstrumentCombinedInterview,
		InstrumentName:  "interview",
		CompletedAt:     time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		DurationSeconds: 1500,
		FinalScore:      100,
		Logic: &scoring.LogicResult{
			Total:    10,
			Correct:  9,
			Wrong:    1,
			Accuracy: 90,
		},
		Traits: &scoring.TraitResult{
			Scores: scoring.TraitScores{"D": 4, "I": 2, "S": 0, "C": 0},
			Ranked: []scoring.DominantTrait{
				{ID: "D", Name: "Dominance", Score: 4, Percentage: 4.0 / 6},
				{ID: "I", Name: "Influence", Score: 2, Percentage: 2.0 / 6},
				{ID: "S", Name: "Steadiness"},
				{ID: "C", Name: "Compliance"},
			},
			Dominant: []scoring.DominantTrait{
				{ID: "D", Name: "Dominance", Score: 4, Percentage: 4.0 / 6},
				{ID: "I", Name: "Influence", Score: 2, Percentage: 2.0 / 6},
			},
			Characteristics: []string{"assertive", "sociable"},
			Summary:         "The results point to a primarily Dominance profile.",
		},
		OverallSummary: "The assessment was completed in 25 minutes.",
	}
}

func TestRenderSectionsInOrder(t *testing.T) {
	text := Render(interviewResult())

	markers := []string{
		"Assessment Result Report",
		"Name:       Dana",
		"Session:    sess-9",
		"I. Logical Reasoning Results",
		"II. Personality Trait Results",
		"III. Overall Evaluation",
		"Important notice:",
		"--- End of Report ---",
	}

	pos := -1
	for _, marker := range markers {
		idx := strings.Index(text, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section marker %q", marker)
		assert.Greater(t, idx, pos, "section %q out of order", marker)
		pos = idx
	}
}

func TestRenderHeader(t *testing.T) {
	text := Render(interviewResult())

	assert.Contains(t, text, "Completed:  2025-03-10 09:30:00")
	assert.Contains(t, text, "Duration:   25 minutes")
}

func TestRenderLogicSection(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		correct  int
		wrong    int
		rating   string
	}{
		{name: "excellent at 90", accuracy: 90, correct: 9, wrong: 1, rating: "Rating: excellent"},
		{name: "good at 70", accuracy: 70, correct: 7, wrong: 3, rating: "Rating: good"},
		{name: "needs improvement at 40", accuracy: 40, correct: 4, wrong: 6, rating: "Rating: needs improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := interviewResult()
			result.Logic.Accuracy = tt.accuracy
			result.Logic.Correct = tt.correct
			result.Logic.Wrong = tt.wrong

			text := Render(result)

			assert.Contains(t, text, tt.rating)
			assert.Contains(t, text, "Total questions: 10")
		})
	}
}

func TestRenderTraitSection(t *testing.T) {
	text := Render(interviewResult())

	assert.Contains(t, text, "1. Dominance (66.7%)")
	assert.Contains(t, text, "2. Influence (33.3%)")
	assert.Contains(t, text, " * assertive")
	assert.Contains(t, text, " * sociable")
	assert.Contains(t, text, "The results point to a primarily Dominance profile.")
}

func TestRenderOmitsMissingSubResults(t *testing.T) {
	result := interviewResult()
	result.Logic = nil
	result.Traits = nil

	text := Render(result)

	assert.NotContains(t, text, "I. Logical Reasoning Results")
	assert.NotContains(t, text, "II. Personality Trait Results")
	assert.Contains(t, text, "III. Overall Evaluation")
}

func TestRenderEmptyDominantList(t *testing.T) {
	result := interviewResult()
	result.Traits.Dominant = nil
	result.Traits.Characteristics = nil

	text := Render(result)

	assert.Contains(t, text, "(none reached the selection threshold)")
}

func TestRenderIsPure(t *testing.T) {
	result := interviewResult()

	first := Render(result)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(result))
	}
}
