package scoring

import (
	"math"
	"sort"

	"github.com/talentgauge/assess-engine/internal/answer"
)

// GradeLogic grades every question that carries a correct key against the
// answer map. Trait questions contribute nothing to this pass. A missing
// answer grades as incorrect, never as an error.
//
// Details are ordered by the question's display number, so the output is
// deterministic regardless of answer-map iteration order.
func GradeLogic(questions []Question, answers AnswerMap) LogicResult {
	result := LogicResult{Details: []GradedAnswer{}}

	for _, q := range questions {
		if !q.Graded() {
			continue
		}

		selected := answer.Normalize(answers[q.ID])
		correct := answer.Normalize(q.CorrectAnswer)
		isCorrect := selected == correct
		if isCorrect {
			result.Correct++
		}

		result.Details = append(result.Details, GradedAnswer{
			QuestionID: q.ID,
			Number:     q.Number,
			Text:       q.Text,
			Selected:   selected,
			Correct:    correct,
			IsCorrect:  isCorrect,
		})
	}

	sort.SliceStable(result.Details, func(i, j int) bool {
		return result.Details[i].Number < result.Details[j].Number
	})

	result.Total = len(result.Details)
	result.Wrong = result.Total - result.Correct
	if result.Total > 0 {
		result.Accuracy = round2(float64(result.Correct) / float64(result.Total) * 100)
	}
	return result
}

// LogicTier maps an accuracy percentage onto its qualitative label: 80 and
// above is "excellent", 60 up to 80 is "good", anything below is
// "needs improvement".
func LogicTier(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return "excellent"
	case accuracy >= 60:
		return "good"
	}
	return "needs improvement"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
