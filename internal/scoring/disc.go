package scoring

import "github.com/talentgauge/assess-engine/internal/answer"

// The four DISC trait ids.
const (
	TraitDominance  = "D"
	TraitInfluence  = "I"
	TraitSteadiness = "S"
	TraitCompliance = "C"
)

// discOrder maps option position to trait: option A scores D, B scores I,
// C scores S, D scores C. The bank is expected to have its options
// pre-ordered to this convention; there is no per-question lookup.
var discOrder = [4]string{TraitDominance, TraitInfluence, TraitSteadiness, TraitCompliance}

// ScoreDISC counts option picks on personality-section questions into the
// four fixed buckets. Only an answer that normalizes to exactly one letter
// increments a bucket; multi-letter, invalid and missing answers contribute
// nothing. All four trait ids are always present in the result.
func ScoreDISC(answers AnswerMap, questions []Question) TraitScores {
	scores := TraitScores{
		TraitDominance:  0,
		TraitInfluence:  0,
		TraitSteadiness: 0,
		TraitCompliance: 0,
	}

	for _, q := range questions {
		if q.Section != SectionPersonality {
			continue
		}
		norm := answer.Normalize(answers[q.ID])
		if len(norm) != 1 {
			continue
		}
		scores[discOrder[norm[0]-'A']]++
	}

	return scores
}
