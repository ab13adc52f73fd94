package scoring

import (
	"log/slog"
	"sort"
	"strings"
)

// TendencyItem maps one survey question onto a trait. Reversed items award
// their weight on the disagree answer instead of the agree one; reversal is
// an explicit flag, never encoded into the trait id.
type TendencyItem struct {
	TraitID  string  `json:"traitId"`
	Weight   float64 `json:"weight"`
	Reversed bool    `json:"reversed,omitempty"`
}

// TendencyMapping maps question ids to their trait items.
type TendencyMapping map[int]TendencyItem

// Endorsement answer tokens. Two historical encodings of the same boolean
// exist in submitted data: the raw option letters A/B and the semantic
// agree/disagree tokens. Both normalize to one boolean before scoring.
const (
	tokenAgree    = "agree"
	tokenDisagree = "disagree"
)

func parseEndorsement(raw string) (endorsed, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "a", tokenAgree:
		return true, true
	case "b", tokenDisagree:
		return false, true
	}
	return false, false
}

// ScoreTendencies runs the weighted trait accumulator over the mapped
// questions. The returned table carries every trait id in traits, defaulting
// to 0, so the key set is complete and deterministic no matter which traits
// actually scored. Questions absent from the answer map contribute nothing;
// answers that match neither endorsement encoding are counted as unanswered.
func ScoreTendencies(answers AnswerMap, mapping TendencyMapping, traits []string, logger *slog.Logger) TraitScores {
	if logger == nil {
		logger = slog.Default()
	}

	scores := make(TraitScores, len(traits))
	for _, id := range traits {
		scores[id] = 0
	}

	// iterate in question-id order for deterministic logging
	ids := make([]int, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, qid := range ids {
		item := mapping[qid]
		raw := answers[qid]
		if raw == "" {
			logger.Debug("question unanswered", "question_id", qid)
			continue
		}

		endorsed, ok := parseEndorsement(raw)
		if !ok {
			logger.Debug("unrecognized endorsement answer", "question_id", qid, "answer", raw)
			continue
		}

		if _, known := scores[item.TraitID]; !known {
			logger.Warn("mapping references unknown trait", "question_id", qid, "trait_id", item.TraitID)
			continue
		}

		// a reversed item awards on disagree, a regular one on agree
		if endorsed != item.Reversed {
			scores[item.TraitID] += item.Weight
		}
	}

	return scores
}
