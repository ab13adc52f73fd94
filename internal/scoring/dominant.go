package scoring

import "sort"

// SelectionPolicy decides which ranked traits count as dominant. The two
// instruments use genuinely different policies, so they stay distinct named
// strategies rather than one parameterized rule.
type SelectionPolicy interface {
	Apply(ranked []DominantTrait) []DominantTrait
}

// ThresholdPolicy includes every trait whose percentage reaches Threshold.
// Zero qualifying traits is a valid, reportable outcome and yields an empty
// slice, not a forced top-1 fallback.
type ThresholdPolicy struct {
	Threshold float64
}

func (p ThresholdPolicy) Apply(ranked []DominantTrait) []DominantTrait {
	out := make([]DominantTrait, 0, len(ranked))
	for _, t := range ranked {
		if t.Percentage >= p.Threshold {
			out = append(out, t)
		}
	}
	return out
}

// TopNPolicy takes the N best-scoring traits plus any later trait whose score
// exactly ties the Nth rank. Traits with score 0 never qualify.
type TopNPolicy struct {
	N int
}

func (p TopNPolicy) Apply(ranked []DominantTrait) []DominantTrait {
	out := make([]DominantTrait, 0, len(ranked))
	if p.N <= 0 || len(ranked) == 0 {
		return out
	}

	cut := p.N
	if cut > len(ranked) {
		cut = len(ranked)
	}
	tieScore := ranked[cut-1].Score

	for i, t := range ranked {
		if t.Score <= 0 {
			break // ranked descending, the rest are zero as well
		}
		if i >= cut && t.Score != tieScore {
			break
		}
		out = append(out, t)
	}
	return out
}

// RankTraits builds the full descending ranking of a score table over a
// catalog. Percentage is each score's share of the table total, 0 across the
// board when the total is 0. Ties keep catalog declaration order, so the
// ranking is deterministic for identical scores.
func RankTraits(scores TraitScores, catalog []TraitInfo) []DominantTrait {
	total := 0.0
	for _, info := range catalog {
		total += scores[info.ID]
	}

	ranked := make([]DominantTrait, 0, len(catalog))
	for _, info := range catalog {
		score := scores[info.ID]
		pct := 0.0
		if total > 0 {
			pct = score / total
		}
		ranked = append(ranked, DominantTrait{
			ID:         info.ID,
			Name:       info.Name,
			Score:      score,
			Percentage: pct,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SelectDominant ranks the score table and applies the selection policy,
// returning the dominant traits best first.
func SelectDominant(scores TraitScores, catalog []TraitInfo, policy SelectionPolicy) []DominantTrait {
	return policy.Apply(RankTraits(scores, catalog))
}
