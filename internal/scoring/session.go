package scoring

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	engineerrors "github.com/talentgauge/assess-engine/internal/errors"
)

// completionScore is the final score for instruments without a ground truth:
// the trait portion has no correct answers and the logic portion of the
// combined interview is reported separately, never blended in.
const completionScore = 100

// Params carries the externally supplied scoring data a Scorer needs: trait
// catalogs, the question→tendency mapping and the selection thresholds.
type Params struct {
	// PassScore is the exam pass threshold on the 0-100 final score.
	PassScore int
	// DominanceThreshold is the minimum percentage share for the weighted
	// survey's threshold policy.
	DominanceThreshold float64
	// TopN is the rank cutoff for the interview's top-N-with-ties policy.
	TopN int
	// SignificantShare gates which dominant traits contribute their
	// characteristic tags to the flattened list.
	SignificantShare float64
	// Tendencies is the weighted survey's trait catalog in declaration order.
	Tendencies []TraitInfo
	// TendencyMapping maps survey question ids onto tendency items.
	TendencyMapping TendencyMapping
	// DiscTypes is the four-trait DISC catalog in declaration order.
	DiscTypes []TraitInfo
}

// Scorer evaluates completed sessions. It holds only configuration data and
// a logger, and every Score call is a pure function of its session input, so
// one Scorer is safe for concurrent use across unrelated sessions.
type Scorer struct {
	params Params
	logger *slog.Logger
}

// NewScorer builds a scorer over the given parameters. A nil logger falls
// back to slog.Default.
func NewScorer(params Params, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{params: params, logger: logger}
}

// Score evaluates one session under its instrument's policy and assembles the
// structured result. An empty question bank fails with a distinct "no
// questions" error; it must never be mistaken for a 0% score.
func (s *Scorer) Score(session Session) (*SessionResult, error) {
	if len(session.Questions) == 0 {
		return nil, engineerrors.NewNoQuestionsError(session.ID)
	}

	result := &SessionResult{
		SessionID:       session.ID,
		RespondentName:  session.RespondentName,
		Instrument:      session.Instrument,
		InstrumentName:  session.Instrument.String(),
		CompletedAt:     session.CompletedAt,
		DurationSeconds: durationSeconds(session),
	}

	switch session.Instrument {
	case InstrumentExam:
		s.scoreExam(session, result)
	case InstrumentTendencySurvey:
		s.scoreTendencySurvey(session, result)
	case InstrumentCombinedInterview:
		s.scoreCombinedInterview(session, result)
	default:
		return nil, engineerrors.NewValidationError(fmt.Sprintf("unknown instrument %q", session.Instrument))
	}

	return result, nil
}

func (s *Scorer) scoreExam(session Session, result *SessionResult) {
	logic := GradeLogic(session.Questions, session.Answers)
	result.Logic = &logic
	result.FinalScore = int(math.Round(logic.Accuracy))
	result.Passed = result.FinalScore >= s.params.PassScore
	result.OverallSummary = examSummary(logic, result.DurationSeconds)
}

func (s *Scorer) scoreTendencySurvey(session Session, result *SessionResult) {
	s.warnUnmapped(session)

	traitIDs := make([]string, 0, len(s.params.Tendencies))
	for _, info := range s.params.Tendencies {
		traitIDs = append(traitIDs, info.ID)
	}

	scores := ScoreTendencies(session.Answers, s.params.TendencyMapping, traitIDs, s.logger)
	ranked := RankTraits(scores, s.params.Tendencies)
	dominant := ThresholdPolicy{Threshold: s.params.DominanceThreshold}.Apply(ranked)

	traits := &TraitResult{
		Scores:      scores,
		Ranked:      ranked,
		Dominant:    dominant,
		Occupations: s.recommendOccupations(dominant),
		Summary:     s.traitSummary(dominant, s.params.Tendencies, nil),
	}
	result.Traits = traits
	// completion-based: every answered question is valid, nothing to grade
	result.FinalScore = completionScore
	result.OverallSummary = traits.Summary
}

func (s *Scorer) scoreCombinedInterview(session Session, result *SessionResult) {
	logicQuestions := make([]Question, 0, len(session.Questions))
	personalityQuestions := make([]Question, 0, len(session.Questions))
	for _, q := range session.Questions {
		if q.Section == SectionPersonality {
			personalityQuestions = append(personalityQuestions, q)
		} else {
			logicQuestions = append(logicQuestions, q)
		}
	}

	logic := GradeLogic(logicQuestions, session.Answers)
	result.Logic = &logic

	scores := ScoreDISC(session.Answers, personalityQuestions)
	ranked := RankTraits(scores, s.params.DiscTypes)
	dominant := TopNPolicy{N: s.params.TopN}.Apply(ranked)
	characteristics := s.flattenCharacteristics(dominant)

	traits := &TraitResult{
		Scores:          scores,
		Ranked:          ranked,
		Dominant:        dominant,
		Characteristics: characteristics,
		Summary:         s.traitSummary(dominant, s.params.DiscTypes, characteristics),
	}
	result.Traits = traits

	// the two sub-results stand side by side and are never merged into one
	// accuracy number
	result.FinalScore = completionScore
	result.OverallSummary = s.overallSummary(logic, traits, result.DurationSeconds)
}

// warnUnmapped logs survey questions the mapping does not cover. They are
// skipped, never fatal; the rest of the session still scores.
func (s *Scorer) warnUnmapped(session Session) {
	for _, q := range session.Questions {
		if _, ok := s.params.TendencyMapping[q.ID]; !ok {
			s.logger.Warn("no trait mapping for question", "session_id", session.ID, "question_id", q.ID)
		}
	}
}

// recommendOccupations unions the occupation lists of the dominant traits,
// deduplicated and sorted.
func (s *Scorer) recommendOccupations(dominant []DominantTrait) []string {
	byID := catalogByID(s.params.Tendencies)
	seen := map[string]bool{}
	out := []string{}
	for _, t := range dominant {
		info, ok := byID[t.ID]
		if !ok {
			continue
		}
		for _, occ := range info.Occupations {
			if !seen[occ] {
				seen[occ] = true
				out = append(out, occ)
			}
		}
	}
	sort.Strings(out)
	return out
}

// flattenCharacteristics collects the characteristic tags of every dominant
// trait whose share clears the significance gate, deduplicated across traits
// in rank order.
func (s *Scorer) flattenCharacteristics(dominant []DominantTrait) []string {
	byID := catalogByID(s.params.DiscTypes)
	seen := map[string]bool{}
	out := []string{}
	for _, t := range dominant {
		if t.Percentage <= s.params.SignificantShare {
			continue
		}
		info, ok := byID[t.ID]
		if !ok {
			continue
		}
		for _, c := range info.Characteristics {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// traitSummary builds the free-text narrative for a trait result by
// concatenating per-trait description fragments. An empty dominant list is a
// valid outcome and gets its own wording rather than an error.
func (s *Scorer) traitSummary(dominant []DominantTrait, catalog []TraitInfo, characteristics []string) string {
	if len(dominant) == 0 {
		return "The answers given do not show a clear dominant trait. " +
			"Observing working style in practice is recommended before drawing conclusions."
	}

	byID := catalogByID(catalog)
	primary := dominant[0]

	var b strings.Builder
	fmt.Fprintf(&b, "The results point to a primarily %s profile", primary.Name)
	if info, ok := byID[primary.ID]; ok && info.Description != "" {
		b.WriteString(": ")
		b.WriteString(info.Description)
	}

	if len(dominant) > 1 {
		secondary := make([]string, 0, 2)
		for _, t := range dominant[1:] {
			secondary = append(secondary, t.Name)
			if len(secondary) == 2 {
				break
			}
		}
		fmt.Fprintf(&b, " Traits of %s are also present.", strings.Join(secondary, " and "))
	}

	if len(characteristics) > 0 {
		top := characteristics
		if len(top) > 5 {
			top = top[:5]
		}
		fmt.Fprintf(&b, " Notable strengths: %s.", strings.Join(top, ", "))
	}

	b.WriteString(" These qualities are assets in matching roles.")
	return b.String()
}

// overallSummary combines the logic and trait sub-results into one narrative
// sentence block for the combined interview.
func (s *Scorer) overallSummary(logic LogicResult, traits *TraitResult, durationSec int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The assessment was completed in %d minutes.", durationMinutes(durationSec))

	if logic.Total > 0 {
		fmt.Fprintf(&b, " In the logical reasoning section %d of %d answers were correct (%.1f%%), %s.",
			logic.Correct, logic.Total, logic.Accuracy, tierPhrase(logic.Accuracy))
	}

	if len(traits.Dominant) > 0 {
		fmt.Fprintf(&b, " The personality section shows a primarily %s profile. %s",
			traits.Dominant[0].Name, traits.Summary)
	} else {
		b.WriteString(" " + traits.Summary)
	}

	b.WriteString(" Thank you for completing this assessment.")
	return b.String()
}

func examSummary(logic LogicResult, durationSec int) string {
	if logic.Total == 0 {
		return "No graded questions were present in this session."
	}
	return fmt.Sprintf("You answered %d of %d questions correctly (%.1f%%) in %d minutes, %s.",
		logic.Correct, logic.Total, logic.Accuracy, durationMinutes(durationSec), tierPhrase(logic.Accuracy))
}

func tierPhrase(accuracy float64) string {
	switch LogicTier(accuracy) {
	case "excellent":
		return "an excellent result"
	case "good":
		return "a good result"
	}
	return "a result with room for improvement"
}

func catalogByID(catalog []TraitInfo) map[string]TraitInfo {
	byID := make(map[string]TraitInfo, len(catalog))
	for _, info := range catalog {
		byID[info.ID] = info
	}
	return byID
}

// durationSeconds is the whole-second session duration, clamped at 0 so
// clock skew never produces a negative value.
func durationSeconds(session Session) int {
	d := int(math.Round(session.CompletedAt.Sub(session.StartedAt).Seconds()))
	if d < 0 {
		return 0
	}
	return d
}

func durationMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}
