package scoring

import (
	"fmt"
	"time"
)

// Instrument identifies the kind of assessment a session represents. It is
// resolved once at the session boundary from explicit metadata, never
// inferred from answer content.
type Instrument int

const (
	// InstrumentExam is a plain graded multiple-choice exam.
	InstrumentExam Instrument = iota
	// InstrumentTendencySurvey is the weighted personality survey. There is
	// no correct/incorrect notion, only trait accumulation.
	InstrumentTendencySurvey
	// InstrumentCombinedInterview combines a graded logic section with a
	// DISC personality section.
	InstrumentCombinedInterview
)

func (i Instrument) String() string {
	switch i {
	case InstrumentExam:
		return "exam"
	case InstrumentTendencySurvey:
		return "survey"
	case InstrumentCombinedInterview:
		return "interview"
	}
	return fmt.Sprintf("instrument(%d)", int(i))
}

// ParseInstrument resolves an instrument name supplied by a caller.
func ParseInstrument(s string) (Instrument, error) {
	switch s {
	case "exam":
		return InstrumentExam, nil
	case "survey":
		return InstrumentTendencySurvey, nil
	case "interview":
		return InstrumentCombinedInterview, nil
	}
	return 0, fmt.Errorf("unknown instrument %q", s)
}

// QuestionKind distinguishes single-select from multi-select questions.
type QuestionKind string

const (
	KindSingle   QuestionKind = "single"
	KindMultiple QuestionKind = "multiple"
)

// Section tags used by the combined interview to partition the bank.
const (
	SectionLogic       = "logic"
	SectionPersonality = "personality"
)

// Question is one immutable question of a session's bank.
type Question struct {
	ID      int          `json:"id"`
	Number  int          `json:"questionNumber"` // display number, orders graded output
	Section string       `json:"section"`
	Text    string       `json:"questionText"`
	OptionA string       `json:"optionA"`
	OptionB string       `json:"optionB"`
	OptionC string       `json:"optionC"`
	OptionD string       `json:"optionD"`
	Kind    QuestionKind `json:"kind"`
	// CorrectAnswer is the raw correct key for graded questions; trait
	// questions leave it empty.
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}

// Graded reports whether the question carries a correct key and takes part in
// logic grading.
func (q Question) Graded() bool { return q.CorrectAnswer != "" }

// AnswerMap maps a question id to the raw answer string the respondent
// submitted. Unanswered questions are absent or empty.
type AnswerMap map[int]string

// GradedAnswer records the outcome of grading one question. Selected and
// Correct hold the normalized form, which is also the persisted audit format.
type GradedAnswer struct {
	QuestionID int    `json:"questionId"`
	Number     int    `json:"questionNumber"`
	Text       string `json:"questionText"`
	Selected   string `json:"selectedAnswer"`
	Correct    string `json:"correctAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// LogicResult aggregates a logic grading pass.
type LogicResult struct {
	Total    int            `json:"totalQuestions"`
	Correct  int            `json:"correctAnswers"`
	Wrong    int            `json:"wrongAnswers"`
	Accuracy float64        `json:"accuracy"` // percent, two decimal places
	Details  []GradedAnswer `json:"answerDetails"`
}

// TraitScores maps a trait id to its accumulated score. Tables returned by
// the scorers always carry the complete known trait key set.
type TraitScores map[string]float64

// TraitInfo describes one trait of a catalog: identity, display name and the
// report text attached to it.
type TraitInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics,omitempty"`
	Occupations     []string `json:"occupations,omitempty"`
}

// DominantTrait is one ranked trait with its share of the total score.
// Percentage is 0 when the table total is 0, never NaN.
type DominantTrait struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// TraitResult is the personality side of a session result.
type TraitResult struct {
	Scores          TraitScores     `json:"scores"`
	Ranked          []DominantTrait `json:"ranked"` // every catalog trait, best first
	Dominant        []DominantTrait `json:"dominantTraits"`
	Characteristics []string        `json:"characteristics,omitempty"`
	Occupations     []string        `json:"recommendedOccupations,omitempty"`
	Summary         string          `json:"summary"`
}

// Session bundles the read-only inputs for one scoring call.
type Session struct {
	ID             string
	RespondentName string
	Instrument     Instrument
	Questions      []Question
	Answers        AnswerMap
	StartedAt      time.Time
	CompletedAt    time.Time
}

// SessionResult is the composite outcome of scoring one session. Logic and
// Traits are nil for instruments that do not produce them.
type SessionResult struct {
	SessionID       string       `json:"sessionId"`
	RespondentName  string       `json:"respondentName"`
	Instrument      Instrument   `json:"-"`
	InstrumentName  string       `json:"instrument"`
	CompletedAt     time.Time    `json:"completedAt"`
	DurationSeconds int          `json:"sessionDuration"`
	FinalScore      int          `json:"score"`
	Passed          bool         `json:"passed"`
	Logic           *LogicResult `json:"logicResult,omitempty"`
	Traits          *TraitResult `json:"personalityResult,omitempty"`
	OverallSummary  string       `json:"overallSummary"`
}
