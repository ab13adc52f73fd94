package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v3"
	"github.com/tidwall/gjson"

	"github.com/talentgauge/assess-engine/internal/config"
	engineerrors "github.com/talentgauge/assess-engine/internal/errors"
	"github.com/talentgauge/assess-engine/internal/monitoring"
	"github.com/talentgauge/assess-engine/internal/report"
	"github.com/talentgauge/assess-engine/internal/scoring"
)

func main() {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		bankPath    = fs.String("bank", "", "question bank file, json array of questions")
		payloadPath = fs.String("payload", "", "respondent payload file, json")
		profilePath = fs.String("profile", "", "scoring profile file, json; built-in defaults when omitted")
		instrument  = fs.String("instrument", "exam", "instrument type: exam | survey | interview")
		outPath     = fs.String("out", "", "write the text report to this file instead of stdout")
		resultPath  = fs.String("result", "", "also write the structured result as json to this file")
		verbose     = fs.Bool("verbose", false, "enable debug logging")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("ASSESS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse flags: %s\n", err)
		os.Exit(2)
	}

	logger := monitoring.NewLogger()
	if *verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	if *bankPath == "" || *payloadPath == "" {
		fmt.Fprintln(os.Stderr, "must supply values for -bank & -payload")
		os.Exit(2)
	}

	inst, err := scoring.ParseInstrument(*instrument)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	profile, err := config.Load(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load scoring profile: %s\n", err)
		os.Exit(1)
	}
	logger.ProfileLogger(*profilePath, *profilePath == "", len(profile.Tendencies), len(profile.TendencyMapping))

	questions, err := loadBank(*bankPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load question bank: %s\n", err)
		os.Exit(1)
	}

	session, err := loadSession(*payloadPath, inst, questions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load respondent payload: %s\n", err)
		os.Exit(1)
	}

	started := time.Now()
	scorer := scoring.NewScorer(profile.Params(), logger.Logger)
	result, err := scorer.Score(session)
	if err != nil {
		logger.ScoringErrorLogger(err, session.ID, inst.String())
		if engineerrors.IsNoQuestions(err) {
			fmt.Fprintln(os.Stderr, "nothing to grade: the question bank is empty")
		} else {
			fmt.Fprintf(os.Stderr, "scoring failed: %s\n", err)
		}
		os.Exit(1)
	}
	logger.SessionLogger(session.ID, inst.String(), result.FinalScore, len(questions), result.DurationSeconds, time.Since(started))

	text := report.Render(result)
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write report: %s\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(text)
	}

	if *resultPath != "" {
		if err := writeResultJSON(*resultPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write result: %s\n", err)
			os.Exit(1)
		}
	}
}

func loadBank(path string) ([]scoring.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var questions []scoring.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func writeResultJSON(path string, result *scoring.SessionResult) error {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// loadSession extracts the respondent payload. The payload shape is
// { sessionId, respondentName, startedAt, answers: {questionId: raw} };
// gjson keeps the extraction tolerant of extra fields and answer ids that
// arrive as JSON numbers or strings.
func loadSession(path string, inst scoring.Instrument, questions []scoring.Question) (scoring.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scoring.Session{}, err
	}
	if !gjson.ValidBytes(raw) {
		return scoring.Session{}, engineerrors.NewValidationError("payload is not valid json")
	}

	sessionID := gjson.GetBytes(raw, "sessionId").String()
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	answers := scoring.AnswerMap{}
	gjson.GetBytes(raw, "answers").ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.Atoi(key.String())
		if err != nil {
			return true // skip malformed ids, the rest still score
		}
		answers[id] = value.String()
		return true
	})

	completedAt := time.Now()
	if v := gjson.GetBytes(raw, "completedAt"); v.Exists() {
		if t, err := time.Parse(time.RFC3339, v.String()); err == nil {
			completedAt = t
		}
	}

	startedAt := completedAt
	if v := gjson.GetBytes(raw, "startedAt"); v.Exists() {
		if t, err := time.Parse(time.RFC3339, v.String()); err == nil {
			startedAt = t
		}
	}

	return scoring.Session{
		ID:             sessionID,
		RespondentName: gjson.GetBytes(raw, "respondentName").String(),
		Instrument:     inst,
		Questions:      questions,
		Answers:        answers,
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
	}, nil
}
