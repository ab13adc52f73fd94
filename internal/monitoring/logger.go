package monitoring

import (
	"log/slog"
	"os"
	"time"
)

// Logger provides enhanced structured logging with context
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add timestamp in RFC3339 format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// SessionLogger logs the outcome of one scored session
func (l *Logger) SessionLogger(sessionID, instrument string, finalScore, totalQuestions, durationSec int, elapsed time.Duration) {
	l.Info("Session Scored",
		"session_id", sessionID,
		"instrument", instrument,
		"final_score", finalScore,
		"total_questions", totalQuestions,
		"session_duration_sec", durationSec,
		"elapsed_ms", elapsed.Milliseconds(),
	)
}

// ScoringErrorLogger logs scoring failures with context
func (l *Logger) ScoringErrorLogger(err error, sessionID, instrument string) {
	l.Error("Scoring Failed",
		"error", err.Error(),
		"session_id", sessionID,
		"instrument", instrument,
	)
}

// ProfileLogger logs which scoring profile was loaded
func (l *Logger) ProfileLogger(path string, builtin bool, tendencyCount, mappingCount int) {
	l.Info("Scoring Profile Loaded",
		"path", path,
		"builtin_defaults", builtin,
		"tendency_count", tendencyCount,
		"mapping_count", mappingCount,
	)
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	l.Logger = slog.New(handler)
}
