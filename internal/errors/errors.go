package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorCategory defines the type of error for proper handling by callers.
type ErrorCategory string

const (
	CategoryValidation   ErrorCategory = "validation"
	CategoryPrecondition ErrorCategory = "precondition"
	CategoryInternal     ErrorCategory = "internal"
)

// EngineError wraps an errbuilder error with scoring context. It is the one
// error type the engine surfaces to collaborators.
type EngineError struct {
	*errbuilder.ErrBuilder
	Category  ErrorCategory `json:"category"`
	SessionID string        `json:"session_id,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	codeStr := "UNKNOWN_ERROR"
	switch e.ErrBuilder.ErrCode() {
	case errbuilder.CodeInvalidArgument:
		codeStr = "VALIDATION_ERROR"
	case errbuilder.CodeFailedPrecondition:
		codeStr = "NO_QUESTIONS"
	case errbuilder.CodeInternal:
		codeStr = "INTERNAL_ERROR"
	}
	return fmt.Sprintf("[%s] %s", codeStr, e.ErrBuilder.Msg)
}

// Unwrap returns the underlying cause.
func (e *EngineError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

// NewEngineError creates an EngineError from an errbuilder with category
// context.
func NewEngineError(builder *errbuilder.ErrBuilder, category ErrorCategory) *EngineError {
	return &EngineError{
		ErrBuilder: builder,
		Category:   category,
		Timestamp:  time.Now(),
	}
}

// NewNoQuestionsError reports an empty question bank for a session. This is
// "nothing to grade", a condition distinct from a 0% score, which implies
// questions were graded and answered wrong.
func NewNoQuestionsError(sessionID string) *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("question bank is empty, nothing to grade")

	err := NewEngineError(builder, CategoryPrecondition)
	err.SessionID = sessionID
	return err
}

// NewValidationError creates a validation error for malformed caller input.
func NewValidationError(message string) *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(message)

	return NewEngineError(builder, CategoryValidation)
}

// NewConfigError creates an error for a malformed scoring profile.
func NewConfigError(message string, cause error) *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewEngineError(builder, CategoryValidation)
}

// NewInternalError creates an internal engine error.
func NewInternalError(message string, cause error) *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewEngineError(builder, CategoryInternal)
}

// IsNoQuestions reports whether err is the empty-question-bank condition, so
// callers can surface it distinctly from a zero score.
func IsNoQuestions(err error) bool {
	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		return false
	}
	return engineErr.Category == CategoryPrecondition &&
		engineErr.ErrBuilder.ErrCode() == errbuilder.CodeFailedPrecondition
}
