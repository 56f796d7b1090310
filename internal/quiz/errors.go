package quiz

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Configuration errors indicate broken
// authored content and are fatal at bank-build time; the rest are
// per-request conditions.
const (
	KindConfiguration     = "configuration_error"
	KindUnknownQuestion   = "unknown_question"
	KindDuplicateQuestion = "duplicate_question"
	KindIncompleteQuiz    = "incomplete_quiz"
	KindInvalidAnswer     = "invalid_answer"
	KindAnswerNotFound    = "answer_not_found"
	KindMissingTemplate   = "missing_template"
)

// Error carries a machine-readable kind alongside the human-readable message.
// The HTTP layer maps the kind into the response envelope.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error with a formatted message.
func Errorf(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" when err carries no kind.
func KindOf(err error) string {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return ""
}
