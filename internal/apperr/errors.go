// Package apperr defines the error taxonomy shared by services and
// controllers. Services wrap these sentinels with context; controllers map
// them to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing survey, question, choice or user, or a
	// child that does not belong to the expected parent.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized marks an action on a survey the caller does not own.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadySubmitted marks a respondent who already has answers
	// recorded for the survey. Terminal for that respondent.
	ErrAlreadySubmitted = errors.New("survey already submitted")

	// ErrSurveyInactive marks a submission attempt against a closed survey.
	ErrSurveyInactive = errors.New("survey is not active")
)

// ValidationError rejects one submitted answer. It names the offending
// question so the caller can render a corrective message; it is recoverable,
// not fatal.
type ValidationError struct {
	QuestionID   uint
	QuestionText string
	Reason       string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d (%s): %s", e.QuestionID, e.QuestionText, e.Reason)
}

// Validation builds a ValidationError for the given question.
func Validation(questionID uint, questionText, format string, args ...any) *ValidationError {
	return &ValidationError{
		QuestionID:   questionID,
		QuestionText: questionText,
		Reason:       fmt.Sprintf(format, args...),
	}
}

// AsValidation unwraps err into a ValidationError if there is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
