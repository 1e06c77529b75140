package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound reports a missing or expired wizard session.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// LoadError reports a failed reference or prefill fetch. Dependent forms must
// not be rendered while it stands.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewLoadError(msg string) error {
	return &LoadError{
		Code:    "loadError",
		Message: msg,
	}
}

// ValidationError is form-level, field-scoped and re-enterable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// SubmissionError reports a failed step of the create/update chain. Already
// completed steps are not rolled back; the caller must retry from scratch.
type SubmissionError struct {
	Step string
	Err  error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed at %s: %v", e.Step, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func newSubmissionError(step string, err error) error {
	return &SubmissionError{Step: step, Err: err}
}

// InvalidTransitionError reports an operation attempted from the wrong
// wizard state.
type InvalidTransitionError struct {
	State string
	Op    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Op, e.State)
}
