package booking

import "fmt"

// ValidationError reports booking input that cannot be priced or submitted.
// The caller is expected to correct the input; it is never silently fixed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// SubmissionError wraps a failure reported by the outbound submission
// collaborator. It is surfaced to the session as the error state and never
// retried automatically.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// StateError reports an attempt transition that is not allowed from the
// current state, e.g. cancelling while a submission is in flight.
type StateError struct {
	From string
	Op   string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while booking attempt is %s", e.Op, e.From)
}
