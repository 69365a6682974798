package booking

import "maidease/models"

// Attempt is the submission state machine for one booking modal instance:
// idle -> submitting -> success or error. An error returns to idle only
// through an explicit user retry, and success is terminal. Transitions are
// explicit calls returning a new state, never in-place mutation of shared
// state.
type Attempt struct {
	Status    string `json:"status"`
	Attempts  int    `json:"attempts"`
	LastError string `json:"lastError,omitempty"`
}

// NewAttempt returns a fresh idle attempt.
func NewAttempt() Attempt {
	return Attempt{Status: models.AttemptIdle}
}

// Begin moves the attempt into the submitting state. Only one submission may
// be in flight at a time, and the attempt count is capped.
func (a Attempt) Begin(maxAttempts int) (Attempt, error) {
	if a.Status != models.AttemptIdle {
		return a, &StateError{From: a.Status, Op: "submit"}
	}
	if maxAttempts > 0 && a.Attempts >= maxAttempts {
		return a, newValidationError("attempts", "maximum submission attempts reached")
	}
	a.Status = models.AttemptSubmitting
	a.Attempts++
	a.LastError = ""
	return a, nil
}

// Succeed marks the in-flight submission as successful. Success is terminal
// for this attempt; a new booking starts a new Attempt.
func (a Attempt) Succeed() (Attempt, error) {
	if a.Status != models.AttemptSubmitting {
		return a, &StateError{From: a.Status, Op: "complete"}
	}
	a.Status = models.AttemptSuccess
	return a, nil
}

// Fail records a submission failure with a human-readable message.
func (a Attempt) Fail(msg string) (Attempt, error) {
	if a.Status != models.AttemptSubmitting {
		return a, &StateError{From: a.Status, Op: "fail"}
	}
	a.Status = models.AttemptError
	a.LastError = msg
	return a, nil
}

// Retry returns a failed attempt to idle so the user can submit again.
// Retries are never automatic.
func (a Attempt) Retry() (Attempt, error) {
	if a.Status != models.AttemptError {
		return a, &StateError{From: a.Status, Op: "retry"}
	}
	a.Status = models.AttemptIdle
	a.LastError = ""
	return a, nil
}

// CanClose reports whether the booking modal may be closed. Closing is
// blocked while a submission is in flight to avoid orphaned submissions.
func (a Attempt) CanClose() bool {
	return a.Status != models.AttemptSubmitting
}
