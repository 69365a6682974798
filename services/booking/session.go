package booking

import (
	"context"
	"fmt"
	"time"

	"maidease/models"
	"maidease/services/catalog"

	"github.com/google/uuid"
)

// DefaultSessionService implements SessionService over a SessionStore and an
// outbound Submitter. The catalogue is read-only; each session is a value
// object scoped to a single booking modal.
type DefaultSessionService struct {
	Catalog       []models.Service
	Store         SessionStore
	Submitter     Submitter
	SessionTTL    time.Duration
	SubmitTimeout time.Duration
	MaxAttempts   int
}

// Initiate creates a new booking session for the given base service, assigns
// it a unique SessionID, and stores it with a TTL.
func (s *DefaultSessionService) Initiate(serviceID int) (*models.BookingSession, error) {
	base, ok := catalog.FindByID(s.Catalog, serviceID)
	if !ok {
		return nil, newValidationError("serviceId", fmt.Sprintf("unknown service id %d", serviceID))
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Service:   base,
		Months:    1,
		Quote:     base.Price,
		Status:    models.AttemptIdle,
	}

	if err := s.Store.Save(context.Background(), session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// Update applies a patch to the session's extras, duration, schedule, and
// notes, requotes the total, and persists the result. Updates are rejected
// while a submission is in flight.
func (s *DefaultSessionService) Update(sessionID string, patch SessionPatch) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.AttemptSubmitting {
		return nil, &StateError{From: session.Status, Op: "update session"}
	}

	extras := NewExtraSelection(session.ExtraIDs...)
	for _, id := range patch.AddExtras {
		if id == session.Service.ID {
			return nil, newValidationError("extraServiceIds", fmt.Sprintf("extra services cannot include the base service (id %d)", id))
		}
		if _, ok := catalog.FindByID(s.Catalog, id); !ok {
			return nil, newValidationError("extraServiceIds", fmt.Sprintf("unknown extra service id %d", id))
		}
		extras.Add(id)
	}
	for _, id := range patch.RemoveExtras {
		extras.Remove(id)
	}

	if patch.Months != nil {
		session.Months = *patch.Months
	}
	if patch.Date != nil {
		session.Date = *patch.Date
	}
	if patch.Time != nil {
		session.Time = *patch.Time
	}
	if patch.Notes != nil {
		session.Notes = *patch.Notes
	}

	quote, err := ComputeTotal(s.Catalog, session.Service, extras, session.Months)
	if err != nil {
		return nil, err
	}
	session.ExtraIDs = extras.IDs()
	session.Quote = quote

	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm drives one submission attempt. A session in the error state is
// first returned to idle (this call is the user's manual retry), then moved
// to submitting and handed to the Submitter under a deadline. On failure the
// session survives in the error state; on success the booking request is
// returned and the session is discarded.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingSession, *models.BookingRequest, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	attempt := attemptOf(session)
	if attempt.Status == models.AttemptError {
		if attempt, err = attempt.Retry(); err != nil {
			return session, nil, err
		}
	}

	// Validate and freeze the request before the state machine moves, so a
	// rejected request does not burn an attempt.
	extras := NewExtraSelection(session.ExtraIDs...)
	req, err := BuildBookingRequest(s.Catalog, session.Service, extras, session.Date, session.Time, session.Months, session.Notes)
	if err != nil {
		return session, nil, err
	}

	attempt, err = attempt.Begin(s.MaxAttempts)
	if err != nil {
		return session, nil, err
	}
	applyAttempt(session, attempt)
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return session, nil, err
	}

	submitCtx := ctx
	if s.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, s.SubmitTimeout)
		defer cancel()
	}

	if submitErr := s.Submitter.Submit(submitCtx, req); submitErr != nil {
		attempt, _ = attempt.Fail(submitErr.Error())
		applyAttempt(session, attempt)
		if saveErr := s.Store.Save(ctx, session, s.SessionTTL); saveErr != nil {
			return session, nil, saveErr
		}
		return session, nil, &SubmissionError{Message: submitErr.Error(), Err: submitErr}
	}

	attempt, _ = attempt.Succeed()
	applyAttempt(session, attempt)
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return session, req, err
	}
	return session, req, nil
}

// Cancel discards a booking session. Cancelling is blocked while a
// submission is in flight.
func (s *DefaultSessionService) Cancel(sessionID string) error {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !attemptOf(session).CanClose() {
		return &StateError{From: session.Status, Op: "cancel session"}
	}
	return s.Store.Delete(ctx, sessionID)
}

func attemptOf(session *models.BookingSession) Attempt {
	return Attempt{
		Status:    session.Status,
		Attempts:  session.Attempts,
		LastError: session.LastError,
	}
}

func applyAttempt(session *models.BookingSession, a Attempt) {
	session.Status = a.Status
	session.Attempts = a.Attempts
	session.LastError = a.LastError
}
