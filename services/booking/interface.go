package booking

import (
	"context"

	"maidease/models"
)

// Submitter is the outbound collaborator that actually sends a confirmed
// booking. What it does (HTTP POST, queue, mock) is irrelevant here.
type Submitter interface {
	Submit(ctx context.Context, req *models.BookingRequest) error
}

// SessionPatch carries the fields a booking-modal update may change. Nil
// pointers leave the current value untouched.
type SessionPatch struct {
	AddExtras    []int   `json:"addExtras,omitempty"`
	RemoveExtras []int   `json:"removeExtras,omitempty"`
	Months       *int    `json:"months,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SessionService defines the interface for managing a stateful booking session.
type SessionService interface {
	Initiate(serviceID int) (*models.BookingSession, error)
	Update(sessionID string, patch SessionPatch) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingSession, *models.BookingRequest, error)
	Cancel(sessionID string) error
}
