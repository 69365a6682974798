package models

import "time"

// Booking attempt states. A session moves idle -> submitting -> success or
// error; error returns to idle only through an explicit user retry.
const (
	AttemptIdle       = "idle"
	AttemptSubmitting = "submitting"
	AttemptSuccess    = "success"
	AttemptError      = "error"
)

// BookingRequest is the record handed to the outbound submission collaborator.
// TotalPrice is frozen at construction time so the submitted record stays
// self-consistent even if the catalogue changes afterwards.
type BookingRequest struct {
	ServiceID  int       `json:"serviceId"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	Months     int       `json:"months"`
	ExtraIDs   []int     `json:"extraServiceIds"`
	Notes      string    `json:"notes,omitempty"`
	TotalPrice int       `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingSession holds the state of one booking modal between initiation and
// confirmation. It is stored as JSON with a TTL; nothing is shared across
// sessions.
type BookingSession struct {
	SessionID string  `json:"sessionId"`
	Service   Service `json:"service"`
	ExtraIDs  []int   `json:"extraServiceIds,omitempty"`
	Months    int     `json:"months"`
	Date      string  `json:"date,omitempty"`
	Time      string  `json:"time,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Quote     int     `json:"quote"`
	Status    string  `json:"status"`
	Attempts  int     `json:"attempts"`
	LastError string  `json:"lastError,omitempty"`
}

// BookingResponse is returned by the booking session endpoints.
type BookingResponse struct {
	SessionID string          `json:"sessionId,omitempty"`
	Session   *BookingSession `json:"session,omitempty"`
	Booking   *BookingRequest `json:"booking,omitempty"`
}
