package handlers

import (
	"errors"
	"net/http"

	"maidease/models"
	"maidease/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow.
type BookingHandler struct {
	SessionSvc booking.SessionService
	Logger     *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{SessionSvc: svc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var body struct {
		ServiceID int `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	session, err := h.SessionSvc.Initiate(body.ServiceID)
	if err != nil {
		h.respondSessionError(c, "InitiateSession", err, nil)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		SessionID: session.SessionID,
		Session:   session,
	})
}

// UpdateSession handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var patch booking.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	session, err := h.SessionSvc.Update(sessionID, patch)
	if err != nil {
		h.respondSessionError(c, "UpdateSession", err, nil)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		Session:   session,
	})
}

// ConfirmBooking handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, bookingReq, err := h.SessionSvc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.respondSessionError(c, "ConfirmBooking", err, session)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Session: session,
		Booking: bookingReq,
	})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := h.SessionSvc.Cancel(sessionID); err != nil {
		h.respondSessionError(c, "CancelSession", err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

// respondSessionError maps booking flow errors onto HTTP statuses: validation
// problems are the caller's to fix, state conflicts mean the modal is locked,
// and submission failures surface with the session so the client can offer a
// retry.
func (h *BookingHandler) respondSessionError(c *gin.Context, op string, err error, session *models.BookingSession) {
	var vErr *booking.ValidationError
	var stErr *booking.StateError
	var subErr *booking.SubmissionError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "session not found",
			"message": err.Error(),
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid booking input",
			"message": err.Error(),
		})
	case errors.As(err, &stErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "booking attempt in progress",
			"message": err.Error(),
		})
	case errors.As(err, &subErr):
		h.Logger.Warn(op+": booking submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "booking submission failed",
			"message": subErr.Message,
			"session": session,
		})
	default:
		h.Logger.Error(op+": unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal error",
			"message": err.Error(),
		})
	}
}
