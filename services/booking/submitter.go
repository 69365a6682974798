package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"maidease/models"

	"go.uber.org/zap"
)

// WebhookSubmitter delivers confirmed bookings to an external endpoint as a
// JSON POST. With no URL configured it only logs the booking and accepts it,
// matching the site's stubbed confirmation flow.
type WebhookSubmitter struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewWebhookSubmitter creates a WebhookSubmitter.
func NewWebhookSubmitter(url string, logger *zap.Logger) *WebhookSubmitter {
	return &WebhookSubmitter{
		URL:    url,
		Client: &http.Client{},
		Logger: logger,
	}
}

// Submit sends the booking request downstream.
func (w *WebhookSubmitter) Submit(ctx context.Context, req *models.BookingRequest) error {
	if w.URL == "" {
		w.Logger.Info("booking accepted (no submission endpoint configured)",
			zap.Int("serviceId", req.ServiceID),
			zap.Int("totalPrice", req.TotalPrice))
		return nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to submit booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("booking endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
