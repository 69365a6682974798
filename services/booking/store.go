package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maidease/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session is missing or expired.
var ErrSessionNotFound = fmt.Errorf("booking session not found or expired")

// SessionStore persists booking sessions between the phases of the booking
// flow.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON values with a TTL.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a SessionStore backed by the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
