package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cabadmin/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard sessions between requests. Sessions are
// transient; an expired session simply forces the admin back to the listing.
type SessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error

	// The edit index maps a booking id to the session currently editing it,
	// so deleting a booking can force-reset its open wizard.
	SetEditIndex(ctx context.Context, bookingID int, sessionID string) error
	GetEditIndex(ctx context.Context, bookingID int) (string, error)
	DeleteEditIndex(ctx context.Context, bookingID int) error
}

const sessionTTL = 30 * time.Minute

// RedisSessionStore keeps JSON-marshaled sessions in Redis with a 30 minute TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func sessionKey(sessionID string) string {
	return "wizard:session:" + sessionID
}

func editKey(bookingID int) string {
	return fmt.Sprintf("wizard:edit:%d", bookingID)
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *RedisSessionStore) SetEditIndex(ctx context.Context, bookingID int, sessionID string) error {
	return s.Client.Set(ctx, editKey(bookingID), sessionID, sessionTTL).Err()
}

func (s *RedisSessionStore) GetEditIndex(ctx context.Context, bookingID int) (string, error) {
	sessionID, err := s.Client.Get(ctx, editKey(bookingID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load edit index: %w", err)
	}
	return sessionID, nil
}

func (s *RedisSessionStore) DeleteEditIndex(ctx context.Context, bookingID int) error {
	return s.Client.Del(ctx, editKey(bookingID)).Err()
}
