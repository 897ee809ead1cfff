package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionRepo implements domain.SessionStore. A session is a single key whose
// presence is the admin flag; the TTL set at activation is the session's
// fixed lifetime. Checks never renew it.
type SessionRepo struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewSessionRepo(rdb *goredis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{rdb: rdb, ttl: ttl}
}

func (s *SessionRepo) Activate(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Set(ctx, sessionKey(sessionID), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to activate session: %w", err)
	}
	return nil
}

func (s *SessionRepo) IsActive(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

func (s *SessionRepo) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(sessionID uuid.UUID) string {
	return "admin_session:" + sessionID.String()
}
