// Package redisstore keeps sessions and read caches in Redis.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
)

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// SessionStore keeps one hash per user holding the current session id.
type SessionStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewSessionStore(rdb redis.Cmdable, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sess application.Session) error {
	key := sessionKey(sess.UserID)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    sess.UserID,
		"sid":        sess.SessionID,
		"email":      sess.Email,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, userID string) (*application.Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data["sid"] == "" {
		return nil, nil
	}
	return &application.Session{UserID: userID, SessionID: data["sid"], Email: data["email"]}, nil
}

func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

var _ application.SessionStore = (*SessionStore)(nil)
